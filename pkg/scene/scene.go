package scene

import (
	"github.com/jfeld/go-pathtracer/pkg/core"
	"github.com/jfeld/go-pathtracer/pkg/geometry"
	"github.com/jfeld/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering: the camera, the
// world geometry and the background gradient colors. It is immutable during
// a render pass.
type Scene struct {
	Camera       *renderer.Camera
	CameraConfig renderer.CameraConfig
	World        *geometry.HittableList
	TopColor     core.Vec3 // Sky color at the zenith
	BottomColor  core.Vec3 // Sky color at the horizon
}

// GetCamera implements renderer.Scene
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetWorld implements renderer.Scene
func (s *Scene) GetWorld() geometry.Hittable {
	return s.World
}

// GetBackgroundColors implements renderer.Scene
func (s *Scene) GetBackgroundColors() (core.Vec3, core.Vec3) {
	return s.TopColor, s.BottomColor
}

// skyBlue is the default gradient top color, blended toward white at the horizon
var skyBlue = core.NewVec3(0.5, 0.7, 1.0)
