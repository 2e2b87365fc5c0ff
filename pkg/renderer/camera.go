package renderer

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/jfeld/go-pathtracer/pkg/core"
)

// CameraConfig contains camera configuration
type CameraConfig struct {
	Center        core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // Up direction for orientation
	AspectRatio   float64   // Width/height ratio
	VFov          float64   // Vertical field of view in degrees
	Aperture      float64   // Lens aperture diameter, 0 = pinhole
	FocalLength   float64   // Focal length, 0 = default 1.0
	FocusDistance float64   // Distance to the plane of perfect focus, 0 = distance to LookAt
}

// Camera maps normalized image-plane coordinates plus a lens sample to
// world-space rays, with thin-lens depth of field.
type Camera struct {
	center          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // Orthonormal basis: w back, u right, v up
	lensRadius      float64
}

// NewCamera creates a camera from the given configuration. It fails fast on
// a degenerate setup so the render loop can assume a valid basis.
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.AspectRatio <= 0 {
		return nil, fmt.Errorf("camera: aspect ratio must be positive, got %g", config.AspectRatio)
	}
	if config.VFov <= 0 || config.VFov >= 180 {
		return nil, fmt.Errorf("camera: vertical fov must be in (0, 180) degrees, got %g", config.VFov)
	}
	if config.Aperture < 0 {
		return nil, fmt.Errorf("camera: aperture must be non-negative, got %g", config.Aperture)
	}

	toLookAt := config.LookAt.Subtract(config.Center)
	if toLookAt.NearZero() {
		return nil, fmt.Errorf("camera: position and look-at point coincide at %v", config.Center)
	}

	w := config.Center.Subtract(config.LookAt).Normalize()
	uCross := config.Up.Cross(w)
	if uCross.NearZero() {
		return nil, fmt.Errorf("camera: up vector %v is parallel to the viewing direction", config.Up)
	}
	u := uCross.Normalize()
	v := w.Cross(u)

	focalLength := config.FocalLength
	if focalLength == 0 {
		focalLength = 1.0
	}
	focusDistance := config.FocusDistance
	if focusDistance == 0 {
		focusDistance = toLookAt.Length()
	}
	if focusDistance < 0 {
		return nil, fmt.Errorf("camera: focus distance must be positive, got %g", config.FocusDistance)
	}

	viewportHeight := 2.0 * math.Tan(config.VFov*math.Pi/180/2)
	viewportWidth := config.AspectRatio * viewportHeight

	horizontal := u.Multiply(viewportWidth * focusDistance)
	vertical := v.Multiply(viewportHeight * focusDistance)
	lowerLeftCorner := config.Center.
		Subtract(horizontal.Divide(2)).
		Subtract(vertical.Divide(2)).
		Subtract(w.Multiply(focalLength * focusDistance))

	return &Camera{
		center:          config.Center,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}, nil
}

// GetRay generates a ray for normalized image coordinates (s, t) where
// 0 <= s,t <= 1, s increasing right and t increasing up. With a non-zero
// aperture the ray origin is offset within the lens disk; rays from
// different lens points converge exactly at the focal plane, producing
// blur proportional to defocus distance.
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	offset := core.Vec3{}
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
		offset = c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.center).
		Subtract(offset)

	return core.NewRay(c.center.Add(offset), direction)
}
