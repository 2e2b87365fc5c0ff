package scene

import (
	"github.com/jfeld/go-pathtracer/pkg/core"
	"github.com/jfeld/go-pathtracer/pkg/geometry"
	"github.com/jfeld/go-pathtracer/pkg/material"
	"github.com/jfeld/go-pathtracer/pkg/renderer"
)

// NewSimpleScene creates a small three-sphere scene over a diffuse ground.
// The left sphere is a hollow glass shell: an outer dielectric sphere with a
// negative-radius inner sphere whose inverted normal models the inside
// surface. It exercises every material variant and renders quickly.
func NewSimpleScene(aspectRatio float64) (*Scene, error) {
	cameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: aspectRatio,
		VFov:        90,
		Aperture:    0,
	}
	camera, err := renderer.NewCamera(cameraConfig)
	if err != nil {
		return nil, err
	}

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, glass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
	)

	return &Scene{
		Camera:       camera,
		CameraConfig: cameraConfig,
		World:        world,
		TopColor:     skyBlue,
		BottomColor:  core.NewVec3(1, 1, 1),
	}, nil
}
