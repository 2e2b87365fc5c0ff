package scene

import (
	"math/rand"

	"github.com/jfeld/go-pathtracer/pkg/core"
	"github.com/jfeld/go-pathtracer/pkg/geometry"
	"github.com/jfeld/go-pathtracer/pkg/material"
	"github.com/jfeld/go-pathtracer/pkg/renderer"
)

// NewCoverScene creates the classic book-cover scene: a gray ground sphere,
// three large feature spheres (glass, diffuse, polished metal) and a seeded
// random grid of small spheres. The same seed always builds the same scene.
func NewCoverScene(aspectRatio float64, seed int64) (*Scene, error) {
	cameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   aspectRatio,
		VFov:          20,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}
	camera, err := renderer.NewCamera(cameraConfig)
	if err != nil {
		return nil, err
	}

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000,
			material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1,
			material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1,
			material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1,
			material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	random := rand.New(rand.NewSource(seed))
	refPoint := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)
			// Keep the small spheres clear of the big metal one
			if center.Subtract(refPoint).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch choose := random.Float64(); {
			case choose < 0.8:
				albedo := randomColor(random).MultiplyVec(randomColor(random))
				mat = material.NewLambertian(albedo)
			case choose < 0.95:
				albedo := randomColorInRange(random, 0.5, 1.0)
				fuzz := 0.5 * random.Float64()
				mat = material.NewMetal(albedo, fuzz)
			default:
				mat = material.NewDielectric(1.5)
			}
			world.Add(geometry.NewSphere(center, 0.2, mat))
		}
	}

	return &Scene{
		Camera:       camera,
		CameraConfig: cameraConfig,
		World:        world,
		TopColor:     skyBlue,
		BottomColor:  core.NewVec3(1, 1, 1),
	}, nil
}

func randomColor(random *rand.Rand) core.Vec3 {
	return core.NewVec3(random.Float64(), random.Float64(), random.Float64())
}

func randomColorInRange(random *rand.Rand, minVal, maxVal float64) core.Vec3 {
	span := maxVal - minVal
	return core.NewVec3(
		minVal+span*random.Float64(),
		minVal+span*random.Float64(),
		minVal+span*random.Float64(),
	)
}
