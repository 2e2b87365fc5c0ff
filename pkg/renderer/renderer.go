package renderer

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/jfeld/go-pathtracer/pkg/core"
	"github.com/jfeld/go-pathtracer/pkg/geometry"
)

// Rays shorter than this are ignored so a scattered ray cannot re-intersect
// the surface it just left (shadow acne).
const tMinEpsilon = 0.001

// RenderSettings contains rendering configuration. It is immutable once the
// renderer is constructed.
type RenderSettings struct {
	Width           int     // Image width in pixels
	Height          int     // Image height in pixels
	SamplesPerPixel int     // Antialiasing samples per pixel, >= 1
	MaxDepth        int     // Ray bounce limit, >= 0
	Gamma           float64 // Gamma correction exponent base, >= 1
	Seed            int64   // Base seed for the per-row random streams
	NumWorkers      int     // Parallel row workers, 0 = CPU count
}

// Validate checks the settings, returning a descriptive error for the first
// invalid field. The render loop assumes validated settings and performs no
// per-pixel checks.
func (s RenderSettings) Validate() error {
	if s.Width < 2 || s.Height < 2 {
		return fmt.Errorf("render settings: dimensions must be at least 2x2, got %dx%d", s.Width, s.Height)
	}
	if s.SamplesPerPixel < 1 {
		return fmt.Errorf("render settings: samples per pixel must be >= 1, got %d", s.SamplesPerPixel)
	}
	if s.MaxDepth < 0 {
		return fmt.Errorf("render settings: ray bounce limit must be >= 0, got %d", s.MaxDepth)
	}
	if s.Gamma < 1 {
		return fmt.Errorf("render settings: gamma must be >= 1, got %g", s.Gamma)
	}
	if s.NumWorkers < 0 {
		return fmt.Errorf("render settings: worker count must be >= 0, got %d", s.NumWorkers)
	}
	return nil
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetWorld() geometry.Hittable
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
}

// Renderer turns a scene and camera into an image by Monte Carlo sampling
type Renderer struct {
	scene    Scene
	settings RenderSettings
	logger   core.Logger
}

// NewRenderer creates a renderer for the given scene. Pass a nil logger to
// disable progress output.
func NewRenderer(scene Scene, settings RenderSettings, logger core.Logger) (*Renderer, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if scene.GetCamera() == nil {
		return nil, fmt.Errorf("renderer: scene has no camera")
	}
	return &Renderer{scene: scene, settings: settings, logger: logger}, nil
}

// Settings returns the renderer's configuration
func (rt *Renderer) Settings() RenderSettings {
	return rt.settings
}

// backgroundGradient returns the sky color for a ray that escapes the scene:
// a vertical blend from the bottom color at the horizon to the top color,
// parametrized by the normalized y component.
func (rt *Renderer) backgroundGradient(r core.Ray) core.Vec3 {
	topColor, bottomColor := rt.scene.GetBackgroundColors()
	unitDirection := r.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}

// RayColor evaluates the outgoing radiance along a ray. The bounce recursion
// is flattened into a loop carrying the accumulated attenuation product, so
// stack usage is constant regardless of the configured bounce limit. A depth
// below zero is not an error: the bounce budget is simply exhausted and no
// more light is gathered.
func (rt *Renderer) RayColor(r core.Ray, depth int, random *rand.Rand) core.Vec3 {
	world := rt.scene.GetWorld()
	throughput := core.NewVec3(1, 1, 1)

	for ; depth >= 0; depth-- {
		hit, isHit := world.Hit(r, tMinEpsilon, math.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(rt.backgroundGradient(r))
		}

		scatter, didScatter := hit.Material.Scatter(r, *hit, random)
		if !didScatter {
			return core.Vec3{} // Absorbed
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		r = scatter.Scattered
	}

	return core.Vec3{}
}

// Render computes the full image. Rows are independent units of work
// scheduled across NumWorkers goroutines; each row writes a disjoint slice
// of the buffer and draws from its own random stream seeded Seed+row, so the
// output is identical for a fixed seed regardless of scheduling order.
func (rt *Renderer) Render() *Image {
	img := NewImage(rt.settings.Width, rt.settings.Height)

	numWorkers := rt.settings.NumWorkers
	if numWorkers == 0 {
		numWorkers = runtime.NumCPU()
	}

	var rowsDone atomic.Int64
	logEvery := max(1, rt.settings.Height/10)

	var g errgroup.Group
	g.SetLimit(numWorkers)
	for row := 0; row < rt.settings.Height; row++ {
		row := row // per-iteration copy; required while go.mod targets pre-1.22 semantics
		g.Go(func() error {
			random := rand.New(rand.NewSource(rt.settings.Seed + int64(row)))
			rt.renderRow(img, row, random)
			if done := rowsDone.Add(1); rt.logger != nil && done%int64(logEvery) == 0 {
				rt.logger.Printf("Rendered %d/%d rows\n", done, rt.settings.Height)
			}
			return nil
		})
	}
	// Row workers never fail, so Wait only synchronizes completion
	_ = g.Wait()

	return img
}

// renderRow renders one image row: per pixel it averages SamplesPerPixel
// jittered estimates, gamma-corrects, clamps to [0, 0.999] and stores the
// result. Row 0 is the top of the image, so the v coordinate is flipped to
// increase upward in camera space.
func (rt *Renderer) renderRow(img *Image, row int, random *rand.Rand) {
	camera := rt.scene.GetCamera()
	width, height := rt.settings.Width, rt.settings.Height
	samples := rt.settings.SamplesPerPixel

	for col := 0; col < width; col++ {
		accum := core.Vec3{}
		for sample := 0; sample < samples; sample++ {
			u := (float64(col) + random.Float64()) / float64(width-1)
			v := (float64(height) - (float64(row) + random.Float64())) / float64(height-1)
			ray := camera.GetRay(u, v, random)
			accum = accum.Add(rt.RayColor(ray, rt.settings.MaxDepth, random))
		}

		pixel := accum.Divide(float64(samples)).
			GammaCorrect(rt.settings.Gamma).
			Clamp(0.0, 0.999)
		img.Set(row, col, pixel)
	}
}
