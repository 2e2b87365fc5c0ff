package renderer

import (
	"testing"

	"github.com/jfeld/go-pathtracer/pkg/core"
)

func TestImage_RowMajorLayout(t *testing.T) {
	img := NewImage(3, 2)
	if len(img.Pix) != 6 {
		t.Fatalf("buffer length = %d, want 6", len(img.Pix))
	}

	c := core.NewVec3(0.1, 0.2, 0.3)
	img.Set(1, 2, c)
	if img.Pix[1*3+2] != c {
		t.Errorf("Set(1,2) did not write index row*width+col")
	}
	if img.At(1, 2) != c {
		t.Errorf("At(1,2) = %v, want %v", img.At(1, 2), c)
	}
	// Other pixels untouched
	if img.At(0, 2) != (core.Vec3{}) {
		t.Errorf("unrelated pixel was modified")
	}
}

func TestImage_RGBAQuantization(t *testing.T) {
	img := NewImage(2, 2)
	img.Set(0, 0, core.NewVec3(0, 0.5, 0.999))
	img.Set(1, 1, core.NewVec3(0.25, 0.75, 0.1))

	rgba := img.RGBA()

	c00 := rgba.RGBAAt(0, 0)
	if c00.R != 0 || c00.G != 128 || c00.B != 255 || c00.A != 255 {
		t.Errorf("pixel (0,0) = %v, want {0 128 255 255}", c00)
	}
	c11 := rgba.RGBAAt(1, 1)
	if c11.R != 64 || c11.G != 192 || c11.B != 25 {
		t.Errorf("pixel (1,1) = %v, want {64 192 25}", c11)
	}
}
