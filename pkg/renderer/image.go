package renderer

import (
	"image"
	"image/color"

	"github.com/jfeld/go-pathtracer/pkg/core"
)

// Image is a width×height grid of linear-space colors, stored row-major.
// After a render every channel lies in [0, 0.999].
type Image struct {
	Width  int
	Height int
	Pix    []core.Vec3 // len == Width*Height, index = row*Width+col
}

// NewImage creates a black image with the given dimensions
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]core.Vec3, width*height),
	}
}

// At returns the color at (row, col), row 0 being the top of the image
func (img *Image) At(row, col int) core.Vec3 {
	return img.Pix[row*img.Width+col]
}

// Set stores the color at (row, col)
func (img *Image) Set(row, col int, c core.Vec3) {
	img.Pix[row*img.Width+col] = c
}

// RGBA converts the linear color grid to an 8-bit image. Channels are
// quantized by multiplying by 256 and truncating; the renderer's 0.999
// clamp keeps the result below 256.
func (img *Image) RGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for row := 0; row < img.Height; row++ {
		for col := 0; col < img.Width; col++ {
			c := img.At(row, col)
			out.SetRGBA(col, row, color.RGBA{
				R: quantize(c.X),
				G: quantize(c.Y),
				B: quantize(c.Z),
				A: 255,
			})
		}
	}
	return out
}

func quantize(channel float64) uint8 {
	v := int(channel * 256)
	if v > 255 {
		v = 255
	}
	if v < 0 {
		v = 0
	}
	return uint8(v)
}
