// Package ppm encodes rendered images as plain-text PPM (P3).
package ppm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jfeld/go-pathtracer/pkg/renderer"
)

// Encode writes img to w in P3 format: the magic number, dimensions and max
// value header followed by one row of 8-bit RGB triples per line. Channels
// are quantized by multiplying by 256 and truncating; the renderer's 0.999
// clamp keeps values below 256.
func Encode(w io.Writer, img *renderer.Image) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return err
	}

	for row := 0; row < img.Height; row++ {
		for col := 0; col < img.Width; col++ {
			c := img.At(row, col)
			if _, err := fmt.Fprintf(bw, "%d %d %d ", quantize(c.X), quantize(c.Y), quantize(c.Z)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func quantize(channel float64) int {
	v := int(channel * 256)
	if v > 255 {
		v = 255
	}
	if v < 0 {
		v = 0
	}
	return v
}
