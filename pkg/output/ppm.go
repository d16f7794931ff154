package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// WritePPM writes img as a plain-text P3 image, top row first.
// Every pixel is written as "R G B " and every row ends with a newline.
func WritePPM(w io.Writer, img *renderer.Image) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	for y := 0; y < img.Height; y++ {
		for _, pixel := range img.Row(y) {
			r, g, b := core.ToRGB8(pixel)
			if _, err := fmt.Fprintf(bw, "%d %d %d ", r, g, b); err != nil {
				return fmt.Errorf("failed to write PPM row %d: %w", y, err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write PPM row %d: %w", y, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush PPM output: %w", err)
	}
	return nil
}
