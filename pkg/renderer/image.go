package renderer

import "github.com/df07/go-sphere-raytracer/pkg/core"

// Image is a row-major pixel buffer with row 0 at the top
type Image struct {
	Width  int
	Height int
	Pixels []core.Color
}

// NewImage allocates a black image
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]core.Color, width*height),
	}
}

// At returns the color at column x, row y (row 0 is the top)
func (img *Image) At(x, y int) core.Color {
	return img.Pixels[y*img.Width+x]
}

// Set stores the color at column x, row y
func (img *Image) Set(x, y int, c core.Color) {
	img.Pixels[y*img.Width+x] = c
}

// Row returns the pixels of row y, sharing the underlying buffer
func (img *Image) Row(y int) []core.Color {
	return img.Pixels[y*img.Width : (y+1)*img.Width]
}
