package renderer

import (
	"fmt"
	"runtime"
)

// Config holds the image and camera geometry fixed for a render
type Config struct {
	AspectRatio    float64 `mapstructure:"aspect-ratio"`    // Image width divided by height
	ImageWidth     int     `mapstructure:"width"`           // Image width in pixels
	ViewportHeight float64 `mapstructure:"viewport-height"` // Viewport height in world units
	FocalLength    float64 `mapstructure:"focal-length"`    // Distance from camera to viewport
	Workers        int     `mapstructure:"workers"`         // Row bands rendered in parallel (0 = CPU count)
	TMin           float64 `mapstructure:"t-min"`           // Smallest accepted ray parameter
}

// DefaultConfig returns a 16:9 image 400 pixels wide seen through a 2-unit viewport
func DefaultConfig() Config {
	return Config{
		AspectRatio:    16.0 / 9.0,
		ImageWidth:     400,
		ViewportHeight: 2.0,
		FocalLength:    1.0,
		Workers:        1,
		TMin:           0.001,
	}
}

// ImageHeight derives the pixel height from width and aspect ratio, never less than 1
func (c Config) ImageHeight() int {
	return max(1, int(float64(c.ImageWidth)/c.AspectRatio))
}

// ViewportWidth derives the viewport width from its height and the aspect ratio
func (c Config) ViewportWidth() float64 {
	return c.AspectRatio * c.ViewportHeight
}

// NumWorkers resolves the worker count, substituting the CPU count for 0
func (c Config) NumWorkers() int {
	if c.Workers <= 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}

// Validate rejects geometry that cannot produce an image
func (c Config) Validate() error {
	if c.ImageWidth <= 0 {
		return fmt.Errorf("image width must be positive, got %d", c.ImageWidth)
	}
	if !(c.AspectRatio > 0) {
		return fmt.Errorf("aspect ratio must be positive, got %v", c.AspectRatio)
	}
	if !(c.ViewportHeight > 0) {
		return fmt.Errorf("viewport height must be positive, got %v", c.ViewportHeight)
	}
	if !(c.FocalLength > 0) {
		return fmt.Errorf("focal length must be positive, got %v", c.FocalLength)
	}
	if c.TMin < 0 {
		return fmt.Errorf("t-min must not be negative, got %v", c.TMin)
	}
	return nil
}
