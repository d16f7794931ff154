package output

import (
	"bytes"
	"image"
	"testing"

	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// stubScene holds one sphere under the sky gradient
type stubScene struct {
	world geometry.Hittable
}

func (s stubScene) GetWorld() geometry.Hittable { return s.world }
func (s stubScene) GetBackgroundColors() (core.Color, core.Color) {
	return core.NewColor(0.5, 0.7, 1.0), core.NewColor(1, 1, 1)
}

func sceneStub() stubScene {
	return stubScene{world: geometry.NewSphere(core.NewPoint(0, 0, -1), 0.5)}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input       string
		expected    Format
		expectError bool
	}{
		{"ppm", FormatPPM, false},
		{"PNG", FormatPNG, false},
		{" bmp ", FormatBMP, false},
		{"tif", FormatTIFF, false},
		{"tiff", FormatTIFF, false},
		{"jpeg", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for %q, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"out.png", FormatPNG},
		{"renders/image.BMP", FormatBMP},
		{"image.tif", FormatTIFF},
		{"image.ppm", FormatPPM},
		{"image", FormatPPM},
		{"image.gif", FormatPPM},
	}

	for _, tt := range tests {
		if got := FormatFromPath(tt.path); got != tt.expected {
			t.Errorf("FormatFromPath(%q): expected %q, got %q", tt.path, tt.expected, got)
		}
	}
}

func TestToRGBA(t *testing.T) {
	rgba := ToRGBA(testImage())

	tests := []struct {
		x, y    int
		r, g, b uint8
	}{
		{0, 0, 127, 179, 255},
		{1, 0, 255, 255, 255},
		{0, 1, 0, 0, 0},
		{1, 1, 255, 0, 63},
	}

	for _, tt := range tests {
		c := rgba.RGBAAt(tt.x, tt.y)
		if c.R != tt.r || c.G != tt.g || c.B != tt.b || c.A != 255 {
			t.Errorf("Pixel (%d,%d): expected (%d,%d,%d,255), got %v", tt.x, tt.y, tt.r, tt.g, tt.b, c)
		}
	}
}

func TestEncode_RoundTripsThroughDecoders(t *testing.T) {
	src := testImage()
	want := ToRGBA(src)

	for _, format := range []Format{FormatPNG, FormatBMP, FormatTIFF} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, src, format); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			decoded, name, err := image.Decode(&buf)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if name != string(format) {
				t.Errorf("Expected decoder %q, got %q", format, name)
			}
			if decoded.Bounds() != want.Bounds() {
				t.Fatalf("Expected bounds %v, got %v", want.Bounds(), decoded.Bounds())
			}

			for y := 0; y < src.Height; y++ {
				for x := 0; x < src.Width; x++ {
					r1, g1, b1, _ := decoded.At(x, y).RGBA()
					r2, g2, b2, _ := want.At(x, y).RGBA()
					if r1 != r2 || g1 != g2 || b1 != b2 {
						t.Errorf("Pixel (%d,%d) differs after %s round trip", x, y, format)
					}
				}
			}
		})
	}
}

func TestEncode_PPMMatchesWritePPM(t *testing.T) {
	var encoded, written bytes.Buffer
	if err := Encode(&encoded, testImage(), FormatPPM); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if err := WritePPM(&written, testImage()); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}
	if encoded.String() != written.String() {
		t.Error("Encode(ppm) differs from WritePPM")
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testImage(), Format("gif")); err == nil {
		t.Error("Expected error for unknown format")
	}
}
