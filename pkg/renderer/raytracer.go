package renderer

import (
	"context"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// Scene interface to avoid circular imports
type Scene interface {
	GetWorld() geometry.Hittable
	GetBackgroundColors() (topColor, bottomColor core.Color)
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene  Scene
	config Config
	camera *Camera
	logger core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		scene:  scene,
		config: config,
		camera: NewCamera(config),
		logger: logger,
	}
}

// Camera returns the camera rays are generated from
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// RayColor returns the color seen along r
func (rt *Raytracer) RayColor(r core.Ray) core.Color {
	color, _ := RayColor(r, rt.scene, rt.config.TMin)
	return color
}

// RayColor returns the color seen along r and whether it hit a surface.
// Hits are shaded by mapping the unit normal from [-1,1] to [0,1];
// misses take the vertical background gradient.
func RayColor(r core.Ray, scene Scene, tMin float64) (core.Color, bool) {
	valid := core.PositiveInterval(tMin)
	hit, isHit := scene.GetWorld().Hit(r, valid.Min, valid.Max)
	if isHit {
		return NormalColor(hit.Normal), true
	}
	topColor, bottomColor := scene.GetBackgroundColors()
	return BackgroundGradient(r, topColor, bottomColor), false
}

// NormalColor maps each component n of a unit normal to 0.5*(n+1)
func NormalColor(normal core.Vec3) core.Color {
	return normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
}

// BackgroundGradient returns a gradient color based on ray direction
func BackgroundGradient(r core.Ray, topColor, bottomColor core.Color) core.Color {
	// Normalize the ray direction to get consistent results
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return bottomColor.Lerp(topColor, t)
}

// Render traces one ray per pixel and returns the image with row 0 at the top
func (rt *Raytracer) Render(ctx context.Context) (*Image, RenderStats, error) {
	startTime := time.Now()
	width := rt.config.ImageWidth
	height := rt.config.ImageHeight()
	img := NewImage(width, height)

	stats, err := rt.renderBands(ctx, img)
	if err != nil {
		return nil, RenderStats{}, err
	}
	stats.Duration = time.Since(startTime)

	rt.logger.Printf("Rendered %dx%d in %v (%d hits, %d misses)\n",
		width, height, stats.Duration, stats.Hits, stats.Misses)
	return img, stats, nil
}

// renderRow fills image row y. Rows are counted from the top of the image,
// while v runs from the bottom of the viewport.
func (rt *Raytracer) renderRow(img *Image, y int) RenderStats {
	j := img.Height - 1 - y
	v := normalizedCoordinate(j, img.Height)
	row := img.Row(y)

	stats := RenderStats{TotalPixels: img.Width}
	for i := range row {
		u := normalizedCoordinate(i, img.Width)
		color, isHit := RayColor(rt.camera.GetRay(u, v), rt.scene, rt.config.TMin)
		row[i] = color
		if isHit {
			stats.Hits++
		} else {
			stats.Misses++
		}
	}
	return stats
}

// normalizedCoordinate maps index 0..n-1 onto [0, 1]
func normalizedCoordinate(index, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(index) / float64(n-1)
}
