package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	World       geometry.Hittable // Objects in the scene
	TopColor    core.Color        // Background color straight up
	BottomColor core.Color        // Background color straight down
}

// GetWorld returns the hittable queried for every camera ray
func (s *Scene) GetWorld() geometry.Hittable {
	return s.World
}

// GetBackgroundColors returns the gradient endpoints
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Color) {
	return s.TopColor, s.BottomColor
}
