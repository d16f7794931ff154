package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// Sky and horizon colors of the background gradient
var (
	SkyColor     = core.NewColor(0.5, 0.7, 1.0)
	HorizonColor = core.NewColor(1.0, 1.0, 1.0)
)

// NewDefaultScene creates the single sphere at (0,0,-1) with radius 0.5 under a sky gradient
func NewDefaultScene() *Scene {
	return NewSceneWithSphere(core.NewPoint(0, 0, -1), 0.5)
}

// NewSceneWithSphere creates a sky-gradient scene holding one sphere
func NewSceneWithSphere(center core.Point, radius float64) *Scene {
	return &Scene{
		World:       geometry.NewHittableList(geometry.NewSphere(center, radius)),
		TopColor:    SkyColor,
		BottomColor: HorizonColor,
	}
}
