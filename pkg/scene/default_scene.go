package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// NewDefaultScene creates the default scene: four spheres of different
// materials over the checkerboard floor, lit by three point lights
func NewDefaultScene() *Scene {
	spheres := []Sphere{
		NewSphere(core.NewVec3(-3, 0, -16), 2, Ivory),
		NewSphere(core.NewVec3(-1, -1.5, -12), 2, Glass),
		NewSphere(core.NewVec3(1.5, -0.5, -18), 3, RedRubber),
		NewSphere(core.NewVec3(7, 5, -18), 4, Mirror),
	}

	lights := []Light{
		NewLight(core.NewVec3(-20, 20, 20), 1.5),
		NewLight(core.NewVec3(-30, 50, -25), 1.8),
		NewLight(core.NewVec3(30, 20, 30), 1.7),
	}

	// Built-in values always validate
	s, err := NewScene(spheres, lights, NewCheckerboard())
	if err != nil {
		panic(err)
	}
	return s
}
