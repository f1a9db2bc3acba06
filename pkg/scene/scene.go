package scene

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRadius          = errors.New("sphere radius must be positive")
	ErrInvalidIntensity       = errors.New("light intensity must be positive")
	ErrInvalidRefractiveIndex = errors.New("refractive index must be at least 1")
	ErrNegativeAlbedo         = errors.New("albedo weights must be non-negative")
)

// Scene contains all the elements needed for rendering. Sphere order only
// matters for breaking exact distance ties. A scene must not be modified
// while a frame is being rendered.
type Scene struct {
	Spheres []Sphere
	Lights  []Light
	Floor   *Checkerboard // nil for no floor
}

// NewScene validates the scene contents and returns the scene
func NewScene(spheres []Sphere, lights []Light, floor *Checkerboard) (*Scene, error) {
	s := &Scene{
		Spheres: spheres,
		Lights:  lights,
		Floor:   floor,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks every sphere, material and light in the scene
func (s *Scene) Validate() error {
	for i, sphere := range s.Spheres {
		if !(sphere.Radius > 0) {
			return fmt.Errorf("sphere %d: radius %g: %w", i, sphere.Radius, ErrInvalidRadius)
		}
		if err := sphere.Material.Validate(); err != nil {
			return fmt.Errorf("sphere %d: %w", i, err)
		}
	}
	for i, light := range s.Lights {
		if !(light.Intensity > 0) {
			return fmt.Errorf("light %d: intensity %g: %w", i, light.Intensity, ErrInvalidIntensity)
		}
	}
	return nil
}
