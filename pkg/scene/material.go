package scene

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Material describes how a surface responds to light. Albedo weights the
// diffuse, specular, reflected and refracted contributions in that order.
type Material struct {
	DiffuseColor     core.Vec3
	Albedo           core.Vec4
	SpecularExponent float64
	RefractiveIndex  float64
}

// NewMaterial creates a material with explicit weights
func NewMaterial(diffuseColor core.Vec3, albedo core.Vec4, specularExponent, refractiveIndex float64) Material {
	return Material{
		DiffuseColor:     diffuseColor,
		Albedo:           albedo,
		SpecularExponent: specularExponent,
		RefractiveIndex:  refractiveIndex,
	}
}

// NewDiffuseMaterial creates a purely diffuse material of the given color
func NewDiffuseMaterial(diffuseColor core.Vec3) Material {
	return NewMaterial(diffuseColor, core.NewVec4(1, 0, 0, 0), 0, 1)
}

// Validate reports whether the material can be rendered
func (m Material) Validate() error {
	if m.Albedo.X < 0 || m.Albedo.Y < 0 || m.Albedo.Z < 0 || m.Albedo.W < 0 {
		return fmt.Errorf("albedo %v: %w", m.Albedo, ErrNegativeAlbedo)
	}
	if m.RefractiveIndex < 1 {
		return fmt.Errorf("refractive index %g: %w", m.RefractiveIndex, ErrInvalidRefractiveIndex)
	}
	return nil
}

// Named materials used by the built-in scenes
var (
	Ivory     = NewMaterial(core.NewVec3(0.4, 0.4, 0.3), core.NewVec4(0.6, 0.3, 0.1, 0), 50, 1)
	Glass     = NewMaterial(core.NewVec3(0.6, 0.7, 0.8), core.NewVec4(0, 0.5, 0.1, 0.8), 125, 1.5)
	RedRubber = NewMaterial(core.NewVec3(0.3, 0.1, 0.1), core.NewVec4(0.9, 0.1, 0, 0), 10, 1)
	Mirror    = NewMaterial(core.NewVec3(1, 1, 1), core.NewVec4(0, 10, 0.8, 0), 1425, 1)
)

// NamedMaterials maps material names to the shared built-in materials
var NamedMaterials = map[string]Material{
	"ivory":      Ivory,
	"glass":      Glass,
	"red-rubber": RedRubber,
	"mirror":     Mirror,
}
