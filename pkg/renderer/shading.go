package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Shade sums the diffuse and specular intensity reaching point from every
// unoccluded light. direction is the incoming view ray direction.
func (t *Tracer) Shade(point, normal, direction core.Vec3, material scene.Material) (diffuse, specular float64) {
	for _, light := range t.lights {
		toLight := light.Position.Subtract(point)
		lightDir := toLight.Normalize()
		lightDistance := toLight.Length()

		shadowOrig := perturb(lightDir, point, normal)
		if shadowHit, ok := t.Intersect(core.NewRay(shadowOrig, lightDir)); ok &&
			shadowHit.Point.Subtract(shadowOrig).Length() < lightDistance {
			continue
		}

		diffuse += light.Intensity * max(0, lightDir.Dot(normal))
		r := reflect(lightDir.Negate(), normal).Negate()
		specular += light.Intensity * math.Pow(max(0, r.Dot(direction)), material.SpecularExponent)
	}
	return diffuse, specular
}
