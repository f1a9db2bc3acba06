package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Hit describes the closest surface point along a ray
type Hit struct {
	Point    core.Vec3
	Normal   core.Vec3 // outward surface normal
	Material scene.Material
	Distance float64
}

// Intersect finds the closest sphere or floor point along the ray.
// The bool is false when nothing lies within MaxDistance.
func (t *Tracer) Intersect(ray core.Ray) (Hit, bool) {
	var hit Hit
	sphereDist := math.MaxFloat64
	for i := range t.spheres {
		dist, ok := t.spheres[i].Intersect(ray)
		if !ok || dist >= sphereDist {
			continue
		}
		sphereDist = dist
		hit.Point = ray.At(dist)
		hit.Normal = t.spheres[i].NormalAt(hit.Point)
		hit.Material = t.spheres[i].Material
		hit.Distance = dist
	}

	floorDist := math.MaxFloat64
	if t.floor != nil {
		if dist, point, ok := t.floor.Intersect(ray); ok && dist < sphereDist {
			floorDist = dist
			hit.Point = point
			hit.Normal = t.floor.Normal()
			hit.Material = t.floor.MaterialAt(point)
			hit.Distance = dist
		}
	}

	if min(sphereDist, floorDist) >= MaxDistance {
		return Hit{}, false
	}
	return hit, true
}
