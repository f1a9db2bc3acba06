package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

const (
	// MaxDepth is the deepest recursion level that still interacts with the scene
	MaxDepth = 4
	// MaxDistance is the distance beyond which nothing counts as a hit
	MaxDistance = 1000.0
	// Epsilon offsets secondary ray origins off the surface
	Epsilon = 1e-3
)

// BackgroundColor is returned for rays that escape the scene
var BackgroundColor = core.NewVec3(0.2, 0.7, 0.8)

// Tracer evaluates rays against a fixed snapshot of a scene. It holds no
// mutable state and is safe for concurrent use.
type Tracer struct {
	spheres []scene.Sphere
	lights  []scene.Light
	floor   *scene.Checkerboard
}

// NewTracer snapshots the scene. Later changes to s are not seen by the tracer.
func NewTracer(s *scene.Scene) *Tracer {
	t := &Tracer{
		spheres: append([]scene.Sphere(nil), s.Spheres...),
		lights:  append([]scene.Light(nil), s.Lights...),
	}
	if s.Floor != nil {
		floor := *s.Floor
		t.floor = &floor
	}
	return t
}

// CastRay returns the color seen along the ray. Recursion stops once depth
// exceeds MaxDepth.
func (t *Tracer) CastRay(ray core.Ray, depth int) core.Vec3 {
	if depth > MaxDepth {
		return BackgroundColor
	}
	hit, ok := t.Intersect(ray)
	if !ok {
		return BackgroundColor
	}

	reflectDir := reflect(ray.Direction, hit.Normal).Normalize()
	reflectOrig := perturb(reflectDir, hit.Point, hit.Normal)
	reflectColor := t.CastRay(core.NewRay(reflectOrig, reflectDir), depth+1)

	refractDir := refract(ray.Direction, hit.Normal, hit.Material.RefractiveIndex).Normalize()
	refractOrig := perturb(refractDir, hit.Point, hit.Normal)
	refractColor := t.CastRay(core.NewRay(refractOrig, refractDir), depth+1)

	diffuse, specular := t.Shade(hit.Point, hit.Normal, ray.Direction, hit.Material)

	albedo := hit.Material.Albedo
	return hit.Material.DiffuseColor.Multiply(diffuse * albedo.X).
		Add(core.NewVec3(1, 1, 1).Multiply(specular * albedo.Y)).
		Add(reflectColor.Multiply(albedo.Z)).
		Add(refractColor.Multiply(albedo.W))
}

// reflect mirrors incident about the normal
func reflect(incident, normal core.Vec3) core.Vec3 {
	return incident.Subtract(normal.Multiply(2 * incident.Dot(normal)))
}

// refract bends incident through a surface using Snell's law. The normal is
// the outward normal; a ray leaving the medium swaps the indices. Total
// internal reflection yields (1,0,0).
func refract(incident, normal core.Vec3, refractiveIndex float64) core.Vec3 {
	cosi := -max(-1, min(1, incident.Dot(normal)))
	etai, etat := 1.0, refractiveIndex
	n := normal
	if cosi < 0 {
		cosi = -cosi
		etai, etat = etat, etai
		n = normal.Negate()
	}

	eta := etai / etat
	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		return core.NewVec3(1, 0, 0)
	}
	return incident.Multiply(eta).Add(n.Multiply(eta*cosi - math.Sqrt(k)))
}

// perturb moves point off the surface to the side direction points toward
func perturb(direction, point, normal core.Vec3) core.Vec3 {
	if direction.Dot(normal) < 0 {
		return point.Subtract(normal.Multiply(Epsilon))
	}
	return point.Add(normal.Multiply(Epsilon))
}
