package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Checkerboard is a horizontal tiled floor. The hit test treats it as a
// plane but only accepts points inside a fixed rectangle.
type Checkerboard struct {
	Height          float64 // plane equation y = Height
	HalfWidth       float64 // accepted when |x| < HalfWidth
	NearZ, FarZ     float64 // accepted when FarZ < z < NearZ
	OddColor        core.Vec3
	EvenColor       core.Vec3
	ParallelEpsilon float64

	tileOffsetX float64
	tileScale   float64
}

// NewCheckerboard returns the standard floor at y = -4 spanning
// -10 < x < 10 and -30 < z < -10
func NewCheckerboard() *Checkerboard {
	return &Checkerboard{
		Height:          -4,
		HalfWidth:       10,
		NearZ:           -10,
		FarZ:            -30,
		OddColor:        core.NewVec3(0.3, 0.3, 0.3),
		EvenColor:       core.NewVec3(0.3, 0.2, 0.1),
		ParallelEpsilon: 1e-3,
		tileOffsetX:     1000,
		tileScale:       0.5,
	}
}

// Intersect returns the distance to the floor and the hit point. Rays
// nearly parallel to the plane never hit.
func (c *Checkerboard) Intersect(ray core.Ray) (float64, core.Vec3, bool) {
	if math.Abs(ray.Direction.Y) <= c.ParallelEpsilon {
		return 0, core.Vec3{}, false
	}

	t := -(ray.Origin.Y - c.Height) / ray.Direction.Y
	point := ray.At(t)
	if t <= 0 || math.Abs(point.X) >= c.HalfWidth || point.Z >= c.NearZ || point.Z <= c.FarZ {
		return 0, core.Vec3{}, false
	}
	return t, point, true
}

// Normal returns the upward floor normal
func (c *Checkerboard) Normal() core.Vec3 {
	return core.NewVec3(0, 1, 0)
}

// MaterialAt returns the diffuse tile material at a floor point.
// The x offset keeps the truncated tile index positive across the origin.
func (c *Checkerboard) MaterialAt(point core.Vec3) Material {
	ix := int(c.tileScale*point.X + c.tileOffsetX)
	iz := int(c.tileScale * point.Z)
	if (ix+iz)&1 == 1 {
		return NewDiffuseMaterial(c.OddColor)
	}
	return NewDiffuseMaterial(c.EvenColor)
}
