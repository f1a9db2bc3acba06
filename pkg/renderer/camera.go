package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Camera generates primary rays looking down -z
type Camera struct {
	origin      core.Vec3
	width       int
	height      int
	halfHeight  float64 // tan(fov/2), half the view plane height at z = -1
	aspectRatio float64
}

// NewCamera creates a camera for a width x height image with the given
// vertical field of view in radians
func NewCamera(origin core.Vec3, width, height int, fov float64) *Camera {
	return &Camera{
		origin:      origin,
		width:       width,
		height:      height,
		halfHeight:  math.Tan(fov / 2),
		aspectRatio: float64(width) / float64(height),
	}
}

// GetRay returns the unit ray through the center of pixel (i, j), where
// j = 0 is the top row
func (c *Camera) GetRay(i, j int) core.Ray {
	x := (2*(float64(i)+0.5)/float64(c.width) - 1) * c.halfHeight * c.aspectRatio
	y := -(2*(float64(j)+0.5)/float64(c.height) - 1) * c.halfHeight
	return core.NewRay(c.origin, core.NewVec3(x, y, -1).Normalize())
}
