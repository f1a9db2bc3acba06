package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Framebuffer holds unclamped linear colors in row-major order
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer creates a framebuffer filled with black
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color of pixel (i, j)
func (fb *Framebuffer) At(i, j int) core.Vec3 {
	return fb.Pixels[i+j*fb.Width]
}

// Set stores the color of pixel (i, j)
func (fb *Framebuffer) Set(i, j int, c core.Vec3) {
	fb.Pixels[i+j*fb.Width] = c
}

// Row returns the slice backing row j. Writes through it land in the framebuffer.
func (fb *Framebuffer) Row(j int) []core.Vec3 {
	return fb.Pixels[j*fb.Width : (j+1)*fb.Width]
}

// ToRGBA converts the framebuffer to an 8-bit image
func (fb *Framebuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for j := 0; j < fb.Height; j++ {
		for i := 0; i < fb.Width; i++ {
			r, g, b := toBytes(fb.At(i, j))
			img.SetRGBA(i, j, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// WritePPM writes the framebuffer as a binary P6 image
func (fb *Framebuffer) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}
	for _, c := range fb.Pixels {
		r, g, b := toBytes(c)
		if _, err := bw.Write([]byte{r, g, b}); err != nil {
			return fmt.Errorf("failed to write PPM pixels: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write PPM pixels: %w", err)
	}
	return nil
}

// toBytes scales colors brighter than 1 down by their largest channel so
// hue is kept, then quantizes each channel to [0, 255]
func toBytes(c core.Vec3) (r, g, b uint8) {
	if m := c.MaxComponent(); m > 1 {
		c = c.Multiply(1 / m)
	}
	c = c.Clamp(0, 1)
	return uint8(255 * c.X), uint8(255 * c.Y), uint8(255 * c.Z)
}
