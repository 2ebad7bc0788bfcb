package renderer

import "github.com/df07/go-raycaster/pkg/core"

// Framebuffer holds one unclamped RGB color per pixel in row-major order, row 0 at the top
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer allocates a framebuffer of width*height black pixels
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// Index returns the slot for pixel (i, j)
func (fb *Framebuffer) Index(i, j int) int {
	return j*fb.Width + i
}

// At returns the color at pixel (i, j)
func (fb *Framebuffer) At(i, j int) core.Vec3 {
	return fb.Pixels[fb.Index(i, j)]
}

// Set stores the color at pixel (i, j)
func (fb *Framebuffer) Set(i, j int, color core.Vec3) {
	fb.Pixels[fb.Index(i, j)] = color
}
