package renderer

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// CameraConfig contains the parameters for a pinhole camera
type CameraConfig struct {
	Width  int     // Image width in pixels
	Height int     // Image height in pixels
	FOV    float64 // Field of view in degrees, applied to both axes
}

// Camera generates one ray per pixel from a fixed origin looking down -Z
type Camera struct {
	config CameraConfig
	origin core.Vec3
	scale  float64 // tan(FOV/2)
}

// NewCamera creates a pinhole camera at the origin
func NewCamera(config CameraConfig) *Camera {
	return &Camera{
		config: config,
		origin: core.NewVec3(0, 0, 0),
		scale:  math.Tan(config.FOV / 2 * math.Pi / 180),
	}
}

// Config returns the camera configuration
func (c *Camera) Config() CameraConfig {
	return c.config
}

// GetRay generates the ray through the center of pixel (i, j).
// Pixel (0, 0) is the top-left corner. The image plane is not corrected for
// aspect ratio, so non-square images stretch horizontally.
func (c *Camera) GetRay(i, j int) (core.Ray, error) {
	x := (2*(float64(i)+0.5)/float64(c.config.Width) - 1) * c.scale
	y := (1 - 2*(float64(j)+0.5)/float64(c.config.Height)) * c.scale

	direction, err := core.NewVec3(x, y, -1).Normalize()
	if err != nil {
		return core.Ray{}, err
	}
	return core.NewRay(c.origin, direction), nil
}
