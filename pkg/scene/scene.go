package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/renderer"
)

// Scene contains all the elements needed for rendering: one camera and one sphere
type Scene struct {
	Camera          *renderer.Camera
	CameraConfig    renderer.CameraConfig
	Sphere          *geometry.Sphere
	HitColor        core.Vec3 // Flat color for pixels whose ray hits the sphere
	BackgroundColor core.Vec3 // Color for pixels whose ray misses
}

// GetCamera implements renderer.Scene
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetShape implements renderer.Scene
func (s *Scene) GetShape() geometry.Shape {
	return s.Sphere
}

// GetColors implements renderer.Scene
func (s *Scene) GetColors() (hitColor, backgroundColor core.Vec3) {
	return s.HitColor, s.BackgroundColor
}

// NewScene builds a scene from a validated configuration
func NewScene(cfg Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cameraConfig := renderer.CameraConfig{
		Width:  cfg.Width,
		Height: cfg.Height,
		FOV:    cfg.FOV,
	}

	sphere := geometry.NewSphere(vecFromSlice(cfg.Sphere.Center), cfg.Sphere.Radius)
	if !cfg.ReportBackfacingHits {
		sphere = geometry.NewForwardSphere(vecFromSlice(cfg.Sphere.Center), cfg.Sphere.Radius)
	}

	return &Scene{
		Camera:          renderer.NewCamera(cameraConfig),
		CameraConfig:    cameraConfig,
		Sphere:          sphere,
		HitColor:        vecFromSlice(cfg.HitColor),
		BackgroundColor: vecFromSlice(cfg.BackgroundColor),
	}, nil
}

func vecFromSlice(v []float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
