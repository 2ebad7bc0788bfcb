package renderer

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
)

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetShape() geometry.Shape
	GetColors() (hitColor, backgroundColor core.Vec3)
}

// RenderConfig contains rendering configuration
type RenderConfig struct {
	Workers int // Concurrent scanline workers; <= 0 uses runtime.NumCPU()
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{Workers: runtime.NumCPU()}
}

// Raytracer casts one ray per pixel and records a flat hit or background color
type Raytracer struct {
	scene  Scene
	config RenderConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, config RenderConfig, logger core.Logger) *Raytracer {
	if config.Workers <= 0 {
		config.Workers = DefaultRenderConfig().Workers
	}
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		scene:  scene,
		config: config,
		logger: logger,
	}
}

// PixelColor returns the color for pixel (i, j) and whether its ray hit the shape
func (rt *Raytracer) PixelColor(i, j int) (core.Vec3, bool, error) {
	ray, err := rt.scene.GetCamera().GetRay(i, j)
	if err != nil {
		return core.Vec3{}, false, fmt.Errorf("pixel (%d, %d): %w", i, j, err)
	}

	hitColor, backgroundColor := rt.scene.GetColors()
	if _, isHit := rt.scene.GetShape().Intersect(ray); isHit {
		return hitColor, true, nil
	}
	return backgroundColor, false, nil
}

// renderRow fills scanline j and returns the number of hits
func (rt *Raytracer) renderRow(j int, fb *Framebuffer) (int, error) {
	hits := 0
	for i := 0; i < fb.Width; i++ {
		color, isHit, err := rt.PixelColor(i, j)
		if err != nil {
			return hits, err
		}
		fb.Set(i, j, color)
		if isHit {
			hits++
		}
	}
	return hits, nil
}

// Render fills a new framebuffer. Scanlines are split across workers, each
// owning whole rows, so no two goroutines write the same slot.
func (rt *Raytracer) Render(ctx context.Context) (*Framebuffer, RenderStats, error) {
	cameraConfig := rt.scene.GetCamera().Config()
	width, height := cameraConfig.Width, cameraConfig.Height
	if width <= 0 || height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("invalid image size %dx%d", width, height)
	}

	workers := min(rt.config.Workers, height)
	rt.logger.Printf("Rendering %dx%d (fov %.1f) using %d workers...\n",
		width, height, cameraConfig.FOV, workers)

	startTime := time.Now()
	fb := NewFramebuffer(width, height)
	rowHits := make([]int, height)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for j := 0; j < height; j++ {
		if gctx.Err() != nil {
			break
		}
		j := j
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			hits, err := rt.renderRow(j, fb)
			rowHits[j] = hits
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, RenderStats{}, err
	}
	// A cancellation observed only by the submit loop leaves rows unrendered
	if err := ctx.Err(); err != nil {
		return nil, RenderStats{}, err
	}

	stats := RenderStats{
		TotalPixels: width * height,
		Workers:     workers,
		Duration:    time.Since(startTime),
	}
	for _, hits := range rowHits {
		stats.Hits += hits
	}
	stats.Misses = stats.TotalPixels - stats.Hits

	rt.logger.Printf("Render completed in %v using %d workers (%d hits, %d misses)\n",
		stats.Duration, stats.Workers, stats.Hits, stats.Misses)
	return fb, stats, nil
}
