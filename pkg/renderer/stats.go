package renderer

import "time"

// RenderStats contains statistics about a finished render
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	Hits        int           // Pixels whose ray hit the shape
	Misses      int           // Pixels that fell through to the background
	Workers     int           // Number of concurrent row workers used
	Duration    time.Duration // Wall time of the render loop
}

// HitRatio returns the fraction of pixels that hit the shape
func (s RenderStats) HitRatio() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.TotalPixels)
}
