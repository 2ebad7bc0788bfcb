package geometry

import "github.com/df07/go-raycaster/pkg/core"

// Shape interface for objects that can be intersected by rays
type Shape interface {
	// Intersect returns the hit distance along the ray, or false on a miss
	Intersect(ray core.Ray) (float64, bool)
}
