package geometry

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64

	// ReportBackfacingHits reports the near root whenever the discriminant is
	// non-negative, even when the sphere lies behind the ray origin (t < 0).
	// When false, only intersections in front of the origin are reported.
	ReportBackfacingHits bool
}

// NewSphere creates a new sphere that reports any non-negative discriminant as a hit
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center:               center,
		Radius:               radius,
		ReportBackfacingHits: true,
	}
}

// NewForwardSphere creates a sphere that only reports hits in front of the ray origin
func NewForwardSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// Intersect tests if a ray intersects with the sphere and returns the entry distance t.
// A ray with a zero-length direction never hits.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	if a == 0 {
		return 0, false
	}
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	root := (-b - sqrtD) / (2.0 * a)
	if s.ReportBackfacingHits {
		return root, true
	}

	if root > 0 {
		return root, true
	}
	// Origin inside the sphere: the far root is the forward exit point
	root = (-b + sqrtD) / (2.0 * a)
	if root > 0 {
		return root, true
	}
	return 0, false
}
