package geometry

import (
	"math"

	"pathtracer/pkg/core"
)

// Sphere represents a sphere by center and radius. The radius must be
// positive; this is a precondition, not a validated invariant.
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// Intersect solves the ray-sphere quadratic and returns the smallest hit
// distance strictly inside (tMin, tMax). A tangent ray, where the
// discriminant is exactly zero, counts as a miss.
func (s Sphere) Intersect(ray core.Ray, tMin, tMax float64) (float64, bool) {
	// Half-b form: a*t² + 2b*t + c = 0
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.LengthSquared()
	b := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := b*b - a*c
	if discriminant <= 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first, then the farther one
	root := (-b - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-b + sqrtD) / a
		if root <= tMin || root >= tMax {
			return 0, false
		}
	}

	return root, true
}

// NormalAt returns the outward unit normal for a point on the sphere surface
func (s Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Multiply(1.0 / s.Radius)
}
