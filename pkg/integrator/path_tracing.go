package integrator

import (
	"math"
	"math/rand"

	"pathtracer/pkg/core"
	"pathtracer/pkg/scene"
)

var (
	white   = core.NewVec3(1.0, 1.0, 1.0)
	skyBlue = core.NewVec3(0.5, 0.7, 1.0)
)

// PathTracer implements unidirectional path tracing over a sphere scene
type PathTracer struct {
	MaxDepth int
}

// NewPathTracer creates a path tracer with the given recursion depth
func NewPathTracer(maxDepth int) *PathTracer {
	return &PathTracer{MaxDepth: maxDepth}
}

// Trace computes the color for a primary ray at the full recursion depth
func (pt *PathTracer) Trace(ray core.Ray, s *scene.Scene, random *rand.Rand) core.Vec3 {
	return pt.RayColor(ray, s, random, pt.MaxDepth)
}

// RayColor recursively estimates the light arriving along a ray. Once depth
// is exhausted no more light is gathered and the path contributes black.
func (pt *PathTracer) RayColor(ray core.Ray, s *scene.Scene, random *rand.Rand, depth int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := s.Intersect(ray, 0, math.Inf(1))
	if !isHit {
		return Background(ray.Direction)
	}

	scattered, attenuation := hit.Scatter(random)
	return attenuation.MultiplyVec(pt.RayColor(scattered, s, random, depth-1))
}

// Background returns the sky gradient for a ray direction, blending from
// white at the horizon to light blue at the zenith
func Background(direction core.Vec3) core.Vec3 {
	t := 0.5 * (direction.Y + 1.0)
	return white.Lerp(skyBlue, t)
}
