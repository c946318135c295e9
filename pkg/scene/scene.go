package scene

import (
	"math"
	"math/rand"

	"pathtracer/pkg/core"
	"pathtracer/pkg/geometry"
	"pathtracer/pkg/material"
)

// Object pairs a sphere with the material covering its surface. Objects are
// plain values held in the scene's slice; workers share them read-only.
type Object struct {
	Sphere   geometry.Sphere
	Material material.Material
}

// NewObject creates an object from a sphere and a material
func NewObject(sphere geometry.Sphere, mat material.Material) Object {
	return Object{Sphere: sphere, Material: mat}
}

// Scene is an ordered, flat collection of objects. The order is fixed once
// the scene is built: intersection ties resolve to the earliest object, so
// reordering would change renders. Scenes are never mutated during a render.
type Scene struct {
	Objects []Object
}

// NewScene creates a scene over the given object list
func NewScene(objects []Object) *Scene {
	return &Scene{Objects: objects}
}

// Intersect scans every object and returns the closest intersection strictly
// inside (tMin, tMax). Exact distance ties keep the earliest object in scene
// order. A NaN hit distance is a fatal numeric fault and panics rather than
// being skipped.
func (s *Scene) Intersect(ray core.Ray, tMin, tMax float64) (*Intersection, bool) {
	closestT := math.Inf(1)
	closestIndex := -1

	for i := range s.Objects {
		t, ok := s.Objects[i].Sphere.Intersect(ray, tMin, tMax)
		if !ok {
			continue
		}
		if math.IsNaN(t) {
			panic("scene: NaN intersection distance")
		}
		if t < closestT {
			closestT = t
			closestIndex = i
		}
	}

	if closestIndex < 0 {
		return nil, false
	}
	return &Intersection{T: closestT, Ray: ray, object: &s.Objects[closestIndex]}, true
}

// Intersection records a hit along a ray. The hit point and the oriented
// normal are computed on first access and cached, so every reader observes
// one consistent pair no matter how often they are queried. An Intersection
// lives inside a single worker goroutine for one integrator evaluation; the
// cache needs no locking.
type Intersection struct {
	T   float64
	Ray core.Ray

	object *Object

	point          core.Vec3
	pointComputed  bool
	normal         core.Vec3
	front          bool
	normalComputed bool
}

// Object returns the scene object this intersection came from
func (in *Intersection) Object() *Object {
	return in.object
}

// Point returns the hit point along the ray, computed once
func (in *Intersection) Point() core.Vec3 {
	if !in.pointComputed {
		in.point = in.Ray.At(in.T)
		in.pointComputed = true
	}
	return in.point
}

// Normal returns the unit surface normal oriented against the ray
func (in *Intersection) Normal() core.Vec3 {
	in.orient()
	return in.normal
}

// FrontFace reports whether the ray arrived from the side the geometric
// normal points toward
func (in *Intersection) FrontFace() bool {
	in.orient()
	return in.front
}

func (in *Intersection) orient() {
	if in.normalComputed {
		return
	}
	n := in.object.Sphere.NormalAt(in.Point())
	in.front = in.Ray.Direction.Dot(n) < 0
	if !in.front {
		n = n.Negate()
	}
	in.normal = n
	in.normalComputed = true
}

// Scatter produces the material response at this intersection, reading the
// hit point and oriented normal through the cached accessors
func (in *Intersection) Scatter(random *rand.Rand) (core.Ray, core.Vec3) {
	return in.object.Material.Scatter(in.Ray, in.Point(), in.Normal(), in.FrontFace(), random)
}
