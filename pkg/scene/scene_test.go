package scene

import (
	"math"
	"math/rand"
	"testing"

	"pathtracer/pkg/core"
	"pathtracer/pkg/geometry"
	"pathtracer/pkg/material"
)

func testScene(centers ...core.Vec3) *Scene {
	objects := make([]Object, len(centers))
	for i, c := range centers {
		objects[i] = NewObject(
			geometry.NewSphere(c, 1),
			material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)),
		)
	}
	return NewScene(objects)
}

func TestSceneIntersectClosest(t *testing.T) {
	// Two spheres along -Z; the nearer one must win.
	s := testScene(core.NewVec3(0, 0, -3), core.NewVec3(0, 0, -8))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, ok := s.Intersect(ray, 0, math.Inf(1))
	if !ok {
		t.Fatal("Expected intersection, got miss")
	}
	if math.Abs(hit.T-2.0) > 1e-9 {
		t.Errorf("Expected closest hit at t=2, got t=%v", hit.T)
	}
	if hit.Object() != &s.Objects[0] {
		t.Errorf("Expected hit on first object, got %v", hit.Object())
	}
}

func TestSceneIntersectTieBreak(t *testing.T) {
	// Identical spheres produce identical distances; the earliest object
	// in scene order must win the tie.
	s := testScene(core.NewVec3(0, 0, -3), core.NewVec3(0, 0, -3))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, ok := s.Intersect(ray, 0, math.Inf(1))
	if !ok {
		t.Fatal("Expected intersection, got miss")
	}
	if hit.Object() != &s.Objects[0] {
		t.Error("Expected tie to resolve to the first object in scene order")
	}
}

func TestSceneIntersectInterval(t *testing.T) {
	s := testScene(core.NewVec3(0, 0, -3)) // hits at t=2 and t=4
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	tests := []struct {
		name      string
		tMin      float64
		tMax      float64
		expectHit bool
		expectedT float64
	}{
		{name: "full range takes near root", tMin: 0, tMax: math.Inf(1), expectHit: true, expectedT: 2},
		{name: "near root excluded takes far root", tMin: 2, tMax: math.Inf(1), expectHit: true, expectedT: 4},
		{name: "both roots excluded below", tMin: 4, tMax: math.Inf(1), expectHit: false},
		{name: "both roots excluded above", tMin: 0, tMax: 2, expectHit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := s.Intersect(ray, tt.tMin, tt.tMax)
			if ok != tt.expectHit {
				t.Fatalf("Expected hit=%v, got hit=%v", tt.expectHit, ok)
			}
			if ok && math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%v, got t=%v", tt.expectedT, hit.T)
			}
		})
	}
}

func TestSceneIntersectEmpty(t *testing.T) {
	s := NewScene(nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, ok := s.Intersect(ray, 0, math.Inf(1)); ok {
		t.Error("Expected empty scene to miss")
	}
}

func TestSceneIntersectNaNPanics(t *testing.T) {
	// A NaN ray origin propagates NaN through the quadratic: the
	// discriminant comparison fails to reject it and the NaN root passes
	// both open-interval checks. The scene must panic instead of
	// silently dropping the hit.
	s := testScene(core.NewVec3(0, 0, -3))
	ray := core.NewRay(core.NewVec3(math.NaN(), 0, 0), core.NewVec3(0, 0, -1))

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on NaN intersection distance")
		}
	}()
	s.Intersect(ray, 0, math.Inf(1))
}

func TestIntersectionLazyAccessors(t *testing.T) {
	s := testScene(core.NewVec3(0, 0, -3))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, ok := s.Intersect(ray, 0, math.Inf(1))
	if !ok {
		t.Fatal("Expected intersection, got miss")
	}

	expectedPoint := core.NewVec3(0, 0, -2)
	expectedNormal := core.NewVec3(0, 0, 1)

	point := hit.Point()
	if point.Subtract(expectedPoint).Length() > 1e-9 {
		t.Errorf("Expected point %v, got %v", expectedPoint, point)
	}
	normal := hit.Normal()
	if normal.Subtract(expectedNormal).Length() > 1e-9 {
		t.Errorf("Expected normal %v, got %v", expectedNormal, normal)
	}
	if !hit.FrontFace() {
		t.Error("Expected front face hit from outside the sphere")
	}

	// Repeated reads return the cached values.
	if hit.Point() != point {
		t.Error("Expected Point to be stable across calls")
	}
	if hit.Normal() != normal {
		t.Error("Expected Normal to be stable across calls")
	}
}

func TestIntersectionBackFace(t *testing.T) {
	// A ray starting inside the sphere hits the back face; the oriented
	// normal flips to oppose the ray.
	s := testScene(core.NewVec3(0, 0, 0))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, ok := s.Intersect(ray, 0, math.Inf(1))
	if !ok {
		t.Fatal("Expected intersection, got miss")
	}
	if hit.FrontFace() {
		t.Error("Expected back face hit from inside the sphere")
	}
	expectedNormal := core.NewVec3(0, 0, 1)
	if hit.Normal().Subtract(expectedNormal).Length() > 1e-9 {
		t.Errorf("Expected flipped normal %v, got %v", expectedNormal, hit.Normal())
	}
}

func TestIntersectionScatter(t *testing.T) {
	s := testScene(core.NewVec3(0, 0, -3))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, ok := s.Intersect(ray, 0, math.Inf(1))
	if !ok {
		t.Fatal("Expected intersection, got miss")
	}

	random := rand.New(rand.NewSource(42))
	scattered, attenuation := hit.Scatter(random)

	if scattered.Origin != hit.Point() {
		t.Errorf("Expected scattered ray to start at hit point %v, got %v", hit.Point(), scattered.Origin)
	}
	if math.Abs(scattered.Direction.Length()-1.0) > 1e-9 {
		t.Errorf("Expected unit scattered direction, got length %v", scattered.Direction.Length())
	}
	expectedAttenuation := core.NewVec3(0.5, 0.5, 0.5)
	if attenuation != expectedAttenuation {
		t.Errorf("Expected attenuation %v, got %v", expectedAttenuation, attenuation)
	}
}
