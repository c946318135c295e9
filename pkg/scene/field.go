package scene

import (
	"fmt"
	"math/rand"

	"pathtracer/pkg/core"
	"pathtracer/pkg/geometry"
	"pathtracer/pkg/material"
)

// DefaultGridRadius is the half-width of the random field's sphere grid
const DefaultGridRadius = 11

// RandomField creates the classic random sphere field: a grid of small
// randomized spheres around three large hero spheres on a giant ground
// sphere. Grid cells run over [-gridRadius, gridRadius) on both axes, the
// outer loop on x and the inner on z. The draw order below is fixed; a
// seeded rng always produces the same scene.
func RandomField(random *rand.Rand, gridRadius int) *Scene {
	keepOut := core.NewVec3(4, 0.2, 0)

	var objects []Object
	for a := -gridRadius; a < gridRadius; a++ {
		for b := -gridRadius; b < gridRadius; b++ {
			center := core.NewVec3(
				float64(a)+core.RandomRange(random, 0, 0.9),
				0.2,
				float64(b)+core.RandomRange(random, 0, 0.9),
			)
			// Cells too close to the metal hero sphere are skipped before
			// any material randoms are drawn.
			if center.Subtract(keepOut).LengthSquared() <= 0.81 {
				continue
			}

			var mat material.Material
			choose := random.Float64()
			switch {
			case choose < 0.8:
				albedo := core.RandomVec3(random, 0, 1).MultiplyVec(core.RandomVec3(random, 0, 1))
				mat = material.NewLambertian(albedo)
			case choose < 0.95:
				albedo := core.RandomVec3(random, 0.5, 1)
				fuzz := core.RandomRange(random, 0, 0.5)
				mat = material.NewMetal(albedo, fuzz)
			default:
				mat = material.NewDielectric(1.5)
			}

			objects = append(objects, NewObject(geometry.NewSphere(center, 0.2), mat))
		}
	}

	objects = append(objects, fixedObjects()...)
	return NewScene(objects)
}

// Triplet creates just the ground and the three hero spheres. It needs no
// randomness, which makes it handy for quick renders and tests.
func Triplet() *Scene {
	return NewScene(fixedObjects())
}

// fixedObjects returns the deterministic part of the field in its append
// order: ground, glass, diffuse, metal.
func fixedObjects() []Object {
	return []Object{
		NewObject(
			geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000),
			material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)),
		),
		NewObject(
			geometry.NewSphere(core.NewVec3(0, 1, 0), 1),
			material.NewDielectric(1.5),
		),
		NewObject(
			geometry.NewSphere(core.NewVec3(-4, 1, 0), 1),
			material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1)),
		),
		NewObject(
			geometry.NewSphere(core.NewVec3(4, 1, 0), 1),
			material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0),
		),
	}
}

// Build creates a scene by name. Valid names are "field" and "triplet".
func Build(name string, random *rand.Rand, gridRadius int) (*Scene, error) {
	switch name {
	case "field":
		return RandomField(random, gridRadius), nil
	case "triplet":
		return Triplet(), nil
	default:
		return nil, fmt.Errorf("unknown scene %q (valid: field, triplet)", name)
	}
}
