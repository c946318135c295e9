package core

import "math/rand"

// RandomRange returns a uniform random float64 in [min, max)
func RandomRange(random *rand.Rand, min, max float64) float64 {
	return min + (max-min)*random.Float64()
}

// RandomVec3 returns a vector with each component uniform in [min, max)
func RandomVec3(random *rand.Rand, min, max float64) Vec3 {
	return Vec3{
		X: RandomRange(random, min, max),
		Y: RandomRange(random, min, max),
		Z: RandomRange(random, min, max),
	}
}

// RandomInUnitSphere generates a random point inside the unit sphere
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		p := Vec3{
			X: 2*random.Float64() - 1,
			Y: 2*random.Float64() - 1,
			Z: 2*random.Float64() - 1,
		}
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomUnitVector generates a uniform random direction on the unit sphere surface
func RandomUnitVector(random *rand.Rand) Vec3 {
	return RandomInUnitSphere(random).Normalize()
}

// RandomInUnitDisk generates a random point in the unit disk (for depth of field)
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		p := Vec3{
			X: 2*random.Float64() - 1,
			Y: 2*random.Float64() - 1,
		}
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
