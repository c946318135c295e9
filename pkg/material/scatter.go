package material

import (
	"math"
	"math/rand"

	"pathtracer/pkg/core"
)

// Scatter produces the outgoing ray and attenuation color for a surface
// interaction. The incoming ray direction and the oriented normal are
// expected to be unit length; the returned ray direction is normalized.
// Every variant scatters; none absorb the ray outright.
func (m Material) Scatter(rayIn core.Ray, point, normal core.Vec3, frontFace bool, random *rand.Rand) (core.Ray, core.Vec3) {
	var direction core.Vec3
	attenuation := m.Albedo

	switch m.Kind {
	case KindLambertian:
		// A random unit vector can nearly cancel the normal and leave a
		// near-zero direction; that case is not guarded
		direction = normal.Add(core.RandomUnitVector(random))
	case KindMetal:
		reflected := reflect(rayIn.Direction, normal)
		direction = reflected.Add(core.RandomUnitVector(random).Multiply(m.Fuzz))
		// Large fuzz can push the direction below the surface; accepted as-is
	case KindDielectric:
		ratio := m.RefIdx
		if frontFace {
			ratio = 1.0 / m.RefIdx
		}
		direction = refractOrReflect(rayIn.Direction, normal, ratio, random)
		attenuation = core.NewVec3(1, 1, 1)
	}

	return core.NewRay(point, direction.Normalize()), attenuation
}

// reflect mirrors v about the surface normal n: r = v - 2*dot(v,n)*n
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// refractOrReflect picks between refraction and reflection for a dielectric
// boundary: reflection is forced under total internal reflection and chosen
// probabilistically by Schlick reflectance otherwise.
func refractOrReflect(v, n core.Vec3, ratio float64, random *rand.Rand) core.Vec3 {
	cosTheta := math.Min(-v.Dot(n), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := ratio*sinTheta > 1.0
	if cannotRefract || random.Float64() < Reflectance(cosTheta, ratio) {
		return reflect(v, n)
	}
	return refract(v, n, cosTheta, ratio)
}

// refract applies the vector form of Snell's law
func refract(v, n core.Vec3, cosTheta, ratio float64) core.Vec3 {
	rOutPerp := v.Add(n.Multiply(cosTheta)).Multiply(ratio)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, ratio float64) float64 {
	r0 := (1 - ratio) / (1 + ratio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
