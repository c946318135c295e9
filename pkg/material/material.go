package material

import "pathtracer/pkg/core"

// Kind discriminates the material variants
type Kind int

const (
	KindLambertian Kind = iota
	KindMetal
	KindDielectric
)

// Material is a value type holding the parameters for one surface variant.
// Only the fields of the active Kind are meaningful: Albedo for Lambertian
// and Metal, Fuzz for Metal, RefIdx for Dielectric. Materials are stateless
// beyond these parameters and safe to share across render workers.
type Material struct {
	Kind   Kind
	Albedo core.Vec3
	Fuzz   float64
	RefIdx float64
}

// NewLambertian creates a diffuse material with the given albedo
func NewLambertian(albedo core.Vec3) Material {
	return Material{Kind: KindLambertian, Albedo: albedo}
}

// NewMetal creates a reflective material. Fuzz perturbs the reflection
// direction; values are expected in [0, 1).
func NewMetal(albedo core.Vec3, fuzz float64) Material {
	return Material{Kind: KindMetal, Albedo: albedo, Fuzz: fuzz}
}

// NewDielectric creates a clear refractive material with the given index
func NewDielectric(refIdx float64) Material {
	return Material{Kind: KindDielectric, RefIdx: refIdx}
}
