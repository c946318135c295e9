package renderer

import (
	"math"
	"math/rand"

	"pathtracer/pkg/core"
)

// CameraConfig contains camera positioning and lens parameters
type CameraConfig struct {
	LookFrom  core.Vec3 // Camera position
	LookAt    core.Vec3 // Point the camera looks at
	VUp       core.Vec3 // World up used to orient the camera
	VFov      float64   // Vertical field of view in radians
	Aspect    float64   // Width over height
	Aperture  float64   // Lens diameter; 0 disables depth of field
	FocusDist float64   // Distance to the plane in perfect focus
}

// DefaultCameraConfig returns the standard viewpoint for the sphere field
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		LookFrom:  core.NewVec3(13, 2, 3),
		LookAt:    core.NewVec3(0, 0, 0),
		VUp:       core.NewVec3(0, 1, 0),
		VFov:      math.Pi / 9,
		Aspect:    3.0 / 2.0,
		Aperture:  0.1,
		FocusDist: 10,
	}
}

// Camera generates primary rays through a thin lens. Samples are taken on
// the focus plane, so points at FocusDist are sharp and everything else
// blurs with the aperture.
type Camera struct {
	origin     core.Vec3
	focal      core.Vec3
	horizontal core.Vec3
	vertical   core.Vec3
	right      core.Vec3
	up         core.Vec3
	lensRadius float64
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	viewportHeight := 2.0 * math.Tan(config.VFov/2.0)
	focusPlaneHeight := viewportHeight * config.FocusDist
	focusPlaneWidth := focusPlaneHeight * config.Aspect

	front := config.LookAt.Subtract(config.LookFrom).Normalize()
	right := front.Cross(config.VUp).Normalize()
	up := right.Cross(front)

	return &Camera{
		origin:     config.LookFrom,
		focal:      front.Multiply(config.FocusDist),
		horizontal: right.Multiply(focusPlaneWidth),
		vertical:   up.Multiply(focusPlaneHeight),
		right:      right,
		up:         up,
		lensRadius: config.Aperture / 2.0,
	}
}

// GetRay generates a unit-direction ray through screen coordinates (u, v)
// in [0,1]², with (0.5, 0.5) at the image center. The ray origin is
// perturbed on the lens disc for depth of field.
func (c *Camera) GetRay(u, v float64, random *rand.Rand) core.Ray {
	sample := core.RandomInUnitDisk(random)
	offset := c.right.Multiply(sample.X).Add(c.up.Multiply(sample.Y)).Multiply(c.lensRadius)
	direction := c.focal.
		Add(c.horizontal.Multiply(u - 0.5)).
		Add(c.vertical.Multiply(v - 0.5)).
		Subtract(offset)

	return core.NewRay(c.origin.Add(offset), direction.Normalize())
}
