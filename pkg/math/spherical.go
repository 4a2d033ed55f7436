package math

import "github.com/chewxy/math32"

// SphericalEpsilon keeps the polar angle away from the poles, where the
// look-at basis degenerates.
const SphericalEpsilon = 1e-6

// Spherical holds spherical coordinates with Y up.
// Phi is the polar angle from +Y, Theta the azimuth around Y measured from +Z.
type Spherical struct {
	Radius float32
	Phi    float32
	Theta  float32
}

// SphericalFromVec3 converts a cartesian offset to spherical coordinates.
func SphericalFromVec3(v Vec3) Spherical {
	s := Spherical{Radius: v.Length()}
	if s.Radius == 0 {
		return s
	}
	s.Theta = math32.Atan2(v.X, v.Z)
	s.Phi = math32.Acos(Clamp(v.Y/s.Radius, -1, 1))
	return s
}

// Vec3 converts back to a cartesian offset.
func (s Spherical) Vec3() Vec3 {
	sinPhiRadius := math32.Sin(s.Phi) * s.Radius
	return Vec3{
		X: sinPhiRadius * math32.Sin(s.Theta),
		Y: math32.Cos(s.Phi) * s.Radius,
		Z: sinPhiRadius * math32.Cos(s.Theta),
	}
}

// MakeSafe clamps Phi to (0, π).
func (s Spherical) MakeSafe() Spherical {
	s.Phi = Clamp(s.Phi, SphericalEpsilon, math32.Pi-SphericalEpsilon)
	return s
}
