// Package soundfield provides closed-form sound-pressure and
// particle-velocity fields for canonical acoustic sources evaluated over a
// spatial sampling grid at a single angular frequency. The evaluators live in
// soundfield/source; this package holds the shared numeric conventions:
// the propagation medium, the wavenumber derivation, and the position /
// orientation vector type.
package soundfield

import "math"

// Medium describes the propagation medium. The zero value selects the Air
// defaults, so callers that do not care about the medium can pass Medium{}.
type Medium struct {
	// SpeedOfSound in meters per second.
	SpeedOfSound float64
	// Density in kilograms per cubic meter, used in pressure/velocity
	// conversions.
	Density float64
}

// Air is the process-wide default medium: dry air at 20 degrees Celsius.
var Air = Medium{SpeedOfSound: 343.0, Density: 1.225}

// Resolve fills unset (non-positive) medium properties from Air.
func (m Medium) Resolve() Medium {
	if m.SpeedOfSound <= 0 {
		m.SpeedOfSound = Air.SpeedOfSound
	}
	if m.Density <= 0 {
		m.Density = Air.Density
	}
	return m
}

// Wavenumber returns k = omega / c for the resolved medium. omega may be
// zero; every evaluator uses k multiplicatively, never as a divisor.
func (m Medium) Wavenumber(omega float64) float64 {
	return omega / m.Resolve().SpeedOfSound
}

// Vec3 is a position or orientation vector in meters, one component per
// spatial axis.
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Norm returns the Euclidean norm of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Scale returns the vector multiplied by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Normalized returns the unit vector pointing in the direction of v. A zero
// vector is returned unchanged.
func (v Vec3) Normalized() Vec3 {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return v.Scale(1 / n)
}
