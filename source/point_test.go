package source

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soundfield"
	"soundfield/grid"
)

// assertCmplx compares complex samples component-wise within tol.
func assertCmplx(t *testing.T, want, got complex128, tol float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, real(want), real(got), tol, msgAndArgs...)
	assert.InDelta(t, imag(want), imag(got), tol, msgAndArgs...)
}

func TestPointKnownValue(t *testing.T) {
	// omega = 2 pi 500, c = 343, observation 1 m from the source along x:
	// p = 1/(4 pi) * exp(-j k) / 1.
	omega := 2 * math.Pi * 500
	x0 := soundfield.Vec3{X: 1.5, Y: 1, Z: 0}
	k := 2 * math.Pi * 500 / 343

	p := Point(omega, x0, soundfield.Vec3{}, grid.Point(2.5, 1, 0), soundfield.Medium{})
	want := complex(1/(4*math.Pi), 0) * cmplx.Exp(complex(0, -k))
	assertCmplx(t, want, p.At(0, 0, 0), 1e-12)
}

func TestPointInverseDistanceDecay(t *testing.T) {
	omega := 2 * math.Pi * 200
	x0 := soundfield.Vec3{}
	g, err := grid.New([]float64{0.5, 2.0}, []float64{0}, []float64{0})
	require.NoError(t, err)

	p := Point(omega, x0, soundfield.Vec3{}, g, soundfield.Medium{})
	ratio := cmplx.Abs(p.At(0, 0, 0)) / cmplx.Abs(p.At(1, 0, 0))
	assert.InDelta(t, 2.0/0.5, ratio, 1e-12)
}

func TestPointZeroFrequency(t *testing.T) {
	// k = 0 degenerates to the static 1/(4 pi r) kernel without NaNs.
	p := Point(0, soundfield.Vec3{}, soundfield.Vec3{}, grid.Point(2, 0, 0), soundfield.Medium{})
	assertCmplx(t, complex(1/(8*math.Pi), 0), p.At(0, 0, 0), 1e-15)
}

func TestPointSingularityAtSource(t *testing.T) {
	// Sampling the source location is the caller's mistake; the sample is
	// non-finite data, not a panic.
	p := Point(100, soundfield.Vec3{X: 1}, soundfield.Vec3{}, grid.Point(1, 0, 0), soundfield.Medium{})
	assert.False(t, isFinite(p.At(0, 0, 0)))
}

func isFinite(v complex128) bool {
	return !cmplx.IsInf(v) && !cmplx.IsNaN(v)
}

func TestPointVelocityMatchesPressureGradient(t *testing.T) {
	// The momentum relation means v = -grad p / (j omega rho); check the x
	// component against a central difference of the pressure.
	omega := 2 * math.Pi * 300
	x0 := soundfield.Vec3{X: 0.2, Y: -0.1, Z: 0.3}
	med := soundfield.Medium{}
	obs := soundfield.Vec3{X: 1.3, Y: 0.4, Z: -0.2}
	h := 1e-5

	v := PointVelocity(omega, x0, soundfield.Vec3{}, grid.Point(obs.X, obs.Y, obs.Z), med)

	pPlus := Point(omega, x0, soundfield.Vec3{}, grid.Point(obs.X+h, obs.Y, obs.Z), med)
	pMinus := Point(omega, x0, soundfield.Vec3{}, grid.Point(obs.X-h, obs.Y, obs.Z), med)
	gradX := (pPlus.At(0, 0, 0) - pMinus.At(0, 0, 0)) / complex(2*h, 0)
	want := -gradX / complex(0, omega*soundfield.Air.Density)

	assertCmplx(t, want, v.X.At(0, 0, 0), 1e-7*cmplx.Abs(want))
}

func TestPointAveragedIntensity(t *testing.T) {
	x0 := soundfield.Vec3{X: 1}
	g := grid.Point(3, 1, 0) // offset (2, 1, 0)

	in := PointAveragedIntensity(2*math.Pi*500, x0, soundfield.Vec3{}, g, soundfield.Medium{})
	r2 := 2.0*2.0 + 1.0
	amp := 1 / (2 * soundfield.Air.Density * soundfield.Air.SpeedOfSound)
	assertCmplx(t, complex(amp*2/r2, 0), in.X.At(0, 0, 0), 1e-15)
	assertCmplx(t, complex(amp*1/r2, 0), in.Y.At(0, 0, 0), 1e-15)
	assertCmplx(t, complex(0, 0), in.Z.At(0, 0, 0), 1e-15)

	// Independent of frequency.
	other := PointAveragedIntensity(2*math.Pi*25, x0, soundfield.Vec3{}, g, soundfield.Medium{})
	assert.Equal(t, in.X.Data, other.X.Data)
}

func TestPointDipoleAlongAxis(t *testing.T) {
	// Observation along the dipole axis at distance r:
	// p = 1/(4 pi) * (j k + 1/r) / r * exp(-j k r).
	omega := 2 * math.Pi * 150
	k := soundfield.Medium{}.Wavenumber(omega)
	r := 1.75
	n0 := soundfield.Vec3{X: 1}

	p := PointDipole(omega, soundfield.Vec3{}, n0, grid.Point(r, 0, 0), soundfield.Medium{})
	want := complex(1/(4*math.Pi), 0) * complex(1/r, k) * complex(1/r, 0) * cmplx.Exp(complex(0, -k*r))
	assertCmplx(t, want, p.At(0, 0, 0), 1e-12)
}

func TestPointDipoleBroadsideIsZero(t *testing.T) {
	// Perpendicular to the orientation the directional derivative vanishes.
	p := PointDipole(2*math.Pi*150, soundfield.Vec3{}, soundfield.Vec3{X: 1}, grid.Point(0, 2, 0), soundfield.Medium{})
	assertCmplx(t, 0, p.At(0, 0, 0), 1e-15)
}
