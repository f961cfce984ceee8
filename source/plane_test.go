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

func TestPlanePhaseAndMagnitude(t *testing.T) {
	omega := 2 * math.Pi * 1000
	k := soundfield.Medium{}.Wavenumber(omega)
	x0 := soundfield.Vec3{X: -0.5}
	n0 := soundfield.Vec3{X: 3} // normalized internally to (1, 0, 0)

	g, err := grid.New([]float64{-0.5, 0.5, 1.5}, []float64{0, 4}, []float64{7})
	require.NoError(t, err)
	p := Plane(omega, x0, n0, g, soundfield.Medium{})

	// Unit magnitude everywhere, zero phase at x0, and the y/z coordinates
	// must not matter for propagation along x.
	for _, s := range p.Data {
		assert.InDelta(t, 1.0, cmplx.Abs(s), 1e-12)
	}
	assertCmplx(t, 1, p.At(0, 0, 0), 1e-12)
	assertCmplx(t, cmplx.Exp(complex(0, -k)), p.At(1, 0, 0), 1e-12)
	assert.Equal(t, p.At(1, 0, 0), p.At(1, 1, 0))
}

func TestPlaneVelocity(t *testing.T) {
	omega := 2 * math.Pi * 440
	n0 := soundfield.Vec3{X: 1, Y: 1} // oblique, exercises normalization
	g := grid.Point(0.3, -0.2, 0.9)
	med := soundfield.Medium{}

	p := Plane(omega, soundfield.Vec3{}, n0, g, med)
	v := PlaneVelocity(omega, soundfield.Vec3{}, n0, g, med)

	rhoc := soundfield.Air.Density * soundfield.Air.SpeedOfSound
	s := 1 / math.Sqrt2
	assertCmplx(t, p.At(0, 0, 0)*complex(s/rhoc, 0), v.X.At(0, 0, 0), 1e-15)
	assertCmplx(t, p.At(0, 0, 0)*complex(s/rhoc, 0), v.Y.At(0, 0, 0), 1e-15)
	assertCmplx(t, 0, v.Z.At(0, 0, 0), 1e-15)
}

func TestPlaneAveragedIntensityInvariants(t *testing.T) {
	n0 := soundfield.Vec3{Y: 2}
	g, err := grid.New([]float64{0, 1}, []float64{0, 2}, []float64{0})
	require.NoError(t, err)

	base := PlaneAveragedIntensity(2*math.Pi*100, soundfield.Vec3{}, n0, g, soundfield.Medium{})

	// Independent of x0 and omega.
	shifted := PlaneAveragedIntensity(2*math.Pi*100, soundfield.Vec3{X: 5, Y: -3, Z: 2}, n0, g, soundfield.Medium{})
	retuned := PlaneAveragedIntensity(2*math.Pi*4000, soundfield.Vec3{}, n0, g, soundfield.Medium{})
	assert.Equal(t, base.Y.Data, shifted.Y.Data)
	assert.Equal(t, base.Y.Data, retuned.Y.Data)

	// Constant over the grid, magnitude 1/(2 rho c) along the unit n0.
	want := complex(1/(2*soundfield.Air.Density*soundfield.Air.SpeedOfSound), 0)
	for _, s := range base.Y.Data {
		assert.Equal(t, want, s)
	}
	for _, s := range base.X.Data {
		assert.Equal(t, complex128(0), s)
	}
}
