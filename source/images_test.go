package source

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soundfield"
	"soundfield/grid"
)

func TestPointImageSourcesOrderZeroEqualsPoint(t *testing.T) {
	omega := 2 * math.Pi * 500
	x0 := soundfield.Vec3{X: 1.5, Y: 1, Z: 0.5}
	L := soundfield.Vec3{X: 4, Y: 3, Z: 2.5}
	g, err := grid.New([]float64{0.5, 2.5, 3.5}, []float64{0.5, 2}, []float64{1})
	require.NoError(t, err)

	direct := Point(omega, x0, soundfield.Vec3{}, g, soundfield.Medium{})
	imaged, err := PointImageSources(omega, x0, soundfield.Vec3{}, g, L, 0, nil, soundfield.Medium{})
	require.NoError(t, err)

	require.Len(t, imaged.Data, len(direct.Data))
	for i := range direct.Data {
		assertCmplx(t, direct.Data[i], imaged.Data[i], 1e-14)
	}
}

func TestPointImageSourcesAbsorbingWallsReduceToDirect(t *testing.T) {
	// Zero reflection coefficients kill every image that touched a wall,
	// whatever the truncation order.
	omega := 2 * math.Pi * 200
	x0 := soundfield.Vec3{X: 1.5, Y: 1, Z: 0.5}
	L := soundfield.Vec3{X: 4, Y: 3, Z: 2.5}
	g := grid.Point(2.5, 1.7, 1.2)

	direct := Point(omega, x0, soundfield.Vec3{}, g, soundfield.Medium{})
	dead, err := PointImageSources(omega, x0, soundfield.Vec3{}, g, L, 3, []float64{0, 0, 0, 0, 0, 0}, soundfield.Medium{})
	require.NoError(t, err)
	assertCmplx(t, direct.At(0, 0, 0), dead.At(0, 0, 0), 1e-14)
}

func TestPointImageSourcesFirstOrderSuperposition(t *testing.T) {
	// Order one is the direct source plus six mirrored point sources
	// weighted by their wall coefficient.
	omega := 2 * math.Pi * 125
	med := soundfield.Medium{}
	x0 := soundfield.Vec3{X: 1, Y: 1, Z: 1}
	L := soundfield.Vec3{X: 4, Y: 3, Z: 2.5}
	coeffs := []float64{0.9, 0.8, 0.7, 0.6, 0.5, 0.4}
	g := grid.Point(3.1, 2.2, 0.4)

	got, err := PointImageSources(omega, x0, soundfield.Vec3{}, g, L, 1, coeffs, med)
	require.NoError(t, err)

	mirrors := []struct {
		pos   soundfield.Vec3
		coeff float64
	}{
		{soundfield.Vec3{X: -1, Y: 1, Z: 1}, 0.9},
		{soundfield.Vec3{X: 7, Y: 1, Z: 1}, 0.8},
		{soundfield.Vec3{X: 1, Y: -1, Z: 1}, 0.7},
		{soundfield.Vec3{X: 1, Y: 5, Z: 1}, 0.6},
		{soundfield.Vec3{X: 1, Y: 1, Z: -1}, 0.5},
		{soundfield.Vec3{X: 1, Y: 1, Z: 4}, 0.4},
	}
	want := Point(omega, x0, soundfield.Vec3{}, g, med).At(0, 0, 0)
	for _, m := range mirrors {
		want += complex(m.coeff, 0) * Point(omega, m.pos, soundfield.Vec3{}, g, med).At(0, 0, 0)
	}
	assertCmplx(t, want, got.At(0, 0, 0), 1e-13)
}

func TestPointImageSourcesBadCoefficients(t *testing.T) {
	_, err := PointImageSources(100, soundfield.Vec3{X: 1, Y: 1, Z: 1}, soundfield.Vec3{},
		grid.Point(1, 1, 1), soundfield.Vec3{X: 2, Y: 2, Z: 2}, 1, []float64{1, 1}, soundfield.Medium{})
	assert.Error(t, err)
}
