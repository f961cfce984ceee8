package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soundfield/grid"
)

func TestIndexing(t *testing.T) {
	f := New(2, 3, 4)
	require.Len(t, f.Data, 24)

	f.Set(1, 2, 3, 5+7i)
	assert.Equal(t, 5+7i, f.At(1, 2, 3))
	assert.Equal(t, 5+7i, f.Data[len(f.Data)-1])

	f.Set(0, 0, 0, 1i)
	assert.Equal(t, 1i, f.Data[0])
}

func TestElementwise(t *testing.T) {
	a := New(1, 1, 3)
	b := New(1, 1, 3)
	copy(a.Data, []complex128{1, 2i, 3})
	copy(b.Data, []complex128{1, 1, 1i})

	a.AddScaled(2, b)
	assert.Equal(t, []complex128{3, 2 + 2i, 3 + 2i}, a.Data)

	a.Scale(1i)
	assert.Equal(t, []complex128{3i, -2 + 2i, -2 + 3i}, a.Data)

	c := a.Clone()
	c.Sub(a)
	assert.Equal(t, []complex128{0, 0, 0}, c.Data)

	// Shape mismatches panic through the slice helpers.
	assert.Panics(t, func() { a.Add(New(1, 1, 2)) })
}

func TestXYZ(t *testing.T) {
	g, err := grid.New([]float64{0, 1}, []float64{0}, []float64{0})
	require.NoError(t, err)

	p := NewFromGrid(g)
	assert.Equal(t, 2, p.Nx)

	v := NewXYZ(p.Nx, p.Ny, p.Nz)
	assert.Same(t, v.X, v.Component(0))
	assert.Same(t, v.Y, v.Component(1))
	assert.Same(t, v.Z, v.Component(2))
}
