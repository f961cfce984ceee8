// Package field holds complex-valued field samples evaluated over a grid
// shape, plus the ordered three-component bundle used for vector results
// such as particle velocity and intensity. Elementwise arithmetic delegates
// to gonum's slice helpers, so shape mismatches fail the way gonum fails:
// by panicking on unequal lengths.
package field

import (
	"soundfield/grid"

	"gonum.org/v1/gonum/cmplxs"
)

// Field stores one complex sample per observation point of a grid, in
// row-major (x, y, z) order.
type Field struct {
	Data       []complex128
	Nx, Ny, Nz int
}

// New allocates a zeroed field with the given shape.
func New(nx, ny, nz int) *Field {
	return &Field{Data: make([]complex128, nx*ny*nz), Nx: nx, Ny: ny, Nz: nz}
}

// NewFromGrid allocates a zeroed field shaped like g.
func NewFromGrid(g *grid.Grid) *Field {
	nx, ny, nz := g.Dims()
	return New(nx, ny, nz)
}

// index maps axis indices to the flat sample offset.
func (f *Field) index(i, j, l int) int {
	return (i*f.Ny+j)*f.Nz + l
}

// At returns the sample at axis indices (i, j, l).
func (f *Field) At(i, j, l int) complex128 {
	return f.Data[f.index(i, j, l)]
}

// Set stores a sample at axis indices (i, j, l).
func (f *Field) Set(i, j, l int, v complex128) {
	f.Data[f.index(i, j, l)] = v
}

// Add accumulates other into f elementwise.
func (f *Field) Add(other *Field) {
	cmplxs.Add(f.Data, other.Data)
}

// Sub subtracts other from f elementwise.
func (f *Field) Sub(other *Field) {
	cmplxs.Sub(f.Data, other.Data)
}

// Scale multiplies every sample by s.
func (f *Field) Scale(s complex128) {
	cmplxs.Scale(s, f.Data)
}

// AddScaled accumulates s*other into f elementwise.
func (f *Field) AddScaled(s complex128, other *Field) {
	cmplxs.AddScaled(f.Data, s, other.Data)
}

// Mul multiplies f by other elementwise.
func (f *Field) Mul(other *Field) {
	cmplxs.Mul(f.Data, other.Data)
}

// Clone returns an independent copy of the field.
func (f *Field) Clone() *Field {
	c := New(f.Nx, f.Ny, f.Nz)
	copy(c.Data, f.Data)
	return c
}

// XYZ bundles one same-shaped field per spatial axis. Component order is
// fixed and named, never positional-by-convention.
type XYZ struct {
	X, Y, Z *Field
}

// NewXYZ allocates three zeroed component fields with the given shape.
func NewXYZ(nx, ny, nz int) XYZ {
	return XYZ{X: New(nx, ny, nz), Y: New(nx, ny, nz), Z: New(nx, ny, nz)}
}

// Component returns the field for axis 0 (x), 1 (y) or 2 (z).
func (v XYZ) Component(axis int) *Field {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
