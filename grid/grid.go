// Package grid provides the observation-grid container shared by all field
// evaluators. A grid is a lazy Cartesian sampling: three axis slices whose
// point-wise combinations form the observation points, never a materialized
// point list. An axis of length one broadcasts across the other axes, which
// keeps a 2D slice through 3D space cheap to describe.
package grid

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

// Grid holds the three sampling axes. Axes are never mutated after
// construction; evaluators only read them.
type Grid struct {
	X, Y, Z []float64
}

// New builds a grid from three explicit axes. Every axis must hold at least
// one sample.
func New(x, y, z []float64) (*Grid, error) {
	if len(x) == 0 || len(y) == 0 || len(z) == 0 {
		return nil, errors.New("grid: every axis needs at least one sample")
	}
	return &Grid{X: x, Y: y, Z: z}, nil
}

// Span builds a grid of uniformly spaced samples between min and max with n
// samples per axis. An axis with n[i] == 1 collapses to its min coordinate,
// which is how planar and single-point grids are expressed.
func Span(min, max [3]float64, n [3]int) (*Grid, error) {
	axes := make([][]float64, 3)
	for i := 0; i < 3; i++ {
		if n[i] < 1 {
			return nil, errors.New("grid: axis sample counts must be positive")
		}
		if n[i] == 1 {
			axes[i] = []float64{min[i]}
			continue
		}
		axes[i] = floats.Span(make([]float64, n[i]), min[i], max[i])
	}
	return &Grid{X: axes[0], Y: axes[1], Z: axes[2]}, nil
}

// Point builds a degenerate grid holding a single observation point.
func Point(x, y, z float64) *Grid {
	return &Grid{X: []float64{x}, Y: []float64{y}, Z: []float64{z}}
}

// Dims returns the number of samples along each axis.
func (g *Grid) Dims() (nx, ny, nz int) {
	return len(g.X), len(g.Y), len(g.Z)
}

// Size returns the total number of observation points.
func (g *Grid) Size() int {
	return len(g.X) * len(g.Y) * len(g.Z)
}
