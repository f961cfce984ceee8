package source

import (
	"math/cmplx"

	"soundfield"
	"soundfield/field"
	"soundfield/grid"
)

// Plane evaluates a plane wave travelling along n0,
//
//	G(x, w) = exp(-j k <x - x0, n0>)
//
// x0 fixes the zero-phase point. This is the only source family that
// normalizes n0 itself; all dipole variants use the orientation as given.
func Plane(omega float64, x0, n0 soundfield.Vec3, g *grid.Grid, med soundfield.Medium) *field.Field {
	k := med.Wavenumber(omega)
	n := n0.Normalized()

	p := field.NewFromGrid(g)
	for i, x := range g.X {
		for j, y := range g.Y {
			for l, z := range g.Z {
				d := soundfield.Vec3{X: x, Y: y, Z: z}.Sub(x0).Dot(n)
				p.Set(i, j, l, cmplx.Exp(complex(0, -k*d)))
			}
		}
	}
	return p
}

// PlaneVelocity evaluates the particle velocity of a plane wave,
//
//	v = p / (rho c) * n0
//
// per spatial axis, with n0 normalized to unit length.
func PlaneVelocity(omega float64, x0, n0 soundfield.Vec3, g *grid.Grid, med soundfield.Medium) field.XYZ {
	med = med.Resolve()
	n := n0.Normalized()
	rhoc := med.Density * med.SpeedOfSound

	p := Plane(omega, x0, n0, g, med)
	v := field.XYZ{X: p.Clone(), Y: p.Clone(), Z: p}
	v.X.Scale(complex(n.X/rhoc, 0))
	v.Y.Scale(complex(n.Y/rhoc, 0))
	v.Z.Scale(complex(n.Z/rhoc, 0))
	return v
}

// PlaneAveragedIntensity evaluates the time-averaged intensity of a plane
// wave,
//
//	I = 1/(2 rho c) * n0
//
// per spatial axis. The field is translation invariant, so the result
// depends on neither x0 nor omega nor the grid coordinates.
func PlaneAveragedIntensity(omega float64, x0, n0 soundfield.Vec3, g *grid.Grid, med soundfield.Medium) field.XYZ {
	med = med.Resolve()
	n := n0.Normalized().Scale(1 / (2 * med.Density * med.SpeedOfSound))

	nx, ny, nz := g.Dims()
	in := field.NewXYZ(nx, ny, nz)
	for idx := range in.X.Data {
		in.X.Data[idx] = complex(n.X, 0)
		in.Y.Data[idx] = complex(n.Y, 0)
		in.Z.Data[idx] = complex(n.Z, 0)
	}
	return in
}
