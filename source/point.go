package source

import (
	"math"
	"math/cmplx"

	"soundfield"
	"soundfield/field"
	"soundfield/grid"
)

// Point evaluates the free-field point source (3D Green's function)
//
//	G(x-x0, w) = 1/(4 pi) * exp(-j k r) / r,  r = |x - x0|
//
// over the grid. n0 is accepted for signature uniformity and ignored.
// The sample at r = 0 is non-finite; callers avoid placing a grid point on
// the source.
func Point(omega float64, x0, n0 soundfield.Vec3, g *grid.Grid, med soundfield.Medium) *field.Field {
	k := med.Wavenumber(omega)
	p := field.NewFromGrid(g)
	for i, x := range g.X {
		for j, y := range g.Y {
			for l, z := range g.Z {
				r := soundfield.Vec3{X: x, Y: y, Z: z}.Sub(x0).Norm()
				p.Set(i, j, l, complex(1/(4*math.Pi*r), 0)*cmplx.Exp(complex(0, -k*r)))
			}
		}
	}
	return p
}

// PointVelocity evaluates the particle velocity of a point source via the
// momentum relation
//
//	v = p * (1 + j k r) / (j k rho c r) * (x - x0)/r
//
// bundled per spatial axis. The pressure is recomputed internally; the
// evaluation is side-effect-free, so recomputation is the whole cost.
func PointVelocity(omega float64, x0, n0 soundfield.Vec3, g *grid.Grid, med soundfield.Medium) field.XYZ {
	med = med.Resolve()
	k := med.Wavenumber(omega)
	rhoc := complex(med.Density*med.SpeedOfSound, 0)

	p := Point(omega, x0, n0, g, med)
	v := field.NewXYZ(p.Nx, p.Ny, p.Nz)
	for i, x := range g.X {
		for j, y := range g.Y {
			for l, z := range g.Z {
				offset := soundfield.Vec3{X: x, Y: y, Z: z}.Sub(x0)
				r := offset.Norm()
				// (1 + j k r)/(j k r) = 1 + 1/(j k r)
				radial := p.At(i, j, l) * (1 + 1/complex(0, k*r)) / rhoc
				v.X.Set(i, j, l, radial*complex(offset.X/r, 0))
				v.Y.Set(i, j, l, radial*complex(offset.Y/r, 0))
				v.Z.Set(i, j, l, radial*complex(offset.Z/r, 0))
			}
		}
	}
	return v
}

// PointAveragedIntensity evaluates the time-averaged intensity of a point
// source,
//
//	I = 1/(2 rho c) * (x - x0) / r^2
//
// per spatial axis. The result does not depend on omega.
func PointAveragedIntensity(omega float64, x0, n0 soundfield.Vec3, g *grid.Grid, med soundfield.Medium) field.XYZ {
	med = med.Resolve()
	amp := 1 / (2 * med.Density * med.SpeedOfSound)

	nx, ny, nz := g.Dims()
	in := field.NewXYZ(nx, ny, nz)
	for i, x := range g.X {
		for j, y := range g.Y {
			for l, z := range g.Z {
				offset := soundfield.Vec3{X: x, Y: y, Z: z}.Sub(x0)
				r2 := offset.Dot(offset)
				in.X.Set(i, j, l, complex(amp*offset.X/r2, 0))
				in.Y.Set(i, j, l, complex(amp*offset.Y/r2, 0))
				in.Z.Set(i, j, l, complex(amp*offset.Z/r2, 0))
			}
		}
	}
	return in
}

// PointDipole evaluates the directional derivative of the point-source
// Green's function along n0:
//
//	G(x-x0, n0, w) = 1/(4 pi) * (j k + 1/r) * <x-x0, n0> / r^2 * exp(-j k r)
//
// n0 is used as given; normalizing it is the caller's choice.
func PointDipole(omega float64, x0, n0 soundfield.Vec3, g *grid.Grid, med soundfield.Medium) *field.Field {
	k := med.Wavenumber(omega)
	p := field.NewFromGrid(g)
	for i, x := range g.X {
		for j, y := range g.Y {
			for l, z := range g.Z {
				offset := soundfield.Vec3{X: x, Y: y, Z: z}.Sub(x0)
				r := offset.Norm()
				v := complex(1/(4*math.Pi), 0) *
					complex(1/r, k) *
					complex(offset.Dot(n0)/(r*r), 0) *
					cmplx.Exp(complex(0, -k*r))
				p.Set(i, j, l, v)
			}
		}
	}
	return p
}
