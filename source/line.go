package source

import (
	"math"

	"soundfield"
	"soundfield/field"
	"soundfield/grid"
	"soundfield/special"
)

// line2D evaluates the line-source pressure on the (x, y) plane only. The
// callers tile the result along z where the grid asks for it.
func line2D(omega float64, x0 soundfield.Vec3, g *grid.Grid, med soundfield.Medium) *field.Field {
	k := med.Wavenumber(omega)
	p := field.New(len(g.X), len(g.Y), 1)
	for i, x := range g.X {
		for j, y := range g.Y {
			r := math.Hypot(x-x0.X, y-x0.Y)
			p.Set(i, j, 0, -0.25i*special.Hankel20(k*r))
		}
	}
	return p
}

// Line evaluates a line source parallel to the z-axis,
//
//	G(x-x0, w) = -j/4 * H0(2)(k r)
//
// with r taken from the first two components of x0 and the grid only; the
// third component of x0 is ignored by construction, not by accident. n0 is
// accepted for signature uniformity and ignored.
func Line(omega float64, x0, n0 soundfield.Vec3, g *grid.Grid, med soundfield.Medium) *field.Field {
	return duplicateZDirection(line2D(omega, x0, g, med), g)
}

// LineVelocity evaluates the in-plane particle velocity of a line source,
//
//	v = -1/(4 rho c) * H1(2)(k r) * (x - x0)/r
//
// with a zero z component. The third component of x0 is ignored.
func LineVelocity(omega float64, x0, n0 soundfield.Vec3, g *grid.Grid, med soundfield.Medium) field.XYZ {
	med = med.Resolve()
	k := med.Wavenumber(omega)
	amp := complex(-1/(4*med.Density*med.SpeedOfSound), 0)

	vx := field.New(len(g.X), len(g.Y), 1)
	vy := field.New(len(g.X), len(g.Y), 1)
	for i, x := range g.X {
		for j, y := range g.Y {
			dx, dy := x-x0.X, y-x0.Y
			r := math.Hypot(dx, dy)
			radial := amp * special.Hankel21(k*r)
			vx.Set(i, j, 0, radial*complex(dx/r, 0))
			vy.Set(i, j, 0, radial*complex(dy/r, 0))
		}
	}
	// Internal consistency: the two in-plane components must come out with
	// the same shape before tiling.
	if vx.Nx != vy.Nx || vx.Ny != vy.Ny || vx.Nz != vy.Nz {
		panic("source: in-plane velocity component shapes diverged")
	}

	nx, ny, nz := g.Dims()
	return field.XYZ{
		X: duplicateZDirection(vx, g),
		Y: duplicateZDirection(vy, g),
		Z: field.New(nx, ny, nz),
	}
}

// LineDipole evaluates a line source with dipole characteristics parallel
// to the z-axis,
//
//	G(x-x0, w) = j k/4 * H1(2)(k r) * <(x-x0)/r, n0>
//
// using only the first two components of x0 and n0.
func LineDipole(omega float64, x0, n0 soundfield.Vec3, g *grid.Grid, med soundfield.Medium) *field.Field {
	k := med.Wavenumber(omega)
	p := field.New(len(g.X), len(g.Y), 1)
	for i, x := range g.X {
		for j, y := range g.Y {
			dx, dy := x-x0.X, y-x0.Y
			r := math.Hypot(dx, dy)
			inner := dx*n0.X + dy*n0.Y
			p.Set(i, j, 0, complex(0, k/4)*special.Hankel21(k*r)*complex(inner/r, 0))
		}
	}
	return duplicateZDirection(p, g)
}

// duplicateZDirection tiles a field computed on the (x, y) plane along the
// grid's z axis. Line sources are invariant along z, so the 2D samples are
// replicated, never recomputed. Fields that already match the grid shape
// pass through unchanged.
func duplicateZDirection(p *field.Field, g *grid.Grid) *field.Field {
	_, _, nz := g.Dims()
	if p.Nz == nz {
		return p
	}
	out := field.New(p.Nx, p.Ny, nz)
	for i := 0; i < p.Nx; i++ {
		for j := 0; j < p.Ny; j++ {
			v := p.At(i, j, 0)
			for l := 0; l < nz; l++ {
				out.Set(i, j, l, v)
			}
		}
	}
	return out
}
