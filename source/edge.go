package source

import (
	"math"

	"soundfield"
	"soundfield/field"
	"soundfield/grid"
	"soundfield/special"
)

// LineDirichletEdge evaluates a line source diffracted by a wedge with
// Dirichlet (pressure-release) faces at azimuth 0 and alpha, the edge lying
// on the z-axis. Inside the wedge opening (0 <= phi <= alpha) the field is
// an eigenfunction series in the azimuthal coordinate with nu = m pi/alpha:
//
//	p = -j pi/alpha * sum_m 1/eps_m * sin(nu phi0) sin(nu phi) * R_m
//	R_m = J_nu(k r<) * H(2)_nu(k r>)
//
// where r< / r> are the smaller and larger of observation and source
// radius; swapping the Bessel/Hankel roles across r = r0 is what makes the
// series converge and satisfy the radiation condition. eps_0 = 2 and
// eps_m = 1 otherwise (the usual eigenfunction-expansion convention; the
// m = 0 term vanishes for Dirichlet faces anyway).
//
// Observation points with phi > alpha lie inside the solid wedge and are
// filled with the unobstructed free-field line-source value instead.
//
// terms <= 0 selects the default truncation ceil(2 k alpha max(r) / pi), a
// convergence heuristic with no guaranteed error bound; pass an explicit
// term count to pin it. n0 is accepted for signature uniformity and
// ignored, and only the first two components of x0 are used.
func LineDirichletEdge(omega float64, x0, n0 soundfield.Vec3, g *grid.Grid, alpha float64, terms int, med soundfield.Medium) *field.Field {
	k := med.Wavenumber(omega)

	phi0 := wrapAzimuth(math.Atan2(x0.Y, x0.X))
	r0 := math.Hypot(x0.X, x0.Y)

	nx, ny := len(g.X), len(g.Y)
	radius := make([]float64, nx*ny)
	azimuth := make([]float64, nx*ny)
	maxR := 0.0
	for i, x := range g.X {
		for j, y := range g.Y {
			r := math.Hypot(x, y)
			radius[i*ny+j] = r
			azimuth[i*ny+j] = wrapAzimuth(math.Atan2(y, x))
			if r > maxR {
				maxR = r
			}
		}
	}

	if terms <= 0 {
		terms = int(math.Ceil(2 * k * alpha * maxR / math.Pi))
		if terms < 1 {
			terms = 1
		}
	}

	p := field.New(nx, ny, 1)
	for m := 0; m < terms; m++ {
		nu := float64(m) * math.Pi / alpha
		weight := math.Sin(nu * phi0)
		if m == 0 {
			weight /= 2
		}
		// Radial factors at the source radius are shared by every
		// observation point of this term.
		jAtSource := special.BesselJ(nu, k*r0)
		hAtSource := special.Hankel2(nu, k*r0)
		for i := 0; i < nx; i++ {
			for j := 0; j < ny; j++ {
				idx := i*ny + j
				angular := weight * math.Sin(nu*azimuth[idx])
				if angular == 0 {
					continue
				}
				var radial complex128
				if r := radius[idx]; r <= r0 {
					radial = complex(special.BesselJ(nu, k*r), 0) * hAtSource
				} else {
					radial = complex(jAtSource, 0) * special.Hankel2(nu, k*r)
				}
				p.Set(i, j, 0, p.At(i, j, 0)+complex(angular, 0)*radial)
			}
		}
	}
	p.Scale(complex(0, -math.Pi/alpha))

	// Inside the solid wedge the series does not apply; fill with the
	// unobstructed free-field line source.
	var free *field.Field
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			if azimuth[i*ny+j] <= alpha {
				continue
			}
			if free == nil {
				free = line2D(omega, x0, g, med)
			}
			p.Set(i, j, 0, free.At(i, j, 0))
		}
	}

	return duplicateZDirection(p, g)
}

// wrapAzimuth maps an atan2 result onto [0, 2 pi), the azimuth convention
// of the wedge coordinates.
func wrapAzimuth(phi float64) float64 {
	if phi < 0 {
		phi += 2 * math.Pi
	}
	return phi
}
