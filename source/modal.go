package source

import (
	"fmt"
	"math"
	"math/cmplx"

	"soundfield"
	"soundfield/field"
	"soundfield/grid"
)

// modalAxisOrders expands the order selector N into explicit per-axis mode
// index lists. The selector follows the documented convention:
//
//	nil / empty  estimate the maximum order per axis as ceil(L/pi * k),
//	             covering modes up to roughly the acoustic wavelength
//	len 1        the same maximum order on all three axes
//	len 3        exactly one (m, n, l) mode combination, no summation
//
// Any other length is a programming error and panics, matching the
// reject-at-the-array-layer error model of the evaluators.
func modalAxisOrders(N []int, L soundfield.Vec3, k float64) [3][]int {
	upTo := func(max int) []int {
		out := make([]int, max+1)
		for i := range out {
			out[i] = i
		}
		return out
	}
	switch len(N) {
	case 0:
		return [3][]int{
			upTo(int(math.Ceil(L.X / math.Pi * k))),
			upTo(int(math.Ceil(L.Y / math.Pi * k))),
			upTo(int(math.Ceil(L.Z / math.Pi * k))),
		}
	case 1:
		return [3][]int{upTo(N[0]), upTo(N[0]), upTo(N[0])}
	case 3:
		return [3][]int{{N[0]}, {N[1]}, {N[2]}}
	default:
		panic(fmt.Sprintf("source: modal order selector must have 0, 1 or 3 entries, got %d", len(N)))
	}
}

// modalAxis precomputes the per-axis factors of one mode: the complex axis
// wavenumber and the mode shape sampled along the axis, already weighted by
// the shape at the source coordinate.
type modalAxis struct {
	k complex128
	// cos(k x) cos(k x0) per axis sample, the pressure shape.
	pressure []complex128
	// sin(k x) cos(k x0) per axis sample, the velocity shape along this
	// axis.
	velocity []complex128
}

func newModalAxis(mode int, length, x0 float64, axis []float64, deltan float64) modalAxis {
	ka := complex(float64(mode)*math.Pi/length, deltan)
	atSource := cmplx.Cos(ka * complex(x0, 0))
	a := modalAxis{
		k:        ka,
		pressure: make([]complex128, len(axis)),
		velocity: make([]complex128, len(axis)),
	}
	for i, x := range axis {
		s, c := cmplx.Sin(ka*complex(x, 0)), cmplx.Cos(ka*complex(x, 0))
		a.pressure[i] = c * atSource
		a.velocity[i] = s * atSource
	}
	return a
}

// PointModal approximates the pressure field of a point source inside a
// rectangular enclosure spanning [0, L] on each axis as a triple sum over
// cosine modes. deltan is the wall-absorption coefficient added to each
// axis wavenumber (0 = rigid walls). Each mode contributes
//
//	8 / (k^2 - k_mode^2) * prod_axis cos(k_axis x) cos(k_axis x0)
//
// so driving omega onto a resonance produces the physically correct modal
// blow-up, up to a non-finite term at exact equality. See modalAxisOrders
// for the order selector N.
func PointModal(omega float64, x0, n0 soundfield.Vec3, g *grid.Grid, L soundfield.Vec3, N []int, deltan float64, med soundfield.Medium) *field.Field {
	k := med.Wavenumber(omega)
	orders := modalAxisOrders(N, L, k)
	k2 := complex(k*k, 0)

	p := field.NewFromGrid(g)
	for _, m := range orders[0] {
		ax := newModalAxis(m, L.X, x0.X, g.X, deltan)
		for _, n := range orders[1] {
			ay := newModalAxis(n, L.Y, x0.Y, g.Y, deltan)
			for _, q := range orders[2] {
				az := newModalAxis(q, L.Z, x0.Z, g.Z, deltan)
				w := 8 / (k2 - (ax.k*ax.k + ay.k*ay.k + az.k*az.k))
				for i := range g.X {
					for j := range g.Y {
						for l := range g.Z {
							p.Data[(i*p.Ny+j)*p.Nz+l] += w * ax.pressure[i] * ay.pressure[j] * az.pressure[l]
						}
					}
				}
			}
		}
	}
	return p
}

// PointModalVelocity approximates the particle velocity of the same modal
// field. Along each axis the cosine shape is replaced by its sine
// counterpart and the mode contributes through the momentum relation, so
// every component term carries k_axis / (j rho omega) on top of the shared
// 8 / (k^2 - k_mode^2) weight. omega = 0 therefore yields non-finite
// samples, exactly like the other velocity evaluators.
func PointModalVelocity(omega float64, x0, n0 soundfield.Vec3, g *grid.Grid, L soundfield.Vec3, N []int, deltan float64, med soundfield.Medium) field.XYZ {
	med = med.Resolve()
	k := med.Wavenumber(omega)
	orders := modalAxisOrders(N, L, k)
	k2 := complex(k*k, 0)
	jRhoOmega := complex(0, med.Density*omega)

	nx, ny, nz := g.Dims()
	v := field.NewXYZ(nx, ny, nz)
	for _, m := range orders[0] {
		ax := newModalAxis(m, L.X, x0.X, g.X, deltan)
		for _, n := range orders[1] {
			ay := newModalAxis(n, L.Y, x0.Y, g.Y, deltan)
			for _, q := range orders[2] {
				az := newModalAxis(q, L.Z, x0.Z, g.Z, deltan)
				w := 8 / (k2 - (ax.k*ax.k + ay.k*ay.k + az.k*az.k))
				wx := w * ax.k / jRhoOmega
				wy := w * ay.k / jRhoOmega
				wz := w * az.k / jRhoOmega
				for i := range g.X {
					for j := range g.Y {
						for l := range g.Z {
							idx := (i*ny+j)*nz + l
							v.X.Data[idx] += wx * ax.velocity[i] * ay.pressure[j] * az.pressure[l]
							v.Y.Data[idx] += wy * ax.pressure[i] * ay.velocity[j] * az.pressure[l]
							v.Z.Data[idx] += wz * ax.pressure[i] * ay.pressure[j] * az.velocity[l]
						}
					}
				}
			}
		}
	}
	return v
}
