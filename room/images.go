// Package room enumerates mirror image sources for a rectangular box,
// the geometry underlying the image-source room model. The box spans
// [0, L.X] x [0, L.Y] x [0, L.Z]; walls are indexed 0..5 in the order
// x=0, x=Lx, y=0, y=Ly, z=0, z=Lz.
package room

import (
	"errors"

	"soundfield"
)

// NumWalls is the number of box faces.
const NumWalls = 6

// Image is one mirror source: its position and the number of reflections it
// has undergone at each of the six walls. The direct source has all-zero
// wall orders.
type Image struct {
	Pos        soundfield.Vec3
	WallOrders [NumWalls]int
}

// Order returns the total reflection order of the image.
func (im Image) Order() int {
	n := 0
	for _, o := range im.WallOrders {
		n += o
	}
	return n
}

// Strength returns the image weight for the given per-wall reflection
// coefficients: the product over all walls of coeff^order.
func (im Image) Strength(coeffs [NumWalls]float64) float64 {
	s := 1.0
	for w, o := range im.WallOrders {
		for i := 0; i < o; i++ {
			s *= coeffs[w]
		}
	}
	return s
}

// axisImage is a 1D mirror image along a single axis.
type axisImage struct {
	pos     float64
	low, hi int // reflection counts at the 0-wall and the L-wall
}

// axisImages enumerates the 1D images of x0 in [0, L] up to maxOrder total
// reflections on that axis. The image indexed by (p, m) with p in {0, 1}
// sits at (1-2p)*x0 + 2mL and has |m-p| reflections at the 0-wall and |m|
// at the L-wall.
func axisImages(x0, L float64, maxOrder int) []axisImage {
	var out []axisImage
	for p := 0; p <= 1; p++ {
		for m := -maxOrder; m <= maxOrder+1; m++ {
			low := abs(m - p)
			hi := abs(m)
			if low+hi > maxOrder {
				continue
			}
			out = append(out, axisImage{
				pos: float64(1-2*p)*x0 + 2*float64(m)*L,
				low: low,
				hi:  hi,
			})
		}
	}
	return out
}

// ImagesForBox returns every image of the source at x0 inside the box with
// dimensions L whose total reflection order does not exceed maxOrder. Order
// zero yields exactly the direct source.
func ImagesForBox(x0, L soundfield.Vec3, maxOrder int) ([]Image, error) {
	if L.X <= 0 || L.Y <= 0 || L.Z <= 0 {
		return nil, errors.New("room: box dimensions must be positive")
	}
	if maxOrder < 0 {
		return nil, errors.New("room: max reflection order must be non-negative")
	}

	xs := axisImages(x0.X, L.X, maxOrder)
	ys := axisImages(x0.Y, L.Y, maxOrder)
	zs := axisImages(x0.Z, L.Z, maxOrder)

	var images []Image
	for _, ix := range xs {
		for _, iy := range ys {
			if ix.low+ix.hi+iy.low+iy.hi > maxOrder {
				continue
			}
			for _, iz := range zs {
				total := ix.low + ix.hi + iy.low + iy.hi + iz.low + iz.hi
				if total > maxOrder {
					continue
				}
				images = append(images, Image{
					Pos:        soundfield.Vec3{X: ix.pos, Y: iy.pos, Z: iz.pos},
					WallOrders: [NumWalls]int{ix.low, ix.hi, iy.low, iy.hi, iz.low, iz.hi},
				})
			}
		}
	}
	return images, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
