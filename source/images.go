package source

import (
	"fmt"

	"soundfield"
	"soundfield/field"
	"soundfield/grid"
	"soundfield/room"
)

// PointImageSources approximates a point source inside a rectangular
// enclosure with the mirror-image method: every reflection path up to
// maxOrder becomes a virtual point source weighted by the product of the
// wall reflection coefficients it touched. Unlike the modal model this is
// exact up to the truncation-order wavefront, not a series approximation.
//
// coeffs holds one reflection coefficient per box face in the wall order
// documented by package room; nil means fully reflective walls. Images
// whose accumulated strength is zero are skipped entirely.
func PointImageSources(omega float64, x0, n0 soundfield.Vec3, g *grid.Grid, L soundfield.Vec3, maxOrder int, coeffs []float64, med soundfield.Medium) (*field.Field, error) {
	var walls [room.NumWalls]float64
	switch len(coeffs) {
	case 0:
		walls = [room.NumWalls]float64{1, 1, 1, 1, 1, 1}
	case room.NumWalls:
		copy(walls[:], coeffs)
	default:
		return nil, fmt.Errorf("source: want %d wall coefficients, got %d", room.NumWalls, len(coeffs))
	}

	images, err := room.ImagesForBox(x0, L, maxOrder)
	if err != nil {
		return nil, err
	}

	p := field.NewFromGrid(g)
	for _, im := range images {
		strength := im.Strength(walls)
		if strength == 0 {
			continue
		}
		p.AddScaled(complex(strength, 0), Point(omega, im.Pos, n0, g, med))
	}
	return p, nil
}
