// Package source evaluates closed-form sound fields of canonical acoustic
// sources over an observation grid at a single angular frequency. Every
// evaluator is a pure function of its inputs: no shared state, no caching,
// each call allocates its own result.
//
// All pressure evaluators share the uniform signature
//
//	f(omega, x0, n0, grid, medium) -> *field.Field
//
// so the whole set can be treated polymorphically. Omnidirectional sources
// accept an orientation n0 and ignore it; variants with extra geometry
// (room dimensions, truncation orders, wedge angle) take those as leading
// extra parameters and are reduced to the uniform shape by fixing them in a
// closure.
//
// Singularities are data, not faults: sampling a source position yields a
// non-finite value, and driving the modal model exactly onto a resonance
// yields a non-finite term. Callers filter or avoid these downstream.
package source

import (
	"soundfield"
	"soundfield/field"
	"soundfield/grid"
)

// Func is the uniform evaluator contract shared by all pressure sources.
type Func func(omega float64, x0, n0 soundfield.Vec3, g *grid.Grid, med soundfield.Medium) *field.Field

// VelocityFunc is the corresponding contract for particle-velocity and
// intensity evaluators, which return one field per spatial axis.
type VelocityFunc func(omega float64, x0, n0 soundfield.Vec3, g *grid.Grid, med soundfield.Medium) field.XYZ
