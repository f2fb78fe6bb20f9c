// Package linestep defines the point type, stepping modes, options, and
// sentinel errors for the lattice line stepper.
package linestep

import "errors"

// Sentinel errors for stepper construction and stepping.
var (
	// ErrZeroDimension indicates a start point with no axes (N = 0).
	ErrZeroDimension = errors.New("linestep: points must have at least one axis")
	// ErrDimensionMismatch indicates start, end and direction lengths differ.
	ErrDimensionMismatch = errors.New("linestep: mismatched dimensionality")
	// ErrNegativeBudget indicates a step budget below zero.
	ErrNegativeBudget = errors.New("linestep: step budget must be non-negative")
	// ErrZeroDirection indicates a zero direction vector with a positive budget.
	ErrZeroDirection = errors.New("linestep: zero direction with positive budget")
	// ErrNonFiniteDirection indicates a NaN or infinite direction component.
	ErrNonFiniteDirection = errors.New("linestep: direction components must be finite")
	// ErrUnknownMode indicates an Options.Mode outside the defined set.
	ErrUnknownMode = errors.New("linestep: unknown stepping mode")
	// ErrExhausted indicates Step was called past the configured budget.
	ErrExhausted = errors.New("linestep: step budget exhausted")
)

// Point is an N-dimensional lattice point: an ordered tuple of integer
// coordinates. Axis order is significant and fixed for one run.
type Point []int64

// Clone returns an independent copy of p.
func (p Point) Clone() Point {
	q := make(Point, len(p))
	copy(q, p)

	return q
}

// Equal reports whether p and q have the same dimension and coordinates.
func (p Point) Equal(q Point) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}

	return true
}

// Mode selects how many axes may advance in a single step.
type Mode int

const (
	// Chebyshev lets the dominant axis advance every step and every other
	// axis advance alongside it when its deviation accumulator crosses the
	// midpoint threshold. Consecutive points may differ on several axes
	// (diagonal moves); the 2D case is the classic digital line.
	Chebyshev Mode = iota

	// Manhattan advances exactly one axis per step: the axis with the
	// largest accumulated deviation, lowest index on ties. Per-axis advance
	// counts always sum to the step budget.
	Manhattan
)

// Options holds tunable parameters for a stepper run.
type Options struct {
	// Mode chooses Chebyshev (raster) or Manhattan (one axis per step)
	// stepping.
	Mode Mode
}

// DefaultOptions returns Options with default settings: Mode=Chebyshev.
func DefaultOptions() Options {
	return Options{Mode: Chebyshev}
}
