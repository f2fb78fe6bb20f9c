// Package linestep produces the ordered sequence of lattice points that
// best approximates the straight segment between two points in an
// N-dimensional integer lattice, one step at a time.
//
// What:
//
//   - Stepper walks from a start point toward an end point (or along a
//     direction vector for a fixed step budget), emitting one lattice
//     point per step.
//   - Chebyshev mode: the dominant axis (largest |Δ|) advances every step,
//     every other axis advances when its deviation accumulator crosses the
//     midpoint threshold. In 2D this reproduces the classic Bresenham
//     digital line; diagonal moves are allowed.
//   - Manhattan mode: exactly one axis advances per step — the axis whose
//     accumulated deviation from the ideal ray is largest. The per-axis
//     advance counts sum to the budget exactly, which is what proportional
//     allocation (apportionment) consumers rely on.
//
// Why:
//
//   - Pixel lines in 2D, voxel lines in 3D, lattice rays in any N — one
//     loop-generic implementation, no hand-unrolled axis cases.
//   - Seat apportionment: treat party sizes as a direction, seats as the
//     budget, and read each Manhattan advance as "this party gets the
//     next seat".
//
// Numeric policy:
//
//	Deviation accumulators are exact rationals (math/big.Rat), never
//	floats. Floating accumulation is the classic latent bug in ports of
//	this algorithm: drift over a long run flips a rounding decision and
//	the line walks off by one. With rationals there is no maximum
//	supported step budget; denominators stay bounded by the dominant
//	magnitude (or the share total), so each step costs O(N) small-rational
//	operations. Real-valued directions lose nothing on the way in: every
//	float64 is a dyadic rational and converts exactly.
//
// Complexity:
//
//   - Step:   O(N) time, O(1) extra memory.
//   - Points: O(B·N) time, O(B·N) memory for the B+1 emitted points.
//
// Errors:
//
//   - ErrZeroDimension: points have no axes (N = 0).
//   - ErrDimensionMismatch: start/end/direction lengths differ.
//   - ErrNegativeBudget: step budget below zero.
//   - ErrZeroDirection: zero direction vector with a positive budget.
//   - ErrNonFiniteDirection: NaN or ±Inf direction component.
//   - ErrUnknownMode: Options.Mode is neither Chebyshev nor Manhattan.
//   - ErrExhausted: Step called past the budget (caller contract
//     violation, not a recoverable condition).
//
// A Stepper is not safe for concurrent use; independent Steppers share
// nothing and may run fully in parallel.
package linestep
