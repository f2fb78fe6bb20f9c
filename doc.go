// Package lvline generalizes digital line drawing to N dimensions: given
// two lattice points (or a start point, a direction and a step budget), it
// produces the ordered sequence of integer points that best follows the
// continuous segment between them, one step at a time.
//
// 🚀 What is lvline?
//
//	A small, exact library built around one primitive:
//		• linestep/  — the N-dimensional lattice line stepper itself
//		               (Chebyshev mode ≡ classic Bresenham-style raster,
//		                Manhattan mode ≡ one axis per step)
//		• raster/    — a 2D pixel consumer: digital lines on any image
//		• apportion/ — a proportional-allocation consumer: seats to parties
//
// ✨ Why choose lvline?
//
//   - Exact arithmetic – deviation accumulators are rational, never float;
//     no drift, no off-by-one at any magnitude or budget
//   - Loop-generic – no hand-unrolled 2D/3D special cases; N ≥ 1 throughout
//   - Deterministic – fixed tie-breaking; identical inputs give identical
//     sequences
//   - Pure Go – no cgo, no shared state; independent runs parallelize freely
//
// Quick ASCII example (start (0,0), end (5,2)):
//
//	. . . . ▪ ▪
//	. . ▪ ▪ . .
//	▪ ▪ . . . .
//
// Dive into each subpackage's doc.go for contracts, complexity and errors.
//
//	go get github.com/katalvlaran/lvline/linestep
package lvline
