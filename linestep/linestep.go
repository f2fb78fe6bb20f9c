package linestep

import (
	"math"
	"math/big"
)

// Shared read-only constants for accumulator arithmetic.
var (
	ratOne  = big.NewRat(1, 1)
	ratHalf = big.NewRat(1, 2)
)

// Stepper holds one run's accumulator state.
//
// Algorithm outline:
//  1. Identify the dominant axis k: the axis maximizing |direction[k]|,
//     lowest index on ties.
//  2. Precompute per-axis slopes as exact rationals:
//     Chebyshev: slope[i] = |direction[i]| / |direction[k]|  (≤ 1)
//     Manhattan: slope[i] = |direction[i]| / Σ|direction[j]|
//  3. Initialize per-axis deviation accumulators:
//     Chebyshev: acc[i] = 1/2 for i ≠ k  (midpoint rule)
//     Manhattan: acc[i] = 0              (a uniform bias cannot change an
//     argmax selection, so none is applied)
//  4. Each step:
//     Chebyshev: axis k moves by sign(direction[k]); every other axis
//     gains slope[i] and, on reaching 1, moves by sign(direction[i]) and
//     loses 1.
//     Manhattan: every axis gains slope[i]; the axis with the maximal
//     accumulator (lowest index on ties) moves by its sign and loses 1.
//  5. Stop after exactly budget steps; stepping further is ErrExhausted.
//
// A fresh Stepper emits budget+1 points including the start. In the
// two-point Chebyshev form the budget is |direction[k]| and the final
// point is exactly the end point; in the two-point Manhattan form the
// budget is Σ|direction[i]|.
//
// Not safe for concurrent use. Independent Steppers share nothing.
type Stepper struct {
	mode     Mode
	start    Point
	pos      Point
	sign     []int64
	dominant int
	budget   int
	taken    int
	slope    []*big.Rat
	acc      []*big.Rat
	adv      []int
}

// New builds a Stepper walking from start to end. The direction is
// end−start per axis; the step budget is derived from it: max|Δ| in
// Chebyshev mode, Σ|Δ| in Manhattan mode. start == end is valid and
// yields a zero budget.
//
// Returns ErrZeroDimension, ErrDimensionMismatch or ErrUnknownMode.
func New(start, end Point, opts Options) (*Stepper, error) {
	if err := checkMode(opts.Mode); err != nil {
		return nil, err
	}
	if len(start) == 0 {
		return nil, ErrZeroDimension
	}
	if len(start) != len(end) {
		return nil, ErrDimensionMismatch
	}

	n := len(start)
	abs := make([]*big.Rat, n)
	sign := make([]int64, n)
	dominant := 0
	var domMag, total int64
	for i := range start {
		d := end[i] - start[i]
		switch {
		case d > 0:
			sign[i] = 1
		case d < 0:
			sign[i] = -1
			d = -d
		}
		abs[i] = new(big.Rat).SetInt64(d)
		if d > domMag {
			dominant, domMag = i, d
		}
		total += d
	}

	budget := domMag
	if opts.Mode == Manhattan {
		budget = total
	}

	return newStepper(opts.Mode, start, abs, sign, dominant, int(budget)), nil
}

// NewWithBudget builds a Stepper walking from start along dir for exactly
// budget steps. The end is conceptually at infinity along the ray; only
// the step count is known — the form apportionment consumers need, with
// dir as the party sizes and budget as the seats to hand out.
//
// dir components may be real-valued; each float64 converts to an exact
// rational, so no precision is lost before the accumulator arithmetic.
//
// Returns ErrZeroDimension, ErrDimensionMismatch, ErrNegativeBudget,
// ErrZeroDirection, ErrNonFiniteDirection or ErrUnknownMode.
func NewWithBudget(start Point, dir []float64, budget int, opts Options) (*Stepper, error) {
	if err := checkMode(opts.Mode); err != nil {
		return nil, err
	}
	if len(start) == 0 {
		return nil, ErrZeroDimension
	}
	if len(start) != len(dir) {
		return nil, ErrDimensionMismatch
	}
	if budget < 0 {
		return nil, ErrNegativeBudget
	}

	n := len(start)
	abs := make([]*big.Rat, n)
	sign := make([]int64, n)
	dominant := 0
	zero := true
	for i, d := range dir {
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return nil, ErrNonFiniteDirection
		}
		switch {
		case d > 0:
			sign[i] = 1
		case d < 0:
			sign[i] = -1
		}
		a := math.Abs(d)
		abs[i] = new(big.Rat).SetFloat64(a)
		if a != 0 {
			zero = false
		}
		if a > math.Abs(dir[dominant]) {
			dominant = i
		}
	}
	if zero && budget > 0 {
		return nil, ErrZeroDirection
	}

	return newStepper(opts.Mode, start, abs, sign, dominant, budget), nil
}

// Run is the one-shot form: New(start, end, opts) followed by Points.
func Run(start, end Point, opts Options) ([]Point, error) {
	s, err := New(start, end, opts)
	if err != nil {
		return nil, err
	}

	return s.Points(), nil
}

// newStepper wires precomputed magnitudes into a ready accumulator state.
// abs holds per-axis |direction| values; denominators derive from them.
func newStepper(mode Mode, start Point, abs []*big.Rat, sign []int64, dominant, budget int) *Stepper {
	n := len(start)
	s := &Stepper{
		mode:     mode,
		start:    start.Clone(),
		pos:      start.Clone(),
		sign:     sign,
		dominant: dominant,
		budget:   budget,
		slope:    make([]*big.Rat, n),
		acc:      make([]*big.Rat, n),
		adv:      make([]int, n),
	}

	denom := abs[dominant]
	if mode == Manhattan {
		denom = new(big.Rat)
		for _, a := range abs {
			denom.Add(denom, a)
		}
	}
	for i := range s.slope {
		s.slope[i] = new(big.Rat)
		if denom.Sign() != 0 {
			s.slope[i].Quo(abs[i], denom)
		}
		s.acc[i] = new(big.Rat)
	}
	s.resetAcc()

	return s
}

// Step advances the walk by one step and returns the new lattice point
// (an independent copy). Deterministic: the same state always produces
// the same point. Returns ErrExhausted past the budget.
func (s *Stepper) Step() (Point, error) {
	if s.taken >= s.budget {
		return nil, ErrExhausted
	}
	s.taken++

	if s.mode == Chebyshev {
		s.pos[s.dominant] += s.sign[s.dominant]
		s.adv[s.dominant]++
		for i := range s.pos {
			if i == s.dominant || s.sign[i] == 0 {
				continue
			}
			s.acc[i].Add(s.acc[i], s.slope[i])
			if s.acc[i].Cmp(ratOne) >= 0 {
				s.acc[i].Sub(s.acc[i], ratOne)
				s.pos[i] += s.sign[i]
				s.adv[i]++
			}
		}

		return s.pos.Clone(), nil
	}

	// Manhattan: single winner by maximal deviation, lowest index on ties.
	best := -1
	for i := range s.pos {
		if s.sign[i] == 0 {
			continue
		}
		s.acc[i].Add(s.acc[i], s.slope[i])
		if best < 0 || s.acc[i].Cmp(s.acc[best]) > 0 {
			best = i
		}
	}
	s.acc[best].Sub(s.acc[best], ratOne)
	s.pos[best] += s.sign[best]
	s.adv[best]++

	return s.pos.Clone(), nil
}

// Points runs all remaining steps eagerly and returns the emitted points,
// beginning with the current position. On a fresh Stepper the result has
// budget+1 points: first = start, last = the point after the final step.
func (s *Stepper) Points() []Point {
	pts := make([]Point, 0, s.budget-s.taken+1)
	pts = append(pts, s.pos.Clone())
	for s.taken < s.budget {
		p, _ := s.Step()
		pts = append(pts, p)
	}

	return pts
}

// Reset rewinds the Stepper to its initial state: position back to start,
// accumulators re-biased, advance counts zeroed.
func (s *Stepper) Reset() {
	copy(s.pos, s.start)
	s.taken = 0
	for i := range s.adv {
		s.adv[i] = 0
	}
	s.resetAcc()
}

// resetAcc applies the initial accumulator bias for the active mode.
func (s *Stepper) resetAcc() {
	for i, a := range s.acc {
		if s.mode == Chebyshev && i != s.dominant {
			a.Set(ratHalf)
		} else {
			a.SetInt64(0)
		}
	}
}

// Pos returns a copy of the current lattice position.
func (s *Stepper) Pos() Point { return s.pos.Clone() }

// Dim returns the dimensionality N of the walk.
func (s *Stepper) Dim() int { return len(s.pos) }

// Budget returns the total number of steps this run will take.
func (s *Stepper) Budget() int { return s.budget }

// Taken returns the number of steps taken so far.
func (s *Stepper) Taken() int { return s.taken }

// Done reports whether the budget is exhausted.
func (s *Stepper) Done() bool { return s.taken >= s.budget }

// DominantAxis returns the index of the dominant axis: the axis with the
// largest |direction| component, lowest index on ties.
func (s *Stepper) DominantAxis() int { return s.dominant }

// Advances returns a copy of the per-axis advance counts so far. In
// Manhattan mode their sum equals Taken exactly; a zero direction
// component keeps its count at zero for the whole run.
func (s *Stepper) Advances() []int {
	adv := make([]int, len(s.adv))
	copy(adv, s.adv)

	return adv
}

func checkMode(m Mode) error {
	if m != Chebyshev && m != Manhattan {
		return ErrUnknownMode
	}

	return nil
}
