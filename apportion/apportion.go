package apportion

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvline/linestep"
)

// Sentinel errors for apportionment inputs.
var (
	// ErrNegativeSeats indicates a house size below zero.
	ErrNegativeSeats = errors.New("apportion: seats must be non-negative")
	// ErrNoShares indicates an empty share vector.
	ErrNoShares = errors.New("apportion: at least one share is required")
	// ErrBadShare indicates a negative, NaN or infinite share.
	ErrBadShare = errors.New("apportion: shares must be finite and non-negative")
	// ErrZeroShares indicates all shares are zero while seats > 0.
	ErrZeroShares = errors.New("apportion: all shares are zero")
)

// SeatsPer distributes seats among parties proportionally to shares and
// returns the per-party counts, which sum to seats exactly.
//
// Deterministic: equal shares break ties by the lower party index.
func SeatsPer(seats int, shares []float64) ([]int, error) {
	s, err := newStepper(seats, shares)
	if err != nil {
		return nil, err
	}

	for !s.Done() {
		if _, err = s.Step(); err != nil {
			return nil, err
		}
	}

	return s.Advances(), nil
}

// Allocate distributes seats one by one and returns the order in which
// parties receive them: the i-th element is the party index of seat i.
func Allocate(seats int, shares []float64) ([]int, error) {
	s, err := newStepper(seats, shares)
	if err != nil {
		return nil, err
	}

	order := make([]int, 0, seats)
	prev := s.Pos()
	for !s.Done() {
		next, err := s.Step()
		if err != nil {
			return nil, err
		}
		for i := range next {
			if next[i] != prev[i] {
				order = append(order, i)
				break
			}
		}
		prev = next
	}

	return order, nil
}

// newStepper validates the inputs and builds the Manhattan walk along the
// share vector with the seat count as the step budget.
func newStepper(seats int, shares []float64) (*linestep.Stepper, error) {
	if seats < 0 {
		return nil, ErrNegativeSeats
	}
	if len(shares) == 0 {
		return nil, ErrNoShares
	}
	zero := true
	for _, sh := range shares {
		if sh < 0 || math.IsNaN(sh) || math.IsInf(sh, 0) {
			return nil, ErrBadShare
		}
		if sh > 0 {
			zero = false
		}
	}
	if zero && seats > 0 {
		return nil, ErrZeroShares
	}

	return linestep.NewWithBudget(
		make(linestep.Point, len(shares)),
		shares,
		seats,
		linestep.Options{Mode: linestep.Manhattan},
	)
}
