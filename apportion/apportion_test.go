package apportion_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvline/apportion"
)

//----------------------------------------------------------------------------//
// Validation Tests
//----------------------------------------------------------------------------//

// TestSeatsPer_Errors verifies synchronous input validation.
func TestSeatsPer_Errors(t *testing.T) {
	cases := []struct {
		name   string
		seats  int
		shares []float64
		err    error
	}{
		{"NegativeSeats", -1, []float64{1}, apportion.ErrNegativeSeats},
		{"NoShares", 3, []float64{}, apportion.ErrNoShares},
		{"NegativeShare", 3, []float64{2, -1}, apportion.ErrBadShare},
		{"NaNShare", 3, []float64{2, math.NaN()}, apportion.ErrBadShare},
		{"InfShare", 3, []float64{math.Inf(1)}, apportion.ErrBadShare},
		{"AllZero", 3, []float64{0, 0, 0}, apportion.ErrZeroShares},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := apportion.SeatsPer(tc.seats, tc.shares)
			assert.ErrorIs(t, err, tc.err)

			_, err = apportion.Allocate(tc.seats, tc.shares)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestSeatsPer_ZeroSeats: an empty house is valid, every party gets zero.
func TestSeatsPer_ZeroSeats(t *testing.T) {
	got, err := apportion.SeatsPer(0, []float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, got)
}

//----------------------------------------------------------------------------//
// Allocation Tests
//----------------------------------------------------------------------------//

// TestSeatsPer_Known pins small reference allocations.
func TestSeatsPer_Known(t *testing.T) {
	cases := []struct {
		name   string
		seats  int
		shares []float64
		want   []int
	}{
		{"FiveAmong124", 5, []float64{1, 2, 4}, []int{1, 1, 3}},
		{"TenAmong1064", 10, []float64{10, 6, 4}, []int{5, 3, 2}},
		{"ExactSplit", 6, []float64{1, 1, 1}, []int{2, 2, 2}},
		{"SingleParty", 4, []float64{9.5}, []int{4}},
		{"ZeroShareParty", 5, []float64{3, 0, 2}, []int{3, 0, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := apportion.SeatsPer(tc.seats, tc.shares)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestAllocate_OrderMatchesCounts checks that the seat-by-seat order is
// consistent with SeatsPer and hands the first seat to the largest party.
func TestAllocate_OrderMatchesCounts(t *testing.T) {
	seats := 10
	shares := []float64{10, 6, 4}

	order, err := apportion.Allocate(seats, shares)
	require.NoError(t, err)
	require.Len(t, order, seats)
	assert.Equal(t, 0, order[0], "largest party receives the first seat")

	counts := make([]int, len(shares))
	for _, p := range order {
		counts[p]++
	}
	want, err := apportion.SeatsPer(seats, shares)
	require.NoError(t, err)
	assert.Equal(t, want, counts)
}

// TestSeatsPer_SumInvariant: over seeded random instances the counts sum
// to the house size and zero-share parties stay at zero.
func TestSeatsPer_SumInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 150; trial++ {
		n := 1 + rng.Intn(8)
		shares := make([]float64, n)
		for i := range shares {
			shares[i] = float64(rng.Intn(1000)) / 4 // quarter-vote shares
		}
		shares[rng.Intn(n)] = float64(1 + rng.Intn(1000))
		seats := rng.Intn(200)

		counts, err := apportion.SeatsPer(seats, shares)
		require.NoError(t, err)

		sum := 0
		for i, c := range counts {
			sum += c
			if shares[i] == 0 && c != 0 {
				t.Fatalf("trial %d: zero-share party %d got %d seats", trial, i, c)
			}
		}
		if sum != seats {
			t.Fatalf("trial %d: seats sum %d; want %d", trial, sum, seats)
		}
	}
}

// TestSeatsPer_Determinism: equal shares tie-break by party index, and
// repeated runs agree.
func TestSeatsPer_Determinism(t *testing.T) {
	a, err := apportion.SeatsPer(3, []float64{2, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, a, "odd seat goes to the lower index on ties")

	b, err := apportion.SeatsPer(3, []float64{2, 2})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
