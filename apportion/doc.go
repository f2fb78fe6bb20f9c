// Package apportion assigns a fixed number of discrete seats among
// parties proportionally to their shares, driven by the Manhattan mode of
// the lattice line stepper.
//
// What:
//
//   - SeatsPer returns the per-party seat counts for a house of a given
//     size; the counts always sum to the house size exactly.
//   - Allocate returns the seat-by-seat order: the i-th element is the
//     party receiving seat i.
//
// Why:
//
//	Naive proportional allocation — truncating shares·seats/total — loses
//	seats to rounding. Stepping instead walks the lattice ray whose
//	direction is the share vector: each step hands the next seat to the
//	party furthest behind its ideal share, with exact rational
//	bookkeeping, so no seat is ever lost or duplicated and equal shares
//	break ties by party index, deterministically.
//
// Complexity:
//
//   - O(S·P) for S seats among P parties.
//
// Errors:
//
//   - ErrNegativeSeats: house size below zero.
//   - ErrNoShares: empty share vector.
//   - ErrBadShare: negative, NaN or infinite share.
//   - ErrZeroShares: all shares zero while seats remain to be assigned.
//
// Party registration rules, legal thresholds and quota variants are out
// of scope; this package is purely the proportional core.
package apportion
