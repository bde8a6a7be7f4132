package grid

import "math/bits"

// CandidateSet is a set of digits 1..9 packed into a bitmask; bit d is
// set when digit d remains possible for a cell.
type CandidateSet uint16

// fullCandidates has bits 1..9 set.
const fullCandidates CandidateSet = 0x3FE

// Has reports whether digit d is in the set.
func (s CandidateSet) Has(d Digit) bool {
	return s&(1<<d) != 0
}

// Size returns the number of digits in the set.
func (s CandidateSet) Size() int {
	return bits.OnesCount16(uint16(s))
}

// Empty reports whether no digit remains.
func (s CandidateSet) Empty() bool {
	return s == 0
}

// Sole returns the single remaining digit when the set has exactly one
// member, and false otherwise.
func (s CandidateSet) Sole() (Digit, bool) {
	if s.Size() != 1 {
		return 0, false
	}
	return Digit(bits.TrailingZeros16(uint16(s))), true
}

// Digits returns the members of the set in ascending numeric order.
func (s CandidateSet) Digits() []Digit {
	ds := make([]Digit, 0, s.Size())
	for d := Digit(1); d <= 9; d++ {
		if s.Has(d) {
			ds = append(ds, d)
		}
	}
	return ds
}

// without removes d from the set; d == 0 (an empty cell) is a no-op.
func (s CandidateSet) without(d Digit) CandidateSet {
	if d == 0 {
		return s
	}
	return s &^ (1 << d)
}
