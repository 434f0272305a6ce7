// Package rules contains the pure calculation logic for the growth simulation.
// This package is PURE and must NOT import any infrastructure packages.
package rules

import "errors"

// ValidateGrowth rejects negative growth amounts. Zero gains are legal:
// feeding may leave either dimension unchanged. Callers add their own
// context when wrapping the failure.
func ValidateGrowth(lengthGain, girthGain int) error {
	if lengthGain < 0 || girthGain < 0 {
		return errors.New("growth values must be non-negative")
	}
	return nil
}

// NextColorIndex advances a cyclic index by one step, wrapping at cycleLen.
func NextColorIndex(current, cycleLen int) int {
	if cycleLen <= 0 {
		return 0
	}
	return (current + 1) % cycleLen
}

// ColorIndexAfter returns the cyclic index reached after feeds advances
// starting from start. Each feed advances the cycle exactly once; a negative
// feed count walks the cycle backwards and still lands on a valid index.
func ColorIndexAfter(start, feeds, cycleLen int) int {
	if cycleLen <= 0 {
		return 0
	}
	idx := (start + feeds) % cycleLen
	if idx < 0 {
		idx += cycleLen
	}
	return idx
}

// ProjectGrowth returns the length and girth reached after feeding a snake
// feeds apples with fixed per-apple gains. Growth is purely additive, so the
// end state is known before the run begins.
func ProjectGrowth(length, girth, feeds, lengthGain, girthGain int) (int, int) {
	return length + feeds*lengthGain, girth + feeds*girthGain
}
