// Package snake defines the core domain entity for the growth simulation.
// This package is PURE and must NOT import any infrastructure packages (events, platform, render).
package snake

import (
	"errors"
	"fmt"

	"github.com/serpentlab/vivarium/internal/domain/rules"
)

// Error kinds surfaced by the entity. Callers match them with errors.Is.
var (
	ErrInvalidColor  = errors.New("invalid color")
	ErrInvalidGrowth = errors.New("growth values must be non-negative")
)

// Snake is the single simulated entity. It gains length and girth every time
// it eats an apple, and its color advances one step through the fixed cycle.
type Snake struct {
	Length int   `json:"length"` // arbitrary units, never negative
	Girth  int   `json:"girth"`  // arbitrary units, never negative
	Color  Color `json:"color"`

	colorIndex int // invariant: colorCycle[colorIndex] == Color
}

// New creates a snake with the given dimensions. An empty color selects the
// cycle's first entry; a label outside the cycle fails with ErrInvalidColor.
func New(length, girth int, color Color) (*Snake, error) {
	if err := rules.ValidateGrowth(length, girth); err != nil {
		return nil, fmt.Errorf("%w: initial length %d, girth %d", ErrInvalidGrowth, length, girth)
	}
	if color == "" {
		color = DefaultColor()
	}
	idx, err := ParseColor(color)
	if err != nil {
		return nil, err
	}
	return &Snake{Length: length, Girth: girth, Color: color, colorIndex: idx}, nil
}

// Feed grows the snake after it eats one apple and advances the color cycle.
// A negative gain fails with ErrInvalidGrowth and leaves the snake untouched.
func (s *Snake) Feed(lengthGain, girthGain int) error {
	if err := rules.ValidateGrowth(lengthGain, girthGain); err != nil {
		return fmt.Errorf("%w: length gain %d, girth gain %d", ErrInvalidGrowth, lengthGain, girthGain)
	}
	s.Length += lengthGain
	s.Girth += girthGain
	s.colorIndex = rules.NextColorIndex(s.colorIndex, len(colorCycle))
	s.Color = colorCycle[s.colorIndex]
	return nil
}

// ColorIndex returns the current color's position in the cycle.
func (s *Snake) ColorIndex() int {
	return s.colorIndex
}

// Description reports the current state as a human-readable sentence.
func (s *Snake) Description() string {
	return fmt.Sprintf("The snake is now %d units long, %d units around, and %s.",
		s.Length, s.Girth, s.Color)
}
