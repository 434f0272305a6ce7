package snake

import "fmt"

// Color is one label in the fixed color cycle.
type Color string

const (
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorRed    Color = "red"
	ColorBlue   Color = "blue"
)

// colorCycle is the fixed ordering the snake steps through, wrapping at the end.
var colorCycle = [...]Color{ColorGreen, ColorYellow, ColorRed, ColorBlue}

// Cycle returns the fixed color ordering.
func Cycle() []Color {
	return colorCycle[:]
}

// DefaultColor is the cycle's first entry, used when construction omits a color.
func DefaultColor() Color {
	return colorCycle[0]
}

// ParseColor maps a label to its position in the cycle.
// Labels outside the cycle fail with ErrInvalidColor.
func ParseColor(label Color) (int, error) {
	for i, c := range colorCycle {
		if c == label {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q is not one of %v", ErrInvalidColor, label, colorCycle)
}
