// Package render prints simulation output to the console. Description lines
// are tinted with the snake's current color when stdout is a terminal and
// degrade to plain text everywhere else.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/serpentlab/vivarium/internal/domain/snake"
)

// styles maps each cycle color onto its ANSI terminal color.
var styles = map[snake.Color]lipgloss.Style{
	snake.ColorGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	snake.ColorYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	snake.ColorRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	snake.ColorBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
}

// Console writes labeled description lines to a single output stream.
type Console struct {
	out    io.Writer
	styled bool
}

// NewConsole creates a console renderer. Styling is enabled only when the
// writer is a terminal.
func NewConsole(out io.Writer) *Console {
	styled := false
	if f, ok := out.(*os.File); ok {
		styled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Console{out: out, styled: styled}
}

// Line prints one labeled description, tinted with the given color.
func (c *Console) Line(label, text string, color snake.Color) {
	if c.styled {
		if style, ok := styles[color]; ok {
			text = style.Render(text)
		}
	}
	fmt.Fprintf(c.out, "%s %s\n", label, text)
}

// Banner prints the run header.
func (c *Console) Banner(title string) {
	fmt.Fprintln(c.out, "=========================================")
	fmt.Fprintln(c.out, title)
	fmt.Fprintln(c.out, "=========================================")
}
