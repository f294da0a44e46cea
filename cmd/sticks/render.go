package main

import (
	"fmt"
	"os"

	"github.com/2x3systems/sticks/sticks"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var (
	colorMuted    = lipgloss.Color("#2C4A54")
	colorScaffold = lipgloss.Color("#1D9DA0")
	colorBound    = lipgloss.Color("#F4D03F")
	colorPos      = lipgloss.Color("#2CD7C7")
	colorNeg      = lipgloss.Color("#E74C3C")
)

var cellStyles = map[sticks.CellState]lipgloss.Style{
	sticks.Empty:          lipgloss.NewStyle(),
	sticks.Blocked:        lipgloss.NewStyle().Foreground(colorMuted),
	sticks.SelfAdjacent:   lipgloss.NewStyle().Foreground(colorMuted),
	sticks.StructuralPair: lipgloss.NewStyle().Foreground(colorScaffold),
	sticks.FixedPos:       lipgloss.NewStyle().Foreground(colorBound),
	sticks.FixedNeg:       lipgloss.NewStyle().Foreground(colorBound),
	sticks.LinkedPos:      lipgloss.NewStyle().Bold(true).Foreground(colorPos),
	sticks.LinkedNeg:      lipgloss.NewStyle().Bold(true).Foreground(colorNeg),
}

// newPainter returns a PrintOpts.Paint func for the given color mode, or nil for plain output.
func newPainter(mode string, out *os.File) (func(sticks.CellState, string) string, error) {
	switch mode {
	case "never":
		return nil, nil
	case "auto":
		fd := out.Fd()
		if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
			return nil, nil
		}
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
	default:
		return nil, fmt.Errorf("unknown color mode %q", mode)
	}
	return paintCell, nil
}

func paintCell(state sticks.CellState, padded string) string {
	style, ok := cellStyles[state]
	if !ok {
		return padded
	}
	return style.Render(padded)
}
