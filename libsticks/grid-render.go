package libsticks

import (
	"fmt"
	"io"
	"strings"

	"github.com/2x3systems/sticks/sticks"
)

var (
	newline = []byte("\n")
	divider = []byte(" |")
)

// WriteAsTable writes the grid as a labeled table: a header row of column indices, a ruler, then one line per row.
func (g *Grid) WriteAsTable(out io.Writer, opts sticks.PrintOpts) {
	width := opts.CellWidth
	if width <= 0 {
		width = 4
	}
	base := 0
	if opts.OneBased {
		base = 1
	}

	if opts.Label != "" {
		fmt.Fprintln(out, opts.Label)
	}

	b := strings.Builder{}
	b.Grow((g.dim + 2) * (width + 1))

	// column header
	fmt.Fprintf(&b, "%*s", width, "")
	b.Write(divider)
	for c := 0; c < g.dim; c++ {
		if opts.Separators && c > 0 && c%sticks.PointsPerMember == 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%*d", width, c+base)
	}
	b.Write(newline)

	// ruler
	b.WriteString(strings.Repeat("-", width))
	b.WriteString("-+")
	rulerLen := g.dim * width
	if opts.Separators {
		rulerLen += g.memberCount - 1
	}
	b.WriteString(strings.Repeat("-", rulerLen))
	b.Write(newline)
	out.Write([]byte(b.String()))

	for r := 0; r < g.dim; r++ {
		b.Reset()
		if opts.Separators && r > 0 && r%sticks.PointsPerMember == 0 {
			b.Write(newline)
		}
		fmt.Fprintf(&b, "%*d", width, r+base)
		b.Write(divider)
		for c := 0; c < g.dim; c++ {
			if opts.Separators && c > 0 && c%sticks.PointsPerMember == 0 {
				b.WriteString(" ")
			}
			state := g.Cell(r, c)
			padded := fmt.Sprintf("%*s", width, state.Label())
			if opts.Paint != nil {
				padded = opts.Paint(state, padded)
			}
			b.WriteString(padded)
		}
		b.Write(newline)
		out.Write([]byte(b.String()))
	}
}

// String returns the grid as a zero-based table.
func (g *Grid) String() string {
	b := strings.Builder{}
	g.WriteAsTable(&b, sticks.PrintOpts{})
	return b.String()
}
