package libsticks

import (
	"strconv"
	"strings"

	"github.com/2x3systems/sticks/sticks"
	"github.com/alecthomas/participle/v2"
	"github.com/pkg/errors"
)

// MoveScript is a sequence of moves such as "1+3, 4-0; 7+10".
type MoveScript struct {
	Moves []*MoveExpr `(@@ (("," | ";")? @@)*)?`
}

// MoveExpr is a single "<from><sign><to>" request using zero-based point indices.
type MoveExpr struct {
	From int    `@Int`
	Sign string `@("+" | "-")`
	To   int    `@Int`
}

var parseMoveScript = participle.MustBuild[MoveScript]()

// ParseMoves parses a move script into an ordered list of moves.
func ParseMoves(script string) ([]sticks.Move, error) {
	expr, err := parseMoveScript.ParseString("", script)
	if err != nil {
		return nil, errors.Wrapf(sticks.ErrBadScript, "%v", err)
	}

	moves := make([]sticks.Move, 0, len(expr.Moves))
	for _, mv := range expr.Moves {
		sign, err := sticks.ParseSign(mv.Sign)
		if err != nil {
			return nil, errors.Wrapf(sticks.ErrBadScript, "%v", err)
		}
		moves = append(moves, sticks.Move{
			From: mv.From,
			To:   mv.To,
			Sign: sign,
		})
	}
	return moves, nil
}

// FormatMoves writes moves in the form accepted by ParseMoves.
func FormatMoves(moves []sticks.Move) string {
	b := strings.Builder{}
	for i, mv := range moves {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(mv.From))
		b.WriteString(mv.Sign.String())
		b.WriteString(strconv.Itoa(mv.To))
	}
	return b.String()
}

// ApplyScript parses and applies each move in order, stopping at the first rejected move.
//
// Moves before the rejected one stay applied. Returns the total number of cells eliminated.
func (g *Grid) ApplyScript(script string) (int, error) {
	moves, err := ParseMoves(script)
	if err != nil {
		return 0, err
	}

	total := 0
	for i, mv := range moves {
		n, err := g.Connect(mv.From, mv.To, mv.Sign)
		if err != nil {
			return total, errors.Wrapf(err, "move #%d (%d%v%d)", i+1, mv.From, mv.Sign, mv.To)
		}
		total += n
	}
	return total, nil
}
