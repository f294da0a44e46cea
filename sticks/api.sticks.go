package sticks

const (

	// MinMembers is the smallest number of sticks a Board can be built with.
	MinMembers = 4

	// MaxMembers is the largest number of sticks a Board can be built with.
	MaxMembers = 1024

	// PointsPerMember is the number of connection points on every stick.
	PointsPerMember = 3
)

// Role is the position of a connection point on its stick.
type Role byte

const (
	First  Role = 0 // E1
	Center Role = 1 // M
	Last   Role = 2 // E2
)

func (r Role) String() string {
	return [...]string{"E1", "M", "E2"}[r]
}

// IsEnd returns true for First and Last.
func (r Role) IsEnd() bool {
	return r != Center
}

// Sign is the direction of a tension/compression link.
type Sign int8

const (
	NoSign Sign = 0
	Pos    Sign = +1
	Neg    Sign = -1
)

// ParseSign converts a user token ("+" or "-") into a Sign.
func ParseSign(token string) (Sign, error) {
	switch token {
	case "+":
		return Pos, nil
	case "-":
		return Neg, nil
	}
	return NoSign, ErrInvalidSign
}

// SignOf converts a numeric sign (+1 or -1) into a Sign.
func SignOf(v int64) (Sign, error) {
	switch v {
	case 1:
		return Pos, nil
	case -1:
		return Neg, nil
	}
	return NoSign, ErrInvalidSign
}

func (s Sign) IsValid() bool {
	return s == Pos || s == Neg
}

func (s Sign) Inverse() Sign {
	return -s
}

func (s Sign) String() string {
	switch s {
	case Pos:
		return "+"
	case Neg:
		return "-"
	}
	return "?"
}

// CellState is the relation held by one cell of the grid.
type CellState byte

const (
	Empty          CellState = iota // no relation yet
	Blocked                         // forced impossible by propagation
	FixedPos                        // inferred bound: a connection here must be '+'
	FixedNeg                        // inferred bound: a connection here must be '-'
	LinkedPos                       // placed connection, '+' side
	LinkedNeg                       // placed connection, '-' side
	SelfAdjacent                    // scaffold: same point or E1/E2 of one stick
	StructuralPair                  // scaffold: M to E1/E2 of one stick
)

// Label returns the console glyph for this state.
func (c CellState) Label() string {
	return [...]string{"0", "x", "+", "-", "1", "-1", "x", "2"}[c]
}

func (c CellState) String() string {
	return [...]string{"Empty", "Blocked", "Fixed+", "Fixed-", "Linked+", "Linked-", "SelfAdjacent", "StructuralPair"}[c]
}

// IsScaffold returns true for the permanent markers set at construction.
func (c CellState) IsScaffold() bool {
	return c == SelfAdjacent || c == StructuralPair
}

// IsFixed returns true for an inferred sign bound.
func (c CellState) IsFixed() bool {
	return c == FixedPos || c == FixedNeg
}

// IsLinked returns true for a placed connection.
func (c CellState) IsLinked() bool {
	return c == LinkedPos || c == LinkedNeg
}

// IsSigned returns true for any bound or placed sign.
func (c CellState) IsSigned() bool {
	return c.IsFixed() || c.IsLinked()
}

// IsOpen returns true if the cell still needs a decision (Empty or a bound).
func (c CellState) IsOpen() bool {
	return c == Empty || c.IsFixed()
}

// Sign returns the sign carried by this state, or NoSign.
func (c CellState) Sign() Sign {
	switch c {
	case FixedPos, LinkedPos:
		return Pos
	case FixedNeg, LinkedNeg:
		return Neg
	}
	return NoSign
}

// Mirror returns the state the transposed cell must hold.
func (c CellState) Mirror() CellState {
	switch c {
	case FixedPos:
		return FixedNeg
	case FixedNeg:
		return FixedPos
	case LinkedPos:
		return LinkedNeg
	case LinkedNeg:
		return LinkedPos
	}
	return c
}

// FixedFor returns the bound state for the given sign.
func FixedFor(s Sign) CellState {
	if s == Neg {
		return FixedNeg
	}
	return FixedPos
}

// LinkedFor returns the placed-connection state for the given sign.
func LinkedFor(s Sign) CellState {
	if s == Neg {
		return LinkedNeg
	}
	return LinkedPos
}

// Move is one accepted connection request.
type Move struct {
	From int
	To   int
	Sign Sign
}

// Board is the call surface a driver needs from a relation grid.
type Board interface {

	// MemberCount returns the number of sticks.
	MemberCount() int

	// PointCount returns 3 * MemberCount(), the size of each grid dimension.
	PointCount() int

	// Cell returns the state at the given row and column.
	Cell(row, col int) CellState

	// Connect places a directed link between two connection points and applies all forced consequences.
	// Returns the number of previously open cells closed by this single request.
	// On error the board is unchanged.
	Connect(from, to int, sign Sign) (int, error)

	// IsComplete returns true when no cell is Empty or holds an unplaced bound.
	IsComplete() bool

	// Render returns one label per cell, row by row.
	Render() [][]string
}

// PrintOpts specifies what is printed when writing a grid as a table.
type PrintOpts struct {
	Label      string // Prefix label
	OneBased   bool   // If set, row and column headers start at 1
	Separators bool   // If set, a divider is drawn between sticks
	CellWidth  int    // Width of each column (0 denotes 4)

	// Paint, if set, decorates each already-padded cell (e.g. with terminal colors).
	Paint func(state CellState, padded string) string
}

// DefaultPrintOpts prints one-based headers with 4-wide cells.
var DefaultPrintOpts = PrintOpts{
	OneBased:  true,
	CellWidth: 4,
}
