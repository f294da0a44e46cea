package libsticks

import (
	"github.com/2x3systems/sticks/sticks"
	"github.com/pkg/errors"
)

// MaxLinksPerPoint is the number of links after which a connection point's row and column are frozen.
const MaxLinksPerPoint = 2

// Grid is the square relation matrix between every pair of connection points of every stick.
type Grid struct {
	memberCount int
	dim         int                // 3 * memberCount
	cells       []sticks.CellState // row-major, dim * dim
	members     []*Member
	moves       []sticks.Move // accepted requests, in order
}

var _ sticks.Board = (*Grid)(nil)

// NewGrid allocates a grid for the given number of sticks and lays down each stick's internal scaffold.
func NewGrid(memberCount int) (*Grid, error) {
	if memberCount < sticks.MinMembers || memberCount > sticks.MaxMembers {
		return nil, errors.Wrapf(sticks.ErrInvalidMemberCount, "got %d", memberCount)
	}

	dim := memberCount * sticks.PointsPerMember
	g := &Grid{
		memberCount: memberCount,
		dim:         dim,
		cells:       make([]sticks.CellState, dim*dim),
		members:     make([]*Member, memberCount),
	}

	for id := range g.members {
		g.members[id] = newMember(id)

		b := id * sticks.PointsPerMember
		g.set(b, b, sticks.SelfAdjacent)
		g.set(b+1, b+1, sticks.SelfAdjacent)
		g.set(b+2, b+2, sticks.SelfAdjacent)
		g.set(b, b+2, sticks.SelfAdjacent)
		g.set(b+2, b, sticks.SelfAdjacent)

		g.set(b+1, b, sticks.StructuralPair)
		g.set(b, b+1, sticks.StructuralPair)
		g.set(b+1, b+2, sticks.StructuralPair)
		g.set(b+2, b+1, sticks.StructuralPair)
	}
	return g, nil
}

func (g *Grid) MemberCount() int {
	return g.memberCount
}

func (g *Grid) PointCount() int {
	return g.dim
}

// Cell returns the state at (row, col); both must be in [0, PointCount()).
func (g *Grid) Cell(row, col int) sticks.CellState {
	return g.cells[row*g.dim+col]
}

func (g *Grid) set(row, col int, state sticks.CellState) {
	g.cells[row*g.dim+col] = state
}

// Member returns the stick with the given id, or nil if out of range.
func (g *Grid) Member(id int) *Member {
	if id < 0 || id >= g.memberCount {
		return nil
	}
	return g.members[id]
}

// Point returns the connection point with the given index, or nil if out of range.
func (g *Grid) Point(index int) *Point {
	if index < 0 || index >= g.dim {
		return nil
	}
	return g.members[MemberOf(index)].points[RoleOf(index)]
}

// Moves returns a copy of every accepted request, oldest first.
func (g *Grid) Moves() []sticks.Move {
	return append([]sticks.Move(nil), g.moves...)
}

// IsComplete returns true when no cell is Empty or holds an unplaced bound.
func (g *Grid) IsComplete() bool {
	for _, c := range g.cells {
		if c.IsOpen() {
			return false
		}
	}
	return true
}

// OpenCells returns the number of cells that are Empty or hold an unplaced bound.
func (g *Grid) OpenCells() int {
	open := 0
	for _, c := range g.cells {
		if c.IsOpen() {
			open++
		}
	}
	return open
}

// Equilibrium returns the ids of sticks currently in equilibrium.
func (g *Grid) Equilibrium() []int {
	var ids []int
	for _, m := range g.members {
		if m.InEquilibrium() {
			ids = append(ids, m.id)
		}
	}
	return ids
}

// Render returns one label per cell, row by row.
func (g *Grid) Render() [][]string {
	rows := make([][]string, g.dim)
	for r := range rows {
		row := make([]string, g.dim)
		for c := range row {
			row[c] = g.Cell(r, c).Label()
		}
		rows[r] = row
	}
	return rows
}

// AppendCells appends the raw cell states to the given buffer (used as a state key).
func (g *Grid) AppendCells(buf []byte) []byte {
	for _, c := range g.cells {
		buf = append(buf, byte(c))
	}
	return buf
}

// Clone returns a deep copy of this grid.
func (g *Grid) Clone() *Grid {
	dup := &Grid{
		memberCount: g.memberCount,
		dim:         g.dim,
		cells:       append([]sticks.CellState(nil), g.cells...),
		members:     make([]*Member, len(g.members)),
		moves:       g.Moves(),
	}
	for i, m := range g.members {
		dup.members[i] = m.clone()
	}
	return dup
}
