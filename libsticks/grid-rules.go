package libsticks

import (
	"github.com/2x3systems/sticks/sticks"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// Connect places a directed link from one connection point to another and applies every forced consequence.
//
// Returns the number of previously open cells closed by this request.
// A rejected request returns an error wrapping one of the sticks.Err* values and leaves the grid unchanged.
func (g *Grid) Connect(from, to int, sign sticks.Sign) (int, error) {
	if err := g.checkRequest(from, to, sign); err != nil {
		klog.V(2).Infof("rejected %d%v%d: %v", from, sign, to, err)
		return 0, err
	}

	pr := propagation{g: g}
	pr.connect(from, to, sign)
	g.moves = append(g.moves, sticks.Move{From: from, To: to, Sign: sign})

	klog.V(2).Infof("connected %d%v%d (%v-%v), eliminated %d, %d open", from, sign, to, RoleOf(from), RoleOf(to), pr.eliminated, g.OpenCells())
	return pr.eliminated, nil
}

func (g *Grid) checkRequest(from, to int, sign sticks.Sign) error {
	if from < 0 || from >= g.dim || to < 0 || to >= g.dim {
		return errors.Wrapf(sticks.ErrOutOfRange, "points %d and %d must be in [0,%d)", from, to, g.dim)
	}
	if from == to {
		return errors.Wrapf(sticks.ErrOutOfRange, "point %d cannot connect to itself", from)
	}

	cur := g.Cell(from, to)
	if !cur.IsOpen() {
		return errors.Wrapf(sticks.ErrCellOccupied, "cell (%d,%d) is %v", from, to, cur)
	}
	if !sign.IsValid() {
		return errors.Wrapf(sticks.ErrInvalidSign, "got %d", sign)
	}
	if cur.IsFixed() && cur.Sign() != sign {
		return errors.Wrapf(sticks.ErrSignConflict, "cell (%d,%d) is bound to %v", from, to, cur.Sign())
	}
	return nil
}

// propagation carries the eliminated-cell tally for a single accepted request.
type propagation struct {
	g          *Grid
	eliminated int
}

func (pr *propagation) connect(from, to int, sign sticks.Sign) {
	g := pr.g
	fromID, toID := MemberOf(from), MemberOf(to)
	fromPt, toPt := g.Point(from), g.Point(to)

	g.members[fromID].RecordLink(toID)
	g.members[toID].RecordLink(fromID)
	fromPt.Link(toPt)
	fromPt.tension = sign
	toPt.tension = sign.Inverse()

	pr.blockBetween(fromID, toID)
	pr.writePair(from, to, sticks.LinkedFor(sign))

	// A second independent link makes the two sticks end-to-end equivalent, so only a first link adds bounds.
	if count := g.members[fromID].LinkCount(toID); count == 1 {
		pr.applyLinkType(from, to, sign)
	} else {
		klog.V(3).Infof("sticks %d and %d now share %d links", fromID, toID, count)
	}

	pr.inferTransitive(fromPt)
	pr.inferTransitive(toPt)

	pr.enforceLimit(fromPt)
	pr.enforceLimit(toPt)
}

// applyLinkType adds the sign bounds implied by a first link between two sticks.
//
// End-End and Mid-Mid links add nothing beyond the blanket block.
// A Mid-End link bounds the End stick's center against both ends of the Mid stick.
// Cells in the from-block rows carry the request's sign; their mirrors carry the inverse.
func (pr *propagation) applyLinkType(from, to int, sign sticks.Sign) {
	fromMid := RoleOf(from) == sticks.Center
	toMid := RoleOf(to) == sticks.Center
	if fromMid == toMid {
		return
	}

	midBlock, endBlock := blockOf(from), blockOf(to)
	if !fromMid {
		midBlock, endBlock = endBlock, midBlock
	}
	endCenter := endBlock + int(sticks.Center)
	midEnds := [2]int{midBlock + int(sticks.First), midBlock + int(sticks.Last)}

	bound := sticks.FixedFor(sign)
	for _, midEnd := range midEnds {
		klog.V(3).Infof("mid-end bound: %d against %d", endCenter, midEnd)
		if fromMid {
			pr.writePair(midEnd, endCenter, bound)
		} else {
			pr.writePair(endCenter, midEnd, bound)
		}
	}
}

// inferTransitive blocks the sticks owning any two points that p is linked to.
func (pr *propagation) inferTransitive(p *Point) {
	linked := p.LinkedPoints()
	if len(linked) < 2 {
		return
	}
	for i := 0; i < len(linked); i++ {
		for j := i + 1; j < len(linked); j++ {
			a, b := MemberOf(linked[i]), MemberOf(linked[j])
			if a == b {
				continue
			}
			klog.V(3).Infof("point %d joins sticks %d and %d", p.index, a, b)
			pr.blockBetween(a, b)
		}
	}
}

// enforceLimit freezes the whole row and column of a point that has reached MaxLinksPerPoint.
func (pr *propagation) enforceLimit(p *Point) {
	if p.LinkCount() < MaxLinksPerPoint {
		return
	}
	klog.V(3).Infof("point %d reached %d links", p.index, p.LinkCount())
	for k := 0; k < pr.g.dim; k++ {
		pr.blockPair(p.index, k)
	}
}

// blockBetween blocks every unsigned cell between the 3-blocks of two sticks, in both orientations.
func (pr *propagation) blockBetween(memberA, memberB int) {
	a0 := memberA * sticks.PointsPerMember
	b0 := memberB * sticks.PointsPerMember
	for r := a0; r < a0+sticks.PointsPerMember; r++ {
		for c := b0; c < b0+sticks.PointsPerMember; c++ {
			pr.blockPair(r, c)
		}
	}
}

// blockPair blocks (r,c) and (c,r) unless they already carry a sign.
func (pr *propagation) blockPair(r, c int) {
	if !pr.g.Cell(r, c).IsSigned() {
		pr.writeCell(r, c, sticks.Blocked)
	}
	if !pr.g.Cell(c, r).IsSigned() {
		pr.writeCell(c, r, sticks.Blocked)
	}
}

// writePair writes state at (r,c) and its mirror at (c,r).
func (pr *propagation) writePair(r, c int, state sticks.CellState) {
	pr.writeCell(r, c, state)
	pr.writeCell(c, r, state.Mirror())
}

// writeCell is the only path that changes a cell after construction.
//
// Empty->Blocked counts 2 and Empty->sign counts 1; a sign written over Blocked gives one back.
// Scaffold cells never change and a sign is never replaced by a different sign family.
func (pr *propagation) writeCell(r, c int, v sticks.CellState) {
	g := pr.g
	cur := g.Cell(r, c)

	switch {
	case cur == v, cur.IsScaffold():
		return

	case cur == sticks.Blocked:
		if v.IsSigned() {
			g.set(r, c, v)
			pr.eliminated--
		}

	case cur == sticks.Empty:
		g.set(r, c, v)
		if v == sticks.Blocked {
			pr.eliminated += 2
		} else if v.IsSigned() {
			pr.eliminated++
		}

	case cur.IsSigned() && v == sticks.Blocked:
		g.set(r, c, v)
		pr.eliminated++

	case cur.IsFixed() && v.IsLinked() && cur.Sign() == v.Sign():
		g.set(r, c, v)
		pr.eliminated++
	}
}
