package libsticks

import (
	"github.com/2x3systems/sticks/sticks"
	"github.com/emirpasic/gods/sets/treeset"
)

// RoleOf returns the position of a connection point on its stick.
func RoleOf(index int) sticks.Role {
	return sticks.Role(index % sticks.PointsPerMember)
}

// MemberOf returns the stick that owns a connection point.
func MemberOf(index int) int {
	return index / sticks.PointsPerMember
}

// blockOf returns the first point index of the stick owning the given point.
func blockOf(index int) int {
	return MemberOf(index) * sticks.PointsPerMember
}

// Point is one of the three terminals of a stick.
type Point struct {
	index   int
	tension sticks.Sign
	links   *treeset.Set // linked point indices, ascending
}

func newPoint(index int) *Point {
	return &Point{
		index: index,
		links: treeset.NewWithIntComparator(),
	}
}

func (p *Point) Index() int {
	return p.index
}

func (p *Point) Role() sticks.Role {
	return RoleOf(p.index)
}

func (p *Point) Member() int {
	return MemberOf(p.index)
}

// Tension is +1, -1, or 0 if this point was never connected.
func (p *Point) Tension() sticks.Sign {
	return p.tension
}

// Link joins p and other in both directions (no-op if already joined).
func (p *Point) Link(other *Point) {
	p.links.Add(other.index)
	other.links.Add(p.index)
}

// LinkCount returns the number of distinct points p is joined to.
func (p *Point) LinkCount() int {
	return p.links.Size()
}

// LinkedPoints returns the indices p is joined to in ascending order.
func (p *Point) LinkedPoints() []int {
	vals := p.links.Values()
	out := make([]int, len(vals))
	for i, v := range vals {
		out[i] = v.(int)
	}
	return out
}

func (p *Point) clone() *Point {
	dup := newPoint(p.index)
	dup.tension = p.tension
	dup.links.Add(p.links.Values()...)
	return dup
}
