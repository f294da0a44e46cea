package libsticks

import (
	"github.com/2x3systems/sticks/sticks"
	"github.com/emirpasic/gods/maps/treemap"
)

// Member is a rigid stick owning three contiguous connection points.
type Member struct {
	id        int
	points    [sticks.PointsPerMember]*Point
	neighbors *treemap.Map // neighbor stick id => number of direct links
}

func newMember(id int) *Member {
	m := &Member{
		id:        id,
		neighbors: treemap.NewWithIntComparator(),
	}
	for i := range m.points {
		m.points[i] = newPoint(id*sticks.PointsPerMember + i)
	}
	return m
}

func (m *Member) ID() int {
	return m.id
}

// Point returns the connection point at the given position.
func (m *Member) Point(role sticks.Role) *Point {
	return m.points[role]
}

// RecordLink counts one more direct link to the given stick.
// The caller guarantees other != m.ID().
func (m *Member) RecordLink(other int) {
	m.neighbors.Put(other, m.LinkCount(other)+1)
}

// LinkCount returns how many direct links join this stick to the given one.
func (m *Member) LinkCount(other int) int {
	if n, found := m.neighbors.Get(other); found {
		return n.(int)
	}
	return 0
}

// Neighbors returns the ids of every stick linked to this one, ascending.
func (m *Member) Neighbors() []int {
	keys := m.neighbors.Keys()
	out := make([]int, len(keys))
	for i, k := range keys {
		out[i] = k.(int)
	}
	return out
}

// InEquilibrium returns true when both ends carry the same non-zero tension and the center carries the opposite.
func (m *Member) InEquilibrium() bool {
	e1 := m.points[sticks.First].tension
	mid := m.points[sticks.Center].tension
	e2 := m.points[sticks.Last].tension

	return e1 == e2 && e1 == -mid && e1 != sticks.NoSign
}

func (m *Member) clone() *Member {
	dup := &Member{
		id:        m.id,
		neighbors: treemap.NewWithIntComparator(),
	}
	for i, p := range m.points {
		dup.points[i] = p.clone()
	}
	it := m.neighbors.Iterator()
	for it.Next() {
		dup.neighbors.Put(it.Key(), it.Value())
	}
	return dup
}
