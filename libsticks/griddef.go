package libsticks

import (
	"bytes"

	"github.com/2x3systems/sticks/sticks"
	"github.com/gogo/protobuf/proto"
	"github.com/pkg/errors"
)

// GridDef mirrors message GridDef in griddef.proto.
type GridDef struct {
	MemberCount int32      `protobuf:"varint,1,opt,name=MemberCount,proto3" json:"MemberCount,omitempty"`
	Cells       []byte     `protobuf:"bytes,2,opt,name=Cells,proto3" json:"Cells,omitempty"`
	Moves       []*MoveDef `protobuf:"bytes,3,rep,name=Moves,proto3" json:"Moves,omitempty"`
}

func (m *GridDef) Reset()         { *m = GridDef{} }
func (m *GridDef) String() string { return proto.CompactTextString(m) }
func (*GridDef) ProtoMessage()    {}

// MoveDef mirrors message MoveDef in griddef.proto.
type MoveDef struct {
	From int32 `protobuf:"varint,1,opt,name=From,proto3" json:"From,omitempty"`
	To   int32 `protobuf:"varint,2,opt,name=To,proto3" json:"To,omitempty"`
	Sign int32 `protobuf:"zigzag32,3,opt,name=Sign,proto3" json:"Sign,omitempty"`
}

func (m *MoveDef) Reset()         { *m = MoveDef{} }
func (m *MoveDef) String() string { return proto.CompactTextString(m) }
func (*MoveDef) ProtoMessage()    {}

func init() {
	proto.RegisterType((*GridDef)(nil), "sticks.GridDef")
	proto.RegisterType((*MoveDef)(nil), "sticks.MoveDef")
}

// ExportDef returns a GridDef for this grid.
// NewGrid bounds memberCount by sticks.MaxMembers, so it always fits an int32.
func (g *Grid) ExportDef() *GridDef {
	def := &GridDef{
		MemberCount: int32(g.memberCount),
		Cells:       g.AppendCells(make([]byte, 0, len(g.cells))),
		Moves:       make([]*MoveDef, len(g.moves)),
	}
	for i, mv := range g.moves {
		def.Moves[i] = &MoveDef{
			From: int32(mv.From),
			To:   int32(mv.To),
			Sign: int32(mv.Sign),
		}
	}
	return def
}

// MarshalDef serializes this grid's GridDef.
func (g *Grid) MarshalDef() ([]byte, error) {
	return proto.Marshal(g.ExportDef())
}

// NewGridFromDef rebuilds a grid by replaying the moves of a GridDef.
// The replayed cells must match the recorded cells.
func NewGridFromDef(def *GridDef) (*Grid, error) {
	g, err := NewGrid(int(def.MemberCount))
	if err != nil {
		return nil, errors.Wrapf(sticks.ErrBadEncoding, "%v", err)
	}

	for i, mv := range def.Moves {
		sign, err := sticks.SignOf(int64(mv.Sign))
		if err != nil {
			return nil, errors.Wrapf(sticks.ErrBadEncoding, "move #%d: %v (got %d)", i+1, err, mv.Sign)
		}
		_, err = g.Connect(int(mv.From), int(mv.To), sign)
		if err != nil {
			return nil, errors.Wrapf(sticks.ErrBadEncoding, "move #%d: %v", i+1, err)
		}
	}

	if len(def.Cells) > 0 && !bytes.Equal(def.Cells, g.AppendCells(nil)) {
		return nil, errors.Wrap(sticks.ErrBadEncoding, "cells do not match recorded moves")
	}
	return g, nil
}

// UnmarshalGrid is the inverse of MarshalDef.
func UnmarshalGrid(buf []byte) (*Grid, error) {
	def := &GridDef{}
	if err := proto.Unmarshal(buf, def); err != nil {
		return nil, errors.Wrapf(sticks.ErrBadEncoding, "%v", err)
	}
	return NewGridFromDef(def)
}
