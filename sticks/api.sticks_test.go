package sticks

import "testing"

func TestSignOf(t *testing.T) {
	tests := []struct {
		v    int64
		want Sign
		ok   bool
	}{
		{1, Pos, true},
		{-1, Neg, true},
		{0, NoSign, false},
		{2, NoSign, false},
		{257, NoSign, false},
		{-255, NoSign, false},
		{1 << 33, NoSign, false},
	}
	for _, tt := range tests {
		got, err := SignOf(tt.v)
		if got != tt.want || (err == nil) != tt.ok {
			t.Errorf("SignOf(%d) = %v, %v", tt.v, got, err)
		}
		if !tt.ok && err != ErrInvalidSign {
			t.Errorf("SignOf(%d) error = %v, want ErrInvalidSign", tt.v, err)
		}
	}
}
