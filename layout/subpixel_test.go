package layout

import "testing"

func TestQuantize(t *testing.T) {
	tests := []struct {
		pos     float32
		wantInt int
		wantSub uint8
	}{
		{10.0, 10, 0},
		{10.25, 10, 1},
		{10.5, 10, 2},
		{10.75, 10, 3},
		{10.99, 10, 3},
		{10.1, 10, 0},
		{0, 0, 0},
		{-0.25, -1, 3},
		{-1.0, -1, 0},
	}
	for _, tt := range tests {
		gotInt, gotSub := Quantize(tt.pos)
		if gotInt != tt.wantInt || gotSub != tt.wantSub {
			t.Errorf("Quantize(%v) = (%d, %d), want (%d, %d)", tt.pos, gotInt, gotSub, tt.wantInt, tt.wantSub)
		}
	}
}
