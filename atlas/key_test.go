package atlas

import "testing"

func TestGlyphKey_Blank(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{' ', true},
		{'\t', true},
		{'\n', true},
		{'\u00a0', true},
		{'\u3000', true},
		{'a', false},
		{'.', false},
		{0, false},
	}
	for _, tt := range tests {
		if got := (GlyphKey{Rune: tt.r}).Blank(); got != tt.want {
			t.Errorf("GlyphKey{Rune: %q}.Blank() = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestGlyphKey_Offset(t *testing.T) {
	dx, dy := GlyphKey{SubX: 1, SubY: 3}.Offset()
	if dx != 0.25 || dy != 0.75 {
		t.Errorf("Offset() = (%v, %v), want (0.25, 0.75)", dx, dy)
	}
}

func TestGlyphKey_Comparable(t *testing.T) {
	m := map[GlyphKey]int{}
	a := GlyphKey{Font: 1, GlyphID: 42, Rune: 'x', Size: 16, SubX: 2}
	b := a
	m[a] = 1
	m[b] = 2
	if len(m) != 1 {
		t.Errorf("equal keys should collide, got %d entries", len(m))
	}
	b.SubX = 3
	m[b] = 3
	if len(m) != 2 {
		t.Errorf("keys differing in SubX should be distinct, got %d entries", len(m))
	}
}
