package atlas

import (
	"image"
	"math"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestProject(t *testing.T) {
	uv := Project(Rect{X: 10, Y: 20, Width: 30, Height: 40}, 1024, 1024)

	want := UVRect{X: 0.00977, Y: 0.01953, Width: 0.02930, Height: 0.03906}
	if !approx(uv.X, want.X) || !approx(uv.Y, want.Y) ||
		!approx(uv.Width, want.Width) || !approx(uv.Height, want.Height) {
		t.Errorf("Project() = %+v, want ~%+v", uv, want)
	}

	// Exact division, no rounding.
	if uv.X != float32(10)/1024 || uv.Height != float32(40)/1024 {
		t.Errorf("Project() should be plain float32 division, got %+v", uv)
	}
}

func TestProject_NonSquare(t *testing.T) {
	uv := Project(Rect{X: 50, Y: 25, Width: 100, Height: 50}, 200, 100)
	want := UVRect{X: 0.25, Y: 0.25, Width: 0.5, Height: 0.5}
	if uv != want {
		t.Errorf("Project() = %+v, want %+v", uv, want)
	}
	if uv.U1() != 0.75 || uv.V1() != 0.75 {
		t.Errorf("U1, V1 = %v, %v, want 0.75, 0.75", uv.U1(), uv.V1())
	}
}

func TestProject_FullAtlas(t *testing.T) {
	uv := Project(Rect{Width: 64, Height: 32}, 64, 32)
	if uv != (UVRect{Width: 1, Height: 1}) {
		t.Errorf("Project(full) = %+v, want {0 0 1 1}", uv)
	}
}

func TestRect_Overlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"same", a, true},
		{"inside", Rect{X: 2, Y: 2, Width: 2, Height: 2}, true},
		{"touching edge", Rect{X: 10, Y: 0, Width: 5, Height: 5}, false},
		{"one pixel overlap", Rect{X: 9, Y: 9, Width: 5, Height: 5}, true},
		{"far", Rect{X: 100, Y: 100, Width: 1, Height: 1}, false},
		{"empty", Rect{X: 5, Y: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps(%+v) = %v, want %v", tt.b, got, tt.want)
			}
		})
	}
}

func TestRect_BoundsAndInset(t *testing.T) {
	r := Rect{X: 3, Y: 4, Width: 5, Height: 6}
	if got, want := r.Bounds(), image.Rect(3, 4, 8, 10); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if got, want := r.Inset(-1), (Rect{X: 2, Y: 3, Width: 7, Height: 8}); got != want {
		t.Errorf("Inset(-1) = %+v, want %+v", got, want)
	}
	if !(Rect{Width: 0, Height: 4}).Empty() {
		t.Error("zero-width rect should be empty")
	}
	if r.Empty() {
		t.Error("5x6 rect should not be empty")
	}
}
