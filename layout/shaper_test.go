package layout

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glyphatlas/atlas"
	"github.com/gogpu/glyphatlas/raster"
)

func newTestShaper(t *testing.T) (*Shaper, *raster.Fonts) {
	t.Helper()
	s, err := NewShaper(goregular.TTF)
	if err != nil {
		t.Fatalf("NewShaper() error = %v", err)
	}
	f, err := raster.NewFonts(goregular.TTF)
	if err != nil {
		t.Fatalf("raster.NewFonts() error = %v", err)
	}
	return s, f
}

func TestNewShaper_Errors(t *testing.T) {
	if _, err := NewShaper(); !errors.Is(err, ErrNoFonts) {
		t.Errorf("NewShaper() error = %v, want ErrNoFonts", err)
	}
	if _, err := NewShaper([]byte("garbage")); err == nil {
		t.Error("NewShaper(garbage) should fail")
	}
}

func TestLayout_Basic(t *testing.T) {
	s, f := newTestShaper(t)

	opts := DefaultOptions()
	opts.Size = 24
	reqs, err := s.Layout("Hi there", opts, f)
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if len(reqs) != 8 {
		t.Fatalf("len(reqs) = %d, want 8", len(reqs))
	}

	want := []rune("Hi there")
	for i, r := range reqs {
		if r.Key.Rune != want[i] {
			t.Errorf("reqs[%d].Rune = %q, want %q", i, r.Key.Rune, want[i])
		}
		if r.Key.Size != 24 {
			t.Errorf("reqs[%d].Size = %v, want 24", i, r.Key.Size)
		}
		m, err := f.Measure(r.Key)
		if err != nil {
			t.Fatal(err)
		}
		if r.Width != m.Width || r.Height != m.Height {
			t.Errorf("reqs[%d] size = %dx%d, Measure says %dx%d", i, r.Width, r.Height, m.Width, m.Height)
		}
	}

	if reqs[2].Width != 0 || !reqs[2].Key.Blank() {
		t.Errorf("space request = %+v, want blank with no pixels", reqs[2])
	}
	if !(reqs[0].X < reqs[1].X && reqs[1].X < reqs[3].X) {
		t.Errorf("glyphs should advance left to right: %v %v %v", reqs[0].X, reqs[1].X, reqs[3].X)
	}
	if reqs[0].Y >= opts.Y {
		t.Errorf("'H' top = %v, should be above the baseline %v", reqs[0].Y, opts.Y)
	}
}

func TestLayout_Lines(t *testing.T) {
	s, f := newTestShaper(t)

	opts := DefaultOptions()
	opts.Subpixel = false
	opts.LineHeight = 30
	reqs, err := s.Layout("T\n\nT", opts, f)
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if len(reqs) != 2 {
		t.Fatalf("len(reqs) = %d, want 2", len(reqs))
	}
	if reqs[0].Key != reqs[1].Key {
		t.Errorf("same glyph at the same line start should share a key: %+v vs %+v", reqs[0].Key, reqs[1].Key)
	}
	if got := reqs[1].Y - reqs[0].Y; got != 60 {
		t.Errorf("third line offset = %v, want 60", got)
	}
	if reqs[0].X != reqs[1].X {
		t.Errorf("lines should start at the same X: %v vs %v", reqs[0].X, reqs[1].X)
	}
}

func TestLayout_SubpixelDisabled(t *testing.T) {
	s, f := newTestShaper(t)

	opts := DefaultOptions()
	opts.Subpixel = false
	opts.Size = 13
	reqs, err := s.Layout("fractional advances", opts, f)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range reqs {
		if r.Key.SubX != 0 || r.Key.SubY != 0 {
			t.Errorf("glyph %q has subpixel offset %d with Subpixel=false", r.Key.Rune, r.Key.SubX)
		}
	}
}

func TestLayout_Normalizes(t *testing.T) {
	s, f := newTestShaper(t)

	reqs, err := s.Layout("e\u0301", DefaultOptions(), f)
	if err != nil {
		t.Fatal(err)
	}
	if len(reqs) != 1 || reqs[0].Key.Rune != '\u00e9' {
		t.Errorf("Layout(e + combining acute) = %+v, want a single 'é'", reqs)
	}
}

func TestLayout_Empty(t *testing.T) {
	s, f := newTestShaper(t)
	reqs, err := s.Layout("", DefaultOptions(), f)
	if err != nil || len(reqs) != 0 {
		t.Errorf("Layout(\"\") = %v, %v, want no requests", reqs, err)
	}
}

func TestLayout_BadFont(t *testing.T) {
	s, f := newTestShaper(t)
	opts := DefaultOptions()
	opts.Font = 3
	if _, err := s.Layout("x", opts, f); err == nil {
		t.Error("Layout with an unknown font index should fail")
	}
}

type failingMeasurer struct{ err error }

func (m failingMeasurer) Measure(atlas.GlyphKey) (atlas.Metrics, error) {
	return atlas.Metrics{}, m.err
}

func TestLayout_MeasureError(t *testing.T) {
	s, _ := newTestShaper(t)
	errBroken := errors.New("broken")
	_, err := s.Layout("x", DefaultOptions(), failingMeasurer{err: errBroken})
	if !errors.Is(err, errBroken) {
		t.Errorf("error = %v, want wrapped measurer error", err)
	}
}

func TestLayout_IntoAtlas(t *testing.T) {
	s, f := newTestShaper(t)

	reqs, err := s.Layout("The quick brown fox\njumps over the lazy dog", DefaultOptions(), f)
	if err != nil {
		t.Fatal(err)
	}

	c, err := atlas.New(256, 256, atlas.Subpixel)
	if err != nil {
		t.Fatal(err)
	}
	res, err := c.Ingest(f, reqs)
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}
	if len(res.Dropped) != 0 {
		t.Errorf("dropped %d glyphs", len(res.Dropped))
	}

	for _, r := range reqs {
		uv, ok := c.Lookup(r.Key)
		if r.Key.Blank() {
			if ok {
				t.Errorf("blank %q should not be in the atlas", r.Key.Rune)
			}
			continue
		}
		if !ok {
			t.Errorf("glyph %q missing from atlas", r.Key.Rune)
			continue
		}
		if uv.X < 0 || uv.Y < 0 || uv.U1() > 1 || uv.V1() > 1 {
			t.Errorf("glyph %q UV %+v outside [0,1]", r.Key.Rune, uv)
		}
	}

	// Re-laying out the same text adds nothing.
	again, err := c.Ingest(f, reqs)
	if err != nil || len(again.Added) != 0 {
		t.Errorf("second Ingest added %d, err %v; want 0, nil", len(again.Added), err)
	}
}
