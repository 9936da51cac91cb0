package raster

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/glyphatlas/atlas"
	"github.com/gogpu/glyphatlas/internal/lru"
)

// metricsCapacity bounds the per-Fonts glyph metrics memo.
const metricsCapacity = 4096

// lcdMargin is the empty column, in pixels, kept on each side of a glyph
// box. The LCD filter spreads coverage two samples sideways, which stays
// inside one pixel.
const lcdMargin = 1

// Fonts is a list of parsed fonts addressed by atlas.GlyphKey.Font.
//
// Fonts is safe for concurrent use; calls are serialized on an internal
// sfnt.Buffer.
type Fonts struct {
	mu      sync.Mutex
	fonts   []*sfnt.Font
	buffer  sfnt.Buffer
	metrics *lru.Cache[atlas.GlyphKey, atlas.Metrics]
}

// NewFonts parses TrueType/OpenType font data. The i-th argument becomes
// font index i.
func NewFonts(data ...[]byte) (*Fonts, error) {
	if len(data) == 0 {
		return nil, ErrNoFonts
	}
	f := &Fonts{
		fonts:   make([]*sfnt.Font, 0, len(data)),
		metrics: lru.New[atlas.GlyphKey, atlas.Metrics](metricsCapacity),
	}
	for i, d := range data {
		if len(d) == 0 {
			return nil, fmt.Errorf("font %d: %w", i, ErrEmptyFontData)
		}
		parsed, err := opentype.Parse(d)
		if err != nil {
			return nil, fmt.Errorf("raster: failed to parse font %d: %w", i, err)
		}
		f.fonts = append(f.fonts, parsed)
	}
	return f, nil
}

// Len returns the number of fonts.
func (f *Fonts) Len() int {
	return len(f.fonts)
}

// Name returns the family name of font i, or "" if it has none.
func (f *Fonts) Name(i int) string {
	fnt, err := f.font(i, 0)
	if err != nil {
		return ""
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	name, err := fnt.Name(&f.buffer, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// GlyphIndex maps a rune to a glyph index in font i.
// Runes the font does not cover map to 0 (.notdef).
func (f *Fonts) GlyphIndex(i int, r rune) (uint16, error) {
	fnt, err := f.font(i, 0)
	if err != nil {
		return 0, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	idx, err := fnt.GlyphIndex(&f.buffer, r)
	if err != nil {
		return 0, err
	}
	return uint16(idx), nil
}

// Measure returns the bitmap size and placement Rasterize will produce
// for key, without rasterizing. Non-empty boxes include one blank pixel
// column on each side so subpixel filtering is never clipped.
func (f *Fonts) Measure(key atlas.GlyphKey) (atlas.Metrics, error) {
	fnt, err := f.font(key.Font, key.GlyphID)
	if err != nil {
		return atlas.Metrics{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.measure(fnt, key)
}

// Rasterize implements atlas.Provider.
func (f *Fonts) Rasterize(key atlas.GlyphKey, format atlas.Format) (atlas.Metrics, []byte, error) {
	fnt, err := f.font(key.Font, key.GlyphID)
	if err != nil {
		return atlas.Metrics{}, nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	m, err := f.measure(fnt, key)
	if err != nil {
		return atlas.Metrics{}, nil, err
	}
	if m.Width == 0 || m.Height == 0 {
		return m, nil, nil
	}

	segments, err := fnt.LoadGlyph(&f.buffer, sfnt.GlyphIndex(key.GlyphID), toFixed(key.Size), nil)
	if err != nil {
		return atlas.Metrics{}, nil, fmt.Errorf("raster: load glyph %d: %w", key.GlyphID, err)
	}

	dx, dy := key.Offset()
	switch format {
	case atlas.Grayscale:
		mask := fill(segments, m, dx, dy, 1)
		return m, mask.Pix, nil
	case atlas.Subpixel:
		mask := fill(segments, m, dx, dy, 3)
		return m, lcdFilter(mask.Pix, m.Width*3, m.Height), nil
	default:
		return atlas.Metrics{}, nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
}

// font validates a font index and glyph id and returns the font.
func (f *Fonts) font(i int, gid uint16) (*sfnt.Font, error) {
	if i < 0 || i >= len(f.fonts) {
		return nil, &FontError{Font: i, GlyphID: gid, Reason: "font index out of range"}
	}
	fnt := f.fonts[i]
	if int(gid) >= fnt.NumGlyphs() {
		return nil, &FontError{Font: i, GlyphID: gid, Reason: "glyph index out of range"}
	}
	return fnt, nil
}

// measure computes the pixel box of a glyph at the key's size and
// fractional offset. Results are memoized. Must be called with mu held.
func (f *Fonts) measure(fnt *sfnt.Font, key atlas.GlyphKey) (atlas.Metrics, error) {
	if key.Size <= 0 {
		return atlas.Metrics{}, &FontError{Font: key.Font, GlyphID: key.GlyphID, Reason: "size must be positive"}
	}
	if m, ok := f.metrics.Get(key); ok {
		return m, nil
	}
	m, err := f.computeMetrics(fnt, key)
	if err != nil {
		return atlas.Metrics{}, err
	}
	f.metrics.Set(key, m)
	return m, nil
}

func (f *Fonts) computeMetrics(fnt *sfnt.Font, key atlas.GlyphKey) (atlas.Metrics, error) {
	bounds, advance, err := fnt.GlyphBounds(&f.buffer, sfnt.GlyphIndex(key.GlyphID), toFixed(key.Size), font.HintingNone)
	if err != nil {
		return atlas.Metrics{}, fmt.Errorf("raster: glyph bounds %d: %w", key.GlyphID, err)
	}

	m := atlas.Metrics{Advance: float32(advance) / 64}
	if bounds.Empty() {
		return m, nil
	}

	dx, dy := key.Offset()
	x0 := floor(fromFixed(bounds.Min.X)+dx) - lcdMargin
	y0 := floor(fromFixed(bounds.Min.Y) + dy)
	x1 := ceil(fromFixed(bounds.Max.X)+dx) + lcdMargin
	y1 := ceil(fromFixed(bounds.Max.Y) + dy)

	m.XMin, m.YMin = x0, y0
	m.Width, m.Height = x1-x0, y1-y0
	return m, nil
}

// fill rasterizes glyph segments into a coverage mask of
// (m.Width*xscale)×m.Height pixels. The outline is shifted by the
// fractional offset and the bitmap origin, then stretched horizontally by
// xscale.
func fill(segments sfnt.Segments, m atlas.Metrics, dx, dy float32, xscale int) *image.Alpha {
	w := m.Width * xscale
	r := vector.NewRasterizer(w, m.Height)
	r.DrawOp = draw.Src

	ox := dx - float32(m.XMin)
	oy := dy - float32(m.YMin)
	sx := float32(xscale)
	px := func(v fixed.Int26_6) float32 { return (fromFixed(v) + ox) * sx }
	py := func(v fixed.Int26_6) float32 { return fromFixed(v) + oy }

	for i, seg := range segments {
		a := seg.Args
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if i > 0 {
				r.ClosePath()
			}
			r.MoveTo(px(a[0].X), py(a[0].Y))
		case sfnt.SegmentOpLineTo:
			r.LineTo(px(a[0].X), py(a[0].Y))
		case sfnt.SegmentOpQuadTo:
			r.QuadTo(px(a[0].X), py(a[0].Y), px(a[1].X), py(a[1].Y))
		case sfnt.SegmentOpCubeTo:
			r.CubeTo(px(a[0].X), py(a[0].Y), px(a[1].X), py(a[1].Y), px(a[2].X), py(a[2].Y))
		}
	}
	r.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, w, m.Height))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fromFixed(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

func floor(v float32) int {
	return int(math.Floor(float64(v)))
}

func ceil(v float32) int {
	return int(math.Ceil(float64(v)))
}
