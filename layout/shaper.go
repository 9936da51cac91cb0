package layout

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/glyphatlas/atlas"
)

// ErrNoFonts is returned when NewShaper is called without font data.
var ErrNoFonts = errors.New("layout: no fonts")

// Measurer reports the pixel box of a glyph. raster.Fonts implements it.
type Measurer interface {
	Measure(key atlas.GlyphKey) (atlas.Metrics, error)
}

// Shaper lays out text with go-text/typesetting.
//
// Shaper is safe for concurrent use. Parsed fonts are shared read-only;
// each Layout call creates its own font.Face, and HarfbuzzShaper instances
// are pooled since they are not safe for concurrent use.
type Shaper struct {
	fonts      []*font.Font
	shaperPool sync.Pool
}

// NewShaper parses the given fonts. The i-th argument becomes font index
// i and must match the index used by the Measurer.
func NewShaper(data ...[]byte) (*Shaper, error) {
	if len(data) == 0 {
		return nil, ErrNoFonts
	}
	s := &Shaper{
		fonts: make([]*font.Font, 0, len(data)),
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
	for i, d := range data {
		face, err := font.ParseTTF(bytes.NewReader(d))
		if err != nil {
			return nil, fmt.Errorf("layout: failed to parse font %d: %w", i, err)
		}
		s.fonts = append(s.fonts, face.Font)
	}
	return s, nil
}

// Layout shapes text and returns one request per glyph.
//
// Text is NFC-normalized and split into lines at '\n'. Each request's X
// and Y give the top-left corner of the glyph bitmap on screen; Width and
// Height come from m.
func (s *Shaper) Layout(text string, opts Options, m Measurer) ([]atlas.Request, error) {
	if opts.Font < 0 || opts.Font >= len(s.fonts) {
		return nil, fmt.Errorf("layout: font index %d out of range [0, %d)", opts.Font, len(s.fonts))
	}
	opts = opts.withDefaults()

	face := font.NewFace(s.fonts[opts.Font])
	lang := language.NewLanguage(opts.Language)

	var reqs []atlas.Request
	baseline := opts.Y
	for line := range strings.SplitSeq(norm.NFC.String(text), "\n") {
		runes := []rune(line)
		if len(runes) > 0 {
			input := shaping.Input{
				Text:      runes,
				RunStart:  0,
				RunEnd:    len(runes),
				Direction: di.DirectionLTR,
				Face:      face,
				Size:      floatToFixed(opts.Size),
				Script:    detectScript(runes),
				Language:  lang,
			}

			hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
			out := hb.Shape(input)
			s.shaperPool.Put(hb)

			var err error
			reqs, err = placeLine(reqs, out.Glyphs, runes, opts, baseline, m)
			if err != nil {
				return nil, err
			}
		}
		baseline += opts.LineHeight
	}
	return reqs, nil
}

// placeLine converts the shaped glyphs of one line into requests.
func placeLine(reqs []atlas.Request, glyphs []shaping.Glyph, runes []rune, opts Options, baseline float32, m Measurer) ([]atlas.Request, error) {
	pen := opts.X
	y := int(math.Round(float64(baseline)))

	for _, g := range glyphs {
		key := atlas.GlyphKey{
			Font:    opts.Font,
			GlyphID: uint16(g.GlyphID), //nolint:gosec // glyph ids of sfnt fonts fit in uint16
			Size:    opts.Size,
		}
		if i := g.TextIndex(); i >= 0 && i < len(runes) {
			key.Rune = runes[i]
		}

		gx := pen + fixedToFloat(g.XOffset)
		var x int
		if opts.Subpixel {
			x, key.SubX = Quantize(gx)
		} else {
			x = int(math.Round(float64(gx)))
		}

		metrics, err := m.Measure(key)
		if err != nil {
			return nil, fmt.Errorf("layout: measure glyph %d: %w", key.GlyphID, err)
		}

		reqs = append(reqs, atlas.Request{
			Key:    key,
			Width:  metrics.Width,
			Height: metrics.Height,
			X:      float32(x + metrics.XMin),
			Y:      float32(y+metrics.YMin) - fixedToFloat(g.YOffset),
		})

		pen += fixedToFloat(g.Advance)
	}
	return reqs, nil
}

// detectScript returns the script of the first non-space rune.
// Mixed-script lines are shaped with that single script.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a pixel size to fixed.Int26_6.
func floatToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to pixels.
func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
