package atlas

import "unicode"

// SubpixelSteps is the number of quantized fractional positions per pixel
// stored in GlyphKey.SubX and GlyphKey.SubY.
const SubpixelSteps = 4

// GlyphKey identifies one rasterization of a glyph. Two equal keys must
// rasterize to identical bitmaps, which is what makes caching correct.
//
// GlyphKey is comparable and is used directly as a map key.
type GlyphKey struct {
	// Font is the index of the font in the provider's font list.
	Font int

	// GlyphID is the glyph index within the font.
	GlyphID uint16

	// Rune is the character the glyph was shaped from. It only feeds the
	// blank check; 0 means unknown.
	Rune rune

	// Size is the font size in pixels per em.
	Size float32

	// SubX and SubY are the quantized fractional offsets in
	// [0, SubpixelSteps).
	SubX, SubY uint8
}

// Blank reports whether the glyph is whitespace. Blank glyphs draw
// nothing and are never stored in an atlas.
func (k GlyphKey) Blank() bool {
	return k.Rune != 0 && unicode.IsSpace(k.Rune)
}

// Offset returns the fractional pixel offset encoded by SubX and SubY.
func (k GlyphKey) Offset() (dx, dy float32) {
	return float32(k.SubX) / SubpixelSteps, float32(k.SubY) / SubpixelSteps
}

// Request asks the cache to hold one glyph. Requests are produced by a
// layout engine; X and Y are the on-screen position of the glyph's
// top-left corner and are carried for the renderer, the cache ignores them.
type Request struct {
	Key           GlyphKey
	Width, Height int
	X, Y          float32
}

// Metrics describes a rasterized glyph bitmap.
type Metrics struct {
	// Width and Height of the bitmap in pixels.
	Width, Height int

	// XMin and YMin place the bitmap's top-left corner relative to the
	// pen position on the baseline (y grows downward).
	XMin, YMin int

	// Advance is the horizontal pen advance in pixels.
	Advance float32
}

// Provider rasterizes glyphs. It must support every Format for the same
// key and return a tightly packed bitmap of Width*Height*BytesPerPixel
// bytes, rows top to bottom.
type Provider interface {
	Rasterize(key GlyphKey, format Format) (Metrics, []byte, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(key GlyphKey, format Format) (Metrics, []byte, error)

// Rasterize calls f(key, format).
func (f ProviderFunc) Rasterize(key GlyphKey, format Format) (Metrics, []byte, error) {
	return f(key, format)
}
