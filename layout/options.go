package layout

// Options controls how Layout places glyphs.
type Options struct {
	// Font is the font index, shared by the Shaper and the Measurer.
	Font int

	// Size is the font size in pixels per em.
	// Default: 16
	Size float32

	// X is the left edge of every line.
	X float32

	// Y is the baseline of the first line.
	Y float32

	// LineHeight is the distance between baselines.
	// Default: 1.25 * Size
	LineHeight float32

	// Subpixel keeps the fractional pen position in the glyph key, in
	// quarter pixels, instead of snapping each glyph to a whole pixel.
	Subpixel bool

	// Language is the BCP 47 tag passed to the shaper.
	// Default: "en"
	Language string
}

// DefaultOptions returns 16px text at the origin with subpixel
// positioning enabled.
func DefaultOptions() Options {
	return Options{
		Size:     16,
		Y:        16,
		Subpixel: true,
		Language: "en",
	}
}

// withDefaults fills zero fields.
func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = 16
	}
	if o.LineHeight <= 0 {
		o.LineHeight = o.Size * 1.25
	}
	if o.Language == "" {
		o.Language = "en"
	}
	return o
}
