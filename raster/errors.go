package raster

import (
	"errors"
	"fmt"
)

// Sentinel errors for raster package.
var (
	// ErrNoFonts is returned when NewFonts is called without font data.
	ErrNoFonts = errors.New("raster: no fonts")

	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("raster: empty font data")

	// ErrUnsupportedFormat is returned for an atlas format with no
	// rasterization path.
	ErrUnsupportedFormat = errors.New("raster: unsupported atlas format")
)

// FontError reports a request for a font or glyph the provider does not have.
type FontError struct {
	Font    int
	GlyphID uint16
	Reason  string
}

func (e *FontError) Error() string {
	return fmt.Sprintf("raster: font %d glyph %d: %s", e.Font, e.GlyphID, e.Reason)
}
