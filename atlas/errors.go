package atlas

import (
	"errors"
	"fmt"
)

// Sentinel errors for atlas package.
var (
	// ErrNilProvider is returned when Ingest is called without a font provider.
	ErrNilProvider = errors.New("atlas: nil provider")

	// ErrBitmapSize is returned when a provider hands back a bitmap whose
	// length does not match the requested width, height and format.
	ErrBitmapSize = errors.New("atlas: bitmap size mismatch")

	// ErrAllocatorBounds is returned when an allocator places a glyph
	// outside the atlas or with a size other than the one requested.
	ErrAllocatorBounds = errors.New("atlas: allocator rect out of bounds")
)

// ConfigError is returned by New when the atlas cannot be constructed.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "atlas: invalid config." + e.Field + ": " + e.Reason
}

// RasterizeError reports a glyph that could not be rasterized or placed.
// The glyph is skipped; the rest of the batch is still ingested.
type RasterizeError struct {
	Key GlyphKey
	Err error
}

func (e *RasterizeError) Error() string {
	return fmt.Sprintf("atlas: rasterize font %d glyph %d: %v", e.Key.Font, e.Key.GlyphID, e.Err)
}

func (e *RasterizeError) Unwrap() error {
	return e.Err
}
