// Package raster rasterizes glyphs for the atlas cache using
// golang.org/x/image: sfnt for outlines and metrics, vector for coverage.
//
// Fonts implements atlas.Provider for both atlas formats. Grayscale glyphs
// are plain coverage masks. Subpixel glyphs are rendered at three times the
// horizontal resolution and run through a five-tap LCD filter, giving one
// coverage value per color channel.
package raster
