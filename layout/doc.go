// Package layout turns text into glyph requests for the atlas cache.
//
// Shaper uses go-text/typesetting's HarfBuzz port for shaping, so kerning,
// ligatures and complex scripts come out right, and a Measurer (usually
// raster.Fonts) for each glyph's pixel box. The result is one
// atlas.Request per shaped glyph, in visual order, positioned on screen.
//
// Whitespace glyphs are emitted like any other; the cache recognizes them
// as blank and skips them.
package layout
