// Package glyphatlas packs rasterized glyph bitmaps into a single texture
// atlas and hands out normalized UV rectangles for GPU text rendering.
//
// # Overview
//
// Text is rendered in three steps:
//
//  1. A layout engine turns a string into positioned glyph requests
//     (package layout, backed by go-text/typesetting).
//  2. The atlas cache allocates a region for every glyph it has not seen,
//     asks a font provider to rasterize it and copies the pixels in
//     (package atlas, with the golang.org/x/image provider in package raster).
//  3. A renderer uploads the atlas once per change and samples each glyph
//     by its UV rectangle.
//
// # Quick Start
//
//	fonts, _ := raster.NewFonts(goregular.TTF)
//	shaper, _ := layout.NewShaper(goregular.TTF)
//	reqs, _ := shaper.Layout("Hello, atlas", layout.DefaultOptions(), fonts)
//
//	cache, _ := atlas.New(512, 512, atlas.Grayscale)
//	res, err := cache.Ingest(fonts, reqs)
//
//	for _, r := range reqs {
//	    if uv, ok := cache.Lookup(r.Key); ok {
//	        // draw quad at r.X, r.Y sampling uv
//	    }
//	}
//
// # Logging
//
// Nothing is logged by default. Call [SetLogger] to route diagnostics
// to any [log/slog] handler.
package glyphatlas
