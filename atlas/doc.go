// Package atlas implements a glyph atlas cache: a fixed-size pixel buffer
// into which rasterized glyph bitmaps are packed, plus the mapping from
// glyph identity to the packed region.
//
// # How it works
//
// [Cache.Ingest] walks a batch of glyph requests in order. Every glyph that
// is neither cached nor blank gets a region from an [Allocator], is
// rasterized by a [Provider] in the cache's [Format] and copied row by row
// into the buffer. [Cache.Lookup] then returns the region as a [UVRect]
// normalized to the atlas dimensions.
//
// The atlas never grows and never evicts. When it runs out of space the
// affected glyphs are reported in [IngestResult.Dropped] and simply stay
// absent; callers that need them can build a larger atlas and re-ingest.
//
// # Padding
//
// The default [ShelfAllocator] keeps one pixel of empty space around every
// glyph and along the atlas border. Without it, bilinear sampling at high
// magnification bleeds neighbouring glyphs into each other.
//
// # Concurrency
//
// [Cache] is not safe for concurrent use without external synchronization.
// [SyncCache] wraps it with a single-writer / many-reader lock.
package atlas
