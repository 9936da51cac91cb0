package atlas

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/glyphatlas"
)

// Cache packs glyph bitmaps into a single fixed-size pixel buffer and
// remembers where each glyph went.
//
// Cache is not safe for concurrent use. Use SyncCache, or guard Ingest with
// an exclusive lock and Lookup/Snapshot with a shared one.
type Cache struct {
	width  int
	height int
	format Format

	// pix is the row-major atlas buffer, width*height*bpp bytes.
	pix []byte

	alloc   Allocator
	entries map[GlyphKey]Rect

	// failed remembers glyphs the provider rejected so they are not
	// allocated again.
	failed map[GlyphKey]*RasterizeError

	// dirty marks if the buffer changed since the last MarkClean.
	dirty bool

	stats  Stats
	logger *slog.Logger
}

// Stats holds cache statistics.
type Stats struct {
	// Hits counts requests whose glyph was already cached.
	Hits uint64

	// Misses counts requests that had to be allocated and rasterized.
	Misses uint64

	// Blanks counts whitespace and zero-area requests skipped.
	Blanks uint64

	// Dropped counts requests that did not fit in the atlas.
	Dropped uint64

	// Failed counts requests the provider could not rasterize.
	Failed uint64
}

// IngestResult reports what one Ingest call did.
type IngestResult struct {
	// Added lists the keys newly placed in the atlas, in request order.
	Added []GlyphKey

	// Dropped lists the keys that did not fit. They stay absent and are
	// tried again on the next Ingest that requests them.
	Dropped []GlyphKey
}

// New creates an atlas of width×height pixels in the given format.
//
// The buffer is zeroed and the default allocator is a ShelfAllocator with
// one pixel of border and inter-glyph padding.
func New(width, height int, format Format, opts ...Option) (*Cache, error) {
	if width <= 0 {
		return nil, &ConfigError{Field: "Width", Reason: "must be positive"}
	}
	if height <= 0 {
		return nil, &ConfigError{Field: "Height", Reason: "must be positive"}
	}
	bpp := format.BytesPerPixel()
	if bpp <= 0 {
		return nil, &ConfigError{Field: "Format", Reason: "unknown format " + format.String()}
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.allocator == nil {
		o.allocator = NewShelfAllocator(width, height, Padding, Padding)
	}
	if o.logger == nil {
		o.logger = glyphatlas.Logger()
	}

	c := &Cache{
		width:   width,
		height:  height,
		format:  format,
		pix:     make([]byte, width*height*bpp),
		alloc:   o.allocator,
		entries: make(map[GlyphKey]Rect),
		failed:  make(map[GlyphKey]*RasterizeError),
		logger:  o.logger,
	}

	c.logger.Debug("atlas: created",
		"width", width, "height", height, "format", format, "bytes", len(c.pix))

	return c, nil
}

// Ingest makes sure every request in reqs is cached, in order.
//
// For each request: cached keys are skipped; blank keys and requests with
// no pixels are skipped for good; the rest get a region from the
// allocator, are rasterized by p in the cache's format and copied into the
// buffer. Requests that do not fit are listed in IngestResult.Dropped.
// Requests the provider fails on are skipped and returned as joined
// *RasterizeError values; they never disturb glyphs already cached. A
// failed key is remembered: later batches report the same error without
// calling the provider or allocating space for it again.
func (c *Cache) Ingest(p Provider, reqs []Request) (IngestResult, error) {
	var res IngestResult
	if p == nil {
		return res, ErrNilProvider
	}

	var errs []error
	for _, req := range reqs {
		if _, ok := c.entries[req.Key]; ok {
			c.stats.Hits++
			continue
		}
		if req.Key.Blank() || req.Width <= 0 || req.Height <= 0 {
			c.stats.Blanks++
			continue
		}
		if rErr, ok := c.failed[req.Key]; ok {
			c.stats.Failed++
			errs = append(errs, rErr)
			continue
		}
		c.stats.Misses++

		rect, ok := c.alloc.Allocate(req.Width, req.Height)
		if !ok {
			c.stats.Dropped++
			res.Dropped = append(res.Dropped, req.Key)
			continue
		}
		if !c.fits(rect, req.Width, req.Height) {
			c.stats.Failed++
			errs = append(errs, &RasterizeError{
				Key: req.Key,
				Err: fmt.Errorf("%w: %+v for %dx%d glyph", ErrAllocatorBounds, rect, req.Width, req.Height),
			})
			continue
		}

		if err := c.copyGlyph(p, req.Key, rect); err != nil {
			c.stats.Failed++
			rErr := &RasterizeError{Key: req.Key, Err: err}
			c.failed[req.Key] = rErr
			errs = append(errs, rErr)
			continue
		}

		c.entries[req.Key] = rect
		res.Added = append(res.Added, req.Key)
	}

	if len(res.Added) > 0 {
		c.dirty = true
	}

	c.logger.Debug("atlas: ingest",
		"requests", len(reqs), "added", len(res.Added), "glyphs", len(c.entries))
	if len(res.Dropped) > 0 {
		c.logger.Warn("atlas: full, glyphs dropped",
			"dropped", len(res.Dropped), "width", c.width, "height", c.height)
	}
	if len(errs) > 0 {
		c.logger.Warn("atlas: rasterization failed", "failed", len(errs))
	}

	return res, errors.Join(errs...)
}

// fits reports whether rect lies inside the atlas and has the requested size.
func (c *Cache) fits(rect Rect, w, h int) bool {
	if rect.Width != w || rect.Height != h {
		return false
	}
	return rect.Bounds().In(image.Rect(0, 0, c.width, c.height))
}

// copyGlyph rasterizes key and copies the bitmap into rect.
// The bitmap is tightly packed, so the source stride is the glyph width
// while the destination stride is the atlas width.
func (c *Cache) copyGlyph(p Provider, key GlyphKey, rect Rect) error {
	m, bitmap, err := p.Rasterize(key, c.format)
	if err != nil {
		return err
	}
	if m.Width != rect.Width || m.Height != rect.Height {
		return fmt.Errorf("%w: provider reported %dx%d, want %dx%d",
			ErrBitmapSize, m.Width, m.Height, rect.Width, rect.Height)
	}

	bpp := c.format.BytesPerPixel()
	rowLen := rect.Width * bpp
	if len(bitmap) != rowLen*rect.Height {
		return fmt.Errorf("%w: got %d bytes, want %dx%dx%d",
			ErrBitmapSize, len(bitmap), rect.Width, rect.Height, bpp)
	}

	for y := 0; y < rect.Height; y++ {
		dst := ((rect.Y+y)*c.width + rect.X) * bpp
		src := y * rowLen
		copy(c.pix[dst:dst+rowLen], bitmap[src:src+rowLen])
	}
	return nil
}

// Lookup returns the texture coordinates of a cached glyph.
// It reports false for glyphs never ingested, glyphs that did not fit and
// blank glyphs; a renderer draws nothing for them.
func (c *Cache) Lookup(key GlyphKey) (UVRect, bool) {
	r, ok := c.entries[key]
	if !ok {
		return UVRect{}, false
	}
	return Project(r, c.width, c.height), true
}

// Rect returns the pixel rectangle of a cached glyph.
func (c *Cache) Rect(key GlyphKey) (Rect, bool) {
	r, ok := c.entries[key]
	return r, ok
}

// Has reports whether the glyph is cached.
func (c *Cache) Has(key GlyphKey) bool {
	_, ok := c.entries[key]
	return ok
}

// Snapshot returns the atlas buffer. The slice aliases the cache's memory:
// callers must not modify it, and it reflects every Ingest completed so far.
func (c *Cache) Snapshot() []byte {
	return c.pix
}

// Image returns the atlas as an image for inspection or export.
// Grayscale atlases share memory with the cache; subpixel atlases are
// copied into an opaque RGBA image.
func (c *Cache) Image() image.Image {
	r := image.Rect(0, 0, c.width, c.height)
	if c.format == Grayscale {
		return &image.Gray{Pix: c.pix, Stride: c.width, Rect: r}
	}
	img := image.NewRGBA(r)
	for i, j := 0, 0; i < len(c.pix); i, j = i+3, j+4 {
		img.Pix[j] = c.pix[i]
		img.Pix[j+1] = c.pix[i+1]
		img.Pix[j+2] = c.pix[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}

// Len returns the number of cached glyphs.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Width returns the atlas width in pixels.
func (c *Cache) Width() int { return c.width }

// Height returns the atlas height in pixels.
func (c *Cache) Height() int { return c.height }

// Format returns the atlas pixel format.
func (c *Cache) Format() Format { return c.format }

// Stats returns cache statistics.
func (c *Cache) Stats() Stats {
	return c.stats
}

// Dirty reports whether glyphs were added since the last MarkClean.
func (c *Cache) Dirty() bool {
	return c.dirty
}

// MarkClean marks the atlas as uploaded.
func (c *Cache) MarkClean() {
	c.dirty = false
}
