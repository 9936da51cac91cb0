package atlas

import "log/slog"

// Option configures a Cache during creation.
//
// Example:
//
//	c, err := atlas.New(1024, 1024, atlas.Subpixel,
//	    atlas.WithLogger(slog.Default()))
type Option func(*options)

// options holds optional configuration for Cache creation.
type options struct {
	allocator Allocator
	logger    *slog.Logger
}

// WithAllocator replaces the default ShelfAllocator. The allocator must
// cover exactly the atlas dimensions passed to New and keep its own
// padding; the cache trusts every rectangle it returns.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		o.allocator = a
	}
}

// WithLogger sets the logger used by this cache instead of the
// package-wide glyphatlas.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
