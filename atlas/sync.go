package atlas

import "sync"

// SyncCache wraps a Cache with a single-writer / many-reader lock.
//
// Ingest takes the write lock; Lookup, Snapshot and the accessors take the
// read lock. Atlas updates are rare compared to per-frame lookups, so one
// coarse lock is enough.
type SyncCache struct {
	mu sync.RWMutex
	c  *Cache
}

// NewSync creates a SyncCache around a new Cache.
func NewSync(width, height int, format Format, opts ...Option) (*SyncCache, error) {
	c, err := New(width, height, format, opts...)
	if err != nil {
		return nil, err
	}
	return &SyncCache{c: c}, nil
}

// Ingest calls Cache.Ingest under the write lock.
func (s *SyncCache) Ingest(p Provider, reqs []Request) (IngestResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Ingest(p, reqs)
}

// Lookup calls Cache.Lookup under the read lock.
func (s *SyncCache) Lookup(key GlyphKey) (UVRect, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.c.Lookup(key)
}

// Snapshot returns a copy of the atlas buffer taken under the read lock,
// so it stays consistent while later Ingest calls run.
func (s *SyncCache) Snapshot() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]byte, len(s.c.pix))
	copy(out, s.c.pix)
	return out
}

// Upload calls Cache.Upload under the write lock and marks the atlas clean.
// The returned data never aliases the cache buffer.
func (s *SyncCache) Upload() TextureUpload {
	s.mu.Lock()
	defer s.mu.Unlock()
	up := s.c.Upload()
	if s.c.format == Grayscale {
		up.Data = append([]byte(nil), up.Data...)
	}
	s.c.MarkClean()
	return up
}

// Len returns the number of cached glyphs.
func (s *SyncCache) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.c.Len()
}

// Stats returns cache statistics.
func (s *SyncCache) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.c.Stats()
}

// Dirty reports whether glyphs were added since the last Upload.
func (s *SyncCache) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.c.Dirty()
}
