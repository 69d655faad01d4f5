package geopage

import (
	"context"
	"sync"
	"time"

	"github.com/eringen/geopage/sitecfg"
)

// GalleryEntry is a listed site with its guestbook size.
type GalleryEntry struct {
	Site           sitecfg.Site
	GuestbookCount int
}

// GalleryCache is an in-memory cache of the newest sites and their guestbook
// counts, refreshed after ttl or on Invalidate.
type GalleryCache struct {
	mu      sync.RWMutex
	entries []GalleryEntry
	fetched time.Time
	ttl     time.Duration
	limit   int
	store   SiteStore
}

// NewGalleryCache creates a GalleryCache listing up to limit sites from s.
func NewGalleryCache(s SiteStore, limit int, ttl time.Duration) *GalleryCache {
	return &GalleryCache{store: s, limit: limit, ttl: ttl}
}

func (c *GalleryCache) valid() bool {
	return c.entries != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *GalleryCache) Invalidate() {
	c.mu.Lock()
	c.entries = nil
	c.mu.Unlock()
}

func (c *GalleryCache) load(ctx context.Context) error {
	if c.valid() {
		return nil
	}
	sites, err := c.store.ListSites(ctx, c.limit)
	if err != nil {
		return err
	}
	entries, err := withGuestbookCounts(ctx, c.store, sites)
	if err != nil {
		return err
	}
	c.entries = entries
	c.fetched = time.Now()
	return nil
}

// List returns the cached gallery after ensuring the cache is fresh.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *GalleryCache) List(ctx context.Context) ([]GalleryEntry, error) {
	c.mu.RLock()
	if c.valid() {
		entries := c.entries
		c.mu.RUnlock()
		return entries, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(ctx); err != nil {
		return nil, err
	}
	return c.entries, nil
}

// withGuestbookCounts pairs sites with their guestbook counts using one batch lookup.
func withGuestbookCounts(ctx context.Context, s SiteStore, sites []sitecfg.Site) ([]GalleryEntry, error) {
	ids := make([]string, len(sites))
	for i, st := range sites {
		ids[i] = st.ID
	}
	counts, err := s.CountGuestbookEntriesBatch(ctx, ids)
	if err != nil {
		return nil, err
	}
	entries := make([]GalleryEntry, len(sites))
	for i, st := range sites {
		entries[i] = GalleryEntry{Site: st, GuestbookCount: counts[st.ID]}
	}
	return entries, nil
}
