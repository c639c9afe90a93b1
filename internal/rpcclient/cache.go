package rpcclient

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/kbaseapps/assembly-params/internal/estimate"
)

type infoEntry struct {
	info      estimate.ObjectInfo
	expiresAt time.Time
}

type objectInfoCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]infoEntry
}

func newObjectInfoCache(ttl time.Duration) *objectInfoCache {
	if ttl <= 0 {
		return nil
	}
	return &objectInfoCache{
		ttl:     ttl,
		entries: make(map[string]infoEntry),
	}
}

func (c *objectInfoCache) fresh(ref string, now time.Time) (estimate.ObjectInfo, bool) {
	if c == nil {
		return estimate.ObjectInfo{}, false
	}
	c.mu.RLock()
	e, ok := c.entries[ref]
	c.mu.RUnlock()
	if !ok {
		return estimate.ObjectInfo{}, false
	}
	if e.expiresAt.After(now) {
		return e.info, true
	}
	c.mu.Lock()
	delete(c.entries, ref)
	c.mu.Unlock()
	return estimate.ObjectInfo{}, false
}

func (c *objectInfoCache) put(ref string, info estimate.ObjectInfo, now time.Time) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.entries[ref] = infoEntry{info: info, expiresAt: now.Add(c.ttl)}
	c.mu.Unlock()
}

// CachedSource remembers object info per reference for a fixed time and
// collapses concurrent lookups of the same references into one call.
type CachedSource struct {
	src   estimate.ObjectInfoSource
	cache *objectInfoCache
	group singleflight.Group
	now   func() time.Time
}

// NewCachedSource wraps src. A non-positive ttl disables caching but keeps
// the call collapsing.
func NewCachedSource(src estimate.ObjectInfoSource, ttl time.Duration) *CachedSource {
	return &CachedSource{src: src, cache: newObjectInfoCache(ttl), now: time.Now}
}

func (s *CachedSource) GetObjectInfo(ctx context.Context, refs []string) ([]estimate.ObjectInfo, error) {
	now := s.now()
	out := make([]estimate.ObjectInfo, len(refs))
	var missing []string
	var slots []int
	for i, ref := range refs {
		if info, ok := s.cache.fresh(ref, now); ok {
			out[i] = info
			continue
		}
		missing = append(missing, ref)
		slots = append(slots, i)
	}
	if len(missing) == 0 {
		return out, nil
	}

	v, err, _ := s.group.Do(strings.Join(missing, "\n"), func() (any, error) {
		return s.src.GetObjectInfo(ctx, missing)
	})
	if err != nil {
		return nil, err
	}
	infos := v.([]estimate.ObjectInfo)
	if len(infos) != len(missing) {
		return nil, fmt.Errorf("object info: got %d results for %d refs", len(infos), len(missing))
	}
	for i, info := range infos {
		s.cache.put(missing[i], info, now)
		out[slots[i]] = info
	}
	return out, nil
}
