package rpcclient

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kbaseapps/assembly-params/internal/estimate"
)

type countingSource struct {
	calls atomic.Int32
	seen  [][]string
	mu    sync.Mutex
	gate  chan struct{}
	err   error
}

func (s *countingSource) GetObjectInfo(_ context.Context, refs []string) ([]estimate.ObjectInfo, error) {
	s.calls.Add(1)
	s.mu.Lock()
	s.seen = append(s.seen, append([]string(nil), refs...))
	s.mu.Unlock()
	if s.gate != nil {
		<-s.gate
	}
	if s.err != nil {
		return nil, s.err
	}
	out := make([]estimate.ObjectInfo, len(refs))
	for i, ref := range refs {
		out[i] = estimate.ObjectInfo{Ref: ref, Metadata: map[string]string{"read_count": "1"}}
	}
	return out, nil
}

func TestObjectInfoCache_DisabledWhenTTLNonPositive(t *testing.T) {
	c := newObjectInfoCache(0)
	if c != nil {
		t.Fatal("expected nil cache for zero ttl")
	}
	now := time.Now()
	c.put("ws/a", estimate.ObjectInfo{}, now)
	if _, ok := c.fresh("ws/a", now); ok {
		t.Fatal("nil cache should never report fresh")
	}
}

func TestObjectInfoCache_Expiry(t *testing.T) {
	c := newObjectInfoCache(time.Minute)
	now := time.Unix(1700000000, 0)
	c.put("ws/a", estimate.ObjectInfo{Ref: "ws/a"}, now)

	if info, ok := c.fresh("ws/a", now.Add(30*time.Second)); !ok || info.Ref != "ws/a" {
		t.Fatal("expected fresh entry before ttl")
	}
	if _, ok := c.fresh("ws/a", now.Add(2*time.Minute)); ok {
		t.Fatal("expected stale entry after ttl")
	}
	c.mu.RLock()
	_, exists := c.entries["ws/a"]
	c.mu.RUnlock()
	if exists {
		t.Fatal("expected stale entry to be evicted")
	}
}

func TestCachedSource_FetchesOnlyMissing(t *testing.T) {
	src := &countingSource{}
	cs := NewCachedSource(src, time.Hour)
	ctx := context.Background()

	if _, err := cs.GetObjectInfo(ctx, []string{"ws/a", "ws/b"}); err != nil {
		t.Fatal(err)
	}
	infos, err := cs.GetObjectInfo(ctx, []string{"ws/b", "ws/c", "ws/a"})
	if err != nil {
		t.Fatal(err)
	}
	if src.calls.Load() != 2 {
		t.Fatalf("calls = %d, want 2", src.calls.Load())
	}
	if got := src.seen[1]; len(got) != 1 || got[0] != "ws/c" {
		t.Errorf("second lookup = %v, want [ws/c]", got)
	}
	for i, want := range []string{"ws/b", "ws/c", "ws/a"} {
		if infos[i].Ref != want {
			t.Errorf("infos[%d] = %s, want %s", i, infos[i].Ref, want)
		}
	}
}

func TestCachedSource_ExpiredEntriesRefetch(t *testing.T) {
	src := &countingSource{}
	cs := NewCachedSource(src, time.Minute)
	now := time.Unix(1700000000, 0)
	cs.now = func() time.Time { return now }
	ctx := context.Background()

	if _, err := cs.GetObjectInfo(ctx, []string{"ws/a"}); err != nil {
		t.Fatal(err)
	}
	now = now.Add(5 * time.Minute)
	if _, err := cs.GetObjectInfo(ctx, []string{"ws/a"}); err != nil {
		t.Fatal(err)
	}
	if src.calls.Load() != 2 {
		t.Fatalf("calls = %d, want 2", src.calls.Load())
	}
}

func TestCachedSource_CollapsesConcurrentLookups(t *testing.T) {
	src := &countingSource{gate: make(chan struct{})}
	cs := NewCachedSource(src, 0)
	ctx := context.Background()

	const n = 8
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cs.GetObjectInfo(ctx, []string{"ws/a", "ws/b"})
			errs <- err
		}()
	}
	// Let the first caller enter the source before releasing it.
	for src.calls.Load() == 0 {
		time.Sleep(time.Millisecond)
	}
	time.Sleep(20 * time.Millisecond)
	close(src.gate)
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatal(err)
		}
	}
	if c := src.calls.Load(); c >= n {
		t.Fatalf("calls = %d, expected concurrent lookups to collapse", c)
	}
}

func TestCachedSource_ErrorsAreNotCached(t *testing.T) {
	src := &countingSource{err: errors.New("workspace down")}
	cs := NewCachedSource(src, time.Hour)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := cs.GetObjectInfo(ctx, []string{"ws/a"}); err == nil {
			t.Fatal("expected error")
		}
	}
	if src.calls.Load() != 2 {
		t.Fatalf("calls = %d, want 2", src.calls.Load())
	}
}
