package backend

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

type handle struct {
	key int
}

func metricValue(m prometheus.Metric) float64 {
	var out dto.Metric
	_ = m.Write(&out)
	if out.Counter != nil {
		return *out.Counter.Value
	}
	return 0
}

func TestCacheCreatesOncePerKey(t *testing.T) {
	var created int
	c := NewCache(func(k int) (*handle, error) {
		created++
		return &handle{key: k}, nil
	})

	startHits := metricValue(cacheHits)
	startMisses := metricValue(cacheMisses)

	h1, err := c.Get(7)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	h2, err := c.Get(7)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if h1 != h2 {
		t.Errorf("expected the cached handle back, got %p and %p", h1, h2)
	}
	if created != 1 {
		t.Errorf("create ran %d times, want 1", created)
	}

	if _, err := c.Get(8); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if created != 2 {
		t.Errorf("create ran %d times for two keys, want 2", created)
	}
	if got := c.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}

	if d := metricValue(cacheHits) - startHits; d != 1 {
		t.Errorf("cache hits delta = %v, want 1", d)
	}
	if d := metricValue(cacheMisses) - startMisses; d != 2 {
		t.Errorf("cache misses delta = %v, want 2", d)
	}
}

func TestCacheConcurrentGet(t *testing.T) {
	var created atomic.Int32
	c := NewCache(func(k string) (*handle, error) {
		created.Add(1)
		return &handle{}, nil
	})

	const workers = 32
	results := make([]*handle, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			h, err := c.Get("ctx0")
			if err != nil {
				t.Errorf("Get: %v", err)
				return
			}
			results[i] = h
		}(i)
	}
	wg.Wait()

	if got := created.Load(); got != 1 {
		t.Fatalf("create ran %d times under contention, want 1", got)
	}
	for i, h := range results {
		if h != results[0] {
			t.Fatalf("worker %d got a different handle", i)
		}
	}
}

func TestCacheFailedCreateNotCached(t *testing.T) {
	boom := errors.New("no such context")
	fail := true
	c := NewCache(func(k int) (*handle, error) {
		if fail {
			return nil, boom
		}
		return &handle{key: k}, nil
	})

	if _, err := c.Get(1); !errors.Is(err, boom) {
		t.Fatalf("Get error = %v, want %v", err, boom)
	}
	if got := c.Len(); got != 0 {
		t.Fatalf("failed creation was cached, Len() = %d", got)
	}

	fail = false
	h, err := c.Get(1)
	if err != nil {
		t.Fatalf("Get after recovery: %v", err)
	}
	if h == nil || h.key != 1 {
		t.Fatalf("Get after recovery returned %+v", h)
	}
}

func TestCacheDrain(t *testing.T) {
	c := NewCache(func(k int) (*handle, error) {
		return &handle{key: k}, nil
	})
	for k := 0; k < 3; k++ {
		if _, err := c.Get(k); err != nil {
			t.Fatalf("Get(%d): %v", k, err)
		}
	}

	destroyed := make(map[int]bool)
	c.Drain(func(h *handle) { destroyed[h.key] = true })

	if got := c.Len(); got != 0 {
		t.Errorf("Len() after Drain = %d, want 0", got)
	}
	if len(destroyed) != 3 {
		t.Errorf("destroy ran for %d handles, want 3", len(destroyed))
	}

	// Drain with no destroy hook and an empty cache is fine.
	c.Drain(nil)
}
