package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestCache_ReadThrough(t *testing.T) {
	c := New(0)
	ctx := context.Background()
	fetches := 0

	fetch := func(ctx context.Context) (any, error) {
		fetches++
		return "value", nil
	}

	for i := 0; i < 3; i++ {
		v, err := c.Get(ctx, "key", fetch)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if v != "value" {
			t.Fatalf("Get = %v", v)
		}
	}
	if fetches != 1 {
		t.Errorf("fetches = %d, want 1 (cached reads must not refetch)", fetches)
	}
}

func TestCache_InvalidateForcesRefetch(t *testing.T) {
	c := New(0)
	ctx := context.Background()
	fetches := 0
	fetch := func(ctx context.Context) (any, error) {
		fetches++
		return fetches, nil
	}

	c.Get(ctx, "videos", fetch)
	c.Invalidate("videos")
	v, _ := c.Get(ctx, "videos", fetch)
	if v != 2 {
		t.Errorf("after invalidation got %v, want fresh value 2", v)
	}
}

func TestCache_InvalidatePrefix(t *testing.T) {
	c := New(0)
	ctx := context.Background()
	count := func(ctx context.Context) (any, error) { return 1, nil }

	c.Get(ctx, "categories", count)
	c.Get(ctx, "categories/c1", count)
	c.Get(ctx, "videos", count)

	c.InvalidatePrefix("categories")

	fetched := false
	c.Get(ctx, "categories/c1", func(ctx context.Context) (any, error) {
		fetched = true
		return 1, nil
	})
	if !fetched {
		t.Error("prefixed key not invalidated")
	}

	fetched = false
	c.Get(ctx, "videos", func(ctx context.Context) (any, error) {
		fetched = true
		return 1, nil
	})
	if fetched {
		t.Error("unrelated key was invalidated")
	}
}

func TestCache_ErrorsNotCached(t *testing.T) {
	c := New(0)
	ctx := context.Background()
	calls := 0
	boom := errors.New("boom")

	fetch := func(ctx context.Context) (any, error) {
		calls++
		if calls == 1 {
			return nil, boom
		}
		return "ok", nil
	}

	if _, err := c.Get(ctx, "k", fetch); !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
	v, err := c.Get(ctx, "k", fetch)
	if err != nil || v != "ok" {
		t.Fatalf("error was cached: v=%v err=%v", v, err)
	}
}

func TestCache_CoalescesConcurrentReads(t *testing.T) {
	c := New(0)
	ctx := context.Background()

	started := make(chan struct{})
	gate := make(chan struct{})
	fetches := 0

	fetch := func(ctx context.Context) (any, error) {
		fetches++
		close(started)
		<-gate
		return "shared", nil
	}

	var wg sync.WaitGroup
	results := make([]any, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = c.Get(ctx, "k", fetch)
	}()

	<-started // first reader is inside the fetch

	wg.Add(1)
	go func() {
		defer wg.Done()
		// Must attach to the in-flight fetch, not start a second one.
		results[1], _ = c.Get(ctx, "k", func(ctx context.Context) (any, error) {
			t.Error("second fetch ran")
			return nil, nil
		})
	}()

	// Give the second reader time to register as a waiter, then release.
	time.Sleep(20 * time.Millisecond)
	close(gate)
	wg.Wait()

	if fetches != 1 {
		t.Errorf("fetches = %d, want 1", fetches)
	}
	if results[0] != "shared" || results[1] != "shared" {
		t.Errorf("results = %v", results)
	}
}

func TestCache_TTLExpiry(t *testing.T) {
	c := New(10 * time.Second)
	ctx := context.Background()

	current := time.Unix(1000, 0)
	c.now = func() time.Time { return current }

	fetches := 0
	fetch := func(ctx context.Context) (any, error) {
		fetches++
		return fetches, nil
	}

	c.Get(ctx, "k", fetch)
	current = current.Add(5 * time.Second)
	c.Get(ctx, "k", fetch)
	if fetches != 1 {
		t.Fatalf("entry expired early: fetches = %d", fetches)
	}

	current = current.Add(6 * time.Second)
	c.Get(ctx, "k", fetch)
	if fetches != 2 {
		t.Errorf("stale entry served: fetches = %d", fetches)
	}
}
