package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeSource struct {
	calls int
	docs  []map[string]any
	err   error
}

func (f *fakeSource) FetchAll(ctx context.Context) ([]map[string]any, error) {
	f.calls++
	return f.docs, f.err
}

func TestTicketSnapshot_servesCachedWithinTTL(t *testing.T) {
	src := &fakeSource{docs: []map[string]any{{"empenho": "A"}}}
	c := NewTicketSnapshot(src, 5*time.Minute)

	if _, err := c.Get(context.Background()); err != nil {
		t.Fatalf("first get: %v", err)
	}
	if _, err := c.Get(context.Background()); err != nil {
		t.Fatalf("second get: %v", err)
	}
	if src.calls != 1 {
		t.Fatalf("expected a single fetch within TTL, got %d", src.calls)
	}
}

func TestTicketSnapshot_refetchesAfterTTL(t *testing.T) {
	src := &fakeSource{docs: []map[string]any{}}
	c := NewTicketSnapshot(src, time.Minute)

	now := time.Now()
	c.now = func() time.Time { return now }

	if _, err := c.Get(context.Background()); err != nil {
		t.Fatalf("first get: %v", err)
	}

	now = now.Add(2 * time.Minute)
	if _, err := c.Get(context.Background()); err != nil {
		t.Fatalf("second get: %v", err)
	}
	if src.calls != 2 {
		t.Fatalf("expected refetch after TTL, got %d calls", src.calls)
	}
}

func TestTicketSnapshot_invalidateForcesRefetch(t *testing.T) {
	src := &fakeSource{docs: []map[string]any{}}
	c := NewTicketSnapshot(src, time.Hour)

	_, _ = c.Get(context.Background())
	c.Invalidate()
	_, _ = c.Get(context.Background())

	if src.calls != 2 {
		t.Fatalf("expected refetch after Invalidate, got %d calls", src.calls)
	}
}

func TestTicketSnapshot_propagatesFetchError(t *testing.T) {
	wantErr := errors.New("mongo down")
	src := &fakeSource{err: wantErr}
	c := NewTicketSnapshot(src, time.Minute)

	if _, err := c.Get(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("expected fetch error, got %v", err)
	}
}
