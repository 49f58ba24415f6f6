package cache

import (
	"context"
	"sync"
	"time"

	"checklist_export/internal/ports"
)

// TicketSnapshot memoizes one full-collection fetch for a bounded TTL. It
// is owned by the handler layer; the checklist core only ever sees the
// returned slice. A zero TTL disables caching.
type TicketSnapshot struct {
	source ports.TicketSource
	ttl    time.Duration

	mu        sync.Mutex
	data      []map[string]any
	fetchedAt time.Time

	now func() time.Time
}

func NewTicketSnapshot(source ports.TicketSource, ttl time.Duration) *TicketSnapshot {
	return &TicketSnapshot{
		source: source,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (c *TicketSnapshot) Get(ctx context.Context) ([]map[string]any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.data != nil && c.ttl > 0 && c.now().Sub(c.fetchedAt) < c.ttl {
		return c.data, nil
	}

	docs, err := c.source.FetchAll(ctx)
	if err != nil {
		// keep serving nothing rather than stale data after the TTL
		return nil, err
	}

	c.data = docs
	c.fetchedAt = c.now()
	return docs, nil
}

// Invalidate drops the cached snapshot so the next Get refetches.
func (c *TicketSnapshot) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = nil
	c.fetchedAt = time.Time{}
}
