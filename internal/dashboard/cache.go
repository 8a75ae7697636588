// Package dashboard implements the dashboard's client-side core: a cached
// message collection with deterministic filter, pagination, and facet
// semantics, plus the aggregated statistics bundle.
package dashboard

import (
	"context"
	"log/slog"
	"sync"

	"telestat/internal/api"
	"telestat/internal/model"
)

// MessageFetcher is the slice of the backend client the cache depends on.
type MessageFetcher interface {
	Messages(ctx context.Context, q api.MessageQuery) ([]model.Message, error)
}

// MessageCache holds the in-memory message collection. It is populated by a
// single bulk fetch and replaced wholesale on each reload; there is no
// per-message mutation.
//
// Concurrent loads follow an ignore-stale-response discipline: every load is
// tagged with a monotonically increasing sequence number and a response that
// is no longer the latest issued request is discarded.
type MessageCache struct {
	fetcher  MessageFetcher
	pageSize int
	log      *slog.Logger

	mu       sync.Mutex
	messages []model.Message
	seq      uint64
}

// NewMessageCache creates an empty cache. pageSize caps the bulk fetch;
// messages beyond the cap are absent, not an error.
func NewMessageCache(fetcher MessageFetcher, pageSize int, logger *slog.Logger) *MessageCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &MessageCache{
		fetcher:  fetcher,
		pageSize: pageSize,
		log:      logger.With("component", "message_cache"),
	}
}

// Load fetches the message collection and replaces the cache contents
// wholesale. On failure the previous contents are preserved and an empty
// result is returned alongside the error. A load superseded by a newer one
// while in flight is discarded and reports the current cache contents.
func (c *MessageCache) Load(ctx context.Context) ([]model.Message, error) {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	messages, err := c.fetcher.Messages(ctx, api.MessageQuery{PageSize: c.pageSize})

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		c.log.DebugContext(ctx, "Discarding stale load response", "seq", seq, "latest", c.seq)
		return c.copyLocked(), nil
	}

	if err != nil {
		c.log.ErrorContext(ctx, "Message load failed, keeping previous contents",
			"cached", len(c.messages), "error", err)
		return nil, err
	}

	c.messages = messages
	c.log.InfoContext(ctx, "Message cache reloaded", "count", len(messages))
	return c.copyLocked(), nil
}

// Messages returns a snapshot of the current cache contents.
func (c *MessageCache) Messages() []model.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copyLocked()
}

// Len returns the number of cached messages.
func (c *MessageCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}

// Restore replaces the cache contents from a snapshot, bypassing the
// backend. Used to warm the cache from the local store at startup.
func (c *MessageCache) Restore(messages []model.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append([]model.Message(nil), messages...)
}

func (c *MessageCache) copyLocked() []model.Message {
	out := make([]model.Message, len(c.messages))
	copy(out, c.messages)
	return out
}
