package wordpress

import (
	"context"
	"encoding/json"
	"time"
)

// Cache is the short-TTL response cache consulted before each GET. It is
// advisory: a miss or a storage failure just means the request goes
// upstream again.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

// cachedResponse preserves the pagination headers alongside the body so a
// cache hit yields the same ListMeta as the original response.
type cachedResponse struct {
	Body       json.RawMessage `json:"body"`
	TotalItems int             `json:"totalItems"`
	TotalPages int             `json:"totalPages"`
}
