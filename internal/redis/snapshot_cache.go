package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/wamique00786/wesalvator/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

// SnapshotCache holds the last broadcast live-volunteer snapshot for clients
// that poll over HTTP instead of holding a socket.
type SnapshotCache struct {
	client *goredis.Client
	key    string
	ttl    time.Duration
}

func NewSnapshotCache(r *Redis, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{
		client: r.Client,
		key:    "volunteers:live",
		ttl:    ttl,
	}
}

// Get returns nil, nil when nothing is cached.
func (c *SnapshotCache) Get(ctx context.Context) (*domain.Snapshot, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (c *SnapshotCache) Set(ctx context.Context, snap domain.Snapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, c.ttl).Err()
}
