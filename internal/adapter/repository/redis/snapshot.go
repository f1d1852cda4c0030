package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iho/fintrack/internal/domain"
)

// DefaultSnapshotKey is used when no key is configured.
const DefaultSnapshotKey = "fintrack:snapshot"

// SnapshotStore implements usecase.SnapshotStore on Redis: the whole
// queryable state lives as one JSON value under a fixed key. Saves retry
// with exponential backoff since they run after the command already
// succeeded and a transient hiccup should not lose the state.
type SnapshotStore struct {
	client *redis.Client
	key    string

	initialInterval time.Duration
	maxInterval     time.Duration
	maxElapsedTime  time.Duration
}

// NewSnapshotStore creates a new SnapshotStore.
func NewSnapshotStore(client *redis.Client, key string) *SnapshotStore {
	if key == "" {
		key = DefaultSnapshotKey
	}
	return &SnapshotStore{
		client:          client,
		key:             key,
		initialInterval: 50 * time.Millisecond,
		maxInterval:     1 * time.Second,
		maxElapsedTime:  5 * time.Second,
	}
}

// Save stores the snapshot, replacing any previous one.
func (s *SnapshotStore) Save(ctx context.Context, snap *domain.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.initialInterval
	b.MaxInterval = s.maxInterval
	b.MaxElapsedTime = s.maxElapsedTime

	return backoff.Retry(func() error {
		return s.client.Set(ctx, s.key, payload, 0).Err()
	}, backoff.WithContext(b, ctx))
}

// Load retrieves the stored snapshot, or (nil, nil) when none exists.
func (s *SnapshotStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	payload, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &snap, nil
}
