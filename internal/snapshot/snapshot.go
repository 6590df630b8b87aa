// Package snapshot persists the current session's account snapshot under a
// single durable key. Every write replaces the whole value; logout removes
// it wholesale. There is no schema versioning.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ai-buddy/student-support-service/internal/models"
)

var (
	// ErrNotFound means no snapshot is stored (fresh start or after logout).
	ErrNotFound = errors.New("snapshot: not found")
	// ErrCorrupt means the stored value did not decode as an account.
	ErrCorrupt = errors.New("snapshot: corrupt")
	// ErrNotAvailable means no backing store is configured.
	ErrNotAvailable = errors.New("snapshot: store not available")
)

// Store holds the persisted account snapshot.
type Store interface {
	Load(ctx context.Context) (*models.Account, error)
	Save(ctx context.Context, account *models.Account) error
	Clear(ctx context.Context) error
}

// RedisStore keeps the snapshot in a single redis key. A nil client degrades
// gracefully: loads miss, writes are dropped, nothing fails.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(client *redis.Client, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) Load(ctx context.Context) (*models.Account, error) {
	if s.client == nil {
		return nil, ErrNotAvailable
	}

	data, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("snapshot load: %w", err)
	}

	var account models.Account
	if err := json.Unmarshal([]byte(data), &account); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if err := account.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	return &account, nil
}

func (s *RedisStore) Save(ctx context.Context, account *models.Account) error {
	if s.client == nil {
		return nil
	}

	data, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("snapshot marshal: %w", err)
	}

	// Single SET, no TTL: the snapshot lives until logout replaces or
	// removes it.
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("snapshot save: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if s.client == nil {
		return nil
	}

	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("snapshot clear: %w", err)
	}
	return nil
}
