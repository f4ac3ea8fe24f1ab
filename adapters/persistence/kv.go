package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Store is the single persistence primitive of the system: a flat
// namespace of string keys holding JSON values, plus list keys for
// append-only indexes. There are no multi-key transactions.
type Store interface {
	// Set stores value under key, replacing any prior value.
	Set(ctx context.Context, key string, value any) error
	// Get unmarshals the value at key into dest. A missing key returns
	// (false, nil), never an error.
	Get(ctx context.Context, key string, dest any) (bool, error)
	// GetByPrefix returns the raw values of all plain keys starting with
	// prefix, in unspecified order.
	GetByPrefix(ctx context.Context, prefix string) ([][]byte, error)
	// Delete removes key if present; no-op otherwise.
	Delete(ctx context.Context, key string) error
	// Append atomically appends members to the list at key, creating it
	// on first use. Concurrent appends both survive.
	Append(ctx context.Context, key string, members ...string) error
	// ListRange returns list members in [start, stop], inclusive, with
	// negative offsets counted from the tail (-1 is the last member).
	ListRange(ctx context.Context, key string, start, stop int64) ([]string, error)
}

type redisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) Store {
	return &redisStore{rdb: rdb}
}

func (s *redisStore) Set(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value for key %q: %w", key, err)
	}
	if err := s.rdb.Set(ctx, key, b, 0).Err(); err != nil {
		return fmt.Errorf("set key %q: %w", key, err)
	}
	return nil
}

func (s *redisStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get key %q: %w", key, err)
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return false, fmt.Errorf("unmarshal value at key %q: %w", key, err)
	}
	return true, nil
}

func (s *redisStore) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	var keys []string
	iter := s.rdb.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan prefix %q: %w", prefix, err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	raw, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("mget %d keys for prefix %q: %w", len(keys), prefix, err)
	}

	values := make([][]byte, 0, len(raw))
	for _, v := range raw {
		str, ok := v.(string)
		if !ok {
			// key expired or is not a plain value
			continue
		}
		values = append(values, []byte(str))
	}
	return values, nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("delete key %q: %w", key, err)
	}
	return nil
}

func (s *redisStore) Append(ctx context.Context, key string, members ...string) error {
	if len(members) == 0 {
		return nil
	}
	vals := make([]any, len(members))
	for i, m := range members {
		vals[i] = m
	}
	if err := s.rdb.RPush(ctx, key, vals...).Err(); err != nil {
		return fmt.Errorf("append to list %q: %w", key, err)
	}
	return nil
}

func (s *redisStore) ListRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	members, err := s.rdb.LRange(ctx, key, start, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("range list %q: %w", key, err)
	}
	return members, nil
}
