package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	RDB *redis.Client
}

func NewRedis(addr, pass string, db int) *RedisStore {
	return &RedisStore{
		RDB: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.RDB.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.RDB.Set(ctx, key, value, ttl).Err()
}

// DeletePrefix SCAN 渐进遍历，避免 KEYS 阻塞
func (s *RedisStore) DeletePrefix(ctx context.Context, prefix string) error {
	iter := s.RDB.Scan(ctx, 0, prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) >= 100 {
			if err := s.RDB.Del(ctx, keys...).Err(); err != nil {
				return err
			}
			keys = keys[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) > 0 {
		return s.RDB.Del(ctx, keys...).Err()
	}
	return nil
}

func (s *RedisStore) Close() error { return s.RDB.Close() }
