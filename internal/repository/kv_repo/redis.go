package kv_repo

import (
	"context"
	"errors"
	"fortune_wheel/internal/repository"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisKV struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

// NewRedisKeyValue - хранилище в Redis. ttl = 0 означает бессрочное хранение
func NewRedisKeyValue(rdb redis.UniversalClient, ttl time.Duration) repository.KeyValue {
	return &redisKV{
		rdb: rdb,
		ttl: ttl,
	}
}

func (r *redisKV) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return v, true, nil
}

func (r *redisKV) Set(ctx context.Context, key string, value string) error {
	return r.rdb.Set(ctx, key, value, r.ttl).Err()
}

func (r *redisKV) Delete(ctx context.Context, key string) error {
	return r.rdb.Del(ctx, key).Err()
}
