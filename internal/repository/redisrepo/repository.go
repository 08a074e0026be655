package redisrepo

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type Default interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string) *redis.StringCmd
	MGet(ctx context.Context, keys ...string) *redis.SliceCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
	ScanKeys(ctx context.Context, pattern string, count int64) ([]string, error)
	DelByPatterns(ctx context.Context, count int64, patterns ...string) (int64, error)
}

type RedisRepository struct {
	Default
}

func New(rdb *redis.Client) *RedisRepository {
	return &RedisRepository{
		Default: newDefaultRepo(rdb),
	}
}

// NewClient builds a client with the metrics hook installed.
func NewClient(opts *redis.Options) *redis.Client {
	rdb := redis.NewClient(opts)
	rdb.AddHook(MetricsHook{})
	return rdb
}
