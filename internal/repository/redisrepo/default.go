package redisrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMalformedValue is returned by the typed getters when a stored value does not decode.
var ErrMalformedValue = errors.New("malformed cached value")

// IsWrongType reports whether Redis refused a command because the key holds another type.
func IsWrongType(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "WRONGTYPE")
}

type defaultRepo struct {
	rdb *redis.Client
}

func newDefaultRepo(rdb *redis.Client) Default {
	return &defaultRepo{
		rdb: rdb,
	}
}

func (r *defaultRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return r.rdb.Set(ctx, key, value, ttl).Err()
}

func (r *defaultRepo) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	valueJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return r.rdb.Set(ctx, key, valueJSON, ttl).Err()
}

func (r *defaultRepo) Get(ctx context.Context, key string) *redis.StringCmd {
	return r.rdb.Get(ctx, key)
}

func (r *defaultRepo) MGet(ctx context.Context, keys ...string) *redis.SliceCmd {
	return r.rdb.MGet(ctx, keys...)
}

func (r *defaultRepo) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	return r.rdb.Del(ctx, keys...)
}

func (r *defaultRepo) Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd {
	return r.rdb.Scan(ctx, cursor, match, count)
}

// ScanKeys walks the whole keyspace with SCAN MATCH pattern COUNT count until the cursor returns to 0.
func (r *defaultRepo) ScanKeys(ctx context.Context, pattern string, count int64) ([]string, error) {
	var (
		cursor uint64
		keys   []string
	)
	for {
		batch, next, err := r.Scan(ctx, cursor, pattern, count).Result()
		if err != nil {
			return nil, err
		}
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			return keys, nil
		}
	}
}

// DelByPatterns collects the keys of every pattern and removes them with a single DEL.
func (r *defaultRepo) DelByPatterns(ctx context.Context, count int64, patterns ...string) (int64, error) {
	var keys []string
	for _, pattern := range patterns {
		matched, err := r.ScanKeys(ctx, pattern, count)
		if err != nil {
			return 0, err
		}
		keys = append(keys, matched...)
	}

	if len(keys) == 0 {
		return 0, nil
	}

	return r.rdb.Del(ctx, keys...).Result()
}

// Get reads key and decodes its JSON value. A missing key yields redis.Nil; a key
// holding another Redis type or undecodable JSON yields ErrMalformedValue.
func Get[T any](r Default, ctx context.Context, key string) (*T, error) {
	value, err := r.Get(ctx, key).Result()
	if err != nil {
		if IsWrongType(err) {
			return nil, fmt.Errorf("%w: %s", ErrMalformedValue, err.Error())
		}
		return nil, err
	}

	var result T
	if err := json.Unmarshal([]byte(value), &result); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedValue, err.Error())
	}

	return &result, nil
}

// GetMany reads key holding a JSON array.
func GetMany[T any](r Default, ctx context.Context, key string) ([]T, error) {
	value, err := r.Get(ctx, key).Result()
	if err != nil {
		if IsWrongType(err) {
			return nil, fmt.Errorf("%w: %s", ErrMalformedValue, err.Error())
		}
		return nil, err
	}

	var result []T
	if err := json.Unmarshal([]byte(value), &result); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedValue, err.Error())
	}
	if result == nil {
		return nil, fmt.Errorf("%w: expected array", ErrMalformedValue)
	}

	return result, nil
}
