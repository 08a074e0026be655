package redisrepo

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
)

const (
	ResultHit     = "hit"
	ResultMiss    = "miss"
	ResultCorrupt = "corrupt"
)

var (
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "post_cache_lookups_total",
		Help: "Post cache lookups by key kind and result",
	}, []string{"kind", "result"})

	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "post_redis_errors_total",
		Help: "Failed Redis commands by command name",
	}, []string{"command"})
)

// MetricsHook counts failed Redis commands. redis.Nil is a miss, not a failure.
type MetricsHook struct{}

func (h MetricsHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h MetricsHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		if err != nil && !errors.Is(err, redis.Nil) {
			RedisErrors.WithLabelValues(cmd.Name()).Inc()
		}
		return err
	}
}

func (h MetricsHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		if err != nil && !errors.Is(err, redis.Nil) {
			RedisErrors.WithLabelValues("pipeline").Inc()
		}
		return err
	}
}

func observe(kind, result string) {
	CacheLookups.WithLabelValues(kind, result).Inc()
}

func ObserveHit(kind string)     { observe(kind, ResultHit) }
func ObserveMiss(kind string)    { observe(kind, ResultMiss) }
func ObserveCorrupt(kind string) { observe(kind, ResultCorrupt) }
