package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dtroode/taskflow-server/internal/config"
	"github.com/dtroode/taskflow-server/internal/model"
)

const keyPrefix = "ratelimit:"

var _ model.RateLimiter = (*Limiter)(nil)

// NewClient connects to redis and verifies the connection.
func NewClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return rdb, nil
}

// Limiter is a sliding-window limiter backed by one sorted set per key.
// Every attempt is recorded, rejected ones included.
type Limiter struct {
	client redis.Cmdable
	limit  int
	window time.Duration
	now    func() time.Time
}

func NewLimiter(client redis.Cmdable, limit int, window time.Duration) *Limiter {
	return &Limiter{
		client: client,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

// Allow records an attempt for key and reports whether it fits the window.
func (l *Limiter) Allow(ctx context.Context, key string) (model.RateLimitResult, error) {
	now := l.now()
	windowStart := now.Add(-l.window)
	key = keyPrefix + key

	pipe := l.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "-inf", "("+strconv.FormatInt(windowStart.UnixNano(), 10))
	count := pipe.ZCard(ctx, key)
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: strconv.FormatInt(now.UnixNano(), 10) + "-" + uuid.NewString(),
	})
	oldest := pipe.ZRangeWithScores(ctx, key, 0, 0)
	pipe.PExpire(ctx, key, l.window)

	if _, err := pipe.Exec(ctx); err != nil {
		return model.RateLimitResult{}, fmt.Errorf("failed to record attempt: %w", err)
	}

	result := model.RateLimitResult{
		Limit:   l.limit,
		ResetAt: now.Add(l.window),
	}

	seen := int(count.Val())
	if seen >= l.limit {
		if z := oldest.Val(); len(z) > 0 {
			result.ResetAt = time.Unix(0, int64(z[0].Score)).Add(l.window)
		}
		return result, nil
	}

	result.Allowed = true
	result.Remaining = l.limit - seen - 1
	return result, nil
}
