package model

import (
	"context"
	"time"
)

// RateLimitResult describes the state of a client's budget after a request.
type RateLimitResult struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// RateLimiter counts requests per key within a window.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (RateLimitResult, error)
}
