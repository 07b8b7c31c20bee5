package ratelimit

import (
	"context"
	"time"

	limiter "github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
)

// MemoryLimiter enforces a fixed request rate using an in-process store.
// Suitable for a single-instance deployment; a shared store would be needed
// behind a load balancer.
type MemoryLimiter struct {
	limiter *limiter.Limiter
}

// NewMemoryLimiter builds a limiter allowing max requests per window.
func NewMemoryLimiter(max int, window time.Duration) *MemoryLimiter {
	rate := limiter.Rate{Period: window, Limit: int64(max)}
	return &MemoryLimiter{limiter: limiter.New(memorystore.NewStore(), rate)}
}

// Allow registers an event for the given key and reports the decision.
func (l *MemoryLimiter) Allow(ctx context.Context, key string) (Result, error) {
	lctx, err := l.limiter.Get(ctx, key)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Allowed:   !lctx.Reached,
		Limit:     int(lctx.Limit),
		Remaining: int(lctx.Remaining),
		Reset:     time.Unix(lctx.Reset, 0),
	}, nil
}
