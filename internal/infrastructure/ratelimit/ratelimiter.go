package ratelimit

import (
	"context"
	"time"
)

// Limits caps request counts over fixed lookback windows. A zero value
// disables that window.
type Limits struct {
	PerMinute int
	PerHour   int
	PerDay    int
}

// Limiter throttles keyed operations. Keys are caller-defined, typically
// "scope:clientIP".
type Limiter interface {
	// Allow records one attempt and reports whether it stays within
	// every configured window.
	Allow(ctx context.Context, key string, limits Limits) (bool, error)
	// Used returns how many attempts the key has made within the window.
	Used(ctx context.Context, key string, window time.Duration) (int64, error)
	// Reset clears all windows for the key.
	Reset(ctx context.Context, key string) error
}
