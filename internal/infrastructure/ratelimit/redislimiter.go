package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "fixtrack:rl"

type redisLimiter struct {
	client *redis.Client
}

// NewRedisLimiter returns a sliding-window limiter backed by Redis
// sorted sets. Counters survive restarts and are shared across
// instances pointing at the same Redis.
func NewRedisLimiter(client *redis.Client) Limiter {
	return &redisLimiter{client: client}
}

func (l *redisLimiter) Allow(ctx context.Context, key string, limits Limits) (bool, error) {
	now := time.Now()

	windows := []struct {
		span  time.Duration
		limit int
	}{
		{time.Minute, limits.PerMinute},
		{time.Hour, limits.PerHour},
		{24 * time.Hour, limits.PerDay},
	}

	for _, w := range windows {
		if w.limit <= 0 {
			continue
		}

		used, err := l.record(ctx, windowKey(key, w.span), w.span, now)
		if err != nil {
			return false, err
		}
		if used > int64(w.limit) {
			return false, nil
		}
	}

	return true, nil
}

// record trims expired entries, adds the current attempt and returns the
// window population including it.
func (l *redisLimiter) record(ctx context.Context, redisKey string, span time.Duration, now time.Time) (int64, error) {
	cutoff := strconv.FormatInt(now.Add(-span).UnixNano(), 10)

	pipe := l.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", cutoff)
	pipe.ZAdd(ctx, redisKey, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: now.UnixNano(),
	})
	count := pipe.ZCard(ctx, redisKey)
	pipe.Expire(ctx, redisKey, span+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("rate limit pipeline failed: %w", err)
	}

	return count.Val(), nil
}

func (l *redisLimiter) Used(ctx context.Context, key string, window time.Duration) (int64, error) {
	redisKey := windowKey(key, window)
	cutoff := strconv.FormatInt(time.Now().Add(-window).UnixNano(), 10)

	pipe := l.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", cutoff)
	count := pipe.ZCard(ctx, redisKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("rate limit count failed: %w", err)
	}

	return count.Val(), nil
}

func (l *redisLimiter) Reset(ctx context.Context, key string) error {
	iter := l.client.Scan(ctx, 0, fmt.Sprintf("%s:%s:*", keyPrefix, key), 0).Iterator()
	for iter.Next(ctx) {
		if err := l.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("rate limit key scan failed: %w", err)
	}
	return nil
}

func windowKey(key string, span time.Duration) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, key, span)
}
