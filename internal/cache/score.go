// Package cache provides the Redis-backed score memoization. The scorer is
// deterministic, so entries never go stale within a snapshot version; a short
// TTL keeps the cache tracking profile edits.
package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go-jobswipe-backend/pkg/logger"

	"github.com/redis/go-redis/v9"
)

type ScoreCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewScoreCache wraps a Redis client. A nil client yields a cache that
// always misses, so callers need no special casing when Redis is not
// configured.
func NewScoreCache(client *redis.Client, ttl time.Duration) *ScoreCache {
	return &ScoreCache{client: client, ttl: ttl}
}

func scoreKey(candidateID string, jobID int64) string {
	return fmt.Sprintf("score:%s:%d", candidateID, jobID)
}

// Get returns the cached score and whether it was present.
func (c *ScoreCache) Get(ctx context.Context, candidateID string, jobID int64) (int, bool) {
	if c.client == nil {
		return 0, false
	}
	val, err := c.client.Get(ctx, scoreKey(candidateID, jobID)).Result()
	if err != nil {
		return 0, false
	}
	score, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return score, true
}

// Set stores the score; cache failures are logged, never surfaced.
func (c *ScoreCache) Set(ctx context.Context, candidateID string, jobID int64, score int) {
	if c.client == nil {
		return
	}
	if err := c.client.Set(ctx, scoreKey(candidateID, jobID), score, c.ttl).Err(); err != nil {
		logger.Log.Warn("score cache write failed", "error", err)
	}
}
