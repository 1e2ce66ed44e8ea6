package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/civichub/mts/internal/domain"
)

const departmentsKey = "mts:departments"

// DepartmentCache keeps the full department list in Redis. The list is small
// and read on nearly every page, so a short TTL plus invalidation on every
// mutation is enough. Cache misses and Redis failures fall through to the
// store.
type DepartmentCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewDepartmentCache builds the cache. A nil client disables caching.
func NewDepartmentCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *DepartmentCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &DepartmentCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached department list, with ok=false on miss or error.
func (c *DepartmentCache) Get(ctx context.Context) ([]domain.Department, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, departmentsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("department cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var depts []domain.Department
	if err := json.Unmarshal(raw, &depts); err != nil {
		c.logger.Warn("department cache corrupt; dropping", zap.Error(err))
		c.Invalidate(ctx)
		return nil, false
	}
	return depts, true
}

// Set stores the department list.
func (c *DepartmentCache) Set(ctx context.Context, depts []domain.Department) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(depts)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, departmentsKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("department cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached list after a department mutation.
func (c *DepartmentCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, departmentsKey).Err(); err != nil {
		c.logger.Warn("department cache invalidation failed", zap.Error(err))
	}
}
