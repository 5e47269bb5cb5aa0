package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	dom "Shop/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	keyAll  = "subcategory:all"
	keyByID = "subcategory:id:"
)

// SubCategoryCache caches subcategory reads in Redis. Subcategories change
// rarely and get-all is the hottest endpoint of the catalog surface.
type SubCategoryCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewSubCategoryCache returns a new SubCategoryCache.
func NewSubCategoryCache(rdb *redis.Client, ttl time.Duration) *SubCategoryCache {
	return &SubCategoryCache{rdb: rdb, ttl: ttl}
}

// GetAll returns the cached list or nil if miss.
func (c *SubCategoryCache) GetAll(ctx context.Context) ([]dom.SubCategory, error) {
	b, err := c.rdb.Get(ctx, keyAll).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.SubCategory
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetAll stores the list in cache.
func (c *SubCategoryCache) SetAll(ctx context.Context, list []dom.SubCategory) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyAll, b, c.ttl).Err()
}

// GetByID returns the cached subcategory or nil if miss.
func (c *SubCategoryCache) GetByID(ctx context.Context, id int64) (*dom.SubCategory, error) {
	b, err := c.rdb.Get(ctx, keyByID+strconv.FormatInt(id, 10)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var sc dom.SubCategory
	if err := json.Unmarshal(b, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

// SetByID stores a single subcategory in cache.
func (c *SubCategoryCache) SetByID(ctx context.Context, sc dom.SubCategory) error {
	b, err := json.Marshal(sc)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyByID+strconv.FormatInt(sc.ID, 10), b, c.ttl).Err()
}

// InvalidateAll removes the list key and all per-id keys (cache invalidation on write).
func (c *SubCategoryCache) InvalidateAll(ctx context.Context) error {
	if err := c.rdb.Del(ctx, keyAll).Err(); err != nil {
		return err
	}
	iter := c.rdb.Scan(ctx, 0, keyByID+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
