// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"fypet_backend/internal/feature/favorites/usecase"
)

// CachingFavoriteRepository decorates a FavoriteRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. Only the ID list is cached; writes
// invalidate the user's entry so readers never see a stale list.
type CachingFavoriteRepository struct {
	inner     usecase.FavoriteRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check to ensure the decorator still satisfies the interface.
var _ usecase.FavoriteRepository = (*CachingFavoriteRepository)(nil)

// NewCachingFavoriteRepository decorates a FavoriteRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "favorites".
func NewCachingFavoriteRepository(rdb *redis.Client, ttl time.Duration, inner usecase.FavoriteRepository, namespace string) *CachingFavoriteRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "favorites"
	}
	return &CachingFavoriteRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Add stores the favorite and invalidates the user's cached list.
func (c *CachingFavoriteRepository) Add(ctx context.Context, userID, animalID uint) error {
	if err := c.inner.Add(ctx, userID, animalID); err != nil {
		return err
	}
	c.invalidate(ctx, userID)
	return nil
}

// Remove deletes the favorite and invalidates the user's cached list.
func (c *CachingFavoriteRepository) Remove(ctx context.Context, userID, animalID uint) error {
	if err := c.inner.Remove(ctx, userID, animalID); err != nil {
		return err
	}
	c.invalidate(ctx, userID)
	return nil
}

// Exists answers from the cached list when present, otherwise from the database.
func (c *CachingFavoriteRepository) Exists(ctx context.Context, userID, animalID uint) (bool, error) {
	if c.rdb != nil {
		if ids, ok := c.cachedIDs(ctx, userID); ok {
			for _, id := range ids {
				if id == animalID {
					return true, nil
				}
			}
			return false, nil
		}
	}
	return c.inner.Exists(ctx, userID, animalID)
}

// ListAnimalIDs retrieves the ID list, checking cache first then falling back
// to the database.
func (c *CachingFavoriteRepository) ListAnimalIDs(ctx context.Context, userID uint) ([]uint, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.ListAnimalIDs(ctx, userID)
	}

	// 1) Check cache
	if ids, ok := c.cachedIDs(ctx, userID); ok {
		return ids, nil
	}

	// 2) Fallback to database
	ids, err := c.inner.ListAnimalIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(ids); err == nil {
		_ = c.rdb.Set(ctx, c.cacheKey(userID), b, c.ttl).Err()
	}

	return ids, nil
}

// cachedIDs reads and decodes the user's cached list. The second return
// value is false on miss or on a corrupted entry (which is deleted).
func (c *CachingFavoriteRepository) cachedIDs(ctx context.Context, userID uint) ([]uint, bool) {
	key := c.cacheKey(userID)
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil || len(b) == 0 {
		return nil, false
	}
	var ids []uint
	if err := json.Unmarshal(b, &ids); err != nil {
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
		return nil, false
	}
	return ids, true
}

// invalidate drops the user's cache entry. Best effort: don't fail the write
// if cache deletion fails.
func (c *CachingFavoriteRepository) invalidate(ctx context.Context, userID uint) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.cacheKey(userID)).Err()
}

// cacheKey generates the cache key for a user's favorite list.
func (c *CachingFavoriteRepository) cacheKey(userID uint) string {
	return fmt.Sprintf("%s:%d", c.namespace, userID)
}
