// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	favadapters "fypet_backend/internal/feature/favorites/adapters"
	"fypet_backend/internal/feature/favorites/usecase"
	"fypet_backend/internal/platform/cache"
)

// favoriteCacheTTL bounds staleness if an invalidation is ever missed.
const favoriteCacheTTL = 5 * time.Minute

// NewFavoriteRepository creates a FavoriteRepository backed by the database,
// wrapped with Redis caching when Redis is available.
func NewFavoriteRepository(rdb *redis.Client, db *gorm.DB) usecase.FavoriteRepository {
	repo := favadapters.NewFavoriteGorm(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingFavoriteRepository(rdb, favoriteCacheTTL, repo, "favorites")
}
