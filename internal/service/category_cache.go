package service

import (
	"context"
	"encoding/json"
	"time"

	"trivia-api/internal/cache"
	"trivia-api/internal/domain"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// CategoryCacheService is a read-through cache over the category
// repository. Categories are seeded at initialization and never mutated
// through the API, so there is no invalidation path; entries simply
// expire. Cache failures degrade to the repository.
type CategoryCacheService struct {
	repo    domain.CategoryRepository
	cache   domain.Cache
	ttl     time.Duration
	sfGroup singleflight.Group
}

// NewCategoryCacheService creates a new CategoryCacheService. cache may
// be nil, in which case every call hits the repository.
func NewCategoryCacheService(repo domain.CategoryRepository, cacheClient domain.Cache, ttl time.Duration) *CategoryCacheService {
	return &CategoryCacheService{
		repo:  repo,
		cache: cacheClient,
		ttl:   ttl,
	}
}

// Categories implements CategoryProvider.
func (s *CategoryCacheService) Categories(ctx context.Context) (map[int64]string, error) {
	cacheKey := cache.GenerateCacheKey("catalog", "categories", "all")

	if s.cache != nil {
		val, err := s.cache.Get(ctx, cacheKey)
		if err == nil {
			var categories map[int64]string
			if unmarshalErr := json.Unmarshal([]byte(val), &categories); unmarshalErr == nil {
				return categories, nil
			}
			logger.Get().Warn("Corrupt category cache entry, refetching",
				zap.String("cacheKey", cacheKey))
		} else if err != domain.ErrCacheMiss {
			logger.Get().Warn("Category cache read failed, falling back to repository",
				zap.String("cacheKey", cacheKey),
				zap.Error(err))
		}
	}

	// Cache miss or error: singleflight dedupes concurrent repository loads.
	res, err, _ := s.sfGroup.Do(cacheKey, func() (interface{}, error) {
		categories, fetchErr := s.repo.GetAllCategories(ctx)
		if fetchErr != nil {
			return nil, fetchErr
		}

		mapping := make(map[int64]string, len(categories))
		for _, category := range categories {
			mapping[category.ID] = category.Name
		}

		if s.cache != nil && len(mapping) > 0 {
			if data, marshalErr := json.Marshal(mapping); marshalErr == nil {
				if setErr := s.cache.Set(ctx, cacheKey, string(data), s.ttl); setErr != nil {
					logger.Get().Warn("Failed to populate category cache",
						zap.String("cacheKey", cacheKey),
						zap.Error(setErr))
				}
			}
		}
		return mapping, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(map[int64]string), nil
}
