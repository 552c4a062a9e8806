package routecachememoryrepo

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dexroute/rcs/domain"
	"github.com/dexroute/rcs/domain/mvc"
)

type memoryRouteCacheRepository struct {
	cache *lru.Cache[string, domain.CachedRoutes]
}

var _ mvc.RouteCacheRepository = &memoryRouteCacheRepository{}

// New creates a route cache repository keeping up to size route sets in memory.
// The least recently used entries are evicted first.
func New(size int) (mvc.RouteCacheRepository, error) {
	cache, err := lru.New[string, domain.CachedRoutes](size)
	if err != nil {
		return nil, err
	}

	return &memoryRouteCacheRepository{
		cache: cache,
	}, nil
}

// GetCachedRoutes implements mvc.RouteCacheRepository.
func (r *memoryRouteCacheRepository) GetCachedRoutes(ctx context.Context, key domain.RouteCacheKey) (domain.CachedRoutes, bool, error) {
	cachedRoutes, ok := r.cache.Get(key.String())
	if !ok {
		return domain.CachedRoutes{}, false, nil
	}

	// Hand out a copy so that callers cannot alias the stored slices.
	return cachedRoutes.WithBlocksToLive(cachedRoutes.BlocksToLive), true, nil
}

// SetCachedRoutes implements mvc.RouteCacheRepository.
func (r *memoryRouteCacheRepository) SetCachedRoutes(ctx context.Context, key domain.RouteCacheKey, cachedRoutes domain.CachedRoutes) error {
	r.cache.Add(key.String(), cachedRoutes.WithBlocksToLive(cachedRoutes.BlocksToLive))
	return nil
}

// Ping implements mvc.RouteCacheRepository.
func (r *memoryRouteCacheRepository) Ping(ctx context.Context) error {
	return nil
}
