package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/dexroute/rcs/domain"
	"github.com/dexroute/rcs/domain/cache"
	"github.com/dexroute/rcs/domain/mvc"
	"github.com/dexroute/rcs/log"
)

type routeCachingPrimitives struct {
	repository mvc.RouteCacheRepository
	modePolicy *cacheModePolicy
	ttlPolicy  *blocksToLivePolicy
	logger     log.Logger
}

var _ mvc.RouteCachingPrimitives = &routeCachingPrimitives{}

// NewRouteCachingPrimitives creates the route caching primitives backed by the given repository.
// The cache mode is decided from the config and the overwrite. The blocks to live are decided from the config.
// Returns error if the config is invalid.
func NewRouteCachingPrimitives(config *domain.RouteCacheConfig, repository mvc.RouteCacheRepository, overwrite *cache.CacheModeOverwrite, logger log.Logger) (mvc.RouteCachingPrimitives, error) {
	return newRouteCachingPrimitives(config, repository, overwrite, logger)
}

func newRouteCachingPrimitives(config *domain.RouteCacheConfig, repository mvc.RouteCacheRepository, overwrite *cache.CacheModeOverwrite, logger log.Logger) (*routeCachingPrimitives, error) {
	modePolicy, err := newCacheModePolicy(config, overwrite)
	if err != nil {
		return nil, err
	}

	ttlPolicy, err := newBlocksToLivePolicy(config)
	if err != nil {
		return nil, err
	}

	return &routeCachingPrimitives{
		repository: repository,
		modePolicy: modePolicy,
		ttlPolicy:  ttlPolicy,
		logger:     logger,
	}, nil
}

// GetCacheMode implements mvc.RouteCachingPrimitives.
func (p *routeCachingPrimitives) GetCacheMode(ctx context.Context, chainID domain.ChainID, amount domain.CurrencyAmount, quoteToken domain.Token, tradeType domain.TradeType, protocols []domain.Protocol) domain.CacheMode {
	return p.modePolicy.decide(chainID, quoteToken, tradeType, protocols)
}

// GetCachedRouteFromStorage implements mvc.RouteCachingPrimitives.
func (p *routeCachingPrimitives) GetCachedRouteFromStorage(ctx context.Context, chainID domain.ChainID, amount domain.CurrencyAmount, quoteToken domain.Token, tradeType domain.TradeType, protocols []domain.Protocol, blockNumber uint64, optimistic bool) (domain.CachedRoutes, bool, error) {
	key := domain.NewRouteCacheKey(chainID, amount, quoteToken, tradeType, protocols)

	cachedRoutes, found, err := p.repository.GetCachedRoutes(ctx, key)
	if err != nil {
		domain.RCSRouteCacheStorageErrorsCounter.WithLabelValues("get").Inc()
		p.logger.Error("failed to read cached routes", zap.Stringer("key", key), zap.Error(err))
		return domain.CachedRoutes{}, false, err
	}

	p.logger.Debug("read cached routes", zap.Stringer("key", key), zap.Bool("found", found), zap.Uint64("block_number", blockNumber))

	return cachedRoutes, found, nil
}

// SetCachedRouteInStorage implements mvc.RouteCachingPrimitives.
func (p *routeCachingPrimitives) SetCachedRouteInStorage(ctx context.Context, cachedRoutes domain.CachedRoutes, amount domain.CurrencyAmount) (bool, error) {
	key := domain.RouteCacheKeyFromCachedRoutes(cachedRoutes, amount)

	if err := p.repository.SetCachedRoutes(ctx, key, cachedRoutes); err != nil {
		domain.RCSRouteCacheStorageErrorsCounter.WithLabelValues("set").Inc()
		p.logger.Error("failed to write cached routes", zap.Stringer("key", key), zap.Error(err))
		return false, err
	}

	p.logger.Debug("wrote cached routes", zap.Stringer("key", key), zap.Uint64("block_number", cachedRoutes.BlockNumber), zap.Uint64("blocks_to_live", cachedRoutes.BlocksToLive))

	return true, nil
}

// GetBlocksToLive implements mvc.RouteCachingPrimitives.
func (p *routeCachingPrimitives) GetBlocksToLive(ctx context.Context, cachedRoutes domain.CachedRoutes, amount domain.CurrencyAmount) uint64 {
	return p.ttlPolicy.blocksToLive(cachedRoutes)
}
