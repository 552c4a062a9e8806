package usecase

import (
	"context"
	"strconv"

	"github.com/dexroute/rcs/domain"
	"github.com/dexroute/rcs/domain/mvc"
)

type routeCachingProvider struct {
	primitives mvc.RouteCachingPrimitives
}

var _ mvc.RouteCachingProvider = &routeCachingProvider{}

// NewRouteCachingProvider wraps the primitives with the fixed read and write policy of the route cache.
func NewRouteCachingProvider(primitives mvc.RouteCachingPrimitives) mvc.RouteCachingProvider {
	return &routeCachingProvider{
		primitives: primitives,
	}
}

// GetCachedRoute implements mvc.RouteCachingProvider.
func (p *routeCachingProvider) GetCachedRoute(ctx context.Context, chainID domain.ChainID, amount domain.CurrencyAmount, quoteToken domain.Token, tradeType domain.TradeType, protocols []domain.Protocol, blockNumber uint64, optimistic bool) (domain.CachedRoutes, bool, error) {
	cacheMode := p.primitives.GetCacheMode(ctx, chainID, amount, quoteToken, tradeType, protocols)
	if cacheMode.IsDark() {
		domain.RCSRouteCacheDarkmodeCounter.WithLabelValues("get").Inc()
		return domain.CachedRoutes{}, false, nil
	}

	cachedRoutes, found, err := p.primitives.GetCachedRouteFromStorage(ctx, chainID, amount, quoteToken, tradeType, protocols, blockNumber, optimistic)
	if err != nil {
		return domain.CachedRoutes{}, false, err
	}

	if !found {
		return domain.CachedRoutes{}, false, nil
	}

	// Storage may hand back entries it has not evicted yet.
	if !cachedRoutes.NotExpired(blockNumber, optimistic) {
		domain.RCSRouteCacheExpiredCounter.WithLabelValues(strconv.FormatBool(optimistic)).Inc()
		return domain.CachedRoutes{}, false, nil
	}

	return cachedRoutes, true, nil
}

// SetCachedRoute implements mvc.RouteCachingProvider.
func (p *routeCachingProvider) SetCachedRoute(ctx context.Context, cachedRoutes domain.CachedRoutes, amount domain.CurrencyAmount) (bool, error) {
	quoteToken := cachedRoutes.QuoteToken()

	cacheMode := p.primitives.GetCacheMode(ctx, cachedRoutes.ChainID, amount, quoteToken, cachedRoutes.TradeType, cachedRoutes.ProtocolsCovered)
	if cacheMode.IsDark() {
		domain.RCSRouteCacheDarkmodeCounter.WithLabelValues("set").Inc()
		return false, nil
	}

	blocksToLive := p.primitives.GetBlocksToLive(ctx, cachedRoutes, amount)

	return p.primitives.SetCachedRouteInStorage(ctx, cachedRoutes.WithBlocksToLive(blocksToLive), amount)
}
