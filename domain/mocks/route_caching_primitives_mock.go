package mocks

import (
	"context"

	"github.com/dexroute/rcs/domain"
	"github.com/dexroute/rcs/domain/mvc"
)

var _ mvc.RouteCachingPrimitives = &RouteCachingPrimitivesMock{}

// RouteCachingPrimitivesMock is a mock implementation of the RouteCachingPrimitives interface
type RouteCachingPrimitivesMock struct {
	GetCacheModeFunc              func(ctx context.Context, chainID domain.ChainID, amount domain.CurrencyAmount, quoteToken domain.Token, tradeType domain.TradeType, protocols []domain.Protocol) domain.CacheMode
	GetCachedRouteFromStorageFunc func(ctx context.Context, chainID domain.ChainID, amount domain.CurrencyAmount, quoteToken domain.Token, tradeType domain.TradeType, protocols []domain.Protocol, blockNumber uint64, optimistic bool) (domain.CachedRoutes, bool, error)
	SetCachedRouteInStorageFunc   func(ctx context.Context, cachedRoutes domain.CachedRoutes, amount domain.CurrencyAmount) (bool, error)
	GetBlocksToLiveFunc           func(ctx context.Context, cachedRoutes domain.CachedRoutes, amount domain.CurrencyAmount) uint64
}

// GetCacheMode implements mvc.RouteCachingPrimitives.
func (m *RouteCachingPrimitivesMock) GetCacheMode(ctx context.Context, chainID domain.ChainID, amount domain.CurrencyAmount, quoteToken domain.Token, tradeType domain.TradeType, protocols []domain.Protocol) domain.CacheMode {
	if m.GetCacheModeFunc != nil {
		return m.GetCacheModeFunc(ctx, chainID, amount, quoteToken, tradeType, protocols)
	}

	panic("unimplemented")
}

// GetCachedRouteFromStorage implements mvc.RouteCachingPrimitives.
func (m *RouteCachingPrimitivesMock) GetCachedRouteFromStorage(ctx context.Context, chainID domain.ChainID, amount domain.CurrencyAmount, quoteToken domain.Token, tradeType domain.TradeType, protocols []domain.Protocol, blockNumber uint64, optimistic bool) (domain.CachedRoutes, bool, error) {
	if m.GetCachedRouteFromStorageFunc != nil {
		return m.GetCachedRouteFromStorageFunc(ctx, chainID, amount, quoteToken, tradeType, protocols, blockNumber, optimistic)
	}

	panic("unimplemented")
}

// SetCachedRouteInStorage implements mvc.RouteCachingPrimitives.
func (m *RouteCachingPrimitivesMock) SetCachedRouteInStorage(ctx context.Context, cachedRoutes domain.CachedRoutes, amount domain.CurrencyAmount) (bool, error) {
	if m.SetCachedRouteInStorageFunc != nil {
		return m.SetCachedRouteInStorageFunc(ctx, cachedRoutes, amount)
	}

	panic("unimplemented")
}

// GetBlocksToLive implements mvc.RouteCachingPrimitives.
func (m *RouteCachingPrimitivesMock) GetBlocksToLive(ctx context.Context, cachedRoutes domain.CachedRoutes, amount domain.CurrencyAmount) uint64 {
	if m.GetBlocksToLiveFunc != nil {
		return m.GetBlocksToLiveFunc(ctx, cachedRoutes, amount)
	}

	panic("unimplemented")
}
