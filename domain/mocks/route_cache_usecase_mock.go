package mocks

import (
	"context"

	"github.com/dexroute/rcs/domain"
	"github.com/dexroute/rcs/domain/mvc"
)

var _ mvc.RouteCacheUsecase = &RouteCacheUsecaseMock{}

// RouteCacheUsecaseMock is a mock implementation of the RouteCacheUsecase interface
type RouteCacheUsecaseMock struct {
	GetCachedRouteFunc           func(ctx context.Context, chainID domain.ChainID, amount domain.CurrencyAmount, quoteToken domain.Token, tradeType domain.TradeType, protocols []domain.Protocol, blockNumber uint64, optimistic bool) (domain.CachedRoutes, bool, error)
	SetCachedRouteFunc           func(ctx context.Context, cachedRoutes domain.CachedRoutes, amount domain.CurrencyAmount) (bool, error)
	GetCacheModeFunc             func(ctx context.Context, chainID domain.ChainID, amount domain.CurrencyAmount, quoteToken domain.Token, tradeType domain.TradeType, protocols []domain.Protocol) domain.CacheMode
	OverwriteCacheModeFunc       func(chainID domain.ChainID, quoteToken domain.Token, tradeType domain.TradeType, mode domain.CacheMode) error
	DeleteCacheModeOverwriteFunc func(chainID domain.ChainID, quoteToken domain.Token, tradeType domain.TradeType) error
}

// GetCachedRoute implements mvc.RouteCacheUsecase.
func (m *RouteCacheUsecaseMock) GetCachedRoute(ctx context.Context, chainID domain.ChainID, amount domain.CurrencyAmount, quoteToken domain.Token, tradeType domain.TradeType, protocols []domain.Protocol, blockNumber uint64, optimistic bool) (domain.CachedRoutes, bool, error) {
	if m.GetCachedRouteFunc != nil {
		return m.GetCachedRouteFunc(ctx, chainID, amount, quoteToken, tradeType, protocols, blockNumber, optimistic)
	}

	panic("unimplemented")
}

// SetCachedRoute implements mvc.RouteCacheUsecase.
func (m *RouteCacheUsecaseMock) SetCachedRoute(ctx context.Context, cachedRoutes domain.CachedRoutes, amount domain.CurrencyAmount) (bool, error) {
	if m.SetCachedRouteFunc != nil {
		return m.SetCachedRouteFunc(ctx, cachedRoutes, amount)
	}

	panic("unimplemented")
}

// GetCacheMode implements mvc.RouteCacheUsecase.
func (m *RouteCacheUsecaseMock) GetCacheMode(ctx context.Context, chainID domain.ChainID, amount domain.CurrencyAmount, quoteToken domain.Token, tradeType domain.TradeType, protocols []domain.Protocol) domain.CacheMode {
	if m.GetCacheModeFunc != nil {
		return m.GetCacheModeFunc(ctx, chainID, amount, quoteToken, tradeType, protocols)
	}

	panic("unimplemented")
}

// OverwriteCacheMode implements mvc.RouteCacheUsecase.
func (m *RouteCacheUsecaseMock) OverwriteCacheMode(chainID domain.ChainID, quoteToken domain.Token, tradeType domain.TradeType, mode domain.CacheMode) error {
	if m.OverwriteCacheModeFunc != nil {
		return m.OverwriteCacheModeFunc(chainID, quoteToken, tradeType, mode)
	}

	panic("unimplemented")
}

// DeleteCacheModeOverwrite implements mvc.RouteCacheUsecase.
func (m *RouteCacheUsecaseMock) DeleteCacheModeOverwrite(chainID domain.ChainID, quoteToken domain.Token, tradeType domain.TradeType) error {
	if m.DeleteCacheModeOverwriteFunc != nil {
		return m.DeleteCacheModeOverwriteFunc(chainID, quoteToken, tradeType)
	}

	panic("unimplemented")
}
