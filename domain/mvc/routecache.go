package mvc

import (
	"context"

	"github.com/dexroute/rcs/domain"
)

// RouteCachingProvider is the public contract of the route cache.
// The read and write policy is fixed. Storage, cache mode and TTL decisions
// are supplied through RouteCachingPrimitives.
type RouteCachingProvider interface {
	// GetCachedRoute returns the cached routes for the swap intent if the cache mode
	// allows it and the entry has not expired at blockNumber.
	// Returns false on a miss, an expired entry or a darkmode decision.
	// Storage errors are returned unchanged.
	GetCachedRoute(ctx context.Context, chainID domain.ChainID, amount domain.CurrencyAmount, quoteToken domain.Token, tradeType domain.TradeType, protocols []domain.Protocol, blockNumber uint64, optimistic bool) (domain.CachedRoutes, bool, error)
	// SetCachedRoute stores the cached routes with the blocks to live decided by the TTL policy.
	// Returns false if the cache mode refuses the write or storage did not accept it.
	SetCachedRoute(ctx context.Context, cachedRoutes domain.CachedRoutes, amount domain.CurrencyAmount) (bool, error)
}

// CacheModeDecider decides the cache mode of a lookup.
type CacheModeDecider interface {
	GetCacheMode(ctx context.Context, chainID domain.ChainID, amount domain.CurrencyAmount, quoteToken domain.Token, tradeType domain.TradeType, protocols []domain.Protocol) domain.CacheMode
}

// RouteCachingPrimitives are the primitives a route cache implementation supplies.
type RouteCachingPrimitives interface {
	CacheModeDecider

	// GetCachedRouteFromStorage reads the cached routes for the swap intent from storage.
	// It does not check expiry.
	GetCachedRouteFromStorage(ctx context.Context, chainID domain.ChainID, amount domain.CurrencyAmount, quoteToken domain.Token, tradeType domain.TradeType, protocols []domain.Protocol, blockNumber uint64, optimistic bool) (domain.CachedRoutes, bool, error)
	// SetCachedRouteInStorage writes the TTL-bearing cached routes to storage.
	SetCachedRouteInStorage(ctx context.Context, cachedRoutes domain.CachedRoutes, amount domain.CurrencyAmount) (bool, error)
	// GetBlocksToLive returns the number of blocks the cached routes may be served optimistically.
	GetBlocksToLive(ctx context.Context, cachedRoutes domain.CachedRoutes, amount domain.CurrencyAmount) uint64
}

// RouteCacheRepository stores cached route sets by key.
type RouteCacheRepository interface {
	// GetCachedRoutes returns false if there is no entry for the key.
	GetCachedRoutes(ctx context.Context, key domain.RouteCacheKey) (domain.CachedRoutes, bool, error)
	// SetCachedRoutes stores the entry, replacing any existing one.
	SetCachedRoutes(ctx context.Context, key domain.RouteCacheKey, cachedRoutes domain.CachedRoutes) error
	// Ping checks that the storage is reachable.
	Ping(ctx context.Context) error
}

// CacheModeOverwriter manages runtime cache mode overwrites.
type CacheModeOverwriter interface {
	// OverwriteCacheMode sets the cache mode of a chain, quote token and trade type.
	// Returns domain.ErrCacheModeOverwriteDisabled if overwrites are not enabled.
	OverwriteCacheMode(chainID domain.ChainID, quoteToken domain.Token, tradeType domain.TradeType, mode domain.CacheMode) error
	// DeleteCacheModeOverwrite removes the overwrite.
	DeleteCacheModeOverwrite(chainID domain.ChainID, quoteToken domain.Token, tradeType domain.TradeType) error
}

// RouteCacheUsecase is everything the route cache HTTP handler needs.
type RouteCacheUsecase interface {
	RouteCachingProvider
	CacheModeDecider
	CacheModeOverwriter
}
