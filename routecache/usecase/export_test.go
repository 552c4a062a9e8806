package usecase

import (
	"github.com/dexroute/rcs/domain"
	"github.com/dexroute/rcs/domain/cache"
)

type (
	CacheModePolicy    = cacheModePolicy
	BlocksToLivePolicy = blocksToLivePolicy
)

func NewCacheModePolicy(config *domain.RouteCacheConfig, overwrite *cache.CacheModeOverwrite) (*CacheModePolicy, error) {
	return newCacheModePolicy(config, overwrite)
}

func (p *cacheModePolicy) Decide(chainID domain.ChainID, quoteToken domain.Token, tradeType domain.TradeType, protocols []domain.Protocol) domain.CacheMode {
	return p.decide(chainID, quoteToken, tradeType, protocols)
}

func NewBlocksToLivePolicy(config *domain.RouteCacheConfig) (*BlocksToLivePolicy, error) {
	return newBlocksToLivePolicy(config)
}

func (p *blocksToLivePolicy) BlocksToLive(cachedRoutes domain.CachedRoutes) uint64 {
	return p.blocksToLive(cachedRoutes)
}
