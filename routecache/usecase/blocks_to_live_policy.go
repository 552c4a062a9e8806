package usecase

import (
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"

	"github.com/dexroute/rcs/domain"
)

// blocksToLivePolicy decides how many blocks a cached route set may be served
// optimistically after the block it was found at.
type blocksToLivePolicy struct {
	defaultBlocksToLive uint64
	blocksToLiveByChain map[domain.ChainID]uint64

	stableTokens       map[common.Address]struct{}
	stableBlocksToLive uint64
	// zero means no hop limit.
	maxHopsForExtendedTTL int
}

func newBlocksToLivePolicy(config *domain.RouteCacheConfig) (*blocksToLivePolicy, error) {
	blocksToLiveByChain := make(map[domain.ChainID]uint64, len(config.BlocksToLiveByChain))
	for chainIDStr, blocksToLive := range config.BlocksToLiveByChain {
		chainID, err := strconv.ParseUint(chainIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid chain id (%s) in blocks to live by chain: %w", chainIDStr, err)
		}
		blocksToLiveByChain[domain.ChainID(chainID)] = blocksToLive
	}

	stableTokens := make(map[common.Address]struct{}, len(config.StableTokens))
	for _, stableToken := range config.StableTokens {
		if !common.IsHexAddress(stableToken) {
			return nil, fmt.Errorf("stable token %s is not an address", stableToken)
		}
		stableTokens[common.HexToAddress(stableToken)] = struct{}{}
	}

	return &blocksToLivePolicy{
		defaultBlocksToLive:   config.DefaultBlocksToLive,
		blocksToLiveByChain:   blocksToLiveByChain,
		stableTokens:          stableTokens,
		stableBlocksToLive:    config.StableBlocksToLive,
		maxHopsForExtendedTTL: config.MaxHopsForExtendedTTL,
	}, nil
}

func (p *blocksToLivePolicy) blocksToLive(cachedRoutes domain.CachedRoutes) uint64 {
	blocksToLive, ok := p.blocksToLiveByChain[cachedRoutes.ChainID]
	if !ok {
		blocksToLive = p.defaultBlocksToLive
	}

	if p.isStablePair(cachedRoutes.TokenIn, cachedRoutes.TokenOut) && p.withinHopLimit(cachedRoutes) {
		return p.stableBlocksToLive
	}

	return blocksToLive
}

func (p *blocksToLivePolicy) isStablePair(tokenIn, tokenOut domain.Token) bool {
	if p.stableBlocksToLive == 0 {
		return false
	}

	_, isTokenInStable := p.stableTokens[tokenIn.Address]
	_, isTokenOutStable := p.stableTokens[tokenOut.Address]
	return isTokenInStable && isTokenOutStable
}

func (p *blocksToLivePolicy) withinHopLimit(cachedRoutes domain.CachedRoutes) bool {
	if p.maxHopsForExtendedTTL == 0 {
		return true
	}

	for _, route := range cachedRoutes.Routes {
		if len(route.Route.Pools()) > p.maxHopsForExtendedTTL {
			return false
		}
	}

	return true
}
