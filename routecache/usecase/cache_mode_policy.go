package usecase

import (
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"

	"github.com/dexroute/rcs/domain"
	"github.com/dexroute/rcs/domain/cache"
)

// pairCacheModeRule pins the cache mode of a quote token on a chain.
// A nil trade type matches both trade types.
type pairCacheModeRule struct {
	chainID    domain.ChainID
	quoteToken common.Address
	tradeType  *domain.TradeType
	mode       domain.CacheMode
}

// cacheModePolicy decides the cache mode of a lookup from the config and the runtime overwrites.
type cacheModePolicy struct {
	enabled       bool
	defaultMode   domain.CacheMode
	chainModes    map[domain.ChainID]domain.CacheMode
	pairRules     []pairCacheModeRule
	darkProtocols map[domain.Protocol]struct{}
	overwrite     *cache.CacheModeOverwrite
}

func newCacheModePolicy(config *domain.RouteCacheConfig, overwrite *cache.CacheModeOverwrite) (*cacheModePolicy, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	defaultMode, err := domain.ParseCacheMode(config.DefaultCacheMode)
	if err != nil {
		return nil, err
	}

	chainModes := make(map[domain.ChainID]domain.CacheMode, len(config.ChainCacheModes))
	for chainIDStr, modeStr := range config.ChainCacheModes {
		chainID, err := strconv.ParseUint(chainIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid chain id (%s) in chain cache modes: %w", chainIDStr, err)
		}

		mode, err := domain.ParseCacheMode(modeStr)
		if err != nil {
			return nil, err
		}

		chainModes[domain.ChainID(chainID)] = mode
	}

	pairRules := make([]pairCacheModeRule, 0, len(config.PairCacheModes))
	for _, pairConfig := range config.PairCacheModes {
		mode, err := domain.ParseCacheMode(pairConfig.Mode)
		if err != nil {
			return nil, err
		}

		rule := pairCacheModeRule{
			chainID:    pairConfig.ChainID,
			quoteToken: common.HexToAddress(pairConfig.QuoteToken),
			mode:       mode,
		}

		if pairConfig.TradeType != "" {
			tradeType, err := domain.ParseTradeType(pairConfig.TradeType)
			if err != nil {
				return nil, err
			}
			rule.tradeType = &tradeType
		}

		pairRules = append(pairRules, rule)
	}

	if overwrite == nil {
		overwrite = cache.NewNoOpCacheModeOverwrite()
	}

	darkProtocols := make(map[domain.Protocol]struct{}, len(config.DarkProtocols))
	for _, protocolStr := range config.DarkProtocols {
		protocol, err := domain.ParseProtocol(protocolStr)
		if err != nil {
			return nil, err
		}
		darkProtocols[protocol] = struct{}{}
	}

	return &cacheModePolicy{
		enabled:       config.Enabled,
		defaultMode:   defaultMode,
		chainModes:    chainModes,
		pairRules:     pairRules,
		darkProtocols: darkProtocols,
		overwrite:     overwrite,
	}, nil
}

// decide returns the cache mode of a lookup.
// Precedence: global switch, dark protocols, runtime overwrite, pair rules, chain mode, default mode.
func (p *cacheModePolicy) decide(chainID domain.ChainID, quoteToken domain.Token, tradeType domain.TradeType, protocols []domain.Protocol) domain.CacheMode {
	if !p.enabled {
		return domain.CacheModeDarkmode
	}

	if p.onlyDarkProtocols(protocols) {
		return domain.CacheModeDarkmode
	}

	if mode, ok := p.overwrite.Get(chainID, quoteToken, tradeType); ok {
		return mode
	}

	// First matching rule wins.
	for _, rule := range p.pairRules {
		if rule.chainID != chainID || rule.quoteToken != quoteToken.Address {
			continue
		}

		if rule.tradeType != nil && *rule.tradeType != tradeType {
			continue
		}

		return rule.mode
	}

	if mode, ok := p.chainModes[chainID]; ok {
		return mode
	}

	return p.defaultMode
}

// onlyDarkProtocols returns true if every requested protocol is dark.
// An empty protocol list means all protocols and is never dark.
func (p *cacheModePolicy) onlyDarkProtocols(protocols []domain.Protocol) bool {
	if len(protocols) == 0 || len(p.darkProtocols) == 0 {
		return false
	}

	for _, protocol := range protocols {
		if _, ok := p.darkProtocols[protocol]; !ok {
			return false
		}
	}

	return true
}
