package usecase_test

import (
	"github.com/dexroute/rcs/domain"
	"github.com/dexroute/rcs/domain/cache"
	"github.com/dexroute/rcs/routecache/usecase"
)

const polygonChainID domain.ChainID = 137

func (s *RouteCachingProviderTestSuite) TestCacheModePolicy_Decide() {
	exactOutput := "EXACT_OUTPUT"

	config := &domain.RouteCacheConfig{
		Enabled:          true,
		DefaultCacheMode: "darkmode",
		ChainCacheModes: map[string]string{
			"1": "tapcompare",
		},
		PairCacheModes: []domain.PairCacheModeConfig{
			{ChainID: 1, QuoteToken: USDC.Address.Hex(), Mode: "livemode"},
			{ChainID: 1, QuoteToken: WETH.Address.Hex(), TradeType: exactOutput, Mode: "livemode"},
		},
		DarkProtocols: []string{"V2"},
	}

	tests := []struct {
		name       string
		enabled    bool
		chainID    domain.ChainID
		quoteToken domain.Token
		tradeType  domain.TradeType
		protocols  []domain.Protocol
		overwrite  domain.CacheMode

		expectedMode domain.CacheMode
	}{
		{
			name:         "disabled is always dark",
			enabled:      false,
			chainID:      1,
			quoteToken:   USDC,
			tradeType:    domain.TradeTypeExactInput,
			protocols:    []domain.Protocol{domain.ProtocolV3},
			expectedMode: domain.CacheModeDarkmode,
		},
		{
			name:         "pair rule for any trade type",
			enabled:      true,
			chainID:      1,
			quoteToken:   USDC,
			tradeType:    domain.TradeTypeExactOutput,
			protocols:    []domain.Protocol{domain.ProtocolV3},
			expectedMode: domain.CacheModeLivemode,
		},
		{
			name:         "pair rule for matching trade type",
			enabled:      true,
			chainID:      1,
			quoteToken:   WETH,
			tradeType:    domain.TradeTypeExactOutput,
			protocols:    []domain.Protocol{domain.ProtocolV3},
			expectedMode: domain.CacheModeLivemode,
		},
		{
			name:         "pair rule for other trade type falls back to chain mode",
			enabled:      true,
			chainID:      1,
			quoteToken:   WETH,
			tradeType:    domain.TradeTypeExactInput,
			protocols:    []domain.Protocol{domain.ProtocolV3},
			expectedMode: domain.CacheModeTapcompare,
		},
		{
			name:         "unknown chain falls back to default mode",
			enabled:      true,
			chainID:      polygonChainID,
			quoteToken:   USDC,
			tradeType:    domain.TradeTypeExactInput,
			protocols:    []domain.Protocol{domain.ProtocolV3},
			expectedMode: domain.CacheModeDarkmode,
		},
		{
			name:         "only dark protocols",
			enabled:      true,
			chainID:      1,
			quoteToken:   USDC,
			tradeType:    domain.TradeTypeExactInput,
			protocols:    []domain.Protocol{domain.ProtocolV2},
			expectedMode: domain.CacheModeDarkmode,
		},
		{
			name:         "dark protocol mixed with a live one",
			enabled:      true,
			chainID:      1,
			quoteToken:   USDC,
			tradeType:    domain.TradeTypeExactInput,
			protocols:    []domain.Protocol{domain.ProtocolV2, domain.ProtocolV3},
			expectedMode: domain.CacheModeLivemode,
		},
		{
			name:         "empty protocols are never dark",
			enabled:      true,
			chainID:      1,
			quoteToken:   USDC,
			tradeType:    domain.TradeTypeExactInput,
			expectedMode: domain.CacheModeLivemode,
		},
		{
			name:         "overwrite beats pair rule",
			enabled:      true,
			chainID:      1,
			quoteToken:   USDC,
			tradeType:    domain.TradeTypeExactInput,
			protocols:    []domain.Protocol{domain.ProtocolV3},
			overwrite:    domain.CacheModeTapcompare,
			expectedMode: domain.CacheModeTapcompare,
		},
		{
			name:         "overwrite does not beat the global switch",
			enabled:      false,
			chainID:      1,
			quoteToken:   USDC,
			tradeType:    domain.TradeTypeExactInput,
			protocols:    []domain.Protocol{domain.ProtocolV3},
			overwrite:    domain.CacheModeLivemode,
			expectedMode: domain.CacheModeDarkmode,
		},
	}

	for _, tc := range tests {
		tc := tc
		s.Run(tc.name, func() {
			configCopy := *config
			configCopy.Enabled = tc.enabled

			overwrite := cache.NewCacheModeOverwrite()
			if tc.overwrite != "" {
				overwrite.Set(tc.chainID, tc.quoteToken, tc.tradeType, tc.overwrite)
			}

			policy, err := usecase.NewCacheModePolicy(&configCopy, overwrite)
			s.Require().NoError(err)

			actual := policy.Decide(tc.chainID, tc.quoteToken, tc.tradeType, tc.protocols)
			s.Require().Equal(tc.expectedMode, actual)
		})
	}
}

func (s *RouteCachingProviderTestSuite) TestCacheModePolicy_InvalidConfig() {
	tests := []struct {
		name   string
		config domain.RouteCacheConfig
	}{
		{
			name:   "invalid default mode",
			config: domain.RouteCacheConfig{DefaultCacheMode: "brightmode"},
		},
		{
			name: "invalid chain mode",
			config: domain.RouteCacheConfig{
				DefaultCacheMode: "livemode",
				ChainCacheModes:  map[string]string{"1": "sometimes"},
			},
		},
		{
			name: "invalid chain id",
			config: domain.RouteCacheConfig{
				DefaultCacheMode: "livemode",
				ChainCacheModes:  map[string]string{"mainnet": "livemode"},
			},
		},
		{
			name: "invalid pair quote token",
			config: domain.RouteCacheConfig{
				DefaultCacheMode: "livemode",
				PairCacheModes:   []domain.PairCacheModeConfig{{ChainID: 1, QuoteToken: "usdc", Mode: "livemode"}},
			},
		},
		{
			name: "invalid dark protocol",
			config: domain.RouteCacheConfig{
				DefaultCacheMode: "livemode",
				DarkProtocols:    []string{"V4"},
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		s.Run(tc.name, func() {
			_, err := usecase.NewCacheModePolicy(&tc.config, cache.NewNoOpCacheModeOverwrite())
			s.Require().Error(err)
		})
	}
}
