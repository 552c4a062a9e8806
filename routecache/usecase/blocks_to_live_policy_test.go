package usecase_test

import (
	"github.com/dexroute/rcs/domain"
	"github.com/dexroute/rcs/routecache/usecase"
)

func (s *RouteCachingProviderTestSuite) TestBlocksToLivePolicy() {
	config := &domain.RouteCacheConfig{
		DefaultBlocksToLive: 2,
		BlocksToLiveByChain: map[string]uint64{
			"137": 8,
		},
		StableTokens:          []string{USDC.Address.Hex(), USDT.Address.Hex(), DAI.Address.Hex()},
		StableBlocksToLive:    30,
		MaxHopsForExtendedTTL: 2,
	}

	policy, err := usecase.NewBlocksToLivePolicy(config)
	s.Require().NoError(err)

	usdcUsdtPool := domain.NewConcentratedPool(USDC, USDT, domain.FeeLowest)
	usdtDaiPool := domain.NewConcentratedPool(USDT, DAI, domain.FeeLowest)
	daiUsdcPool := domain.NewClassicPool(DAI, USDC)

	buildCachedRoutes := func(chainID domain.ChainID, route domain.Route) domain.CachedRoutes {
		cachedRoutes, ok := domain.NewCachedRoutesFromCandidates([]domain.RouteCandidate{{Route: route, Percent: 100}}, chainID, route.Input(), route.Output(), []domain.Protocol{route.Protocol()}, defaultBlockNumber, domain.TradeTypeExactInput, "1000000")
		s.Require().True(ok)
		return cachedRoutes
	}

	directStable := s.MustNewConcentratedRoute([]domain.ConcentratedPool{usdcUsdtPool}, USDC, USDT)
	twoHopStable := s.MustNewConcentratedRoute([]domain.ConcentratedPool{usdcUsdtPool, usdtDaiPool}, USDC, DAI)

	threeHopStable, err := domain.NewMixedRoute([]domain.Pool{usdcUsdtPool, usdtDaiPool, daiUsdcPool}, USDC, USDC)
	s.Require().NoError(err)

	tests := []struct {
		name                 string
		cachedRoutes         domain.CachedRoutes
		expectedBlocksToLive uint64
	}{
		{
			name:                 "volatile pair uses default",
			cachedRoutes:         s.DefaultCachedRoutes(defaultBlockNumber),
			expectedBlocksToLive: 2,
		},
		{
			name:                 "volatile pair uses chain override",
			cachedRoutes:         buildCachedRoutes(polygonChainID, s.DefaultRoute()),
			expectedBlocksToLive: 8,
		},
		{
			name:                 "stable pair single hop",
			cachedRoutes:         buildCachedRoutes(defaultChainID, directStable),
			expectedBlocksToLive: 30,
		},
		{
			name:                 "stable pair at hop limit",
			cachedRoutes:         buildCachedRoutes(defaultChainID, twoHopStable),
			expectedBlocksToLive: 30,
		},
		{
			name:                 "stable pair past hop limit",
			cachedRoutes:         buildCachedRoutes(defaultChainID, threeHopStable),
			expectedBlocksToLive: 2,
		},
	}

	for _, tc := range tests {
		tc := tc
		s.Run(tc.name, func() {
			s.Require().Equal(tc.expectedBlocksToLive, policy.BlocksToLive(tc.cachedRoutes))
		})
	}
}
