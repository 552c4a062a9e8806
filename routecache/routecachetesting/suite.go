package routecachetesting

import (
	"github.com/stretchr/testify/suite"

	"github.com/dexroute/rcs/domain"
)

// RouteCacheTestHelper is embedded by the route cache test suites.
type RouteCacheTestHelper struct {
	suite.Suite
}

const (
	DefaultChainID domain.ChainID = 1

	DefaultBlockNumber = uint64(100)
)

var (
	WETH = domain.NewToken(DefaultChainID, "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2", 18, "WETH")
	USDC = domain.NewToken(DefaultChainID, "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", 6, "USDC")
	USDT = domain.NewToken(DefaultChainID, "0xdAC17F958D2ee523a2206206994597C13D831ec7", 6, "USDT")
	DAI  = domain.NewToken(DefaultChainID, "0x6B175474E89094C44Da98b954EedeAC495271d0F", 18, "DAI")

	// One WETH.
	DefaultAmount = domain.NewCurrencyAmount(WETH, 1_000_000_000_000_000_000)

	DefaultProtocols = []domain.Protocol{domain.ProtocolV3}
)

// DefaultRouteCacheConfig returns a config with the route cache enabled in livemode.
func DefaultRouteCacheConfig() *domain.RouteCacheConfig {
	return &domain.RouteCacheConfig{
		Enabled:                  true,
		DefaultCacheMode:         string(domain.CacheModeLivemode),
		EnableCacheModeOverwrite: true,
		DefaultBlocksToLive:      10,
	}
}

// MustNewConcentratedRoute creates a concentrated route, panicking on error.
func (s *RouteCacheTestHelper) MustNewConcentratedRoute(pools []domain.ConcentratedPool, input, output domain.Token) domain.Route {
	route, err := domain.NewConcentratedRoute(pools, input, output)
	s.Require().NoError(err)
	return route
}

// MustNewClassicRoute creates a classic route, panicking on error.
func (s *RouteCacheTestHelper) MustNewClassicRoute(pools []domain.ClassicPool, input, output domain.Token) domain.Route {
	route, err := domain.NewClassicRoute(pools, input, output)
	s.Require().NoError(err)
	return route
}

// DefaultRoute returns the single hop WETH/USDC 0.05% route.
func (s *RouteCacheTestHelper) DefaultRoute() domain.Route {
	return s.MustNewConcentratedRoute([]domain.ConcentratedPool{domain.NewConcentratedPool(WETH, USDC, domain.FeeLow)}, WETH, USDC)
}

// DefaultCandidates returns a single candidate carrying the whole amount over DefaultRoute.
func (s *RouteCacheTestHelper) DefaultCandidates() []domain.RouteCandidate {
	return []domain.RouteCandidate{{Route: s.DefaultRoute(), Percent: 100}}
}

// DefaultCachedRoutes returns the WETH to USDC exact input route set cached at blockNumber.
func (s *RouteCacheTestHelper) DefaultCachedRoutes(blockNumber uint64) domain.CachedRoutes {
	cachedRoutes, ok := domain.NewCachedRoutesFromCandidates(s.DefaultCandidates(), DefaultChainID, WETH, USDC, DefaultProtocols, blockNumber, domain.TradeTypeExactInput, DefaultAmount.String())
	s.Require().True(ok)
	return cachedRoutes
}
