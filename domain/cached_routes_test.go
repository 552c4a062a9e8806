package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dexroute/rcs/domain"
	"github.com/dexroute/rcs/domain/json"
)

const chainID domain.ChainID = 1

var (
	WETH = domain.NewToken(chainID, "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2", 18, "WETH")
	USDC = domain.NewToken(chainID, "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", 6, "USDC")
	DAI  = domain.NewToken(chainID, "0x6B175474E89094C44Da98b954EedeAC495271d0F", 18, "DAI")

	oneWETH = domain.NewCurrencyAmount(WETH, 1_000_000_000_000_000_000)
)

func mustConcentratedRoute(t *testing.T, pools []domain.ConcentratedPool, input, output domain.Token) domain.Route {
	route, err := domain.NewConcentratedRoute(pools, input, output)
	require.NoError(t, err)
	return route
}

func mustMixedRoute(t *testing.T, pools []domain.Pool, input, output domain.Token) domain.Route {
	route, err := domain.NewMixedRoute(pools, input, output)
	require.NoError(t, err)
	return route
}

func wethUSDCRoute(t *testing.T) domain.Route {
	return mustConcentratedRoute(t, []domain.ConcentratedPool{domain.NewConcentratedPool(WETH, USDC, domain.FeeLow)}, WETH, USDC)
}

func wethDAIUSDCRoute(t *testing.T) domain.Route {
	return mustMixedRoute(t, []domain.Pool{
		domain.NewClassicPool(WETH, DAI),
		domain.NewConcentratedPool(DAI, USDC, domain.FeeLowest),
	}, WETH, USDC)
}

func cachedRoutesAt(t *testing.T, blockNumber uint64) domain.CachedRoutes {
	cachedRoutes, ok := domain.NewCachedRoutesFromCandidates(
		[]domain.RouteCandidate{
			{Route: wethUSDCRoute(t), Percent: 60},
			{Route: wethDAIUSDCRoute(t), Percent: 40},
		},
		chainID, WETH, USDC,
		[]domain.Protocol{domain.ProtocolV3, domain.ProtocolMixed, domain.ProtocolV3},
		blockNumber, domain.TradeTypeExactInput, oneWETH.String(),
	)
	require.True(t, ok)
	return cachedRoutes
}

func TestHashRoutePath(t *testing.T) {
	tests := []struct {
		input    string
		expected int32
	}{
		{input: "", expected: 0},
		{input: "a", expected: 97},
		{input: "hello", expected: 99162322},
		{input: "[V2]0xA/0xB", expected: 1807566110},
		// Wraps to the smallest int32.
		{input: "polygenelubricants", expected: -2147483648},
		// Characters outside the BMP hash as two UTF-16 code units.
		{input: "é€𝄞", expected: 16751501},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			require.Equal(t, tc.expected, domain.HashRoutePath(tc.input))
		})
	}
}

func TestCachedRoute_RoutePath(t *testing.T) {
	tests := []struct {
		name       string
		route      domain.Route
		expectedID int32
		expected   string
	}{
		{
			name:       "single concentrated hop uses pool token order",
			route:      wethUSDCRoute(t),
			expected:   "[V3]0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48/0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2/500",
			expectedID: 1707629777,
		},
		{
			name:       "mixed route",
			route:      wethDAIUSDCRoute(t),
			expected:   "[V2]0x6B175474E89094C44Da98b954EedeAC495271d0F/0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2->[V3]0x6B175474E89094C44Da98b954EedeAC495271d0F/0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48/100",
			expectedID: 346478769,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cachedRoute := domain.NewCachedRoute(tc.route, 100)

			require.Equal(t, tc.expected, cachedRoute.RoutePath())
			require.Equal(t, tc.expectedID, cachedRoute.RouteID())
			require.Equal(t, domain.HashRoutePath(tc.expected), cachedRoute.RouteID())
		})
	}
}

func TestCachedRoute_Accessors(t *testing.T) {
	cachedRoute := domain.NewCachedRoute(wethDAIUSDCRoute(t), 40)

	require.Equal(t, domain.ProtocolMixed, cachedRoute.Protocol())
	require.True(t, cachedRoute.TokenIn().Equals(WETH))
	require.True(t, cachedRoute.TokenOut().Equals(USDC))
}

func TestNewCachedRoutesFromCandidates(t *testing.T) {
	cachedRoutes := cachedRoutesAt(t, 100)

	require.Len(t, cachedRoutes.Routes, 2)
	require.Equal(t, []domain.Protocol{domain.ProtocolMixed, domain.ProtocolV3}, cachedRoutes.ProtocolsCovered)
	require.Equal(t, uint64(100), cachedRoutes.BlockNumber)
	require.Zero(t, cachedRoutes.BlocksToLive)
	require.Equal(t, "1000000000000000000", cachedRoutes.OriginalAmount)
	require.True(t, cachedRoutes.QuoteToken().Equals(USDC))

	_, ok := domain.NewCachedRoutesFromCandidates(nil, chainID, WETH, USDC, nil, 100, domain.TradeTypeExactInput, "1")
	require.False(t, ok)
}

func TestCachedRoutes_NotExpired(t *testing.T) {
	cachedRoutes := cachedRoutesAt(t, 100).WithBlocksToLive(5)

	tests := []struct {
		name         string
		currentBlock uint64
		optimistic   bool
		expected     bool
	}{
		{name: "strict same block", currentBlock: 100, expected: true},
		{name: "strict earlier block", currentBlock: 99, expected: true},
		{name: "strict next block", currentBlock: 101, expected: false},
		{name: "optimistic same block", currentBlock: 100, optimistic: true, expected: true},
		{name: "optimistic last valid block", currentBlock: 105, optimistic: true, expected: true},
		{name: "optimistic expired", currentBlock: 106, optimistic: true, expected: false},
		{name: "optimistic earlier block", currentBlock: 50, optimistic: true, expected: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, cachedRoutes.NotExpired(tc.currentBlock, tc.optimistic))
		})
	}
}

func TestCachedRoutes_NotExpired_ZeroBlocksToLive(t *testing.T) {
	cachedRoutes := cachedRoutesAt(t, 100)

	// Without a TTL optimistic and strict reads agree.
	for _, currentBlock := range []uint64{99, 100, 101} {
		require.Equal(t, cachedRoutes.NotExpired(currentBlock, false), cachedRoutes.NotExpired(currentBlock, true))
	}
}

func TestCachedRoutes_NotExpired_LargeBlocksToLive(t *testing.T) {
	cachedRoutes := cachedRoutesAt(t, 100).WithBlocksToLive(math.MaxUint64)

	require.True(t, cachedRoutes.NotExpired(1_000_000, true))
	require.False(t, cachedRoutes.NotExpired(1_000_000, false))
	require.True(t, cachedRoutes.NotExpired(math.MaxUint64, true))
}

func TestCachedRoutes_WithBlocksToLive(t *testing.T) {
	original := cachedRoutesAt(t, 100)

	withTTL := original.WithBlocksToLive(10)
	withTTL.Routes[0].Percent = 1
	withTTL.ProtocolsCovered[0] = domain.ProtocolV2

	require.Equal(t, uint64(10), withTTL.BlocksToLive)
	require.Zero(t, original.BlocksToLive)
	require.Equal(t, float64(60), original.Routes[0].Percent)
	require.Equal(t, domain.ProtocolMixed, original.ProtocolsCovered[0])
}

func TestCachedRoutes_QuoteToken(t *testing.T) {
	cachedRoutes := cachedRoutesAt(t, 100)
	cachedRoutes.TradeType = domain.TradeTypeExactOutput

	require.True(t, cachedRoutes.QuoteToken().Equals(WETH))
}

func TestCachedRoutes_JSON(t *testing.T) {
	cachedRoutes := cachedRoutesAt(t, 100).WithBlocksToLive(3)

	bz, err := json.Marshal(cachedRoutes)
	require.NoError(t, err)

	var decoded domain.CachedRoutes
	require.NoError(t, json.Unmarshal(bz, &decoded))

	require.Equal(t, cachedRoutes.RouteIDs(), decoded.RouteIDs())
	require.Equal(t, cachedRoutes.BlocksToLive, decoded.BlocksToLive)
	require.Equal(t, cachedRoutes.ProtocolsCovered, decoded.ProtocolsCovered)
	require.Equal(t, cachedRoutes.TradeType, decoded.TradeType)
	require.Equal(t, domain.ProtocolMixed, decoded.Routes[1].Protocol())
	require.Equal(t, float64(40), decoded.Routes[1].Percent)

	// The derived route path and id are rendered.
	var wire struct {
		Routes []struct {
			RoutePath string `json:"routePath"`
			RouteID   int32  `json:"routeId"`
		} `json:"routes"`
		TradeType string `json:"tradeType"`
	}
	require.NoError(t, json.Unmarshal(bz, &wire))
	require.Equal(t, "EXACT_INPUT", wire.TradeType)
	require.Equal(t, cachedRoutes.Routes[0].RoutePath(), wire.Routes[0].RoutePath)
	require.Equal(t, int32(1707629777), wire.Routes[0].RouteID)
}

func TestCachedRoutes_Validate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(c *domain.CachedRoutes)
		expectedErr error
	}{
		{
			name:   "valid",
			modify: func(c *domain.CachedRoutes) {},
		},
		{
			name:        "no routes",
			modify:      func(c *domain.CachedRoutes) { c.Routes = nil },
			expectedErr: domain.ErrNoCachedRoutes,
		},
		{
			name:        "invalid trade type",
			modify:      func(c *domain.CachedRoutes) { c.TradeType = 7 },
			expectedErr: domain.InvalidTradeTypeError{TradeType: "UNKNOWN"},
		},
		{
			name:        "same token in and out",
			modify:      func(c *domain.CachedRoutes) { c.TokenOut = WETH },
			expectedErr: domain.SameTokenError{Token: WETH.String()},
		},
		{
			name:        "percent out of range",
			modify:      func(c *domain.CachedRoutes) { c.Routes[0].Percent = 0 },
			expectedErr: domain.InvalidPercentError{Percent: 0},
		},
		{
			name: "route does not swap the route set tokens",
			modify: func(c *domain.CachedRoutes) {
				c.TokenOut = DAI
			},
			expectedErr: domain.RouteTokenMismatchError{RoutePath: "[V3]0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48/0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2/500"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cachedRoutes := cachedRoutesAt(t, 100)
			tc.modify(&cachedRoutes)

			err := cachedRoutes.Validate()
			if tc.expectedErr == nil {
				require.NoError(t, err)
				return
			}
			require.Equal(t, tc.expectedErr, err)
		})
	}
}
