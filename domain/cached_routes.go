package domain

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf16"

	"github.com/dexroute/rcs/domain/json"
)

const routePathHopSeparator = "->"

// RouteCandidate is a route found by route search together with
// the share of the total amount it carries.
type RouteCandidate struct {
	Route   Route
	Percent float64
}

// CachedRoute is a route stored in the route cache with the percent
// of the total amount routed through it.
type CachedRoute struct {
	Route   Route
	Percent float64
}

// NewCachedRoute creates a cached route.
func NewCachedRoute(route Route, percent float64) CachedRoute {
	return CachedRoute{Route: route, Percent: percent}
}

// Protocol returns the protocol of the underlying route.
func (c CachedRoute) Protocol() Protocol {
	return c.Route.Protocol()
}

// TokenIn returns the input token of the underlying route.
func (c CachedRoute) TokenIn() Token {
	return c.Route.Input()
}

// TokenOut returns the output token of the underlying route.
func (c CachedRoute) TokenOut() Token {
	return c.Route.Output()
}

// RoutePath returns the canonical encoding of the route hops.
// Each hop is rendered with the pool's own token ordering:
// [V3]token0/token1/fee for concentrated pools and [V2]token0/token1 for classic pools.
func (c CachedRoute) RoutePath() string {
	pools := c.Route.Pools()
	hops := make([]string, 0, len(pools))
	for _, pool := range pools {
		switch p := pool.(type) {
		case ConcentratedPool:
			hops = append(hops, fmt.Sprintf("[V3]%s/%s/%d", p.Token0.Address.Hex(), p.Token1.Address.Hex(), p.Fee))
		case ClassicPool:
			hops = append(hops, fmt.Sprintf("[V2]%s/%s", p.Token0.Address.Hex(), p.Token1.Address.Hex()))
		}
	}
	return strings.Join(hops, routePathHopSeparator)
}

// RouteID returns the 32-bit hash of RoutePath.
func (c CachedRoute) RouteID() int32 {
	return HashRoutePath(c.RoutePath())
}

// HashRoutePath computes Java's String.hashCode over the UTF-16 code units of s.
// h = 31*h + c with two's complement wraparound. Other route caching
// implementations depend on the exact value.
func HashRoutePath(s string) int32 {
	var h int32
	for _, codeUnit := range utf16.Encode([]rune(s)) {
		h = 31*h + int32(codeUnit)
	}
	return h
}

type cachedRouteJSON struct {
	Route     json.RawMessage `json:"route"`
	Percent   float64         `json:"percent"`
	RoutePath string          `json:"routePath,omitempty"`
	RouteID   int32           `json:"routeId,omitempty"`
}

// MarshalJSON implements json.Marshaler.
// The derived route path and id are included for readability and ignored on decode.
func (c CachedRoute) MarshalJSON() ([]byte, error) {
	if c.Route == nil {
		return nil, ErrEmptyRoute
	}

	route, err := marshalRoute(c.Route)
	if err != nil {
		return nil, err
	}

	return json.Marshal(cachedRouteJSON{
		Route:     route,
		Percent:   c.Percent,
		RoutePath: c.RoutePath(),
		RouteID:   c.RouteID(),
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *CachedRoute) UnmarshalJSON(data []byte) error {
	var wire cachedRouteJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	route, err := UnmarshalRoute(wire.Route)
	if err != nil {
		return err
	}

	c.Route = route
	c.Percent = wire.Percent
	return nil
}

// CachedRoutes is the cached answer for one swap intent at a given block.
// It is read-only once built. BlocksToLive is assigned through WithBlocksToLive
// right before the entry is persisted.
type CachedRoutes struct {
	Routes           []CachedRoute `json:"routes"`
	ChainID          ChainID       `json:"chainId"`
	TokenIn          Token         `json:"tokenIn"`
	TokenOut         Token         `json:"tokenOut"`
	ProtocolsCovered []Protocol    `json:"protocolsCovered"`
	BlockNumber      uint64        `json:"blockNumber"`
	TradeType        TradeType     `json:"tradeType"`
	// OriginalAmount is the raw amount of the search, kept for debugging only.
	OriginalAmount string `json:"originalAmount"`
	BlocksToLive   uint64 `json:"blocksToLive"`
}

// NewCachedRoutesFromCandidates builds a cached route set from route search candidates.
// Returns false if there are no candidates: an empty route set is never built.
func NewCachedRoutesFromCandidates(candidates []RouteCandidate, chainID ChainID, tokenIn, tokenOut Token, protocolsCovered []Protocol, blockNumber uint64, tradeType TradeType, originalAmount string) (CachedRoutes, bool) {
	if len(candidates) == 0 {
		return CachedRoutes{}, false
	}

	routes := make([]CachedRoute, 0, len(candidates))
	for _, candidate := range candidates {
		routes = append(routes, NewCachedRoute(candidate.Route, candidate.Percent))
	}

	return CachedRoutes{
		Routes:           routes,
		ChainID:          chainID,
		TokenIn:          tokenIn,
		TokenOut:         tokenOut,
		ProtocolsCovered: SortProtocols(protocolsCovered),
		BlockNumber:      blockNumber,
		TradeType:        tradeType,
		OriginalAmount:   originalAmount,
	}, true
}

// NotExpired returns true if the entry may still be served at currentBlockNumber.
// In strict mode the entry is only valid up to the block it was cached at.
// In optimistic mode it stays valid for BlocksToLive more blocks.
// A current block behind the cached block is always valid.
func (c CachedRoutes) NotExpired(currentBlockNumber uint64, optimistic bool) bool {
	if currentBlockNumber <= c.BlockNumber {
		return true
	}

	var blocksToLive uint64
	if optimistic {
		blocksToLive = c.BlocksToLive
	}

	return currentBlockNumber-c.BlockNumber <= blocksToLive
}

// WithBlocksToLive returns a copy of the route set carrying the given TTL.
func (c CachedRoutes) WithBlocksToLive(blocksToLive uint64) CachedRoutes {
	ttlBearing := c
	ttlBearing.Routes = slices.Clone(c.Routes)
	ttlBearing.ProtocolsCovered = slices.Clone(c.ProtocolsCovered)
	ttlBearing.BlocksToLive = blocksToLive
	return ttlBearing
}

// QuoteToken returns the token whose amount is quoted for this trade type.
func (c CachedRoutes) QuoteToken() Token {
	return c.TradeType.QuoteToken(c.TokenIn, c.TokenOut)
}

// RouteIDs returns the ids of the cached routes in order.
func (c CachedRoutes) RouteIDs() []int32 {
	routeIDs := make([]int32, 0, len(c.Routes))
	for _, route := range c.Routes {
		routeIDs = append(routeIDs, route.RouteID())
	}
	return routeIDs
}

// Validate checks a route set received from outside the process.
func (c CachedRoutes) Validate() error {
	if len(c.Routes) == 0 {
		return ErrNoCachedRoutes
	}

	if !c.TradeType.IsValid() {
		return InvalidTradeTypeError{TradeType: c.TradeType.String()}
	}

	if c.TokenIn.Equals(c.TokenOut) {
		return SameTokenError{Token: c.TokenIn.String()}
	}

	for _, route := range c.Routes {
		if route.Route == nil {
			return ErrEmptyRoute
		}

		if route.Percent <= 0 || route.Percent > 100 {
			return InvalidPercentError{Percent: route.Percent}
		}

		if !route.TokenIn().Equals(c.TokenIn) || !route.TokenOut().Equals(c.TokenOut) {
			return RouteTokenMismatchError{RoutePath: route.RoutePath()}
		}
	}

	return nil
}
