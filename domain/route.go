package domain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dexroute/rcs/domain/json"
)

// Protocol is the liquidity protocol a route goes through.
type Protocol string

const (
	// ProtocolV2 is the classic constant product protocol.
	ProtocolV2 Protocol = "V2"
	// ProtocolV3 is the concentrated liquidity protocol.
	ProtocolV3 Protocol = "V3"
	// ProtocolMixed is a route combining V2 and V3 pools.
	ProtocolMixed Protocol = "MIXED"
)

// ParseProtocol parses a protocol tag, ignoring case.
func ParseProtocol(protocolStr string) (Protocol, error) {
	switch Protocol(strings.ToUpper(strings.TrimSpace(protocolStr))) {
	case ProtocolV2:
		return ProtocolV2, nil
	case ProtocolV3:
		return ProtocolV3, nil
	case ProtocolMixed:
		return ProtocolMixed, nil
	default:
		return "", InvalidProtocolError{Protocol: protocolStr}
	}
}

// SortProtocols returns a sorted copy of the given protocols with duplicates removed.
func SortProtocols(protocols []Protocol) []Protocol {
	sorted := slices.Clone(protocols)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}

// FeeAmount is a concentrated liquidity fee tier in hundredths of a bip.
type FeeAmount uint32

const (
	FeeLowest FeeAmount = 100
	FeeLow    FeeAmount = 500
	FeeMedium FeeAmount = 3000
	FeeHigh   FeeAmount = 10000
)

// Pool is a single hop of a route.
type Pool interface {
	// Protocol returns the protocol of the pool. V2 or V3.
	Protocol() Protocol
	// Tokens returns the pool tokens in the pool's own ordering.
	Tokens() (token0 Token, token1 Token)
}

// ClassicPool is a constant product pool.
type ClassicPool struct {
	Token0 Token
	Token1 Token
}

// ConcentratedPool is a concentrated liquidity pool.
type ConcentratedPool struct {
	Token0 Token
	Token1 Token
	Fee    FeeAmount
}

var (
	_ Pool = ClassicPool{}
	_ Pool = ConcentratedPool{}
)

// NewClassicPool creates a classic pool, ordering the tokens by address.
func NewClassicPool(tokenA, tokenB Token) ClassicPool {
	if tokenB.SortsBefore(tokenA) {
		tokenA, tokenB = tokenB, tokenA
	}
	return ClassicPool{Token0: tokenA, Token1: tokenB}
}

// NewConcentratedPool creates a concentrated pool, ordering the tokens by address.
func NewConcentratedPool(tokenA, tokenB Token, fee FeeAmount) ConcentratedPool {
	if tokenB.SortsBefore(tokenA) {
		tokenA, tokenB = tokenB, tokenA
	}
	return ConcentratedPool{Token0: tokenA, Token1: tokenB, Fee: fee}
}

// Protocol implements Pool.
func (ClassicPool) Protocol() Protocol { return ProtocolV2 }

// Tokens implements Pool.
func (p ClassicPool) Tokens() (Token, Token) { return p.Token0, p.Token1 }

// Protocol implements Pool.
func (ConcentratedPool) Protocol() Protocol { return ProtocolV3 }

// Tokens implements Pool.
func (p ConcentratedPool) Tokens() (Token, Token) { return p.Token0, p.Token1 }

// Route is a multi-hop path through liquidity pools produced by route search.
type Route interface {
	Protocol() Protocol
	Input() Token
	Output() Token
	// Pools returns the hops in swap order.
	Pools() []Pool
}

// ClassicRoute is a route made only of classic pools.
type ClassicRoute struct {
	pools  []ClassicPool
	input  Token
	output Token
}

// ConcentratedRoute is a route made only of concentrated pools.
type ConcentratedRoute struct {
	pools  []ConcentratedPool
	input  Token
	output Token
}

// MixedRoute is a route made of classic and concentrated pools.
type MixedRoute struct {
	pools  []Pool
	input  Token
	output Token
}

var (
	_ Route = ClassicRoute{}
	_ Route = ConcentratedRoute{}
	_ Route = MixedRoute{}
)

// NewClassicRoute creates a classic route.
// Returns error if the pools do not connect input to output.
func NewClassicRoute(pools []ClassicPool, input, output Token) (ClassicRoute, error) {
	hops := make([]Pool, 0, len(pools))
	for _, pool := range pools {
		hops = append(hops, pool)
	}
	if err := validateRoutePath(hops, input, output); err != nil {
		return ClassicRoute{}, err
	}
	return ClassicRoute{pools: slices.Clone(pools), input: input, output: output}, nil
}

// NewConcentratedRoute creates a concentrated route.
// Returns error if the pools do not connect input to output.
func NewConcentratedRoute(pools []ConcentratedPool, input, output Token) (ConcentratedRoute, error) {
	hops := make([]Pool, 0, len(pools))
	for _, pool := range pools {
		hops = append(hops, pool)
	}
	if err := validateRoutePath(hops, input, output); err != nil {
		return ConcentratedRoute{}, err
	}
	return ConcentratedRoute{pools: slices.Clone(pools), input: input, output: output}, nil
}

// NewMixedRoute creates a mixed route.
// Returns error if the pools do not connect input to output.
func NewMixedRoute(pools []Pool, input, output Token) (MixedRoute, error) {
	if err := validateRoutePath(pools, input, output); err != nil {
		return MixedRoute{}, err
	}
	return MixedRoute{pools: slices.Clone(pools), input: input, output: output}, nil
}

// Protocol implements Route.
func (ClassicRoute) Protocol() Protocol { return ProtocolV2 }

// Input implements Route.
func (r ClassicRoute) Input() Token { return r.input }

// Output implements Route.
func (r ClassicRoute) Output() Token { return r.output }

// Pools implements Route.
func (r ClassicRoute) Pools() []Pool {
	pools := make([]Pool, 0, len(r.pools))
	for _, pool := range r.pools {
		pools = append(pools, pool)
	}
	return pools
}

// Protocol implements Route.
func (ConcentratedRoute) Protocol() Protocol { return ProtocolV3 }

// Input implements Route.
func (r ConcentratedRoute) Input() Token { return r.input }

// Output implements Route.
func (r ConcentratedRoute) Output() Token { return r.output }

// Pools implements Route.
func (r ConcentratedRoute) Pools() []Pool {
	pools := make([]Pool, 0, len(r.pools))
	for _, pool := range r.pools {
		pools = append(pools, pool)
	}
	return pools
}

// Protocol implements Route.
func (MixedRoute) Protocol() Protocol { return ProtocolMixed }

// Input implements Route.
func (r MixedRoute) Input() Token { return r.input }

// Output implements Route.
func (r MixedRoute) Output() Token { return r.output }

// Pools implements Route.
func (r MixedRoute) Pools() []Pool { return slices.Clone(r.pools) }

// MarshalJSON implements json.Marshaler.
func (r ClassicRoute) MarshalJSON() ([]byte, error) { return marshalRoute(r) }

// MarshalJSON implements json.Marshaler.
func (r ConcentratedRoute) MarshalJSON() ([]byte, error) { return marshalRoute(r) }

// MarshalJSON implements json.Marshaler.
func (r MixedRoute) MarshalJSON() ([]byte, error) { return marshalRoute(r) }

// validateRoutePath walks the pools from input and checks that every hop
// shares a token with the previous one and that the walk ends at output.
func validateRoutePath(pools []Pool, input, output Token) error {
	if len(pools) == 0 {
		return ErrEmptyRoute
	}

	current := input
	for i, pool := range pools {
		token0, token1 := pool.Tokens()
		switch {
		case current.Equals(token0):
			current = token1
		case current.Equals(token1):
			current = token0
		default:
			return RouteDisconnectedError{HopIndex: i, Token: current.String()}
		}
	}

	if !current.Equals(output) {
		return RouteDisconnectedError{HopIndex: len(pools), Token: current.String()}
	}

	return nil
}

// routeJSON is the tagged wire representation of every route variant.
type routeJSON struct {
	Protocol Protocol   `json:"protocol"`
	Input    Token      `json:"input"`
	Output   Token      `json:"output"`
	Pools    []poolJSON `json:"pools"`
}

type poolJSON struct {
	Protocol Protocol  `json:"protocol"`
	Token0   Token     `json:"token0"`
	Token1   Token     `json:"token1"`
	Fee      FeeAmount `json:"fee,omitempty"`
}

func marshalRoute(route Route) ([]byte, error) {
	pools := route.Pools()
	wire := routeJSON{
		Protocol: route.Protocol(),
		Input:    route.Input(),
		Output:   route.Output(),
		Pools:    make([]poolJSON, 0, len(pools)),
	}

	for _, pool := range pools {
		token0, token1 := pool.Tokens()
		wirePool := poolJSON{Protocol: pool.Protocol(), Token0: token0, Token1: token1}
		if concentrated, ok := pool.(ConcentratedPool); ok {
			wirePool.Fee = concentrated.Fee
		}
		wire.Pools = append(wire.Pools, wirePool)
	}

	return json.Marshal(wire)
}

// UnmarshalRoute decodes a route previously encoded with its MarshalJSON method.
func UnmarshalRoute(data []byte) (Route, error) {
	var wire routeJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, err
	}

	pools := make([]Pool, 0, len(wire.Pools))
	for _, wirePool := range wire.Pools {
		switch wirePool.Protocol {
		case ProtocolV2:
			pools = append(pools, ClassicPool{Token0: wirePool.Token0, Token1: wirePool.Token1})
		case ProtocolV3:
			pools = append(pools, ConcentratedPool{Token0: wirePool.Token0, Token1: wirePool.Token1, Fee: wirePool.Fee})
		default:
			return nil, InvalidProtocolError{Protocol: string(wirePool.Protocol)}
		}
	}

	switch wire.Protocol {
	case ProtocolV2:
		classicPools := make([]ClassicPool, 0, len(pools))
		for _, pool := range pools {
			classicPool, ok := pool.(ClassicPool)
			if !ok {
				return nil, fmt.Errorf("%s route contains a %s pool", wire.Protocol, pool.Protocol())
			}
			classicPools = append(classicPools, classicPool)
		}
		return NewClassicRoute(classicPools, wire.Input, wire.Output)
	case ProtocolV3:
		concentratedPools := make([]ConcentratedPool, 0, len(pools))
		for _, pool := range pools {
			concentratedPool, ok := pool.(ConcentratedPool)
			if !ok {
				return nil, fmt.Errorf("%s route contains a %s pool", wire.Protocol, pool.Protocol())
			}
			concentratedPools = append(concentratedPools, concentratedPool)
		}
		return NewConcentratedRoute(concentratedPools, wire.Input, wire.Output)
	case ProtocolMixed:
		return NewMixedRoute(pools, wire.Input, wire.Output)
	default:
		return nil, InvalidProtocolError{Protocol: string(wire.Protocol)}
	}
}
