package domain

import (
	"strconv"
	"strings"
)

const cacheKeySeparator = "|"

// RouteCacheKey is the logical key of a cached route set.
// The amount shape is the amount token plus the order of magnitude of the raw amount:
// routes found for 10 WETH and 5000 WETH are not interchangeable.
type RouteCacheKey struct {
	ChainID         ChainID
	TradeType       TradeType
	AmountToken     Token
	QuoteToken      Token
	Protocols       []Protocol
	AmountMagnitude int
}

// NewRouteCacheKey creates the key for a cache read request.
func NewRouteCacheKey(chainID ChainID, amount CurrencyAmount, quoteToken Token, tradeType TradeType, protocols []Protocol) RouteCacheKey {
	return RouteCacheKey{
		ChainID:         chainID,
		TradeType:       tradeType,
		AmountToken:     amount.Token,
		QuoteToken:      quoteToken,
		Protocols:       SortProtocols(protocols),
		AmountMagnitude: amount.OrderOfMagnitude(),
	}
}

// RouteCacheKeyFromCachedRoutes creates the key a cached route set is stored under.
// It matches NewRouteCacheKey for the same swap intent.
func RouteCacheKeyFromCachedRoutes(cachedRoutes CachedRoutes, amount CurrencyAmount) RouteCacheKey {
	return NewRouteCacheKey(cachedRoutes.ChainID, amount, cachedRoutes.QuoteToken(), cachedRoutes.TradeType, cachedRoutes.ProtocolsCovered)
}

// String formats the key as chainID|tradeType|amountToken|quoteToken|protocols|magnitude.
func (k RouteCacheKey) String() string {
	protocols := make([]string, 0, len(k.Protocols))
	for _, protocol := range k.Protocols {
		protocols = append(protocols, string(protocol))
	}

	return strings.Join([]string{
		k.ChainID.String(),
		k.TradeType.String(),
		strings.ToLower(k.AmountToken.Address.Hex()),
		strings.ToLower(k.QuoteToken.Address.Hex()),
		strings.Join(protocols, ","),
		strconv.Itoa(k.AmountMagnitude),
	}, cacheKeySeparator)
}
