package cache

import (
	"strings"

	"github.com/dexroute/rcs/domain"
)

const overwriteKeySeparator = "|"

// CacheModeOverwrite holds cache modes set at runtime for a given
// chain, quote token and trade type. They take precedence over the configured modes.
type CacheModeOverwrite struct {
	cache *Cache
}

// NewCacheModeOverwrite creates a new cache mode overwrite container.
func NewCacheModeOverwrite() *CacheModeOverwrite {
	return &CacheModeOverwrite{
		cache: New(),
	}
}

// NewNoOpCacheModeOverwrite creates a new cache mode overwrite container that does nothing.
func NewNoOpCacheModeOverwrite() *CacheModeOverwrite {
	return &CacheModeOverwrite{}
}

// CreateCacheModeOverwrite creates a new cache mode overwrite container depending on the value of isOverwriteEnabled.
// If isOverwriteEnabled is false, it will return a no-op container.
func CreateCacheModeOverwrite(isOverwriteEnabled bool) *CacheModeOverwrite {
	if isOverwriteEnabled {
		return NewCacheModeOverwrite()
	}
	return NewNoOpCacheModeOverwrite()
}

// IsEnabled returns true if overwrites are kept.
func (o *CacheModeOverwrite) IsEnabled() bool {
	return o.cache != nil
}

// Set overwrites the cache mode for the given chain, quote token and trade type.
// If the overwrite is not enabled, it will silently ignore the call.
func (o *CacheModeOverwrite) Set(chainID domain.ChainID, quoteToken domain.Token, tradeType domain.TradeType, mode domain.CacheMode) {
	if o.cache == nil {
		return
	}

	o.cache.Set(formatOverwriteKey(chainID, quoteToken, tradeType), mode)
}

// Get returns the overwritten cache mode. Returns false if there is none.
// If the overwrite is not enabled, it will silently ignore the call.
func (o *CacheModeOverwrite) Get(chainID domain.ChainID, quoteToken domain.Token, tradeType domain.TradeType) (domain.CacheMode, bool) {
	if o.cache == nil {
		return "", false
	}

	value, ok := o.cache.Get(formatOverwriteKey(chainID, quoteToken, tradeType))
	if !ok {
		return "", false
	}

	mode, ok := value.(domain.CacheMode)
	return mode, ok
}

// Delete removes the overwrite.
// If the overwrite is not enabled, it will silently ignore the call.
func (o *CacheModeOverwrite) Delete(chainID domain.ChainID, quoteToken domain.Token, tradeType domain.TradeType) {
	if o.cache == nil {
		return
	}

	o.cache.Delete(formatOverwriteKey(chainID, quoteToken, tradeType))
}

// Len returns the number of active overwrites.
func (o *CacheModeOverwrite) Len() int {
	if o.cache == nil {
		return 0
	}
	return o.cache.Len()
}

func formatOverwriteKey(chainID domain.ChainID, quoteToken domain.Token, tradeType domain.TradeType) string {
	return strings.Join([]string{chainID.String(), strings.ToLower(quoteToken.Address.Hex()), tradeType.String()}, overwriteKeySeparator)
}
