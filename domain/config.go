package domain

import (
	"fmt"
	"net/url"

	"github.com/ethereum/go-ethereum/common"
)

const redactedValue = "<redacted>"

// MaxBlocksToLive bounds every configured blocks to live.
// Redis expiry is derived from it, so it must keep (blocks to live + 1) * block time within a time.Duration.
const MaxBlocksToLive uint64 = 1_000_000

const (
	// MemoryStorageType keeps cached routes in a process-local LRU.
	MemoryStorageType = "memory"
	// RedisStorageType keeps cached routes in redis.
	RedisStorageType = "redis"
)

// Config defines the config for the route cache server.
type Config struct {
	// Defines the web server configuration.
	ServerAddress string `mapstructure:"server-address"`

	// Defines the logger configuration.
	LoggerFilename     string `mapstructure:"logger-filename"`
	LoggerIsProduction bool   `mapstructure:"logger-is-production"`
	LoggerLevel        string `mapstructure:"logger-level"`

	// ChainID is the chain the server caches routes for.
	ChainID ChainID `mapstructure:"chain-id"`
	// ChainRPCEndpoint is the EVM JSON-RPC endpoint used to read the latest block.
	ChainRPCEndpoint string `mapstructure:"chain-rpc-endpoint"`

	// Storage encapsulates the storage backend config.
	Storage *StorageConfig `mapstructure:"storage"`

	// RouteCache encapsulates the cache mode and TTL policy config.
	RouteCache *RouteCacheConfig `mapstructure:"route-cache"`

	// Router encapsulates the defaults of the router cache options.
	Router *RouterConfig `mapstructure:"router"`

	CORS *CORSConfig `mapstructure:"cors"`

	OTEL *OTELConfig `mapstructure:"otel"`
}

// StorageConfig defines the storage backend for cached routes.
type StorageConfig struct {
	// Type is either "memory" or "redis".
	Type string `mapstructure:"type"`

	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`

	// MemoryCacheSize is the maximum number of route sets kept by the memory storage.
	MemoryCacheSize int `mapstructure:"memory-cache-size"`

	// BlockTimeMs is the expected block time. Redis keys expire after
	// (blocks to live + 1) blocks worth of time.
	BlockTimeMs uint64 `mapstructure:"block-time-ms"`
}

// PairCacheModeConfig pins the cache mode of a quote token.
type PairCacheModeConfig struct {
	ChainID    ChainID `mapstructure:"chain-id"`
	QuoteToken string  `mapstructure:"quote-token"`
	// TradeType is optional. If empty, the rule applies to both trade types.
	TradeType string `mapstructure:"trade-type"`
	Mode      string `mapstructure:"mode"`
}

// RouteCacheConfig defines the cache mode and blocks to live policies.
type RouteCacheConfig struct {
	// Enabled is the global switch. If false, every lookup is in darkmode.
	Enabled bool `mapstructure:"enabled"`

	DefaultCacheMode string `mapstructure:"default-cache-mode"`
	// ChainCacheModes maps chain id to cache mode.
	ChainCacheModes map[string]string     `mapstructure:"chain-cache-modes"`
	PairCacheModes  []PairCacheModeConfig `mapstructure:"pair-cache-modes"`
	// DarkProtocols are protocols that are never cached on their own.
	DarkProtocols []string `mapstructure:"dark-protocols"`

	// EnableCacheModeOverwrite allows overwriting cache modes at runtime over HTTP.
	EnableCacheModeOverwrite bool `mapstructure:"enable-cache-mode-overwrite"`

	DefaultBlocksToLive uint64 `mapstructure:"default-blocks-to-live"`
	// BlocksToLiveByChain maps chain id to blocks to live.
	BlocksToLiveByChain map[string]uint64 `mapstructure:"blocks-to-live-by-chain"`
	// StableTokens are token addresses whose pairs get StableBlocksToLive.
	StableTokens       []string `mapstructure:"stable-tokens"`
	StableBlocksToLive uint64   `mapstructure:"stable-blocks-to-live"`
	// MaxHopsForExtendedTTL is the largest hop count eligible for StableBlocksToLive.
	MaxHopsForExtendedTTL int `mapstructure:"max-hops-for-extended-ttl"`
}

// RouterConfig defines the default router cache options.
type RouterConfig struct {
	UseCachedRoutes        bool `mapstructure:"use-cached-routes"`
	WriteToCachedRoutes    bool `mapstructure:"write-to-cached-routes"`
	OptimisticCachedRoutes bool `mapstructure:"optimistic-cached-routes"`
}

// CORSConfig defines the CORS headers set by the middleware.
type CORSConfig struct {
	AllowedHeaders string `mapstructure:"allowed-headers"`
	AllowedMethods string `mapstructure:"allowed-methods"`
	AllowedOrigin  string `mapstructure:"allowed-origin"`
}

// OTELConfig defines the sentry and open telemetry config.
type OTELConfig struct {
	DSN                string  `mapstructure:"dsn"`
	SampleRate         float64 `mapstructure:"sample-rate"`
	EnableTracing      bool    `mapstructure:"enable-tracing"`
	TracesSampleRate   float64 `mapstructure:"traces-sample-rate"`
	ProfilesSampleRate float64 `mapstructure:"profiles-sample-rate"`
	Environment        string  `mapstructure:"environment"`
}

// Redacted returns a copy of the config that is safe to serve publicly.
// The storage password and the sentry DSN are masked and the RPC endpoint
// is reduced to its scheme and host, since providers embed API keys in the path or query.
func (c Config) Redacted() Config {
	redacted := c
	redacted.ChainRPCEndpoint = redactURL(c.ChainRPCEndpoint)

	if c.Storage != nil {
		storage := *c.Storage
		if storage.Password != "" {
			storage.Password = redactedValue
		}
		redacted.Storage = &storage
	}

	if c.OTEL != nil {
		otelConfig := *c.OTEL
		if otelConfig.DSN != "" {
			otelConfig.DSN = redactedValue
		}
		redacted.OTEL = &otelConfig
	}

	return redacted
}

func redactURL(rawURL string) string {
	if rawURL == "" {
		return ""
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil || parsedURL.Host == "" {
		return redactedValue
	}

	if parsedURL.User == nil && (parsedURL.Path == "" || parsedURL.Path == "/") && parsedURL.RawQuery == "" {
		return rawURL
	}

	return parsedURL.Scheme + "://" + parsedURL.Host + "/" + redactedValue
}

// Validate validates the route cache config.
func (c *RouteCacheConfig) Validate() error {
	if _, err := ParseCacheMode(c.DefaultCacheMode); err != nil {
		return fmt.Errorf("default cache mode: %w", err)
	}

	for chainID, mode := range c.ChainCacheModes {
		if _, err := ParseCacheMode(mode); err != nil {
			return fmt.Errorf("cache mode for chain %s: %w", chainID, err)
		}
	}

	for _, pairMode := range c.PairCacheModes {
		if !common.IsHexAddress(pairMode.QuoteToken) {
			return fmt.Errorf("pair cache mode quote token %s is not an address", pairMode.QuoteToken)
		}

		if pairMode.TradeType != "" {
			if _, err := ParseTradeType(pairMode.TradeType); err != nil {
				return fmt.Errorf("pair cache mode for %s: %w", pairMode.QuoteToken, err)
			}
		}

		if _, err := ParseCacheMode(pairMode.Mode); err != nil {
			return fmt.Errorf("pair cache mode for %s: %w", pairMode.QuoteToken, err)
		}
	}

	for _, protocol := range c.DarkProtocols {
		if _, err := ParseProtocol(protocol); err != nil {
			return fmt.Errorf("dark protocols: %w", err)
		}
	}

	if err := validateBlocksToLive("default blocks to live", c.DefaultBlocksToLive); err != nil {
		return err
	}

	if err := validateBlocksToLive("stable blocks to live", c.StableBlocksToLive); err != nil {
		return err
	}

	for chainID, blocksToLive := range c.BlocksToLiveByChain {
		if err := validateBlocksToLive("blocks to live for chain "+chainID, blocksToLive); err != nil {
			return err
		}
	}

	for _, stableToken := range c.StableTokens {
		if !common.IsHexAddress(stableToken) {
			return fmt.Errorf("stable token %s is not an address", stableToken)
		}
	}

	return nil
}

func validateBlocksToLive(name string, blocksToLive uint64) error {
	if blocksToLive > MaxBlocksToLive {
		return fmt.Errorf("%s (%d) must not exceed %d", name, blocksToLive, MaxBlocksToLive)
	}
	return nil
}

// Validate validates the storage config.
func (c *StorageConfig) Validate() error {
	switch c.Type {
	case MemoryStorageType:
		if c.MemoryCacheSize <= 0 {
			return fmt.Errorf("memory cache size must be positive, was (%d)", c.MemoryCacheSize)
		}
	case RedisStorageType:
		if c.BlockTimeMs == 0 {
			return fmt.Errorf("block time must be set for redis storage")
		}
	default:
		return fmt.Errorf("unknown storage type (%s), must be %s or %s", c.Type, MemoryStorageType, RedisStorageType)
	}

	return nil
}
