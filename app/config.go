package main

import (
	"fmt"
	"maps"
	"strings"

	"github.com/spf13/viper"

	"github.com/dexroute/rcs/domain"
)

const envPrefix = "RCS"

// DefaultConfig defines the default config for the route cache server.
var DefaultConfig = domain.Config{
	ServerAddress: ":9092",

	LoggerFilename:     "rcs.log",
	LoggerIsProduction: true,
	LoggerLevel:        "info",

	ChainID:          1,
	ChainRPCEndpoint: "http://localhost:8545",

	Storage: &domain.StorageConfig{
		Type:            domain.MemoryStorageType,
		Host:            "localhost",
		Port:            "6379",
		MemoryCacheSize: 10_000,
		BlockTimeMs:     12_000, // Ethereum mainnet slot time.
	},

	RouteCache: &domain.RouteCacheConfig{
		Enabled:             true,
		DefaultCacheMode:    string(domain.CacheModeDarkmode),
		ChainCacheModes:     map[string]string{},
		DefaultBlocksToLive: 0,
		BlocksToLiveByChain: map[string]uint64{
			"1":     2,
			"10":    60,
			"137":   30,
			"42161": 240,
		},
		StableBlocksToLive:    0,
		MaxHopsForExtendedTTL: 1,
	},

	Router: &domain.RouterConfig{
		UseCachedRoutes:        true,
		WriteToCachedRoutes:    true,
		OptimisticCachedRoutes: false,
	},

	CORS: &domain.CORSConfig{
		AllowedHeaders: "Origin, Accept, Content-Type, X-Requested-With, Authorization",
		AllowedMethods: "HEAD, GET, POST, DELETE",
		AllowedOrigin:  "*",
	},

	OTEL: &domain.OTELConfig{
		Environment: "development",
	},
}

// loadConfig reads the config file on top of DefaultConfig.
// RCS_ prefixed environment variables override keys present in the file,
// nested keys use underscores, e.g. RCS_STORAGE_TYPE overrides storage.type.
func loadConfig(v *viper.Viper, configPath string) (domain.Config, error) {
	v.SetConfigFile(configPath)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return domain.Config{}, fmt.Errorf("reading config %s: %w", configPath, err)
	}

	config := newDefaultConfig()
	if err := v.Unmarshal(&config); err != nil {
		return domain.Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := config.Storage.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("storage config: %w", err)
	}

	if err := config.RouteCache.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("route cache config: %w", err)
	}

	return config, nil
}

// newDefaultConfig returns a copy of DefaultConfig that does not share nested configs with it.
func newDefaultConfig() domain.Config {
	config := DefaultConfig

	storage := *DefaultConfig.Storage
	config.Storage = &storage

	routeCache := *DefaultConfig.RouteCache
	routeCache.ChainCacheModes = maps.Clone(DefaultConfig.RouteCache.ChainCacheModes)
	routeCache.BlocksToLiveByChain = maps.Clone(DefaultConfig.RouteCache.BlocksToLiveByChain)
	config.RouteCache = &routeCache

	router := *DefaultConfig.Router
	config.Router = &router

	cors := *DefaultConfig.CORS
	config.CORS = &cors

	otelConfig := *DefaultConfig.OTEL
	config.OTEL = &otelConfig

	return config
}
