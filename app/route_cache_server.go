package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/dexroute/rcs/chain"
	deliveryhttp "github.com/dexroute/rcs/delivery/http"
	"github.com/dexroute/rcs/domain"
	"github.com/dexroute/rcs/domain/mvc"
	"github.com/dexroute/rcs/log"
	"github.com/dexroute/rcs/middleware"
	redisrepo "github.com/dexroute/rcs/repository/redis"
	routecachehttpdelivery "github.com/dexroute/rcs/routecache/delivery/http"
	routecachememoryrepo "github.com/dexroute/rcs/routecache/repository/memory"
	routecacheredisrepo "github.com/dexroute/rcs/routecache/repository/redis"
	routecacheusecase "github.com/dexroute/rcs/routecache/usecase"
	routerusecase "github.com/dexroute/rcs/router/usecase"
	systemhttpdelivery "github.com/dexroute/rcs/system/delivery/http"
)

// RouteCacheServer defines an interface for the route cache server (RCS).
// It owns the route cache storage and exposes the route cache over HTTP.
// Routing engines embedding the server build their router on top of its route cache.
type RouteCacheServer interface {
	GetRouteCacheRepository() mvc.RouteCacheRepository
	GetRouteCacheUsecase() mvc.RouteCacheUsecase
	GetLogger() log.Logger
	// NewRouter creates a router that reads and writes the server route cache around the given route search.
	NewRouter(routeSearcher mvc.RouteSearcher) mvc.RouterUsecase
	Shutdown(context.Context) error
	Start(context.Context) error
}

type routeCacheServer struct {
	routeCacheRepository mvc.RouteCacheRepository
	routeCacheUsecase    mvc.RouteCacheUsecase
	chainClient          chain.Client
	redisClient          *redis.Client
	routerConfig         domain.RouterConfig
	e                    *echo.Echo
	address              string
	logger               log.Logger

	routersMu sync.Mutex
	routers   []mvc.RouterUsecase
}

const tracerName = "rcs"

// GetRouteCacheRepository implements RouteCacheServer.
func (s *routeCacheServer) GetRouteCacheRepository() mvc.RouteCacheRepository {
	return s.routeCacheRepository
}

// GetRouteCacheUsecase implements RouteCacheServer.
func (s *routeCacheServer) GetRouteCacheUsecase() mvc.RouteCacheUsecase {
	return s.routeCacheUsecase
}

// GetLogger implements RouteCacheServer.
func (s *routeCacheServer) GetLogger() log.Logger {
	return s.logger
}

// NewRouter implements RouteCacheServer.
func (s *routeCacheServer) NewRouter(routeSearcher mvc.RouteSearcher) mvc.RouterUsecase {
	router := routerusecase.NewRouterUsecase(s.routeCacheUsecase, s.routeCacheUsecase, routeSearcher, s.routerConfig, s.logger)

	s.routersMu.Lock()
	s.routers = append(s.routers, router)
	s.routersMu.Unlock()

	return router
}

// Shutdown implements RouteCacheServer.
// In-flight cache writes of the routers are drained before the storage is closed.
func (s *routeCacheServer) Shutdown(ctx context.Context) error {
	defer s.chainClient.Close()

	if s.redisClient != nil {
		defer s.redisClient.Close()
	}

	err := s.e.Shutdown(ctx)

	s.routersMu.Lock()
	routers := s.routers
	s.routersMu.Unlock()

	for _, router := range routers {
		if drainErr := router.Drain(ctx); drainErr != nil {
			s.logger.Error("failed to drain pending cache writes", zap.Error(drainErr))
			err = errors.Join(err, drainErr)
		}
	}

	return err
}

// Start implements RouteCacheServer.
func (s *routeCacheServer) Start(context.Context) error {
	s.logger.Info("Starting route cache server", zap.String("address", s.address))
	err := s.e.Start(s.address)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// NewRouteCacheServer creates a new route cache server (RCS).
func NewRouteCacheServer(ctx context.Context, config domain.Config, logger log.Logger) (RouteCacheServer, error) {
	// Setup echo server
	e := echo.New()
	e.HideBanner = true
	e.JSONSerializer = deliveryhttp.JSONSerializer{}

	middleware := middleware.InitMiddleware(config.CORS)
	e.Use(middleware.CORS)
	e.Use(middleware.InstrumentMiddleware)
	e.Use(middleware.TraceWithParamsMiddleware(tracerName))

	routeCacheRepository, redisClient, err := newRouteCacheRepository(ctx, config.Storage, logger)
	if err != nil {
		return nil, err
	}

	chainClient, err := chain.NewClient(ctx, config.ChainRPCEndpoint)
	if err != nil {
		return nil, err
	}

	// If fails, it means that the node is not reachable
	latestHeight, err := chainClient.GetLatestHeight(ctx)
	if err != nil {
		return nil, fmt.Errorf("chain RPC endpoint %s is not reachable: %w", config.ChainRPCEndpoint, err)
	}
	logger.Info("Connected to chain", zap.Stringer("chain_id", config.ChainID), zap.Uint64("latest_height", latestHeight))

	routeCacheUsecase, err := routecacheusecase.NewRouteCacheUsecase(config.RouteCache, routeCacheRepository, logger)
	if err != nil {
		return nil, err
	}

	// HTTP handlers
	systemhttpdelivery.NewSystemHandler(e, config, logger, routeCacheRepository, chainClient)
	routecachehttpdelivery.NewRouteCacheHandler(e, routeCacheUsecase, chainClient, config.ChainID, logger)

	return &routeCacheServer{
		routeCacheRepository: routeCacheRepository,
		routeCacheUsecase:    routeCacheUsecase,
		chainClient:          chainClient,
		redisClient:          redisClient,
		routerConfig:         *config.Router,
		e:                    e,
		address:              config.ServerAddress,
		logger:               logger,
	}, nil
}

// newRouteCacheRepository creates the configured storage. The redis client is nil for memory storage.
func newRouteCacheRepository(ctx context.Context, storageConfig *domain.StorageConfig, logger log.Logger) (mvc.RouteCacheRepository, *redis.Client, error) {
	switch storageConfig.Type {
	case domain.MemoryStorageType:
		logger.Info("Using memory route cache storage", zap.Int("size", storageConfig.MemoryCacheSize))
		repository, err := routecachememoryrepo.New(storageConfig.MemoryCacheSize)
		return repository, nil, err
	case domain.RedisStorageType:
		// Create redis client and ensure that it is up.
		redisAddress := fmt.Sprintf("%s:%s", storageConfig.Host, storageConfig.Port)
		logger.Info("Pinging redis", zap.String("redis_address", redisAddress))
		redisClient := redis.NewClient(&redis.Options{
			Addr:     redisAddress,
			Password: storageConfig.Password,
			DB:       storageConfig.DB,
		})

		if _, err := redisClient.Ping(ctx).Result(); err != nil {
			return nil, nil, err
		}

		redisTxManager := redisrepo.NewTxManager(redisClient)
		blockTime := time.Duration(storageConfig.BlockTimeMs) * time.Millisecond

		return routecacheredisrepo.New(redisTxManager, blockTime), redisClient, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage type (%s)", storageConfig.Type)
	}
}
