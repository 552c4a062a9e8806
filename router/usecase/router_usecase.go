package usecase

import (
	"context"
	"slices"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dexroute/rcs/domain"
	"github.com/dexroute/rcs/domain/mvc"
	"github.com/dexroute/rcs/log"
)

var _ mvc.RouterUsecase = &routerUseCaseImpl{}

type routerUseCaseImpl struct {
	routeCachingProvider mvc.RouteCachingProvider
	cacheModeDecider     mvc.CacheModeDecider
	routeSearcher        mvc.RouteSearcher
	config               domain.RouterConfig
	logger               log.Logger

	// pendingWrites tracks the fire-and-forget cache writes.
	pendingWrites sync.WaitGroup
}

const (
	writeStatusSuccess     = "success"
	writeStatusRejected    = "rejected"
	writeStatusFailure     = "failure"
	writeStatusUnnecessary = "unnecessary"
)

// NewRouterUsecase will create a new router use case object
func NewRouterUsecase(routeCachingProvider mvc.RouteCachingProvider, cacheModeDecider mvc.CacheModeDecider, routeSearcher mvc.RouteSearcher, config domain.RouterConfig, logger log.Logger) mvc.RouterUsecase {
	return &routerUseCaseImpl{
		routeCachingProvider: routeCachingProvider,
		cacheModeDecider:     cacheModeDecider,
		routeSearcher:        routeSearcher,
		config:               config,
		logger:               logger,
	}
}

// GetRoutes returns the routes for the quote request.
// The cache mode is taken from the options overwrite if set, otherwise it is decided by the route cache.
// In livemode a cached route set is served as is and route search only runs on a miss.
// In tapcompare route search always runs concurrently with the cache read and the fresh routes are served.
// The cache routes are compared against the fresh ones for drift.
// In darkmode the route cache is neither read nor written.
// Whenever route search runs and writes are enabled, the fresh routes are cached asynchronously.
func (r *routerUseCaseImpl) GetRoutes(ctx context.Context, request domain.QuoteRequest, opts ...domain.RouterOption) (domain.RouteResult, error) {
	if err := request.Validate(); err != nil {
		return domain.RouteResult{}, err
	}

	options := domain.DefaultRouterOptions(r.config)
	for _, opt := range opts {
		opt(&options)
	}

	request.Protocols = domain.SortProtocols(request.Protocols)
	quoteToken := request.QuoteToken()

	cacheMode := options.OverwriteCacheMode
	if cacheMode == "" {
		cacheMode = r.cacheModeDecider.GetCacheMode(ctx, request.ChainID, request.Amount, quoteToken, request.TradeType, request.Protocols)
	}

	trace.SpanFromContext(ctx).SetAttributes(attribute.String("route_cache.mode", cacheMode.String()))

	readCache := options.UseCachedRoutes && !cacheMode.IsDark()

	var (
		cachedRoutes    domain.CachedRoutes
		hasCachedRoutes bool
		freshCandidates []domain.RouteCandidate
		searched        bool
	)

	if readCache && cacheMode == domain.CacheModeTapcompare {
		// Fresh routes are needed regardless of the cache outcome.
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			cachedRoutes, hasCachedRoutes = r.getCachedRoutes(gctx, request, quoteToken, options.OptimisticCachedRoutes)
			return nil
		})
		g.Go(func() error {
			var err error
			freshCandidates, err = r.routeSearcher.SearchRoutes(gctx, request)
			return err
		})
		if err := g.Wait(); err != nil {
			return domain.RouteResult{}, err
		}
		searched = true
	} else {
		if readCache {
			cachedRoutes, hasCachedRoutes = r.getCachedRoutes(ctx, request, quoteToken, options.OptimisticCachedRoutes)
		}

		if !hasCachedRoutes || cacheMode != domain.CacheModeLivemode {
			var err error
			freshCandidates, err = r.routeSearcher.SearchRoutes(ctx, request)
			if err != nil {
				return domain.RouteResult{}, err
			}
			searched = true
		}
	}

	if readCache {
		if hasCachedRoutes {
			domain.RCSRouteCacheHitsCounter.WithLabelValues(cacheMode.String()).Inc()
		} else {
			domain.RCSRouteCacheMissesCounter.WithLabelValues(cacheMode.String()).Inc()
		}
	}

	if cacheMode == domain.CacheModeTapcompare && hasCachedRoutes && len(freshCandidates) > 0 {
		r.compareRoutes(request, cachedRoutes, freshCandidates)
	}

	if options.WriteToCachedRoutes && !cacheMode.IsDark() && searched {
		r.writeCachedRoutes(ctx, request, freshCandidates)
	}

	result := domain.RouteResult{
		CacheMode:   cacheMode,
		BlockNumber: request.BlockNumber,
	}

	if cacheMode == domain.CacheModeLivemode && hasCachedRoutes {
		result.Candidates = candidatesFromCachedRoutes(cachedRoutes)
		result.FromCache = true
		return result, nil
	}

	if len(freshCandidates) == 0 {
		return domain.RouteResult{}, domain.ErrNoRoutesFound
	}

	result.Candidates = freshCandidates
	return result, nil
}

// GetConfig implements mvc.RouterUsecase.
func (r *routerUseCaseImpl) GetConfig() domain.RouterConfig {
	return r.config
}

// getCachedRoutes reads the route cache. Errors are logged and treated as a miss
// so that route search serves the request.
func (r *routerUseCaseImpl) getCachedRoutes(ctx context.Context, request domain.QuoteRequest, quoteToken domain.Token, optimistic bool) (domain.CachedRoutes, bool) {
	cachedRoutes, found, err := r.routeCachingProvider.GetCachedRoute(ctx, request.ChainID, request.Amount, quoteToken, request.TradeType, request.Protocols, request.BlockNumber, optimistic)
	if err != nil {
		r.logger.Error("failed to get cached routes, falling back to route search", zap.Error(err), zap.String("token_in", request.TokenIn.String()), zap.String("token_out", request.TokenOut.String()))
		return domain.CachedRoutes{}, false
	}

	return cachedRoutes, found
}

// writeCachedRoutes stores the fresh candidates without blocking the request.
func (r *routerUseCaseImpl) writeCachedRoutes(ctx context.Context, request domain.QuoteRequest, candidates []domain.RouteCandidate) {
	cachedRoutes, ok := domain.NewCachedRoutesFromCandidates(candidates, request.ChainID, request.TokenIn, request.TokenOut, request.Protocols, request.BlockNumber, request.TradeType, request.Amount.String())
	if !ok {
		domain.RCSRouteCacheWritesCounter.WithLabelValues(writeStatusUnnecessary).Inc()
		return
	}

	writeCtx := context.WithoutCancel(ctx)

	r.pendingWrites.Add(1)
	go func() {
		defer r.pendingWrites.Done()

		stored, err := r.routeCachingProvider.SetCachedRoute(writeCtx, cachedRoutes, request.Amount)
		if err != nil {
			r.logger.Error("failed to set cached routes", zap.Error(err), zap.String("token_in", request.TokenIn.String()), zap.String("token_out", request.TokenOut.String()))
			domain.RCSRouteCacheWritesCounter.WithLabelValues(writeStatusFailure).Inc()
			return
		}

		if stored {
			domain.RCSRouteCacheWritesCounter.WithLabelValues(writeStatusSuccess).Inc()
		} else {
			domain.RCSRouteCacheWritesCounter.WithLabelValues(writeStatusRejected).Inc()
		}
	}()
}

// Drain implements mvc.RouterUsecase.
func (r *routerUseCaseImpl) Drain(ctx context.Context) error {
	drained := make(chan struct{})
	go func() {
		r.pendingWrites.Wait()
		close(drained)
	}()

	select {
	case <-drained:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// compareRoutes reports when the cached routes differ from the freshly searched ones.
func (r *routerUseCaseImpl) compareRoutes(request domain.QuoteRequest, cachedRoutes domain.CachedRoutes, freshCandidates []domain.RouteCandidate) {
	cachedRouteIDs := cachedRoutes.RouteIDs()

	freshRouteIDs := make([]int32, 0, len(freshCandidates))
	for _, candidate := range freshCandidates {
		freshRouteIDs = append(freshRouteIDs, domain.NewCachedRoute(candidate.Route, candidate.Percent).RouteID())
	}

	if slices.Equal(cachedRouteIDs, freshRouteIDs) {
		return
	}

	domain.RCSRouteCacheTapcompareDriftCounter.Inc()

	r.logger.Info("cached routes differ from fresh routes",
		zap.String("token_in", request.TokenIn.String()),
		zap.String("token_out", request.TokenOut.String()),
		zap.Stringer("trade_type", request.TradeType),
		zap.Uint64("block_number", request.BlockNumber),
		zap.Uint64("cached_block_number", cachedRoutes.BlockNumber),
		zap.String("original_amount", cachedRoutes.OriginalAmount),
		zap.String("amount", request.Amount.String()),
		zap.Int32s("cached_route_ids", cachedRouteIDs),
		zap.Int32s("fresh_route_ids", freshRouteIDs),
	)
}

func candidatesFromCachedRoutes(cachedRoutes domain.CachedRoutes) []domain.RouteCandidate {
	candidates := make([]domain.RouteCandidate, 0, len(cachedRoutes.Routes))
	for _, cachedRoute := range cachedRoutes.Routes {
		candidates = append(candidates, domain.RouteCandidate{Route: cachedRoute.Route, Percent: cachedRoute.Percent})
	}
	return candidates
}
