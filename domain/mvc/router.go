package mvc

import (
	"context"

	"github.com/dexroute/rcs/domain"
)

// RouteSearcher finds routes for a swap intent.
// It is implemented by the embedding routing engine.
type RouteSearcher interface {
	SearchRoutes(ctx context.Context, request domain.QuoteRequest) ([]domain.RouteCandidate, error)
}

// RouterUsecase represent the router's usecases
type RouterUsecase interface {
	// GetRoutes returns the routes for the quote request, from the route cache
	// or from a fresh search depending on the cache mode and options.
	GetRoutes(ctx context.Context, request domain.QuoteRequest, opts ...domain.RouterOption) (domain.RouteResult, error)
	// GetConfig returns the router config.
	GetConfig() domain.RouterConfig
	// Drain blocks until the in-flight cache writes return or ctx is done.
	Drain(ctx context.Context) error
}

// ChainClient reads chain state.
type ChainClient interface {
	// GetLatestHeight returns the latest block number.
	GetLatestHeight(ctx context.Context) (uint64, error)
}
