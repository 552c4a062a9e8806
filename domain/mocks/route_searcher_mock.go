package mocks

import (
	"context"

	"github.com/dexroute/rcs/domain"
	"github.com/dexroute/rcs/domain/mvc"
)

var _ mvc.RouteSearcher = &RouteSearcherMock{}

// RouteSearcherMock is a mock implementation of the RouteSearcher interface
type RouteSearcherMock struct {
	SearchRoutesFunc func(ctx context.Context, request domain.QuoteRequest) ([]domain.RouteCandidate, error)
}

// SearchRoutes implements mvc.RouteSearcher.
func (m *RouteSearcherMock) SearchRoutes(ctx context.Context, request domain.QuoteRequest) ([]domain.RouteCandidate, error) {
	if m.SearchRoutesFunc != nil {
		return m.SearchRoutesFunc(ctx, request)
	}

	panic("unimplemented")
}
