package mocks

import (
	"context"

	"github.com/dexroute/rcs/domain"
	"github.com/dexroute/rcs/domain/mvc"
)

var _ mvc.RouterUsecase = &RouterUsecaseMock{}

// RouterUsecaseMock is a mock implementation of the RouterUsecase interface
type RouterUsecaseMock struct {
	GetRoutesFunc func(ctx context.Context, request domain.QuoteRequest, opts ...domain.RouterOption) (domain.RouteResult, error)
	GetConfigFunc func() domain.RouterConfig
	DrainFunc     func(ctx context.Context) error
}

// GetRoutes implements mvc.RouterUsecase.
func (m *RouterUsecaseMock) GetRoutes(ctx context.Context, request domain.QuoteRequest, opts ...domain.RouterOption) (domain.RouteResult, error) {
	if m.GetRoutesFunc != nil {
		return m.GetRoutesFunc(ctx, request, opts...)
	}

	panic("unimplemented")
}

// GetConfig implements mvc.RouterUsecase.
func (m *RouterUsecaseMock) GetConfig() domain.RouterConfig {
	if m.GetConfigFunc != nil {
		return m.GetConfigFunc()
	}

	panic("unimplemented")
}

// Drain implements mvc.RouterUsecase.
func (m *RouterUsecaseMock) Drain(ctx context.Context) error {
	if m.DrainFunc != nil {
		return m.DrainFunc(ctx)
	}

	panic("unimplemented")
}
