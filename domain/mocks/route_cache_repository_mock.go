package mocks

import (
	"context"

	"github.com/dexroute/rcs/domain"
	"github.com/dexroute/rcs/domain/mvc"
)

var _ mvc.RouteCacheRepository = &RouteCacheRepositoryMock{}

// RouteCacheRepositoryMock is a mock implementation of the RouteCacheRepository interface
type RouteCacheRepositoryMock struct {
	GetCachedRoutesFunc func(ctx context.Context, key domain.RouteCacheKey) (domain.CachedRoutes, bool, error)
	SetCachedRoutesFunc func(ctx context.Context, key domain.RouteCacheKey, cachedRoutes domain.CachedRoutes) error
	PingFunc            func(ctx context.Context) error
}

// GetCachedRoutes implements mvc.RouteCacheRepository.
func (m *RouteCacheRepositoryMock) GetCachedRoutes(ctx context.Context, key domain.RouteCacheKey) (domain.CachedRoutes, bool, error) {
	if m.GetCachedRoutesFunc != nil {
		return m.GetCachedRoutesFunc(ctx, key)
	}

	panic("unimplemented")
}

// SetCachedRoutes implements mvc.RouteCacheRepository.
func (m *RouteCacheRepositoryMock) SetCachedRoutes(ctx context.Context, key domain.RouteCacheKey, cachedRoutes domain.CachedRoutes) error {
	if m.SetCachedRoutesFunc != nil {
		return m.SetCachedRoutesFunc(ctx, key, cachedRoutes)
	}

	panic("unimplemented")
}

// Ping implements mvc.RouteCacheRepository.
func (m *RouteCacheRepositoryMock) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}

	panic("unimplemented")
}
