package usecase_test

import (
	"context"

	"github.com/dexroute/rcs/domain"
	"github.com/dexroute/rcs/domain/cache"
	"github.com/dexroute/rcs/domain/mocks"
	"github.com/dexroute/rcs/log"
	"github.com/dexroute/rcs/routecache/routecachetesting"
	"github.com/dexroute/rcs/routecache/usecase"
)

func (s *RouteCachingProviderTestSuite) TestOverwriteCacheMode() {
	tests := []struct {
		name               string
		isOverwriteEnabled bool
		expectedErr        error
		expectedMode       domain.CacheMode
	}{
		{
			name:               "overwrite enabled",
			isOverwriteEnabled: true,
			expectedMode:       domain.CacheModeDarkmode,
		},
		{
			name:               "overwrite disabled",
			isOverwriteEnabled: false,
			expectedErr:        domain.ErrCacheModeOverwriteDisabled,
			expectedMode:       domain.CacheModeLivemode,
		},
	}

	for _, tc := range tests {
		tc := tc
		s.Run(tc.name, func() {
			config := routecachetesting.DefaultRouteCacheConfig()
			config.EnableCacheModeOverwrite = tc.isOverwriteEnabled

			routeCacheUsecase, err := usecase.NewRouteCacheUsecase(config, &mocks.RouteCacheRepositoryMock{}, &log.NoOpLogger{})
			s.Require().NoError(err)

			err = routeCacheUsecase.OverwriteCacheMode(defaultChainID, USDC, domain.TradeTypeExactInput, domain.CacheModeDarkmode)
			s.Require().ErrorIs(err, tc.expectedErr)

			mode := routeCacheUsecase.GetCacheMode(context.Background(), defaultChainID, defaultAmount, USDC, domain.TradeTypeExactInput, defaultProtocols)
			s.Require().Equal(tc.expectedMode, mode)

			err = routeCacheUsecase.DeleteCacheModeOverwrite(defaultChainID, USDC, domain.TradeTypeExactInput)
			s.Require().ErrorIs(err, tc.expectedErr)

			mode = routeCacheUsecase.GetCacheMode(context.Background(), defaultChainID, defaultAmount, USDC, domain.TradeTypeExactInput, defaultProtocols)
			s.Require().Equal(domain.CacheModeLivemode, mode)
		})
	}
}

// Tests that a write and a read for the same swap intent agree on the storage key.
func (s *RouteCachingProviderTestSuite) TestRouteCachingPrimitives_KeyAgreement() {
	var (
		writtenKey domain.RouteCacheKey
		readKey    domain.RouteCacheKey
	)

	repository := &mocks.RouteCacheRepositoryMock{
		SetCachedRoutesFunc: func(ctx context.Context, key domain.RouteCacheKey, cachedRoutes domain.CachedRoutes) error {
			writtenKey = key
			return nil
		},
		GetCachedRoutesFunc: func(ctx context.Context, key domain.RouteCacheKey) (domain.CachedRoutes, bool, error) {
			readKey = key
			return domain.CachedRoutes{}, false, nil
		},
	}

	primitives, err := usecase.NewRouteCachingPrimitives(routecachetesting.DefaultRouteCacheConfig(), repository, cache.NewNoOpCacheModeOverwrite(), &log.NoOpLogger{})
	s.Require().NoError(err)

	ctx := context.Background()

	stored, err := primitives.SetCachedRouteInStorage(ctx, s.DefaultCachedRoutes(defaultBlockNumber), defaultAmount)
	s.Require().NoError(err)
	s.Require().True(stored)

	// Protocols are given out of order and duplicated on read.
	_, found, err := primitives.GetCachedRouteFromStorage(ctx, defaultChainID, defaultAmount, USDC, domain.TradeTypeExactInput, []domain.Protocol{domain.ProtocolV3, domain.ProtocolV3}, defaultBlockNumber, false)
	s.Require().NoError(err)
	s.Require().False(found)

	s.Require().Equal(writtenKey.String(), readKey.String())
}

func (s *RouteCachingProviderTestSuite) TestRouteCachingPrimitives_StorageErrors() {
	repository := &mocks.RouteCacheRepositoryMock{
		SetCachedRoutesFunc: func(ctx context.Context, key domain.RouteCacheKey, cachedRoutes domain.CachedRoutes) error {
			return errStorage
		},
		GetCachedRoutesFunc: func(ctx context.Context, key domain.RouteCacheKey) (domain.CachedRoutes, bool, error) {
			return domain.CachedRoutes{}, false, errStorage
		},
	}

	primitives, err := usecase.NewRouteCachingPrimitives(routecachetesting.DefaultRouteCacheConfig(), repository, nil, &log.NoOpLogger{})
	s.Require().NoError(err)

	ctx := context.Background()

	stored, err := primitives.SetCachedRouteInStorage(ctx, s.DefaultCachedRoutes(defaultBlockNumber), defaultAmount)
	s.Require().ErrorIs(err, errStorage)
	s.Require().False(stored)

	_, found, err := primitives.GetCachedRouteFromStorage(ctx, defaultChainID, defaultAmount, USDC, domain.TradeTypeExactInput, defaultProtocols, defaultBlockNumber, false)
	s.Require().ErrorIs(err, errStorage)
	s.Require().False(found)
}
