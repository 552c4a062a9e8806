package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/dexroute/rcs/domain"
	"github.com/dexroute/rcs/domain/cache"
	"github.com/dexroute/rcs/domain/mvc"
	"github.com/dexroute/rcs/log"
)

type routeCacheUseCase struct {
	mvc.RouteCachingProvider

	primitives *routeCachingPrimitives
	overwrite  *cache.CacheModeOverwrite
	logger     log.Logger
}

var _ mvc.RouteCacheUsecase = &routeCacheUseCase{}

// NewRouteCacheUsecase will create a new route cache use case object
func NewRouteCacheUsecase(config *domain.RouteCacheConfig, repository mvc.RouteCacheRepository, logger log.Logger) (mvc.RouteCacheUsecase, error) {
	overwrite := cache.CreateCacheModeOverwrite(config.EnableCacheModeOverwrite)

	primitives, err := newRouteCachingPrimitives(config, repository, overwrite, logger)
	if err != nil {
		return nil, err
	}

	return &routeCacheUseCase{
		RouteCachingProvider: NewRouteCachingProvider(primitives),

		primitives: primitives,
		overwrite:  overwrite,
		logger:     logger,
	}, nil
}

// GetCacheMode implements mvc.RouteCacheUsecase.
func (r *routeCacheUseCase) GetCacheMode(ctx context.Context, chainID domain.ChainID, amount domain.CurrencyAmount, quoteToken domain.Token, tradeType domain.TradeType, protocols []domain.Protocol) domain.CacheMode {
	return r.primitives.GetCacheMode(ctx, chainID, amount, quoteToken, tradeType, protocols)
}

// OverwriteCacheMode implements mvc.RouteCacheUsecase.
func (r *routeCacheUseCase) OverwriteCacheMode(chainID domain.ChainID, quoteToken domain.Token, tradeType domain.TradeType, mode domain.CacheMode) error {
	if !r.overwrite.IsEnabled() {
		return domain.ErrCacheModeOverwriteDisabled
	}

	r.overwrite.Set(chainID, quoteToken, tradeType, mode)

	r.logger.Info("cache mode overwritten", zap.Stringer("chain_id", chainID), zap.Stringer("quote_token", quoteToken), zap.Stringer("trade_type", tradeType), zap.Stringer("mode", mode), zap.Int("active_overwrites", r.overwrite.Len()))

	return nil
}

// DeleteCacheModeOverwrite implements mvc.RouteCacheUsecase.
func (r *routeCacheUseCase) DeleteCacheModeOverwrite(chainID domain.ChainID, quoteToken domain.Token, tradeType domain.TradeType) error {
	if !r.overwrite.IsEnabled() {
		return domain.ErrCacheModeOverwriteDisabled
	}

	r.overwrite.Delete(chainID, quoteToken, tradeType)

	r.logger.Info("cache mode overwrite deleted", zap.Stringer("chain_id", chainID), zap.Stringer("quote_token", quoteToken), zap.Stringer("trade_type", tradeType), zap.Int("active_overwrites", r.overwrite.Len()))

	return nil
}
