package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	deliveryhttp "github.com/dexroute/rcs/delivery/http"
	"github.com/dexroute/rcs/domain"
	"github.com/dexroute/rcs/domain/mvc"
	"github.com/dexroute/rcs/log"
	"github.com/dexroute/rcs/routecache/types"
)

// RouteCacheHandler represent the httphandler for the route cache
type RouteCacheHandler struct {
	RCUsecase   mvc.RouteCacheUsecase
	ChainClient mvc.ChainClient
	// ChainID is the chain ChainClient reads the head block of.
	ChainID domain.ChainID
	logger  log.Logger
}

const routeCacheResource = "/route-cache"

var errNoCachedRoutes = errors.New("no cached routes for the given parameters")

func formatRouteCacheResource(resource string) string {
	return routeCacheResource + resource
}

// NewRouteCacheHandler will initialize the route-cache/ resources endpoint
func NewRouteCacheHandler(e *echo.Echo, us mvc.RouteCacheUsecase, chainClient mvc.ChainClient, chainID domain.ChainID, logger log.Logger) {
	handler := &RouteCacheHandler{
		RCUsecase:   us,
		ChainClient: chainClient,
		ChainID:     chainID,
		logger:      logger,
	}
	e.GET(formatRouteCacheResource("/cached-routes"), handler.GetCachedRoutes)
	e.POST(formatRouteCacheResource("/cached-routes"), handler.SetCachedRoutes)
	e.GET(formatRouteCacheResource("/cache-mode"), handler.GetCacheMode)
	e.POST(formatRouteCacheResource("/cache-mode-overwrite"), handler.OverwriteCacheMode)
	e.DELETE(formatRouteCacheResource("/cache-mode-overwrite"), handler.DeleteCacheModeOverwrite)
}

// @Summary Cached routes
// @Description returns the cached routes for the given swap if they are not expired at the given block.
// If `blockNumber` is not given, the latest block of the chain is used. It is required for chains other than the server's own.
// @ID get-cached-routes
// @Produce  json
// @Param  chainId  query  int  true  "Chain id."
// @Param  tokenIn  query  string  true  "Address of the token in."
// @Param  tokenOut  query  string  true  "Address of the token out."
// @Param  amount  query  string  true  "Raw amount of token in for EXACT_INPUT, token out for EXACT_OUTPUT."
// @Param  tradeType  query  string  true  "EXACT_INPUT or EXACT_OUTPUT."
// @Param  protocols  query  string  false  "Comma separated protocols. V2, V3, MIXED."
// @Param  blockNumber  query  int  false  "Block to check expiry against."
// @Param  optimistic  query  bool  false  "Whether to serve routes for blocks after the one they were cached at."
// @Success 200  {object}  domain.CachedRoutes  "The cached routes"
// @Router /route-cache/cached-routes [get]
func (h *RouteCacheHandler) GetCachedRoutes(c echo.Context) (err error) {
	ctx, span := deliveryhttp.Span(c)
	defer func() {
		deliveryhttp.RecordSpanError(ctx, span, err)
	}()

	var req types.GetCachedRoutesRequest
	if err := deliveryhttp.ParseRequest(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	if !req.HasBlockNumber && req.ChainID != h.ChainID {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: types.ErrBlockNumberRequired.Error()})
	}

	blockNumber, err := h.resolveBlockNumber(c, &req)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, domain.ResponseError{Message: err.Error()})
	}

	cachedRoutes, found, err := h.RCUsecase.GetCachedRoute(ctx, req.ChainID, req.Amount, req.QuoteToken(), req.TradeType, req.Protocols, blockNumber, req.Optimistic)
	if err != nil {
		h.logger.Error("failed to get cached routes", zap.String("path", domain.GetURLPathFromContext(ctx)), zap.Error(err))
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	deliveryhttp.SetSpanCacheFound(span, found)

	if !found {
		return c.JSON(http.StatusNotFound, domain.ResponseError{Message: errNoCachedRoutes.Error()})
	}

	return c.JSON(http.StatusOK, cachedRoutes)
}

// @Summary Store cached routes
// @Description stores the given cached routes if the cache mode allows it.
// @ID set-cached-routes
// @Accept  json
// @Produce  json
// @Success 200  {object}  types.SetCachedRoutesResponse  "Whether the routes were stored"
// @Router /route-cache/cached-routes [post]
func (h *RouteCacheHandler) SetCachedRoutes(c echo.Context) (err error) {
	ctx, span := deliveryhttp.Span(c)
	defer func() {
		deliveryhttp.RecordSpanError(ctx, span, err)
	}()

	var req types.SetCachedRoutesRequest
	if err := deliveryhttp.ParseRequest(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	stored, err := h.RCUsecase.SetCachedRoute(ctx, req.CachedRoutes, req.CurrencyAmount())
	if err != nil {
		h.logger.Error("failed to set cached routes", zap.String("path", domain.GetURLPathFromContext(ctx)), zap.Error(err))
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, types.SetCachedRoutesResponse{Stored: stored})
}

// @Summary Cache mode
// @Description returns the cache mode decided for the given swap.
// @ID get-cache-mode
// @Produce  json
// @Success 200  {object}  types.CacheModeResponse  "The cache mode"
// @Router /route-cache/cache-mode [get]
func (h *RouteCacheHandler) GetCacheMode(c echo.Context) error {
	ctx := c.Request().Context()

	var req types.GetCachedRoutesRequest
	if err := deliveryhttp.ParseRequest(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	cacheMode := h.RCUsecase.GetCacheMode(ctx, req.ChainID, req.Amount, req.QuoteToken(), req.TradeType, req.Protocols)

	return c.JSON(http.StatusOK, types.CacheModeResponse{CacheMode: cacheMode})
}

// @Summary Overwrite cache mode
// @Description overwrites the cache mode of a quote token until the overwrite is deleted or the server restarts.
// @ID overwrite-cache-mode
// @Accept  json
// @Produce  json
// @Success 200  {object}  types.CacheModeResponse  "The new cache mode"
// @Router /route-cache/cache-mode-overwrite [post]
func (h *RouteCacheHandler) OverwriteCacheMode(c echo.Context) error {
	var req types.CacheModeOverwriteRequest
	if err := deliveryhttp.ParseRequest(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	if err := h.RCUsecase.OverwriteCacheMode(req.ChainID, req.Token(), req.ParsedTradeType(), req.CacheMode()); err != nil {
		return c.JSON(overwriteStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, types.CacheModeResponse{CacheMode: req.CacheMode()})
}

// @Summary Delete cache mode overwrite
// @ID delete-cache-mode-overwrite
// @Produce  json
// @Router /route-cache/cache-mode-overwrite [delete]
func (h *RouteCacheHandler) DeleteCacheModeOverwrite(c echo.Context) error {
	var req types.CacheModeOverwriteRequest
	if err := deliveryhttp.ParseRequest(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	if err := h.RCUsecase.DeleteCacheModeOverwrite(req.ChainID, req.Token(), req.ParsedTradeType()); err != nil {
		return c.JSON(overwriteStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.NoContent(http.StatusNoContent)
}

// resolveBlockNumber returns the requested block number or the latest block of h.ChainID.
func (h *RouteCacheHandler) resolveBlockNumber(c echo.Context, req *types.GetCachedRoutesRequest) (uint64, error) {
	if req.HasBlockNumber {
		return req.BlockNumber, nil
	}

	latestHeight, err := h.ChainClient.GetLatestHeight(c.Request().Context())
	if err != nil {
		h.logger.Error("failed to get latest height", zap.Error(err))
		return 0, err
	}

	return latestHeight, nil
}

func overwriteStatusCode(err error) int {
	if errors.Is(err, domain.ErrCacheModeOverwriteDisabled) {
		return http.StatusForbidden
	}
	return domain.GetStatusCode(err)
}
