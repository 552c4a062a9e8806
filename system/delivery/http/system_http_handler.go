package http

import (
	"fmt"
	"net/http"
	"net/http/pprof"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/dexroute/rcs/domain"
	"github.com/dexroute/rcs/domain/mvc"
	"github.com/dexroute/rcs/log"
)

type SystemHandler struct {
	logger       log.Logger
	RCRepository mvc.RouteCacheRepository
	ChainClient  mvc.ChainClient
	config       domain.Config
}

// HealthStatus is the response of the health check.
type HealthStatus struct {
	StorageType       string `json:"storage_type"`
	StorageStatus     string `json:"storage_status"`
	ChainLatestHeight uint64 `json:"chain_latest_height"`
}

const (
	versionPlaceholder    = "version="
	whiteSpacePlaceholder = " "

	statusRunning = "running"
)

// NewSystemHandler will initialize the /debug/pprof, health, config, version, metrics and swagger resources endpoint
func NewSystemHandler(e *echo.Echo, config domain.Config, logger log.Logger, repository mvc.RouteCacheRepository, chainClient mvc.ChainClient) {
	handler := &SystemHandler{
		logger:       logger,
		RCRepository: repository,
		ChainClient:  chainClient,
		config:       config,
	}

	// if debug mod, enable additional profiles that are too intensive
	// for production.
	if !config.LoggerIsProduction {
		runtime.SetMutexProfileFraction(2)
		runtime.SetBlockProfileRate(2)
	}

	e.GET("/debug/pprof/*", echo.WrapHandler(http.DefaultServeMux))
	e.GET("/debug/pprof/cmdline", echo.WrapHandler(http.HandlerFunc(pprof.Cmdline)))
	e.GET("/debug/pprof/profile", echo.WrapHandler(http.HandlerFunc(pprof.Profile)))
	e.GET("/debug/pprof/symbol", echo.WrapHandler(http.HandlerFunc(pprof.Symbol)))
	e.GET("/debug/pprof/trace", echo.WrapHandler(http.HandlerFunc(pprof.Trace)))

	e.GET("/healthcheck", handler.GetHealthStatus)
	e.GET("/config", handler.GetConfig)
	e.GET("/version", handler.GetVersion)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("docs/swagger.json"), echoSwagger.URL("swagger.yaml")))
}

// GetConfig returns the config for the route cache service with credentials redacted
func (h *SystemHandler) GetConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, h.config.Redacted())
}

func (h *SystemHandler) GetVersion(c echo.Context) error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to read build info")
	}

	for _, setting := range buildInfo.Settings {
		if setting.Key == "-ldflags" {
			version, err := extractVersion(setting.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("failed to extract version information: %v", err))
			}

			return c.JSON(http.StatusOK, version)
		}
	}

	return echo.NewHTTPError(http.StatusInternalServerError, "failed to find version information")
}

// extractVersion extracts the version string from the ldflags.
// The version ends at the next whitespace or at the end of the flags.
func extractVersion(ldFlagsValueStr string) (string, error) {
	index := strings.Index(ldFlagsValueStr, versionPlaceholder)
	if index == -1 {
		return "", fmt.Errorf("no version string found")
	}

	substring := ldFlagsValueStr[index+len(versionPlaceholder):]

	end := strings.Index(substring, whiteSpacePlaceholder)
	if end == -1 {
		end = len(substring)
	}

	if end == 0 {
		return "", fmt.Errorf("empty version string")
	}

	return substring[:end], nil
}

// GetHealthStatus checks that the route cache storage answers and the chain RPC endpoint serves blocks.
func (h *SystemHandler) GetHealthStatus(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.RCRepository.Ping(ctx); err != nil {
		h.logger.Error("Error connecting to route cache storage", zap.Error(err))
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Error connecting to route cache storage").SetInternal(err)
	}

	latestChainHeight, err := h.ChainClient.GetLatestHeight(ctx)
	if err != nil {
		h.logger.Error("Error getting latest chain height", zap.Error(err))
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Error connecting to the chain RPC endpoint").SetInternal(err)
	}

	storageType := ""
	if h.config.Storage != nil {
		storageType = h.config.Storage.Type
	}

	return c.JSON(http.StatusOK, HealthStatus{
		StorageType:       storageType,
		StorageStatus:     statusRunning,
		ChainLatestHeight: latestChainHeight,
	})
}
