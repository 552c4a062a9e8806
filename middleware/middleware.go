package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/dexroute/rcs/domain"
)

// GoMiddleware represent the data-struct for middleware
type GoMiddleware struct {
	corsConfig domain.CORSConfig
}

var (
	// total number of requests counter
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rcs_requests_total",
			Help: "Total number of requests.",
		},
		[]string{"method", "endpoint", "status"},
	)

	// request latency histogram
	requestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rcs_request_duration_seconds",
			Help:    "Histogram of request latencies.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

func init() {
	prometheus.MustRegister(requestsTotal)
	prometheus.MustRegister(requestLatency)
}

// InitMiddleware initialize the middleware
func InitMiddleware(corsConfig *domain.CORSConfig) *GoMiddleware {
	return &GoMiddleware{
		corsConfig: *corsConfig,
	}
}

// CORS will handle the CORS middleware
func (m *GoMiddleware) CORS(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Access-Control-Allow-Origin", m.corsConfig.AllowedOrigin)
		c.Response().Header().Set("Access-Control-Allow-Headers", m.corsConfig.AllowedHeaders)
		c.Response().Header().Set("Access-Control-Allow-Methods", m.corsConfig.AllowedMethods)
		return next(c)
	}
}

// InstrumentMiddleware counts requests by path and response status and observes their latency.
// The request path is stored in the request context under domain.RequestPathCtxKey.
func (m *GoMiddleware) InstrumentMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		requestMethod := c.Request().Method
		requestPath, err := domain.ParseURLPath(c)
		if err != nil {
			return err
		}

		ctx := context.WithValue(c.Request().Context(), domain.RequestPathCtxKey, requestPath)
		c.SetRequest(c.Request().WithContext(ctx))

		err = next(c)

		status := c.Response().Status
		if httpErr, ok := err.(*echo.HTTPError); ok {
			status = httpErr.Code
		}

		requestsTotal.WithLabelValues(requestMethod, requestPath, strconv.Itoa(status)).Inc()
		requestLatency.WithLabelValues(requestMethod, requestPath).Observe(time.Since(start).Seconds())

		return err
	}
}

// TraceWithParamsMiddleware starts a server span per request, continuing the caller's trace if
// propagated, and records the query parameters as span attributes.
func (m *GoMiddleware) TraceWithParamsMiddleware(tracerName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tracer := otel.Tracer(tracerName)

			parentCtx := otel.GetTextMapPropagator().Extract(c.Request().Context(), propagation.HeaderCarrier(c.Request().Header))

			ctx, span := tracer.Start(parentCtx, c.Path(), trace.WithSpanKind(trace.SpanKindServer))
			defer span.End()

			span.SetAttributes(attribute.String("http.method", c.Request().Method))

			c.SetRequest(c.Request().WithContext(ctx))

			// Only the first value of repeated parameters is recorded.
			for key, values := range c.QueryParams() {
				span.SetAttributes(attribute.String("http.query."+key, values[0]))
			}

			return next(c)
		}
	}
}
