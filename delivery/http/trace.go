package http

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Span returns the current span from the context.
func Span(c echo.Context) (context.Context, trace.Span) {
	ctx := c.Request().Context()
	span := trace.SpanFromContext(ctx)
	return ctx, span
}

// RecordSpanError records an error ( if any ) for the span.
// The span is ended by the tracing middleware.
func RecordSpanError(ctx context.Context, span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
	}
}

// SetSpanCacheFound records whether a cache lookup was served.
func SetSpanCacheFound(span trace.Span, found bool) {
	span.SetAttributes(attribute.Bool("route_cache.found", found))
}
