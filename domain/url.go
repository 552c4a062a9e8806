package domain

import (
	"context"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
)

// RequestPathKeyType is a custom type for request path key.
type RequestPathKeyType string

const (
	// RequestPathCtxKey is the key used to store the request path in the request context
	RequestPathCtxKey RequestPathKeyType = "request_path"
)

// ParseURLPath parses the URL path from the echo context
func ParseURLPath(c echo.Context) (string, error) {
	parsedURL, err := url.Parse(c.Request().RequestURI)
	if err != nil {
		return "", err
	}

	return parsedURL.Path, nil
}

// GetURLPathFromContext returns the request path from the context
func GetURLPathFromContext(ctx context.Context) string {
	requestPath, ok := ctx.Value(RequestPathCtxKey).(string)
	if !ok || len(requestPath) == 0 {
		return "unknown"
	}
	return requestPath
}

// ParseBooleanQueryParam parses a boolean query parameter.
// Returns false if the parameter is not present.
// Errors if the value is not a valid boolean.
func ParseBooleanQueryParam(c echo.Context, paramName string) (paramValue bool, err error) {
	paramValueStr := c.QueryParam(paramName)
	if paramValueStr != "" {
		paramValue, err = strconv.ParseBool(paramValueStr)
		if err != nil {
			return false, err
		}
	}

	return paramValue, nil
}

// ParseUint64QueryParam parses an unsigned integer query parameter.
// Returns false if the parameter is not present.
func ParseUint64QueryParam(c echo.Context, paramName string) (uint64, bool, error) {
	paramValueStr := c.QueryParam(paramName)
	if paramValueStr == "" {
		return 0, false, nil
	}

	paramValue, err := strconv.ParseUint(paramValueStr, 10, 64)
	if err != nil {
		return 0, false, err
	}

	return paramValue, true, nil
}
