package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")

	// ErrEmptyRoute is returned when a route has no pools.
	ErrEmptyRoute = errors.New("route must have at least one pool")
	// ErrNoCachedRoutes is returned when a cached route set has no routes.
	ErrNoCachedRoutes = errors.New("cached routes must contain at least one route")
	// ErrNoRoutesFound is returned when neither the route cache nor route search produced routes.
	ErrNoRoutesFound = errors.New("no routes found")
	// ErrCacheModeOverwriteDisabled is returned when the runtime cache mode overwrite is not enabled.
	ErrCacheModeOverwriteDisabled = errors.New("cache mode overwrite is disabled")
)

// GetStatusCode returns status code given error
func GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, ErrInternalServerError):
		return http.StatusInternalServerError
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrNoRoutesFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrBadParamInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// InvalidProtocolError is returned for an unknown protocol tag.
type InvalidProtocolError struct {
	Protocol string
}

func (e InvalidProtocolError) Error() string {
	return fmt.Sprintf("invalid protocol (%s), must be one of V2, V3, MIXED", e.Protocol)
}

// InvalidTradeTypeError is returned for an unknown trade type.
type InvalidTradeTypeError struct {
	TradeType string
}

func (e InvalidTradeTypeError) Error() string {
	return fmt.Sprintf("invalid trade type (%s), must be EXACT_INPUT or EXACT_OUTPUT", e.TradeType)
}

// InvalidCacheModeError is returned for an unknown cache mode.
type InvalidCacheModeError struct {
	CacheMode string
}

func (e InvalidCacheModeError) Error() string {
	return fmt.Sprintf("invalid cache mode (%s), must be one of livemode, darkmode, tapcompare", e.CacheMode)
}

// InvalidAmountError is returned when a raw amount cannot be parsed.
type InvalidAmountError struct {
	Amount string
	Err    error
}

func (e InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount (%s): %v", e.Amount, e.Err)
}

func (e InvalidAmountError) Unwrap() error {
	return e.Err
}

// InvalidPercentError is returned when a cached route carries a percent outside of (0, 100].
type InvalidPercentError struct {
	Percent float64
}

func (e InvalidPercentError) Error() string {
	return fmt.Sprintf("invalid route percent (%f), must be in (0, 100]", e.Percent)
}

// RouteDisconnectedError is returned when a route's pools do not chain from input to output.
type RouteDisconnectedError struct {
	HopIndex int
	Token    string
}

func (e RouteDisconnectedError) Error() string {
	return fmt.Sprintf("route is disconnected at hop (%d), token (%s) does not continue the path", e.HopIndex, e.Token)
}

// RouteTokenMismatchError is returned when a cached route does not swap the route set's tokens.
type RouteTokenMismatchError struct {
	RoutePath string
}

func (e RouteTokenMismatchError) Error() string {
	return fmt.Sprintf("route (%s) does not match the cached routes token in and token out", e.RoutePath)
}

// SameTokenError is returned when token in equals token out.
type SameTokenError struct {
	Token string
}

func (e SameTokenError) Error() string {
	return fmt.Sprintf("token in and token out must differ, both are (%s)", e.Token)
}
