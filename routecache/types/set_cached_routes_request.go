package types

import (
	"io"

	"github.com/labstack/echo/v4"

	"github.com/dexroute/rcs/domain"
	"github.com/dexroute/rcs/domain/json"
)

// SetCachedRoutesRequest represents a cached routes write for the /route-cache/cached-routes endpoint.
type SetCachedRoutesRequest struct {
	CachedRoutes domain.CachedRoutes `json:"cachedRoutes"`
	// Amount is the raw amount of the fixed side of the trade the routes were found for.
	Amount string `json:"amount"`

	amount domain.CurrencyAmount
}

// SetCachedRoutesResponse is the response of a cached routes write.
type SetCachedRoutesResponse struct {
	Stored bool `json:"stored"`
}

// UnmarshalHTTPRequest implements http.RequestUnmarshaler.
func (r *SetCachedRoutesRequest) UnmarshalHTTPRequest(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, r); err != nil {
		return ErrRequestBodyNotValid
	}

	if r.Amount == "" {
		return ErrAmountNotSpecified
	}

	amountToken := r.CachedRoutes.TokenIn
	if r.CachedRoutes.TradeType == domain.TradeTypeExactOutput {
		amountToken = r.CachedRoutes.TokenOut
	}

	r.amount, err = domain.ParseCurrencyAmount(amountToken, r.Amount)
	if err != nil {
		return err
	}

	return nil
}

// Validate validates the SetCachedRoutesRequest.
func (r *SetCachedRoutesRequest) Validate() error {
	if r.amount.Raw == nil || r.amount.Raw.IsZero() {
		return ErrAmountNotValid
	}

	return r.CachedRoutes.Validate()
}

// CurrencyAmount returns the parsed amount.
func (r *SetCachedRoutesRequest) CurrencyAmount() domain.CurrencyAmount {
	return r.amount
}
