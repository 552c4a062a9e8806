package types

import (
	"io"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/labstack/echo/v4"

	"github.com/dexroute/rcs/domain"
	"github.com/dexroute/rcs/domain/json"
)

// CacheModeOverwriteRequest represents a runtime cache mode overwrite for the
// /route-cache/cache-mode-overwrite endpoint.
// POST reads a JSON body. DELETE reads the query parameters and ignores the mode.
type CacheModeOverwriteRequest struct {
	ChainID    domain.ChainID `json:"chainId"`
	QuoteToken string         `json:"quoteToken"`
	TradeType  string         `json:"tradeType"`
	Mode       string         `json:"mode,omitempty"`

	quoteToken domain.Token
	tradeType  domain.TradeType
	mode       domain.CacheMode
}

// CacheModeResponse is the cache mode decided for a lookup.
type CacheModeResponse struct {
	CacheMode domain.CacheMode `json:"cacheMode"`
}

// UnmarshalHTTPRequest implements http.RequestUnmarshaler.
func (r *CacheModeOverwriteRequest) UnmarshalHTTPRequest(c echo.Context) error {
	if c.Request().Method == http.MethodDelete {
		chainID, err := parseChainID(c.QueryParam("chainId"))
		if err != nil {
			return err
		}

		r.ChainID = chainID
		r.QuoteToken = c.QueryParam("quoteToken")
		r.TradeType = c.QueryParam("tradeType")
	} else {
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return err
		}

		if err := json.Unmarshal(body, r); err != nil {
			return ErrRequestBodyNotValid
		}
	}

	if r.ChainID == 0 {
		return ErrChainIDNotValid
	}

	if !common.IsHexAddress(r.QuoteToken) {
		return ErrQuoteTokenNotValid
	}
	r.quoteToken = domain.NewToken(r.ChainID, r.QuoteToken, 0, "")

	tradeType, err := domain.ParseTradeType(r.TradeType)
	if err != nil {
		return err
	}
	r.tradeType = tradeType

	if c.Request().Method != http.MethodDelete {
		mode, err := domain.ParseCacheMode(r.Mode)
		if err != nil {
			return ErrCacheModeNotValid
		}
		r.mode = mode
	}

	return nil
}

// Token returns the parsed quote token.
func (r *CacheModeOverwriteRequest) Token() domain.Token {
	return r.quoteToken
}

// ParsedTradeType returns the parsed trade type.
func (r *CacheModeOverwriteRequest) ParsedTradeType() domain.TradeType {
	return r.tradeType
}

// CacheMode returns the parsed cache mode. Empty for DELETE requests.
func (r *CacheModeOverwriteRequest) CacheMode() domain.CacheMode {
	return r.mode
}
