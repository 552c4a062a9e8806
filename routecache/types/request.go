package types

import (
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/labstack/echo/v4"

	"github.com/dexroute/rcs/domain"
)

// GetCachedRoutesRequest represents a cached routes lookup for the /route-cache/cached-routes
// and /route-cache/cache-mode endpoints.
type GetCachedRoutesRequest struct {
	ChainID   domain.ChainID
	TokenIn   domain.Token
	TokenOut  domain.Token
	Amount    domain.CurrencyAmount
	TradeType domain.TradeType
	Protocols []domain.Protocol
	// BlockNumber is only set if HasBlockNumber is true. Otherwise, the chain head is used.
	BlockNumber    uint64
	HasBlockNumber bool
	Optimistic     bool
}

// UnmarshalHTTPRequest implements http.RequestUnmarshaler.
func (r *GetCachedRoutesRequest) UnmarshalHTTPRequest(c echo.Context) error {
	chainID, err := parseChainID(c.QueryParam("chainId"))
	if err != nil {
		return err
	}
	r.ChainID = chainID

	r.TradeType, err = domain.ParseTradeType(c.QueryParam("tradeType"))
	if err != nil {
		return err
	}

	tokenInStr := c.QueryParam("tokenIn")
	if !common.IsHexAddress(tokenInStr) {
		return ErrTokenInNotValid
	}
	r.TokenIn = domain.NewToken(chainID, tokenInStr, 0, "")

	tokenOutStr := c.QueryParam("tokenOut")
	if !common.IsHexAddress(tokenOutStr) {
		return ErrTokenOutNotValid
	}
	r.TokenOut = domain.NewToken(chainID, tokenOutStr, 0, "")

	amountStr := c.QueryParam("amount")
	if amountStr == "" {
		return ErrAmountNotSpecified
	}

	// The amount is denominated in the fixed side of the trade.
	amountToken := r.TokenIn
	if r.TradeType == domain.TradeTypeExactOutput {
		amountToken = r.TokenOut
	}

	r.Amount, err = domain.ParseCurrencyAmount(amountToken, amountStr)
	if err != nil {
		return err
	}

	r.Protocols, err = domain.ParseProtocols(c.QueryParam("protocols"))
	if err != nil {
		return err
	}

	r.BlockNumber, r.HasBlockNumber, err = domain.ParseUint64QueryParam(c, "blockNumber")
	if err != nil {
		return ErrBlockNumberNotValid
	}

	r.Optimistic, err = domain.ParseBooleanQueryParam(c, "optimistic")
	if err != nil {
		return err
	}

	return nil
}

// Validate validates the GetCachedRoutesRequest.
func (r *GetCachedRoutesRequest) Validate() error {
	if err := domain.ValidateInputTokens(r.TokenIn, r.TokenOut); err != nil {
		return err
	}

	if r.Amount.Raw == nil || r.Amount.Raw.IsZero() {
		return ErrAmountNotValid
	}

	return nil
}

// QuoteToken returns the token whose amount is quoted.
func (r *GetCachedRoutesRequest) QuoteToken() domain.Token {
	return r.TradeType.QuoteToken(r.TokenIn, r.TokenOut)
}

func parseChainID(chainIDStr string) (domain.ChainID, error) {
	chainID, err := strconv.ParseUint(chainIDStr, 10, 64)
	if err != nil || chainID == 0 {
		return 0, ErrChainIDNotValid
	}
	return domain.ChainID(chainID), nil
}
