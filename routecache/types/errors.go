package types

import (
	"errors"
)

var (
	ErrChainIDNotValid     = errors.New("chainId is not valid")
	ErrTokenInNotValid     = errors.New("tokenIn is not a valid address")
	ErrTokenOutNotValid    = errors.New("tokenOut is not a valid address")
	ErrQuoteTokenNotValid  = errors.New("quoteToken is not a valid address")
	ErrAmountNotSpecified  = errors.New("amount is not specified")
	ErrAmountNotValid      = errors.New("amount must be a positive integer")
	ErrBlockNumberNotValid = errors.New("blockNumber is not valid")
	ErrBlockNumberRequired = errors.New("blockNumber is required for chains other than the server's chain")
	ErrCacheModeNotValid   = errors.New("mode is not valid")
	ErrRequestBodyNotValid = errors.New("request body is not valid")
)
