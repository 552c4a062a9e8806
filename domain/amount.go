package domain

import (
	"github.com/holiman/uint256"
)

// CurrencyAmount is a raw on-chain amount of a token.
type CurrencyAmount struct {
	Token Token
	Raw   *uint256.Int
}

// NewCurrencyAmount creates a currency amount from a raw uint64 value.
func NewCurrencyAmount(token Token, raw uint64) CurrencyAmount {
	return CurrencyAmount{Token: token, Raw: uint256.NewInt(raw)}
}

// ParseCurrencyAmount parses a raw decimal amount of the given token.
func ParseCurrencyAmount(token Token, rawStr string) (CurrencyAmount, error) {
	raw, err := uint256.FromDecimal(rawStr)
	if err != nil {
		return CurrencyAmount{}, InvalidAmountError{Amount: rawStr, Err: err}
	}
	return CurrencyAmount{Token: token, Raw: raw}, nil
}

// String returns the raw amount in base 10.
func (a CurrencyAmount) String() string {
	if a.Raw == nil {
		return "0"
	}
	return a.Raw.Dec()
}

// OrderOfMagnitude returns floor(log10(raw)), or 0 for amounts below 10.
func (a CurrencyAmount) OrderOfMagnitude() int {
	if a.Raw == nil || a.Raw.IsZero() {
		return 0
	}
	return len(a.Raw.Dec()) - 1
}
