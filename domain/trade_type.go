package domain

import "strings"

// TradeType is the side of the swap whose amount is fixed by the request.
type TradeType int

const (
	// TradeTypeExactInput fixes the input amount and quotes the output token.
	TradeTypeExactInput TradeType = iota
	// TradeTypeExactOutput fixes the output amount and quotes the input token.
	TradeTypeExactOutput
)

const (
	tradeTypeExactInputStr  = "EXACT_INPUT"
	tradeTypeExactOutputStr = "EXACT_OUTPUT"
)

// ParseTradeType parses EXACT_INPUT or EXACT_OUTPUT, ignoring case.
func ParseTradeType(tradeTypeStr string) (TradeType, error) {
	switch strings.ToUpper(strings.TrimSpace(tradeTypeStr)) {
	case tradeTypeExactInputStr:
		return TradeTypeExactInput, nil
	case tradeTypeExactOutputStr:
		return TradeTypeExactOutput, nil
	default:
		return 0, InvalidTradeTypeError{TradeType: tradeTypeStr}
	}
}

// IsValid returns true for the two known trade types.
func (t TradeType) IsValid() bool {
	return t == TradeTypeExactInput || t == TradeTypeExactOutput
}

// String implements fmt.Stringer.
func (t TradeType) String() string {
	switch t {
	case TradeTypeExactInput:
		return tradeTypeExactInputStr
	case TradeTypeExactOutput:
		return tradeTypeExactOutputStr
	default:
		return "UNKNOWN"
	}
}

// QuoteToken returns the token whose amount is not fixed by the trade type:
// token out for exact input and token in for exact output.
func (t TradeType) QuoteToken(tokenIn, tokenOut Token) Token {
	if t == TradeTypeExactOutput {
		return tokenIn
	}
	return tokenOut
}

// MarshalText implements encoding.TextMarshaler.
func (t TradeType) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, InvalidTradeTypeError{TradeType: t.String()}
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TradeType) UnmarshalText(text []byte) error {
	tradeType, err := ParseTradeType(string(text))
	if err != nil {
		return err
	}
	*t = tradeType
	return nil
}
