package domain

import (
	"bytes"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
)

// ChainID is the EVM chain identifier.
type ChainID uint64

// String implements fmt.Stringer.
func (c ChainID) String() string {
	return strconv.FormatUint(uint64(c), 10)
}

// Token represents an ERC20 token on a given chain.
type Token struct {
	ChainID  ChainID        `json:"chainId"`
	Address  common.Address `json:"address"`
	Decimals uint8          `json:"decimals"`
	Symbol   string         `json:"symbol,omitempty"`
}

// NewToken creates a token from its hex address.
func NewToken(chainID ChainID, address string, decimals uint8, symbol string) Token {
	return Token{
		ChainID:  chainID,
		Address:  common.HexToAddress(address),
		Decimals: decimals,
		Symbol:   symbol,
	}
}

// Equals returns true if both tokens live on the same chain at the same address.
// Decimals and symbol are metadata and are not compared.
func (t Token) Equals(other Token) bool {
	return t.ChainID == other.ChainID && t.Address == other.Address
}

// SortsBefore returns true if the token address is lower than the other's.
// This is the ordering pools use for token0 and token1.
func (t Token) SortsBefore(other Token) bool {
	return bytes.Compare(t.Address.Bytes(), other.Address.Bytes()) < 0
}

// String returns the EIP-55 checksummed address.
func (t Token) String() string {
	return t.Address.Hex()
}
