package domain

import (
	"strings"
)

// ParseProtocols parses a comma-separated list of protocols.
// The result is sorted and deduplicated.
func ParseProtocols(protocolsParam string) ([]Protocol, error) {
	var protocols []Protocol
	for _, protocolStr := range splitAndTrim(protocolsParam, ",") {
		protocol, err := ParseProtocol(protocolStr)
		if err != nil {
			return nil, err
		}
		protocols = append(protocols, protocol)
	}

	return SortProtocols(protocols), nil
}

// ValidateInputTokens returns nil if the two tokens differ, otherwise an error.
// This is to be used as a parameter validation for queries.
func ValidateInputTokens(tokenA, tokenB Token) error {
	if tokenA.Equals(tokenB) {
		return SameTokenError{Token: tokenA.String()}
	}

	return nil
}

// splitAndTrim splits a string by a separator and trims the resulting strings.
func splitAndTrim(s, sep string) []string {
	var result []string
	for _, val := range strings.Split(s, sep) {
		trimmed := strings.TrimSpace(val)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
