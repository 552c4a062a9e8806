// Package json is the JSON codec used across the service.
// It is a drop-in replacement for encoding/json backed by json-iterator.
package json

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

// Marshal returns the JSON encoding of v.
func Marshal(v interface{}) ([]byte, error) {
	return jsonCodec.Marshal(v)
}

// MarshalIndent is like Marshal but applies indentation to format the output.
func MarshalIndent(v interface{}, prefix, indent string) ([]byte, error) {
	return jsonCodec.MarshalIndent(v, prefix, indent)
}

// Unmarshal parses the JSON-encoded data and stores the result in the value pointed to by v.
func Unmarshal(data []byte, v interface{}) error {
	return jsonCodec.Unmarshal(data, v)
}

// RawMessage is a raw encoded JSON value.
type RawMessage = jsoniter.RawMessage

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader) *jsoniter.Decoder {
	return jsonCodec.NewDecoder(r)
}
