// Package jsonio centralizes JSON encoding for the module so every
// surface (CLI output, batch reports) serializes the same way.
package jsonio

import (
	"github.com/bytedance/sonic"
)

// Marshal encodes v as compact JSON
func Marshal(v any) ([]byte, error) {
	return sonic.Marshal(v)
}

// MarshalIndent encodes v as indented JSON suitable for terminal output
func MarshalIndent(v any) ([]byte, error) {
	return sonic.MarshalIndent(v, "", "  ")
}

// Unmarshal decodes JSON data into v
func Unmarshal(data []byte, v any) error {
	return sonic.Unmarshal(data, v)
}
