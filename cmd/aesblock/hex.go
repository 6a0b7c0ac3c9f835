package main

import (
	"encoding/hex"
	"errors"
	"strings"
)

var errEmptyInput = errors.New("empty input")

// decodeHex accepts hex with optional embedded spaces, as FIPS 197
// prints its vectors.
func decodeHex(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return nil, errEmptyInput
	}
	return hex.DecodeString(s)
}
