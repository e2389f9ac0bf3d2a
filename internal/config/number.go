package config

import (
	"fmt"
	"math/big"
	"strings"
)

// ParseBigInt parses a non-negative integer written in hex (with a 0x
// prefix, or containing a-f digits) or in decimal.
func ParseBigInt(v string) (*big.Int, error) {
	s := strings.TrimSpace(v)
	s = strings.ReplaceAll(s, "_", "")

	base := 10
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s = s[2:]
		base = 16
	case strings.ContainsAny(s, "abcdefABCDEF"):
		base = 16
	}
	if s == "" {
		return nil, fmt.Errorf("invalid number format: %q", v)
	}

	z, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("invalid number format: %q", v)
	}
	if z.Sign() < 0 {
		return nil, fmt.Errorf("number must not be negative: %q", v)
	}
	return z, nil
}
