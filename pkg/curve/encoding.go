package curve

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// SEC 1, Version 2.0, Section 2.3.3 compressed encoding.
const (
	// CompressedSize is the size of a compressed point in bytes.
	CompressedSize = 1 + KeySize

	prefixCompressedEven = 0x02
	prefixCompressedOdd  = 0x03
)

// ParseCompressed decodes a 33-byte compressed public key
// (parity prefix | x) into a point.
func (c *Curve) ParseCompressed(b []byte) (Point, error) {
	if len(b) != CompressedSize {
		return Point{}, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidEncoding, CompressedSize, len(b))
	}

	var parity uint
	switch b[0] {
	case prefixCompressedEven:
		parity = 0
	case prefixCompressedOdd:
		parity = 1
	default:
		return Point{}, fmt.Errorf("%w: bad prefix 0x%02x", ErrInvalidEncoding, b[0])
	}

	x := new(big.Int).SetBytes(b[1:])
	return c.XToPoint(x, parity)
}

// ParseCompressedHex is ParseCompressed for a hex string, with or
// without a 0x prefix.
func (c *Curve) ParseCompressedHex(s string) (Point, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")

	b, err := hex.DecodeString(s)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return c.ParseCompressed(b)
}

// CompressedBytes returns the compressed encoding of p. The identity has
// no compressed form and yields nil.
func (c *Curve) CompressedBytes(p Point) []byte {
	if p.Inf {
		return nil
	}
	out := make([]byte, CompressedSize)
	out[0] = prefixCompressedEven
	if p.Y.Bit(0) == 1 {
		out[0] = prefixCompressedOdd
	}
	p.X.FillBytes(out[1:])
	return out
}
