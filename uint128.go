package aes128

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrInvalidUint128 is returned when a value cannot be represented as a 128-bit unsigned integer.
var ErrInvalidUint128 = errors.New("aes128: invalid 128-bit value")

// A Uint128 is a block in its integer form: a 128-bit unsigned integer whose big-endian encoding is the block, so byte
// 0 of the block is the most significant byte of Hi.
type Uint128 struct {
	Hi, Lo uint64
}

// Uint128FromBytes returns the integer form of a 16-byte block.
func Uint128FromBytes(b []byte) (Uint128, error) {
	if len(b) != BlockSize {
		return Uint128{}, blockLengthError(len(b))
	}
	return uint128FromArray((*[BlockSize]byte)(b)), nil
}

// Uint128FromBig returns the integer form of x. It returns ErrInvalidUint128 if x is nil, negative, or wider than 128
// bits.
func Uint128FromBig(x *big.Int) (Uint128, error) {
	if x == nil {
		return Uint128{}, fmt.Errorf("%w: nil", ErrInvalidUint128)
	}
	if x.Sign() < 0 || x.BitLen() > 128 {
		return Uint128{}, fmt.Errorf("%w: %s", ErrInvalidUint128, x)
	}
	var b [BlockSize]byte
	x.FillBytes(b[:])
	return uint128FromArray(&b), nil
}

// ParseUint128 parses a block written as exactly 32 hexadecimal digits, with an optional 0x or 0X prefix.
func ParseUint128(s string) (Uint128, error) {
	digits := s
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		digits = s[2:]
	}
	if len(digits) != 2*BlockSize {
		return Uint128{}, fmt.Errorf("%w: %q must have %d hex digits", ErrInvalidUint128, s, 2*BlockSize)
	}

	var b [BlockSize]byte
	if _, err := hex.Decode(b[:], []byte(digits)); err != nil {
		return Uint128{}, fmt.Errorf("%w: %w", ErrInvalidUint128, err)
	}
	return uint128FromArray(&b), nil
}

// Bytes returns the 16-byte block encoding of x.
func (x Uint128) Bytes() [BlockSize]byte {
	var b [BlockSize]byte
	binary.BigEndian.PutUint64(b[:8], x.Hi)
	binary.BigEndian.PutUint64(b[8:], x.Lo)
	return b
}

// AppendBytes appends the 16-byte block encoding of x to dst and returns the resulting slice.
func (x Uint128) AppendBytes(dst []byte) []byte {
	dst = binary.BigEndian.AppendUint64(dst, x.Hi)
	return binary.BigEndian.AppendUint64(dst, x.Lo)
}

// Big returns x as a new big.Int.
func (x Uint128) Big() *big.Int {
	b := x.Bytes()
	return new(big.Int).SetBytes(b[:])
}

// Xor returns x ^ y.
func (x Uint128) Xor(y Uint128) Uint128 {
	return Uint128{Hi: x.Hi ^ y.Hi, Lo: x.Lo ^ y.Lo}
}

// String returns x as 0x followed by 32 lowercase hex digits.
func (x Uint128) String() string {
	return fmt.Sprintf("0x%016x%016x", x.Hi, x.Lo)
}

func uint128FromArray(b *[BlockSize]byte) Uint128 {
	return Uint128{
		Hi: binary.BigEndian.Uint64(b[:8]),
		Lo: binary.BigEndian.Uint64(b[8:]),
	}
}
