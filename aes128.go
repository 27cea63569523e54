// Package aes128 provides a pure-Go implementation of the [AES-128] block cipher: the key schedule and the forward and
// inverse round transformations which map a 128-bit plaintext block to a 128-bit ciphertext block under a 128-bit key.
//
// The package implements the bare block transform only. It provides no modes of operation, padding, or
// authentication, and it supports only 128-bit keys.
//
// By default, SubBytes and InvSubBytes use lookup tables indexed by state bytes, which may leak timing information on
// CPUs with data caches. Engines created with [FlagConstantTime] use a bitsliced, table-free substitution instead and
// produce identical output.
//
// [AES-128]: https://nvlpubs.nist.gov/nistpubs/FIPS/NIST.FIPS.197-upd1.pdf
package aes128

import (
	"errors"
	"fmt"
)

const (
	// BlockSize is the AES block size in bytes.
	BlockSize = 16

	// KeySize is the AES-128 key size in bytes.
	KeySize = 16

	// Rounds is the number of AES-128 rounds.
	Rounds = 10

	// ScheduleWords is the number of four-byte words in an expanded AES-128 key schedule.
	ScheduleWords = 4 * (Rounds + 1)
)

var (
	// ErrInvalidKeyLength is returned when a key is not exactly KeySize bytes long.
	ErrInvalidKeyLength = errors.New("aes128: invalid key length")

	// ErrInvalidBlockLength is returned when a block is not exactly BlockSize bytes long.
	ErrInvalidBlockLength = errors.New("aes128: invalid block length")

	// ErrUninitializedKey is returned when an Engine is used before a key has been set.
	ErrUninitializedKey = errors.New("aes128: key not set")
)

// Flags selects optional Engine behavior.
type Flags uint32

const (
	// FlagDefault uses table-based byte substitution.
	FlagDefault Flags = 0

	// FlagConstantTime uses a bitsliced byte substitution with no secret-dependent memory accesses.
	FlagConstantTime Flags = 1 << 0
)

// String returns the string representation of the flags.
func (f Flags) String() string {
	switch f {
	case FlagDefault:
		return "FlagDefault"
	case FlagConstantTime:
		return "FlagConstantTime"
	default:
		return fmt.Sprintf("Flags(%#x)", uint32(f))
	}
}

func keyLengthError(n int) error {
	return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeyLength, n, KeySize)
}

func blockLengthError(n int) error {
	return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidBlockLength, n, BlockSize)
}
