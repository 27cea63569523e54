// Package harness compares block cipher implementations against each other, usually an Engine against the standard
// library's crypto/aes.
package harness

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha3"
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/sys/cpu"
)

// ErrBlockSize is returned when the compared implementations do not both use 16-byte blocks.
var ErrBlockSize = errors.New("harness: block size must be 16")

// A Mismatch records one block for which two implementations disagreed.
type Mismatch struct {
	Index     int    // Index of the block in the generated sequence.
	Plaintext []byte // Plaintext block.
	A, B      []byte // Ciphertexts produced by each implementation.
}

// A Report summarizes a comparison run.
type Report struct {
	Blocks     int        // Number of blocks compared.
	Mismatches []Mismatch // Blocks whose ciphertexts or cross-decryptions differed.
	DigestA    []byte     // BLAKE2b-256 of every ciphertext produced by A, in order.
	DigestB    []byte     // BLAKE2b-256 of every ciphertext produced by B, in order.
}

// OK returns true if both implementations agreed on every block.
func (r *Report) OK() bool {
	return len(r.Mismatches) == 0 && bytes.Equal(r.DigestA, r.DigestB)
}

// Reference returns the standard library's AES implementation keyed with key.
func Reference(key []byte) (cipher.Block, error) {
	return aes.NewCipher(key)
}

// ReferenceAccelerated returns true if the standard library's AES implementation runs on dedicated CPU instructions.
func ReferenceAccelerated() bool {
	return cpu.X86.HasAES || cpu.ARM64.HasAES || cpu.S390X.HasAES
}

// Compare encrypts the given number of pseudorandom plaintext blocks with both a and b. Each ciphertext is then
// decrypted by the other implementation and must yield the original plaintext. The plaintexts are drawn from SHAKE128
// keyed with seed, so the same seed always produces the same blocks.
func Compare(a, b cipher.Block, blocks int, seed []byte) (Report, error) {
	if a.BlockSize() != aes.BlockSize || b.BlockSize() != aes.BlockSize {
		return Report{}, ErrBlockSize
	}

	drbg := sha3.NewSHAKE128()
	_, _ = drbg.Write([]byte("aes128 harness"))
	_, _ = drbg.Write(seed)

	ha, err := blake2b.New256(nil)
	if err != nil {
		return Report{}, fmt.Errorf("harness: %w", err)
	}
	hb, err := blake2b.New256(nil)
	if err != nil {
		return Report{}, fmt.Errorf("harness: %w", err)
	}

	r := Report{Blocks: blocks}
	var pt, ctA, ctB, ptA, ptB [aes.BlockSize]byte
	for i := range blocks {
		_, _ = drbg.Read(pt[:])

		a.Encrypt(ctA[:], pt[:])
		b.Encrypt(ctB[:], pt[:])
		_, _ = ha.Write(ctA[:])
		_, _ = hb.Write(ctB[:])

		a.Decrypt(ptA[:], ctB[:])
		b.Decrypt(ptB[:], ctA[:])

		if ctA != ctB || ptA != pt || ptB != pt {
			r.Mismatches = append(r.Mismatches, Mismatch{
				Index:     i,
				Plaintext: bytes.Clone(pt[:]),
				A:         bytes.Clone(ctA[:]),
				B:         bytes.Clone(ctB[:]),
			})
		}
	}

	r.DigestA = ha.Sum(nil)
	r.DigestB = hb.Sum(nil)
	return r, nil
}

// MonteCarlo encrypts block iterations times, feeding each ciphertext back in as the next plaintext, and returns the
// final ciphertext.
func MonteCarlo(c cipher.Block, block [aes.BlockSize]byte, iterations int) [aes.BlockSize]byte {
	for range iterations {
		c.Encrypt(block[:], block[:])
	}
	return block
}

// MonteCarloInverse decrypts block iterations times, feeding each plaintext back in as the next ciphertext. It undoes
// MonteCarlo with the same key and iteration count.
func MonteCarloInverse(c cipher.Block, block [aes.BlockSize]byte, iterations int) [aes.BlockSize]byte {
	for range iterations {
		c.Decrypt(block[:], block[:])
	}
	return block
}
