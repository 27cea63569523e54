package aes128_test

import (
	"encoding/hex"
	"fmt"

	"github.com/codahale/aes128"
)

func ExampleEngine_Encrypt() {
	key, _ := hex.DecodeString("2b7e151628aed2a6abf7158809cf4f3c")
	plaintext, _ := hex.DecodeString("3243f6a8885a308d313198a2e0370734")

	// Expand the key once.
	e, err := aes128.New(key)
	if err != nil {
		panic(err)
	}

	// Encrypt a single block.
	ciphertext, err := e.Encrypt(plaintext)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%x\n", ciphertext)
	// Output: 3925841d02dc09fbdc118597196a0b32
}

func ExampleEngine_Decrypt() {
	key, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	ciphertext, _ := hex.DecodeString("69c4e0d86a7b0430d8cdb78070b4c55a")

	e, err := aes128.New(key)
	if err != nil {
		panic(err)
	}

	plaintext, err := e.Decrypt(ciphertext)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%x\n", plaintext)
	// Output: 00112233445566778899aabbccddeeff
}

func ExampleEngine_EncryptUint128() {
	key, _ := aes128.ParseUint128("0x2b7e151628aed2a6abf7158809cf4f3c")
	k := key.Bytes()

	e, err := aes128.New(k[:])
	if err != nil {
		panic(err)
	}

	pt, _ := aes128.ParseUint128("0x3243f6a8885a308d313198a2e0370734")
	ct, err := e.EncryptUint128(pt)
	if err != nil {
		panic(err)
	}

	fmt.Println(ct)
	// Output: 0x3925841d02dc09fbdc118597196a0b32
}

func ExampleEngine_ChangeKey() {
	block := make([]byte, aes128.BlockSize)

	e, err := aes128.New(make([]byte, aes128.KeySize))
	if err != nil {
		panic(err)
	}

	before, _ := e.Encrypt(block)

	// An invalid key leaves the current key in place.
	if err := e.ChangeKey([]byte("short")); err != nil {
		fmt.Println(err)
	}

	after, _ := e.Encrypt(block)
	fmt.Printf("%x\n%x\n", before, after)
	// Output:
	// aes128: invalid key length: got 5 bytes, want 16
	// 66e94bd4ef8a2c3b884cfa59ca342b2e
	// 66e94bd4ef8a2c3b884cfa59ca342b2e
}

func ExampleNewWithFlags() {
	key, _ := hex.DecodeString("2b7e151628aed2a6abf7158809cf4f3c")
	plaintext, _ := hex.DecodeString("6bc1bee22e409f96e93d7e117393172a")

	// The bitsliced S-box produces the same ciphertexts without table lookups.
	e, err := aes128.NewWithFlags(key, aes128.FlagConstantTime)
	if err != nil {
		panic(err)
	}

	ciphertext, err := e.Encrypt(plaintext)
	if err != nil {
		panic(err)
	}

	fmt.Println(e.Flags())
	fmt.Printf("%x\n", ciphertext)
	// Output:
	// FlagConstantTime
	// 3ad77bb40d7a3660a89ecaf32466ef97
}
