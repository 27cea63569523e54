package aes128_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/codahale/aes128"
)

// FIPS 197 Appendix A.1.
func TestExpand(t *testing.T) {
	key := mustHex(t, "2b7e151628aed2a6abf7158809cf4f3c")
	s, err := aes128.Expand(key)
	if err != nil {
		t.Fatal(err)
	}

	for _, tt := range []struct {
		i    int
		want string
	}{
		{0, "2b7e1516"},
		{3, "09cf4f3c"},
		{4, "a0fafe17"},
		{5, "88542cb1"},
		{6, "23a33939"},
		{7, "2a6c7605"},
		{8, "f2c295f2"},
		{40, "d014f9a8"},
		{41, "c9ee2589"},
		{42, "e13f0cc8"},
		{43, "b6630ca6"},
	} {
		w := s.Word(tt.i)
		if got := hex.EncodeToString(w[:]); got != tt.want {
			t.Errorf("w[%d] = %s, want = %s", tt.i, got, tt.want)
		}
	}

	if got := s.RoundKey(0); !bytes.Equal(got[:], key) {
		t.Errorf("RoundKey(0) = %x, want = %x", got, key)
	}

	if got, want := s.RoundKey(aes128.Rounds), mustHex(t, "d014f9a8c9ee2589e13f0cc8b6630ca6"); !bytes.Equal(got[:], want) {
		t.Errorf("RoundKey(10) = %x, want = %x", got, want)
	}
}

func TestExpand_deterministic(t *testing.T) {
	key := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	a, err := aes128.Expand(key)
	if err != nil {
		t.Fatal(err)
	}
	b, err := aes128.Expand(bytes.Clone(key))
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("Expand returned different schedules for the same key")
	}

	key[0] ^= 1
	c, err := aes128.Expand(key)
	if err != nil {
		t.Fatal(err)
	}
	if a == c {
		t.Error("Expand returned the same schedule for different keys")
	}
}

func TestExpand_invalidKeyLength(t *testing.T) {
	for _, n := range []int{0, 1, 15, 17, 24, 32} {
		if _, err := aes128.Expand(make([]byte, n)); !errors.Is(err, aes128.ErrInvalidKeyLength) {
			t.Errorf("Expand(%d-byte key) err = %v, want = %v", n, err, aes128.ErrInvalidKeyLength)
		}
	}
}
