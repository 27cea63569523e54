package harness

import (
	"bytes"
	"crypto/cipher"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
)

func TestCheck(t *testing.T) {
	if err := Check(Reference); err != nil {
		t.Fatal(err)
	}
}

func TestCheck_failure(t *testing.T) {
	err := Check(func(key []byte) (cipher.Block, error) {
		b, err := Reference(key)
		if err != nil {
			return nil, err
		}
		return &flipper{b}, nil
	})
	if err == nil {
		t.Fatal("Check accepted a broken cipher")
	}

	for _, v := range KnownAnswers {
		if !bytes.Contains([]byte(err.Error()), []byte(v.Name)) {
			t.Errorf("error %q does not name vector %q", err, v.Name)
		}
	}
}

func TestKnownAnswer_badHex(t *testing.T) {
	for _, v := range []KnownAnswer{
		{Name: "key", Key: "zz", Plaintext: KnownAnswers[0].Plaintext, Ciphertext: KnownAnswers[0].Ciphertext},
		{Name: "plaintext", Key: KnownAnswers[0].Key, Plaintext: "0", Ciphertext: KnownAnswers[0].Ciphertext},
		{Name: "ciphertext", Key: KnownAnswers[0].Key, Plaintext: KnownAnswers[0].Plaintext, Ciphertext: "0g"},
	} {
		err := v.check(Reference)
		if err == nil || !strings.HasPrefix(err.Error(), v.Name+": ") {
			t.Errorf("check(%s) err = %v, want a %s decoding error", v.Name, err, v.Name)
		}
	}
}

func TestCompare(t *testing.T) {
	a, b := newReference(t), newReference(t)

	r, err := Compare(a, b, 256, []byte("seed"))
	if err != nil {
		t.Fatal(err)
	}

	if !r.OK() {
		t.Errorf("Compare found %d mismatches between identical ciphers", len(r.Mismatches))
	}
	if r.Blocks != 256 {
		t.Errorf("Blocks = %d, want = 256", r.Blocks)
	}
	if len(r.DigestA) != 32 {
		t.Errorf("len(DigestA) = %d, want = 32", len(r.DigestA))
	}

	r2, err := Compare(a, b, 256, []byte("seed"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(r.DigestA, r2.DigestA) {
		t.Error("Compare is not deterministic for a fixed seed")
	}

	r3, err := Compare(a, b, 256, []byte("other seed"))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(r.DigestA, r3.DigestA) {
		t.Error("Compare produced the same blocks for different seeds")
	}
}

func TestCompare_mismatch(t *testing.T) {
	r, err := Compare(newReference(t), &flipper{newReference(t)}, 16, nil)
	if err != nil {
		t.Fatal(err)
	}

	if r.OK() {
		t.Fatal("Compare accepted a broken cipher")
	}
	if got, want := len(r.Mismatches), 16; got != want {
		t.Fatalf("len(Mismatches) = %d, want = %d", got, want)
	}

	m := r.Mismatches[3]
	if m.Index != 3 {
		t.Errorf("Index = %d, want = 3", m.Index)
	}
	if m.A[0]^m.B[0] != 1 || !bytes.Equal(m.A[1:], m.B[1:]) {
		t.Errorf("A = %x, B = %x, want a one-bit difference", m.A, m.B)
	}
	if bytes.Equal(r.DigestA, r.DigestB) {
		t.Error("digests of differing ciphertexts are equal")
	}
}

func TestCompare_blockSize(t *testing.T) {
	if _, err := Compare(newReference(t), wideBlock{}, 1, nil); !errors.Is(err, ErrBlockSize) {
		t.Errorf("err = %v, want = %v", err, ErrBlockSize)
	}
}

func TestMonteCarlo(t *testing.T) {
	c := newReference(t)

	var zero [16]byte
	got := MonteCarlo(c, zero, 1000)
	if want := "adc883cf76c234032f31b33734aa4b51"; hex.EncodeToString(got[:]) != want {
		t.Errorf("MonteCarlo(0, 1000) = %x, want = %s", got, want)
	}

	if one := MonteCarlo(c, zero, 1); hex.EncodeToString(one[:]) != "66e94bd4ef8a2c3b884cfa59ca342b2e" {
		t.Errorf("MonteCarlo(0, 1) = %x", one)
	}

	if back := MonteCarloInverse(c, got, 1000); back != zero {
		t.Errorf("MonteCarloInverse(MonteCarlo(0, 1000), 1000) = %x", back)
	}

	if same := MonteCarlo(c, got, 0); same != got {
		t.Errorf("MonteCarlo(x, 0) = %x, want = %x", same, got)
	}
}

func newReference(t *testing.T) cipher.Block {
	t.Helper()

	b, err := Reference(make([]byte, 16))
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// flipper flips the low bit of the first byte of every ciphertext.
type flipper struct {
	cipher.Block
}

func (f *flipper) Encrypt(dst, src []byte) {
	f.Block.Encrypt(dst, src)
	dst[0] ^= 1
}

type wideBlock struct{}

func (wideBlock) BlockSize() int { return 32 }
func (wideBlock) Encrypt(dst, src []byte) { copy(dst, src) }
func (wideBlock) Decrypt(dst, src []byte) { copy(dst, src) }
