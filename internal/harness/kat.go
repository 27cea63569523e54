package harness

import (
	"bytes"
	"crypto/cipher"
	"encoding/hex"
	"errors"
	"fmt"
)

// A KnownAnswer is a published AES-128 test vector, hex-encoded.
type KnownAnswer struct {
	Name       string
	Key        string
	Plaintext  string
	Ciphertext string
}

// KnownAnswers are the AES-128 vectors from FIPS-197 and NIST SP 800-38A (ECB-AES128), plus the all-zero vector.
var KnownAnswers = []KnownAnswer{ //nolint:gochecknoglobals // test vectors
	{"FIPS-197 B", "2b7e151628aed2a6abf7158809cf4f3c", "3243f6a8885a308d313198a2e0370734", "3925841d02dc09fbdc118597196a0b32"},
	{"FIPS-197 C.1", "000102030405060708090a0b0c0d0e0f", "00112233445566778899aabbccddeeff", "69c4e0d86a7b0430d8cdb78070b4c55a"},
	{"SP 800-38A F.1.1 #1", "2b7e151628aed2a6abf7158809cf4f3c", "6bc1bee22e409f96e93d7e117393172a", "3ad77bb40d7a3660a89ecaf32466ef97"},
	{"SP 800-38A F.1.1 #2", "2b7e151628aed2a6abf7158809cf4f3c", "ae2d8a571e03ac9c9eb76fac45af8e51", "f5d3d58503b9699de785895a96fdbaaf"},
	{"SP 800-38A F.1.1 #3", "2b7e151628aed2a6abf7158809cf4f3c", "30c81c46a35ce411e5fbc1191a0a52ef", "43b1cd7f598ece23881b00e3ed030688"},
	{"SP 800-38A F.1.1 #4", "2b7e151628aed2a6abf7158809cf4f3c", "f69f2445df4f9b17ad2b417be66c3710", "7b0c785e27e8ad3f8223207104725dd4"},
	{"all zero", "00000000000000000000000000000000", "00000000000000000000000000000000", "66e94bd4ef8a2c3b884cfa59ca342b2e"},
	{"counting", "000102030405060708090a0b0c0d0e0f", "000102030405060708090a0b0c0d0e0f", "0a940bb5416ef045f1c39458c653ea5a"},
}

// Check runs every known-answer vector in both directions through ciphers created by newCipher and returns the joined
// errors for every vector which failed.
func Check(newCipher func(key []byte) (cipher.Block, error)) error {
	var errs []error
	for _, v := range KnownAnswers {
		if err := v.check(newCipher); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", v.Name, err))
		}
	}
	return errors.Join(errs...)
}

func (v KnownAnswer) check(newCipher func(key []byte) (cipher.Block, error)) error {
	key, err := hex.DecodeString(v.Key)
	if err != nil {
		return fmt.Errorf("key: %w", err)
	}
	pt, err := hex.DecodeString(v.Plaintext)
	if err != nil {
		return fmt.Errorf("plaintext: %w", err)
	}
	ct, err := hex.DecodeString(v.Ciphertext)
	if err != nil {
		return fmt.Errorf("ciphertext: %w", err)
	}

	c, err := newCipher(key)
	if err != nil {
		return err
	}

	got := make([]byte, len(pt))
	c.Encrypt(got, pt)
	if !bytes.Equal(got, ct) {
		return fmt.Errorf("Encrypt(%s) = %x, want = %s", v.Plaintext, got, v.Ciphertext)
	}

	c.Decrypt(got, ct)
	if !bytes.Equal(got, pt) {
		return fmt.Errorf("Decrypt(%s) = %x, want = %s", v.Ciphertext, got, v.Plaintext)
	}

	return nil
}
