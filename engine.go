package aes128

import (
	"sync"

	"github.com/codahale/aes128/internal/bitslice"
)

// An Engine encrypts and decrypts single blocks under one AES-128 key.
//
// Engines are safe for concurrent use. ChangeKey may be called concurrently with Encrypt and Decrypt; each block
// operation uses either the old or the new schedule in full, never a mix of the two.
//
// The zero value has no key. Its Encrypt and Decrypt methods return ErrUninitializedKey until ChangeKey succeeds.
type Engine struct {
	mu       sync.RWMutex // protects schedule
	schedule *Schedule
	flags    Flags
}

// New returns an Engine keyed with the given 16-byte key. It returns an error wrapping ErrInvalidKeyLength if the key
// is not exactly KeySize bytes long.
func New(key []byte) (*Engine, error) {
	return NewWithFlags(key, FlagDefault)
}

// NewWithFlags is like New but enables the optional behavior selected by flags.
func NewWithFlags(key []byte, flags Flags) (*Engine, error) {
	e := &Engine{flags: flags}
	if err := e.ChangeKey(key); err != nil {
		return nil, err
	}
	return e, nil
}

// Flags returns the flags the Engine was created with.
func (e *Engine) Flags() Flags {
	return e.flags
}

// ChangeKey replaces the Engine's key schedule with one expanded from the given key.
//
// On error, the Engine keeps its previous key.
func (e *Engine) ChangeKey(key []byte) error {
	// Expand outside the lock so concurrent block operations only wait for the pointer swap.
	s, err := Expand(key)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.schedule = &s
	return nil
}

// Schedule returns a copy of the Engine's current key schedule.
func (e *Engine) Schedule() (Schedule, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.schedule == nil {
		return Schedule{}, ErrUninitializedKey
	}
	return *e.schedule, nil
}

// Encrypt encrypts a 16-byte plaintext block and returns the ciphertext block in a new slice.
func (e *Engine) Encrypt(block []byte) ([]byte, error) {
	var s state
	if err := e.encrypt(&s, block); err != nil {
		return nil, err
	}
	return s[:], nil
}

// Decrypt decrypts a 16-byte ciphertext block and returns the plaintext block in a new slice.
func (e *Engine) Decrypt(block []byte) ([]byte, error) {
	var s state
	if err := e.decrypt(&s, block); err != nil {
		return nil, err
	}
	return s[:], nil
}

// EncryptUint128 encrypts a block given in its big-endian integer form.
func (e *Engine) EncryptUint128(x Uint128) (Uint128, error) {
	b := x.Bytes()
	var s state
	if err := e.encrypt(&s, b[:]); err != nil {
		return Uint128{}, err
	}
	return uint128FromArray((*[BlockSize]byte)(&s)), nil
}

// DecryptUint128 decrypts a block given in its big-endian integer form.
func (e *Engine) DecryptUint128(x Uint128) (Uint128, error) {
	b := x.Bytes()
	var s state
	if err := e.decrypt(&s, b[:]); err != nil {
		return Uint128{}, err
	}
	return uint128FromArray((*[BlockSize]byte)(&s)), nil
}

func (e *Engine) encrypt(s *state, block []byte) error {
	if len(block) != BlockSize {
		return blockLengthError(len(block))
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.schedule == nil {
		return ErrUninitializedKey
	}

	copy(s[:], block)
	encryptBlock(s, e.schedule, e.subBytes())
	return nil
}

func (e *Engine) decrypt(s *state, block []byte) error {
	if len(block) != BlockSize {
		return blockLengthError(len(block))
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.schedule == nil {
		return ErrUninitializedKey
	}

	copy(s[:], block)
	decryptBlock(s, e.schedule, e.invSubBytes())
	return nil
}

func (e *Engine) subBytes() func(*state) {
	if e.flags&FlagConstantTime != 0 {
		return constantTimeSubBytes
	}
	return subBytes
}

func (e *Engine) invSubBytes() func(*state) {
	if e.flags&FlagConstantTime != 0 {
		return constantTimeInvSubBytes
	}
	return invSubBytes
}

func constantTimeSubBytes(s *state) {
	bitslice.SubBytes((*[BlockSize]byte)(s))
}

func constantTimeInvSubBytes(s *state) {
	bitslice.InvSubBytes((*[BlockSize]byte)(s))
}
