package aes128

import "crypto/cipher"

// Block returns a cipher.Block backed by the Engine, for use with code written against the standard library's block
// cipher interface.
//
// Like the standard library's implementation, the returned value panics if dst or src is shorter than BlockSize or if
// the Engine has no key. Only the first BlockSize bytes of src are read and of dst are written; dst and src may
// overlap entirely.
func (e *Engine) Block() cipher.Block {
	return engineBlock{e}
}

type engineBlock struct {
	e *Engine
}

func (b engineBlock) BlockSize() int {
	return BlockSize
}

func (b engineBlock) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes128: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes128: output not full block")
	}

	var s state
	if err := b.e.encrypt(&s, src[:BlockSize]); err != nil {
		panic(err)
	}
	copy(dst, s[:])
}

func (b engineBlock) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes128: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes128: output not full block")
	}

	var s state
	if err := b.e.decrypt(&s, src[:BlockSize]); err != nil {
		panic(err)
	}
	copy(dst, s[:])
}
