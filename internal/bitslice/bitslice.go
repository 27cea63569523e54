// Package bitslice implements the AES S-box and its inverse over a whole 16-byte state without table lookups.
//
// The state is transposed into eight 16-bit planes, where bit i of plane k is bit k of byte i. Each S-box evaluation
// is then a fixed sequence of AND and XOR operations over all sixteen bytes at once: a multiplicative inversion in
// GF(2^8) (computed as x^254) composed with the AES affine transformation. There are no data-dependent branches or
// memory accesses.
package bitslice

// planes holds one bit position of every byte in the state.
type planes [8]uint16

// SubBytes replaces every byte b of state with S(b).
func SubBytes(state *[16]byte) {
	q := inv(transpose(state))
	q = rotXor(q, 0, 1, 2, 3, 4)
	q = xorConst(q, 0x63)
	untranspose(state, &q)
}

// InvSubBytes replaces every byte b of state with S⁻¹(b).
func InvSubBytes(state *[16]byte) {
	q := rotXor(transpose(state), 1, 3, 6)
	q = inv(xorConst(q, 0x05))
	untranspose(state, &q)
}

func transpose(s *[16]byte) planes {
	var q planes
	for i, b := range s {
		for k := range q {
			q[k] |= uint16(b>>k&1) << i
		}
	}
	return q
}

func untranspose(s *[16]byte, q *planes) {
	for i := range s {
		var b byte
		for k, p := range q {
			b |= byte(p>>i&1) << k
		}
		s[i] = b
	}
}

// double multiplies every byte by x modulo x^8 + x^4 + x^3 + x + 1.
func double(a planes) planes {
	return planes{a[7], a[0] ^ a[7], a[1], a[2] ^ a[7], a[3] ^ a[7], a[4], a[5], a[6]}
}

// mul multiplies a by b bytewise in GF(2^8), walking the bits of b from the top with Horner's rule.
func mul(a, b planes) planes {
	var r planes
	for j := 7; j >= 0; j-- {
		r = double(r)
		for k := range r {
			r[k] ^= a[k] & b[j]
		}
	}
	return r
}

// inv returns a^254, which is a^-1 for non-zero a and 0 for a = 0.
func inv(a planes) planes {
	a3 := mul(mul(a, a), a)
	a7 := mul(mul(a3, a3), a)
	a15 := mul(mul(a7, a7), a)
	a120 := mul(a15, a15)
	a120 = mul(a120, a120)
	a120 = mul(a120, a120)
	a127 := mul(a120, a7)
	return mul(a127, a127)
}

// rotXor returns the XOR of a rotated left (as bytes) by each of the given amounts.
func rotXor(a planes, rots ...int) planes {
	var s planes
	for _, r := range rots {
		for i := range s {
			s[i] ^= a[(i+8-r)%8]
		}
	}
	return s
}

// xorConst XORs the public constant c into every byte.
func xorConst(a planes, c byte) planes {
	for k := range a {
		if c>>k&1 == 1 {
			a[k] = ^a[k]
		}
	}
	return a
}
