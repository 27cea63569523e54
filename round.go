package aes128

// state is the cipher state: a 4x4 byte matrix stored column-major, so byte i is at row i%4, column i/4.
type state [BlockSize]byte

func addRoundKey(s *state, k *[4]Word) {
	for c := range 4 {
		s[4*c+0] ^= k[c][0]
		s[4*c+1] ^= k[c][1]
		s[4*c+2] ^= k[c][2]
		s[4*c+3] ^= k[c][3]
	}
}

func subBytes(s *state) {
	for i := range s {
		s[i] = sbox[s[i]]
	}
}

func invSubBytes(s *state) {
	for i := range s {
		s[i] = invSbox[s[i]]
	}
}

// shiftRows rotates row r left by r positions.
func shiftRows(s *state) {
	t := *s
	for c := range 4 {
		for r := 1; r < 4; r++ {
			s[4*c+r] = t[4*((c+r)%4)+r]
		}
	}
}

// invShiftRows rotates row r right by r positions.
func invShiftRows(s *state) {
	t := *s
	for c := range 4 {
		for r := 1; r < 4; r++ {
			s[4*c+r] = t[4*((c+4-r)%4)+r]
		}
	}
}

// mixColumns multiplies each column by the circulant matrix [2 3 1 1].
func mixColumns(s *state) {
	for c := 0; c < BlockSize; c += 4 {
		a0, a1, a2, a3 := s[c], s[c+1], s[c+2], s[c+3]
		s[c+0] = xtime(a0) ^ mul3(a1) ^ a2 ^ a3
		s[c+1] = a0 ^ xtime(a1) ^ mul3(a2) ^ a3
		s[c+2] = a0 ^ a1 ^ xtime(a2) ^ mul3(a3)
		s[c+3] = mul3(a0) ^ a1 ^ a2 ^ xtime(a3)
	}
}

// invMixColumns multiplies each column by the circulant matrix [14 11 13 9].
func invMixColumns(s *state) {
	for c := 0; c < BlockSize; c += 4 {
		a0, a1, a2, a3 := s[c], s[c+1], s[c+2], s[c+3]
		s[c+0] = mul14(a0) ^ mul11(a1) ^ mul13(a2) ^ mul9(a3)
		s[c+1] = mul9(a0) ^ mul14(a1) ^ mul11(a2) ^ mul13(a3)
		s[c+2] = mul13(a0) ^ mul9(a1) ^ mul14(a2) ^ mul11(a3)
		s[c+3] = mul11(a0) ^ mul13(a1) ^ mul9(a2) ^ mul14(a3)
	}
}

// xtime multiplies b by x in GF(2^8) modulo x^8 + x^4 + x^3 + x + 1.
func xtime(b byte) byte {
	return b<<1 ^ (b>>7)*0x1b
}

func mul3(b byte) byte {
	return xtime(b) ^ b
}

func mul9(b byte) byte {
	return xtime(xtime(xtime(b))) ^ b
}

func mul11(b byte) byte {
	b2 := xtime(b)
	return xtime(xtime(b2)) ^ b2 ^ b
}

func mul13(b byte) byte {
	b4 := xtime(xtime(b))
	return xtime(b4) ^ b4 ^ b
}

func mul14(b byte) byte {
	b2 := xtime(b)
	b4 := xtime(b2)
	return xtime(b4) ^ b4 ^ b2
}

// encryptBlock runs the full AES-128 cipher over s using the given schedule.
func encryptBlock(s *state, k *Schedule, sub func(*state)) {
	addRoundKey(s, k.roundWords(0))
	for round := 1; round < Rounds; round++ {
		sub(s)
		shiftRows(s)
		mixColumns(s)
		addRoundKey(s, k.roundWords(round))
	}
	sub(s)
	shiftRows(s)
	addRoundKey(s, k.roundWords(Rounds))
}

// decryptBlock runs the inverse cipher over s using the given schedule.
func decryptBlock(s *state, k *Schedule, invSub func(*state)) {
	addRoundKey(s, k.roundWords(Rounds))
	invShiftRows(s)
	invSub(s)
	for round := Rounds - 1; round > 0; round-- {
		addRoundKey(s, k.roundWords(round))
		invMixColumns(s)
		invShiftRows(s)
		invSub(s)
	}
	addRoundKey(s, k.roundWords(0))
}
