package aes128

// A Word is a four-byte column of a round key.
type Word [4]byte

// A Schedule is an expanded AES-128 key: ScheduleWords words, four per round key. Words 0-3 are the cipher key itself.
//
// Schedules are plain values and compare equal if and only if they were expanded from the same key.
type Schedule [ScheduleWords]Word

// Expand runs the AES-128 key expansion over the given key. It returns an error wrapping ErrInvalidKeyLength if the
// key is not exactly KeySize bytes long.
func Expand(key []byte) (Schedule, error) {
	var s Schedule
	if len(key) != KeySize {
		return s, keyLengthError(len(key))
	}

	for i := range 4 {
		copy(s[i][:], key[4*i:4*i+4])
	}

	for i := 4; i < ScheduleWords; i++ {
		temp := s[i-1]
		if i%4 == 0 {
			temp = subWord(rotWord(temp))
			temp[0] ^= rcon[i/4]
		}
		for j := range 4 {
			s[i][j] = s[i-4][j] ^ temp[j]
		}
	}

	return s, nil
}

// Word returns word i of the schedule. It panics if i is outside [0, ScheduleWords).
func (s *Schedule) Word(i int) Word {
	return s[i]
}

// RoundKey returns the 16-byte round key for the given round, in the same column-major layout as a block. It panics if
// round is outside [0, Rounds].
func (s *Schedule) RoundKey(round int) [BlockSize]byte {
	var k [BlockSize]byte
	for c := range 4 {
		copy(k[4*c:], s[4*round+c][:])
	}
	return k
}

// roundWords returns the four words of the given round key.
func (s *Schedule) roundWords(round int) *[4]Word {
	return (*[4]Word)(s[4*round : 4*round+4])
}

func rotWord(w Word) Word {
	return Word{w[1], w[2], w[3], w[0]}
}

func subWord(w Word) Word {
	return Word{sbox[w[0]], sbox[w[1]], sbox[w[2]], sbox[w[3]]}
}
