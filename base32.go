package go_nano

// base32Lookup maps an ASCII character to its 5-bit value, or -1.
var base32Lookup = func() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(BASE32_ALPHABET); i++ {
		t[BASE32_ALPHABET[i]] = int8(i)
	}
	return t
}()

// EncodeBase32 encodes the first length bits of bits with the Nano
// alphabet, 5 bits per character, most significant bit first. length must
// be a multiple of 5 and no larger than len(bits).
func EncodeBase32(bits []bool, length int) (string, error) {
	if length < 0 || length%BASE32_BITS_PER_CHAR != 0 || length > len(bits) {
		return "", NewCodecError("encode base32", "", ErrInvalidBitLength)
	}

	out := make([]byte, length/BASE32_BITS_PER_CHAR)
	for i := range out {
		var v byte
		for _, bit := range bits[i*BASE32_BITS_PER_CHAR : (i+1)*BASE32_BITS_PER_CHAR] {
			v <<= 1
			if bit {
				v |= 1
			}
		}
		out[i] = BASE32_ALPHABET[v]
	}
	return string(out), nil
}

// DecodeBase32 decodes s into 5*len(s) bits. Any character outside the
// alphabet is rejected with ErrInvalidBase32Character.
func DecodeBase32(s string) ([]bool, error) {
	bits := make([]bool, 0, len(s)*BASE32_BITS_PER_CHAR)
	for i := 0; i < len(s); i++ {
		v := base32Lookup[s[i]]
		if v < 0 {
			return nil, NewCodecError("decode base32", s, ErrInvalidBase32Character)
		}
		for j := BASE32_BITS_PER_CHAR - 1; j >= 0; j-- {
			bits = append(bits, v&(1<<j) != 0)
		}
	}
	return bits, nil
}

// IsBase32 reports whether every character of s is in the alphabet.
func IsBase32(s string) bool {
	for i := 0; i < len(s); i++ {
		if base32Lookup[s[i]] < 0 {
			return false
		}
	}
	return true
}
