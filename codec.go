package go_nano

import (
	"encoding/hex"
	"strings"
)

// HexToBytes decodes a hex string. Upper and lower case digits are both
// accepted; odd lengths and non-hex characters are rejected.
func HexToBytes(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, NewCodecError("decode hex", s, ErrInvalidHex)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, NewCodecError("decode hex", s, ErrInvalidHex)
	}
	return b, nil
}

// BytesToHex encodes b as lower-case hex.
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// hexToFixed decodes s into dst, requiring exactly len(dst) bytes.
func hexToFixed(operation, s string, dst []byte) error {
	if len(s) != len(dst)*2 {
		return NewCodecError(operation, s, ErrInvalidLength)
	}
	b, err := HexToBytes(s)
	if err != nil {
		return NewCodecError(operation, s, ErrInvalidHex)
	}
	copy(dst, b)
	return nil
}

// isHexOfLength reports whether s is exactly n hex characters.
func isHexOfLength(s string, n int) bool {
	if len(s) != n {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool {
		return !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F')
	}) == -1
}

// ReverseBytes flips the byte order of b in place. It converts between the
// big-endian form used in hex and the little-endian form hashed by the
// proof-of-work and address checksum.
func ReverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// BytesToBitArray expands each byte into 8 booleans, most significant bit
// first.
func BytesToBitArray(b []byte) []bool {
	bits := make([]bool, len(b)*8)
	for i, v := range b {
		for j := 0; j < 8; j++ {
			bits[i*8+j] = v&(0x80>>j) != 0
		}
	}
	return bits
}

// BitArrayToBytes packs bits, most significant bit first, into bytes.
// len(bits) must be a multiple of 8.
func BitArrayToBytes(bits []bool) ([]byte, error) {
	if len(bits)%8 != 0 {
		return nil, NewCodecError("pack bits", "", ErrInvalidBitLength)
	}
	b := make([]byte, len(bits)/8)
	for i, bit := range bits {
		if bit {
			b[i/8] |= 0x80 >> (i % 8)
		}
	}
	return b, nil
}
