package go_nano

import (
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
)

// newHash returns an unkeyed BLAKE2b hash with the given output size.
// Sizes used by the protocol are 5, 8, 32 and 64 bytes.
func newHash(size int) hash.Hash {
	h, err := blake2b.New(size, nil)
	if err != nil {
		// Only reachable with a size outside [1, 64]; sizes are constants.
		panic(fmt.Sprintf("blake2b: unsupported output size %d: %v", size, err))
	}
	return h
}

// sumHash hashes the concatenation of parts into a digest of size bytes.
func sumHash(size int, parts ...[]byte) []byte {
	h := newHash(size)
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

// hash256 is BLAKE2b-256 over the concatenation of parts.
func hash256(parts ...[]byte) [BLOCK_DIGEST_LENGTH]byte {
	var out [BLOCK_DIGEST_LENGTH]byte
	copy(out[:], sumHash(BLOCK_DIGEST_LENGTH, parts...))
	return out
}

// hash512 is BLAKE2b-512 over the concatenation of parts.
func hash512(parts ...[]byte) [EXPANDED_KEY_LENGTH]byte {
	var out [EXPANDED_KEY_LENGTH]byte
	copy(out[:], sumHash(EXPANDED_KEY_LENGTH, parts...))
	return out
}

// addressChecksum is the 5-byte BLAKE2b digest of pk, byte-reversed as it
// appears in an address.
func addressChecksum(pk PublicKey) [CHECKSUM_HASH_LENGTH]byte {
	var out [CHECKSUM_HASH_LENGTH]byte
	copy(out[:], sumHash(CHECKSUM_HASH_LENGTH, pk[:]))
	ReverseBytes(out[:])
	return out
}
