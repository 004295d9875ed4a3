package go_nano

import (
	"crypto/rand"
	"fmt"
	"io"
)

// GenerateSeed returns a new seed from crypto/rand.
func GenerateSeed() (Seed, error) {
	return GenerateSeedFrom(rand.Reader)
}

// GenerateSeedFrom reads a seed from rng.
func GenerateSeedFrom(rng io.Reader) (Seed, error) {
	var seed Seed
	if rng == nil {
		return seed, NewCodecError("generate seed", "", ErrInvalidArgument)
	}
	if _, err := io.ReadFull(rng, seed[:]); err != nil {
		return seed, fmt.Errorf("failed to generate seed: %w", err)
	}
	return seed, nil
}

// DeriveSecretKey derives the secret key at index from seed:
// BLAKE2b-256(seed || big-endian index).
func DeriveSecretKey(seed Seed, index uint32) SecretKey {
	preimage := newPreimage(SEED_LENGTH + INDEX_LENGTH)
	preimage.WriteFields(seed[:])
	preimage.WriteUint32(index)
	return SecretKey(hash256(preimage.Bytes()))
}

// DerivePublicKey derives the public key for sk using BLAKE2b-512 key
// expansion.
func DerivePublicKey(sk SecretKey) PublicKey {
	return publicKeyFromExpanded(expandSecretKey(sk))
}
