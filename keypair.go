package go_nano

import (
	"fmt"
)

// KeyPair holds a secret key with its derived public key.
type KeyPair struct {
	secretKey SecretKey
	publicKey PublicKey
	expanded  expandedKey
}

// NewKeyPair builds a key pair from an existing secret key.
func NewKeyPair(sk SecretKey) *KeyPair {
	ek := expandSecretKey(sk)
	return &KeyPair{
		secretKey: sk,
		publicKey: publicKeyFromExpanded(ek),
		expanded:  ek,
	}
}

// NewKeyPairFromSeed derives the key pair at index from seed.
func NewKeyPairFromSeed(seed Seed, index uint32) *KeyPair {
	return NewKeyPair(DeriveSecretKey(seed, index))
}

// GenerateKeyPair creates a key pair from a fresh random seed at index 0.
// The seed is returned so the caller can back it up.
func GenerateKeyPair() (*KeyPair, Seed, error) {
	seed, err := GenerateSeed()
	if err != nil {
		return nil, seed, fmt.Errorf("failed to generate key pair: %w", err)
	}
	return NewKeyPairFromSeed(seed, 0), seed, nil
}

// Sign signs a block hash with the pair's secret key.
func (kp *KeyPair) Sign(hash BlockHash) Signature {
	return signHash(kp.expanded, kp.publicKey, hash[:])
}

// Verify checks a signature over hash against the pair's public key.
func (kp *KeyPair) Verify(hash BlockHash, sig Signature) bool {
	return verifyHash(kp.publicKey, hash[:], sig)
}

// SecretKey returns the secret key.
func (kp *KeyPair) SecretKey() SecretKey {
	return kp.secretKey
}

// PublicKey returns the public key.
func (kp *KeyPair) PublicKey() PublicKey {
	return kp.publicKey
}

// Address renders the public key with the given prefix.
func (kp *KeyPair) Address(prefix string) string {
	return DeriveAddress(kp.publicKey, prefix)
}
