package go_nano

// Sign signs a block hash with sk using Ed25519-BLAKE2b.
func Sign(hash BlockHash, sk SecretKey) Signature {
	ek := expandSecretKey(sk)
	return signHash(ek, publicKeyFromExpanded(ek), hash[:])
}

// Verify reports whether sig is a valid signature of hash by pk. Malformed
// signatures and invalid point encodings return false rather than an
// error.
func Verify(hash BlockHash, sig Signature, pk PublicKey) bool {
	return verifyHash(pk, hash[:], sig)
}

// VerifyHex is Verify over hex-encoded inputs. Inputs that fail to decode
// do not verify.
func VerifyHex(hash, signature, publicKey string) bool {
	h, err := ParseBlockHash(hash)
	if err != nil {
		return false
	}
	sig, err := ParseSignature(signature)
	if err != nil {
		return false
	}
	pk, err := ParsePublicKey(publicKey)
	if err != nil {
		return false
	}
	return Verify(h, sig, pk)
}
