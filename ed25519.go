package go_nano

import (
	"crypto/subtle"

	"filippo.io/edwards25519"
)

// Ed25519-BLAKE2b
//
// Nano signs with Ed25519 but replaces SHA-512 with BLAKE2b-512 in all
// three places the scheme hashes: key expansion, nonce derivation and the
// challenge (hram). Group and scalar arithmetic is delegated to
// filippo.io/edwards25519; this file is the only place that touches it.

// expandedKey is a secret key after hashing and clamping.
type expandedKey struct {
	scalar    [32]byte // clamped, little-endian
	nonceSeed [32]byte // second half of the expansion
}

// clampScalar applies the Ed25519 clamp to the low half of an expansion.
//
// Some historical implementations use &= 0x3F on the top byte instead of
// &= 0x7F. Bit 6 is set immediately afterwards, so both give the same
// result.
func clampScalar(b *[32]byte) {
	b[0] &= 0xF8
	b[31] &= 0x7F
	b[31] |= 0x40
}

// expandSecretKey hashes sk with BLAKE2b-512 and clamps the scalar half.
func expandSecretKey(sk SecretKey) expandedKey {
	h := hash512(sk[:])
	var ek expandedKey
	copy(ek.scalar[:], h[:32])
	copy(ek.nonceSeed[:], h[32:])
	clampScalar(&ek.scalar)
	return ek
}

// wideScalar converts a little-endian 32-byte value into a group
// scalar. The value can exceed the group order, so it is reduced as a wide
// input.
func wideScalar(b [32]byte) *edwards25519.Scalar {
	var wide [64]byte
	copy(wide[:], b[:])
	s, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		panic("edwards25519: SetUniformBytes rejected 64-byte input")
	}
	return s
}

// reduceScalar reduces a 64-byte digest modulo the group order.
func reduceScalar(digest [64]byte) *edwards25519.Scalar {
	s, err := edwards25519.NewScalar().SetUniformBytes(digest[:])
	if err != nil {
		panic("edwards25519: SetUniformBytes rejected 64-byte input")
	}
	return s
}

// scalarMultBase returns the encoding of s*B.
func scalarMultBase(s *edwards25519.Scalar) [32]byte {
	var out [32]byte
	copy(out[:], new(edwards25519.Point).ScalarBaseMult(s).Bytes())
	return out
}

// scalarMulAdd returns (a*b + c) mod L.
func scalarMulAdd(a, b, c *edwards25519.Scalar) *edwards25519.Scalar {
	return edwards25519.NewScalar().MultiplyAdd(a, b, c)
}

// decodePoint decodes a point encoding, failing on invalid input.
func decodePoint(b []byte) (*edwards25519.Point, bool) {
	p, err := new(edwards25519.Point).SetBytes(b)
	if err != nil {
		return nil, false
	}
	return p, true
}

// doubleScalarMult returns the encoding of a*A + b*B.
func doubleScalarMult(a *edwards25519.Scalar, A *edwards25519.Point, b *edwards25519.Scalar) []byte {
	return new(edwards25519.Point).VarTimeDoubleScalarBaseMult(a, A, b).Bytes()
}

// publicKeyFromExpanded derives the public key from an expanded secret.
func publicKeyFromExpanded(ek expandedKey) PublicKey {
	return PublicKey(scalarMultBase(wideScalar(ek.scalar)))
}

// signHash produces R || S over message with the given expanded key.
func signHash(ek expandedKey, pk PublicKey, message []byte) Signature {
	r := reduceScalar(hash512(ek.nonceSeed[:], message))
	R := scalarMultBase(r)

	k := reduceScalar(hash512(R[:], pk[:], message))
	S := scalarMulAdd(k, wideScalar(ek.scalar), r)

	var sig Signature
	copy(sig[:32], R[:])
	copy(sig[32:], S.Bytes())
	return sig
}

// verifyHash checks sig over message against pk. Every malformed input
// yields false.
func verifyHash(pk PublicKey, message []byte, sig Signature) bool {
	// The top three bits of S must be clear.
	if sig[63]&0xE0 != 0 {
		return false
	}

	A, ok := decodePoint(pk[:])
	if !ok {
		return false
	}

	// S is reduced rather than required to be canonical: S and S+L verify
	// alike.
	var wideS [32]byte
	copy(wideS[:], sig[32:])
	S := wideScalar(wideS)

	k := reduceScalar(hash512(sig[:32], pk[:], message))

	minusA := new(edwards25519.Point).Negate(A)
	R := doubleScalarMult(k, minusA, S)

	return subtle.ConstantTimeCompare(R, sig[:32]) == 1
}
