package go_nano

// Seed is the 32-byte root of a deterministic key space.
type Seed [SEED_LENGTH]byte

// SecretKey is a 32-byte Ed25519-BLAKE2b private key.
type SecretKey [SECRET_KEY_LENGTH]byte

// PublicKey is a 32-byte encoded Ed25519 point.
type PublicKey [PUBLIC_KEY_LENGTH]byte

// BlockHash is the BLAKE2b-256 digest identifying a block.
type BlockHash [BLOCK_HASH_LENGTH]byte

// Signature is an R || S Ed25519 signature.
type Signature [SIGNATURE_LENGTH]byte

// Work is a proof-of-work nonce in its external big-endian form.
type Work [WORK_LENGTH]byte

// ParseSeed decodes a 64-character hex seed.
func ParseSeed(s string) (Seed, error) {
	var seed Seed
	err := hexToFixed("parse seed", s, seed[:])
	return seed, err
}

// ParseSecretKey decodes a 64-character hex secret key. The input is not
// echoed in errors.
func ParseSecretKey(s string) (SecretKey, error) {
	var sk SecretKey
	if !isHexOfLength(s, SECRET_KEY_LENGTH*2) {
		return sk, NewCodecError("parse secret key", "", ErrInvalidLength)
	}
	err := hexToFixed("parse secret key", s, sk[:])
	return sk, err
}

// ParsePublicKey decodes a 64-character hex public key.
func ParsePublicKey(s string) (PublicKey, error) {
	var pk PublicKey
	err := hexToFixed("parse public key", s, pk[:])
	return pk, err
}

// ParseBlockHash decodes a 64-character hex block hash.
func ParseBlockHash(s string) (BlockHash, error) {
	var h BlockHash
	err := hexToFixed("parse block hash", s, h[:])
	return h, err
}

// ParseSignature decodes a 128-character hex signature.
func ParseSignature(s string) (Signature, error) {
	var sig Signature
	err := hexToFixed("parse signature", s, sig[:])
	return sig, err
}

// ParseWork decodes a 16-character big-endian hex work value.
func ParseWork(s string) (Work, error) {
	var w Work
	err := hexToFixed("parse work", s, w[:])
	return w, err
}

// ParseWorkThreshold decodes a 16-character big-endian hex threshold.
func ParseWorkThreshold(s string) (uint64, error) {
	var b [WORK_LENGTH]byte
	if err := hexToFixed("parse work threshold", s, b[:]); err != nil {
		return 0, err
	}
	return NewStream(b[:]).ReadUint64()
}

// FormatWorkThreshold renders a threshold as 16 big-endian hex characters.
func FormatWorkThreshold(threshold uint64) string {
	return WorkFromUint64(threshold).String()
}

func (s Seed) String() string       { return BytesToHex(s[:]) }
func (pk PublicKey) String() string { return BytesToHex(pk[:]) }
func (h BlockHash) String() string  { return BytesToHex(h[:]) }
func (s Signature) String() string  { return BytesToHex(s[:]) }
func (w Work) String() string       { return BytesToHex(w[:]) }

// String redacts the key so it cannot leak through logging.
func (sk SecretKey) String() string { return "SecretKey(redacted)" }

// Hex returns the secret key as lower-case hex.
func (sk SecretKey) Hex() string { return BytesToHex(sk[:]) }

// Uint64 returns the nonce as an integer.
func (w Work) Uint64() uint64 {
	v, _ := NewStream(w[:]).ReadUint64()
	return v
}

// WorkFromUint64 renders nonce in its external big-endian form.
func WorkFromUint64(nonce uint64) Work {
	var w Work
	s := newPreimage(WORK_LENGTH)
	s.WriteUint64(nonce)
	copy(w[:], s.Bytes())
	return w
}

func (pk PublicKey) MarshalText() ([]byte, error) { return []byte(pk.String()), nil }
func (h BlockHash) MarshalText() ([]byte, error)  { return []byte(h.String()), nil }
func (s Signature) MarshalText() ([]byte, error)  { return []byte(s.String()), nil }
func (w Work) MarshalText() ([]byte, error)       { return []byte(w.String()), nil }

func (pk *PublicKey) UnmarshalText(text []byte) error {
	v, err := ParsePublicKey(string(text))
	if err != nil {
		return err
	}
	*pk = v
	return nil
}

func (h *BlockHash) UnmarshalText(text []byte) error {
	v, err := ParseBlockHash(string(text))
	if err != nil {
		return err
	}
	*h = v
	return nil
}

func (s *Signature) UnmarshalText(text []byte) error {
	v, err := ParseSignature(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (w *Work) UnmarshalText(text []byte) error {
	v, err := ParseWork(string(text))
	if err != nil {
		return err
	}
	*w = v
	return nil
}
