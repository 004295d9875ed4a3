package go_nano

import (
	"bytes"
	"errors"
	"testing"
)

const (
	zeroSeedHex     = "0000000000000000000000000000000000000000000000000000000000000000"
	zeroSeedSecret0 = "9f0e444c69f77a49bd0be89db92c38fe713e0963165cca12faf5712d7657120f"
	zeroSeedSecret1 = "b73b723bf7bd042b66ad3332718ba98de7312f95ed3d05a130c9204552a7afff"
	zeroSeedPublic0 = "c008b814a7d269a1fa3c6528b19201a24d797912db9996ff02a1ff356e45552b"
)

func mustParseSecretKey(t testing.TB, s string) SecretKey {
	t.Helper()
	sk, err := ParseSecretKey(s)
	if err != nil {
		t.Fatalf("ParseSecretKey: %v", err)
	}
	return sk
}

func mustParsePublicKey(t testing.TB, s string) PublicKey {
	t.Helper()
	pk, err := ParsePublicKey(s)
	if err != nil {
		t.Fatalf("ParsePublicKey: %v", err)
	}
	return pk
}

func mustParseBlockHash(t testing.TB, s string) BlockHash {
	t.Helper()
	h, err := ParseBlockHash(s)
	if err != nil {
		t.Fatalf("ParseBlockHash: %v", err)
	}
	return h
}

func TestDeriveSecretKey(t *testing.T) {
	seed, err := ParseSeed(zeroSeedHex)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		index uint32
		want  string
	}{
		{0, zeroSeedSecret0},
		{1, zeroSeedSecret1},
	}
	for _, tt := range tests {
		if got := DeriveSecretKey(seed, tt.index).Hex(); got != tt.want {
			t.Errorf("DeriveSecretKey(0, %d) = %s, want %s", tt.index, got, tt.want)
		}
	}
}

func TestDeriveSecretKeyIsDeterministic(t *testing.T) {
	seed := Seed{1, 2, 3}
	a := DeriveSecretKey(seed, 42)
	b := DeriveSecretKey(seed, 42)
	if a != b {
		t.Fatal("same seed and index gave different keys")
	}
	if DeriveSecretKey(seed, 43) == a {
		t.Error("different indexes gave the same key")
	}
	if DeriveSecretKey(Seed{1, 2, 4}, 42) == a {
		t.Error("different seeds gave the same key")
	}
	// The full uint32 range is accepted.
	_ = DeriveSecretKey(seed, 0xFFFFFFFF)
}

func TestDerivePublicKey(t *testing.T) {
	sk := mustParseSecretKey(t, zeroSeedSecret0)
	if got := DerivePublicKey(sk).String(); got != zeroSeedPublic0 {
		t.Errorf("DerivePublicKey = %s, want %s", got, zeroSeedPublic0)
	}
}

func TestGenerateSeedFrom(t *testing.T) {
	src := bytes.NewReader(bytes.Repeat([]byte{0xab}, SEED_LENGTH))
	seed, err := GenerateSeedFrom(src)
	if err != nil {
		t.Fatal(err)
	}
	if seed != (Seed{0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab,
		0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab}) {
		t.Errorf("seed = %s", seed)
	}

	if _, err := GenerateSeedFrom(bytes.NewReader(make([]byte, 10))); err == nil {
		t.Error("short reader: expected error")
	}
	if _, err := GenerateSeedFrom(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil reader error = %v", err)
	}
}

func TestGenerateSeed(t *testing.T) {
	a, err := GenerateSeed()
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateSeed()
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("two generated seeds are equal")
	}
}

func TestParseSecretKeyDoesNotEchoInput(t *testing.T) {
	_, err := ParseSecretKey(zeroSeedSecret0[:40])
	if err == nil {
		t.Fatal("expected error")
	}
	if bytes.Contains([]byte(err.Error()), []byte(zeroSeedSecret0[:40])) {
		t.Errorf("error %q contains the secret", err)
	}
	if got := fmtSecret(mustParseSecretKey(t, zeroSeedSecret0)); got != "SecretKey(redacted)" {
		t.Errorf("String() = %q", got)
	}
}

func fmtSecret(sk SecretKey) string { return sk.String() }

func TestKeyPair(t *testing.T) {
	seed, _ := ParseSeed(zeroSeedHex)
	kp := NewKeyPairFromSeed(seed, 0)
	if kp.SecretKey().Hex() != zeroSeedSecret0 {
		t.Errorf("SecretKey = %s", kp.SecretKey().Hex())
	}
	if kp.PublicKey().String() != zeroSeedPublic0 {
		t.Errorf("PublicKey = %s", kp.PublicKey())
	}

	hash := BlockHash{9}
	sig := kp.Sign(hash)
	if !kp.Verify(hash, sig) {
		t.Error("key pair does not verify its own signature")
	}
	if sig != Sign(hash, kp.SecretKey()) {
		t.Error("KeyPair.Sign differs from Sign")
	}

	generated, genSeed, err := GenerateKeyPair()
	if err != nil {
		t.Fatal(err)
	}
	if generated.PublicKey() != NewKeyPairFromSeed(genSeed, 0).PublicKey() {
		t.Error("generated key pair is not index 0 of its seed")
	}
}

func BenchmarkDerivePublicKey(b *testing.B) {
	sk := mustParseSecretKey(b, zeroSeedSecret0)
	for i := 0; i < b.N; i++ {
		DerivePublicKey(sk)
	}
}
