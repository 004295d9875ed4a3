package go_nano

import (
	"strings"
)

// Validators for external string forms. Each returns false instead of an
// error so callers can check candidates before parsing.

// CheckSeed reports whether s is a 64-character hex seed.
func CheckSeed(s string) bool { return isHexOfLength(s, SEED_LENGTH*2) }

// CheckHash reports whether s is a 64-character hex block hash.
func CheckHash(s string) bool { return isHexOfLength(s, BLOCK_HASH_LENGTH*2) }

// CheckKey reports whether s is a 64-character hex secret or public key.
func CheckKey(s string) bool { return isHexOfLength(s, PUBLIC_KEY_LENGTH*2) }

// CheckWork reports whether s is a 16-character hex work value.
func CheckWork(s string) bool { return isHexOfLength(s, WORK_LENGTH*2) }

// CheckWorkThreshold reports whether s is a 16-character hex threshold.
func CheckWorkThreshold(s string) bool { return isHexOfLength(s, WORK_LENGTH*2) }

// CheckSignature reports whether s is a 128-character hex signature.
func CheckSignature(s string) bool { return isHexOfLength(s, SIGNATURE_LENGTH*2) }

// CheckIndex reports whether index fits in a derivation index.
func CheckIndex(index int64) bool { return index >= 0 && index <= 0xFFFFFFFF }

// CheckAmount reports whether s is a canonical raw amount: "0", or digits
// without a leading zero, at most 2^128-1.
func CheckAmount(s string) bool {
	if s == "0" {
		return true
	}
	if s == "" || s[0] == '0' || len(s) > MAX_AMOUNT_DIGITS {
		return false
	}
	if strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) != -1 {
		return false
	}
	if len(s) == MAX_AMOUNT_DIGITS && s > MAX_AMOUNT {
		return false
	}
	return true
}

// CheckAddress reports whether address is well formed and its checksum
// matches.
func CheckAddress(address string) bool {
	_, err := ParseAddress(address)
	return err == nil
}
