package go_nano

import (
	"crypto/subtle"
	"regexp"
	"strings"
)

// addressRegex matches the address layout: a known prefix, a first
// character of 1 or 3 (the 4 padding bits leave only those), then 59
// alphabet characters.
var addressRegex = regexp.MustCompile(`^(xrb_|nano_)[13][13-9a-km-uw-z]{59}$`)

// DeriveAddress renders pk as prefix + 52 key characters + 8 checksum
// characters. An empty prefix defaults to "nano_".
func DeriveAddress(pk PublicKey, prefix string) string {
	if prefix == "" {
		prefix = ADDRESS_PREFIX_NANO
	}

	padded := make([]bool, ADDRESS_KEY_PADDING_BITS, ADDRESS_KEY_BITS)
	padded = append(padded, BytesToBitArray(pk[:])...)
	key, err := EncodeBase32(padded, ADDRESS_KEY_BITS)
	if err != nil {
		panic("address: key bit length is not a multiple of 5")
	}

	sum := addressChecksum(pk)
	checksum, err := EncodeBase32(BytesToBitArray(sum[:]), ADDRESS_CHECKSUM_BITS)
	if err != nil {
		panic("address: checksum bit length is not a multiple of 5")
	}

	return prefix + key + checksum
}

// splitAddress strips a known prefix and returns the key and checksum
// character groups.
func splitAddress(address string) (key, checksum string, err error) {
	var payload string
	switch {
	case strings.HasPrefix(address, ADDRESS_PREFIX_XRB):
		payload = address[len(ADDRESS_PREFIX_XRB):]
	case strings.HasPrefix(address, ADDRESS_PREFIX_NANO):
		payload = address[len(ADDRESS_PREFIX_NANO):]
	default:
		return "", "", NewCodecError("parse address", address, ErrInvalidAddress)
	}
	if len(payload) != ADDRESS_PAYLOAD_CHARS {
		return "", "", NewCodecError("parse address", address, ErrInvalidAddress)
	}
	return payload[:ADDRESS_KEY_CHARS], payload[ADDRESS_KEY_CHARS:], nil
}

// PublicKeyFromAddress recovers the public key embedded in address. The
// checksum is not verified; use ParseAddress for that.
func PublicKeyFromAddress(address string) (PublicKey, error) {
	var pk PublicKey
	key, checksum, err := splitAddress(address)
	if err != nil {
		return pk, err
	}
	if !IsBase32(checksum) {
		return pk, NewCodecError("parse address", address, ErrInvalidBase32Character)
	}

	bits, err := DecodeBase32(key)
	if err != nil {
		return pk, err
	}
	b, err := BitArrayToBytes(bits[ADDRESS_KEY_PADDING_BITS:])
	if err != nil {
		return pk, err
	}
	copy(pk[:], b)
	return pk, nil
}

// ParseAddress recovers the public key from address and verifies its
// checksum. Padding bits must be zero.
func ParseAddress(address string) (PublicKey, error) {
	if !addressRegex.MatchString(address) {
		Debug("Rejected malformed address '%s'", address)
		return PublicKey{}, NewCodecError("parse address", address, ErrInvalidAddress)
	}

	pk, err := PublicKeyFromAddress(address)
	if err != nil {
		return PublicKey{}, err
	}

	_, checksum, _ := splitAddress(address)
	bits, err := DecodeBase32(checksum)
	if err != nil {
		return PublicKey{}, err
	}
	got, err := BitArrayToBytes(bits)
	if err != nil {
		return PublicKey{}, err
	}

	want := addressChecksum(pk)
	if subtle.ConstantTimeCompare(got, want[:]) != 1 {
		return PublicKey{}, NewCodecError("parse address", address, ErrInvalidChecksum)
	}
	return pk, nil
}

// ReplaceAddressPrefix re-renders address with a different prefix.
func ReplaceAddressPrefix(address, prefix string) (string, error) {
	pk, err := ParseAddress(address)
	if err != nil {
		return "", err
	}
	return DeriveAddress(pk, prefix), nil
}
