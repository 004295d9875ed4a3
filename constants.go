package go_nano

// Library version reported by the CLI and in debug output.
const LIBRARY_VERSION = "0.3.1"

// Fixed-width field lengths (bytes)
const (
	SEED_LENGTH       = 32
	SECRET_KEY_LENGTH = 32
	PUBLIC_KEY_LENGTH = 32
	BLOCK_HASH_LENGTH = 32
	SIGNATURE_LENGTH  = 64
	AMOUNT_LENGTH     = 16
	WORK_LENGTH       = 8
	INDEX_LENGTH      = 4
)

// BLAKE2b output sizes used by the protocol (bytes)
const (
	CHECKSUM_HASH_LENGTH = 5  // address checksum
	WORK_HASH_LENGTH     = 8  // proof-of-work digest
	BLOCK_DIGEST_LENGTH  = 32 // block hashes and secret key derivation
	EXPANDED_KEY_LENGTH  = 64 // Ed25519 key expansion, nonce and challenge hashing
)

// Address layout
//
// An address is a prefix followed by 52 characters encoding the public key
// (256 bits left-padded with 4 zero bits to 260) and 8 characters encoding
// the 40-bit checksum.
const (
	ADDRESS_PREFIX_XRB  = "xrb_"
	ADDRESS_PREFIX_NANO = "nano_"

	ADDRESS_KEY_CHARS      = 52
	ADDRESS_CHECKSUM_CHARS = 8
	ADDRESS_PAYLOAD_CHARS  = ADDRESS_KEY_CHARS + ADDRESS_CHECKSUM_CHARS

	ADDRESS_KEY_PADDING_BITS = 4
	ADDRESS_KEY_BITS         = ADDRESS_KEY_CHARS * BASE32_BITS_PER_CHAR
	ADDRESS_CHECKSUM_BITS    = ADDRESS_CHECKSUM_CHARS * BASE32_BITS_PER_CHAR
)

// Base32 alphabet used by Nano addresses. It omits 0, 2, l and v.
const (
	BASE32_ALPHABET      = "13456789abcdefghijkmnopqrstuwxyz"
	BASE32_BITS_PER_CHAR = 5
)

// Proof-of-work
const (
	// WORK_THRESHOLD_DEFAULT is the network-wide minimum difficulty.
	WORK_THRESHOLD_DEFAULT uint64 = 0xffffffc000000000

	// MAX_WORK_WORKERS bounds the goroutines one work search starts.
	MAX_WORK_WORKERS = 1024

	// workPollInterval is how many candidates a context-aware scanner tests
	// between cancellation checks. Must be a power of two.
	workPollInterval = 1 << 16
)

// STATE_BLOCK_PREAMBLE_TYPE is the last byte of the 32-byte preamble that
// prefixes every state block hash preimage.
const STATE_BLOCK_PREAMBLE_TYPE byte = 6

// Amount bounds
const (
	// MAX_AMOUNT_DIGITS is the number of decimal digits in 2^128-1.
	MAX_AMOUNT_DIGITS = 39
	MAX_AMOUNT        = "340282366920938463463374607431768211455"
)

// Logger Level Constants
const (
	DEBUG   = 1 << 4
	INFO    = 1 << 5
	WARNING = 1 << 6
	ERROR   = 1 << 7
	FATAL   = 1 << 8
)
