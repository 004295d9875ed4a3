package go_nano

import (
	"errors"
	"fmt"
)

// Standard Nano Error Types
//
// These errors follow Go 1.13+ error wrapping conventions and can be
// checked using errors.Is() and errors.As(). Operations that reject their
// input wrap one of the sentinels below in a CodecError naming the
// operation that failed.
//
// Signature verification failures are not errors: Verify returns false.
// An exhausted work range is not an error either: GenerateWork reports
// found == false.

// Sentinel errors for malformed input
var (
	// ErrInvalidHex indicates a hex string of odd length or containing
	// characters outside [0-9a-fA-F].
	ErrInvalidHex = errors.New("nano: invalid hex string")

	// ErrInvalidLength indicates a byte buffer or string of the wrong size
	// for the fixed-width type it was parsed into.
	ErrInvalidLength = errors.New("nano: invalid length")

	// ErrInvalidBitLength indicates a bit array whose length is not a
	// multiple of 8, or a Base32 length that is not a multiple of 5.
	ErrInvalidBitLength = errors.New("nano: invalid bit array length")

	// ErrInvalidBase32Character indicates a character outside the Nano
	// Base32 alphabet.
	ErrInvalidBase32Character = errors.New("nano: invalid base32 character")

	// ErrInvalidAmount indicates an amount string that is empty or contains
	// anything other than ASCII digits.
	ErrInvalidAmount = errors.New("nano: invalid amount")

	// ErrAmountOverflow indicates an amount greater than 2^128-1.
	ErrAmountOverflow = errors.New("nano: amount exceeds 128 bits")

	// ErrInvalidAddress indicates an address with an unknown prefix or the
	// wrong number of characters.
	ErrInvalidAddress = errors.New("nano: invalid address format")

	// ErrInvalidChecksum indicates a well-formed address whose checksum does
	// not match its public key.
	ErrInvalidChecksum = errors.New("nano: address checksum mismatch")

	// ErrInvalidWorkerParameters indicates a worker count of zero or a
	// worker index outside [0, workerCount).
	ErrInvalidWorkerParameters = errors.New("nano: invalid worker parameters")

	// ErrInvalidUnit indicates an unknown denomination in ConvertAmount.
	ErrInvalidUnit = errors.New("nano: invalid unit")

	// ErrInvalidConfiguration indicates a config property that failed
	// validation.
	ErrInvalidConfiguration = errors.New("nano: invalid configuration")

	// ErrInvalidArgument indicates a nil or empty argument to a public API.
	ErrInvalidArgument = errors.New("nano: invalid argument (nil or empty value)")
)

// ErrWorkNotFound is returned by ComputeWork when every worker exhausted
// its range without finding a nonce that meets the threshold.
var ErrWorkNotFound = errors.New("nano: no valid work found in range")

// CodecError represents rejected input for an encoding or parsing operation.
type CodecError struct {
	Operation string // What operation failed (e.g., "decode base32", "parse address")
	Input     string // Offending input, truncated; empty for secret material
	Err       error  // Underlying error
}

func (e *CodecError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("nano: %s failed: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("nano: %s %q failed: %v", e.Operation, e.Input, e.Err)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// maxErrorInput bounds how much of a rejected input is echoed back.
const maxErrorInput = 80

// NewCodecError creates a CodecError with the given parameters.
//
// Example:
//
//	if len(s)%2 != 0 {
//	    return nil, NewCodecError("decode hex", s, ErrInvalidHex)
//	}
func NewCodecError(operation, input string, err error) error {
	if len(input) > maxErrorInput {
		input = input[:maxErrorInput] + "..."
	}
	return &CodecError{
		Operation: operation,
		Input:     input,
		Err:       err,
	}
}

// WorkError represents an error from a proof-of-work search, carrying the
// worker partition it concerned.
type WorkError struct {
	WorkerIndex uint64
	WorkerCount uint64
	Err         error
}

func (e *WorkError) Error() string {
	return fmt.Sprintf("nano: work worker %d/%d failed: %v", e.WorkerIndex, e.WorkerCount, e.Err)
}

func (e *WorkError) Unwrap() error {
	return e.Err
}

// NewWorkError creates a WorkError for the given worker partition.
func NewWorkError(workerIndex, workerCount uint64, err error) error {
	return &WorkError{
		WorkerIndex: workerIndex,
		WorkerCount: workerCount,
		Err:         err,
	}
}

// IsMalformedInput returns true if err reports input that was rejected
// before any cryptographic work took place.
func IsMalformedInput(err error) bool {
	if err == nil {
		return false
	}

	for _, sentinel := range []error{
		ErrInvalidHex,
		ErrInvalidLength,
		ErrInvalidBitLength,
		ErrInvalidBase32Character,
		ErrInvalidAmount,
		ErrAmountOverflow,
		ErrInvalidAddress,
		ErrInvalidChecksum,
		ErrInvalidWorkerParameters,
		ErrInvalidUnit,
		ErrInvalidConfiguration,
		ErrInvalidArgument,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	var ce *CodecError
	return errors.As(err, &ce)
}

// IsExhausted returns true if err reports a proof-of-work search that ran
// out of candidates.
func IsExhausted(err error) bool {
	return errors.Is(err, ErrWorkNotFound)
}
