package go_nano

import (
	"math/big"
)

// Amount is an unsigned 128-bit raw balance, big-endian.
type Amount [AMOUNT_LENGTH]byte

var maxAmount = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 8*AMOUNT_LENGTH), big.NewInt(1))

// AmountFromString converts a decimal digit string into an Amount. The
// value is accumulated digit by digit with arbitrary precision; no decimal
// point or unit scaling is accepted.
func AmountFromString(digits string) (Amount, error) {
	var a Amount
	if digits == "" {
		return a, NewCodecError("parse amount", digits, ErrInvalidAmount)
	}

	acc := new(big.Int)
	ten := big.NewInt(10)
	d := new(big.Int)
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return a, NewCodecError("parse amount", digits, ErrInvalidAmount)
		}
		acc.Mul(acc, ten)
		acc.Add(acc, d.SetUint64(uint64(c-'0')))
		if acc.Cmp(maxAmount) > 0 {
			return a, NewCodecError("parse amount", digits, ErrAmountOverflow)
		}
	}

	acc.FillBytes(a[:])
	return a, nil
}

// AmountToBytes is AmountFromString returning a byte slice.
func AmountToBytes(digits string) ([]byte, error) {
	a, err := AmountFromString(digits)
	if err != nil {
		return nil, err
	}
	return a[:], nil
}

// AmountFromBigInt converts v into an Amount. v must be in [0, 2^128-1].
func AmountFromBigInt(v *big.Int) (Amount, error) {
	var a Amount
	if v == nil {
		return a, NewCodecError("convert amount", "", ErrInvalidArgument)
	}
	if v.Sign() < 0 || v.Cmp(maxAmount) > 0 {
		return a, NewCodecError("convert amount", v.String(), ErrAmountOverflow)
	}
	v.FillBytes(a[:])
	return a, nil
}

// BigInt returns the amount as an integer.
func (a Amount) BigInt() *big.Int {
	return new(big.Int).SetBytes(a[:])
}

// String returns the amount as a decimal digit string.
func (a Amount) String() string {
	return a.BigInt().String()
}

// Hex returns the amount as 32 lower-case hex characters.
func (a Amount) Hex() string {
	return BytesToHex(a[:])
}

func (a Amount) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Amount) UnmarshalText(text []byte) error {
	v, err := AmountFromString(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
