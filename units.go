package go_nano

import (
	"math/big"
	"strings"
)

// Unit is a denomination accepted by ConvertAmount.
type Unit string

const (
	UNIT_HEX    Unit = "hex" // raw, as 32 hex characters
	UNIT_RAW    Unit = "raw"
	UNIT_NANO   Unit = "nano"
	UNIT_KNANO  Unit = "knano"
	UNIT_XNANO  Unit = "Nano"
	UNIT_CNANO  Unit = "NANO"
	UNIT_KXNANO Unit = "KNano"
	UNIT_MXNANO Unit = "MNano"
)

// unitZeroes is the power of ten each unit is worth in raw.
var unitZeroes = map[Unit]int{
	UNIT_HEX:    0,
	UNIT_RAW:    0,
	UNIT_NANO:   24,
	UNIT_KNANO:  27,
	UNIT_XNANO:  30,
	UNIT_CNANO:  30,
	UNIT_KXNANO: 33,
	UNIT_MXNANO: 36,
}

// decimalValue is digits / 10^scale.
type decimalValue struct {
	digits *big.Int
	scale  int
}

// parseDecimal accepts digits with at most one interior '.'.
func parseDecimal(s string) (decimalValue, bool) {
	if s == "" || strings.HasPrefix(s, ".") || strings.HasSuffix(s, ".") || strings.Count(s, ".") > 1 {
		return decimalValue{}, false
	}
	scale := 0
	if i := strings.IndexByte(s, '.'); i >= 0 {
		scale = len(s) - i - 1
		s = s[:i] + s[i+1:]
	}
	if strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) != -1 {
		return decimalValue{}, false
	}
	digits, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return decimalValue{}, false
	}
	return decimalValue{digits: digits, scale: scale}, true
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// String renders the value exactly, without trailing fractional zeros.
func (d decimalValue) String() string {
	if d.scale <= 0 {
		return new(big.Int).Mul(d.digits, pow10(-d.scale)).String()
	}
	s := d.digits.String()
	if len(s) <= d.scale {
		s = strings.Repeat("0", d.scale-len(s)+1) + s
	}
	whole, frac := s[:len(s)-d.scale], strings.TrimRight(s[len(s)-d.scale:], "0")
	if frac == "" {
		return whole
	}
	return whole + "." + frac
}

// integer returns the value if it has no fractional part.
func (d decimalValue) integer() (*big.Int, bool) {
	if d.scale <= 0 {
		return new(big.Int).Mul(d.digits, pow10(-d.scale)), true
	}
	q, r := new(big.Int).QuoRem(d.digits, pow10(d.scale), new(big.Int))
	return q, r.Sign() == 0
}

// ConvertAmount converts value between denominations exactly. Hex input
// must be 32 hex characters; hex output requires an integral raw value in
// 128 bits.
func ConvertAmount(value string, from, to Unit) (string, error) {
	fromZeroes, ok := unitZeroes[from]
	if !ok {
		return "", NewCodecError("convert amount", string(from), ErrInvalidUnit)
	}
	toZeroes, ok := unitZeroes[to]
	if !ok {
		return "", NewCodecError("convert amount", string(to), ErrInvalidUnit)
	}

	var d decimalValue
	if from == UNIT_HEX {
		if !isHexOfLength(value, AMOUNT_LENGTH*2) {
			return "", NewCodecError("convert amount", value, ErrInvalidAmount)
		}
		digits, _ := new(big.Int).SetString(value, 16)
		d = decimalValue{digits: digits}
	} else {
		if d, ok = parseDecimal(value); !ok {
			return "", NewCodecError("convert amount", value, ErrInvalidAmount)
		}
	}

	d.scale -= fromZeroes - toZeroes

	if to != UNIT_HEX {
		return d.String(), nil
	}

	raw, ok := d.integer()
	if !ok {
		return "", NewCodecError("convert amount", value, ErrInvalidAmount)
	}
	amount, err := AmountFromBigInt(raw)
	if err != nil {
		return "", err
	}
	return amount.Hex(), nil
}
