package go_nano

import (
	"errors"
	"testing"
)

func TestConvertAmount(t *testing.T) {
	tests := []struct {
		value    string
		from, to Unit
		want     string
	}{
		{"1", UNIT_XNANO, UNIT_RAW, "1000000000000000000000000000000"},
		{"1", UNIT_CNANO, UNIT_RAW, "1000000000000000000000000000000"},
		{"1000000000000000000000000000000", UNIT_RAW, UNIT_XNANO, "1"},
		{"1.5", UNIT_KXNANO, UNIT_XNANO, "1500"},
		{"2", UNIT_MXNANO, UNIT_KXNANO, "2000"},
		{"1", UNIT_KNANO, UNIT_NANO, "1000"},
		{"1", UNIT_NANO, UNIT_RAW, "1000000000000000000000000"},
		{"123", UNIT_RAW, UNIT_MXNANO, "0.000000000000000000000000000000000123"},
		{"0.000", UNIT_XNANO, UNIT_RAW, "0"},
		{"0.10", UNIT_XNANO, UNIT_KXNANO, "0.0001"},
		{"0000000c9f2c9cd04674edea40000000", UNIT_HEX, UNIT_XNANO, "1"},
		{"ffffffffffffffffffffffffffffffff", UNIT_HEX, UNIT_RAW, MAX_AMOUNT},
		{"1", UNIT_XNANO, UNIT_HEX, "0000000c9f2c9cd04674edea40000000"},
		{"255", UNIT_RAW, UNIT_HEX, "000000000000000000000000000000ff"},
	}

	for _, tt := range tests {
		t.Run(tt.value+" "+string(tt.from)+" to "+string(tt.to), func(t *testing.T) {
			got, err := ConvertAmount(tt.value, tt.from, tt.to)
			if err != nil {
				t.Fatalf("ConvertAmount unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ConvertAmount = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConvertAmountRejects(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		from, to Unit
		wantErr  error
	}{
		{"unknown from", "1", Unit("xno"), UNIT_RAW, ErrInvalidUnit},
		{"unknown to", "1", UNIT_RAW, Unit("nanos"), ErrInvalidUnit},
		{"exponent", "1e5", UNIT_XNANO, UNIT_RAW, ErrInvalidAmount},
		{"negative", "-1", UNIT_XNANO, UNIT_RAW, ErrInvalidAmount},
		{"two points", "1.2.3", UNIT_XNANO, UNIT_RAW, ErrInvalidAmount},
		{"trailing point", "1.", UNIT_XNANO, UNIT_RAW, ErrInvalidAmount},
		{"empty", "", UNIT_XNANO, UNIT_RAW, ErrInvalidAmount},
		{"short hex", "ff", UNIT_HEX, UNIT_RAW, ErrInvalidAmount},
		{"fractional raw to hex", "0.5", UNIT_RAW, UNIT_HEX, ErrInvalidAmount},
		{"too large for hex", "1000", UNIT_MXNANO, UNIT_HEX, ErrAmountOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ConvertAmount(tt.value, tt.from, tt.to)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ConvertAmount(%q) error = %v, want %v", tt.value, err, tt.wantErr)
			}
		})
	}
}
