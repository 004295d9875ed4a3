package go_nano

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestCodecError(t *testing.T) {
	err := NewCodecError("parse address", "xrb_bad", ErrInvalidAddress)

	if !errors.Is(err, ErrInvalidAddress) {
		t.Error("CodecError does not unwrap to its sentinel")
	}
	var ce *CodecError
	if !errors.As(err, &ce) {
		t.Fatal("errors.As failed")
	}
	if ce.Operation != "parse address" || ce.Input != "xrb_bad" {
		t.Errorf("CodecError = %+v", ce)
	}
	if !strings.Contains(err.Error(), `"xrb_bad"`) {
		t.Errorf("Error() = %q does not name the input", err)
	}

	noInput := NewCodecError("parse secret key", "", ErrInvalidLength)
	if strings.Contains(noInput.Error(), `""`) {
		t.Errorf("Error() = %q quotes an empty input", noInput)
	}
}

func TestCodecErrorTruncatesInput(t *testing.T) {
	err := NewCodecError("decode hex", strings.Repeat("a", 500), ErrInvalidHex)
	var ce *CodecError
	if !errors.As(err, &ce) {
		t.Fatal("errors.As failed")
	}
	if len(ce.Input) != maxErrorInput+3 {
		t.Errorf("Input length = %d", len(ce.Input))
	}
}

func TestWorkError(t *testing.T) {
	err := fmt.Errorf("search: %w", NewWorkError(2, 8, ErrInvalidWorkerParameters))
	if !errors.Is(err, ErrInvalidWorkerParameters) {
		t.Error("WorkError does not unwrap")
	}
	if !strings.Contains(err.Error(), "2/8") {
		t.Errorf("Error() = %q", err)
	}
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		malformed bool
		exhausted bool
	}{
		{"nil", nil, false, false},
		{"codec", NewCodecError("x", "", ErrInvalidHex), true, false},
		{"wrapped sentinel", fmt.Errorf("ctx: %w", ErrAmountOverflow), true, false},
		{"checksum", ErrInvalidChecksum, true, false},
		{"not found", ErrWorkNotFound, false, true},
		{"cancelled", context.Canceled, false, false},
		{"other", errors.New("boom"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMalformedInput(tt.err); got != tt.malformed {
				t.Errorf("IsMalformedInput = %v, want %v", got, tt.malformed)
			}
			if got := IsExhausted(tt.err); got != tt.exhausted {
				t.Errorf("IsExhausted = %v, want %v", got, tt.exhausted)
			}
		})
	}
}
