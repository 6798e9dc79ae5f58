package puzzle

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestInputError_Classification(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantParse   bool
		wantInvalid bool
	}{
		{"parse", Parse("1,x", "not an integer"), true, false},
		{"invalid", Invalid("1,1 -> 1,1", "zero length"), false, true},
		{"wrapped parse", fmt.Errorf("line 3: %w", Parse("a", "bad")), true, false},
		{"unrelated", errors.New("boom"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, ErrParse); got != tt.wantParse {
				t.Errorf("errors.Is(ErrParse) = %v, want %v", got, tt.wantParse)
			}
			if got := errors.Is(tt.err, ErrInvalidInput); got != tt.wantInvalid {
				t.Errorf("errors.Is(ErrInvalidInput) = %v, want %v", got, tt.wantInvalid)
			}
			if got := IsInputError(tt.err); got != (tt.wantParse || tt.wantInvalid) {
				t.Errorf("IsInputError = %v", got)
			}
		})
	}
}

func TestInputError_MessageCarriesInput(t *testing.T) {
	err := Invalid("0,0 -> 3,4", "diagonal is not 45 degrees")

	if !strings.Contains(err.Error(), `"0,0 -> 3,4"`) {
		t.Errorf("expected offending input in message, got %q", err.Error())
	}
	if !strings.HasPrefix(err.Error(), "invalid input") {
		t.Errorf("expected kind prefix, got %q", err.Error())
	}
}
