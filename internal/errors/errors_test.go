package errors

import (
	stderrors "errors"
	"testing"
)

func TestAppError_WrapsCause(t *testing.T) {
	cause := stderrors.New("disk on fire")
	err := NewReadError("opening image file", cause)

	if !stderrors.Is(err, cause) {
		t.Error("Expected errors.Is to find the wrapped cause")
	}
	if err.Error() == "" {
		t.Error("Expected a non-empty error message")
	}
}

func TestIsType(t *testing.T) {
	tests := []struct {
		name string
		err  error
		typ  ErrorType
		want bool
	}{
		{"read error matches", NewReadError("open", nil), ErrorTypeRead, true},
		{"decode error matches", NewDecodeError("decode", nil), ErrorTypeDecode, true},
		{"empty image matches", NewEmptyImageError("zero size"), ErrorTypeEmptyImage, true},
		{"mismatched type", NewReadError("open", nil), ErrorTypeDecode, false},
		{"plain error", stderrors.New("plain"), ErrorTypeRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsType(tt.err, tt.typ); got != tt.want {
				t.Errorf("IsType() = %v, want %v", got, tt.want)
			}
		})
	}
}
