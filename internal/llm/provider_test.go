package llm

import (
	"errors"
	"testing"
)

func TestProviderErrorFormatting(t *testing.T) {
	base := errors.New("connection reset")
	err := &ProviderError{Provider: "gemini", Code: ErrCodeServiceDown, Message: "call failed", Err: base}

	if err.Error() != "gemini error: call failed (connection reset)" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected Unwrap to expose the cause")
	}

	bare := &ProviderError{Provider: "gemini", Code: ErrCodeTimeout, Message: "timed out"}
	if bare.Error() != "gemini error: timed out" {
		t.Fatalf("unexpected message: %s", bare.Error())
	}
}

func TestRegistry(t *testing.T) {
	RegisterProvider("fake", func() (Provider, error) {
		return nil, errors.New("factory called")
	})

	if _, err := NewProvider("fake"); err == nil || err.Error() != "factory called" {
		t.Fatalf("expected registered factory to run, got %v", err)
	}

	if _, err := NewProvider("unknown"); err == nil {
		t.Fatalf("expected error for unknown provider")
	}
}
