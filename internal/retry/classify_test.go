package retry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"medisupply-api/internal/store"
)

func TestClassifyKnownCodes(t *testing.T) {
	tests := []struct {
		code        string
		userMessage string
	}{
		{store.CodeUnavailable, "Service temporarily unavailable. Please check your internet connection and try again."},
		{store.CodePermissionDenied, "Permission denied. Please contact support."},
		{store.CodeDeadlineExceeded, "Request timed out. Please try again."},
		{store.CodeResourceExhausted, "Service is busy. Please try again later."},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			c := Classify(store.Errorf(tt.code, "backend says no"))
			assert.Equal(t, tt.userMessage, c.UserMessage)
			assert.NotEmpty(t, c.Suggestion)
		})
	}
}

func TestClassifyIsTotal(t *testing.T) {
	// Cualquier código, reconocido o no, produce mensaje y sugerencia.
	codes := []string{
		store.CodeUnavailable,
		store.CodePermissionDenied,
		store.CodeDeadlineExceeded,
		store.CodeResourceExhausted,
		store.CodeInvalidArgument,
		store.CodeNotFound,
		store.CodeAlreadyExists,
		store.CodeInternal,
		store.CodeUnknown,
		"made-up-code",
	}
	for _, code := range codes {
		c := Classify(store.Errorf(code, "whatever"))
		assert.NotEmpty(t, c.UserMessage, "code %s", code)
		assert.NotEmpty(t, c.Suggestion, "code %s", code)
	}
}

func TestClassifyUnknownCodePreservesCode(t *testing.T) {
	c := Classify(store.Errorf("mystery-code", "boom"))
	assert.Contains(t, c.Suggestion, "mystery-code")
}

func TestClassifyPlainError(t *testing.T) {
	c := Classify(errors.New("no code attached"))
	assert.NotEmpty(t, c.UserMessage)
	assert.Contains(t, c.Suggestion, store.CodeUnknown)
}
