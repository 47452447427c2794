package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrMalformedRecord", ErrMalformedRecord},
		{"ErrLLMUnavailable", ErrLLMUnavailable},
		{"ErrAuthExpired", ErrAuthExpired},
		{"ErrRateLimited", ErrRateLimited},
		{"ErrAnkiUnreachable", ErrAnkiUnreachable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrors_Uniqueness tests that all errors are distinct
func TestErrors_Uniqueness(t *testing.T) {
	allErrors := []error{
		ErrNotFound,
		ErrInvalidInput,
		ErrMalformedRecord,
		ErrLLMUnavailable,
		ErrAuthExpired,
		ErrRateLimited,
		ErrAnkiUnreachable,
	}

	// Check that each error is unique
	for i, err1 := range allErrors {
		for j, err2 := range allErrors {
			if i != j {
				assert.False(t, errors.Is(err1, err2),
					"Error %v should not match error %v", err1, err2)
			}
		}
	}
}

// TestErrors_WithWrapping tests error wrapping behavior
func TestErrors_WithWrapping(t *testing.T) {
	wrappedErr := fmt.Errorf("fetch bookmarks: %w", ErrAuthExpired)

	// Should still be identifiable as ErrAuthExpired
	assert.True(t, errors.Is(wrappedErr, ErrAuthExpired))
	assert.Contains(t, wrappedErr.Error(), "authentication expired")
}

// TestErrors_InSwitchStatement tests using errors in switch statements
func TestErrors_InSwitchStatement(t *testing.T) {
	testErr := fmt.Errorf("book b1: %w", ErrNotFound)

	var result string
	switch {
	case errors.Is(testErr, ErrNotFound):
		result = "not found"
	case errors.Is(testErr, ErrAuthExpired):
		result = "auth expired"
	default:
		result = "unknown"
	}

	assert.Equal(t, "not found", result)
}
