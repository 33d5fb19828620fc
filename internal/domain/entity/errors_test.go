package entity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "unknown operation",
			field:    "operation",
			message:  `unknown operation "sqrt"`,
			expected: `validation error on field 'operation': unknown operation "sqrt"`,
		},
		{
			name:     "missing input",
			field:    "input",
			message:  "is required",
			expected: "validation error on field 'input': is required",
		},
		{
			name:     "empty message",
			field:    "body",
			message:  "",
			expected: "validation error on field 'body': ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ValidationError{Field: tt.field, Message: tt.message}
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestValidationError_UnwrapsToInvalidInput(t *testing.T) {
	err := fmt.Errorf("decode request: %w", &ValidationError{Field: "input", Message: "is required"})

	assert.True(t, errors.Is(err, ErrInvalidInput))

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "input", ve.Field)
}

func TestSentinelErrors_ErrorMessages(t *testing.T) {
	assert.Equal(t, "invalid input", ErrInvalidInput.Error())
}
