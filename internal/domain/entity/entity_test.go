package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperation(t *testing.T) {
	for _, op := range AllOperations() {
		got, err := ParseOperation(" " + string(op) + " ")
		require.NoError(t, err)
		assert.Equal(t, op, got)
	}

	got, err := ParseOperation("PRIME")
	require.NoError(t, err)
	assert.Equal(t, OpPrime, got)

	_, err = ParseOperation("sqrt")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "operation", ve.Field)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestNewHistoryEntry(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	a := NewHistoryEntry(OpFactorial, "5", "120", "5! = 120", at)
	b := NewHistoryEntry(OpFactorial, "5", "120", "5! = 120", at)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, at, a.CreatedAt)
	assert.Equal(t, "5! = 120", a.Display)
}
