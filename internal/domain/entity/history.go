package entity

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry is one line of an operation's rolling display log.
type HistoryEntry struct {
	ID        uuid.UUID
	Operation Operation
	Input     string
	Output    string
	Display   string
	CreatedAt time.Time
}

// NewHistoryEntry creates an entry stamped with a fresh ID and the given time.
func NewHistoryEntry(op Operation, input, output, display string, at time.Time) *HistoryEntry {
	return &HistoryEntry{
		ID:        uuid.New(),
		Operation: op,
		Input:     input,
		Output:    output,
		Display:   display,
		CreatedAt: at,
	}
}
