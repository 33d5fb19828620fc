// Package calc provides the numconv use cases: the five numeric
// operations applied to raw caller text, and the rolling per-operation
// history of successful results.
package calc

import "errors"

// Sentinel errors for calc use case operations.
var (
	// ErrHistoryDisabled indicates that the service was built without a history repository.
	ErrHistoryDisabled = errors.New("history is disabled")
)
