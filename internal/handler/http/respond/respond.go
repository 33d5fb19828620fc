// Package respond writes JSON responses and maps errors to status codes.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"numconv/internal/domain/entity"
	"numconv/internal/domain/numeric"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// Error kinds reported in ErrorBody.Kind.
const (
	KindInvalidInput = "invalid_input"
	KindOutOfRange   = "out_of_range"
	KindInternal     = "internal"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// headers are gone; all that is left is to log
		slog.Default().Error("failed to encode JSON response",
			slog.Int("status_code", code),
			slog.Any("error", err))
	}
}

// Error writes err's message verbatim with the given status code.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, ErrorBody{Error: err.Error()})
}

// StatusFor maps an error to its HTTP status code and kind.
//
//	numeric.ErrInvalidInput, entity.ErrInvalidInput -> 400
//	numeric.ErrOutOfRange                           -> 422
//	anything else                                   -> 500
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, numeric.ErrOutOfRange):
		return http.StatusUnprocessableEntity, KindOutOfRange
	case errors.Is(err, numeric.ErrInvalidInput), errors.Is(err, entity.ErrInvalidInput):
		return http.StatusBadRequest, KindInvalidInput
	default:
		return http.StatusInternalServerError, KindInternal
	}
}

// SafeError writes err using StatusFor. Caller-input errors are returned
// with their user-facing reason; anything else is logged and replaced by
// "internal server error".
func SafeError(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	code, kind := StatusFor(err)
	if code >= http.StatusInternalServerError {
		slog.Default().Error("internal server error",
			slog.Int("code", code),
			slog.Any("error", err))
		JSON(w, code, ErrorBody{Error: "internal server error", Kind: kind})
		return
	}

	msg := err.Error()
	var ne *numeric.Error
	var ve *entity.ValidationError
	switch {
	case errors.As(err, &ne):
		msg = ne.Reason
	case errors.As(err, &ve):
		msg = ve.Field + " " + ve.Message
	}
	JSON(w, code, ErrorBody{Error: msg, Kind: kind})
}
