// Package calc exposes the numconv operations and their history over HTTP.
package calc

import (
	"encoding/json"
	"errors"
	"net/http"

	"numconv/internal/domain/entity"
	"numconv/internal/handler/http/respond"
	calcUC "numconv/internal/usecase/calc"
)

// OperationHandler serves POST requests for a single operation.
type OperationHandler struct {
	Svc *calcUC.Service
	Op  entity.Operation
}

func (h OperationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req Request
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		respond.SafeError(w, &entity.ValidationError{Field: "body", Message: "must be a JSON object with an input field"})
		return
	}
	if !req.Input.Set {
		respond.SafeError(w, &entity.ValidationError{Field: "input", Message: "is required"})
		return
	}

	res, err := h.Svc.Run(r.Context(), h.Op, req.Input.Text)
	if err != nil {
		respond.SafeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toResultDTO(res))
}

// HistoryHandler serves GET /history/{operation}.
type HistoryHandler struct{ Svc *calcUC.Service }

func (h HistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	op, err := entity.ParseOperation(r.PathValue("operation"))
	if err != nil {
		respond.SafeError(w, err)
		return
	}
	entries, err := h.Svc.History(r.Context(), op)
	if err != nil {
		writeHistoryError(w, err)
		return
	}

	out := make([]HistoryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toHistoryDTO(e))
	}
	respond.JSON(w, http.StatusOK, HistoryResponse{Operation: string(op), Entries: out})
}

// ClearHistoryHandler serves DELETE /history/{operation}.
type ClearHistoryHandler struct{ Svc *calcUC.Service }

func (h ClearHistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	op, err := entity.ParseOperation(r.PathValue("operation"))
	if err != nil {
		respond.SafeError(w, err)
		return
	}
	if err := h.Svc.ClearHistory(r.Context(), op); err != nil {
		writeHistoryError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// OperationsHandler serves GET /operations.
type OperationsHandler struct{}

func (OperationsHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	ops := entity.AllOperations()
	out := make([]map[string]string, 0, len(ops))
	for _, op := range ops {
		out = append(out, map[string]string{"name": string(op), "path": Routes[op]})
	}
	respond.JSON(w, http.StatusOK, out)
}

func writeHistoryError(w http.ResponseWriter, err error) {
	if errors.Is(err, calcUC.ErrHistoryDisabled) {
		respond.Error(w, http.StatusNotFound, err)
		return
	}
	respond.SafeError(w, err)
}
