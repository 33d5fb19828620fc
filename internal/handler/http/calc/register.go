package calc

import (
	"net/http"

	"numconv/internal/domain/entity"
	calcUC "numconv/internal/usecase/calc"
)

// Routes maps each operation to its POST path.
var Routes = map[entity.Operation]string{
	entity.OpIntToRoman: "/convert/int-to-roman",
	entity.OpRomanToInt: "/convert/roman-to-int",
	entity.OpParity:     "/check/parity",
	entity.OpPrime:      "/check/prime",
	entity.OpFactorial:  "/compute/factorial",
}

// Register registers the calculation, history and operations routes on mux.
func Register(mux *http.ServeMux, svc *calcUC.Service) {
	for _, op := range entity.AllOperations() {
		mux.Handle("POST "+Routes[op], OperationHandler{Svc: svc, Op: op})
	}
	mux.Handle("GET /history/{operation}", HistoryHandler{Svc: svc})
	mux.Handle("DELETE /history/{operation}", ClearHistoryHandler{Svc: svc})
	mux.Handle("GET /operations", OperationsHandler{})
}
