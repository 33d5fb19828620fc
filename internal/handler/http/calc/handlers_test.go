package calc_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numconv/internal/handler/http/calc"
	"numconv/internal/handler/http/respond"
	"numconv/internal/infra/adapter/persistence/memory"
	calcUC "numconv/internal/usecase/calc"
)

func newMux(t *testing.T) *http.ServeMux {
	t.Helper()
	svc := &calcUC.Service{Repo: memory.NewHistoryRepo(memory.DefaultCapacity)}
	mux := http.NewServeMux()
	calc.Register(mux, svc)
	return mux
}

func do(t *testing.T, mux http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func TestOperationHandler_Success(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		body        string
		wantResult  string
		wantDisplay string
	}{
		{"int to roman", "/convert/int-to-roman", `{"input":"1994"}`, "MCMXCIV", "1994 → MCMXCIV"},
		{"int to roman numeric input", "/convert/int-to-roman", `{"input":4}`, "IV", "4 → IV"},
		{"roman to int", "/convert/roman-to-int", `{"input":" mcmxciv "}`, "1994", "MCMXCIV → 1994"},
		{"parity", "/check/parity", `{"input":"-3"}`, "Odd", "-3 is Odd"},
		{"prime", "/check/prime", `{"input":"97"}`, "Prime", "97: Prime Number"},
		{"factorial", "/compute/factorial", `{"input":"20"}`, "2432902008176640000", "20! = 2,432,902,008,176,640,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, newMux(t), http.MethodPost, tt.path, tt.body)
			require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

			var got calc.ResultDTO
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tt.wantResult, got.Result)
			assert.Equal(t, tt.wantDisplay, got.Display)
		})
	}
}

func TestOperationHandler_PrimeDivisor(t *testing.T) {
	rr := do(t, newMux(t), http.MethodPost, "/check/prime", `{"input":"91"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var got calc.ResultDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.NotNil(t, got.Prime)
	assert.False(t, *got.Prime)
	require.NotNil(t, got.Divisor)
	assert.Equal(t, int64(7), *got.Divisor)
	assert.Equal(t, "91: Not Prime (Divisible by 7)", got.Display)

	rr = do(t, newMux(t), http.MethodPost, "/check/prime", `{"input":"1"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	got = calc.ResultDTO{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Nil(t, got.Divisor)
	assert.Equal(t, "1: Not Prime (Divisible by N/A)", got.Display)
}

func TestOperationHandler_Errors(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		body     string
		wantCode int
		wantKind string
		wantMsg  string
	}{
		{"roman out of range", "/convert/int-to-roman", `{"input":"4000"}`, http.StatusUnprocessableEntity, respond.KindOutOfRange, "Please enter a number between 1 and 3999."},
		{"roman zero", "/convert/int-to-roman", `{"input":"0"}`, http.StatusUnprocessableEntity, respond.KindOutOfRange, ""},
		{"roman garbage", "/convert/int-to-roman", `{"input":"abc"}`, http.StatusBadRequest, respond.KindInvalidInput, ""},
		{"bad numeral", "/convert/roman-to-int", `{"input":"IIII"}`, http.StatusBadRequest, respond.KindInvalidInput, ""},
		{"parity fraction", "/check/parity", `{"input":"3.5"}`, http.StatusBadRequest, respond.KindInvalidInput, ""},
		{"prime negative", "/check/prime", `{"input":"-7"}`, http.StatusUnprocessableEntity, respond.KindOutOfRange, ""},
		{"factorial negative", "/compute/factorial", `{"input":"-1"}`, http.StatusBadRequest, respond.KindInvalidInput, ""},
		{"factorial too large", "/compute/factorial", `{"input":"21"}`, http.StatusUnprocessableEntity, respond.KindOutOfRange, ""},
		{"missing input", "/check/prime", `{}`, http.StatusBadRequest, respond.KindInvalidInput, "input is required"},
		{"malformed body", "/check/prime", `{"input":`, http.StatusBadRequest, respond.KindInvalidInput, ""},
		{"unknown field", "/check/prime", `{"input":"7","extra":1}`, http.StatusBadRequest, respond.KindInvalidInput, ""},
		{"boolean input", "/check/prime", `{"input":true}`, http.StatusBadRequest, respond.KindInvalidInput, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, newMux(t), http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.wantCode, rr.Code)

			var body respond.ErrorBody
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tt.wantKind, body.Kind)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, body.Error)
			}
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestOperationHandler_MethodNotAllowed(t *testing.T) {
	rr := do(t, newMux(t), http.MethodGet, "/check/prime", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestHistoryHandlers(t *testing.T) {
	mux := newMux(t)

	for _, in := range []string{"1", "2", "3", "4", "5", "6"} {
		rr := do(t, mux, http.MethodPost, "/convert/int-to-roman", `{"input":"`+in+`"}`)
		require.Equal(t, http.StatusOK, rr.Code)
	}
	// failures are not recorded
	rr := do(t, mux, http.MethodPost, "/convert/int-to-roman", `{"input":"0"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	rr = do(t, mux, http.MethodGet, "/history/int-to-roman", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var hist calc.HistoryResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &hist))
	assert.Equal(t, "int-to-roman", hist.Operation)
	require.Len(t, hist.Entries, 5)

	var outputs []string
	for _, e := range hist.Entries {
		outputs = append(outputs, e.Output)
		assert.NotEmpty(t, e.ID)
	}
	assert.Equal(t, []string{"VI", "V", "IV", "III", "II"}, outputs)

	rr = do(t, mux, http.MethodDelete, "/history/int-to-roman", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = do(t, mux, http.MethodGet, "/history/int-to-roman", "")
	require.Equal(t, http.StatusOK, rr.Code)
	hist = calc.HistoryResponse{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &hist))
	assert.Empty(t, hist.Entries)
}

func TestHistoryHandler_UnknownOperation(t *testing.T) {
	rr := do(t, newMux(t), http.MethodGet, "/history/sqrt", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, newMux(t), http.MethodDelete, "/history/sqrt", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHistoryHandler_Disabled(t *testing.T) {
	mux := http.NewServeMux()
	calc.Register(mux, &calcUC.Service{})

	rr := do(t, mux, http.MethodGet, "/history/prime", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestOperationsHandler(t *testing.T) {
	rr := do(t, newMux(t), http.MethodGet, "/operations", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var ops []map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ops))
	require.Len(t, ops, 5)
	assert.Equal(t, "int-to-roman", ops[0]["name"])
	assert.Equal(t, "/convert/int-to-roman", ops[0]["path"])
	assert.Equal(t, "/compute/factorial", ops[4]["path"])
}
