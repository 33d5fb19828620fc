package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func installRecorder(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	shutdown, err := Setup(Config{ServiceName: "numconv-test", SampleRatio: 1})
	require.NoError(t, err)
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		_ = shutdown(context.Background())
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(sdktrace.NewTracerProvider())
	})
	return exporter
}

func attr(attrs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, a := range attrs {
		if string(a.Key) == key {
			return a.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestMiddleware_RecordsServerSpan(t *testing.T) {
	exporter := installRecorder(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, TraceID(r.Context()))
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/check/prime", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "POST /check/prime", spans[0].Name)
	assert.Len(t, rr.Header().Get(TraceIDHeader), 32)

	status, ok := attr(spans[0].Attributes, "http.status_code")
	require.True(t, ok)
	assert.Equal(t, int64(200), status.AsInt64())
	assert.Equal(t, codes.Unset, spans[0].Status.Code)
}

func TestMiddleware_PropagatesIncomingTrace(t *testing.T) {
	exporter := installRecorder(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/history/prime", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", spans[0].SpanContext.TraceID().String())
}

func TestMiddleware_ErrorStatusOnlyFor5xx(t *testing.T) {
	tests := []struct {
		code int
		want codes.Code
	}{
		{http.StatusUnprocessableEntity, codes.Unset},
		{http.StatusInternalServerError, codes.Error},
	}

	for _, tt := range tests {
		exporter := installRecorder(t)
		handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tt.code)
		}))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
		assert.Equal(t, tt.want, spans[0].Status.Code, "status %d", tt.code)
	}
}

func TestStartSpan_ChildOfParent(t *testing.T) {
	exporter := installRecorder(t)

	ctx, parent := StartSpan(context.Background(), "parent")
	_, child := StartSpan(ctx, "calc.factorial", attribute.String("input", "5"))
	child.End()
	parent.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "calc.factorial", spans[0].Name)
	assert.Equal(t, spans[1].SpanContext.SpanID(), spans[0].Parent.SpanID())

	v, ok := attr(spans[0].Attributes, "input")
	require.True(t, ok)
	assert.Equal(t, "5", v.AsString())
}

func TestTraceID_EmptyWithoutSpan(t *testing.T) {
	assert.Equal(t, "", TraceID(context.Background()))
}
