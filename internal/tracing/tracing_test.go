package tracing

import (
	"context"
	"errors"
	"strings"
	"testing"

	"resume-parser/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestMaskPII(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"a", "*"},
		{"ab", "a*"},
		{"Ann", "A*n"},
		{"jane.doe@example.com", "ja****************om"},
		{"555-123-4567", "55********67"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MaskPII(tt.in), "MaskPII(%q)", tt.in)
	}

	name := "Jane Doe"
	assert.Equal(t, "Ja****oe", MaskOptional(&name))
	assert.Equal(t, "", MaskOptional(nil))
}

func TestSafeAttributeValue(t *testing.T) {
	assert.Equal(t, "ja****************om", SafeAttributeValue("result.email", "jane.doe@example.com", 10))
	assert.Equal(t, "abc...xyz", SafeAttributeValue("request.id", "abcdefghijklmnopqrstuvwxyz", 9))
	assert.Equal(t, "short", SafeAttributeValue("request.id", "short", 9))
}

func TestSafeAttribute(t *testing.T) {
	kv := SafeAttribute("result.phone", "555-123-4567")
	assert.Equal(t, "result.phone", string(kv.Key))
	assert.Equal(t, "55********67", kv.Value.AsString())

	long := SafeAttribute("request.id", strings.Repeat("x", 300))
	assert.Len(t, long.Value.AsString(), DefaultMaxLength-1)
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "ab", TruncateString("abcdef", 2))
	assert.Equal(t, "a...f", TruncateString("abcdef", 5))
	assert.Equal(t, "abcdef", TruncateString("abcdef", 6))
}

func TestRecordError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := tp.Tracer("test").Start(context.Background(), "op")
	RecordHTTPError(span, errors.New("bad request"), 400)
	RecordError(nil, errors.New("ignored"), ErrorTypeValidation)
	RecordError(span, nil, ErrorTypeValidation)
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)

	attrs := make(map[string]string)
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "http", attrs["error.type"])
	assert.Equal(t, "client_error", attrs["error.category"])
	assert.Equal(t, "400", attrs["http.status_code"])
}

func TestInitProviderDisabled(t *testing.T) {
	shutdown, err := InitProvider(context.Background(), config.TracingConfig{Enabled: false}, "test")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}
