package tracing

import (
	"context"
	"strings"
	"testing"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel/trace"
)

func sampledContext(t *testing.T) context.Context {
	t.Helper()
	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	if err != nil {
		t.Fatalf("trace id: %v", err)
	}
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	if err != nil {
		t.Fatalf("span id: %v", err)
	}
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
	return trace.ContextWithSpanContext(context.Background(), sc)
}

func TestTraceparentFromContext(t *testing.T) {
	Setup()
	got := Traceparent(sampledContext(t))
	if !strings.HasPrefix(got, "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-") {
		t.Fatalf("traceparent = %q", got)
	}
	if Traceparent(context.Background()) != "" {
		t.Fatalf("expected empty traceparent without a span context")
	}
}

func TestKafkaHeaderRoundTrip(t *testing.T) {
	Setup()
	ctx := sampledContext(t)

	headers := InjectKafkaHeaders(ctx, nil)
	var found bool
	for _, h := range headers {
		if h.Key == TraceparentHeader {
			found = true
		}
	}
	if !found {
		t.Fatalf("no traceparent header injected: %v", headers)
	}

	extracted := ExtractKafkaHeaders(context.Background(), headers)
	got := trace.SpanContextFromContext(extracted)
	want := trace.SpanContextFromContext(ctx)
	if got.TraceID() != want.TraceID() {
		t.Fatalf("trace id = %s, want %s", got.TraceID(), want.TraceID())
	}
}

func TestExtractIgnoresUnrelatedHeaders(t *testing.T) {
	Setup()
	ctx := ExtractKafkaHeaders(context.Background(), []kafka.Header{
		{Key: "event_type", Value: []byte("ProductRestocked")},
	})
	if trace.SpanContextFromContext(ctx).IsValid() {
		t.Fatalf("expected no span context from unrelated headers")
	}
}
