package outbox

import (
	"context"
	"testing"

	"github.com/segmentio/kafka-go"

	"github.com/retailops/inventory-manager/pkg/logging"
	"github.com/retailops/inventory-manager/pkg/tracing"
)

type capturingProducer struct {
	msgs []kafka.Message
}

func (p *capturingProducer) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	p.msgs = append(p.msgs, msgs...)
	return nil
}

func headerValue(msg kafka.Message, key string) (string, bool) {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value), true
		}
	}
	return "", false
}

func TestDispatchCarriesStoredTraceparent(t *testing.T) {
	producer := &capturingProducer{}
	d := NewDispatcher(logging.New(), producer, "inventory.events")

	event := Event{
		ID:          7,
		AggregateID: "42",
		Type:        "PurchaseCommitted",
		Payload:     []byte(`{"product_id":42}`),
		Traceparent: "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01",
	}
	if err := d.Dispatch(context.Background(), event); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(producer.msgs) != 1 {
		t.Fatalf("messages written = %d, want 1", len(producer.msgs))
	}

	msg := producer.msgs[0]
	if got, ok := headerValue(msg, "event_type"); !ok || got != "PurchaseCommitted" {
		t.Fatalf("event_type header = %q, present %v", got, ok)
	}
	if got, ok := headerValue(msg, tracing.TraceparentHeader); !ok || got != event.Traceparent {
		t.Fatalf("traceparent header = %q, present %v", got, ok)
	}
	if string(msg.Key) != "42" {
		t.Fatalf("message key = %q", msg.Key)
	}
}

func TestDispatchWithoutTraceContext(t *testing.T) {
	producer := &capturingProducer{}
	d := NewDispatcher(logging.New(), producer, "inventory.events")

	event := Event{ID: 8, AggregateID: "1", Type: "ProductCreated", Payload: []byte(`{}`)}
	if err := d.Dispatch(context.Background(), event); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	msg := producer.msgs[0]
	if got, ok := headerValue(msg, tracing.TraceparentHeader); ok {
		t.Fatalf("unexpected traceparent header %q without any trace context", got)
	}
	if _, ok := headerValue(msg, "event_type"); !ok {
		t.Fatalf("event_type header missing")
	}
}
