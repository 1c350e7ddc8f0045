// Package alerts consumes the inventory event stream and raises low-stock
// alerts for committed purchases.
package alerts

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/retailops/inventory-manager/internal/ledger/domain"
	"github.com/retailops/inventory-manager/pkg/idempotency"
	"github.com/retailops/inventory-manager/pkg/tracing"
)

type Consumer struct {
	log    *slog.Logger
	reader *kafka.Reader
	idem   *idempotency.Store
	tracer trace.Tracer
}

func NewConsumer(log *slog.Logger, brokers []string, topic, group string, idem *idempotency.Store) *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: group,
	})
	return &Consumer{
		log:    log,
		reader: r,
		idem:   idem,
		tracer: otel.Tracer("stock-alerts"),
	}
}

func (c *Consumer) Run(ctx context.Context) error {
	defer c.reader.Close()
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			return err
		}
		key := c.idem.Key(msg.Topic, msg.Partition, msg.Offset)
		seen, err := c.idem.Seen(ctx, key)
		if err != nil {
			c.log.Error("idempotency check failed", "err", err)
			continue
		}
		if seen {
			c.log.Info("duplicate message skipped", "key", key)
			_ = c.reader.CommitMessages(ctx, msg)
			continue
		}

		msgCtx := tracing.ExtractKafkaHeaders(ctx, msg.Headers)
		_, span := c.tracer.Start(msgCtx, "ConsumeInventoryEvent")
		c.handle(msg)
		span.End()

		_ = c.reader.CommitMessages(ctx, msg)
	}
}

func (c *Consumer) handle(msg kafka.Message) {
	if headerValue(msg.Headers, "event_type") != "PurchaseCommitted" {
		return
	}

	var ev domain.PurchaseCommitted
	if err := json.Unmarshal(msg.Value, &ev); err != nil {
		c.log.Error("unmarshal failed", "err", err)
		return
	}

	if ev.Remaining <= domain.LowStockThreshold {
		c.log.Warn("low stock",
			"product_id", ev.ProductID,
			"remaining", ev.Remaining,
			"threshold", domain.LowStockThreshold)
	}
}

func headerValue(h []kafka.Header, key string) string {
	for _, hh := range h {
		if hh.Key == key {
			return string(hh.Value)
		}
	}
	return ""
}
