package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/retailops/inventory-manager/internal/alerts"
	"github.com/retailops/inventory-manager/pkg/idempotency"
	"github.com/retailops/inventory-manager/pkg/logging"
	"github.com/retailops/inventory-manager/pkg/shutdown"
	"github.com/retailops/inventory-manager/pkg/tracing"
)

// stock-alerts watches the inventory event stream and logs an alert whenever
// a purchase leaves a product at or below the low-stock threshold.
func main() {
	log := logging.New()
	tracing.Setup()
	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	kafkaAddr := env("KAFKA_ADDR", "localhost:9092")
	redisAddr := env("REDIS_ADDR", "localhost:6379")
	inTopic := env("IN_TOPIC", "inventory.events")
	group := env("GROUP_ID", "stock-alerts")

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	defer rdb.Close()
	idem := idempotency.NewStore(rdb, 10*time.Minute)

	consumer := alerts.NewConsumer(log, strings.Split(kafkaAddr, ","), inTopic, group, idem)

	if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
		log.Error("consumer stopped", "err", err)
		os.Exit(1)
	}
	log.Info("stock-alerts shutdown")
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
