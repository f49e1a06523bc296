package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tiffin-finder/agg-svc/internal/service"
	"tiffin-finder/agg-svc/internal/storage"
	"tiffin-finder/config"
)

func main() {
	log := config.NewLogger("agg-svc")
	config.LoadEnv(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres(log)
	defer db.Close()

	rdb := config.MustInitRedis(log)
	defer rdb.Close()

	reader := config.NewKafkaReader(config.ReviewsTopic, config.GetEnv("KAFKA_GROUP_ID", "agg-svc-consumer"))
	defer reader.Close()

	consumer := service.NewConsumer(reader, storage.NewStore(db, rdb), log)
	consumer.Start(ctx)
}
