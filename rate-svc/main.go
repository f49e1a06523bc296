package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tiffin-finder/config"
	httpapi "tiffin-finder/rate-svc/internal/api/http"
	"tiffin-finder/rate-svc/internal/service"
	"tiffin-finder/rate-svc/internal/storage"
	"tiffin-finder/token"
)

func main() {
	log := config.NewLogger("rate-svc")
	config.LoadEnv(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres(log)
	defer db.Close()

	rdb := config.MustInitRedis(log)
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter(config.ReviewsTopic)
	defer kafkaWriter.Close()

	cache := storage.NewRedisCache(rdb, config.GetDuration("REVIEW_MARKER_TTL", 7*24*time.Hour))
	reviews := service.NewReviewService(
		storage.NewPostgresRepository(db),
		cache,
		storage.NewKafkaPublisher(kafkaWriter),
		log,
	)
	issuer := token.NewIssuer(
		config.GetEnv("JWT_SECRET", "change-me"),
		config.GetDuration("ACCESS_TOKEN_TTL", time.Hour),
		config.GetDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour),
	)

	handler := httpapi.NewHandler(reviews, issuer, cache, log)
	addr := ":" + config.GetEnv("PORT", "8082")
	if err := httpapi.StartServer(ctx, addr, httpapi.NewRouter(handler), log); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
