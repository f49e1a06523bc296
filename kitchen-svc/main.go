package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tiffin-finder/config"
	httpapi "tiffin-finder/kitchen-svc/internal/api/http"
	"tiffin-finder/kitchen-svc/internal/seed"
	"tiffin-finder/kitchen-svc/internal/service"
	"tiffin-finder/kitchen-svc/internal/storage"
	"tiffin-finder/token"
)

func main() {
	log := config.NewLogger("kitchen-svc")
	config.LoadEnv(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres(log)
	defer db.Close()
	rdb := config.MustInitRedis(log)
	defer rdb.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.WithError(err).Fatal("failed to ensure schema")
	}

	if n := config.GetInt("SEED_KITCHENS", 0); n > 0 {
		seeder := seed.New(repo, repo, repo, config.GetEnv("SEED_PASSWORD", "tiffin123"))
		if err := seeder.Run(ctx, n); err != nil {
			log.WithError(err).Fatal("failed to seed kitchens")
		}
		log.WithField("kitchens", n).Info("seeding complete")
	}

	uploadDir := config.GetEnv("UPLOAD_DIR", "./uploads")
	var images service.ImageStore = storage.NewLocalImageStore(uploadDir, "/uploads")
	if config.GetEnv("IMAGE_STORE", "local") == "s3" {
		s3Store, err := storage.NewS3ImageStoreFromEnv(ctx, os.Getenv("S3_BUCKET"), config.GetEnv("AWS_REGION", "ap-south-1"))
		if err != nil {
			log.WithError(err).Fatal("failed to init s3 image store")
		}
		images = s3Store
	}

	cache := storage.NewRedisCache(rdb, config.GetDuration("NEARBY_CACHE_TTL", time.Minute))
	notifier := storage.NewRedisNotifier(rdb)
	issuer := token.NewIssuer(
		config.GetEnv("JWT_SECRET", "change-me"),
		config.GetDuration("ACCESS_TOKEN_TTL", time.Hour),
		config.GetDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour),
	)

	kitchens := service.NewKitchenService(repo, repo, cache, images, log)
	handler := &httpapi.Handler{
		Auth:     service.NewAuthService(repo, issuer, cache, notifier, log),
		Kitchens: kitchens,
		Menu:     service.NewMenuService(repo, kitchens, cache),
		Orders: service.NewOrderService(repo, repo, repo,
			service.DefaultQRGenerator{BaseURL: config.GetEnv("PUBLIC_BASE_URL", "http://localhost:8080")}, notifier, log),
		Notifier: notifier,
		Tokens:   issuer,
		Sessions: cache,
		Log:      log,
	}
	if _, ok := images.(*storage.LocalImageStore); ok {
		handler.UploadDir = uploadDir
	}

	addr := ":" + config.GetEnv("PORT", "8081")
	if err := httpapi.StartServer(ctx, addr, httpapi.NewRouter(handler), log); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
