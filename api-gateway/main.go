package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tiffin-finder/api-gateway/internal/gateway"
	"tiffin-finder/config"

	"github.com/rs/cors"
)

func main() {
	log := config.NewLogger("api-gateway")
	config.LoadEnv(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gwConfig := gateway.Config{
		KitchenSvcURL: config.GetEnv("KITCHEN_SVC_URL", "http://localhost:8081"),
		RateSvcURL:    config.GetEnv("RATE_SVC_URL", "http://localhost:8082"),
	}

	gw := gateway.NewGateway(gwConfig, &http.Client{Timeout: 30 * time.Second}, log)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://127.0.0.1:5173", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              ":" + config.GetEnv("PORT", "8080"),
		Handler:           c.Handler(gw.SetupRoutes()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.WithField("addr", srv.Addr).Info("api gateway starting")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Fatal("server stopped")
	}
}
