package service

import (
	"context"

	"tiffin-finder/agg-svc/internal/domain"
	"tiffin-finder/agg-svc/internal/storage"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	UpdateKitchenRating(ctx context.Context, kitchenID uuid.UUID) (*domain.KitchenRating, error)
	UpdateLeaderboard(ctx context.Context, rating *domain.KitchenRating) error
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessReview(ctx context.Context, msg domain.KafkaMessage) error
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
