package service

import (
	"context"

	"tiffin-finder/rate-svc/internal/domain"

	"github.com/google/uuid"
)

type ReviewServiceInterface interface {
	CreateOrUpdate(ctx context.Context, review *domain.Review) error
	ListKitchenReviews(ctx context.Context, kitchenID uuid.UUID) ([]domain.Review, error)
	RatingDistribution(ctx context.Context, kitchenID uuid.UUID) (map[string]int, error)
}

type ReviewRepository interface {
	ValidateOrderForKitchen(ctx context.Context, orderID, kitchenID, userID uuid.UUID) (bool, error)
	GetExistingReviewID(ctx context.Context, userID, orderID, kitchenID uuid.UUID) (uuid.UUID, error)
	InsertReview(ctx context.Context, review *domain.Review) error
	UpdateReview(ctx context.Context, id uuid.UUID, review *domain.Review) error
	ListKitchenReviews(ctx context.Context, kitchenID uuid.UUID) ([]domain.Review, error)
	RatingDistribution(ctx context.Context, kitchenID uuid.UUID) (map[string]int, error)
}

type ReviewCache interface {
	ReviewMarkerKey(kitchenID, orderID uuid.UUID) string
	Exists(ctx context.Context, key string) (bool, error)
	SetMarker(ctx context.Context, key string) error
}

type ReviewPublisher interface {
	PublishReview(ctx context.Context, msg domain.KafkaMessage) error
}

var _ ReviewServiceInterface = (*ReviewService)(nil)
