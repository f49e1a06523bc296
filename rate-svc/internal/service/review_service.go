package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tiffin-finder/rate-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const MessageNewReview = "new_review"

type ReviewService struct {
	repository ReviewRepository
	cache      ReviewCache
	publisher  ReviewPublisher
	log        logrus.FieldLogger
}

func NewReviewService(repository ReviewRepository, cache ReviewCache, publisher ReviewPublisher, log logrus.FieldLogger) *ReviewService {
	return &ReviewService{
		repository: repository,
		cache:      cache,
		publisher:  publisher,
		log:        log,
	}
}

// CreateOrUpdate stores the caller's review of an order. A second review of
// the same order replaces the first once its marker has expired.
func (s *ReviewService) CreateOrUpdate(ctx context.Context, review *domain.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return domain.ErrInvalidRating
	}

	valid, err := s.repository.ValidateOrderForKitchen(ctx, review.OrderID, review.KitchenID, review.UserID)
	if err != nil {
		return fmt.Errorf("failed to validate order: %w", err)
	}
	if !valid {
		return domain.ErrOrderNotForKitchen
	}

	cacheKey := s.cache.ReviewMarkerKey(review.KitchenID, review.OrderID)
	if exists, _ := s.cache.Exists(ctx, cacheKey); exists {
		return domain.ErrDuplicateReview
	}

	if review.Photos == nil {
		review.Photos = []string{}
	}

	existingID, err := s.repository.GetExistingReviewID(ctx, review.UserID, review.OrderID, review.KitchenID)
	switch {
	case err == nil:
		if err := s.repository.UpdateReview(ctx, existingID, review); err != nil {
			return fmt.Errorf("failed to update review: %w", err)
		}
		review.ID = existingID
	case errors.Is(err, sql.ErrNoRows):
		if err := s.repository.InsertReview(ctx, review); err != nil {
			return fmt.Errorf("failed to insert review: %w", err)
		}
	default:
		return fmt.Errorf("failed to check existing review: %w", err)
	}

	if err := s.cache.SetMarker(ctx, cacheKey); err != nil {
		s.log.WithError(err).Warn("failed to cache review marker")
	}

	if s.publisher != nil {
		if err := s.publisher.PublishReview(ctx, domain.KafkaMessage{
			Type:      MessageNewReview,
			KitchenID: review.KitchenID,
			OrderID:   review.OrderID,
			UserID:    review.UserID,
			Rating:    review.Rating,
			Timestamp: time.Now(),
		}); err != nil {
			s.log.WithError(err).WithField("kitchen_id", review.KitchenID).Error("failed to publish review event")
		}
	}

	s.log.WithFields(logrus.Fields{
		"review_id":  review.ID,
		"kitchen_id": review.KitchenID,
		"order_id":   review.OrderID,
	}).Info("review saved")
	return nil
}

func (s *ReviewService) ListKitchenReviews(ctx context.Context, kitchenID uuid.UUID) ([]domain.Review, error) {
	return s.repository.ListKitchenReviews(ctx, kitchenID)
}

func (s *ReviewService) RatingDistribution(ctx context.Context, kitchenID uuid.UUID) (map[string]int, error) {
	return s.repository.RatingDistribution(ctx, kitchenID)
}
