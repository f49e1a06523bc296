package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const MessageNewReview = "new_review"

// ErrNoReviews means the kitchen has no reviews yet; its rating stays untouched.
var ErrNoReviews = errors.New("kitchen has no reviews")

type KafkaMessage struct {
	Type      string    `json:"type"`
	KitchenID uuid.UUID `json:"kitchen_id"`
	OrderID   uuid.UUID `json:"order_id"`
	UserID    uuid.UUID `json:"user_id"`
	Rating    int       `json:"rating"`
	Timestamp time.Time `json:"timestamp"`
}

type KitchenRating struct {
	KitchenID   uuid.UUID
	Rating      float64
	ReviewCount int
}
