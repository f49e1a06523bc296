package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrOrderNotForKitchen = errors.New("order was not placed by this user at this kitchen")
	ErrDuplicateReview    = errors.New("review already exists for this order and kitchen")
)

type Review struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	KitchenID uuid.UUID `json:"kitchen_id"`
	OrderID   uuid.UUID `json:"order_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Photos    []string  `json:"photos"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// KafkaMessage is the event agg-svc consumes to recompute kitchen ratings.
type KafkaMessage struct {
	Type      string    `json:"type"`
	KitchenID uuid.UUID `json:"kitchen_id"`
	OrderID   uuid.UUID `json:"order_id"`
	UserID    uuid.UUID `json:"user_id"`
	Rating    int       `json:"rating"`
	Timestamp time.Time `json:"timestamp"`
}
