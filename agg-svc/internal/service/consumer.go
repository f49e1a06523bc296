package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tiffin-finder/agg-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Log    logrus.FieldLogger
}

func NewConsumer(reader MessageReader, store StoreInterface, log logrus.FieldLogger) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
		Log:    log,
	}
}

// Start consumes review events until ctx is cancelled. Bad messages and
// failed recomputations are logged and skipped.
func (c *Consumer) Start(ctx context.Context) {
	c.Log.Info("starting rating consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.Log.Info("rating consumer stopped")
				return
			}
			c.Log.WithError(err).Error("error reading message")
			continue
		}

		var msg domain.KafkaMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			c.Log.WithError(err).WithField("offset", message.Offset).Warn("error unmarshaling message")
			continue
		}

		if msg.Type != domain.MessageNewReview {
			continue
		}
		if err := c.ProcessReview(ctx, msg); err != nil {
			c.Log.WithError(err).WithField("kitchen_id", msg.KitchenID).Error("failed to process review")
		}
	}
}

func (c *Consumer) ProcessReview(ctx context.Context, msg domain.KafkaMessage) error {
	if msg.Type != domain.MessageNewReview {
		return nil
	}
	log := c.Log.WithFields(logrus.Fields{"kitchen_id": msg.KitchenID, "rating": msg.Rating})
	log.Debug("processing review")

	rating, err := c.Store.UpdateKitchenRating(ctx, msg.KitchenID)
	if errors.Is(err, domain.ErrNoReviews) {
		log.Warn("review event for kitchen without reviews")
		return nil
	}
	if err != nil {
		return fmt.Errorf("update kitchen rating: %w", err)
	}

	if err := c.Store.UpdateLeaderboard(ctx, rating); err != nil {
		return fmt.Errorf("update leaderboard: %w", err)
	}

	log.WithFields(logrus.Fields{"avg_rating": rating.Rating, "review_count": rating.ReviewCount}).Info("kitchen rating updated")
	return nil
}
