package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"tiffin-finder/agg-svc/internal/domain"
	"tiffin-finder/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const TopRatedKey = "kitchens:top_rated"

type Store struct {
	db  *sql.DB
	rdb *redis.Client
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
	}
}

func RatingKey(kitchenID uuid.UUID) string {
	return "kitchen:" + kitchenID.String() + ":rating"
}

// UpdateKitchenRating sets the kitchen rating to the mean of its reviews,
// rounded to one decimal, together with the review count. A kitchen without
// reviews is left unchanged and ErrNoReviews is returned.
func (s *Store) UpdateKitchenRating(ctx context.Context, kitchenID uuid.UUID) (*domain.KitchenRating, error) {
	result := &domain.KitchenRating{KitchenID: kitchenID}
	err := s.db.QueryRowContext(ctx, `
		UPDATE kitchens
		SET rating = agg.avg_rating, review_count = agg.review_count, updated_at = NOW()
		FROM (
			SELECT ROUND(AVG(rating)::numeric, 1) AS avg_rating, COUNT(*) AS review_count
			FROM reviews
			WHERE kitchen_id = $1
		) agg
		WHERE kitchens.id = $1 AND agg.review_count > 0
		RETURNING kitchens.rating, kitchens.review_count
	`, kitchenID).Scan(&result.Rating, &result.ReviewCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNoReviews
	}
	if err != nil {
		return nil, err
	}

	key := RatingKey(kitchenID)
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, map[string]interface{}{
			"avg_rating":   result.Rating,
			"review_count": result.ReviewCount,
			"last_updated": time.Now().Unix(),
		})
		pipe.Expire(ctx, key, 24*time.Hour)
		pipe.Del(ctx, config.NearbyKitchensKey)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateLeaderboard counts today's reviews per kitchen and ranks kitchens by rating.
func (s *Store) UpdateLeaderboard(ctx context.Context, rating *domain.KitchenRating) error {
	member := rating.KitchenID.String()
	dailyKey := "analytics:daily:" + time.Now().Format("2006-01-02")

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZIncrBy(ctx, dailyKey, 1, member)
		pipe.Expire(ctx, dailyKey, 7*24*time.Hour)
		pipe.ZAdd(ctx, TopRatedKey, redis.Z{Score: rating.Rating, Member: member})
		return nil
	})
	return err
}
