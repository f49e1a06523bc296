package storage

import (
	"context"
	"database/sql"
	"strconv"

	"tiffin-finder/rate-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) ValidateOrderForKitchen(ctx context.Context, orderID, kitchenID, userID uuid.UUID) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM orders
			WHERE id = $1 AND kitchen_id = $2 AND user_id = $3 AND status <> 'cancelled'
		)
	`, orderID, kitchenID, userID).Scan(&exists)
	return exists, err
}

// GetExistingReviewID returns sql.ErrNoRows when the order has not been reviewed.
func (r *PostgresRepository) GetExistingReviewID(ctx context.Context, userID, orderID, kitchenID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.DB.QueryRowContext(ctx, `
		SELECT id FROM reviews
		WHERE user_id = $1 AND order_id = $2 AND kitchen_id = $3
	`, userID, orderID, kitchenID).Scan(&id)
	return id, err
}

func (r *PostgresRepository) InsertReview(ctx context.Context, review *domain.Review) error {
	review.ID = uuid.New()
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO reviews (id, user_id, kitchen_id, order_id, rating, comment, photos)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`, review.ID, review.UserID, review.KitchenID, review.OrderID, review.Rating, review.Comment, pq.Array(review.Photos)).
		Scan(&review.CreatedAt, &review.UpdatedAt)
}

func (r *PostgresRepository) UpdateReview(ctx context.Context, id uuid.UUID, review *domain.Review) error {
	return r.DB.QueryRowContext(ctx, `
		UPDATE reviews
		SET rating = $1, comment = $2, photos = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING created_at, updated_at
	`, review.Rating, review.Comment, pq.Array(review.Photos), id).
		Scan(&review.CreatedAt, &review.UpdatedAt)
}

func (r *PostgresRepository) ListKitchenReviews(ctx context.Context, kitchenID uuid.UUID) ([]domain.Review, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT rv.id, rv.user_id, COALESCE(u.metadata->>'name', ''), rv.kitchen_id, rv.order_id,
			rv.rating, COALESCE(rv.comment, ''), rv.photos, rv.created_at, rv.updated_at
		FROM reviews rv
		LEFT JOIN users u ON u.id = rv.user_id
		WHERE rv.kitchen_id = $1
		ORDER BY rv.created_at DESC
	`, kitchenID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(&rev.ID, &rev.UserID, &rev.UserName, &rev.KitchenID, &rev.OrderID,
			&rev.Rating, &rev.Comment, pq.Array(&rev.Photos), &rev.CreatedAt, &rev.UpdatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

// RatingDistribution counts reviews per star, with every star from 1 to 5 present.
func (r *PostgresRepository) RatingDistribution(ctx context.Context, kitchenID uuid.UUID) (map[string]int, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT rating, COUNT(*) as count
		FROM reviews
		WHERE kitchen_id = $1
		GROUP BY rating
		ORDER BY rating
	`, kitchenID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	distribution := map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}
	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			return nil, err
		}
		distribution[strconv.Itoa(rating)] = count
	}
	return distribution, rows.Err()
}
