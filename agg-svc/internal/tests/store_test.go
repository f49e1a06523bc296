package tests

import (
	"context"
	"testing"
	"time"

	"tiffin-finder/agg-svc/internal/domain"
	"tiffin-finder/agg-svc/internal/storage"
	"tiffin-finder/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*storage.Store, sqlmock.Sqlmock, *miniredis.Miniredis) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return storage.NewStore(db, rdb), mock, mr
}

func TestStore_UpdateKitchenRating(t *testing.T) {
	store, mock, mr := setupStore(t)
	kitchenID := uuid.New()
	require.NoError(t, mr.Set(config.NearbyKitchensKey, "[]"))

	mock.ExpectQuery("UPDATE kitchens").
		WithArgs(kitchenID).
		WillReturnRows(sqlmock.NewRows([]string{"rating", "review_count"}).AddRow(4.3, 3))

	rating, err := store.UpdateKitchenRating(context.Background(), kitchenID)
	require.NoError(t, err)
	assert.Equal(t, 4.3, rating.Rating)
	assert.Equal(t, 3, rating.ReviewCount)

	key := storage.RatingKey(kitchenID)
	assert.Equal(t, "4.3", mr.HGet(key, "avg_rating"))
	assert.Equal(t, "3", mr.HGet(key, "review_count"))
	assert.Equal(t, 24*time.Hour, mr.TTL(key))
	assert.False(t, mr.Exists(config.NearbyKitchensKey))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_UpdateKitchenRatingWithoutReviews(t *testing.T) {
	store, mock, mr := setupStore(t)
	kitchenID := uuid.New()
	require.NoError(t, mr.Set(config.NearbyKitchensKey, "[]"))

	mock.ExpectQuery("UPDATE kitchens").
		WithArgs(kitchenID).
		WillReturnRows(sqlmock.NewRows([]string{"rating", "review_count"}))

	_, err := store.UpdateKitchenRating(context.Background(), kitchenID)
	assert.ErrorIs(t, err, domain.ErrNoReviews)
	assert.True(t, mr.Exists(config.NearbyKitchensKey))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_UpdateLeaderboard(t *testing.T) {
	store, _, mr := setupStore(t)
	kitchenID := uuid.New()

	rating := &domain.KitchenRating{KitchenID: kitchenID, Rating: 4.8, ReviewCount: 24}
	require.NoError(t, store.UpdateLeaderboard(context.Background(), rating))
	require.NoError(t, store.UpdateLeaderboard(context.Background(), rating))

	score, err := mr.ZScore(storage.TopRatedKey, kitchenID.String())
	require.NoError(t, err)
	assert.Equal(t, 4.8, score)

	daily, err := mr.ZScore("analytics:daily:"+time.Now().Format("2006-01-02"), kitchenID.String())
	require.NoError(t, err)
	assert.Equal(t, float64(2), daily)
}
