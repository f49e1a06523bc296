package tests

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"tiffin-finder/rate-svc/internal/domain"
	"tiffin-finder/rate-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*storage.PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return storage.NewPostgresRepository(db), mock
}

func TestPostgresRepository_ValidateOrderForKitchen(t *testing.T) {
	repo, mock := setupTestDB(t)
	orderID, kitchenID, userID := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(orderID, kitchenID, userID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.ValidateOrderForKitchen(context.Background(), orderID, kitchenID, userID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_InsertReview(t *testing.T) {
	repo, mock := setupTestDB(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO reviews").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	review := &domain.Review{UserID: uuid.New(), KitchenID: uuid.New(), OrderID: uuid.New(), Rating: 5, Photos: []string{}}
	require.NoError(t, repo.InsertReview(context.Background(), review))
	assert.NotEqual(t, uuid.Nil, review.ID)
	assert.Equal(t, now, review.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_RatingDistribution(t *testing.T) {
	repo, mock := setupTestDB(t)
	kitchenID := uuid.New()

	mock.ExpectQuery("SELECT rating, COUNT").
		WithArgs(kitchenID).
		WillReturnRows(sqlmock.NewRows([]string{"rating", "count"}).AddRow(4, 2).AddRow(5, 7))

	distribution, err := repo.RatingDistribution(context.Background(), kitchenID)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"1": 0, "2": 0, "3": 0, "4": 2, "5": 7}, distribution)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCache_Markers(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	cache := storage.NewRedisCache(client, 7*24*time.Hour)
	ctx := context.Background()
	key := cache.ReviewMarkerKey(uuid.New(), uuid.New())

	exists, err := cache.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, cache.SetMarker(ctx, key))
	exists, err = cache.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, 7*24*time.Hour, mr.TTL(key))

	require.NoError(t, mr.Set("session:revoked:jti-1", "1"))
	revoked, err := cache.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}

type recordingWriter struct {
	messages []kafka.Message
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.messages = append(w.messages, msgs...)
	return nil
}

func TestKafkaPublisher_PublishReview(t *testing.T) {
	writer := &recordingWriter{}
	publisher := storage.NewKafkaPublisher(writer)
	kitchenID := uuid.New()

	require.NoError(t, publisher.PublishReview(context.Background(), domain.KafkaMessage{
		Type:      "new_review",
		KitchenID: kitchenID,
		Rating:    4,
	}))

	require.Len(t, writer.messages, 1)
	assert.Equal(t, kitchenID.String(), string(writer.messages[0].Key))

	var decoded domain.KafkaMessage
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &decoded))
	assert.Equal(t, kitchenID, decoded.KitchenID)
	assert.Equal(t, 4, decoded.Rating)
}
