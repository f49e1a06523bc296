package tests

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"tiffin-finder/agg-svc/internal/domain"
	"tiffin-finder/agg-svc/internal/mocks"
	"tiffin-finder/agg-svc/internal/service"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestConsumer_ProcessReview(t *testing.T) {
	kitchenID := uuid.New()
	rating := &domain.KitchenRating{KitchenID: kitchenID, Rating: 4.5, ReviewCount: 2}

	tests := []struct {
		name           string
		inputMessage   domain.KafkaMessage
		setupMockStore func(*mocks.StoreInterface)
		wantErr        bool
	}{
		{
			name:         "success",
			inputMessage: domain.KafkaMessage{Type: domain.MessageNewReview, KitchenID: kitchenID, Rating: 5},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("UpdateKitchenRating", mock.Anything, kitchenID).Return(rating, nil).Once()
				mockStore.On("UpdateLeaderboard", mock.Anything, rating).Return(nil).Once()
			},
		},
		{
			name:         "UpdateKitchenRating error",
			inputMessage: domain.KafkaMessage{Type: domain.MessageNewReview, KitchenID: kitchenID, Rating: 5},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("UpdateKitchenRating", mock.Anything, kitchenID).Return(nil, errors.New("db connection failed")).Once()
			},
			wantErr: true,
		},
		{
			name:         "kitchen without reviews",
			inputMessage: domain.KafkaMessage{Type: domain.MessageNewReview, KitchenID: kitchenID, Rating: 5},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("UpdateKitchenRating", mock.Anything, kitchenID).Return(nil, domain.ErrNoReviews).Once()
			},
		},
		{
			name:         "UpdateLeaderboard error",
			inputMessage: domain.KafkaMessage{Type: domain.MessageNewReview, KitchenID: kitchenID, Rating: 5},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("UpdateKitchenRating", mock.Anything, kitchenID).Return(rating, nil).Once()
				mockStore.On("UpdateLeaderboard", mock.Anything, rating).Return(errors.New("redis error")).Once()
			},
			wantErr: true,
		},
		{
			name:           "other message types are ignored",
			inputMessage:   domain.KafkaMessage{Type: "review_deleted", KitchenID: kitchenID},
			setupMockStore: func(*mocks.StoreInterface) {},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := mocks.NewStoreInterface(t)
			testCase.setupMockStore(mockStore)

			consumer := service.NewConsumer(nil, mockStore, quietLogger())

			err := consumer.ProcessReview(context.Background(), testCase.inputMessage)
			if testCase.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// scriptedReader replays messages and then blocks until the context ends.
type scriptedReader struct {
	messages []kafka.Message
	cancel   context.CancelFunc
}

func (r *scriptedReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.messages) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafka.Message{}, ctx.Err()
	}
	msg := r.messages[0]
	r.messages = r.messages[1:]
	return msg, nil
}

func TestConsumer_StartSkipsBadMessagesAndStops(t *testing.T) {
	kitchenID := uuid.New()
	payload, err := json.Marshal(domain.KafkaMessage{Type: domain.MessageNewReview, KitchenID: kitchenID, Rating: 4})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	reader := &scriptedReader{
		messages: []kafka.Message{
			{Value: []byte("not json")},
			{Value: payload},
		},
		cancel: cancel,
	}

	rating := &domain.KitchenRating{KitchenID: kitchenID, Rating: 4, ReviewCount: 1}
	mockStore := mocks.NewStoreInterface(t)
	mockStore.On("UpdateKitchenRating", mock.Anything, kitchenID).Return(rating, nil).Once()
	mockStore.On("UpdateLeaderboard", mock.Anything, rating).Return(nil).Once()

	consumer := service.NewConsumer(reader, mockStore, quietLogger())
	consumer.Start(ctx)

	assert.Empty(t, reader.messages)
}
