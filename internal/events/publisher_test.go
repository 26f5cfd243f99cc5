package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "gitlab.com/emarket/devoluciones/internal/db/mocks"
	"gitlab.com/emarket/devoluciones/internal/repository"
	mock_storage "gitlab.com/emarket/devoluciones/internal/storage/mocks"
)

func TestOutboxPublisher_PublishTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_storage.NewMockOutboxTaskRepository(ctrl)
	mockTx := mock_database.NewMockTx(ctrl)
	ctx := context.Background()

	fixed := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	publisher := NewOutboxPublisher(mockRepo)
	publisher.now = func() time.Time { return fixed }

	t.Run("Envelope Written To Outbox", func(t *testing.T) {
		payload := ReturnPaidPayload{
			DevolucionID:  "dev-1",
			Codigo:        "RET-20250310-000001",
			OrderID:       "order123",
			Amount:        100,
			Currency:      "PEN",
			TransaccionID: "tx-1",
		}

		mockRepo.EXPECT().
			CreateTx(gomock.Any(), mockTx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, task *repository.OutboxTask) error {
				assert.Equal(t, TopicReturnPaid, task.Topic)

				var envelope Envelope
				require.NoError(t, json.Unmarshal(task.Payload, &envelope))
				assert.Equal(t, TopicReturnPaid, envelope.EventType)
				assert.Equal(t, fixed, envelope.Timestamp)

				var got ReturnPaidPayload
				require.NoError(t, json.Unmarshal(envelope.Data, &got))
				assert.Equal(t, payload, got)
				return nil
			})

		err := publisher.PublishTx(ctx, mockTx, TopicReturnPaid, payload)
		assert.NoError(t, err)
	})

	t.Run("Repo Error Propagates", func(t *testing.T) {
		repoErr := errors.New("insert failed")
		mockRepo.EXPECT().
			CreateTx(gomock.Any(), mockTx, gomock.Any()).
			Return(repoErr)

		err := publisher.PublishTx(ctx, mockTx, TopicReturnCreated, ReturnCreatedPayload{DevolucionID: "dev-1"})
		assert.ErrorIs(t, err, repoErr)
	})
}
