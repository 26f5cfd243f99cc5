package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "gitlab.com/emarket/devoluciones/internal/db/mocks"
	"gitlab.com/emarket/devoluciones/internal/devolucion"
	"gitlab.com/emarket/devoluciones/internal/repository"
)

func TestOutboxTaskRepo_CreateTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTx := mock_database.NewMockTx(ctrl)
	repo := NewOutboxTaskRepo(3)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		task := &repository.OutboxTask{
			Topic:   "return-created",
			Payload: json.RawMessage(`{"eventType":"return-created"}`),
		}

		mockTx.EXPECT().
			Exec(gomock.Any(), gomock.Any(),
				gomock.Any(),
				gomock.Eq(repository.TaskStatusCreated),
				gomock.Eq(task.Payload),
				gomock.Eq("return-created"),
				gomock.Any(), gomock.Any()).
			Return(nil, nil)

		err := repo.CreateTx(ctx, mockTx, task)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, task.ID)
	})

	t.Run("Tx Error", func(t *testing.T) {
		txErr := errors.New("transaction error")
		mockTx.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, txErr)

		err := repo.CreateTx(ctx, mockTx, &repository.OutboxTask{Topic: "return-created"})
		assert.ErrorIs(t, err, txErr)
	})
}

func TestOutboxTaskRepo_GetProcessableTasks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := NewOutboxTaskRepo(3)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		expected := []*repository.OutboxTask{
			{ID: uuid.New(), Status: repository.TaskStatusCreated, Topic: "return-created"},
			{ID: uuid.New(), Status: repository.TaskStatusFailed, Topic: "return-paid", Attempts: 1},
		}

		mockDB.EXPECT().
			Select(gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Eq(repository.TaskStatusCreated),
				gomock.Eq(repository.TaskStatusFailed),
				gomock.Eq(3),
				gomock.Eq(50)).
			DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
				tasks := dest.(*[]*repository.OutboxTask)
				*tasks = expected
				return nil
			})

		got, err := repo.GetProcessableTasks(ctx, mockDB, 50)
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	})

	t.Run("DB Error", func(t *testing.T) {
		dbErr := errors.New("database error")
		mockDB.EXPECT().
			Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(dbErr)

		got, err := repo.GetProcessableTasks(ctx, mockDB, 50)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestOutboxTaskRepo_UpdateTaskStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	mockTx := mock_database.NewMockTx(ctrl)
	repo := NewOutboxTaskRepo(3)
	ctx := context.Background()

	id := uuid.New()
	completedAt := time.Now()

	t.Run("Done Via DB", func(t *testing.T) {
		mockDB.EXPECT().
			Exec(gomock.Any(), gomock.Any(),
				gomock.Eq(id), gomock.Eq(repository.TaskStatusDone),
				gomock.Eq(1), gomock.Nil(), gomock.Eq(&completedAt)).
			Return(pgconn.CommandTag("UPDATE 1"), nil)

		err := repo.UpdateTaskStatus(ctx, mockDB, id, repository.TaskStatusDone, 1, nil, &completedAt)
		assert.NoError(t, err)
	})

	t.Run("Failed Via Tx", func(t *testing.T) {
		lastErr := "broker unreachable"
		mockTx.EXPECT().
			Exec(gomock.Any(), gomock.Any(),
				gomock.Eq(id), gomock.Eq(repository.TaskStatusFailed),
				gomock.Eq(2), gomock.Eq(&lastErr), gomock.Nil()).
			Return(pgconn.CommandTag("UPDATE 1"), nil)

		err := repo.UpdateTaskStatusTx(ctx, mockTx, id, repository.TaskStatusFailed, 2, &lastErr, nil)
		assert.NoError(t, err)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockDB.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgconn.CommandTag("UPDATE 0"), nil)

		err := repo.UpdateTaskStatus(ctx, mockDB, id, repository.TaskStatusDone, 1, nil, nil)
		assert.ErrorIs(t, err, devolucion.ErrNotFound)
	})
}
