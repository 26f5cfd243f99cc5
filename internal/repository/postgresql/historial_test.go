package postgresql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "gitlab.com/emarket/devoluciones/internal/db/mocks"
	"gitlab.com/emarket/devoluciones/internal/devolucion"
	"gitlab.com/emarket/devoluciones/internal/repository"
)

func TestHistorialRepo_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := NewHistorialRepo(mockDB)
	ctx := context.Background()

	entry := &repository.HistorialEntry{
		DevolucionID:   uuid.New(),
		EstadoAnterior: devolucion.StatusPending,
		EstadoNuevo:    devolucion.StatusProcessing,
		ActorID:        "admin-9",
		Comentario:     "aprobado",
		CreatedAt:      time.Now(),
	}

	t.Run("Success", func(t *testing.T) {
		mockDB.EXPECT().
			Exec(gomock.Any(), gomock.Any(),
				gomock.Eq(entry.DevolucionID),
				gomock.Eq(devolucion.StatusPending),
				gomock.Eq(devolucion.StatusProcessing),
				gomock.Eq("admin-9"),
				gomock.Eq("aprobado"),
				gomock.Eq(entry.CreatedAt)).
			Return(nil, nil)

		assert.NoError(t, repo.Create(ctx, entry))
	})

	t.Run("DB Error", func(t *testing.T) {
		dbErr := errors.New("database error")
		mockDB.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, dbErr)

		err := repo.Create(ctx, entry)
		assert.Equal(t, dbErr, err)
	})
}

func TestHistorialRepo_CreateTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	mockTx := mock_database.NewMockTx(ctrl)
	repo := NewHistorialRepo(mockDB)
	ctx := context.Background()

	entry := &repository.HistorialEntry{
		DevolucionID:   uuid.New(),
		EstadoAnterior: devolucion.StatusProcessing,
		EstadoNuevo:    devolucion.StatusCompleted,
		ActorID:        "system",
		CreatedAt:      time.Now(),
	}

	t.Run("Success", func(t *testing.T) {
		mockTx.EXPECT().
			Exec(gomock.Any(), gomock.Any(),
				gomock.Eq(entry.DevolucionID),
				gomock.Eq(devolucion.StatusProcessing),
				gomock.Eq(devolucion.StatusCompleted),
				gomock.Eq("system"),
				gomock.Eq(""),
				gomock.Eq(entry.CreatedAt)).
			Return(nil, nil)

		assert.NoError(t, repo.CreateTx(ctx, mockTx, entry))
	})

	t.Run("Tx Error", func(t *testing.T) {
		txErr := errors.New("transaction error")
		mockTx.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, txErr)

		err := repo.CreateTx(ctx, mockTx, entry)
		assert.Equal(t, txErr, err)
	})
}

func TestHistorialRepo_GetByDevolucionID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := NewHistorialRepo(mockDB)
	ctx := context.Background()

	devolucionID := uuid.New()

	t.Run("Chronological Order Preserved", func(t *testing.T) {
		expected := []*repository.HistorialEntry{
			{ID: 1, EstadoAnterior: devolucion.StatusPending, EstadoNuevo: devolucion.StatusProcessing},
			{ID: 2, EstadoAnterior: devolucion.StatusProcessing, EstadoNuevo: devolucion.StatusCompleted},
		}

		mockDB.EXPECT().
			Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(devolucionID)).
			DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
				entries := dest.(*[]*repository.HistorialEntry)
				*entries = expected
				return nil
			})

		got, err := repo.GetByDevolucionID(ctx, devolucionID)
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	})

	t.Run("Empty", func(t *testing.T) {
		mockDB.EXPECT().
			Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		got, err := repo.GetByDevolucionID(ctx, devolucionID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
