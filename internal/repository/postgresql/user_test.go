package postgresql

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	mock_database "gitlab.com/emarket/devoluciones/internal/db/mocks"
	"gitlab.com/emarket/devoluciones/internal/devolucion"
)

func TestUserRepo_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := NewUserRepo(mockDB)
	ctx := context.Background()

	t.Run("Stores Bcrypt Hash", func(t *testing.T) {
		mockDB.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Eq("admin"), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, args ...interface{}) (pgconn.CommandTag, error) {
				hashed := args[1].(string)
				assert.NotEqual(t, "secret", hashed)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("secret")))
				return nil, nil
			})

		assert.NoError(t, repo.CreateUser(ctx, "admin", "secret"))
	})
}

func TestUserRepo_ValidateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := NewUserRepo(mockDB)
	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("Correct Password", func(t *testing.T) {
		mockDB.EXPECT().
			ExecQueryRow(gomock.Any(), gomock.Any(), gomock.Eq("admin")).
			Return(rowStub{scan: func(dest ...interface{}) error {
				*dest[0].(*string) = string(hashed)
				return nil
			}})

		valid, err := repo.ValidateUser(ctx, "admin", "secret")
		assert.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		mockDB.EXPECT().
			ExecQueryRow(gomock.Any(), gomock.Any(), gomock.Eq("admin")).
			Return(rowStub{scan: func(dest ...interface{}) error {
				*dest[0].(*string) = string(hashed)
				return nil
			}})

		valid, err := repo.ValidateUser(ctx, "admin", "wrong")
		assert.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("Unknown User", func(t *testing.T) {
		mockDB.EXPECT().
			ExecQueryRow(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(rowStub{scan: func(...interface{}) error { return errors.New("no rows") }})

		valid, err := repo.ValidateUser(ctx, "ghost", "secret")
		assert.False(t, valid)
		assert.ErrorIs(t, err, devolucion.ErrNotFound)
	})
}
