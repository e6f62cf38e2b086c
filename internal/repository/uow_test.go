package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := NewDB(":memory:")
	require.NoError(t, err)

	// Одно соединение, иначе каждый коннект из пула получает свою
	// отдельную in-memory базу.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	return db
}

func TestTransactionalCommitPersists(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	uow, err := NewTransactional(db)
	require.NoError(t, err)
	_, err = uow.Users().Create(ctx, 1001, "alice")
	require.NoError(t, err)
	require.NoError(t, uow.Commit())
	uow.Close()

	check := NewReadOnly(db)
	defer check.Close()
	user, err := check.Users().GetByTelegramID(ctx, 1001)
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, "alice", user.Username)
}

func TestTransactionalCloseWithoutCommitRollsBack(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	uow, err := NewTransactional(db)
	require.NoError(t, err)
	_, err = uow.Users().Create(ctx, 1001, "alice")
	require.NoError(t, err)
	uow.Close()

	check := NewReadOnly(db)
	defer check.Close()
	user, err := check.Users().GetByTelegramID(ctx, 1001)
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestReadOnlyCommitAndCloseAreNoOps(t *testing.T) {
	db := setupDB(t)

	uow := NewReadOnly(db)
	require.NoError(t, uow.Commit())
	uow.Close()
	uow.Close()
}

func TestRepositoriesShareTransaction(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	uow, err := NewTransactional(db)
	require.NoError(t, err)
	defer uow.Close()

	user, err := uow.Users().Create(ctx, 1001, "alice")
	require.NoError(t, err)

	// Строка видна через другой репозиторий той же транзакции до Commit
	class, err := uow.Classes().Create(ctx, "Йога", 5, user.UserID)
	require.NoError(t, err)

	loaded, err := uow.Classes().GetUserClassByID(ctx, class.ClassID, user.UserID)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	require.NoError(t, uow.Commit())
}
