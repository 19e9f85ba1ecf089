package repository

import (
	"context"
	"testing"

	"casino/domain/entities"
	"casino/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_GetByID(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	t.Run("user not found", func(t *testing.T) {
		user, err := repo.GetByID(ctx, "missing-user")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("user found", func(t *testing.T) {
		created, err := repo.Create(ctx, "player-1", 1000)
		require.NoError(t, err)

		user, err := repo.GetByID(ctx, "player-1")
		require.NoError(t, err)
		require.NotNil(t, user)

		assert.Equal(t, "player-1", user.ID)
		assert.Equal(t, int64(1000), user.PointsBalance)
		assert.Equal(t, int64(0), user.TotalEarned)
		assert.Equal(t, entities.UserStatusActive, user.Status)
		assert.Equal(t, created.CreatedAt, user.CreatedAt)
	})
}

func TestUserRepository_Create(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	t.Run("successful creation", func(t *testing.T) {
		user, err := repo.Create(ctx, "player-1", 2500)
		require.NoError(t, err)
		require.NotNil(t, user)

		assert.Equal(t, "player-1", user.ID)
		assert.Equal(t, int64(2500), user.PointsBalance)
		assert.Equal(t, entities.UserStatusActive, user.Status)
		assert.False(t, user.CreatedAt.IsZero())
		assert.False(t, user.UpdatedAt.IsZero())
	})

	t.Run("duplicate user ID", func(t *testing.T) {
		_, err := repo.Create(ctx, "player-2", 1000)
		require.NoError(t, err)

		_, err = repo.Create(ctx, "player-2", 1000)
		assert.Error(t, err)
	})
}

func TestUserRepository_UpdateBalance(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	_, err := repo.Create(ctx, "player-1", 1000)
	require.NoError(t, err)

	t.Run("updates balance", func(t *testing.T) {
		err := repo.UpdateBalance(ctx, "player-1", 1400)
		require.NoError(t, err)

		user, err := repo.GetByID(ctx, "player-1")
		require.NoError(t, err)
		assert.Equal(t, int64(1400), user.PointsBalance)
	})

	t.Run("negative balance violates schema", func(t *testing.T) {
		err := repo.UpdateBalance(ctx, "player-1", -1)
		assert.Error(t, err)
	})

	t.Run("missing user", func(t *testing.T) {
		err := repo.UpdateBalance(ctx, "missing-user", 500)
		assert.Error(t, err)
	})
}

func TestUserRepository_AddToTotalEarned(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	_, err := repo.Create(ctx, "player-1", 1000)
	require.NoError(t, err)

	require.NoError(t, repo.AddToTotalEarned(ctx, "player-1", 500))
	require.NoError(t, repo.AddToTotalEarned(ctx, "player-1", 250))

	user, err := repo.GetByID(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, int64(750), user.TotalEarned)
}

func TestUserRepository_SetStatus(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	_, err := repo.Create(ctx, "player-1", 1000)
	require.NoError(t, err)

	require.NoError(t, repo.SetStatus(ctx, "player-1", entities.UserStatusBanned))

	user, err := repo.GetByID(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, entities.UserStatusBanned, user.Status)
	assert.False(t, user.IsActive())
}
