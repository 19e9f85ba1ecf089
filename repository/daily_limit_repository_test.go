package repository

import (
	"context"
	"testing"
	"time"

	"casino/domain/entities"
	"casino/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyLimitRepository_GetOrCreate(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	userRepo := NewUserRepository(testDB.DB)
	repo := NewDailyLimitRepository(testDB.DB)
	ctx := context.Background()

	_, err := userRepo.Create(ctx, "player-1", 1000)
	require.NoError(t, err)

	day := entities.UTCDay(time.Now())

	t.Run("creates zeroed record on first access", func(t *testing.T) {
		limit, err := repo.GetOrCreate(ctx, "player-1", day)
		require.NoError(t, err)
		require.NotNil(t, limit)

		assert.Equal(t, "player-1", limit.UserID)
		assert.Equal(t, day, limit.Date)
		assert.Equal(t, int64(0), limit.TotalWon)
		assert.Equal(t, int64(0), limit.TotalLost)
		assert.Equal(t, 0, limit.GamesPlayed)
	})

	t.Run("idempotent for the same day", func(t *testing.T) {
		first, err := repo.GetOrCreate(ctx, "player-1", day)
		require.NoError(t, err)

		second, err := repo.GetOrCreate(ctx, "player-1", day)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("new day gets a fresh record", func(t *testing.T) {
		today, err := repo.GetOrCreate(ctx, "player-1", day)
		require.NoError(t, err)

		tomorrow, err := repo.GetOrCreate(ctx, "player-1", day.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.NotEqual(t, today.ID, tomorrow.ID)
		assert.Equal(t, 0, tomorrow.GamesPlayed)
	})
}

func TestDailyLimitRepository_Update(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	userRepo := NewUserRepository(testDB.DB)
	repo := NewDailyLimitRepository(testDB.DB)
	ctx := context.Background()

	_, err := userRepo.Create(ctx, "player-1", 1000)
	require.NoError(t, err)

	day := entities.UTCDay(time.Now())
	limit, err := repo.GetOrCreate(ctx, "player-1", day)
	require.NoError(t, err)

	limit.ApplySettlement(100, 500)
	limit.ApplySettlement(100, 0)
	require.NoError(t, repo.Update(ctx, limit))

	stored, err := repo.GetByUserAndDay(ctx, "player-1", day)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, int64(400), stored.TotalWon)
	assert.Equal(t, int64(100), stored.TotalLost)
	assert.Equal(t, 2, stored.GamesPlayed)
	assert.Equal(t, int64(300), stored.NetResult())
}

func TestDailyLimitRepository_GetByUserAndDay_Missing(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewDailyLimitRepository(testDB.DB)
	ctx := context.Background()

	limit, err := repo.GetByUserAndDay(ctx, "missing-user", entities.UTCDay(time.Now()))
	require.NoError(t, err)
	assert.Nil(t, limit)
}
