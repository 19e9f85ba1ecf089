package repository

import (
	"context"
	"sync"
	"testing"

	"casino/config"
	"casino/domain/entities"
	"casino/domain/events"
	"casino/domain/games"
	"casino/domain/services"
	"casino/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// alwaysLose forces every play to a full loss so integration tests get
// deterministic settlement without steering the PRNG.
type alwaysLose struct{}

func (alwaysLose) Type() entities.GameType                          { return entities.GameTypeDice }
func (alwaysLose) ValidateParams(p entities.PlayParams) error       { return nil }
func (alwaysLose) Draw(r *games.Rand, p entities.PlayParams) games.Outcome {
	return games.DiceOutcome{Roll: 1, Guess: 2}
}
func (alwaysLose) Resolve(betAmount int64, o games.Outcome) games.Payout {
	return games.Payout{Outcome: entities.OutcomeLoss}
}

func TestPlayGame_EndToEnd(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	bus := events.NewBus()
	factory := NewUnitOfWorkFactory(testDB.DB, bus)

	registry := games.NewRegistry()
	require.NoError(t, registry.Register(alwaysLose{}))

	userSvc := services.NewUserService(factory)
	casinoSvc := services.NewCasinoService(factory, registry, games.NewRand(1))

	user, err := userSvc.GetOrCreateUser(ctx, "player-1")
	require.NoError(t, err)
	require.Equal(t, int64(1000), user.PointsBalance)

	result, err := casinoSvc.PlayGame(ctx, "player-1", entities.GameTypeDice, 100, entities.PlayParams{Guess: 2})
	require.NoError(t, err)
	assert.Equal(t, entities.OutcomeLoss, result.Outcome)
	assert.Equal(t, int64(900), result.NewBalance)

	// Settlement side effects all land together.
	stored, err := userSvc.GetUser(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, int64(900), stored.PointsBalance)
	assert.Equal(t, int64(0), stored.TotalEarned)

	profile, err := userSvc.GetProfile(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, 1, profile.TotalLosses)
	assert.Equal(t, int64(10), profile.XP)

	limit, err := userSvc.GetDailyLimit(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, int64(100), limit.TotalLost)
	assert.Equal(t, 1, limit.GamesPlayed)

	history, err := userSvc.GetHistory(ctx, "player-1", 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, int64(100), history[0].BetAmount)
}

func TestPlayGame_RejectedPlayLeavesNoTrace(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	factory := NewUnitOfWorkFactory(testDB.DB, events.NewBus())
	registry := games.NewRegistry()
	require.NoError(t, registry.Register(alwaysLose{}))

	userSvc := services.NewUserService(factory)
	casinoSvc := services.NewCasinoService(factory, registry, games.NewRand(1))

	_, err := userSvc.GetOrCreateUser(ctx, "player-1")
	require.NoError(t, err)

	// Drain the balance down to 100 so the next full bet cannot be covered.
	for i := 0; i < 9; i++ {
		_, err := casinoSvc.PlayGame(ctx, "player-1", entities.GameTypeDice, 100, entities.PlayParams{Guess: 2})
		require.NoError(t, err)
	}

	_, err = casinoSvc.PlayGame(ctx, "player-1", entities.GameTypeDice, 1000, entities.PlayParams{Guess: 2})
	require.ErrorIs(t, err, entities.ErrInsufficientFunds)

	history, err := userSvc.GetHistory(ctx, "player-1", 100)
	require.NoError(t, err)
	assert.Len(t, history, 9)

	limit, err := userSvc.GetDailyLimit(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, 9, limit.GamesPlayed)
}

func TestPlayGame_ConcurrentPlaysCannotDoubleSpend(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.StartingBalance = 100
	cfg.DailyLimit = 100000
	config.SetTestConfig(cfg)
	defer config.ResetConfig()

	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	factory := NewUnitOfWorkFactory(testDB.DB, events.NewBus())
	registry := games.NewRegistry()
	require.NoError(t, registry.Register(alwaysLose{}))

	userSvc := services.NewUserService(factory)
	casinoSvc := services.NewCasinoService(factory, registry, games.NewRand(1))

	_, err := userSvc.GetOrCreateUser(ctx, "player-1")
	require.NoError(t, err)

	// Two plays race for a balance that covers only one of them. The row
	// lock serializes them, so exactly one settles.
	const workers = 2
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = casinoSvc.PlayGame(ctx, "player-1", entities.GameTypeDice, 100, entities.PlayParams{Guess: 2})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, entities.ErrInsufficientFunds)
		}
	}
	assert.Equal(t, 1, succeeded)

	user, err := userSvc.GetUser(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), user.PointsBalance)

	history, err := userSvc.GetHistory(ctx, "player-1", 10)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestPlayGame_DailyLimitStopsFurtherPlays(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.DailyLimit = 300
	config.SetTestConfig(cfg)
	defer config.ResetConfig()

	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	factory := NewUnitOfWorkFactory(testDB.DB, events.NewBus())
	registry := games.NewRegistry()
	require.NoError(t, registry.Register(alwaysLose{}))

	userSvc := services.NewUserService(factory)
	casinoSvc := services.NewCasinoService(factory, registry, games.NewRand(1))

	_, err := userSvc.GetOrCreateUser(ctx, "player-1")
	require.NoError(t, err)

	// Three 100-point losses reach the 300 ceiling.
	for i := 0; i < 3; i++ {
		_, err := casinoSvc.PlayGame(ctx, "player-1", entities.GameTypeDice, 100, entities.PlayParams{Guess: 2})
		require.NoError(t, err)
	}

	_, err = casinoSvc.PlayGame(ctx, "player-1", entities.GameTypeDice, 100, entities.PlayParams{Guess: 2})
	assert.ErrorIs(t, err, entities.ErrDailyLimitExceeded)

	limit, err := userSvc.GetDailyLimit(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, 3, limit.GamesPlayed)
}
