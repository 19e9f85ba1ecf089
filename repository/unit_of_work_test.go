package repository

import (
	"context"
	"testing"
	"time"

	"casino/domain/entities"
	"casino/domain/events"
	"casino/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWork_CommitPersistsAndFlushesEvents(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	bus := events.NewBus()
	var received []events.Event
	bus.Subscribe(events.EventTypeUserCreated, func(ctx context.Context, e events.Event) {
		received = append(received, e)
	})

	factory := NewUnitOfWorkFactory(testDB.DB, bus)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))

	_, err := uow.UserRepository().Create(ctx, "player-1", 1000)
	require.NoError(t, err)
	require.NoError(t, uow.EventBus().Publish(events.UserCreatedEvent{
		UserID:         "player-1",
		InitialBalance: 1000,
	}))

	// Nothing is dispatched before the commit.
	assert.Empty(t, received)

	require.NoError(t, uow.Commit())
	require.Len(t, received, 1)

	user, err := NewUserRepository(testDB.DB).GetByID(ctx, "player-1")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(1000), user.PointsBalance)
}

func TestUnitOfWork_RollbackDiscardsWritesAndEvents(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	bus := events.NewBus()
	var received []events.Event
	bus.Subscribe(events.EventTypeUserCreated, func(ctx context.Context, e events.Event) {
		received = append(received, e)
	})

	factory := NewUnitOfWorkFactory(testDB.DB, bus)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))

	_, err := uow.UserRepository().Create(ctx, "player-1", 1000)
	require.NoError(t, err)
	require.NoError(t, uow.EventBus().Publish(events.UserCreatedEvent{
		UserID:         "player-1",
		InitialBalance: 1000,
	}))

	require.NoError(t, uow.Rollback())

	assert.Empty(t, received)
	user, err := NewUserRepository(testDB.DB).GetByID(ctx, "player-1")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUnitOfWork_RepositoriesShareTransaction(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	factory := NewUnitOfWorkFactory(testDB.DB, events.NewBus())

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	defer func() { _ = uow.Rollback() }()

	// A user created inside the transaction is visible to the other
	// repositories of the same unit of work before any commit.
	_, err := uow.UserRepository().Create(ctx, "player-1", 1000)
	require.NoError(t, err)

	profile, err := uow.ProfileRepository().GetOrCreate(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, "player-1", profile.UserID)

	limit, err := uow.DailyLimitRepository().GetOrCreate(ctx, "player-1", entities.UTCDay(time.Now()))
	require.NoError(t, err)
	assert.Equal(t, "player-1", limit.UserID)
}

func TestUnitOfWork_DoubleBeginFails(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	factory := NewUnitOfWorkFactory(testDB.DB, events.NewBus())

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	defer func() { _ = uow.Rollback() }()

	assert.Error(t, uow.Begin(ctx))
}

func TestUnitOfWork_RollbackWithoutBeginIsNoop(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	factory := NewUnitOfWorkFactory(testDB.DB, events.NewBus())
	uow := factory.Create()
	assert.NoError(t, uow.Rollback())
	assert.Error(t, uow.Commit())
}
