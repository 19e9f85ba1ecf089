package repository

import (
	"context"
	"fmt"

	"casino/database"
	"casino/domain/events"
	"casino/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

// unitOfWork implements the UnitOfWork interface over a single pgx
// transaction. All repositories handed out share that transaction, and
// events published through EventBus are held until the commit succeeds.
type unitOfWork struct {
	db        *database.DB
	tx        pgx.Tx
	ctx       context.Context
	publisher *events.TransactionalPublisher

	userRepo       interfaces.UserRepository
	profileRepo    interfaces.ProfileRepository
	dailyLimitRepo interfaces.DailyLimitRepository
	gameRecordRepo interfaces.GameRecordRepository
}

type unitOfWorkFactory struct {
	db  *database.DB
	bus *events.Bus
}

// NewUnitOfWorkFactory creates a new UnitOfWork factory. Events published
// within a unit of work reach the bus only after its transaction commits.
func NewUnitOfWorkFactory(db *database.DB, bus *events.Bus) interfaces.UnitOfWorkFactory {
	return &unitOfWorkFactory{db: db, bus: bus}
}

// Create creates a new UnitOfWork with a fresh transactional publisher
func (f *unitOfWorkFactory) Create() interfaces.UnitOfWork {
	return &unitOfWork{
		db:        f.db,
		publisher: events.NewTransactionalPublisher(f.bus),
	}
}

// Begin starts a new transaction
func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	u.tx = tx
	u.ctx = ctx

	u.userRepo = newUserRepository(tx)
	u.profileRepo = newProfileRepository(tx)
	u.dailyLimitRepo = newDailyLimitRepository(tx)
	u.gameRecordRepo = newGameRecordRepository(tx)

	return nil
}

// Commit commits the transaction and flushes pending events
func (u *unitOfWork) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}

	if err := u.tx.Commit(u.ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	u.tx = nil

	u.publisher.Flush()
	return nil
}

// Rollback rolls back the transaction and discards pending events
func (u *unitOfWork) Rollback() error {
	if u.tx == nil {
		return nil // Nothing to rollback
	}

	err := u.tx.Rollback(u.ctx)
	u.tx = nil
	u.publisher.Discard()

	if err != nil && err != pgx.ErrTxClosed {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}

// UserRepository returns the user repository for this unit of work
func (u *unitOfWork) UserRepository() interfaces.UserRepository {
	return u.userRepo
}

// ProfileRepository returns the profile repository for this unit of work
func (u *unitOfWork) ProfileRepository() interfaces.ProfileRepository {
	return u.profileRepo
}

// DailyLimitRepository returns the daily limit repository for this unit of work
func (u *unitOfWork) DailyLimitRepository() interfaces.DailyLimitRepository {
	return u.dailyLimitRepo
}

// GameRecordRepository returns the game record repository for this unit of work
func (u *unitOfWork) GameRecordRepository() interfaces.GameRecordRepository {
	return u.gameRecordRepo
}

// EventBus returns the transaction-scoped event publisher
func (u *unitOfWork) EventBus() interfaces.EventPublisher {
	return u.publisher
}
