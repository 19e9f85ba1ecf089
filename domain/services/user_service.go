package services

import (
	"context"
	"fmt"
	"time"

	"casino/config"
	"casino/domain/entities"
	"casino/domain/events"
	"casino/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

type userService struct {
	uowFactory interfaces.UnitOfWorkFactory
	now        func() time.Time
}

// NewUserService creates a new user account service
func NewUserService(uowFactory interfaces.UnitOfWorkFactory) interfaces.UserService {
	return &userService{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

func (s *userService) GetOrCreateUser(ctx context.Context, userID string) (*entities.User, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = uow.Rollback() }()

	user, err := uow.UserRepository().GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		startingBalance := config.Get().StartingBalance
		user, err = uow.UserRepository().Create(ctx, userID, startingBalance)
		if err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}

		if err := uow.EventBus().Publish(events.UserCreatedEvent{
			UserID:         userID,
			InitialBalance: startingBalance,
		}); err != nil {
			return nil, fmt.Errorf("failed to publish user created: %w", err)
		}

		log.WithFields(log.Fields{
			"userID":          userID,
			"startingBalance": startingBalance,
		}).Info("Created new user")
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, userID string) (*entities.User, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = uow.Rollback() }()

	user, err := uow.UserRepository().GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, entities.ErrUserNotFound
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return user, nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*entities.Profile, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = uow.Rollback() }()

	user, err := uow.UserRepository().GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, entities.ErrUserNotFound
	}

	profile, err := uow.ProfileRepository().GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile == nil {
		// Never played: present a zeroed view without persisting anything.
		profile = &entities.Profile{UserID: userID, FavoriteGame: entities.GameTypeNone}
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return profile, nil
}

func (s *userService) GetDailyLimit(ctx context.Context, userID string) (*entities.DailyLimit, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = uow.Rollback() }()

	user, err := uow.UserRepository().GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, entities.ErrUserNotFound
	}

	day := entities.UTCDay(s.now())
	limit, err := uow.DailyLimitRepository().GetByUserAndDay(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily limit: %w", err)
	}
	if limit == nil {
		limit = &entities.DailyLimit{UserID: userID, Date: day}
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return limit, nil
}

func (s *userService) GetHistory(ctx context.Context, userID string, limit int) ([]*entities.GameRecord, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = uow.Rollback() }()

	user, err := uow.UserRepository().GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, entities.ErrUserNotFound
	}

	records, err := uow.GameRecordRepository().GetByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get game records: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return records, nil
}
