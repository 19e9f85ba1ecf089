package services

import (
	"context"
	"fmt"
	"time"

	"casino/config"
	"casino/domain/entities"
	"casino/domain/events"
	"casino/domain/games"
	"casino/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// casinoService sequences every play request through the same skeleton:
// validation, daily limit check, draw, payout resolution, then one atomic
// settlement of balance, limits, profile and audit log. The per-game logic
// lives entirely in the games registry; none of it touches settlement.
type casinoService struct {
	uowFactory interfaces.UnitOfWorkFactory
	registry   *games.Registry
	rng        *games.Rand
	now        func() time.Time
}

// NewCasinoService creates a new casino play service
func NewCasinoService(uowFactory interfaces.UnitOfWorkFactory, registry *games.Registry, rng *games.Rand) interfaces.CasinoService {
	return &casinoService{
		uowFactory: uowFactory,
		registry:   registry,
		rng:        rng,
		now:        time.Now,
	}
}

func (s *casinoService) PlayGame(ctx context.Context, userID string, gameType entities.GameType, betAmount int64, params entities.PlayParams) (*entities.PlayResult, error) {
	cfg := config.Get()

	// Pure validation first: nothing random is drawn and no state is read
	// or written for a malformed request.
	if betAmount < cfg.MinBet || betAmount > cfg.MaxBet {
		return nil, fmt.Errorf("%w: bet must be between %d and %d points",
			entities.ErrInvalidBetAmount, cfg.MinBet, cfg.MaxBet)
	}

	variant, ok := s.registry.Get(gameType)
	if !ok {
		return nil, fmt.Errorf("%w: %s", entities.ErrUnknownGameType, gameType)
	}
	if err := variant.ValidateParams(params); err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrCommitFailed, err)
	}
	defer func() { _ = uow.Rollback() }()

	// Locks the user row, serializing concurrent plays for the same user.
	user, err := uow.UserRepository().GetForUpdate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, entities.ErrUserNotFound
	}
	if !user.IsActive() {
		return nil, fmt.Errorf("%w: status is %s", entities.ErrAccountNotActive, user.Status)
	}
	if !user.HasSufficientBalance(betAmount) {
		return nil, fmt.Errorf("%w: have %d, need %d",
			entities.ErrInsufficientFunds, user.PointsBalance, betAmount)
	}

	// Lazily upserted; rolled back with the rest of the tx on rejection.
	limit, err := uow.DailyLimitRepository().GetOrCreate(ctx, userID, entities.UTCDay(s.now()))
	if err != nil {
		return nil, fmt.Errorf("failed to get daily limit record: %w", err)
	}
	if limit.Reached(cfg.DailyLimit) {
		return nil, fmt.Errorf("%w: daily limit of %d points",
			entities.ErrDailyLimitExceeded, cfg.DailyLimit)
	}

	outcome := variant.Draw(s.rng, params)
	payout := variant.Resolve(betAmount, outcome)

	result, err := s.settle(ctx, uow, user, gameType, betAmount, payout, outcome.Describe())
	if err != nil {
		log.WithFields(log.Fields{
			"userID":    userID,
			"gameType":  gameType,
			"betAmount": betAmount,
			"winAmount": payout.WinAmount,
		}).WithError(err).Error("Failed to settle game")
		return nil, fmt.Errorf("%w: %v", entities.ErrCommitFailed, err)
	}

	// The daily limit record was locked into this tx by GetOrCreate above.
	limit.ApplySettlement(betAmount, payout.WinAmount)
	if err := uow.DailyLimitRepository().Update(ctx, limit); err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrCommitFailed, err)
	}

	if err := uow.Commit(); err != nil {
		log.WithFields(log.Fields{
			"userID":   userID,
			"gameType": gameType,
		}).WithError(err).Error("Failed to commit game settlement")
		return nil, fmt.Errorf("%w: %v", entities.ErrCommitFailed, err)
	}

	return result, nil
}

// settle applies the balance, earnings, profile and audit effects of a
// resolved game inside the unit of work. The daily limit update and the
// final commit stay with the caller.
func (s *casinoService) settle(ctx context.Context, uow interfaces.UnitOfWork, user *entities.User, gameType entities.GameType, betAmount int64, payout games.Payout, description string) (*entities.PlayResult, error) {
	newBalance := user.PointsBalance - betAmount + payout.WinAmount

	if err := uow.UserRepository().UpdateBalance(ctx, user.ID, newBalance); err != nil {
		return nil, fmt.Errorf("failed to update balance: %w", err)
	}
	if payout.WinAmount > 0 {
		// Gross rule: the full credited payout counts as earned.
		if err := uow.UserRepository().AddToTotalEarned(ctx, user.ID, payout.WinAmount); err != nil {
			return nil, fmt.Errorf("failed to update total earned: %w", err)
		}
	}

	profile, err := uow.ProfileRepository().GetOrCreate(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	profile.ApplyResult(gameType, betAmount, payout.Outcome)
	if err := uow.ProfileRepository().Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	record := &entities.GameRecord{
		UserID:    user.ID,
		GameType:  gameType,
		BetAmount: betAmount,
		WinAmount: payout.WinAmount,
		Result:    description,
	}
	if err := uow.GameRecordRepository().Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create game record: %w", err)
	}

	bus := uow.EventBus()
	if err := bus.Publish(events.BalanceChangeEvent{
		UserID:       user.ID,
		OldBalance:   user.PointsBalance,
		NewBalance:   newBalance,
		ChangeAmount: newBalance - user.PointsBalance,
		GameType:     gameType,
	}); err != nil {
		return nil, fmt.Errorf("failed to publish balance change: %w", err)
	}
	if err := bus.Publish(events.GameResolvedEvent{
		UserID:     user.ID,
		GameType:   gameType,
		BetAmount:  betAmount,
		WinAmount:  payout.WinAmount,
		Outcome:    payout.Outcome,
		NewBalance: newBalance,
	}); err != nil {
		return nil, fmt.Errorf("failed to publish game resolved: %w", err)
	}

	return &entities.PlayResult{
		GameType:    gameType,
		Outcome:     payout.Outcome,
		Description: description,
		BetAmount:   betAmount,
		WinAmount:   payout.WinAmount,
		NewBalance:  newBalance,
	}, nil
}
