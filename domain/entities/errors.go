package entities

import "errors"

// Sentinel errors for every way a play request can be rejected. Services wrap
// these with fmt.Errorf("%w: ...") detail; callers classify with errors.Is.
// All of them except ErrCommitFailed are terminal for the request; a commit
// failure is transient and guarantees no partial state change occurred.
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrAccountNotActive      = errors.New("user account is not active")
	ErrInvalidBetAmount      = errors.New("invalid bet amount")
	ErrInsufficientFunds     = errors.New("insufficient points balance")
	ErrDailyLimitExceeded    = errors.New("daily casino limit reached")
	ErrInvalidGameParameters = errors.New("invalid game parameters")
	ErrUnknownGameType       = errors.New("unknown game type")
	ErrCommitFailed          = errors.New("failed to commit game settlement")
)
