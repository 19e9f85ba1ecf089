package server

import (
	"errors"
	"net/http"
	"strconv"

	"casino/domain/entities"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const defaultHistoryLimit = 20

type playGameRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	BetAmount int64  `json:"bet_amount" binding:"required"`
	Guess     int    `json:"guess"`
	BetType   string `json:"bet_type"`
	BetValue  string `json:"bet_value"`
	Numbers   []int  `json:"numbers"`
}

type playGameResponse struct {
	GameType   entities.GameType    `json:"game_type"`
	Outcome    entities.PlayOutcome `json:"outcome"`
	Result     string               `json:"result"`
	BetAmount  int64                `json:"bet_amount"`
	WinAmount  int64                `json:"win_amount"`
	NetChange  int64                `json:"net_change"`
	NewBalance int64                `json:"new_balance"`
}

type createUserRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type userResponse struct {
	ID            string `json:"id"`
	PointsBalance int64  `json:"points_balance"`
	TotalEarned   int64  `json:"total_earned"`
	Status        string `json:"status"`
}

type profileResponse struct {
	UserID        string  `json:"user_id"`
	TotalWins     int     `json:"total_wins"`
	TotalLosses   int     `json:"total_losses"`
	TotalGames    int     `json:"total_games"`
	WinPercentage float64 `json:"win_percentage"`
	WinStreak     int     `json:"win_streak"`
	BestWinStreak int     `json:"best_win_streak"`
	FavoriteGame  string  `json:"favorite_game"`
	XP            int64   `json:"xp"`
}

type dailyLimitResponse struct {
	Date        string `json:"date"`
	TotalWon    int64  `json:"total_won"`
	TotalLost   int64  `json:"total_lost"`
	NetResult   int64  `json:"net_result"`
	GamesPlayed int    `json:"games_played"`
}

type gameRecordResponse struct {
	ID        int64  `json:"id"`
	GameType  string `json:"game_type"`
	BetAmount int64  `json:"bet_amount"`
	WinAmount int64  `json:"win_amount"`
	Result    string `json:"result"`
	PlayedAt  string `json:"played_at"`
}

func (s *Server) handlePlayGame(c *gin.Context) {
	var req playGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	gameType := entities.GameType(c.Param("game"))
	params := entities.PlayParams{
		Guess:    req.Guess,
		BetType:  req.BetType,
		BetValue: req.BetValue,
		Numbers:  req.Numbers,
	}

	result, err := s.casinoService.PlayGame(c.Request.Context(), req.UserID, gameType, req.BetAmount, params)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, playGameResponse{
		GameType:   result.GameType,
		Outcome:    result.Outcome,
		Result:     result.Description,
		BetAmount:  result.BetAmount,
		WinAmount:  result.WinAmount,
		NetChange:  result.NetChange(),
		NewBalance: result.NewBalance,
	})
}

func (s *Server) handleCreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	user, err := s.userService.GetOrCreateUser(c.Request.Context(), req.UserID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

func (s *Server) handleGetUser(c *gin.Context) {
	user, err := s.userService.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

func (s *Server) handleGetProfile(c *gin.Context) {
	profile, err := s.userService.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, profileResponse{
		UserID:        profile.UserID,
		TotalWins:     profile.TotalWins,
		TotalLosses:   profile.TotalLosses,
		TotalGames:    profile.TotalGames(),
		WinPercentage: profile.WinPercentage(),
		WinStreak:     profile.WinStreak,
		BestWinStreak: profile.BestWinStreak,
		FavoriteGame:  profile.FavoriteGame.String(),
		XP:            profile.XP,
	})
}

func (s *Server) handleGetDailyLimit(c *gin.Context) {
	limit, err := s.userService.GetDailyLimit(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dailyLimitResponse{
		Date:        limit.Date.Format("2006-01-02"),
		TotalWon:    limit.TotalWon,
		TotalLost:   limit.TotalLost,
		NetResult:   limit.NetResult(),
		GamesPlayed: limit.GamesPlayed,
	})
}

func (s *Server) handleGetHistory(c *gin.Context) {
	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer between 1 and 100"})
			return
		}
		limit = parsed
	}

	records, err := s.userService.GetHistory(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	out := make([]gameRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, gameRecordResponse{
			ID:        r.ID,
			GameType:  r.GameType.String(),
			BetAmount: r.BetAmount,
			WinAmount: r.WinAmount,
			Result:    r.Result,
			PlayedAt:  r.PlayedAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}
	c.JSON(http.StatusOK, gin.H{"records": out})
}

func toUserResponse(user *entities.User) userResponse {
	return userResponse{
		ID:            user.ID,
		PointsBalance: user.PointsBalance,
		TotalEarned:   user.TotalEarned,
		Status:        string(user.Status),
	}
}

// respondWithError maps domain sentinels onto HTTP status codes.
func respondWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entities.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entities.ErrAccountNotActive):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, entities.ErrInvalidBetAmount),
		errors.Is(err, entities.ErrInvalidGameParameters),
		errors.Is(err, entities.ErrUnknownGameType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, entities.ErrInsufficientFunds):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
	case errors.Is(err, entities.ErrDailyLimitExceeded):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Unhandled error in HTTP handler")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
