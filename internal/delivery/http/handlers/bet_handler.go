package handlers

import (
	"net/http"
	"time"

	betuc "github.com/crewpool/pool-ledger-service/internal/usecase/bet"
	betdto "github.com/crewpool/pool-ledger-service/internal/usecase/dto/bet"
	"github.com/gin-gonic/gin"
)

type BetHandler struct {
	BetUsecase betuc.BetUsecase
}

func NewBetHandler(betUsecase betuc.BetUsecase) *BetHandler {
	return &BetHandler{BetUsecase: betUsecase}
}

type placeBetRequest struct {
	WeekID             string     `json:"week_id" binding:"required"`
	MemberID           string     `json:"member_id" binding:"required"`
	Description        string     `json:"description" binding:"required"`
	EventKey           string     `json:"event_key"`
	Sport              string     `json:"sport"`
	BetType            string     `json:"bet_type"`
	OddsAmerican       int        `json:"odds_american" binding:"required"`
	StakeCashUnits     int64      `json:"stake_cash_units"`
	StakeFreePlayUnits int64      `json:"stake_free_play_units"`
	PlacedAt           *time.Time `json:"placed_at"`
	OverrideCredit     bool       `json:"override_credit"`
}

// POST /bets
func (h *BetHandler) PlaceBet(c *gin.Context) {
	var req placeBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	input := &betdto.PlaceBetInput{
		WeekID:             req.WeekID,
		MemberID:           req.MemberID,
		Description:        req.Description,
		EventKey:           req.EventKey,
		Sport:              req.Sport,
		BetType:            req.BetType,
		OddsAmerican:       req.OddsAmerican,
		StakeCashUnits:     req.StakeCashUnits,
		StakeFreePlayUnits: req.StakeFreePlayUnits,
		OverrideCredit:     req.OverrideCredit,
	}
	if req.PlacedAt != nil {
		input.PlacedAt = *req.PlacedAt
	}
	bet, err := h.BetUsecase.PlaceBet(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bet)
}

type settleBetRequest struct {
	Result          string `json:"result" binding:"required"`
	PayoutCashUnits int64  `json:"payout_cash_units"`
}

// POST /bets/:id/settle
func (h *BetHandler) SettleBet(c *gin.Context) {
	var req settleBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	bet, err := h.BetUsecase.SettleBet(&betdto.SettleBetInput{
		BetID:           c.Param("id"),
		Result:          req.Result,
		PayoutCashUnits: req.PayoutCashUnits,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bet)
}

type quickSettleRequest struct {
	Result string `json:"result" binding:"required"`
}

// POST /bets/:id/quick-settle
func (h *BetHandler) QuickSettleBet(c *gin.Context) {
	var req quickSettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	bet, err := h.BetUsecase.QuickSettleBet(c.Param("id"), req.Result)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bet)
}

// POST /bets/:id/void
func (h *BetHandler) VoidBet(c *gin.Context) {
	if err := h.BetUsecase.VoidBet(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type editBetRequest struct {
	Description        string `json:"description" binding:"required"`
	EventKey           string `json:"event_key"`
	Sport              string `json:"sport"`
	BetType            string `json:"bet_type"`
	OddsAmerican       int    `json:"odds_american" binding:"required"`
	StakeCashUnits     int64  `json:"stake_cash_units"`
	StakeFreePlayUnits int64  `json:"stake_free_play_units"`
	OverrideCredit     bool   `json:"override_credit"`
}

// PUT /bets/:id
func (h *BetHandler) EditBet(c *gin.Context) {
	var req editBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	bet, err := h.BetUsecase.EditBet(&betdto.EditBetInput{
		BetID:              c.Param("id"),
		Description:        req.Description,
		EventKey:           req.EventKey,
		Sport:              req.Sport,
		BetType:            req.BetType,
		OddsAmerican:       req.OddsAmerican,
		StakeCashUnits:     req.StakeCashUnits,
		StakeFreePlayUnits: req.StakeFreePlayUnits,
		OverrideCredit:     req.OverrideCredit,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bet)
}

// GET /bets/:id
func (h *BetHandler) GetBet(c *gin.Context) {
	bet, err := h.BetUsecase.GetBetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bet)
}

// GET /weeks/:id/bets?member_id=
func (h *BetHandler) ListWeekBets(c *gin.Context) {
	weekID := c.Param("id")
	if memberID := c.Query("member_id"); memberID != "" {
		bets, err := h.BetUsecase.ListBetsByWeekMember(weekID, memberID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, bets)
		return
	}
	bets, err := h.BetUsecase.ListBetsByWeek(weekID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bets)
}
