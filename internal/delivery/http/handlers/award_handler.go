package handlers

import (
	"net/http"

	"github.com/crewpool/pool-ledger-service/internal/usecase"
	"github.com/gin-gonic/gin"
)

type AwardHandler struct {
	AwardUsecase usecase.AwardUsecase
}

func NewAwardHandler(awardUsecase usecase.AwardUsecase) *AwardHandler {
	return &AwardHandler{AwardUsecase: awardUsecase}
}

type grantAwardRequest struct {
	WeekID      string `json:"week_id" binding:"required"`
	MemberID    string `json:"member_id" binding:"required"`
	AmountUnits int64  `json:"amount_units" binding:"required"`
	Notes       string `json:"notes"`
}

// POST /awards
func (h *AwardHandler) GrantManualAward(c *gin.Context) {
	var req grantAwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	award, err := h.AwardUsecase.GrantManualAward(req.WeekID, req.MemberID, req.AmountUnits, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, award)
}

// POST /awards/:id/void
func (h *AwardHandler) VoidAward(c *gin.Context) {
	if err := h.AwardUsecase.VoidAward(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /awards/:id
func (h *AwardHandler) GetAward(c *gin.Context) {
	award, err := h.AwardUsecase.GetAwardByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, award)
}

// GET /weeks/:id/awards
func (h *AwardHandler) ListWeekAwards(c *gin.Context) {
	awards, err := h.AwardUsecase.ListAwardsByWeek(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, awards)
}
