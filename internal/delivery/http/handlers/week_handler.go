package handlers

import (
	"net/http"
	"time"

	"github.com/crewpool/pool-ledger-service/internal/usecase"
	weekdto "github.com/crewpool/pool-ledger-service/internal/usecase/dto/week"
	weekuc "github.com/crewpool/pool-ledger-service/internal/usecase/week"
	"github.com/gin-gonic/gin"
)

type WeekHandler struct {
	WeekUsecase   weekuc.WeekUsecase
	LedgerUsecase usecase.LedgerUsecase
}

func NewWeekHandler(weekUsecase weekuc.WeekUsecase, ledgerUsecase usecase.LedgerUsecase) *WeekHandler {
	return &WeekHandler{WeekUsecase: weekUsecase, LedgerUsecase: ledgerUsecase}
}

type createWeekRequest struct {
	Name    string    `json:"name" binding:"required"`
	StartAt time.Time `json:"start_at" binding:"required"`
	EndAt   time.Time `json:"end_at" binding:"required"`
}

// POST /weeks
func (h *WeekHandler) CreateWeek(c *gin.Context) {
	var req createWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	week, err := h.WeekUsecase.CreateWeek(&weekdto.CreateWeekInput{
		Name:    req.Name,
		StartAt: req.StartAt,
		EndAt:   req.EndAt,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, week)
}

// GET /weeks
func (h *WeekHandler) ListWeeks(c *gin.Context) {
	weeks, err := h.WeekUsecase.ListWeeks()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, weeks)
}

// GET /weeks/:id
func (h *WeekHandler) GetWeek(c *gin.Context) {
	week, err := h.WeekUsecase.GetWeekByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, week)
}

// POST /weeks/:id/close
func (h *WeekHandler) CloseWeek(c *gin.Context) {
	result, err := h.WeekUsecase.CloseWeek(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type addMemberRequest struct {
	MemberID         string `json:"member_id" binding:"required"`
	CreditLimitUnits int64  `json:"credit_limit_units"`
}

// POST /weeks/:id/members
func (h *WeekHandler) AddMember(c *gin.Context) {
	var req addMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	err := h.WeekUsecase.AddMember(&weekdto.AddMemberInput{
		WeekID:           c.Param("id"),
		MemberID:         req.MemberID,
		CreditLimitUnits: req.CreditLimitUnits,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// DELETE /weeks/:id/members/:memberId
func (h *WeekHandler) RemoveMember(c *gin.Context) {
	if err := h.WeekUsecase.RemoveMember(c.Param("id"), c.Param("memberId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type creditLimitRequest struct {
	CreditLimitUnits int64 `json:"credit_limit_units"`
}

// PUT /weeks/:id/members/:memberId/credit-limit
func (h *WeekHandler) SetCreditLimit(c *gin.Context) {
	var req creditLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	err := h.WeekUsecase.SetCreditLimit(c.Param("id"), c.Param("memberId"), req.CreditLimitUnits)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /weeks/:id/members
func (h *WeekHandler) ListWeekMembers(c *gin.Context) {
	weekMembers, err := h.WeekUsecase.ListWeekMembers(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, weekMembers)
}

// GET /weeks/:id/members/:memberId/credit
func (h *WeekHandler) GetCreditInfo(c *gin.Context) {
	creditInfo, err := h.LedgerUsecase.GetCreditInfo(c.Param("id"), c.Param("memberId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, creditInfo)
}
