package handlers

import (
	"encoding/json"
	"net/http"

	promodto "github.com/crewpool/pool-ledger-service/internal/usecase/dto/promo"
	promouc "github.com/crewpool/pool-ledger-service/internal/usecase/promo"
	"github.com/gin-gonic/gin"
)

type PromoHandler struct {
	PromoUsecase promouc.PromoUsecase
}

func NewPromoHandler(promoUsecase promouc.PromoUsecase) *PromoHandler {
	return &PromoHandler{PromoUsecase: promoUsecase}
}

type createPromoRequest struct {
	WeekID string          `json:"week_id" binding:"required"`
	Name   string          `json:"name" binding:"required"`
	Type   string          `json:"type" binding:"required"`
	Rule   json.RawMessage `json:"rule" binding:"required"`
}

// POST /promos
func (h *PromoHandler) CreatePromo(c *gin.Context) {
	var req createPromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	promo, err := h.PromoUsecase.CreatePromo(&promodto.CreatePromoInput{
		WeekID:   req.WeekID,
		Name:     req.Name,
		Type:     req.Type,
		RuleJSON: req.Rule,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"promo_id": promo.ID})
}

type updatePromoRequest struct {
	Name string          `json:"name"`
	Rule json.RawMessage `json:"rule"`
}

// PATCH /promos/:id
func (h *PromoHandler) UpdatePromo(c *gin.Context) {
	var req updatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	promo, err := h.PromoUsecase.UpdatePromo(&promodto.UpdatePromoInput{
		PromoID:  c.Param("id"),
		Name:     req.Name,
		RuleJSON: req.Rule,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"promo_id": promo.ID})
}

type setActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// PUT /promos/:id/active
func (h *PromoHandler) SetPromoActive(c *gin.Context) {
	var req setActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := h.PromoUsecase.SetPromoActive(c.Param("id"), *req.Active); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /promos/:id
func (h *PromoHandler) DeletePromo(c *gin.Context) {
	if err := h.PromoUsecase.DeletePromo(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /promos/:id
func (h *PromoHandler) GetPromo(c *gin.Context) {
	promo, err := h.PromoUsecase.GetPromoByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, promo)
}

// GET /weeks/:id/promos
func (h *PromoHandler) ListWeekPromos(c *gin.Context) {
	promos, err := h.PromoUsecase.ListPromosByWeek(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, promos)
}

// GET /promos/:id/progress
func (h *PromoHandler) GetPromoProgress(c *gin.Context) {
	progress, err := h.PromoUsecase.GetPromoProgress(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}
