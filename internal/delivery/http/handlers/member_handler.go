package handlers

import (
	"net/http"

	"github.com/crewpool/pool-ledger-service/internal/usecase"
	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	MemberUsecase usecase.MemberUsecase
}

func NewMemberHandler(memberUsecase usecase.MemberUsecase) *MemberHandler {
	return &MemberHandler{MemberUsecase: memberUsecase}
}

type memberRequest struct {
	Name string `json:"name" binding:"required"`
}

// POST /members
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req memberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	member, err := h.MemberUsecase.CreateMember(req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

// PATCH /members/:id
func (h *MemberHandler) RenameMember(c *gin.Context) {
	var req memberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := h.MemberUsecase.RenameMember(c.Param("id"), req.Name); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /members/:id
func (h *MemberHandler) GetMember(c *gin.Context) {
	member, err := h.MemberUsecase.GetMember(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// GET /members
func (h *MemberHandler) ListMembers(c *gin.Context) {
	members, err := h.MemberUsecase.ListMembers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}
