package handlers

import (
	"net/http"

	statementuc "github.com/crewpool/pool-ledger-service/internal/usecase/statement"
	"github.com/gin-gonic/gin"
)

type StatementHandler struct {
	StatementUsecase statementuc.StatementUsecase
}

func NewStatementHandler(statementUsecase statementuc.StatementUsecase) *StatementHandler {
	return &StatementHandler{StatementUsecase: statementUsecase}
}

// GET /weeks/:id/statements
func (h *StatementHandler) ListWeekStatements(c *gin.Context) {
	statements, err := h.StatementUsecase.ListStatementsByWeek(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, statements)
}

// GET /weeks/:id/summary
func (h *StatementHandler) GetWeekSummary(c *gin.Context) {
	summary, err := h.StatementUsecase.WeekResultsSummary(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GET /leaderboard
func (h *StatementHandler) GetLeaderboard(c *gin.Context) {
	leaderboard, err := h.StatementUsecase.GetLeaderboard()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, leaderboard)
}
