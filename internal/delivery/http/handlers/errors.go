package handlers

import (
	"errors"
	"net/http"

	"github.com/crewpool/pool-ledger-service/internal/domain"
	"github.com/gin-gonic/gin"
)

// respondError maps domain sentinels to HTTP statuses. The wrapped message
// keeps the limiting numbers, so it goes to the client as-is.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrCreditExceeded),
		errors.Is(err, domain.ErrFreePlayInsufficient):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrWeekNotCloseable),
		errors.Is(err, domain.ErrPromoHasAwards):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
