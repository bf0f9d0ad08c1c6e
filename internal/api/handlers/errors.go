package handlers

import (
	"net/http"

	apperrors "k9-duty-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// respondError maps a domain error to its HTTP status. Validation failures
// are 400, missing entities 404, conflicts and refused state transitions 409,
// and a closed submission window 422. Anything else is a 500 with the
// action-specific message.
func respondError(c *gin.Context, err error, action string) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsConflict(err), apperrors.IsInvalidState(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsDeadlineExceeded(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": action, "details": err.Error()})
	}
}
