package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"jobportal/internal/services"
)

// writeError maps service failures onto the wire format the front end
// already handles: the duplicate-application conflict is a 400,
// everything else (including the id shape check) stays a 500.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidID):
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Id must be 24 character"})
	case errors.Is(err, services.ErrAlreadyApplied):
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Allready Applied"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
