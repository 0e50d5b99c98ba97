package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger is the store probe the health endpoint depends on.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck answers liveness probes with a store round trip, so a
// lost database connection shows up before user traffic does.
func HealthCheck(pinger Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := pinger.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
