package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"library-api/internal/infrastructure/database"
)

// HealthChecker is satisfied by *database.PostgresDB.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
	Stats() (*database.PoolStats, error)
}

// healthCheckHandler - GET /api/v1/health: 200 khi DB ping ok, 503 khi không
func healthCheckHandler(db HealthChecker, version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   version,
		}

		status := http.StatusOK
		services := gin.H{"database": "ok"}

		if isNil(db) {
			services["database"] = "disconnected"
			health["status"] = "degraded"
			status = http.StatusServiceUnavailable
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := db.HealthCheck(ctx); err != nil {
				services["database"] = "error: " + err.Error()
				health["status"] = "degraded"
				status = http.StatusServiceUnavailable
			} else if stats, err := db.Stats(); err == nil {
				health["pool"] = stats
			}
		}

		health["services"] = services
		c.JSON(status, health)
	}
}

// isNil catches a nil *database.PostgresDB stored in the interface.
func isNil(db HealthChecker) bool {
	if db == nil {
		return true
	}
	pg, ok := db.(*database.PostgresDB)
	return ok && pg == nil
}
