package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/drxlabs/drx-backend/internal/utils/config"
	"github.com/drxlabs/drx-backend/internal/utils/logger"
)

type HealthHandler struct {
	config *config.AppConfig
	logger *logger.Logger
	// nil when the archive database is not configured
	db *gorm.DB
}

func New(config *config.AppConfig, logger *logger.Logger, db *gorm.DB) IHealthHandler {
	return &HealthHandler{
		config: config,
		logger: logger,
		db:     db,
	}
}

// Basic godoc
// @Summary Basic health check
// @Description Returns basic system availability status
// @Tags health
// @Produce json
// @Success 200 {object} BasicHealthResponse
// @Router /healthz [get]
func (h *HealthHandler) Basic(c *gin.Context) {
	c.JSON(http.StatusOK, BasicHealthResponse{
		Message: "ok",
	})
}

// Database godoc
// @Summary Archive database health check
// @Description Validates archive database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /api/v1/health/db [get]
func (h *HealthHandler) Database(c *gin.Context) {
	start := time.Now()

	response := HealthResponse{
		Timestamp: start,
		Checks:    make(map[string]HealthCheck),
	}

	ctx := context.Background()
	if c.Request != nil {
		ctx = c.Request.Context()
	}

	dbCheck := h.checkDatabase(ctx)
	response.Checks["database"] = dbCheck
	response.DurationMs = time.Since(start).Milliseconds()

	if dbCheck.Status == "healthy" {
		response.Status = "healthy"
		c.JSON(http.StatusOK, response)
		return
	}

	response.Status = "unhealthy"
	c.JSON(http.StatusServiceUnavailable, response)
}

func (h *HealthHandler) checkDatabase(ctx context.Context) HealthCheck {
	start := time.Now()

	if h.db == nil {
		return HealthCheck{
			Status:     "unhealthy",
			DurationMs: time.Since(start).Milliseconds(),
			Error:      "database connection not available",
		}
	}

	sqlDB, err := h.db.DB()
	if err != nil {
		return HealthCheck{
			Status:     "unhealthy",
			DurationMs: time.Since(start).Milliseconds(),
			Error:      err.Error(),
		}
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		return HealthCheck{
			Status:     "unhealthy",
			DurationMs: time.Since(start).Milliseconds(),
			Error:      err.Error(),
		}
	}

	return HealthCheck{
		Status:     "healthy",
		DurationMs: time.Since(start).Milliseconds(),
	}
}
