package http

import (
	"github.com/gin-gonic/gin"

	"github.com/drxlabs/drx-backend/internal/authz"
	"github.com/drxlabs/drx-backend/internal/handler"
	"github.com/drxlabs/drx-backend/internal/utils/config"
	"github.com/drxlabs/drx-backend/internal/utils/logger"
)

func loadV1Routes(r *gin.Engine, h *handler.Handler, gate authz.Gate, appConfig *config.AppConfig, logger *logger.Logger) {
	v1 := r.Group("/api/v1")

	wallets := v1.Group("/wallets")
	{
		wallets.GET("/:wallet", h.WalletHandler.Get)
		wallets.POST("/:wallet/credit", adminGated(gate), h.WalletHandler.Credit)
		wallets.POST("/:wallet/debit", adminGated(gate), h.WalletHandler.Debit)
	}

	v1.POST("/purchases", h.WalletHandler.Purchase)
	v1.POST("/missions/complete", h.WalletHandler.CompleteMission)

	withdrawals := v1.Group("/withdrawals")
	{
		withdrawals.POST("", h.WithdrawHandler.Create)
		withdrawals.GET("", h.WithdrawHandler.List)
		withdrawals.POST("/:id/approve", adminGated(gate), h.WithdrawHandler.Approve)
		withdrawals.POST("/:id/sent", adminGated(gate), h.WithdrawHandler.MarkSent)
	}

	bridges := v1.Group("/bridges")
	{
		bridges.POST("", h.BridgeHandler.Create)
		bridges.GET("", h.BridgeHandler.List)
		bridges.POST("/:id/approve", adminGated(gate), h.BridgeHandler.Approve)
		bridges.POST("/:id/complete", adminGated(gate), h.BridgeHandler.Complete)
	}

	v1.GET("/health/db", h.HealthHandler.Database)

	// health check
	r.GET("/healthz", h.HealthHandler.Basic)

	// prometheus scrape target
	r.GET("/metrics", h.MetricsHandler.Handler())
}
