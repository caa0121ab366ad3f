package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/drxlabs/drx-backend/internal/controller"
	"github.com/drxlabs/drx-backend/internal/handler/bridge"
	"github.com/drxlabs/drx-backend/internal/handler/health"
	"github.com/drxlabs/drx-backend/internal/handler/metrics"
	"github.com/drxlabs/drx-backend/internal/handler/wallet"
	"github.com/drxlabs/drx-backend/internal/handler/withdraw"
	"github.com/drxlabs/drx-backend/internal/monitoring"
	"github.com/drxlabs/drx-backend/internal/utils/config"
	"github.com/drxlabs/drx-backend/internal/utils/logger"
)

type Handler struct {
	WalletHandler   wallet.IHandler
	WithdrawHandler withdraw.IHandler
	BridgeHandler   bridge.IHandler
	HealthHandler   health.IHealthHandler
	MetricsHandler  *metrics.MetricsHandler
}

func New(appConfig *config.AppConfig, logger *logger.Logger,
	core controller.IController,
	db *gorm.DB,
	httpMetrics *monitoring.HTTPMetrics,
	metricsRegistry *prometheus.Registry) *Handler {
	return &Handler{
		WalletHandler:   wallet.New(core, logger, appConfig, httpMetrics),
		WithdrawHandler: withdraw.New(core, logger, appConfig),
		BridgeHandler:   bridge.New(core, logger, appConfig),
		HealthHandler:   health.New(appConfig, logger, db),
		MetricsHandler:  metrics.NewMetricsHandler(metricsRegistry),
	}
}
