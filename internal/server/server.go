package server

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/drxlabs/drx-backend/internal/authz"
	"github.com/drxlabs/drx-backend/internal/catalog"
	"github.com/drxlabs/drx-backend/internal/controller"
	"github.com/drxlabs/drx-backend/internal/ledger"
	"github.com/drxlabs/drx-backend/internal/model"
	"github.com/drxlabs/drx-backend/internal/monitoring"
	"github.com/drxlabs/drx-backend/internal/settlement"
	"github.com/drxlabs/drx-backend/internal/store"
	pgstore "github.com/drxlabs/drx-backend/internal/store/postgres"
	"github.com/drxlabs/drx-backend/internal/store/requestledger"
	"github.com/drxlabs/drx-backend/internal/transport/http"
	"github.com/drxlabs/drx-backend/internal/utils/config"
	"github.com/drxlabs/drx-backend/internal/utils/logger"
	"github.com/drxlabs/drx-backend/internal/utils/webhook"
)

const defaultArchivePeriod = "@every 1m"

func Init() {
	appConfig := config.New()
	logger := logger.New(appConfig.Environment)

	// the archive database is optional; the in-memory trail is
	// authoritative either way
	var db *gorm.DB
	if appConfig.Postgres.Enabled() {
		db = pgstore.New(appConfig, logger)
	} else {
		logger.Info("no archive database configured, request archival disabled")
	}

	s := store.New()
	core := controller.New(
		ledger.New(logger),
		s,
		catalog.New(nil, nil),
		settlement.New(appConfig, logger),
		db,
		logger,
		appConfig,
	)
	gate := authz.NewSharedSecretGate(appConfig.Admin.Secret)

	metricsRegistry := prometheus.NewRegistry()
	httpMetrics := monitoring.NewHTTPMetrics()
	httpMetrics.MustRegister(metricsRegistry)

	c := cron.New()

	if db != nil {
		archivePeriod := appConfig.ArchivePeriod
		if archivePeriod == "" {
			archivePeriod = defaultArchivePeriod
		}
		c.AddFunc(archivePeriod, func() {
			core.ArchiveSettled() //nolint:errcheck
		})
	}

	c.AddFunc("@every 30s", func() {
		publishRequestGauges(core, httpMetrics)
	})

	if appConfig.Settlement.UptimeWebhookURL != "" {
		uptime := webhook.New(logger)
		c.AddFunc("@every 2m", func() {
			uptime.CallUptimeWebhook(context.Background(), appConfig.Settlement.UptimeWebhookURL)
		})
	}

	c.Start()

	httpServer := http.NewHttpServer(appConfig, logger, core, gate, db, httpMetrics, metricsRegistry)

	port := appConfig.ApiServer.Port
	if port == "" {
		port = "8080"
	}
	if err := httpServer.Run(":" + port); err != nil {
		logger.Fatal("failed to run http server", map[string]string{
			"error": err.Error(),
		})
	}
}

func publishRequestGauges(core controller.IController, metrics *monitoring.HTTPMetrics) {
	for _, status := range []model.RequestStatus{
		model.RequestStatusPending,
		model.RequestStatusApproved,
		model.RequestStatusSent,
	} {
		n := len(core.ListWithdraws(requestledger.Filter{Status: status}))
		metrics.SetRequestsByStatus(string(model.RequestKindWithdraw), string(status), n)
	}

	for _, status := range []model.RequestStatus{
		model.RequestStatusPending,
		model.RequestStatusApproved,
		model.RequestStatusCompleted,
	} {
		n := len(core.ListBridges(requestledger.Filter{Status: status}))
		metrics.SetRequestsByStatus(string(model.RequestKindBridge), string(status), n)
	}
}
