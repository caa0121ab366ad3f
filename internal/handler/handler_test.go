package handler

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/drxlabs/drx-backend/internal/catalog"
	"github.com/drxlabs/drx-backend/internal/controller"
	"github.com/drxlabs/drx-backend/internal/ledger"
	"github.com/drxlabs/drx-backend/internal/monitoring"
	"github.com/drxlabs/drx-backend/internal/settlement"
	"github.com/drxlabs/drx-backend/internal/store"
	"github.com/drxlabs/drx-backend/internal/types/environments"
	"github.com/drxlabs/drx-backend/internal/utils/config"
	"github.com/drxlabs/drx-backend/internal/utils/logger"
)

func TestNew(t *testing.T) {
	appConfig := &config.AppConfig{Environment: environments.Test}
	log := logger.New(environments.Test)
	core := controller.New(
		ledger.New(log),
		store.New(),
		catalog.New(nil, nil),
		settlement.New(appConfig, log),
		nil,
		log,
		appConfig,
	)

	h := New(appConfig, log, core, nil, monitoring.NewHTTPMetrics(), prometheus.NewRegistry())

	require.NotNil(t, h.WalletHandler)
	require.NotNil(t, h.WithdrawHandler)
	require.NotNil(t, h.BridgeHandler)
	require.NotNil(t, h.HealthHandler)
	require.NotNil(t, h.MetricsHandler)
}
