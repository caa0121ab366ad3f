package controller

import (
	"gorm.io/gorm"

	"github.com/drxlabs/drx-backend/internal/catalog"
	"github.com/drxlabs/drx-backend/internal/ledger"
	"github.com/drxlabs/drx-backend/internal/settlement"
	"github.com/drxlabs/drx-backend/internal/store"
	"github.com/drxlabs/drx-backend/internal/utils/config"
	"github.com/drxlabs/drx-backend/internal/utils/logger"
)

type Controller struct {
	ledger   ledger.ILedger
	store    *store.Store
	catalog  catalog.ICatalog
	notifier settlement.INotifier
	// nil when no archive database is configured
	db     *gorm.DB
	logger *logger.Logger
	config *config.AppConfig
}

func New(
	ledger ledger.ILedger,
	store *store.Store,
	catalog catalog.ICatalog,
	notifier settlement.INotifier,
	db *gorm.DB,
	logger *logger.Logger,
	config *config.AppConfig,
) IController {
	return &Controller{
		ledger:   ledger,
		store:    store,
		catalog:  catalog,
		notifier: notifier,
		db:       db,
		logger:   logger,
		config:   config,
	}
}
