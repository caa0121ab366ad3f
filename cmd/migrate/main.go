package main

import (
	"github.com/drxlabs/drx-backend/internal/model"
	pgstore "github.com/drxlabs/drx-backend/internal/store/postgres"
	"github.com/drxlabs/drx-backend/internal/utils/config"
	"github.com/drxlabs/drx-backend/internal/utils/logger"
)

func main() {
	appConfig := config.New()
	logger := logger.New(appConfig.Environment)

	db := pgstore.New(appConfig, logger)

	if err := db.AutoMigrate(&model.ArchivedRequest{}); err != nil {
		logger.Fatal("failed to migrate archive schema", map[string]string{
			"error": err.Error(),
		})
	}

	logger.Info("archive schema migrated")
}
