package archive

import (
	"gorm.io/gorm"

	"github.com/drxlabs/drx-backend/internal/model"
)

type IStore interface {
	Create(tx *gorm.DB, rows []model.ArchivedRequest) error
	All(tx *gorm.DB) ([]model.ArchivedRequest, error)
	GetByRequestID(tx *gorm.DB, requestID string) (*model.ArchivedRequest, error)
}
