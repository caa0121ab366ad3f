package archive

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/drxlabs/drx-backend/internal/model"
)

type Store struct {
}

func New() IStore {
	return &Store{}
}

// Create inserts the archived rows, ignoring request ids that were already
// archived by an earlier flush.
func (s *Store) Create(tx *gorm.DB, rows []model.ArchivedRequest) error {
	if len(rows) == 0 {
		return nil
	}

	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "request_id"}},
		DoNothing: true,
	}).Create(&rows).Error
}

func (s *Store) All(tx *gorm.DB) ([]model.ArchivedRequest, error) {
	var rows []model.ArchivedRequest
	err := tx.Order("requested_at asc").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) GetByRequestID(tx *gorm.DB, requestID string) (*model.ArchivedRequest, error) {
	var row model.ArchivedRequest
	err := tx.Where("request_id = ?", requestID).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}
