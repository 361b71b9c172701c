package store

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/njorogedev/bistro-api/models"
)

// MenuStore records menu publish revisions.
type MenuStore struct {
	db *gorm.DB
}

func NewMenuStore(db *gorm.DB) *MenuStore {
	return &MenuStore{db: db}
}

func (s *MenuStore) SaveRevision(ctx context.Context, payload []byte) error {
	revision := models.MenuRevision{Payload: datatypes.JSON(payload)}
	return s.db.WithContext(ctx).Create(&revision).Error
}
