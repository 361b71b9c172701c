package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/njorogedev/bistro-api/models"
)

// ManagerStore persists manager accounts.
type ManagerStore struct {
	db *gorm.DB
}

func NewManagerStore(db *gorm.DB) *ManagerStore {
	return &ManagerStore{db: db}
}

// FindByCredentials looks up a manager by exact username and password
// match. Returns ErrNotFound when the pair matches no account.
func (s *ManagerStore) FindByCredentials(ctx context.Context, username, password string) (models.Manager, error) {
	var manager models.Manager
	err := s.db.WithContext(ctx).
		Where("username = ? AND password = ?", username, password).
		First(&manager).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Manager{}, ErrNotFound
	}
	if err != nil {
		return models.Manager{}, err
	}
	return manager, nil
}

func (s *ManagerStore) Save(ctx context.Context, manager *models.Manager) error {
	return s.db.WithContext(ctx).Save(manager).Error
}
