package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/njorogedev/bistro-api/store"
)

// ManagerService validates manager credentials and rotates them. Passwords
// are compared as plain text by exact equality; hashing is out of scope
// for this system.
type ManagerService struct {
	managers ManagerStore
}

func NewManagerService(managers ManagerStore) *ManagerService {
	return &ManagerService{managers: managers}
}

// Login checks a username/password pair. A miss is a normal negative
// outcome, reported as ErrInvalidCredentials.
func (s *ManagerService) Login(ctx context.Context, username, password string) error {
	_, err := s.managers.FindByCredentials(ctx, username, password)
	if errors.Is(err, store.ErrNotFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("failed to look up manager: %w", err)
	}
	return nil
}

// ChangeCredentials overwrites the username and password of the account
// matching the current pair. There is no uniqueness check on the new
// username and no strength requirement on the new password.
func (s *ManagerService) ChangeCredentials(ctx context.Context, currentUser, currentPassword, newUser, newPassword string) error {
	manager, err := s.managers.FindByCredentials(ctx, currentUser, currentPassword)
	if errors.Is(err, store.ErrNotFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("failed to look up manager: %w", err)
	}

	manager.Username = newUser
	manager.Password = newPassword
	if err := s.managers.Save(ctx, &manager); err != nil {
		return fmt.Errorf("failed to save manager credentials: %w", err)
	}
	return nil
}
