package service

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// UserService handles user read paths.
type UserService struct {
	storage *storage.Storage
}

// NewUserService creates a new UserService.
func NewUserService(store *storage.Storage) *UserService {
	return &UserService{storage: store}
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(ctx context.Context, id int64) (*User, error) {
	row, err := s.storage.Users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user := userFromStorage(row)
	return &user, nil
}

// ListUsers returns all users. Full scan, no pagination.
func (s *UserService) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := s.storage.Users.List(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]User, len(rows))
	for i, row := range rows {
		users[i] = userFromStorage(row)
	}
	return users, nil
}
