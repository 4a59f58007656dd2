package service

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// AccountService handles account read paths.
type AccountService struct {
	storage *storage.Storage
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage) *AccountService {
	return &AccountService{storage: store}
}

// ListAccounts returns all accounts owned by the user.
func (s *AccountService) ListAccounts(ctx context.Context, userID int64) ([]Account, error) {
	rows, err := s.storage.Accounts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	accounts := make([]Account, len(rows))
	for i, row := range rows {
		accounts[i] = accountFromStorage(row)
	}
	return accounts, nil
}
