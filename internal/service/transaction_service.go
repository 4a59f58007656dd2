package service

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// TransactionFilter narrows a transaction listing to one account or category.
type TransactionFilter struct {
	AccountID  *int64
	CategoryID *int64
}

// TransactionService handles transaction read paths.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// ListTransactions returns the user's transactions, newest first.
func (s *TransactionService) ListTransactions(ctx context.Context, userID int64, filter *TransactionFilter) ([]Transaction, error) {
	var storageFilter *sqlconfig.TransactionFilter
	if filter != nil {
		storageFilter = &sqlconfig.TransactionFilter{
			AccountID:  filter.AccountID,
			CategoryID: filter.CategoryID,
		}
	}

	rows, err := s.storage.Transactions.ListByUser(ctx, userID, storageFilter)
	if err != nil {
		return nil, err
	}

	transactions := make([]Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = transactionFromStorage(row)
	}
	return transactions, nil
}
