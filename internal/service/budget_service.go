package service

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// BudgetService handles budget read paths.
type BudgetService struct {
	storage *storage.Storage
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(store *storage.Storage) *BudgetService {
	return &BudgetService{storage: store}
}

// ListBudgets returns all budgets owned by the user.
func (s *BudgetService) ListBudgets(ctx context.Context, userID int64) ([]Budget, error) {
	rows, err := s.storage.Budgets.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	budgets := make([]Budget, len(rows))
	for i, row := range rows {
		budgets[i] = budgetFromStorage(row)
	}
	return budgets, nil
}
