package service

import (
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// Service holds the read-side services. Writes go through the operator.
type Service struct {
	User        *UserService
	Currency    *CurrencyService
	Account     *AccountService
	Category    *CategoryService
	Transaction *TransactionService
	Budget      *BudgetService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		User:        NewUserService(store),
		Currency:    NewCurrencyService(store),
		Account:     NewAccountService(store),
		Category:    NewCategoryService(store),
		Transaction: NewTransactionService(store),
		Budget:      NewBudgetService(store),
	}
}
