package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// User is the service-layer user. It deliberately has no password hash field;
// the hash never crosses out of the storage layer on read paths.
type User struct {
	ID        int64
	Email     string
	FullName  string
	IsActive  bool
	CreatedAt time.Time
}

func userFromStorage(row *sqlconfig.User) User {
	return User{
		ID:        row.ID,
		Email:     row.Email,
		FullName:  row.FullName,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
	}
}

// Currency is the service-layer currency.
type Currency struct {
	ID   int64
	Code string
	Name string
}

func currencyFromStorage(row *sqlconfig.Currency) Currency {
	return Currency{
		ID:   row.ID,
		Code: row.Code,
		Name: row.Name,
	}
}

// Account is the service-layer account.
type Account struct {
	ID         int64
	UserID     int64
	CurrencyID int64
	Name       string
	Balance    decimal.Decimal
	IsActive   bool
	CreatedAt  time.Time
}

func accountFromStorage(row *sqlconfig.Account) Account {
	return Account{
		ID:         row.ID,
		UserID:     row.UserID,
		CurrencyID: row.CurrencyID,
		Name:       row.Name,
		Balance:    row.Balance,
		IsActive:   row.IsActive,
		CreatedAt:  row.CreatedAt,
	}
}

// Category is the service-layer category.
type Category struct {
	ID       int64
	UserID   int64
	Name     string
	Type     sqlconfig.OperationType
	ParentID *int64
	IsActive bool
}

func categoryFromStorage(row *sqlconfig.Category) Category {
	return Category{
		ID:       row.ID,
		UserID:   row.UserID,
		Name:     row.Name,
		Type:     row.Type,
		ParentID: row.ParentID,
		IsActive: row.IsActive,
	}
}

// Transaction is the service-layer transaction.
type Transaction struct {
	ID              int64
	UserID          int64
	AccountID       int64
	CategoryID      int64
	Amount          decimal.Decimal
	Description     string
	TransactionDate time.Time
	CreatedAt       time.Time
}

func transactionFromStorage(row *sqlconfig.Transaction) Transaction {
	return Transaction{
		ID:              row.ID,
		UserID:          row.UserID,
		AccountID:       row.AccountID,
		CategoryID:      row.CategoryID,
		Amount:          row.Amount,
		Description:     row.Description,
		TransactionDate: row.TransactionDate,
		CreatedAt:       row.CreatedAt,
	}
}

// Budget is the service-layer budget.
type Budget struct {
	ID         int64
	UserID     int64
	CategoryID int64
	Amount     decimal.Decimal
	Period     sqlconfig.BudgetPeriod
	StartDate  time.Time
	EndDate    time.Time
	CreatedAt  time.Time
}

func budgetFromStorage(row *sqlconfig.Budget) Budget {
	return Budget{
		ID:         row.ID,
		UserID:     row.UserID,
		CategoryID: row.CategoryID,
		Amount:     row.Amount,
		Period:     row.Period,
		StartDate:  row.StartDate,
		EndDate:    row.EndDate,
		CreatedAt:  row.CreatedAt,
	}
}
