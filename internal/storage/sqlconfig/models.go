package sqlconfig

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Querier is the subset of database/sql shared by *sql.DB and *sql.Tx, so the
// same table implementations serve both pooled reads and unit-of-work writes.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// User represents a users row. HashedPassword never leaves the storage and
// service layers.
type User struct {
	ID             int64
	Email          string
	HashedPassword string
	FullName       string
	IsActive       bool
	CreatedAt      time.Time
}

// UserCreate is the input for inserting a new user.
type UserCreate struct {
	Email          string
	HashedPassword string
	FullName       string
}

// IUserTable defines the interface for user storage operations.
//
//go:generate mockery --name IUserTable
type IUserTable interface {
	Insert(ctx context.Context, create *UserCreate) (*User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
	// FindByEmail returns (nil, nil) when no user has the email.
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Delete(ctx context.Context, id int64) error
}

// Currency represents a currencies row. Currencies are shared reference data
// with no owner.
type Currency struct {
	ID   int64
	Code string
	Name string
}

// CurrencyCreate is the input for inserting a new currency.
type CurrencyCreate struct {
	Code string
	Name string
}

// ICurrencyTable defines the interface for currency storage operations.
//
//go:generate mockery --name ICurrencyTable
type ICurrencyTable interface {
	Insert(ctx context.Context, create *CurrencyCreate) (*Currency, error)
	FindByID(ctx context.Context, id int64) (*Currency, error)
	List(ctx context.Context) ([]*Currency, error)
}

// Account represents an accounts row.
type Account struct {
	ID         int64
	UserID     int64
	CurrencyID int64
	Name       string
	Balance    decimal.Decimal
	IsActive   bool
	CreatedAt  time.Time
}

// AccountCreate is the input for inserting a new account.
type AccountCreate struct {
	UserID     int64
	CurrencyID int64
	Name       string
	Balance    decimal.Decimal
}

// IAccountTable defines the interface for account storage operations.
//
//go:generate mockery --name IAccountTable
type IAccountTable interface {
	Insert(ctx context.Context, create *AccountCreate) (*Account, error)
	FindByID(ctx context.Context, id int64) (*Account, error)
	ListByUser(ctx context.Context, userID int64) ([]*Account, error)
	// Delete removes the account only when it belongs to userID.
	Delete(ctx context.Context, id, userID int64) error
}

// Category represents a categories row. ParentID is nil for root categories.
type Category struct {
	ID       int64
	UserID   int64
	Name     string
	Type     OperationType
	ParentID *int64
	IsActive bool
}

// CategoryCreate is the input for inserting a new category.
type CategoryCreate struct {
	UserID   int64
	Name     string
	Type     OperationType
	ParentID *int64
}

// ICategoryTable defines the interface for category storage operations.
//
//go:generate mockery --name ICategoryTable
type ICategoryTable interface {
	Insert(ctx context.Context, create *CategoryCreate) (*Category, error)
	FindByID(ctx context.Context, id int64) (*Category, error)
	ListByUser(ctx context.Context, userID int64) ([]*Category, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	// Delete removes the category only when it belongs to userID. Children
	// keep existing with parent_id set to NULL by the schema.
	Delete(ctx context.Context, id, userID int64) error
}

// Transaction represents a transactions row. The amount sign is not
// constrained; income and expense are distinguished by the category type.
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

// TransactionCreate is the input for inserting a new transaction.
type TransactionCreate struct {
	UserID          int64
	AccountID       int64
	CategoryID      int64
	Amount          decimal.Decimal
	Description     string
	TransactionDate time.Time // defaults to now if zero
}

// TransactionFilter narrows ListByUser results.
type TransactionFilter struct {
	AccountID  *int64
	CategoryID *int64
}

// ITransactionTable defines the interface for transaction storage operations.
//
//go:generate mockery --name ITransactionTable
type ITransactionTable interface {
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	FindByID(ctx context.Context, id int64) (*Transaction, error)
	ListByUser(ctx context.Context, userID int64, filter *TransactionFilter) ([]*Transaction, error)
	Delete(ctx context.Context, id, userID int64) error
}

// Budget represents a budgets row.
type Budget struct {
	ID         int64
	UserID     int64
	CategoryID int64
	Amount     decimal.Decimal
	Period     BudgetPeriod
	StartDate  time.Time
	EndDate    time.Time
	CreatedAt  time.Time
}

// BudgetCreate is the input for inserting a new budget.
type BudgetCreate struct {
	UserID     int64
	CategoryID int64
	Amount     decimal.Decimal
	Period     BudgetPeriod
	StartDate  time.Time
	EndDate    time.Time
}

// IBudgetTable defines the interface for budget storage operations.
//
//go:generate mockery --name IBudgetTable
type IBudgetTable interface {
	Insert(ctx context.Context, create *BudgetCreate) (*Budget, error)
	FindByID(ctx context.Context, id int64) (*Budget, error)
	ListByUser(ctx context.Context, userID int64) ([]*Budget, error)
	Delete(ctx context.Context, id, userID int64) error
}
