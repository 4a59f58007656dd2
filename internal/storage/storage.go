package storage

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/errs"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// Storage owns the connection pool and the per-entity table accessors used by
// read paths. Writes go through Write, which scopes them to one transaction.
type Storage struct {
	DB *sql.DB

	Users        sqlconfig.IUserTable
	Currencies   sqlconfig.ICurrencyTable
	Accounts     sqlconfig.IAccountTable
	Categories   sqlconfig.ICategoryTable
	Transactions sqlconfig.ITransactionTable
	Budgets      sqlconfig.IBudgetTable

	retryAttempts int
	retryDelay    time.Duration
}

// NewStorage opens the pool and binds the table accessors. The connection is
// not verified here; callers run VerifyConnectivity during bootstrap.
func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresDSN())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(env.DatabaseMaxOpenConns)
	db.SetMaxIdleConns(env.DatabaseMaxIdleConns)

	return &Storage{
		DB:           db,
		Users:        sqlconfig.NewUsersTable(db),
		Currencies:   sqlconfig.NewCurrenciesTable(db),
		Accounts:     sqlconfig.NewAccountsTable(db),
		Categories:   sqlconfig.NewCategoriesTable(db),
		Transactions: sqlconfig.NewTransactionsTable(db),
		Budgets:      sqlconfig.NewBudgetsTable(db),

		retryAttempts: env.DatabaseRetryAttempts,
		retryDelay:    time.Duration(env.DatabaseRetrySeconds) * time.Second,
	}, nil
}

// VerifyConnectivity pings the database with a bounded retry budget and a
// fixed delay between attempts. After exhausting the budget it returns a
// ConnectivityError, which is fatal to the caller at startup.
func (s *Storage) VerifyConnectivity(ctx context.Context) error {
	var lastErr error
	for attempt := 1; attempt <= s.retryAttempts; attempt++ {
		lastErr = s.DB.PingContext(ctx)
		if lastErr == nil {
			return nil
		}

		logrus.WithError(lastErr).WithFields(logrus.Fields{
			"attempt":     attempt,
			"maxAttempts": s.retryAttempts,
		}).Warn("Storage.VerifyConnectivity.retry")

		if attempt == s.retryAttempts {
			break
		}
		select {
		case <-time.After(s.retryDelay):
		case <-ctx.Done():
			return &errs.ConnectivityError{Attempts: attempt, Err: ctx.Err()}
		}
	}
	return &errs.ConnectivityError{Attempts: s.retryAttempts, Err: lastErr}
}

// Write begins a transaction and returns a Writer scoped to it. The caller
// must finish with Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}

// Close releases the connection pool.
func (s *Storage) Close() error {
	return s.DB.Close()
}
