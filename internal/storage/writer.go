package storage

import (
	"database/sql"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// Writer is a unit of work: every table accessor is bound to one transaction,
// finished by exactly one Commit or Rollback.
type Writer struct {
	tx *sql.Tx

	Users        sqlconfig.IUserTable
	Currencies   sqlconfig.ICurrencyTable
	Accounts     sqlconfig.IAccountTable
	Categories   sqlconfig.ICategoryTable
	Transactions sqlconfig.ITransactionTable
	Budgets      sqlconfig.IBudgetTable
}

func NewWriter(tx *sql.Tx) *Writer {
	return &Writer{
		tx:           tx,
		Users:        sqlconfig.NewUsersTable(tx),
		Currencies:   sqlconfig.NewCurrenciesTable(tx),
		Accounts:     sqlconfig.NewAccountsTable(tx),
		Categories:   sqlconfig.NewCategoriesTable(tx),
		Transactions: sqlconfig.NewTransactionsTable(tx),
		Budgets:      sqlconfig.NewBudgetsTable(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit()
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback()
}
