package actions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/errs"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// CreateTransaction inserts a transaction after verifying the referenced
// account and category both exist and belong to the acting user. The checks
// run in the same transaction as the insert, so they cannot be invalidated by
// a concurrent delete. Account balances are not recomputed here.
type CreateTransaction struct {
	UserID          int64
	AccountID       int64
	CategoryID      int64
	Amount          decimal.Decimal
	Description     string
	TransactionDate time.Time

	Result *sqlconfig.Transaction
}

func (c *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	account, err := writer.Accounts.FindByID(ctx, c.AccountID)
	if err != nil {
		return err
	}
	if account.UserID != c.UserID {
		return errs.NewNotFound("account", c.AccountID)
	}

	category, err := writer.Categories.FindByID(ctx, c.CategoryID)
	if err != nil {
		return err
	}
	if category.UserID != c.UserID {
		return errs.NewNotFound("category", c.CategoryID)
	}

	transaction, err := writer.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		UserID:          c.UserID,
		AccountID:       c.AccountID,
		CategoryID:      c.CategoryID,
		Amount:          c.Amount,
		Description:     c.Description,
		TransactionDate: c.TransactionDate,
	})
	if err != nil {
		return err
	}

	c.Result = transaction
	return nil
}

// DeleteTransaction removes a transaction owned by UserID.
type DeleteTransaction struct {
	TransactionID int64
	UserID        int64
}

func (d *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Transactions.Delete(ctx, d.TransactionID, d.UserID)
}
