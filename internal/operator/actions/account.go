package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// CreateAccount inserts an account after verifying the owning user and the
// referenced currency exist. Both lookups run in the same transaction as the
// insert.
type CreateAccount struct {
	UserID     int64
	CurrencyID int64
	Name       string
	Balance    decimal.Decimal

	Result *sqlconfig.Account
}

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := writer.Users.FindByID(ctx, c.UserID); err != nil {
		return err
	}
	if _, err := writer.Currencies.FindByID(ctx, c.CurrencyID); err != nil {
		return err
	}

	account, err := writer.Accounts.Insert(ctx, &sqlconfig.AccountCreate{
		UserID:     c.UserID,
		CurrencyID: c.CurrencyID,
		Name:       c.Name,
		Balance:    c.Balance,
	})
	if err != nil {
		return err
	}

	c.Result = account
	return nil
}

// DeleteAccount removes an account owned by UserID; its transactions cascade.
type DeleteAccount struct {
	AccountID int64
	UserID    int64
}

func (d *DeleteAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Accounts.Delete(ctx, d.AccountID, d.UserID)
}
