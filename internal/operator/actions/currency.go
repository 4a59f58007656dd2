package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// CreateCurrency inserts shared reference data; the unique constraint on the
// code turns duplicates into conflicts.
type CreateCurrency struct {
	Code string
	Name string

	Result *sqlconfig.Currency
}

func (c *CreateCurrency) Perform(ctx context.Context, writer *storage.Writer) error {
	currency, err := writer.Currencies.Insert(ctx, &sqlconfig.CurrencyCreate{
		Code: c.Code,
		Name: c.Name,
	})
	if err != nil {
		return err
	}

	c.Result = currency
	return nil
}
