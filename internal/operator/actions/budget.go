package actions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/errs"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// CreateBudget inserts a budget after verifying the referenced category
// exists and belongs to the acting user, in the same transaction as the
// insert.
type CreateBudget struct {
	UserID     int64
	CategoryID int64
	Amount     decimal.Decimal
	Period     sqlconfig.BudgetPeriod
	StartDate  time.Time
	EndDate    time.Time

	Result *sqlconfig.Budget
}

func (c *CreateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	category, err := writer.Categories.FindByID(ctx, c.CategoryID)
	if err != nil {
		return err
	}
	if category.UserID != c.UserID {
		return errs.NewNotFound("category", c.CategoryID)
	}

	budget, err := writer.Budgets.Insert(ctx, &sqlconfig.BudgetCreate{
		UserID:     c.UserID,
		CategoryID: c.CategoryID,
		Amount:     c.Amount,
		Period:     c.Period,
		StartDate:  c.StartDate,
		EndDate:    c.EndDate,
	})
	if err != nil {
		return err
	}

	c.Result = budget
	return nil
}

// DeleteBudget removes a budget owned by UserID.
type DeleteBudget struct {
	BudgetID int64
	UserID   int64
}

func (d *DeleteBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Budgets.Delete(ctx, d.BudgetID, d.UserID)
}
