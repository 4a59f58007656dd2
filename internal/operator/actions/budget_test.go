package actions

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/errs"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

func TestCreateBudget_Success(t *testing.T) {
	mockCategories := sqlconfig.NewMockICategoryTable(t)
	mockBudgets := sqlconfig.NewMockIBudgetTable(t)
	writer := &storage.Writer{Categories: mockCategories, Budgets: mockBudgets}

	amount := decimal.RequireFromString("500.00")
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	inserted := &sqlconfig.Budget{ID: 30, UserID: 1, CategoryID: 5, Amount: amount, Period: sqlconfig.BudgetPeriodMonth, StartDate: start, EndDate: end}

	mockCategories.EXPECT().FindByID(mock.Anything, int64(5)).Return(&sqlconfig.Category{ID: 5, UserID: 1}, nil)
	mockBudgets.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.BudgetCreate) bool {
		return c.UserID == 1 &&
			c.CategoryID == 5 &&
			c.Amount.Equal(amount) &&
			c.Period == sqlconfig.BudgetPeriodMonth &&
			c.StartDate.Equal(start) &&
			c.EndDate.Equal(end)
	})).Return(inserted, nil)

	action := &CreateBudget{UserID: 1, CategoryID: 5, Amount: amount, Period: sqlconfig.BudgetPeriodMonth, StartDate: start, EndDate: end}
	err := action.Perform(context.Background(), writer)

	assert.NoError(t, err)
	assert.Equal(t, inserted, action.Result)
}

func TestCreateBudget_CategoryOwnedByOtherUser(t *testing.T) {
	mockCategories := sqlconfig.NewMockICategoryTable(t)
	writer := &storage.Writer{Categories: mockCategories}

	mockCategories.EXPECT().FindByID(mock.Anything, int64(5)).
		Return(&sqlconfig.Category{ID: 5, UserID: 2}, nil)

	action := &CreateBudget{UserID: 1, CategoryID: 5, Amount: decimal.RequireFromString("500.00"), Period: sqlconfig.BudgetPeriodMonth}
	err := action.Perform(context.Background(), writer)

	var notFound *errs.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, "category", notFound.Resource)
}

func TestCreateBudget_CategoryMissing(t *testing.T) {
	mockCategories := sqlconfig.NewMockICategoryTable(t)
	writer := &storage.Writer{Categories: mockCategories}

	mockCategories.EXPECT().FindByID(mock.Anything, int64(5)).
		Return(nil, errs.NewNotFound("category", 5))

	action := &CreateBudget{UserID: 1, CategoryID: 5, Amount: decimal.RequireFromString("500.00"), Period: sqlconfig.BudgetPeriodMonth}
	err := action.Perform(context.Background(), writer)

	var notFound *errs.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestDeleteBudget_ScopedToOwner(t *testing.T) {
	mockBudgets := sqlconfig.NewMockIBudgetTable(t)
	writer := &storage.Writer{Budgets: mockBudgets}

	mockBudgets.EXPECT().Delete(mock.Anything, int64(30), int64(1)).Return(nil)

	action := &DeleteBudget{BudgetID: 30, UserID: 1}
	assert.NoError(t, action.Perform(context.Background(), writer))
}
