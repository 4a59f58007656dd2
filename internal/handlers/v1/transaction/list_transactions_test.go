package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// mockTransactionService is a mock for transactionLister.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) ListTransactions(ctx context.Context, userID int64, filter *service.TransactionFilter) ([]service.Transaction, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Transaction), args.Error(1)
}

func newListTestAPI(t *testing.T, svc transactionLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListTransactionsHandler(svc).Register(api)
	return api
}

func TestHTTP_ListTransactions_NoFilter(t *testing.T) {
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything, int64(1), (*service.TransactionFilter)(nil)).
		Return([]service.Transaction{
			{ID: 20, UserID: 1, AccountID: 3, CategoryID: 5, Amount: decimal.RequireFromString("5.00"), TransactionDate: now, CreatedAt: now},
		}, nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/users/1/transactions")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Transactions, 1)
	assert.Equal(t, "5.00", body.Transactions[0].Amount)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_AccountFilter(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything, int64(1), mock.MatchedBy(func(f *service.TransactionFilter) bool {
		return f != nil && f.AccountID != nil && *f.AccountID == 3 && f.CategoryID == nil
	})).Return([]service.Transaction{}, nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/users/1/transactions?accountId=3")

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_BothFilters(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything, int64(1), mock.MatchedBy(func(f *service.TransactionFilter) bool {
		return f != nil &&
			f.AccountID != nil && *f.AccountID == 3 &&
			f.CategoryID != nil && *f.CategoryID == 5
	})).Return([]service.Transaction{}, nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/users/1/transactions?accountId=3&categoryId=5")

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}
