package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// ListTransactionsInput is the Huma input for listing a user's transactions.
// Account and category filters may be combined.
type ListTransactionsInput struct {
	UserID     int64 `path:"userID" doc:"Owning user ID"`
	AccountID  int64 `query:"accountId" doc:"Only transactions posted against this account"`
	CategoryID int64 `query:"categoryId" doc:"Only transactions filed under this category"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Matching transactions, newest first"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing a user's transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, userID int64, filter *service.TransactionFilter) ([]service.Transaction, error)
}

// ListTransactionsHandler handles GET /v1/users/{userID}/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/users/{userID}/transactions",
		Summary:     "List transactions",
		Description: "Returns the user's transactions, newest first, optionally filtered by account or category.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	var filter *service.TransactionFilter
	if input.AccountID != 0 || input.CategoryID != 0 {
		filter = &service.TransactionFilter{}
		if input.AccountID != 0 {
			filter.AccountID = &input.AccountID
		}
		if input.CategoryID != 0 {
			filter.CategoryID = &input.CategoryID
		}
	}

	transactions, err := h.TransactionService.ListTransactions(ctx, input.UserID, filter)
	if err != nil {
		return nil, httperr.Map(err, "failed to list transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{Transactions: make([]Transaction, len(transactions))}
	for i, t := range transactions {
		resp.Transactions[i] = fromService(t)
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
