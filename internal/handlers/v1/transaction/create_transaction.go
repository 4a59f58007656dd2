package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/errs"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/validate"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	AccountID       int64  `json:"accountId" doc:"Account to post against, must belong to the user"`
	CategoryID      int64  `json:"categoryId" doc:"Category to file under, must belong to the user"`
	Amount          string `json:"amount" doc:"Amount, decimal string with at most 2 decimal places"`
	Description     string `json:"description,omitempty" doc:"Optional free-text description"`
	TransactionDate string `json:"transactionDate,omitempty" doc:"Optional RFC3339 timestamp; defaults to now"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	UserID int64 `path:"userID" doc:"Owning user ID"`
	Body   CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   Transaction
}

type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CreateTransactionHandler handles POST /v1/users/{userID}/transactions.
type CreateTransactionHandler struct {
	Operator actionProcessor
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op actionProcessor) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/users/{userID}/transactions",
		Summary:     "Create a transaction",
		Description: "Records a transaction against one of the user's accounts.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput) (amount decimal.Decimal, date time.Time, err error) {
	v := &errs.ValidationError{}
	amount = validate.Amount(v, "amount", input.Body.Amount)
	date = validate.OptionalDateTime(v, "transactionDate", input.Body.TransactionDate)
	if v.HasErrors() {
		return decimal.Zero, time.Time{}, v
	}
	return amount, date, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	amount, date, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, httperr.Map(err, "failed to create transaction")
	}

	action := &actions.CreateTransaction{
		UserID:          input.UserID,
		AccountID:       input.Body.AccountID,
		CategoryID:      input.Body.CategoryID,
		Amount:          amount,
		Description:     input.Body.Description,
		TransactionDate: date,
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.Map(err, "failed to create transaction")
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body: Transaction{
			ID:              action.Result.ID,
			UserID:          action.Result.UserID,
			AccountID:       action.Result.AccountID,
			CategoryID:      action.Result.CategoryID,
			Amount:          action.Result.Amount.StringFixed(2),
			Description:     action.Result.Description,
			TransactionDate: action.Result.TransactionDate.Format(time.RFC3339),
			CreatedAt:       action.Result.CreatedAt.Format(time.RFC3339),
		},
	}, nil
}
