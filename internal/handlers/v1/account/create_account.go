package account

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

// CreateAccountBody is the request body for creating an account.
type CreateAccountBody struct {
	Name       string `json:"name" doc:"Account name, at most 100 characters"`
	CurrencyID int64  `json:"currencyId" doc:"Currency the account is denominated in"`
	Balance    string `json:"balance,omitempty" doc:"Opening balance, decimal string with at most 2 decimal places; defaults to 0"`
}

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	UserID int64 `path:"userID" doc:"Owning user ID"`
	Body   CreateAccountBody
}

// CreateAccountOutput is the Huma output for creating an account.
type CreateAccountOutput struct {
	Status int
	Body   Account
}

type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CreateAccountHandler handles POST /v1/users/{userID}/accounts.
type CreateAccountHandler struct {
	Operator actionProcessor
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(op actionProcessor) *CreateAccountHandler {
	return &CreateAccountHandler{Operator: op}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-account",
		Method:      http.MethodPost,
		Path:        "/v1/users/{userID}/accounts",
		Summary:     "Create an account",
		Description: "Creates a financial account owned by the user.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func parseCreateAccountInput(input *CreateAccountInput) (name string, balance decimal.Decimal, err error) {
	v := &errs.ValidationError{}
	name = validate.Name(v, "name", input.Body.Name, validate.MaxNameLength)
	if input.Body.Balance == "" {
		balance = decimal.Zero
	} else {
		balance = validate.NonNegativeAmount(v, "balance", input.Body.Balance)
	}
	if v.HasErrors() {
		return "", decimal.Zero, v
	}
	return name, balance, nil
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	name, balance, err := parseCreateAccountInput(input)
	if err != nil {
		return nil, httperr.Map(err, "failed to create account")
	}

	action := &actions.CreateAccount{
		UserID:     input.UserID,
		CurrencyID: input.Body.CurrencyID,
		Name:       name,
		Balance:    balance,
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createAccountMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.Map(err, "failed to create account")
	}

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body: Account{
			ID:         action.Result.ID,
			UserID:     action.Result.UserID,
			CurrencyID: action.Result.CurrencyID,
			Name:       action.Result.Name,
			Balance:    action.Result.Balance.StringFixed(2),
			IsActive:   action.Result.IsActive,
			CreatedAt:  action.Result.CreatedAt.Format(time.RFC3339),
		},
	}, nil
}
