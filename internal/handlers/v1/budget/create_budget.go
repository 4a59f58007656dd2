package budget

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
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
	"github.com/carson-networks/finance-tracker/internal/validate"
)

// CreateBudgetBody is the request body for creating a budget.
type CreateBudgetBody struct {
	CategoryID int64  `json:"categoryId" doc:"Category the budget applies to, must belong to the user"`
	Amount     string `json:"amount" doc:"Budgeted amount, positive decimal string with at most 2 decimal places"`
	Period     string `json:"period" doc:"One of month, quarter, or year"`
	StartDate  string `json:"startDate" doc:"First day the budget covers, YYYY-MM-DD"`
	EndDate    string `json:"endDate" doc:"Last day the budget covers, YYYY-MM-DD"`
}

// CreateBudgetInput is the Huma input for creating a budget.
type CreateBudgetInput struct {
	UserID int64 `path:"userID" doc:"Owning user ID"`
	Body   CreateBudgetBody
}

// CreateBudgetOutput is the Huma output for creating a budget.
type CreateBudgetOutput struct {
	Status int
	Body   Budget
}

type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CreateBudgetHandler handles POST /v1/users/{userID}/budgets.
type CreateBudgetHandler struct {
	Operator actionProcessor
}

// NewCreateBudgetHandler creates a new CreateBudgetHandler.
func NewCreateBudgetHandler(op actionProcessor) *CreateBudgetHandler {
	return &CreateBudgetHandler{Operator: op}
}

// Register registers the create budget endpoint with the Huma API.
func (h *CreateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-budget",
		Method:      http.MethodPost,
		Path:        "/v1/users/{userID}/budgets",
		Summary:     "Create a budget",
		Description: "Creates a spending budget for one of the user's categories.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func parseCreateBudgetInput(input *CreateBudgetInput) (amount decimal.Decimal, period sqlconfig.BudgetPeriod, start, end time.Time, err error) {
	v := &errs.ValidationError{}
	amount = validate.PositiveAmount(v, "amount", input.Body.Amount)
	period = validate.BudgetPeriod(v, "period", input.Body.Period)
	start = validate.Date(v, "startDate", input.Body.StartDate)
	end = validate.Date(v, "endDate", input.Body.EndDate)
	if !v.HasErrors() && end.Before(start) {
		v.Add("endDate", "must not be before startDate")
	}
	if v.HasErrors() {
		return decimal.Zero, "", time.Time{}, time.Time{}, v
	}
	return amount, period, start, end, nil
}

func (h *CreateBudgetHandler) handle(ctx context.Context, input *CreateBudgetInput) (*CreateBudgetOutput, error) {
	logData := logging.GetLogData(ctx)

	amount, period, start, end, err := parseCreateBudgetInput(input)
	if err != nil {
		return nil, httperr.Map(err, "failed to create budget")
	}

	action := &actions.CreateBudget{
		UserID:     input.UserID,
		CategoryID: input.Body.CategoryID,
		Amount:     amount,
		Period:     period,
		StartDate:  start,
		EndDate:    end,
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createBudgetMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.Map(err, "failed to create budget")
	}

	return &CreateBudgetOutput{
		Status: http.StatusCreated,
		Body: Budget{
			ID:         action.Result.ID,
			UserID:     action.Result.UserID,
			CategoryID: action.Result.CategoryID,
			Amount:     action.Result.Amount.StringFixed(2),
			Period:     string(action.Result.Period),
			StartDate:  action.Result.StartDate.Format(dateLayout),
			EndDate:    action.Result.EndDate.Format(dateLayout),
			CreatedAt:  action.Result.CreatedAt.Format(time.RFC3339),
		},
	}, nil
}
