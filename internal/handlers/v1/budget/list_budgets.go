package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// ListBudgetsInput is the Huma input for listing a user's budgets.
type ListBudgetsInput struct {
	UserID int64 `path:"userID" doc:"Owning user ID"`
}

// ListBudgetsResponseBody is the response body for listing budgets.
type ListBudgetsResponseBody struct {
	Budgets []Budget `json:"budgets" doc:"The user's budgets"`
}

// ListBudgetsOutput is the Huma output for listing budgets.
type ListBudgetsOutput struct {
	Body ListBudgetsResponseBody
}

// budgetLister is the interface for listing a user's budgets.
type budgetLister interface {
	ListBudgets(ctx context.Context, userID int64) ([]service.Budget, error)
}

// ListBudgetsHandler handles GET /v1/users/{userID}/budgets.
type ListBudgetsHandler struct {
	BudgetService budgetLister
}

// NewListBudgetsHandler creates a new ListBudgetsHandler.
func NewListBudgetsHandler(svc budgetLister) *ListBudgetsHandler {
	return &ListBudgetsHandler{BudgetService: svc}
}

// Register registers the list budgets endpoint with the Huma API.
func (h *ListBudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-budgets",
		Method:      http.MethodGet,
		Path:        "/v1/users/{userID}/budgets",
		Summary:     "List budgets",
		Description: "Returns all budgets owned by the user.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *ListBudgetsHandler) handle(ctx context.Context, input *ListBudgetsInput) (*ListBudgetsOutput, error) {
	budgets, err := h.BudgetService.ListBudgets(ctx, input.UserID)
	if err != nil {
		return nil, httperr.Map(err, "failed to list budgets")
	}

	resp := ListBudgetsResponseBody{Budgets: make([]Budget, len(budgets))}
	for i, b := range budgets {
		resp.Budgets[i] = fromService(b)
	}

	return &ListBudgetsOutput{Body: resp}, nil
}
