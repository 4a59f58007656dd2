package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

// DeleteBudgetInput is the Huma input for deleting a budget.
type DeleteBudgetInput struct {
	UserID   int64 `path:"userID" doc:"Owning user ID"`
	BudgetID int64 `path:"budgetID" doc:"Budget ID"`
}

// DeleteBudgetOutput is the Huma output for deleting a budget.
type DeleteBudgetOutput struct {
	Status int
}

// DeleteBudgetHandler handles DELETE /v1/users/{userID}/budgets/{budgetID}.
type DeleteBudgetHandler struct {
	Operator actionProcessor
}

// NewDeleteBudgetHandler creates a new DeleteBudgetHandler.
func NewDeleteBudgetHandler(op actionProcessor) *DeleteBudgetHandler {
	return &DeleteBudgetHandler{Operator: op}
}

// Register registers the delete budget endpoint with the Huma API.
func (h *DeleteBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-budget",
		Method:      http.MethodDelete,
		Path:        "/v1/users/{userID}/budgets/{budgetID}",
		Summary:     "Delete a budget",
		Description: "Deletes a budget owned by the user.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *DeleteBudgetHandler) handle(ctx context.Context, input *DeleteBudgetInput) (*DeleteBudgetOutput, error) {
	action := &actions.DeleteBudget{BudgetID: input.BudgetID, UserID: input.UserID}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Map(err, "failed to delete budget")
	}
	return &DeleteBudgetOutput{Status: http.StatusNoContent}, nil
}
