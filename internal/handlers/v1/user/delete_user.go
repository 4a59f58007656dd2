package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

// DeleteUserInput is the Huma input for deleting a user.
type DeleteUserInput struct {
	UserID int64 `path:"userID" doc:"User ID"`
}

// DeleteUserOutput is the Huma output for deleting a user.
type DeleteUserOutput struct {
	Status int
}

// DeleteUserHandler handles DELETE /v1/users/{userID}. The delete cascades to
// the user's accounts, categories, transactions, and budgets.
type DeleteUserHandler struct {
	Operator actionProcessor
}

// NewDeleteUserHandler creates a new DeleteUserHandler.
func NewDeleteUserHandler(op actionProcessor) *DeleteUserHandler {
	return &DeleteUserHandler{Operator: op}
}

// Register registers the delete user endpoint with the Huma API.
func (h *DeleteUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-user",
		Method:      http.MethodDelete,
		Path:        "/v1/users/{userID}",
		Summary:     "Delete a user",
		Description: "Deletes a user and everything the user owns.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *DeleteUserHandler) handle(ctx context.Context, input *DeleteUserInput) (*DeleteUserOutput, error) {
	action := &actions.DeleteUser{UserID: input.UserID}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Map(err, "failed to delete user")
	}
	return &DeleteUserOutput{Status: http.StatusNoContent}, nil
}
