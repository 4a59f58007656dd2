package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

// DeleteAccountInput is the Huma input for deleting an account.
type DeleteAccountInput struct {
	UserID    int64 `path:"userID" doc:"Owning user ID"`
	AccountID int64 `path:"accountID" doc:"Account ID"`
}

// DeleteAccountOutput is the Huma output for deleting an account.
type DeleteAccountOutput struct {
	Status int
}

// DeleteAccountHandler handles DELETE /v1/users/{userID}/accounts/{accountID}.
// Transactions recorded against the account are deleted with it.
type DeleteAccountHandler struct {
	Operator actionProcessor
}

// NewDeleteAccountHandler creates a new DeleteAccountHandler.
func NewDeleteAccountHandler(op actionProcessor) *DeleteAccountHandler {
	return &DeleteAccountHandler{Operator: op}
}

// Register registers the delete account endpoint with the Huma API.
func (h *DeleteAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-account",
		Method:      http.MethodDelete,
		Path:        "/v1/users/{userID}/accounts/{accountID}",
		Summary:     "Delete an account",
		Description: "Deletes an account owned by the user, along with its transactions.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *DeleteAccountHandler) handle(ctx context.Context, input *DeleteAccountInput) (*DeleteAccountOutput, error) {
	action := &actions.DeleteAccount{AccountID: input.AccountID, UserID: input.UserID}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Map(err, "failed to delete account")
	}
	return &DeleteAccountOutput{Status: http.StatusNoContent}, nil
}
