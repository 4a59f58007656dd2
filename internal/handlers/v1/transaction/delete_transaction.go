package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

// DeleteTransactionInput is the Huma input for deleting a transaction.
type DeleteTransactionInput struct {
	UserID        int64 `path:"userID" doc:"Owning user ID"`
	TransactionID int64 `path:"transactionID" doc:"Transaction ID"`
}

// DeleteTransactionOutput is the Huma output for deleting a transaction.
type DeleteTransactionOutput struct {
	Status int
}

// DeleteTransactionHandler handles DELETE /v1/users/{userID}/transactions/{transactionID}.
type DeleteTransactionHandler struct {
	Operator actionProcessor
}

// NewDeleteTransactionHandler creates a new DeleteTransactionHandler.
func NewDeleteTransactionHandler(op actionProcessor) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{Operator: op}
}

// Register registers the delete transaction endpoint with the Huma API.
func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodDelete,
		Path:        "/v1/users/{userID}/transactions/{transactionID}",
		Summary:     "Delete a transaction",
		Description: "Deletes a transaction owned by the user.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	action := &actions.DeleteTransaction{TransactionID: input.TransactionID, UserID: input.UserID}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Map(err, "failed to delete transaction")
	}
	return &DeleteTransactionOutput{Status: http.StatusNoContent}, nil
}
