package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

// DeleteCategoryInput is the Huma input for deleting a category.
type DeleteCategoryInput struct {
	UserID     int64 `path:"userID" doc:"Owning user ID"`
	CategoryID int64 `path:"categoryID" doc:"Category ID"`
}

// DeleteCategoryOutput is the Huma output for deleting a category.
type DeleteCategoryOutput struct {
	Status int
}

// DeleteCategoryHandler handles DELETE /v1/users/{userID}/categories/{categoryID}.
// Children of the deleted category become root categories; transactions and
// budgets referencing it are deleted with it.
type DeleteCategoryHandler struct {
	Operator actionProcessor
}

// NewDeleteCategoryHandler creates a new DeleteCategoryHandler.
func NewDeleteCategoryHandler(op actionProcessor) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{Operator: op}
}

// Register registers the delete category endpoint with the Huma API.
func (h *DeleteCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-category",
		Method:      http.MethodDelete,
		Path:        "/v1/users/{userID}/categories/{categoryID}",
		Summary:     "Delete a category",
		Description: "Deletes a category owned by the user. Child categories are detached, not deleted.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	action := &actions.DeleteCategory{CategoryID: input.CategoryID, UserID: input.UserID}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Map(err, "failed to delete category")
	}
	return &DeleteCategoryOutput{Status: http.StatusNoContent}, nil
}
