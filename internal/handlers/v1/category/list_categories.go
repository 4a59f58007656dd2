package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// ListCategoriesInput is the Huma input for listing a user's categories.
type ListCategoriesInput struct {
	UserID int64 `path:"userID" doc:"Owning user ID"`
}

// ListCategoriesResponseBody is the response body for listing categories.
type ListCategoriesResponseBody struct {
	Categories []Category `json:"categories" doc:"The user's categories"`
}

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body ListCategoriesResponseBody
}

// categoryLister is the interface for listing a user's categories.
type categoryLister interface {
	ListCategories(ctx context.Context, userID int64) ([]service.Category, error)
}

// ListCategoriesHandler handles GET /v1/users/{userID}/categories.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

// NewListCategoriesHandler creates a new ListCategoriesHandler.
func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

// Register registers the list categories endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/users/{userID}/categories",
		Summary:     "List categories",
		Description: "Returns all categories owned by the user.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories, err := h.CategoryService.ListCategories(ctx, input.UserID)
	if err != nil {
		return nil, httperr.Map(err, "failed to list categories")
	}

	resp := ListCategoriesResponseBody{Categories: make([]Category, len(categories))}
	for i, c := range categories {
		resp.Categories[i] = fromService(c)
	}

	return &ListCategoriesOutput{Body: resp}, nil
}
