package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/errs"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
	"github.com/carson-networks/finance-tracker/internal/validate"
)

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	Name     string `json:"name" doc:"Category name, at most 100 characters"`
	Type     string `json:"type" doc:"Either income or expense"`
	ParentID *int64 `json:"parentId,omitempty" doc:"Optional parent category, must belong to the same user"`
}

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	UserID int64 `path:"userID" doc:"Owning user ID"`
	Body   CreateCategoryBody
}

// CreateCategoryOutput is the Huma output for creating a category.
type CreateCategoryOutput struct {
	Status int
	Body   Category
}

type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CreateCategoryHandler handles POST /v1/users/{userID}/categories.
type CreateCategoryHandler struct {
	Operator actionProcessor
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(op actionProcessor) *CreateCategoryHandler {
	return &CreateCategoryHandler{Operator: op}
}

// Register registers the create category endpoint with the Huma API.
func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-category",
		Method:      http.MethodPost,
		Path:        "/v1/users/{userID}/categories",
		Summary:     "Create a category",
		Description: "Creates a transaction category, optionally nested under a parent.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func parseCreateCategoryInput(input *CreateCategoryInput) (name string, opType sqlconfig.OperationType, err error) {
	v := &errs.ValidationError{}
	name = validate.Name(v, "name", input.Body.Name, validate.MaxNameLength)
	opType = validate.OperationType(v, "type", input.Body.Type)
	if v.HasErrors() {
		return "", "", v
	}
	return name, opType, nil
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	logData := logging.GetLogData(ctx)

	name, opType, err := parseCreateCategoryInput(input)
	if err != nil {
		return nil, httperr.Map(err, "failed to create category")
	}

	action := &actions.CreateCategory{
		UserID:   input.UserID,
		Name:     name,
		Type:     opType,
		ParentID: input.Body.ParentID,
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createCategoryMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.Map(err, "failed to create category")
	}

	return &CreateCategoryOutput{
		Status: http.StatusCreated,
		Body: Category{
			ID:       action.Result.ID,
			UserID:   action.Result.UserID,
			Name:     action.Result.Name,
			Type:     string(action.Result.Type),
			ParentID: action.Result.ParentID,
			IsActive: action.Result.IsActive,
		},
	}, nil
}
