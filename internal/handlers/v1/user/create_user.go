package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/errs"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/validate"
)

// CreateUserBody is the request body for creating a user.
type CreateUserBody struct {
	Email    string `json:"email" doc:"Email address, must be unique"`
	FullName string `json:"fullName,omitempty" doc:"Optional display name"`
	Password string `json:"password" doc:"Plaintext password, at least 8 characters; stored only as a bcrypt hash"`
}

// CreateUserInput is the Huma input for creating a user.
type CreateUserInput struct {
	Body CreateUserBody
}

// CreateUserOutput is the Huma output for creating a user.
type CreateUserOutput struct {
	Status int
	Body   User
}

// actionProcessor dispatches a write action to the operator pool.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CreateUserHandler handles POST /v1/users.
type CreateUserHandler struct {
	Operator actionProcessor
}

// NewCreateUserHandler creates a new CreateUserHandler.
func NewCreateUserHandler(op actionProcessor) *CreateUserHandler {
	return &CreateUserHandler{Operator: op}
}

// Register registers the create user endpoint with the Huma API.
func (h *CreateUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-user",
		Method:      http.MethodPost,
		Path:        "/v1/users",
		Summary:     "Create a user",
		Description: "Creates a new user. The email must not already be registered.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func parseCreateUserInput(input *CreateUserInput) (email, fullName, password string, err error) {
	v := &errs.ValidationError{}
	email = validate.Email(v, "email", input.Body.Email)
	password = validate.Password(v, "password", input.Body.Password)
	if v.HasErrors() {
		return "", "", "", v
	}
	return email, input.Body.FullName, password, nil
}

func (h *CreateUserHandler) handle(ctx context.Context, input *CreateUserInput) (*CreateUserOutput, error) {
	logData := logging.GetLogData(ctx)

	email, fullName, password, err := parseCreateUserInput(input)
	if err != nil {
		return nil, httperr.Map(err, "failed to create user")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to hash password", err)
	}

	action := &actions.CreateUser{
		Email:          email,
		FullName:       fullName,
		HashedPassword: hash,
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createUserMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.Map(err, "failed to create user")
	}

	if logData != nil {
		logData.AddData("userID", action.Result.ID)
	}

	return &CreateUserOutput{
		Status: http.StatusCreated,
		Body:   fromRow(action.Result),
	}, nil
}
