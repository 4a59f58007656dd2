package user

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/errs"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// mockProcessor is a mock for actionProcessor.
type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func newCreateTestAPI(t *testing.T, op actionProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateUserHandler(op).Register(api)
	return api
}

// -- parseCreateUserInput unit tests --

func TestParseCreateUserInput_Valid(t *testing.T) {
	input := &CreateUserInput{
		Body: CreateUserBody{
			Email:    "alice@example.com",
			FullName: "Alice",
			Password: "supersecret",
		},
	}

	email, fullName, password, err := parseCreateUserInput(input)
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
	assert.Equal(t, "Alice", fullName)
	assert.Equal(t, "supersecret", password)
}

func TestParseCreateUserInput_BadEmailAndShortPassword(t *testing.T) {
	input := &CreateUserInput{
		Body: CreateUserBody{
			Email:    "not-an-email",
			Password: "short",
		},
	}

	_, _, _, err := parseCreateUserInput(input)
	var validationErr *errs.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Fields, 2)
}

// -- HTTP tests (full Huma stack via humatest) --

func TestHTTP_CreateUser_Success(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		create, ok := a.(*actions.CreateUser)
		return ok && create.Email == "alice@example.com" && create.FullName == "Alice"
	})).Run(func(args mock.Arguments) {
		create := args.Get(1).(*actions.CreateUser)
		// The stored hash must verify against the submitted password.
		assert.True(t, auth.CheckPassword(create.HashedPassword, "supersecret"))
		create.Result = &sqlconfig.User{
			ID:        1,
			Email:     create.Email,
			FullName:  create.FullName,
			IsActive:  true,
			CreatedAt: created,
		}
	}).Return(nil)

	resp := newCreateTestAPI(t, mockOp).Post("/v1/users", CreateUserBody{
		Email:    "alice@example.com",
		FullName: "Alice",
		Password: "supersecret",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body User
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(1), body.ID)
	assert.Equal(t, "alice@example.com", body.Email)
	assert.Equal(t, "Alice", body.FullName)
	assert.True(t, body.IsActive)
	assert.Equal(t, created.Format(time.RFC3339), body.CreatedAt)
	mockOp.AssertExpectations(t)
}

func TestHTTP_CreateUser_NoPasswordInResponse(t *testing.T) {
	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		create := args.Get(1).(*actions.CreateUser)
		create.Result = &sqlconfig.User{ID: 1, Email: create.Email, HashedPassword: "hash", IsActive: true}
	}).Return(nil)

	resp := newCreateTestAPI(t, mockOp).Post("/v1/users", CreateUserBody{
		Email:    "alice@example.com",
		Password: "supersecret",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.NotContains(t, resp.Body.String(), "password")
	assert.NotContains(t, resp.Body.String(), "hash")
}

func TestHTTP_CreateUser_DuplicateEmail(t *testing.T) {
	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).
		Return(errs.NewConflict("user", "alice@example.com"))

	resp := newCreateTestAPI(t, mockOp).Post("/v1/users", CreateUserBody{
		Email:    "alice@example.com",
		Password: "supersecret",
	})

	assert.Equal(t, http.StatusConflict, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_CreateUser_InvalidEmail(t *testing.T) {
	mockOp := new(mockProcessor)

	resp := newCreateTestAPI(t, mockOp).Post("/v1/users", CreateUserBody{
		Email:    "not-an-email",
		Password: "supersecret",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateUser_ShortPassword(t *testing.T) {
	mockOp := new(mockProcessor)

	resp := newCreateTestAPI(t, mockOp).Post("/v1/users", CreateUserBody{
		Email:    "alice@example.com",
		Password: "short",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Contains(t, resp.Body.String(), "body.password")
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateUser_ProcessError(t *testing.T) {
	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).
		Return(errors.New("database unavailable"))

	resp := newCreateTestAPI(t, mockOp).Post("/v1/users", CreateUserBody{
		Email:    "alice@example.com",
		Password: "supersecret",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockOp.AssertExpectations(t)
}
