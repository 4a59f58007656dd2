package user

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// ListUsersResponseBody is the response body for listing users.
type ListUsersResponseBody struct {
	Users []User `json:"users" doc:"All users"`
}

// ListUsersOutput is the Huma output for listing users.
type ListUsersOutput struct {
	Body ListUsersResponseBody
}

// userLister is the interface for listing users.
type userLister interface {
	ListUsers(ctx context.Context) ([]service.User, error)
}

// ListUsersHandler handles GET /v1/users.
type ListUsersHandler struct {
	UserService userLister
}

// NewListUsersHandler creates a new ListUsersHandler.
func NewListUsersHandler(svc userLister) *ListUsersHandler {
	return &ListUsersHandler{UserService: svc}
}

// Register registers the list users endpoint with the Huma API.
func (h *ListUsersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-users",
		Method:      http.MethodGet,
		Path:        "/v1/users",
		Summary:     "List users",
		Description: "Returns all users. Full scan, no pagination.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *ListUsersHandler) handle(ctx context.Context, _ *struct{}) (*ListUsersOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listUsersMs")
	}
	users, err := h.UserService.ListUsers(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.Map(err, "failed to list users")
	}

	if logData != nil {
		logData.AddData("userCount", len(users))
	}

	resp := ListUsersResponseBody{Users: make([]User, len(users))}
	for i, u := range users {
		resp.Users[i] = User{
			ID:        u.ID,
			Email:     u.Email,
			FullName:  u.FullName,
			IsActive:  u.IsActive,
			CreatedAt: u.CreatedAt.Format(time.RFC3339),
		}
	}

	return &ListUsersOutput{Body: resp}, nil
}
