package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// ListAccountsInput is the Huma input for listing a user's accounts.
type ListAccountsInput struct {
	UserID int64 `path:"userID" doc:"Owning user ID"`
}

// ListAccountsResponseBody is the response body for listing accounts.
type ListAccountsResponseBody struct {
	Accounts []Account `json:"accounts" doc:"The user's accounts"`
}

// ListAccountsOutput is the Huma output for listing accounts.
type ListAccountsOutput struct {
	Body ListAccountsResponseBody
}

// accountLister is the interface for listing a user's accounts.
type accountLister interface {
	ListAccounts(ctx context.Context, userID int64) ([]service.Account, error)
}

// ListAccountsHandler handles GET /v1/users/{userID}/accounts.
type ListAccountsHandler struct {
	AccountService accountLister
}

// NewListAccountsHandler creates a new ListAccountsHandler.
func NewListAccountsHandler(svc accountLister) *ListAccountsHandler {
	return &ListAccountsHandler{AccountService: svc}
}

// Register registers the list accounts endpoint with the Huma API.
func (h *ListAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-accounts",
		Method:      http.MethodGet,
		Path:        "/v1/users/{userID}/accounts",
		Summary:     "List accounts",
		Description: "Returns all accounts owned by the user.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *ListAccountsHandler) handle(ctx context.Context, input *ListAccountsInput) (*ListAccountsOutput, error) {
	accounts, err := h.AccountService.ListAccounts(ctx, input.UserID)
	if err != nil {
		return nil, httperr.Map(err, "failed to list accounts")
	}

	resp := ListAccountsResponseBody{Accounts: make([]Account, len(accounts))}
	for i, a := range accounts {
		resp.Accounts[i] = fromService(a)
	}

	return &ListAccountsOutput{Body: resp}, nil
}
