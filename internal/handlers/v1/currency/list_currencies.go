package currency

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// ListCurrenciesResponseBody is the response body for listing currencies.
type ListCurrenciesResponseBody struct {
	Currencies []Currency `json:"currencies" doc:"All currencies"`
}

// ListCurrenciesOutput is the Huma output for listing currencies.
type ListCurrenciesOutput struct {
	Body ListCurrenciesResponseBody
}

// currencyLister is the interface for listing currencies.
type currencyLister interface {
	ListCurrencies(ctx context.Context) ([]service.Currency, error)
}

// ListCurrenciesHandler handles GET /v1/currencies.
type ListCurrenciesHandler struct {
	CurrencyService currencyLister
}

// NewListCurrenciesHandler creates a new ListCurrenciesHandler.
func NewListCurrenciesHandler(svc currencyLister) *ListCurrenciesHandler {
	return &ListCurrenciesHandler{CurrencyService: svc}
}

// Register registers the list currencies endpoint with the Huma API.
func (h *ListCurrenciesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-currencies",
		Method:      http.MethodGet,
		Path:        "/v1/currencies",
		Summary:     "List currencies",
		Description: "Returns all currencies.",
		Tags:        []string{"Currencies"},
	}, h.handle)
}

func (h *ListCurrenciesHandler) handle(ctx context.Context, _ *struct{}) (*ListCurrenciesOutput, error) {
	currencies, err := h.CurrencyService.ListCurrencies(ctx)
	if err != nil {
		return nil, httperr.Map(err, "failed to list currencies")
	}

	resp := ListCurrenciesResponseBody{Currencies: make([]Currency, len(currencies))}
	for i, c := range currencies {
		resp.Currencies[i] = Currency{ID: c.ID, Code: c.Code, Name: c.Name}
	}

	return &ListCurrenciesOutput{Body: resp}, nil
}
