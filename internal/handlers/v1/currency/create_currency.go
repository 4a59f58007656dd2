package currency

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/errs"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/validate"
)

// CreateCurrencyBody is the request body for creating a currency.
type CreateCurrencyBody struct {
	Code string `json:"code" doc:"Currency code, exactly 3 letters"`
	Name string `json:"name" doc:"Display name, at most 50 characters"`
}

// CreateCurrencyInput is the Huma input for creating a currency.
type CreateCurrencyInput struct {
	Body CreateCurrencyBody
}

// CreateCurrencyOutput is the Huma output for creating a currency.
type CreateCurrencyOutput struct {
	Status int
	Body   Currency
}

type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CreateCurrencyHandler handles POST /v1/currencies.
type CreateCurrencyHandler struct {
	Operator actionProcessor
}

// NewCreateCurrencyHandler creates a new CreateCurrencyHandler.
func NewCreateCurrencyHandler(op actionProcessor) *CreateCurrencyHandler {
	return &CreateCurrencyHandler{Operator: op}
}

// Register registers the create currency endpoint with the Huma API.
func (h *CreateCurrencyHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-currency",
		Method:      http.MethodPost,
		Path:        "/v1/currencies",
		Summary:     "Create a currency",
		Description: "Creates a new currency. Currencies are shared reference data.",
		Tags:        []string{"Currencies"},
	}, h.handle)
}

func parseCreateCurrencyInput(input *CreateCurrencyInput) (code, name string, err error) {
	v := &errs.ValidationError{}
	code = validate.CurrencyCode(v, "code", input.Body.Code)
	name = validate.Name(v, "name", input.Body.Name, validate.MaxCurrencyName)
	if v.HasErrors() {
		return "", "", v
	}
	return strings.ToUpper(code), name, nil
}

func (h *CreateCurrencyHandler) handle(ctx context.Context, input *CreateCurrencyInput) (*CreateCurrencyOutput, error) {
	code, name, err := parseCreateCurrencyInput(input)
	if err != nil {
		return nil, httperr.Map(err, "failed to create currency")
	}

	action := &actions.CreateCurrency{Code: code, Name: name}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Map(err, "failed to create currency")
	}

	return &CreateCurrencyOutput{
		Status: http.StatusCreated,
		Body: Currency{
			ID:   action.Result.ID,
			Code: action.Result.Code,
			Name: action.Result.Name,
		},
	}, nil
}
