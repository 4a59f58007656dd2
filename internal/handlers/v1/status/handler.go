package status

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// pinger verifies a live database connection with a single round trip.
type pinger interface {
	PingContext(ctx context.Context) error
}

// StatusResponse is the response body for the status endpoint.
type StatusResponse struct {
	Status   string `json:"status" doc:"Service status"`
	Database string `json:"database" doc:"Database connectivity"`
}

// StatusOutput is the Huma output for the status endpoint.
type StatusOutput struct {
	Body StatusResponse
}

// Handler handles GET /status.
type Handler struct {
	DB pinger
}

// NewHandler creates a new status Handler.
func NewHandler(db pinger) *Handler {
	return &Handler{DB: db}
}

// Register registers the status endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "status",
		Method:      http.MethodGet,
		Path:        "/status",
		Summary:     "Service status",
		Description: "Verifies database connectivity with a single ping.",
		Tags:        []string{"Status"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, _ *struct{}) (*StatusOutput, error) {
	if err := h.DB.PingContext(ctx); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "database connection failed", err)
	}

	return &StatusOutput{
		Body: StatusResponse{Status: "healthy", Database: "connected"},
	}, nil
}
