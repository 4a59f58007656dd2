// Package httperr maps the domain error taxonomy onto huma status errors at
// the API boundary.
package httperr

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/errs"
)

// Map converts a domain error into the matching huma status error. Validation
// failures carry one ErrorDetail per rejected field; anything outside the
// taxonomy becomes a 500 with the given message.
func Map(err error, fallbackMessage string) error {
	var validationErr *errs.ValidationError
	if errors.As(err, &validationErr) {
		details := make([]error, len(validationErr.Fields))
		for i, field := range validationErr.Fields {
			details[i] = &huma.ErrorDetail{
				Location: "body." + field.Field,
				Message:  field.Message,
			}
		}
		return huma.NewError(http.StatusUnprocessableEntity, "validation failed", details...)
	}

	var conflictErr *errs.ConflictError
	if errors.As(err, &conflictErr) {
		return huma.NewError(http.StatusConflict, conflictErr.Error())
	}

	var notFoundErr *errs.NotFoundError
	if errors.As(err, &notFoundErr) {
		return huma.NewError(http.StatusNotFound, notFoundErr.Error())
	}

	return huma.NewError(http.StatusInternalServerError, fallbackMessage, err)
}
