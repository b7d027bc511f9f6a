// Package apierror maps service errors onto HTTP problem responses.
package apierror

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finpro-ledger/internal/service"
)

// FromService converts err into a huma error. message describes the failed operation.
func FromService(err error, message string) error {
	var validationErr *service.ValidationError
	var notFoundErr *service.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		return huma.Error422UnprocessableEntity(message, &huma.ErrorDetail{
			Message:  validationErr.Reason,
			Location: "body." + validationErr.Field,
		})
	case errors.As(err, &notFoundErr):
		return huma.Error404NotFound(message, err)
	case errors.Is(err, service.ErrForbidden):
		return huma.Error403Forbidden(message, err)
	case errors.Is(err, service.ErrBackendUnavailable),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return huma.Error503ServiceUnavailable(message, err)
	default:
		return huma.NewError(http.StatusInternalServerError, message, err)
	}
}
