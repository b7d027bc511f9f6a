package apierror

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finpro-ledger/internal/service"
)

func TestFromService(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "validation", err: &service.ValidationError{Field: "amount", Reason: "must be a number"}, status: http.StatusUnprocessableEntity},
		{name: "not found", err: &service.NotFoundError{ID: "7"}, status: http.StatusNotFound},
		{name: "ownership", err: &service.ForbiddenError{Op: "delete", ID: "7", Err: errors.New("denied")}, status: http.StatusForbidden},
		{name: "backend", err: &service.BackendUnavailableError{Op: "create", Err: errors.New("down")}, status: http.StatusServiceUnavailable},
		{name: "cancelled", err: context.Canceled, status: http.StatusServiceUnavailable},
		{name: "other", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var statusErr huma.StatusError
			require.ErrorAs(t, FromService(tt.err, "failed"), &statusErr)
			assert.Equal(t, tt.status, statusErr.GetStatus())
		})
	}
}

func TestFromService_ValidationNamesField(t *testing.T) {
	err := FromService(&service.ValidationError{Field: "description", Reason: "must not be empty"}, "failed to create transaction")

	var model *huma.ErrorModel
	require.ErrorAs(t, err, &model)
	require.Len(t, model.Errors, 1)
	assert.Equal(t, "body.description", model.Errors[0].Location)
	assert.Equal(t, "must not be empty", model.Errors[0].Message)
}
