package http

import (
	"errors"
	"net/http"
	"testing"

	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "not found maps to 404",
			err:  errs.NewObjectNotFoundError("order", int64(9000)),
			want: http.StatusNotFound,
		},
		{
			name: "invalid state transition maps to 409",
			err:  errs.NewInvalidStateTransitionError("Received", "Pending"),
			want: http.StatusConflict,
		},
		{
			name: "business rule violation maps to 400",
			err:  errs.NewBusinessRuleError("supplier is not active", errs.CodeSupplierInactive),
			want: http.StatusBadRequest,
		},
		{
			name: "invalid value maps to 400",
			err:  errs.NewValueIsRequiredError("delivery address"),
			want: http.StatusBadRequest,
		},
		{
			name: "out of range maps to 400",
			err:  errs.NewValueIsOutOfRangeError("delivery address length", 2, 5, 500),
			want: http.StatusBadRequest,
		},
		{
			name: "unexpected error maps to 500",
			err:  errors.New("connection refused"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorStatus(tt.err))
		})
	}
}

func TestErrorStatus_WrappedErrors(t *testing.T) {
	wrapped := errors.Join(errors.New("handling request"),
		errs.NewObjectNotFoundError("order", int64(1)))
	assert.Equal(t, http.StatusNotFound, errorStatus(wrapped))
}
