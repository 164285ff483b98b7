package errors

import (
	"net/http"
	"testing"

	"allserve/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestKind_HTTPCodeAndStatus(t *testing.T) {
	tests := []struct {
		kind   Kind
		code   int
		status string
	}{
		{KindUnauthenticated, http.StatusUnauthorized, "UNAUTHENTICATED"},
		{KindPermissionDenied, http.StatusForbidden, "PERMISSION_DENIED"},
		{KindNotFound, http.StatusNotFound, "NOT_FOUND"},
		{KindFailedPrecondition, http.StatusBadRequest, "FAILED_PRECONDITION"},
		{KindAlreadyExists, http.StatusConflict, "ALREADY_EXISTS"},
		{KindInvalidArgument, http.StatusBadRequest, "INVALID_ARGUMENT"},
		{KindInternal, http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.code, tt.kind.HTTPCode())
			assert.Equal(t, tt.status, tt.kind.Status())
		})
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(ErrBookingNotFound))
	assert.Equal(t, KindNotFound, KindOf(ErrBookingNotFound.WrapMessage("lookup")))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, KindInternal, KindOf(NewDatabaseExecuteError(errors.New("io"), "read")))
}

func TestBaseError_WithMessageKeepsIdentity(t *testing.T) {
	err := ErrPermissionDenied.WithMessage("Only provider can accept bookings")

	assert.Equal(t, "Only provider can accept bookings", err.Error())
	assert.True(t, errors.Is(err, ErrPermissionDenied))
	assert.False(t, errors.Is(err, ErrAdminRequired))
	assert.Equal(t, KindPermissionDenied, err.Kind())
}
