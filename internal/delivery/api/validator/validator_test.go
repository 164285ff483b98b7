package validator

import (
	"testing"

	domainerrors "allserve/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	BookingID string `json:"bookingId" validate:"required"`
	Rating    int    `json:"rating" validate:"min=1,max=5"`
}

func TestValidate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sample{BookingID: "bk-1", Rating: 3}))

	err := v.Validate(&sample{Rating: 9})
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindInvalidArgument, domainerrors.KindOf(err))
	assert.Contains(t, err.Error(), "bookingId")
	assert.Contains(t, err.Error(), "rating")
}
