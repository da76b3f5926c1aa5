package validator

import (
	"testing"

	domainerrors "storehub/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Role   string `json:"role" validate:"required,oneof=customer vendor"`
	Rating int    `json:"rating" validate:"min=1,max=5"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sampleRequest{Email: "a@example.com", Role: "vendor", Rating: 3}))

	err := v.Validate(&sampleRequest{Email: "nope", Role: "admin", Rating: 9})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "email must be a valid email address")
	assert.Contains(t, appErr.Details(), "role must be one of [customer vendor]")
	assert.Contains(t, appErr.Details(), "rating must be at most 5")
}
