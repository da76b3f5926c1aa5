package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"storehub/internal/errors"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrStoreNotFound.WithDetails("store_id=42")

	assert.True(t, errors.Is(detailed, ErrStoreNotFound))
	assert.False(t, errors.Is(detailed, ErrProductNotFound))
	assert.Equal(t, "Store not found: store_id=42", detailed.Error())
	assert.Equal(t, http.StatusNotFound, detailed.HTTPCode())
}

func TestBaseError_WrapMessage(t *testing.T) {
	wrapped := ErrDuplicateReview.WrapMessage("add review")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "DUPLICATE_REVIEW", appErr.ErrorCode())
	assert.Contains(t, wrapped.Error(), "add review")
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "find store")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "find store", err.Details())
	assert.True(t, errors.Is(err, cause))
}
