package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/bet_tracker/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_UnwrapsToSentinel(t *testing.T) {
	err := fmt.Errorf("importing: %w", apperrors.NewAppError(422, "bad upload", apperrors.ErrValidation))

	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	var appErr *apperrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, 422, appErr.Code)
	assert.Equal(t, "importing: bad upload: validation error", err.Error())
}

func TestAppError_WithoutCause(t *testing.T) {
	err := apperrors.NewAppError(500, "just a message", nil)
	assert.Equal(t, "just a message", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
