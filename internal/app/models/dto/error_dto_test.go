package dto

import (
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleValidationErrorFieldErrors(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
		Age   int    `validate:"min=18"`
	}

	err := validator.New().Struct(payload{Email: "not-an-email", Age: 12})
	require.Error(t, err)

	detail := HandleValidationError(err)
	assert.Equal(t, ErrorCodeValidationFailed, detail.Code)

	details, ok := detail.Details.([]string)
	require.True(t, ok)
	assert.Contains(t, details, "Email must be a valid email address")
	assert.Contains(t, details, "Age must be at least 18")
}

func TestHandleValidationErrorPlainError(t *testing.T) {
	detail := HandleValidationError(fmt.Errorf("unexpected EOF"))
	assert.Equal(t, ErrorCodeValidationFailed, detail.Code)
	assert.Equal(t, "unexpected EOF", detail.Details)
}

func TestHandleValidationErrorNil(t *testing.T) {
	detail := HandleValidationError(nil)
	assert.Equal(t, ErrorCodeValidationFailed, detail.Code)
	assert.Nil(t, detail.Details)
}
