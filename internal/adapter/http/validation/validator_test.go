package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"userapp/internal/adapter/http/validation"
	"userapp/internal/core/model/request"
)

func TestValidator_AcceptsEmptyFields(t *testing.T) {
	assert.NoError(t, validation.Validator.Struct(request.UserRequest{}))
}

func TestValidator_RejectsOverlongField(t *testing.T) {
	err := validation.Validator.Struct(request.UserRequest{
		Name:        "u1",
		MailAddress: strings.Repeat("m", 256),
	})

	errors := validation.FormatValidationErrors(err)

	assert.Len(t, errors, 1)
	assert.Equal(t, "mailadress", errors[0].Field)
	assert.Equal(t, "mailadress must be at most 255 characters", errors[0].Message)
}

func TestValidator_BoundaryWidth(t *testing.T) {
	err := validation.Validator.Struct(request.UpdateRequest{Password: strings.Repeat("p", 255)})

	assert.NoError(t, err)
}

func TestValidator_KVRequestNeedsID(t *testing.T) {
	errors := validation.FormatValidationErrors(validation.Validator.Struct(request.KVRequest{}))

	assert.Len(t, errors, 1)
	assert.Equal(t, "id is required", errors[0].Message)
}
