package factory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"userapp/pkg/test/factory"
)

func TestNewUserRequest_Overrides(t *testing.T) {
	req := factory.NewUserRequest(map[string]any{"Password": "secret"})

	assert.Equal(t, "secret", req.Password)
	assert.Equal(t, "Jane Doe", req.Name)
	assert.Equal(t, "jane@example.com", req.MailAddress)
}
