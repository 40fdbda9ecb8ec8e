package factory

import (
	fab "github.com/Goldziher/fabricator"

	"userapp/internal/core/model/request"
)

// NewUserRequest builds a create payload. Fields not overridden by
// customData get short fixed values that pass the width rule.
func NewUserRequest(customData ...map[string]any) request.UserRequest {
	instance := fab.New(request.UserRequest{})

	defaults := map[string]any{
		"Name":        "Jane Doe",
		"MailAddress": "jane@example.com",
		"Password":    "p1",
	}

	for _, data := range customData {
		for key, value := range data {
			defaults[key] = value
		}
	}

	return instance.Build(defaults)
}
