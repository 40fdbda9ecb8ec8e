package response

import (
	"time"

	"userapp/internal/core/domain"
)

type UserResponse struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	MailAddress string     `json:"mailadress"`
	Password    string     `json:"password"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at"`
}

func NewUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		MailAddress: u.MailAddress,
		Password:    u.Password,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
		DeletedAt:   u.DeletedAt,
	}
}

func NewUserResponses(users []domain.User) []UserResponse {
	data := make([]UserResponse, 0, len(users))

	for _, u := range users {
		data = append(data, NewUserResponse(u))
	}

	return data
}

type CreatedResponse struct {
	ID int64 `json:"id"`
}

type UpdatedResponse struct {
	Updated bool `json:"updated"`
}

type DeletedResponse struct {
	Deleted bool `json:"deleted"`
}

type RemovedResponse struct {
	Rows int64 `json:"rows"`
}

type ListResponse struct {
	Size int `json:"size"`
	Data any `json:"data"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ResponseError struct {
	Code    string            `json:"code"`
	Errors  []ValidationError `json:"errors"`
	Details any               `json:"details,omitempty"`
}

type SuccessResponse struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error ResponseError `json:"error"`
}
