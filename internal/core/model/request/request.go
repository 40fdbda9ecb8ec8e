package request

// UserRequest carries no content rules: empty strings are accepted.
// The width limit mirrors the VARCHAR(255) columns.
type UserRequest struct {
	Name        string `json:"name" validate:"max=255"`
	MailAddress string `json:"mailadress" validate:"max=255"`
	Password    string `json:"password" validate:"max=255"`
}

type UpdateRequest struct {
	Password string `json:"password" validate:"max=255"`
}

type KVRequest struct {
	ID string `form:"id" validate:"required,max=512"`
}
