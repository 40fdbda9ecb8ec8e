package domain

import "time"

// User is a row of the user table. Password is stored exactly as received.
type User struct {
	ID          int64
	Name        string
	MailAddress string
	Password    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}
