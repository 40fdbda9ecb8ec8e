package port

import (
	"context"
	"time"

	"userapp/internal/core/domain"
	"userapp/internal/core/model/request"
)

// UserRepository is the data access layer over the user table. Every call
// runs inside its own transaction on a single pooled connection.
type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id int64) (domain.User, error)
	Create(ctx context.Context, user domain.User) (int64, error)
	Update(ctx context.Context, user domain.User) (bool, error)
	SoftDelete(ctx context.Context, id int64, at time.Time) (bool, error)
	HardDelete(ctx context.Context, id int64) (int64, error)
	Alive(ctx context.Context) (bool, error)
}

type UserService interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id int64) (domain.User, error)
	Create(ctx context.Context, req request.UserRequest) (int64, error)
	Update(ctx context.Context, id int64, req request.UpdateRequest) (bool, error)
	SoftDelete(ctx context.Context, id int64) (bool, error)
	HardDelete(ctx context.Context, id int64) (int64, error)
	Alive(ctx context.Context) (bool, error)
}
