package service

import (
	"context"
	"time"

	"userapp/internal/core/domain"
	"userapp/internal/core/model/request"
	"userapp/internal/core/port"
	tel "userapp/internal/core/telemetry"
)

const userServiceName = "user"

type UserService struct {
	repo      port.UserRepository
	telemetry port.Telemetry
	now       func() time.Time
}

func NewUserService(repo port.UserRepository, telemetry port.Telemetry) *UserService {
	if telemetry == nil {
		telemetry = tel.NewNoOpTelemetry()
	}

	return &UserService{
		repo:      repo,
		telemetry: telemetry,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the clock used to stamp created_at, updated_at and deleted_at.
func (s *UserService) WithClock(now func() time.Time) *UserService {
	s.now = now
	return s
}

func (s *UserService) FindAll(ctx context.Context) ([]domain.User, error) {
	var users []domain.User

	err := s.observe(ctx, "find_all", func(ctx context.Context) (err error) {
		users, err = s.repo.FindAll(ctx)
		return err
	})

	return users, err
}

func (s *UserService) FindByID(ctx context.Context, id int64) (domain.User, error) {
	var user domain.User

	err := s.observe(ctx, "find_by_id", func(ctx context.Context) (err error) {
		user, err = s.repo.FindByID(ctx, id)
		return err
	})

	return user, err
}

func (s *UserService) Create(ctx context.Context, req request.UserRequest) (int64, error) {
	var id int64

	err := s.observe(ctx, "create", func(ctx context.Context) (err error) {
		now := s.now()

		id, err = s.repo.Create(ctx, domain.User{
			Name:        req.Name,
			MailAddress: req.MailAddress,
			Password:    req.Password,
			CreatedAt:   now,
			UpdatedAt:   now,
		})

		return err
	})

	return id, err
}

func (s *UserService) Update(ctx context.Context, id int64, req request.UpdateRequest) (bool, error) {
	var updated bool

	err := s.observe(ctx, "update", func(ctx context.Context) (err error) {
		updated, err = s.repo.Update(ctx, domain.User{
			ID:        id,
			Password:  req.Password,
			UpdatedAt: s.now(),
		})

		return err
	})

	return updated, err
}

func (s *UserService) SoftDelete(ctx context.Context, id int64) (bool, error) {
	var deleted bool

	err := s.observe(ctx, "soft_delete", func(ctx context.Context) (err error) {
		deleted, err = s.repo.SoftDelete(ctx, id, s.now())
		return err
	})

	return deleted, err
}

func (s *UserService) HardDelete(ctx context.Context, id int64) (int64, error) {
	var rows int64

	err := s.observe(ctx, "hard_delete", func(ctx context.Context) (err error) {
		rows, err = s.repo.HardDelete(ctx, id)
		return err
	})

	return rows, err
}

func (s *UserService) Alive(ctx context.Context) (bool, error) {
	var alive bool

	err := s.observe(ctx, "alive", func(ctx context.Context) (err error) {
		alive, err = s.repo.Alive(ctx)
		return err
	})

	return alive, err
}

func (s *UserService) observe(ctx context.Context, operation string, fn func(context.Context) error) error {
	ctx, span := s.telemetry.StartServiceSpan(ctx, userServiceName, operation, nil)
	defer span.End()

	start := time.Now()
	err := fn(ctx)

	s.telemetry.RecordServiceOperation(ctx, userServiceName, operation, time.Since(start), err)

	return err
}
