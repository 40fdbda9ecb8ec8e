package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"userapp/internal/core/domain"
	"userapp/internal/core/port"
	tel "userapp/internal/core/telemetry"
)

const (
	userTable  = `"user"`
	userEntity = "user"

	aliveMarker int16 = 150
)

var userColumns = []string{"id", "name", "mailadress", "password", "created_at", "updated_at", "deleted_at"}

// Pool is the part of pgxpool.Pool the repository needs.
type Pool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type UserRepository struct {
	pool      Pool
	builder   sq.StatementBuilderType
	telemetry port.Telemetry
}

func NewUserRepository(pool Pool, telemetry port.Telemetry) port.UserRepository {
	if telemetry == nil {
		telemetry = tel.NewNoOpTelemetry()
	}

	return &UserRepository{
		pool:      pool,
		builder:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		telemetry: telemetry,
	}
}

func (ur *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}

	err := ur.withTx(ctx, "find_all", func(ctx context.Context, tx pgx.Tx) error {
		stmt, args, err := ur.builder.Select(userColumns...).
			From(userTable).
			OrderBy("id ASC").
			ToSql()

		if err != nil {
			return err
		}

		rows, err := tx.Query(ctx, stmt, args...)

		if err != nil {
			return err
		}

		defer rows.Close()

		for rows.Next() {
			user, err := scanUser(rows)

			if err != nil {
				return err
			}

			users = append(users, user)
		}

		return rows.Err()
	})

	if err != nil {
		return []domain.User{}, err
	}

	return users, nil
}

func (ur *UserRepository) FindByID(ctx context.Context, id int64) (domain.User, error) {
	var user domain.User

	err := ur.withTx(ctx, "find_by_id", func(ctx context.Context, tx pgx.Tx) error {
		stmt, args, err := ur.builder.Select(userColumns...).
			From(userTable).
			Where(sq.Eq{"id": id}).
			Limit(1).
			ToSql()

		if err != nil {
			return err
		}

		user, err = scanUser(tx.QueryRow(ctx, stmt, args...))

		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NotFound(userEntity, id)
		}

		return err
	})

	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}

func (ur *UserRepository) Create(ctx context.Context, user domain.User) (int64, error) {
	var id int64

	err := ur.withTx(ctx, "create", func(ctx context.Context, tx pgx.Tx) error {
		stmt, args, err := ur.builder.Insert(userTable).
			Columns("name", "mailadress", "password", "created_at", "updated_at").
			Values(user.Name, user.MailAddress, user.Password, user.CreatedAt, user.UpdatedAt).
			Suffix("RETURNING id").
			ToSql()

		if err != nil {
			return err
		}

		return tx.QueryRow(ctx, stmt, args...).Scan(&id)
	})

	if err != nil {
		return 0, err
	}

	return id, nil
}

func (ur *UserRepository) Update(ctx context.Context, user domain.User) (bool, error) {
	rows, err := ur.exec(ctx, "update", ur.builder.Update(userTable).
		Set("password", user.Password).
		Set("updated_at", user.UpdatedAt).
		Where(sq.Eq{"id": user.ID}))

	return rows > 0, err
}

func (ur *UserRepository) SoftDelete(ctx context.Context, id int64, at time.Time) (bool, error) {
	rows, err := ur.exec(ctx, "soft_delete", ur.builder.Update(userTable).
		Set("deleted_at", at).
		Where(sq.Eq{"id": id}))

	return rows > 0, err
}

func (ur *UserRepository) HardDelete(ctx context.Context, id int64) (int64, error) {
	return ur.exec(ctx, "hard_delete", ur.builder.Delete(userTable).
		Where(sq.Eq{"id": id}))
}

func (ur *UserRepository) Alive(ctx context.Context) (bool, error) {
	var got int16

	err := ur.withTx(ctx, "alive", func(ctx context.Context, tx pgx.Tx) error {
		stmt, args, err := ur.builder.Select().Column(sq.Expr("?::smallint", aliveMarker)).ToSql()

		if err != nil {
			return err
		}

		return tx.QueryRow(ctx, stmt, args...).Scan(&got)
	})

	if err != nil {
		return false, err
	}

	return got == aliveMarker, nil
}

func (ur *UserRepository) exec(ctx context.Context, operation string, query sq.Sqlizer) (int64, error) {
	var affected int64

	err := ur.withTx(ctx, operation, func(ctx context.Context, tx pgx.Tx) error {
		stmt, args, err := query.ToSql()

		if err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, stmt, args...)

		if err != nil {
			return err
		}

		affected = tag.RowsAffected()

		return nil
	})

	if err != nil {
		return 0, err
	}

	return affected, nil
}

func (ur *UserRepository) withTx(ctx context.Context, operation string, fn func(context.Context, pgx.Tx) error) (err error) {
	ctx, span := ur.telemetry.StartRepositorySpan(ctx, operation, userEntity, nil)
	defer span.End()

	start := time.Now()

	defer func() {
		err = domain.NewStoreError(operation, err)
		ur.telemetry.RecordRepositoryOperation(ctx, operation, userEntity, time.Since(start), err)
	}()

	tx, err := ur.pool.Begin(ctx)

	if err != nil {
		return err
	}

	// no-op once Commit has succeeded
	defer tx.Rollback(ctx)

	if err := fn(ctx, tx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func scanUser(row pgx.Row) (domain.User, error) {
	var user domain.User

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.MailAddress,
		&user.Password,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.DeletedAt,
	)

	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}
