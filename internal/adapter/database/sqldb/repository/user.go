package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"userapp/internal/adapter/database/sqldb"
	"userapp/internal/core/domain"
	"userapp/internal/core/port"
	tel "userapp/internal/core/telemetry"
)

const (
	userTable  = "user"
	userEntity = "user"

	// aliveMarker is echoed back by the store on /alive.
	aliveMarker int16 = 150
)

var userColumns = []string{"id", "name", "mailadress", "password", "created_at", "updated_at", "deleted_at"}

type UserRepository struct {
	db        *sqldb.DB
	telemetry port.Telemetry
}

func NewUserRepository(db *sqldb.DB, telemetry port.Telemetry) port.UserRepository {
	if telemetry == nil {
		telemetry = tel.NewNoOpTelemetry()
	}

	return &UserRepository{
		db:        db,
		telemetry: telemetry,
	}
}

func (ur *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}

	err := ur.withTx(ctx, "find_all", func(ctx context.Context, tx *sql.Tx) error {
		stmt, args, err := ur.db.QueryBuilder.Select(userColumns...).
			From(userTable).
			OrderBy("id ASC").
			ToSql()

		if err != nil {
			return err
		}

		rows, err := tx.QueryContext(ctx, stmt, args...)

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

	err := ur.withTx(ctx, "find_by_id", func(ctx context.Context, tx *sql.Tx) error {
		stmt, args, err := ur.db.QueryBuilder.Select(userColumns...).
			From(userTable).
			Where(sq.Eq{"id": id}).
			Limit(1).
			ToSql()

		if err != nil {
			return err
		}

		user, err = scanUser(tx.QueryRowContext(ctx, stmt, args...))

		if errors.Is(err, sql.ErrNoRows) {
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

	err := ur.withTx(ctx, "create", func(ctx context.Context, tx *sql.Tx) error {
		stmt, args, err := ur.db.QueryBuilder.Insert(userTable).
			Columns("name", "mailadress", "password", "created_at", "updated_at").
			Values(user.Name, user.MailAddress, user.Password, user.CreatedAt, user.UpdatedAt).
			ToSql()

		if err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, stmt, args...)

		if err != nil {
			return err
		}

		id, err = result.LastInsertId()

		return err
	})

	if err != nil {
		return 0, err
	}

	return id, nil
}

func (ur *UserRepository) Update(ctx context.Context, user domain.User) (bool, error) {
	rows, err := ur.exec(ctx, "update", ur.db.QueryBuilder.Update(userTable).
		Set("password", user.Password).
		Set("updated_at", user.UpdatedAt).
		Where(sq.Eq{"id": user.ID}))

	return rows > 0, err
}

func (ur *UserRepository) SoftDelete(ctx context.Context, id int64, at time.Time) (bool, error) {
	rows, err := ur.exec(ctx, "soft_delete", ur.db.QueryBuilder.Update(userTable).
		Set("deleted_at", at).
		Where(sq.Eq{"id": id}))

	return rows > 0, err
}

func (ur *UserRepository) HardDelete(ctx context.Context, id int64) (int64, error) {
	return ur.exec(ctx, "hard_delete", ur.db.QueryBuilder.Delete(userTable).
		Where(sq.Eq{"id": id}))
}

// Alive round-trips a constant through the store.
func (ur *UserRepository) Alive(ctx context.Context) (bool, error) {
	var got int16

	err := ur.withTx(ctx, "alive", func(ctx context.Context, tx *sql.Tx) error {
		stmt, args, err := ur.db.QueryBuilder.Select().Column(sq.Expr("?", aliveMarker)).ToSql()

		if err != nil {
			return err
		}

		return tx.QueryRowContext(ctx, stmt, args...).Scan(&got)
	})

	if err != nil {
		return false, err
	}

	return got == aliveMarker, nil
}

func (ur *UserRepository) exec(ctx context.Context, operation string, query sq.Sqlizer) (int64, error) {
	var affected int64

	err := ur.withTx(ctx, operation, func(ctx context.Context, tx *sql.Tx) error {
		stmt, args, err := query.ToSql()

		if err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, stmt, args...)

		if err != nil {
			return err
		}

		affected, err = result.RowsAffected()

		return err
	})

	if err != nil {
		return 0, err
	}

	return affected, nil
}

// withTx checks out one connection, runs fn in a transaction and commits only
// when fn succeeds. The deferred rollback releases the connection on every
// other path.
func (ur *UserRepository) withTx(ctx context.Context, operation string, fn func(context.Context, *sql.Tx) error) (err error) {
	ctx, span := ur.telemetry.StartRepositorySpan(ctx, operation, userEntity, nil)
	defer span.End()

	start := time.Now()

	defer func() {
		err = domain.NewStoreError(operation, err)
		ur.telemetry.RecordRepositoryOperation(ctx, operation, userEntity, time.Since(start), err)
	}()

	tx, err := ur.db.BeginTx(ctx, nil)

	if err != nil {
		return err
	}

	defer tx.Rollback()

	if err := fn(ctx, tx); err != nil {
		return err
	}

	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		user      domain.User
		deletedAt sql.NullTime
	)

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.MailAddress,
		&user.Password,
		&user.CreatedAt,
		&user.UpdatedAt,
		&deletedAt,
	)

	if err != nil {
		return domain.User{}, err
	}

	if deletedAt.Valid {
		user.DeletedAt = &deletedAt.Time
	}

	return user, nil
}
