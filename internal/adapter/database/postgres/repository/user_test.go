package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"userapp/internal/adapter/database/postgres/repository"
	"userapp/internal/core/domain"
	"userapp/internal/core/port"
)

var columns = []string{"id", "name", "mailadress", "password", "created_at", "updated_at", "deleted_at"}

type UserRepositoryTestSuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	repo port.UserRepository
	now  time.Time
}

func (s *UserRepositoryTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	s.Require().NoError(err)

	s.mock = mock
	s.repo = repository.NewUserRepository(mock, nil)
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func (s *UserRepositoryTestSuite) TearDownTest() {
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
	s.mock.Close()
}

func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}

func (s *UserRepositoryTestSuite) TestFindAll_OrderedByID() {
	deletedAt := s.now.Add(time.Hour)

	s.mock.ExpectBegin()
	s.mock.ExpectQuery(regexp.QuoteMeta(`FROM "user" ORDER BY id ASC`)).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(1), "u1", "u1@example.com", "p1", s.now, s.now, (*time.Time)(nil)).
			AddRow(int64(2), "u2", "u2@example.com", "p2", s.now, s.now, &deletedAt))
	s.mock.ExpectCommit()

	users, err := s.repo.FindAll(context.Background())

	assert.NoError(s.T(), err)
	assert.Len(s.T(), users, 2)
	assert.Equal(s.T(), int64(1), users[0].ID)
	assert.False(s.T(), users[0].IsDeleted())
	assert.True(s.T(), users[1].IsDeleted())
}

func (s *UserRepositoryTestSuite) TestFindAll_EmptyTable() {
	s.mock.ExpectBegin()
	s.mock.ExpectQuery(regexp.QuoteMeta(`FROM "user"`)).
		WillReturnRows(pgxmock.NewRows(columns))
	s.mock.ExpectCommit()

	users, err := s.repo.FindAll(context.Background())

	assert.NoError(s.T(), err)
	assert.NotNil(s.T(), users)
	assert.Empty(s.T(), users)
}

func (s *UserRepositoryTestSuite) TestFindByID_NotFound() {
	s.mock.ExpectBegin()
	s.mock.ExpectQuery(regexp.QuoteMeta(`FROM "user" WHERE id = $1 LIMIT 1`)).
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows(columns))
	s.mock.ExpectRollback()

	_, err := s.repo.FindByID(context.Background(), 42)

	assert.ErrorIs(s.T(), err, domain.ErrNotFound)
	assert.NotErrorIs(s.T(), err, domain.ErrStore)
}

func (s *UserRepositoryTestSuite) TestCreate_ReturnsGeneratedID() {
	s.mock.ExpectBegin()
	s.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "user" (name,mailadress,password,created_at,updated_at) VALUES ($1,$2,$3,$4,$5) RETURNING id`)).
		WithArgs("u1", "u1@example.com", "p1", s.now, s.now).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
	s.mock.ExpectCommit()

	id, err := s.repo.Create(context.Background(), domain.User{
		Name:        "u1",
		MailAddress: "u1@example.com",
		Password:    "p1",
		CreatedAt:   s.now,
		UpdatedAt:   s.now,
	})

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), id)
}

func (s *UserRepositoryTestSuite) TestCreate_RollsBackOnFailure() {
	s.mock.ExpectBegin()
	s.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "user"`)).
		WithArgs("u1", "", "", s.now, s.now).
		WillReturnError(errors.New("unique violation"))
	s.mock.ExpectRollback()

	id, err := s.repo.Create(context.Background(), domain.User{Name: "u1", CreatedAt: s.now, UpdatedAt: s.now})

	assert.Zero(s.T(), id)
	assert.ErrorIs(s.T(), err, domain.ErrStore)
	assert.EqualError(s.T(), err, "create: unique violation")

	var storeErr *domain.StoreError
	assert.ErrorAs(s.T(), err, &storeErr)
	assert.Equal(s.T(), "create", storeErr.Op)
}

func (s *UserRepositoryTestSuite) TestUpdate_AffectedRow() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`UPDATE "user" SET password = $1, updated_at = $2 WHERE id = $3`)).
		WithArgs("p2", s.now, int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	s.mock.ExpectCommit()

	updated, err := s.repo.Update(context.Background(), domain.User{ID: 1, Password: "p2", UpdatedAt: s.now})

	assert.NoError(s.T(), err)
	assert.True(s.T(), updated)
}

func (s *UserRepositoryTestSuite) TestSoftDelete_UnknownID() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`UPDATE "user" SET deleted_at = $1 WHERE id = $2`)).
		WithArgs(s.now, int64(9)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	s.mock.ExpectCommit()

	deleted, err := s.repo.SoftDelete(context.Background(), 9, s.now)

	assert.NoError(s.T(), err)
	assert.False(s.T(), deleted)
}

func (s *UserRepositoryTestSuite) TestHardDelete_RowCount() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "user" WHERE id = $1`)).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	s.mock.ExpectCommit()

	rows, err := s.repo.HardDelete(context.Background(), 1)

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), rows)
}

func (s *UserRepositoryTestSuite) TestAlive_EchoesMarker() {
	s.mock.ExpectBegin()
	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT $1::smallint`)).
		WithArgs(int16(150)).
		WillReturnRows(pgxmock.NewRows([]string{"int2"}).AddRow(int16(150)))
	s.mock.ExpectCommit()

	alive, err := s.repo.Alive(context.Background())

	assert.NoError(s.T(), err)
	assert.True(s.T(), alive)
}

func (s *UserRepositoryTestSuite) TestAlive_BeginFails() {
	s.mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	alive, err := s.repo.Alive(context.Background())

	assert.False(s.T(), alive)
	assert.ErrorIs(s.T(), err, domain.ErrStore)
	assert.EqualError(s.T(), err, "alive: connection refused")
}
