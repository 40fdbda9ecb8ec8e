package repository_test

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"userapp/internal/adapter/database/sqldb"
	"userapp/internal/adapter/database/sqldb/repository"
	"userapp/internal/core/domain"
	"userapp/internal/core/port"
	"userapp/internal/core/telemetry"
	. "userapp/pkg/test"
)

type UserRepositoryTestSuite struct {
	suite.Suite
	db   *sqldb.DB
	repo port.UserRepository
	now  time.Time
}

func (s *UserRepositoryTestSuite) SetupTest() {
	s.db = InitTestDB()
	s.repo = repository.NewUserRepository(s.db, telemetry.NewNoOpTelemetry())
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func (s *UserRepositoryTestSuite) TearDownTest() {
	s.db.Close()
}

func TestUserRepositoryTestSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(UserRepositoryTestSuite))
}

func (s *UserRepositoryTestSuite) create(name string) int64 {
	id, err := s.repo.Create(context.Background(), domain.User{
		Name:        name,
		MailAddress: name + "@example.com",
		Password:    "p1",
		CreatedAt:   s.now,
		UpdatedAt:   s.now,
	})

	s.Require().NoError(err)

	return id
}

func (s *UserRepositoryTestSuite) TestCreate_AssignsSequentialIDs() {
	Expect(s.create("u1")).To(Equal(int64(1)))
	Expect(s.create("u2")).To(Equal(int64(2)))
}

func (s *UserRepositoryTestSuite) TestFindByID_ReturnsStoredRow() {
	id := s.create("u1")

	user, err := s.repo.FindByID(context.Background(), id)

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "u1", user.Name)
	assert.Equal(s.T(), "u1@example.com", user.MailAddress)
	assert.Equal(s.T(), "p1", user.Password)
	assert.True(s.T(), user.CreatedAt.Equal(s.now))
	assert.True(s.T(), user.UpdatedAt.Equal(user.CreatedAt))
	assert.Nil(s.T(), user.DeletedAt)
}

func (s *UserRepositoryTestSuite) TestFindByID_NotFound() {
	_, err := s.repo.FindByID(context.Background(), 99)

	Expect(err).To(MatchError(domain.ErrNotFound))
	assert.EqualError(s.T(), err, "user 99: record not found")
}

func (s *UserRepositoryTestSuite) TestFindAll_EmptyTable() {
	users, err := s.repo.FindAll(context.Background())

	assert.NoError(s.T(), err)
	Expect(users).NotTo(BeNil())
	Expect(users).To(BeEmpty())
}

func (s *UserRepositoryTestSuite) TestFindAll_IncludesSoftDeleted() {
	s.create("u1")
	id := s.create("u2")

	deleted, err := s.repo.SoftDelete(context.Background(), id, s.now.Add(time.Minute))
	s.Require().NoError(err)
	s.Require().True(deleted)

	users, err := s.repo.FindAll(context.Background())

	assert.NoError(s.T(), err)
	Expect(users).To(HaveLen(2))
	Expect(users[0].ID).To(Equal(int64(1)))
	Expect(users[1].IsDeleted()).To(BeTrue())
	Expect(users[1].DeletedAt.Equal(s.now.Add(time.Minute))).To(BeTrue())
}

func (s *UserRepositoryTestSuite) TestUpdate_ChangesPasswordAndUpdatedAt() {
	id := s.create("u1")
	later := s.now.Add(time.Hour)

	updated, err := s.repo.Update(context.Background(), domain.User{ID: id, Password: "p2", UpdatedAt: later})

	assert.NoError(s.T(), err)
	assert.True(s.T(), updated)

	user, err := s.repo.FindByID(context.Background(), id)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "p2", user.Password)
	assert.True(s.T(), user.UpdatedAt.Equal(later))
	assert.True(s.T(), user.CreatedAt.Equal(s.now))
}

func (s *UserRepositoryTestSuite) TestUpdate_UnknownID() {
	updated, err := s.repo.Update(context.Background(), domain.User{ID: 42, Password: "p2", UpdatedAt: s.now})

	assert.NoError(s.T(), err)
	assert.False(s.T(), updated)
}

func (s *UserRepositoryTestSuite) TestSoftDelete_UnknownID() {
	deleted, err := s.repo.SoftDelete(context.Background(), 42, s.now)

	assert.NoError(s.T(), err)
	assert.False(s.T(), deleted)
}

func (s *UserRepositoryTestSuite) TestHardDelete_RemovesRow() {
	id := s.create("u1")

	rows, err := s.repo.HardDelete(context.Background(), id)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), rows)

	rows, err = s.repo.HardDelete(context.Background(), id)
	assert.NoError(s.T(), err)
	assert.Zero(s.T(), rows)

	_, err = s.repo.FindByID(context.Background(), id)
	Expect(err).To(MatchError(domain.ErrNotFound))
}

func (s *UserRepositoryTestSuite) TestAlive() {
	alive, err := s.repo.Alive(context.Background())

	assert.NoError(s.T(), err)
	assert.True(s.T(), alive)
}

func (s *UserRepositoryTestSuite) TestClosedPool_ReturnsStoreError() {
	s.db.Close()

	_, err := s.repo.FindAll(context.Background())

	Expect(err).To(MatchError(domain.ErrStore))

	alive, err := s.repo.Alive(context.Background())
	assert.False(s.T(), alive)
	assert.ErrorIs(s.T(), err, domain.ErrStore)
}

func (s *UserRepositoryTestSuite) TestReleasesConnectionAfterEachOperation() {
	id := s.create("u1")

	_, _ = s.repo.FindByID(context.Background(), 99)
	_, _ = s.repo.FindByID(context.Background(), id)
	_, _ = s.repo.HardDelete(context.Background(), 99)

	Expect(s.db.Stats().InUse).To(Equal(0))
}
