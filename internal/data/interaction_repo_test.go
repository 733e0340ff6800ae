package data

import (
	"context"
	"io"
	"testing"
	"time"

	"feed-engagement/ent"
	"feed-engagement/ent/enttest"
	"feed-engagement/internal/domain"

	"github.com/go-kratos/kratos/v2/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/suite"
)

type InteractionRepoTestSuite struct {
	suite.Suite
	client *ent.Client
	sut    domain.InteractionRepository
}

func TestInteractionRepoTestSuite(t *testing.T) {
	suite.Run(t, new(InteractionRepoTestSuite))
}

func (s *InteractionRepoTestSuite) SetupTest() {
	s.client = enttest.Open(s.T(), "sqlite3", "file:interaction_repo_test?mode=memory&cache=shared&_fk=1")
	s.sut = NewInteractionRepo(&Data{db: s.client}, log.NewStdLogger(io.Discard))
}

func (s *InteractionRepoTestSuite) TearDownTest() {
	if s.client != nil {
		s.client.Close()
	}
}

func (s *InteractionRepoTestSuite) i64(v int64) *int64 { return &v }

func (s *InteractionRepoTestSuite) append(userID, itemID *int64, category domain.Category, at time.Time) *domain.Interaction {
	it, err := domain.NewInteraction(userID, itemID, category, domain.SurfaceHome, 1)
	s.Require().NoError(err)
	stored := domain.ReconstructInteraction(0, it.UserID(), it.ItemID(), it.Category(), it.Surface(), it.Position(), at)
	s.Require().NoError(s.sut.Append(context.Background(), stored))
	return stored
}

func (s *InteractionRepoTestSuite) TestAppendAssignsID() {
	// Arrange
	it, err := domain.NewInteraction(s.i64(1), s.i64(10), domain.CategoryClick, domain.SurfaceSearch, 3)
	s.Require().NoError(err)

	// Act
	err = s.sut.Append(context.Background(), it)

	// Assert
	s.Require().NoError(err)
	s.Positive(it.ID())
}

func (s *InteractionRepoTestSuite) TestAppendStoresAnonymousAndItemless() {
	// Arrange
	it, err := domain.NewInteraction(nil, nil, domain.CategoryImpression, domain.SurfaceHome, 1)
	s.Require().NoError(err)

	// Act
	err = s.sut.Append(context.Background(), it)

	// Assert
	s.Require().NoError(err)
	got, err := s.client.InteractionEvent.Get(context.Background(), int(it.ID()))
	s.Require().NoError(err)
	s.Nil(got.UserID)
	s.Nil(got.ItemID)
}

func (s *InteractionRepoTestSuite) TestListByItemOrdersOldestFirst() {
	// Arrange
	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	s.append(s.i64(1), s.i64(10), domain.CategoryClick, base.Add(2*time.Minute))
	s.append(s.i64(2), s.i64(10), domain.CategoryImpression, base)
	s.append(s.i64(1), s.i64(10), domain.CategoryReaction, base.Add(time.Minute))
	s.append(s.i64(1), s.i64(99), domain.CategoryClick, base)

	// Act
	got, err := s.sut.ListByItem(context.Background(), 10)

	// Assert
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Equal(domain.CategoryImpression, got[0].Category())
	s.Equal(domain.CategoryReaction, got[1].Category())
	s.Equal(domain.CategoryClick, got[2].Category())
}

func (s *InteractionRepoTestSuite) TestListByUserAndItemOrdersNewestFirst() {
	// Arrange
	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	s.append(s.i64(1), s.i64(10), domain.CategoryImpression, base)
	s.append(s.i64(1), s.i64(10), domain.CategoryClick, base.Add(time.Minute))
	s.append(s.i64(2), s.i64(10), domain.CategoryClick, base.Add(time.Hour))
	s.append(s.i64(1), s.i64(99), domain.CategoryClick, base.Add(time.Hour))

	// Act
	got, err := s.sut.ListByUserAndItem(context.Background(), 1, 10)

	// Assert
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(domain.CategoryClick, got[0].Category())
	s.Equal(domain.CategoryImpression, got[1].Category())
}

func (s *InteractionRepoTestSuite) TestListByUserAndItemBreaksTimestampTiesByID() {
	// Arrange
	at := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	first := s.append(s.i64(1), s.i64(10), domain.CategoryImpression, at)
	second := s.append(s.i64(1), s.i64(10), domain.CategoryClick, at)

	// Act
	got, err := s.sut.ListByUserAndItem(context.Background(), 1, 10)

	// Assert
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(second.ID(), got[0].ID())
	s.Equal(first.ID(), got[1].ID())
}

func (s *InteractionRepoTestSuite) TestRoundTripPreservesFields() {
	// Arrange
	it, err := domain.NewInteraction(s.i64(5), s.i64(42), domain.CategoryComment, domain.SurfaceTag, 7)
	s.Require().NoError(err)
	s.Require().NoError(s.sut.Append(context.Background(), it))

	// Act
	got, err := s.sut.ListByItem(context.Background(), 42)

	// Assert
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(it.ID(), got[0].ID())
	s.Equal(int64(5), *got[0].UserID())
	s.Equal(int64(42), *got[0].ItemID())
	s.Equal(domain.CategoryComment, got[0].Category())
	s.Equal(domain.SurfaceTag, got[0].Surface())
	s.Equal(7, got[0].Position())
}
