package data

import (
	"context"
	"errors"
	"io"
	"testing"

	"feed-engagement/ent"
	"feed-engagement/ent/enttest"
	"feed-engagement/internal/domain"
	"feed-engagement/internal/infra/eventbus"

	"github.com/go-kratos/kratos/v2/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/suite"
)

type UnitOfWorkTestSuite struct {
	suite.Suite
	client *ent.Client
	repo   domain.InteractionRepository
	sut    domain.UnitOfWork
}

func TestUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}

func (s *UnitOfWorkTestSuite) SetupTest() {
	s.client = enttest.Open(s.T(), "sqlite3", "file:uow_test?mode=memory&cache=shared&_fk=1")
	logger := log.NewStdLogger(io.Discard)
	data := &Data{db: s.client}
	s.repo = NewInteractionRepo(data, logger)
	s.sut = NewUnitOfWork(data, eventbus.NewOutboxPublisher(s.client), logger)
}

func (s *UnitOfWorkTestSuite) TearDownTest() {
	if s.client != nil {
		s.client.Close()
	}
}

func (s *UnitOfWorkTestSuite) newInteraction() *domain.Interaction {
	userID, itemID := int64(1), int64(10)
	it, err := domain.NewInteraction(&userID, &itemID, domain.CategoryClick, domain.SurfaceHome, 1)
	s.Require().NoError(err)
	return it
}

func (s *UnitOfWorkTestSuite) TestCommitPersistsWriteAndOutboxTogether() {
	// Arrange
	ctx := context.Background()
	it := s.newInteraction()

	// Act
	err := s.sut.Do(ctx, func(ctx context.Context) error {
		return s.repo.Append(ctx, it)
	}, it)

	// Assert
	s.Require().NoError(err)
	s.Equal(1, s.client.InteractionEvent.Query().CountX(ctx))
	s.Equal(1, s.client.OutboxMessage.Query().CountX(ctx))
	s.Empty(it.Events(), "events are cleared after commit")
}

func (s *UnitOfWorkTestSuite) TestErrorRollsBackWriteAndOutbox() {
	// Arrange
	ctx := context.Background()
	it := s.newInteraction()
	boom := errors.New("boom")

	// Act
	err := s.sut.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.Append(ctx, it); err != nil {
			return err
		}
		return boom
	}, it)

	// Assert
	s.Require().ErrorIs(err, boom)
	s.Zero(s.client.InteractionEvent.Query().CountX(ctx))
	s.Zero(s.client.OutboxMessage.Query().CountX(ctx))
	s.NotEmpty(it.Events(), "events stay on the aggregate for retry")
}

func (s *UnitOfWorkTestSuite) TestNoEventsWritesNoOutboxRows() {
	// Arrange
	ctx := context.Background()
	it := s.newInteraction()
	it.ClearEvents()

	// Act
	err := s.sut.Do(ctx, func(ctx context.Context) error {
		return s.repo.Append(ctx, it)
	}, it)

	// Assert
	s.Require().NoError(err)
	s.Equal(1, s.client.InteractionEvent.Query().CountX(ctx))
	s.Zero(s.client.OutboxMessage.Query().CountX(ctx))
}

func (s *UnitOfWorkTestSuite) TestTxFromContextOutsideTransaction() {
	s.Nil(TxFromContext(context.Background()))
}
