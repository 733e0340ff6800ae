package eventbus

import (
	"context"
	"testing"

	"feed-engagement/ent"
	"feed-engagement/ent/enttest"
	"feed-engagement/internal/domain/event"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/suite"
)

type OutboxTestSuite struct {
	suite.Suite
	client *ent.Client
	sut    *OutboxPublisher
}

func TestOutboxTestSuite(t *testing.T) {
	suite.Run(t, new(OutboxTestSuite))
}

func (s *OutboxTestSuite) SetupTest() {
	s.client = enttest.Open(s.T(), "sqlite3", "file:outbox_test?mode=memory&cache=shared&_fk=1")
	s.sut = NewOutboxPublisher(s.client)
}

func (s *OutboxTestSuite) TearDownTest() {
	if s.client != nil {
		s.client.Close()
	}
}

func (s *OutboxTestSuite) TestPublishInTxStoresMessages() {
	// Arrange
	ctx := context.Background()
	tx, err := s.client.Tx(ctx)
	s.Require().NoError(err)

	userID, itemID := int64(7), int64(10)
	events := []event.Event{
		event.NewInteractionRecorded(&userID, &itemID, "click", "home", 1),
		event.NewRollupSynced(10, 1, 1, 1.0),
	}

	// Act
	err = s.sut.PublishInTx(ctx, tx, events)
	s.Require().NoError(err)
	s.Require().NoError(tx.Commit())

	// Assert
	stored, err := s.client.OutboxMessage.Query().All(ctx)
	s.Require().NoError(err)
	s.Len(stored, 2)
	s.Equal(events[0].EventID(), stored[0].UUID)
	s.Equal("interaction.recorded", stored[0].Metadata["event_name"])
}

func (s *OutboxTestSuite) TestRollbackDiscardsMessages() {
	// Arrange
	ctx := context.Background()
	tx, err := s.client.Tx(ctx)
	s.Require().NoError(err)

	// Act
	err = s.sut.PublishInTx(ctx, tx, []event.Event{event.NewRollupSynced(10, 1, 0, 1.0)})
	s.Require().NoError(err)
	s.Require().NoError(tx.Rollback())

	// Assert
	count, err := s.client.OutboxMessage.Query().Count(ctx)
	s.Require().NoError(err)
	s.Zero(count)
}
