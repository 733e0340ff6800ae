package eventbus

import (
	"context"
	"testing"
	"time"

	"feed-engagement/ent"
	"feed-engagement/ent/enttest"
	"feed-engagement/internal/domain/event"

	"github.com/ThreeDotsLabs/watermill"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/suite"
)

type ForwarderTestSuite struct {
	suite.Suite
	client   *ent.Client
	eventBus *EventBus
	outbox   *OutboxPublisher
	sut      *Forwarder
}

func TestForwarderTestSuite(t *testing.T) {
	suite.Run(t, new(ForwarderTestSuite))
}

func (s *ForwarderTestSuite) SetupTest() {
	s.client = enttest.Open(s.T(), "sqlite3", "file:forwarder_test?mode=memory&cache=shared&_fk=1")
	logger := watermill.NopLogger{}
	s.eventBus = NewEventBus(logger)
	s.outbox = NewOutboxPublisher(s.client)
	s.sut = NewForwarder(s.client, s.eventBus.Publisher(), 10*time.Millisecond, 100, logger)
}

func (s *ForwarderTestSuite) TearDownTest() {
	if s.sut != nil {
		s.sut.Stop()
	}
	if s.eventBus != nil {
		s.eventBus.Close()
	}
	if s.client != nil {
		s.client.Close()
	}
}

func (s *ForwarderTestSuite) TestForwarderForwardsMessages() {
	// Arrange
	ctx := context.Background()
	messages, err := s.eventBus.Subscriber().Subscribe(ctx, EngagementEventsTopic)
	s.Require().NoError(err)

	tx, err := s.client.Tx(ctx)
	s.Require().NoError(err)
	userID, itemID := int64(7), int64(10)
	evt := event.NewInteractionRecorded(&userID, &itemID, "click", "home", 1)
	s.Require().NoError(s.outbox.PublishInTx(ctx, tx, []event.Event{evt}))
	s.Require().NoError(tx.Commit())

	// Act
	s.sut.Start(ctx)

	// Assert
	select {
	case msg := <-messages:
		envelope, err := MessageToEnvelope(msg)
		s.Require().NoError(err)
		s.Equal(evt.EventID(), envelope.EventID)
		s.Equal("interaction.recorded", envelope.EventName)
		msg.Ack()
	case <-time.After(5 * time.Second):
		s.FailNow("message was never forwarded")
	}

	// The outbox row is deleted after successful publish.
	s.Eventually(func() bool {
		count, err := s.client.OutboxMessage.Query().Count(ctx)
		return err == nil && count == 0
	}, 5*time.Second, 20*time.Millisecond)
}

func (s *ForwarderTestSuite) TestForwarderDrainsWholeBatch() {
	// Arrange
	ctx := context.Background()
	messages, err := s.eventBus.Subscriber().Subscribe(ctx, EngagementEventsTopic)
	s.Require().NoError(err)

	tx, err := s.client.Tx(ctx)
	s.Require().NoError(err)
	first := event.NewRollupSynced(10, 1, 0, 1.0)
	second := event.NewRollupSynced(10, 2, 0, 1.0)
	s.Require().NoError(s.outbox.PublishInTx(ctx, tx, []event.Event{first, second}))
	s.Require().NoError(tx.Commit())

	// Act
	s.sut.Start(ctx)

	// Assert
	var got []string
	for len(got) < 2 {
		select {
		case msg := <-messages:
			got = append(got, msg.UUID)
			msg.Ack()
		case <-time.After(5 * time.Second):
			s.FailNow("messages were never forwarded")
		}
	}
	s.ElementsMatch([]string{first.EventID(), second.EventID()}, got)
}
