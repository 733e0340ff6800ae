package eventbus

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"feed-engagement/internal/domain/event"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/stretchr/testify/suite"
)

type EventBusTestSuite struct {
	suite.Suite
	sut    *EventBus
	logger watermill.LoggerAdapter
}

func TestEventBusTestSuite(t *testing.T) {
	suite.Run(t, new(EventBusTestSuite))
}

func (s *EventBusTestSuite) SetupTest() {
	s.logger = watermill.NopLogger{}
	s.sut = NewEventBus(s.logger)
}

func (s *EventBusTestSuite) TearDownTest() {
	if s.sut != nil {
		s.sut.Close()
	}
}

func (s *EventBusTestSuite) TestPublish() {
	// Arrange
	ctx := context.Background()
	evt := event.NewRollupSynced(10, 3, 1, 2.5)

	// Act
	err := s.sut.Publish(ctx, evt)

	// Assert
	s.NoError(err)
}

func (s *EventBusTestSuite) TestPublishDelivers() {
	// Arrange
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	messages, err := s.sut.Subscriber().Subscribe(ctx, EngagementEventsTopic)
	s.Require().NoError(err)

	userID, itemID := int64(7), int64(10)
	evt := event.NewInteractionRecorded(&userID, &itemID, "click", "home", 2)

	// Act
	s.Require().NoError(s.sut.Publish(ctx, evt))

	// Assert
	select {
	case msg := <-messages:
		envelope, err := MessageToEnvelope(msg)
		s.Require().NoError(err)
		s.Equal("interaction.recorded", envelope.EventName)
		s.Equal("10", envelope.AggregateID)
		msg.Ack()
	case <-ctx.Done():
		s.Fail("timed out waiting for message")
	}
}

func (s *EventBusTestSuite) TestEnvelopeRoundTrip() {
	// Arrange
	userID, itemID := int64(7), int64(10)
	evt := event.NewInteractionRecorded(&userID, &itemID, "reaction", "search", 4)

	// Act
	msg, err := EventToMessage(evt)
	s.Require().NoError(err)
	envelope, err := MessageToEnvelope(msg)
	s.Require().NoError(err)

	// Assert
	s.Equal(evt.EventID(), envelope.EventID)
	s.Equal("interaction.recorded", envelope.EventName)
	s.Equal("interaction.recorded", msg.Metadata.Get("event_name"))
	s.Equal("10", msg.Metadata.Get("aggregate_id"))

	var decoded event.InteractionRecorded
	s.Require().NoError(json.Unmarshal(envelope.Payload, &decoded))
	s.Equal("reaction", decoded.Category)
	s.Equal("search", decoded.Surface)
	s.Equal(4, decoded.Position)
	s.Require().NotNil(decoded.ItemID)
	s.Equal(int64(10), *decoded.ItemID)
}
