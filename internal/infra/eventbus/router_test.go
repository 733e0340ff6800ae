package eventbus

import (
	"context"
	"sync"
	"testing"
	"time"

	"feed-engagement/internal/domain/event"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/stretchr/testify/suite"
)

// capturingHandler records envelopes it receives.
type capturingHandler struct {
	name      string
	eventName string

	mu        sync.Mutex
	envelopes []*EventEnvelope
	received  chan struct{}
}

func newCapturingHandler(name, eventName string) *capturingHandler {
	return &capturingHandler{
		name:      name,
		eventName: eventName,
		received:  make(chan struct{}, 16),
	}
}

func (h *capturingHandler) HandlerName() string { return h.name }
func (h *capturingHandler) EventName() string   { return h.eventName }

func (h *capturingHandler) Handle(ctx context.Context, envelope *EventEnvelope) error {
	h.mu.Lock()
	h.envelopes = append(h.envelopes, envelope)
	h.mu.Unlock()
	h.received <- struct{}{}
	return nil
}

func (h *capturingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.envelopes)
}

type RouterTestSuite struct {
	suite.Suite
	eventBus *EventBus
	sut      *Router
	cancel   context.CancelFunc
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	logger := watermill.NopLogger{}
	s.eventBus = NewEventBus(logger)

	router, err := NewRouter(s.eventBus, logger)
	s.Require().NoError(err)
	s.sut = router
}

func (s *RouterTestSuite) TearDownTest() {
	if s.cancel != nil {
		s.cancel()
	}
	if s.sut != nil {
		s.sut.Close()
	}
	if s.eventBus != nil {
		s.eventBus.Close()
	}
}

func (s *RouterTestSuite) runRouter() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go func() {
		_ = s.sut.Run(ctx)
	}()

	select {
	case <-s.sut.Running():
	case <-time.After(5 * time.Second):
		s.FailNow("router did not start")
	}
}

func (s *RouterTestSuite) TestHandlerReceivesMatchingEvent() {
	// Arrange
	handler := newCapturingHandler("capture_synced", "rollup.synced")
	s.sut.AddHandler(handler)
	s.runRouter()

	// Act
	err := s.eventBus.Publish(context.Background(), event.NewRollupSynced(10, 3, 1, 2.5))
	s.Require().NoError(err)

	// Assert
	select {
	case <-handler.received:
	case <-time.After(5 * time.Second):
		s.FailNow("handler never received the event")
	}
	s.Equal(1, handler.count())
	s.Equal("rollup.synced", handler.envelopes[0].EventName)
}

func (s *RouterTestSuite) TestHandlerIgnoresOtherEvents() {
	// Arrange
	synced := newCapturingHandler("capture_synced", "rollup.synced")
	recorded := newCapturingHandler("capture_recorded", "interaction.recorded")
	s.sut.AddHandler(synced)
	s.sut.AddHandler(recorded)
	s.runRouter()

	// Act
	userID, itemID := int64(7), int64(10)
	err := s.eventBus.Publish(context.Background(), event.NewInteractionRecorded(&userID, &itemID, "click", "home", 1))
	s.Require().NoError(err)

	// Assert
	select {
	case <-recorded.received:
	case <-time.After(5 * time.Second):
		s.FailNow("recorded handler never received the event")
	}
	s.Equal(1, recorded.count())
	s.Equal(0, synced.count(), "handler for another event name stays quiet")
}
