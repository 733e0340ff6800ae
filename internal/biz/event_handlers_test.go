package biz

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"feed-engagement/internal/domain/event"
	"feed-engagement/internal/infra/eventbus"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockItemSyncer records SyncItem calls.
type mockItemSyncer struct {
	mu     sync.Mutex
	synced []int64
	err    error
}

func (m *mockItemSyncer) SyncItem(ctx context.Context, itemID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.synced = append(m.synced, itemID)
	return nil
}

func envelopeFor(t *testing.T, e event.Event) *eventbus.EventEnvelope {
	t.Helper()
	msg, err := eventbus.EventToMessage(e)
	require.NoError(t, err)
	envelope, err := eventbus.MessageToEnvelope(msg)
	require.NoError(t, err)
	return envelope
}

func TestRollupSyncHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("triggers sync for the event's item", func(t *testing.T) {
		syncer := &mockItemSyncer{}
		h := NewRollupSyncHandler(syncer, log.DefaultLogger)

		userID, itemID := int64(7), int64(10)
		envelope := envelopeFor(t, event.NewInteractionRecorded(&userID, &itemID, "click", "home", 1))

		require.NoError(t, h.Handle(ctx, envelope))
		assert.Equal(t, []int64{10}, syncer.synced)
	})

	t.Run("no item id is a no-op", func(t *testing.T) {
		syncer := &mockItemSyncer{}
		h := NewRollupSyncHandler(syncer, log.DefaultLogger)

		envelope := envelopeFor(t, event.NewInteractionRecorded(nil, nil, "click", "home", 1))

		require.NoError(t, h.Handle(ctx, envelope))
		assert.Empty(t, syncer.synced)
	})

	t.Run("malformed payload is dropped, not retried", func(t *testing.T) {
		syncer := &mockItemSyncer{}
		h := NewRollupSyncHandler(syncer, log.DefaultLogger)

		envelope := &eventbus.EventEnvelope{
			EventName: "interaction.recorded",
			Payload:   json.RawMessage(`{"item_id": "not-a-number"}`),
		}

		assert.NoError(t, h.Handle(ctx, envelope))
		assert.Empty(t, syncer.synced)
	})

	t.Run("handler metadata", func(t *testing.T) {
		h := NewRollupSyncHandler(&mockItemSyncer{}, log.DefaultLogger)
		assert.Equal(t, "rollup_sync_handler", h.HandlerName())
		assert.Equal(t, "interaction.recorded", h.EventName())
	})
}

func TestLoggingEventHandler(t *testing.T) {
	ctx := context.Background()
	h := NewLoggingEventHandler(log.DefaultLogger, "rollup.synced")

	assert.Equal(t, "logging_handler_rollup.synced", h.HandlerName())
	assert.Equal(t, "rollup.synced", h.EventName())

	envelope := envelopeFor(t, event.NewRollupSynced(10, 3, 1, 2.5))
	assert.NoError(t, h.Handle(ctx, envelope))

	userID, itemID := int64(7), int64(10)
	assert.NoError(t, h.Handle(ctx, envelopeFor(t, event.NewInteractionRecorded(&userID, &itemID, "click", "home", 1))))
	assert.NoError(t, h.Handle(ctx, envelopeFor(t, event.NewJourneyAttributed(7, 10, "reaction", "home", 1))))
}
