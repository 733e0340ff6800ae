package biz

import (
	"context"
	"encoding/json"

	"feed-engagement/internal/domain/event"
	"feed-engagement/internal/infra/eventbus"

	"github.com/go-kratos/kratos/v2/log"
)

// Compile-time interface checks
var (
	_ eventbus.EventHandler = (*RollupSyncHandler)(nil)
	_ eventbus.EventHandler = (*LoggingEventHandler)(nil)
)

// ItemSyncer is the slice of SyncerUsecase the rollup sync handler needs.
type ItemSyncer interface {
	SyncItem(ctx context.Context, itemID int64) error
}

// RollupSyncHandler recomputes an item's rollup whenever an interaction for
// it is recorded. This is the single-item trigger path: append commits, the
// outbox forwarder publishes, and this handler runs the synchronizer.
type RollupSyncHandler struct {
	syncer ItemSyncer
	log    *log.Helper
}

// NewRollupSyncHandler creates a new rollup sync handler.
func NewRollupSyncHandler(syncer ItemSyncer, logger log.Logger) *RollupSyncHandler {
	return &RollupSyncHandler{
		syncer: syncer,
		log:    log.NewHelper(logger),
	}
}

func (h *RollupSyncHandler) HandlerName() string {
	return "rollup_sync_handler"
}

func (h *RollupSyncHandler) EventName() string {
	return "interaction.recorded"
}

// Handle triggers single-item rollup synchronization. Interactions without an
// item id are a no-op: there is nothing to update.
func (h *RollupSyncHandler) Handle(ctx context.Context, envelope *eventbus.EventEnvelope) error {
	var evt event.InteractionRecorded
	if err := json.Unmarshal(envelope.Payload, &evt); err != nil {
		h.log.Warnf("failed to unmarshal interaction.recorded event: %v", err)
		return nil
	}

	if evt.ItemID == nil {
		h.log.Debugf("interaction %s has no item, skipping rollup sync", envelope.EventID)
		return nil
	}

	return h.syncer.SyncItem(ctx, *evt.ItemID)
}

// LoggingEventHandler logs engagement domain events.
type LoggingEventHandler struct {
	log       *log.Helper
	eventName string
}

// NewLoggingEventHandler creates a new logging event handler.
func NewLoggingEventHandler(logger log.Logger, eventName string) *LoggingEventHandler {
	return &LoggingEventHandler{
		log:       log.NewHelper(logger),
		eventName: eventName,
	}
}

func (h *LoggingEventHandler) HandlerName() string {
	return "logging_handler_" + h.eventName
}

func (h *LoggingEventHandler) EventName() string {
	return h.eventName
}

// Handle logs the event details.
func (h *LoggingEventHandler) Handle(ctx context.Context, envelope *eventbus.EventEnvelope) error {
	switch envelope.EventName {
	case "interaction.recorded":
		var evt event.InteractionRecorded
		if err := json.Unmarshal(envelope.Payload, &evt); err != nil {
			return err
		}
		h.log.Infof("[Event] interaction recorded: item %s, category %s, surface %s, position %d",
			envelope.AggregateID, evt.Category, evt.Surface, evt.Position)
	case "journey.attributed":
		var evt event.JourneyAttributed
		if err := json.Unmarshal(envelope.Payload, &evt); err != nil {
			return err
		}
		h.log.Infof("[Event] journey attributed: user %d %s item %d via click at position %d",
			evt.UserID, evt.Category, evt.ItemID, evt.Position)
	case "rollup.synced":
		var evt event.RollupSynced
		if err := json.Unmarshal(envelope.Payload, &evt); err != nil {
			return err
		}
		h.log.Infof("[Event] rollup synced: item %d, impressions %d, clicks %d, score %.4f",
			evt.ItemID, evt.Impressions, evt.Clicks, evt.SuccessScore)
	default:
		h.log.Infof("[Event] %s: %s", envelope.EventName, envelope.AggregateID)
	}
	return nil
}

// RegisterEventHandlers registers all event handlers with the router.
func RegisterEventHandlers(router *eventbus.Router, syncer *SyncerUsecase, logger log.Logger) {
	for _, eventName := range []string{
		"interaction.recorded",
		"journey.attributed",
		"rollup.synced",
	} {
		router.AddHandler(NewLoggingEventHandler(logger, eventName))
	}

	router.AddHandler(NewRollupSyncHandler(syncer, logger))
}
