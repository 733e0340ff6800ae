package eventbus

import (
	"feed-engagement/ent"
	"feed-engagement/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

// ProviderSet is eventbus providers.
var ProviderSet = wire.NewSet(
	NewKratosLoggerAdapter,
	NewEventBus,
	NewRouter,
	NewOutboxPublisher,
	ProvideForwarder,
)

// ProvideForwarder creates a Forwarder with the configured poll interval and
// batch size.
func ProvideForwarder(db *ent.Client, c *conf.Outbox, eventBus *EventBus, logger log.Logger) *Forwarder {
	return NewForwarder(db, eventBus.Publisher(), c.PollInterval(), c.Batch(), NewKratosLoggerAdapter(logger))
}
