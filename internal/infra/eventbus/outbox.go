package eventbus

import (
	"context"

	"feed-engagement/ent"
	"feed-engagement/internal/domain/event"

	"github.com/ThreeDotsLabs/watermill/message"
)

// OutboxPublisher stores events in the outbox table within the transaction
// that produced them, so an append and its trigger commit or roll back
// together.
type OutboxPublisher struct {
	db *ent.Client
}

// NewOutboxPublisher creates a new outbox publisher.
func NewOutboxPublisher(db *ent.Client) *OutboxPublisher {
	return &OutboxPublisher{db: db}
}

// PublishInTx stores events in the outbox table using the provided transaction.
func (p *OutboxPublisher) PublishInTx(ctx context.Context, tx *ent.Tx, events []event.Event) error {
	for _, e := range events {
		msg, err := EventToMessage(e)
		if err != nil {
			return err
		}

		if err := p.storeMessage(ctx, tx, msg); err != nil {
			return err
		}
	}
	return nil
}

func (p *OutboxPublisher) storeMessage(ctx context.Context, tx *ent.Tx, msg *message.Message) error {
	metadata := make(map[string]string, len(msg.Metadata))
	for k, v := range msg.Metadata {
		metadata[k] = v
	}

	return tx.OutboxMessage.Create().
		SetUUID(msg.UUID).
		SetPayload(msg.Payload).
		SetMetadata(metadata).
		Exec(ctx)
}
