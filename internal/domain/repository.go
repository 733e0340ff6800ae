package domain

import (
	"context"
)

// InteractionRepository is the append-only event store. It is defined in the
// domain layer and implemented in the data layer. There is deliberately no
// update or delete operation.
type InteractionRepository interface {
	// Append persists a new interaction and assigns its id.
	Append(ctx context.Context, it *Interaction) error

	// ListByItem returns every interaction recorded for the item, oldest
	// first.
	ListByItem(ctx context.Context, itemID int64) ([]*Interaction, error)

	// ListByUserAndItem returns the user's interactions for the item,
	// newest first (created_at desc, id desc).
	ListByUserAndItem(ctx context.Context, userID, itemID int64) ([]*Interaction, error)
}

// RollupRepository is the contract this engine needs from the external
// counter store: a keyed record store that can write the full counter triple
// atomically.
type RollupRepository interface {
	// WriteRollup replaces the item's rollup with the given triple. The
	// three fields are written together or not at all.
	WriteRollup(ctx context.Context, itemID int64, r Rollup) error

	// GetRollup returns the item's current rollup, or nil if the item has
	// never been written.
	GetRollup(ctx context.Context, itemID int64) (*Rollup, error)
}
