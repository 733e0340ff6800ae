package data

import (
	"context"

	"feed-engagement/ent"
	"feed-engagement/ent/interactionevent"
	"feed-engagement/internal/domain"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/samber/lo"
)

// Compile-time interface check
var _ domain.InteractionRepository = (*interactionRepo)(nil)

// interactionRepo implements domain.InteractionRepository over ent. The event
// log is append-only: this type exposes no update or delete.
type interactionRepo struct {
	data *Data
	log  *log.Helper
}

// NewInteractionRepo creates a new interaction repository.
func NewInteractionRepo(data *Data, logger log.Logger) domain.InteractionRepository {
	return &interactionRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

// client returns the transactional client if in a transaction, otherwise the
// default client.
func (r *interactionRepo) client(ctx context.Context) *ent.Client {
	if tx := TxFromContext(ctx); tx != nil {
		return tx.Client()
	}
	return r.data.db
}

// Append persists a new interaction and assigns its id.
func (r *interactionRepo) Append(ctx context.Context, it *domain.Interaction) error {
	created, err := r.client(ctx).InteractionEvent.Create().
		SetNillableUserID(it.UserID()).
		SetNillableItemID(it.ItemID()).
		SetCategory(interactionevent.Category(it.Category().String())).
		SetSurface(interactionevent.Surface(it.Surface().String())).
		SetPosition(it.Position()).
		SetCreatedAt(it.CreatedAt()).
		Save(ctx)
	if err != nil {
		return err
	}

	it.SetID(int64(created.ID))
	return nil
}

// ListByItem returns every interaction recorded for the item, oldest first.
func (r *interactionRepo) ListByItem(ctx context.Context, itemID int64) ([]*domain.Interaction, error) {
	rows, err := r.client(ctx).InteractionEvent.Query().
		Where(interactionevent.ItemIDEQ(itemID)).
		Order(ent.Asc(interactionevent.FieldCreatedAt), ent.Asc(interactionevent.FieldID)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Map(rows, func(row *ent.InteractionEvent, _ int) *domain.Interaction {
		return entToDomain(row)
	}), nil
}

// ListByUserAndItem returns the user's interactions for the item, newest
// first. Identical timestamps order by the higher id first.
func (r *interactionRepo) ListByUserAndItem(ctx context.Context, userID, itemID int64) ([]*domain.Interaction, error) {
	rows, err := r.client(ctx).InteractionEvent.Query().
		Where(
			interactionevent.UserIDEQ(userID),
			interactionevent.ItemIDEQ(itemID),
		).
		Order(ent.Desc(interactionevent.FieldCreatedAt), ent.Desc(interactionevent.FieldID)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Map(rows, func(row *ent.InteractionEvent, _ int) *domain.Interaction {
		return entToDomain(row)
	}), nil
}

func entToDomain(row *ent.InteractionEvent) *domain.Interaction {
	return domain.ReconstructInteraction(
		int64(row.ID),
		row.UserID,
		row.ItemID,
		domain.Category(row.Category),
		domain.Surface(row.Surface),
		row.Position,
		row.CreatedAt,
	)
}
