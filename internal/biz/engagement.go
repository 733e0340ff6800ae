package biz

import (
	"context"

	"feed-engagement/internal/domain"

	"github.com/go-kratos/kratos/v2/log"
)

// RecordEventInput is a validated-on-use ingestion request.
type RecordEventInput struct {
	UserID   *int64
	ItemID   *int64
	Category domain.Category
	Surface  domain.Surface
	Position int
}

// EngagementUsecase ingests interaction events: direct appends and
// journey-attributed ones. Every successful append stores an
// interaction.recorded event in the outbox, which drives the counter
// synchronizer.
type EngagementUsecase struct {
	events domain.InteractionRepository
	uow    domain.UnitOfWork
	log    *log.Helper
}

// NewEngagementUsecase creates a new EngagementUsecase.
func NewEngagementUsecase(events domain.InteractionRepository, uow domain.UnitOfWork, logger log.Logger) *EngagementUsecase {
	return &EngagementUsecase{
		events: events,
		uow:    uow,
		log:    log.NewHelper(logger),
	}
}

// RecordEvent validates and appends one interaction. Validation failures
// reject synchronously: nothing is stored and no rollup is touched.
func (uc *EngagementUsecase) RecordEvent(ctx context.Context, in RecordEventInput) (*domain.Interaction, error) {
	it, err := domain.NewInteraction(in.UserID, in.ItemID, in.Category, in.Surface, in.Position)
	if err != nil {
		return nil, err
	}

	if err := uc.append(ctx, it); err != nil {
		return nil, err
	}

	uc.log.WithContext(ctx).Debugf("recorded %s interaction %d", it.Category(), it.ID())
	return it, nil
}

// RecordJourney runs journey attribution for a reaction/comment request. When
// the user's most recent exposure to the item is a click, the synthesized
// interaction is appended through the same path as direct ingestion; when it
// is not, nothing is stored and (nil, nil) is returned.
func (uc *EngagementUsecase) RecordJourney(ctx context.Context, userID, itemID int64, category domain.Category) (*domain.Interaction, error) {
	if !category.IsJourneyCategory() {
		return nil, domain.ErrNotJourneyCategory
	}

	prior, err := uc.events.ListByUserAndItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	draft, ok := domain.AttributeJourney(prior, userID, itemID, category)
	if !ok {
		uc.log.WithContext(ctx).Debugf("no journey for user %d on item %d", userID, itemID)
		return nil, nil
	}

	if err := uc.append(ctx, draft); err != nil {
		return nil, err
	}

	uc.log.WithContext(ctx).Debugf("journey %s attributed for user %d on item %d", category, userID, itemID)
	return draft, nil
}

func (uc *EngagementUsecase) append(ctx context.Context, it *domain.Interaction) error {
	return uc.uow.Do(ctx, func(ctx context.Context) error {
		return uc.events.Append(ctx, it)
	}, it)
}
