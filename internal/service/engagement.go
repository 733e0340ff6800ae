package service

import (
	"context"

	"feed-engagement/internal/biz"
	"feed-engagement/internal/domain"

	"github.com/google/wire"
)

// ProviderSet is service providers.
var ProviderSet = wire.NewSet(NewEngagementService)

// EngagementService is the plain-Go facade over the engine's operations.
// Transports are an outer concern and plug in on top of these DTOs.
type EngagementService struct {
	engagement *biz.EngagementUsecase
	syncer     *biz.SyncerUsecase
	rollups    domain.RollupRepository
}

// NewEngagementService creates a new EngagementService.
func NewEngagementService(engagement *biz.EngagementUsecase, syncer *biz.SyncerUsecase, rollups domain.RollupRepository) *EngagementService {
	return &EngagementService{
		engagement: engagement,
		syncer:     syncer,
		rollups:    rollups,
	}
}

// RecordEventRequest describes one interaction to ingest.
type RecordEventRequest struct {
	UserID   *int64 `json:"user_id,omitempty"`
	ItemID   *int64 `json:"item_id,omitempty"`
	Category string `json:"category"`
	Surface  string `json:"surface"`
	Position int    `json:"position"`
}

// RecordEventReply carries the id of the appended interaction.
type RecordEventReply struct {
	EventID int64 `json:"event_id"`
}

// RecordEvent validates and appends one interaction event.
func (s *EngagementService) RecordEvent(ctx context.Context, req *RecordEventRequest) (*RecordEventReply, error) {
	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}
	surface, err := domain.ParseSurface(req.Surface)
	if err != nil {
		return nil, err
	}

	it, err := s.engagement.RecordEvent(ctx, biz.RecordEventInput{
		UserID:   req.UserID,
		ItemID:   req.ItemID,
		Category: category,
		Surface:  surface,
		Position: req.Position,
	})
	if err != nil {
		return nil, err
	}

	return &RecordEventReply{EventID: it.ID()}, nil
}

// RecordJourneyRequest asks for journey-aware ingestion of a reaction or
// comment.
type RecordJourneyRequest struct {
	UserID   int64  `json:"user_id"`
	ItemID   int64  `json:"item_id"`
	Category string `json:"category"`
}

// RecordJourneyReply reports whether the interaction was attributed. When
// Attributed is false nothing was stored.
type RecordJourneyReply struct {
	Attributed bool  `json:"attributed"`
	EventID    int64 `json:"event_id,omitempty"`
}

// RecordJourney invokes the journey attributor and appends the synthesized
// interaction when the user's latest exposure to the item was a click.
func (s *EngagementService) RecordJourney(ctx context.Context, req *RecordJourneyRequest) (*RecordJourneyReply, error) {
	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}

	it, err := s.engagement.RecordJourney(ctx, req.UserID, req.ItemID, category)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return &RecordJourneyReply{Attributed: false}, nil
	}

	return &RecordJourneyReply{
		Attributed: true,
		EventID:    it.ID(),
	}, nil
}

// BulkRecomputeRequest lists the items to recompute.
type BulkRecomputeRequest struct {
	ItemIDs []int64 `json:"item_ids"`
}

// BulkRecomputeReply reports the item ids whose rollup write failed.
type BulkRecomputeReply struct {
	FailedItemIDs []int64 `json:"failed_item_ids,omitempty"`
}

// BulkRecompute recomputes rollups for the given items.
func (s *EngagementService) BulkRecompute(ctx context.Context, req *BulkRecomputeRequest) (*BulkRecomputeReply, error) {
	failed, err := s.syncer.BulkRecompute(ctx, req.ItemIDs)
	if err != nil {
		return nil, err
	}
	return &BulkRecomputeReply{FailedItemIDs: failed}, nil
}

// GetRollupRequest identifies the item to read.
type GetRollupRequest struct {
	ItemID int64 `json:"item_id"`
}

// GetRollupReply carries the item's current counter triple. Found is false
// when the item's rollup has never been written.
type GetRollupReply struct {
	Found        bool    `json:"found"`
	Impressions  int64   `json:"impressions"`
	Clicks       int64   `json:"clicks"`
	SuccessScore float64 `json:"success_score"`
}

// GetRollup reads an item's current rollup.
func (s *EngagementService) GetRollup(ctx context.Context, req *GetRollupRequest) (*GetRollupReply, error) {
	rollup, err := s.rollups.GetRollup(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if rollup == nil {
		return &GetRollupReply{}, nil
	}

	return &GetRollupReply{
		Found:        true,
		Impressions:  rollup.Impressions,
		Clicks:       rollup.Clicks,
		SuccessScore: rollup.SuccessScore,
	}, nil
}
