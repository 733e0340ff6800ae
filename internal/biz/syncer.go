package biz

import (
	"context"
	"sync"

	"feed-engagement/internal/domain"
	"feed-engagement/internal/domain/event"

	"github.com/go-kratos/kratos/v2/log"
	"golang.org/x/sync/errgroup"
)

// bulkConcurrency caps the fan-out of bulk recomputation.
const bulkConcurrency = 8

// EventPublisher publishes domain events outside a transaction. The syncer
// uses it for rollup.synced observability events.
type EventPublisher interface {
	Publish(ctx context.Context, e event.Event) error
}

// SyncerUsecase drives the score calculator against the event log and writes
// the resulting triples to the rollup store. Recomputation is idempotent: it
// is a pure function of the item's current event set, so retries and
// last-computed-wins races are safe.
type SyncerUsecase struct {
	events  domain.InteractionRepository
	rollups domain.RollupRepository
	weights domain.ScoreWeights
	bus     EventPublisher
	locks   itemLocks
	log     *log.Helper
}

// NewSyncerUsecase creates a new SyncerUsecase. bus may be nil; rollup.synced
// events are then skipped.
func NewSyncerUsecase(
	events domain.InteractionRepository,
	rollups domain.RollupRepository,
	weights domain.ScoreWeights,
	bus EventPublisher,
	logger log.Logger,
) *SyncerUsecase {
	return &SyncerUsecase{
		events:  events,
		rollups: rollups,
		weights: weights,
		bus:     bus,
		log:     log.NewHelper(logger),
	}
}

// SyncItem recomputes and writes one item's rollup. Triggered after every
// append that carries an item id.
func (uc *SyncerUsecase) SyncItem(ctx context.Context, itemID int64) error {
	return uc.syncOne(ctx, itemID, false)
}

// BulkRecompute recomputes rollups for an explicit list of item ids,
// independently and in parallel. Items with zero impression events are left
// untouched, so "never started accumulating" stays distinguishable from
// "computed as zero". It returns the ids whose write failed; retrying them
// is always safe.
func (uc *SyncerUsecase) BulkRecompute(ctx context.Context, itemIDs []int64) ([]int64, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bulkConcurrency)

	var (
		mu     sync.Mutex
		failed []int64
	)

	for _, itemID := range itemIDs {
		g.Go(func() error {
			if err := uc.syncOne(ctx, itemID, true); err != nil {
				uc.log.WithContext(ctx).Errorf("bulk recompute failed for item %d: %v", itemID, err)
				mu.Lock()
				failed = append(failed, itemID)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return failed, err
	}
	return failed, nil
}

// syncOne is the compute-then-write unit of work for one item. The per-item
// lock serializes concurrent writes of the same triple; different items never
// contend.
func (uc *SyncerUsecase) syncOne(ctx context.Context, itemID int64, skipWithoutImpressions bool) error {
	unlock := uc.locks.lock(itemID)
	defer unlock()

	events, err := uc.events.ListByItem(ctx, itemID)
	if err != nil {
		return err
	}

	rollup := domain.ComputeRollup(events, uc.weights)
	if skipWithoutImpressions && rollup.Impressions == 0 {
		uc.log.WithContext(ctx).Debugf("item %d has no impressions, rollup untouched", itemID)
		return nil
	}

	if err := uc.rollups.WriteRollup(ctx, itemID, rollup); err != nil {
		return err
	}

	uc.publishSynced(ctx, itemID, rollup)
	return nil
}

func (uc *SyncerUsecase) publishSynced(ctx context.Context, itemID int64, rollup domain.Rollup) {
	if uc.bus == nil {
		return
	}
	e := event.NewRollupSynced(itemID, rollup.Impressions, rollup.Clicks, rollup.SuccessScore)
	if err := uc.bus.Publish(ctx, e); err != nil {
		uc.log.WithContext(ctx).Warnf("failed to publish rollup.synced for item %d: %v", itemID, err)
	}
}

// itemLocks hands out one mutex per item id. Entries are never released; the
// map is bounded by the number of distinct items seen by this process.
type itemLocks struct {
	mu sync.Mutex
	m  map[int64]*sync.Mutex
}

func (l *itemLocks) lock(itemID int64) (unlock func()) {
	l.mu.Lock()
	if l.m == nil {
		l.m = make(map[int64]*sync.Mutex)
	}
	im, ok := l.m[itemID]
	if !ok {
		im = &sync.Mutex{}
		l.m[itemID] = im
	}
	l.mu.Unlock()

	im.Lock()
	return im.Unlock
}
