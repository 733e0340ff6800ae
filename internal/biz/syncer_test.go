package biz

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"feed-engagement/internal/domain"
	"feed-engagement/internal/domain/event"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRollupRepo records written triples.
type mockRollupRepo struct {
	mu       sync.Mutex
	rollups  map[int64]domain.Rollup
	writes   int
	failFor  map[int64]error
	writeErr error
}

func newMockRollupRepo() *mockRollupRepo {
	return &mockRollupRepo{
		rollups: make(map[int64]domain.Rollup),
		failFor: make(map[int64]error),
	}
}

func (m *mockRollupRepo) WriteRollup(ctx context.Context, itemID int64, r domain.Rollup) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failFor[itemID]; err != nil {
		return err
	}
	if m.writeErr != nil {
		return m.writeErr
	}
	m.rollups[itemID] = r
	m.writes++
	return nil
}

func (m *mockRollupRepo) GetRollup(ctx context.Context, itemID int64) (*domain.Rollup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rollups[itemID]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

// recordingPublisher captures published events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, e event.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func newSyncer(events *mockInteractionRepo, rollups *mockRollupRepo, bus EventPublisher) *SyncerUsecase {
	return NewSyncerUsecase(events, rollups, domain.ScoreWeights{Reaction: 2, Comment: 4}, bus, log.DefaultLogger)
}

func TestSyncerUsecase_SyncItem(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	const itemID = int64(10)

	t.Run("writes the computed triple", func(t *testing.T) {
		events := newMockInteractionRepo()
		events.seed(i64(1), i64(itemID), domain.CategoryImpression, domain.SurfaceHome, 1, base)
		events.seed(i64(2), i64(itemID), domain.CategoryImpression, domain.SurfaceHome, 1, base.Add(time.Second))
		events.seed(i64(3), i64(itemID), domain.CategoryClick, domain.SurfaceHome, 1, base.Add(2*time.Second))
		events.seed(i64(3), i64(itemID), domain.CategoryReaction, domain.SurfaceHome, 1, base.Add(time.Minute))
		rollups := newMockRollupRepo()

		err := newSyncer(events, rollups, nil).SyncItem(ctx, itemID)
		require.NoError(t, err)

		got := rollups.rollups[itemID]
		assert.Equal(t, int64(2), got.Impressions)
		assert.Equal(t, int64(1), got.Clicks)
		// D=2, R=1: (1 + 2) / 2
		assert.InDelta(t, 1.5, got.SuccessScore, 1e-9)
	})

	t.Run("item with events but no impressions still writes", func(t *testing.T) {
		events := newMockInteractionRepo()
		events.seed(i64(1), i64(itemID), domain.CategoryClick, domain.SurfaceHome, 1, base)
		rollups := newMockRollupRepo()

		err := newSyncer(events, rollups, nil).SyncItem(ctx, itemID)
		require.NoError(t, err)

		got := rollups.rollups[itemID]
		assert.Equal(t, int64(1), got.Clicks)
		assert.Zero(t, got.SuccessScore)
	})

	t.Run("duplicate events aggregate correctly", func(t *testing.T) {
		events := newMockInteractionRepo()
		for i := 0; i < 4; i++ {
			events.seed(i64(1), i64(itemID), domain.CategoryImpression, domain.SurfaceHome, 1, base.Add(time.Duration(i)*time.Second))
		}
		events.seed(i64(1), i64(itemID), domain.CategoryComment, domain.SurfaceHome, 1, base.Add(time.Minute))
		events.seed(i64(1), i64(itemID), domain.CategoryComment, domain.SurfaceHome, 1, base.Add(2*time.Minute))
		rollups := newMockRollupRepo()

		err := newSyncer(events, rollups, nil).SyncItem(ctx, itemID)
		require.NoError(t, err)

		got := rollups.rollups[itemID]
		assert.Equal(t, int64(4), got.Impressions)
		// D=1, C=1 regardless of repeats: 1 + 4
		assert.InDelta(t, 5.0, got.SuccessScore, 1e-9)
	})

	t.Run("write failure leaves the previous rollup and is retryable", func(t *testing.T) {
		events := newMockInteractionRepo()
		events.seed(i64(1), i64(itemID), domain.CategoryImpression, domain.SurfaceHome, 1, base)
		rollups := newMockRollupRepo()
		rollups.rollups[itemID] = domain.Rollup{Impressions: 99}
		rollups.writeErr = errors.New("store unavailable")
		syncer := newSyncer(events, rollups, nil)

		err := syncer.SyncItem(ctx, itemID)
		require.Error(t, err)
		assert.Equal(t, domain.Rollup{Impressions: 99}, rollups.rollups[itemID])

		rollups.writeErr = nil
		require.NoError(t, syncer.SyncItem(ctx, itemID))
		assert.Equal(t, int64(1), rollups.rollups[itemID].Impressions)
	})

	t.Run("publishes rollup.synced after a write", func(t *testing.T) {
		events := newMockInteractionRepo()
		events.seed(i64(1), i64(itemID), domain.CategoryImpression, domain.SurfaceHome, 1, base)
		rollups := newMockRollupRepo()
		bus := &recordingPublisher{}

		err := newSyncer(events, rollups, bus).SyncItem(ctx, itemID)
		require.NoError(t, err)

		require.Len(t, bus.events, 1)
		synced, ok := bus.events[0].(event.RollupSynced)
		require.True(t, ok)
		assert.Equal(t, itemID, synced.ItemID)
		assert.Equal(t, int64(1), synced.Impressions)
	})

	t.Run("concurrent syncs of one item serialize", func(t *testing.T) {
		events := newMockInteractionRepo()
		events.seed(i64(1), i64(itemID), domain.CategoryImpression, domain.SurfaceHome, 1, base)
		rollups := newMockRollupRepo()
		syncer := newSyncer(events, rollups, nil)

		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, syncer.SyncItem(ctx, itemID))
			}()
		}
		wg.Wait()

		assert.Equal(t, 16, rollups.writes)
		assert.Equal(t, int64(1), rollups.rollups[itemID].Impressions)
	})
}

func TestSyncerUsecase_BulkRecompute(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("recomputes each listed item independently", func(t *testing.T) {
		events := newMockInteractionRepo()
		events.seed(i64(1), i64(10), domain.CategoryImpression, domain.SurfaceHome, 1, base)
		events.seed(i64(2), i64(11), domain.CategoryImpression, domain.SurfaceHome, 2, base)
		events.seed(i64(2), i64(11), domain.CategoryReaction, domain.SurfaceHome, 2, base.Add(time.Minute))
		rollups := newMockRollupRepo()

		failed, err := newSyncer(events, rollups, nil).BulkRecompute(ctx, []int64{10, 11})
		require.NoError(t, err)
		assert.Empty(t, failed)

		assert.Equal(t, int64(1), rollups.rollups[10].Impressions)
		assert.InDelta(t, 3.0, rollups.rollups[11].SuccessScore, 1e-9)
	})

	t.Run("items without impressions are left untouched", func(t *testing.T) {
		events := newMockInteractionRepo()
		events.seed(i64(1), i64(10), domain.CategoryClick, domain.SurfaceHome, 1, base)
		rollups := newMockRollupRepo()
		rollups.rollups[10] = domain.Rollup{Clicks: 42}

		failed, err := newSyncer(events, rollups, nil).BulkRecompute(ctx, []int64{10, 99})
		require.NoError(t, err)
		assert.Empty(t, failed)

		assert.Equal(t, domain.Rollup{Clicks: 42}, rollups.rollups[10], "pre-call value preserved")
		_, touched := rollups.rollups[99]
		assert.False(t, touched)
		assert.Zero(t, rollups.writes)
	})

	t.Run("reports the item ids whose write failed", func(t *testing.T) {
		events := newMockInteractionRepo()
		for _, item := range []int64{10, 11, 12} {
			events.seed(i64(1), i64(item), domain.CategoryImpression, domain.SurfaceHome, 1, base)
		}
		rollups := newMockRollupRepo()
		rollups.failFor[11] = errors.New("store unavailable")

		failed, err := newSyncer(events, rollups, nil).BulkRecompute(ctx, []int64{10, 11, 12})
		require.NoError(t, err)
		assert.Equal(t, []int64{11}, failed)

		assert.Contains(t, rollups.rollups, int64(10))
		assert.Contains(t, rollups.rollups, int64(12))
		assert.NotContains(t, rollups.rollups, int64(11))
	})

	t.Run("many items recompute in parallel", func(t *testing.T) {
		events := newMockInteractionRepo()
		ids := make([]int64, 0, 50)
		for i := int64(1); i <= 50; i++ {
			events.seed(i64(i), i64(i), domain.CategoryImpression, domain.SurfaceHome, 1, base)
			ids = append(ids, i)
		}
		rollups := newMockRollupRepo()

		failed, err := newSyncer(events, rollups, nil).BulkRecompute(ctx, ids)
		require.NoError(t, err)
		assert.Empty(t, failed)
		assert.Equal(t, 50, rollups.writes)
	})
}
