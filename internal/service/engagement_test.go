package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"feed-engagement/internal/biz"
	"feed-engagement/internal/domain"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUnitOfWork struct{}

func (u *fakeUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error, _ ...domain.AggregateRoot) error {
	return fn(ctx)
}

// fakeEventLog is an in-memory append-only event log.
type fakeEventLog struct {
	mu     sync.Mutex
	events []*domain.Interaction
	nextID int64
}

func newFakeEventLog() *fakeEventLog {
	return &fakeEventLog{nextID: 1}
}

func (m *fakeEventLog) Append(ctx context.Context, it *domain.Interaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	it.SetID(m.nextID)
	m.nextID++
	m.events = append(m.events, it)
	return nil
}

func (m *fakeEventLog) ListByItem(ctx context.Context, itemID int64) ([]*domain.Interaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Interaction
	for _, e := range m.events {
		if e.ItemID() != nil && *e.ItemID() == itemID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *fakeEventLog) ListByUserAndItem(ctx context.Context, userID, itemID int64) ([]*domain.Interaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Interaction
	for _, e := range m.events {
		if e.UserID() != nil && *e.UserID() == userID && e.ItemID() != nil && *e.ItemID() == itemID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt().Equal(out[j].CreatedAt()) {
			return out[i].ID() > out[j].ID()
		}
		return out[i].CreatedAt().After(out[j].CreatedAt())
	})
	return out, nil
}

// fakeRollupStore is an in-memory rollup table.
type fakeRollupStore struct {
	mu       sync.Mutex
	rollups  map[int64]domain.Rollup
	writeErr error
	getErr   error
}

func newFakeRollupStore() *fakeRollupStore {
	return &fakeRollupStore{rollups: make(map[int64]domain.Rollup)}
}

func (m *fakeRollupStore) WriteRollup(ctx context.Context, itemID int64, rollup domain.Rollup) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rollups[itemID] = rollup
	return nil
}

func (m *fakeRollupStore) GetRollup(ctx context.Context, itemID int64) (*domain.Rollup, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	rollup, ok := m.rollups[itemID]
	if !ok {
		return nil, nil
	}
	return &rollup, nil
}

func i64(v int64) *int64 { return &v }

func newTestService(events *fakeEventLog, rollups *fakeRollupStore) *EngagementService {
	logger := log.DefaultLogger
	engagement := biz.NewEngagementUsecase(events, &fakeUnitOfWork{}, logger)
	syncer := biz.NewSyncerUsecase(events, rollups, domain.ScoreWeights{Reaction: 2.0, Comment: 4.0}, nil, logger)
	return NewEngagementService(engagement, syncer, rollups)
}

func TestEngagementService_RecordEvent(t *testing.T) {
	// Arrange
	svc := newTestService(newFakeEventLog(), newFakeRollupStore())
	req := &RecordEventRequest{
		UserID:   i64(1),
		ItemID:   i64(10),
		Category: "impression",
		Surface:  "home",
		Position: 1,
	}

	// Act
	resp, err := svc.RecordEvent(context.Background(), req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.EventID)
}

func TestEngagementService_RecordEvent_Anonymous(t *testing.T) {
	// Arrange
	svc := newTestService(newFakeEventLog(), newFakeRollupStore())
	req := &RecordEventRequest{
		ItemID:   i64(10),
		Category: "click",
		Surface:  "search",
		Position: 3,
	}

	// Act
	resp, err := svc.RecordEvent(context.Background(), req)

	// Assert
	require.NoError(t, err)
	assert.Positive(t, resp.EventID)
}

func TestEngagementService_RecordEvent_UnknownCategory(t *testing.T) {
	// Arrange
	svc := newTestService(newFakeEventLog(), newFakeRollupStore())
	req := &RecordEventRequest{
		Category: "share",
		Surface:  "home",
		Position: 1,
	}

	// Act
	resp, err := svc.RecordEvent(context.Background(), req)

	// Assert
	require.ErrorIs(t, err, domain.ErrUnknownCategory)
	assert.Nil(t, resp)
}

func TestEngagementService_RecordEvent_UnknownSurface(t *testing.T) {
	// Arrange
	svc := newTestService(newFakeEventLog(), newFakeRollupStore())
	req := &RecordEventRequest{
		Category: "click",
		Surface:  "sidebar",
		Position: 1,
	}

	// Act
	resp, err := svc.RecordEvent(context.Background(), req)

	// Assert
	require.ErrorIs(t, err, domain.ErrUnknownSurface)
	assert.Nil(t, resp)
}

func TestEngagementService_RecordEvent_InvalidPosition(t *testing.T) {
	// Arrange
	svc := newTestService(newFakeEventLog(), newFakeRollupStore())
	req := &RecordEventRequest{
		Category: "click",
		Surface:  "home",
		Position: 0,
	}

	// Act
	_, err := svc.RecordEvent(context.Background(), req)

	// Assert
	require.ErrorIs(t, err, domain.ErrInvalidPosition)
}

func TestEngagementService_RecordJourney_Attributed(t *testing.T) {
	// Arrange
	events := newFakeEventLog()
	svc := newTestService(events, newFakeRollupStore())
	seedClick(t, events, 1, 10)

	req := &RecordJourneyRequest{UserID: 1, ItemID: 10, Category: "reaction"}

	// Act
	resp, err := svc.RecordJourney(context.Background(), req)

	// Assert
	require.NoError(t, err)
	assert.True(t, resp.Attributed)
	assert.Positive(t, resp.EventID)
}

func TestEngagementService_RecordJourney_NotAttributed(t *testing.T) {
	// Arrange
	svc := newTestService(newFakeEventLog(), newFakeRollupStore())
	req := &RecordJourneyRequest{UserID: 1, ItemID: 10, Category: "comment"}

	// Act
	resp, err := svc.RecordJourney(context.Background(), req)

	// Assert
	require.NoError(t, err)
	assert.False(t, resp.Attributed)
	assert.Zero(t, resp.EventID)
}

func TestEngagementService_RecordJourney_RejectsNonJourneyCategory(t *testing.T) {
	// Arrange
	svc := newTestService(newFakeEventLog(), newFakeRollupStore())
	req := &RecordJourneyRequest{UserID: 1, ItemID: 10, Category: "impression"}

	// Act
	_, err := svc.RecordJourney(context.Background(), req)

	// Assert
	require.ErrorIs(t, err, domain.ErrNotJourneyCategory)
}

func TestEngagementService_BulkRecompute(t *testing.T) {
	// Arrange
	events := newFakeEventLog()
	rollups := newFakeRollupStore()
	svc := newTestService(events, rollups)
	seedImpression(t, events, 1, 10)
	seedImpression(t, events, 2, 20)

	req := &BulkRecomputeRequest{ItemIDs: []int64{10, 20, 30}}

	// Act
	resp, err := svc.BulkRecompute(context.Background(), req)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, resp.FailedItemIDs)
	got, err := rollups.GetRollup(context.Background(), 10)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.Impressions)
	// item 30 has no impressions and stays unwritten
	got, err = rollups.GetRollup(context.Background(), 30)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestEngagementService_BulkRecompute_ReportsFailures(t *testing.T) {
	// Arrange
	events := newFakeEventLog()
	rollups := newFakeRollupStore()
	rollups.writeErr = errors.New("store down")
	svc := newTestService(events, rollups)
	seedImpression(t, events, 1, 10)

	req := &BulkRecomputeRequest{ItemIDs: []int64{10}}

	// Act
	resp, err := svc.BulkRecompute(context.Background(), req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []int64{10}, resp.FailedItemIDs)
}

func TestEngagementService_GetRollup(t *testing.T) {
	// Arrange
	rollups := newFakeRollupStore()
	rollups.rollups[10] = domain.Rollup{Impressions: 4, Clicks: 2, SuccessScore: 1.5}
	svc := newTestService(newFakeEventLog(), rollups)

	// Act
	resp, err := svc.GetRollup(context.Background(), &GetRollupRequest{ItemID: 10})

	// Assert
	require.NoError(t, err)
	assert.True(t, resp.Found)
	assert.Equal(t, int64(4), resp.Impressions)
	assert.Equal(t, int64(2), resp.Clicks)
	assert.InDelta(t, 1.5, resp.SuccessScore, 1e-9)
}

func TestEngagementService_GetRollup_NotFound(t *testing.T) {
	// Arrange
	svc := newTestService(newFakeEventLog(), newFakeRollupStore())

	// Act
	resp, err := svc.GetRollup(context.Background(), &GetRollupRequest{ItemID: 99})

	// Assert
	require.NoError(t, err)
	assert.False(t, resp.Found)
	assert.Zero(t, resp.Impressions)
}

func seedClick(t *testing.T, events *fakeEventLog, userID, itemID int64) {
	t.Helper()
	it := domain.ReconstructInteraction(0, &userID, &itemID, domain.CategoryClick, domain.SurfaceHome, 1,
		time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, events.Append(context.Background(), it))
}

func seedImpression(t *testing.T, events *fakeEventLog, userID, itemID int64) {
	t.Helper()
	it := domain.ReconstructInteraction(0, &userID, &itemID, domain.CategoryImpression, domain.SurfaceHome, 1,
		time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, events.Append(context.Background(), it))
}
