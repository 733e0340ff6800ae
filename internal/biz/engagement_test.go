package biz

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"feed-engagement/internal/domain"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noopUnitOfWork runs the function without a transaction.
type noopUnitOfWork struct{}

func (u *noopUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error, _ ...domain.AggregateRoot) error {
	return fn(ctx)
}

var testUoW = &noopUnitOfWork{}

func i64(v int64) *int64 { return &v }

// mockInteractionRepo is an in-memory append-only event log.
type mockInteractionRepo struct {
	mu        sync.Mutex
	events    []*domain.Interaction
	nextID    int64
	appendErr error
	listErr   error
}

func newMockInteractionRepo() *mockInteractionRepo {
	return &mockInteractionRepo{nextID: 1}
}

func (m *mockInteractionRepo) Append(ctx context.Context, it *domain.Interaction) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	it.SetID(m.nextID)
	m.nextID++
	m.events = append(m.events, it)
	return nil
}

func (m *mockInteractionRepo) ListByItem(ctx context.Context, itemID int64) ([]*domain.Interaction, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
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

func (m *mockInteractionRepo) ListByUserAndItem(ctx context.Context, userID, itemID int64) ([]*domain.Interaction, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
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

// seed inserts a reconstructed interaction, bypassing validation and events.
func (m *mockInteractionRepo) seed(userID *int64, itemID *int64, category domain.Category, surface domain.Surface, position int, at time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, domain.ReconstructInteraction(m.nextID, userID, itemID, category, surface, position, at))
	m.nextID++
}

func newEngagementUsecase(repo *mockInteractionRepo) *EngagementUsecase {
	return NewEngagementUsecase(repo, testUoW, log.DefaultLogger)
}

func TestEngagementUsecase_RecordEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("valid event is appended", func(t *testing.T) {
		repo := newMockInteractionRepo()
		uc := newEngagementUsecase(repo)

		it, err := uc.RecordEvent(ctx, RecordEventInput{
			UserID:   i64(1),
			ItemID:   i64(10),
			Category: domain.CategoryImpression,
			Surface:  domain.SurfaceHome,
			Position: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), it.ID())
		assert.Len(t, repo.events, 1)
	})

	t.Run("event without item is still stored", func(t *testing.T) {
		repo := newMockInteractionRepo()
		uc := newEngagementUsecase(repo)

		it, err := uc.RecordEvent(ctx, RecordEventInput{
			Category: domain.CategoryClick,
			Surface:  domain.SurfaceSearch,
			Position: 4,
		})
		require.NoError(t, err)
		assert.Nil(t, it.ItemID())
		assert.Len(t, repo.events, 1)
	})

	t.Run("validation failure stores nothing", func(t *testing.T) {
		repo := newMockInteractionRepo()
		uc := newEngagementUsecase(repo)

		_, err := uc.RecordEvent(ctx, RecordEventInput{
			Category: domain.CategoryImpression,
			Surface:  domain.SurfaceHome,
			Position: 0,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidPosition)
		assert.Empty(t, repo.events)
	})

	t.Run("append failure is surfaced", func(t *testing.T) {
		repo := newMockInteractionRepo()
		repo.appendErr = errors.New("db down")
		uc := newEngagementUsecase(repo)

		_, err := uc.RecordEvent(ctx, RecordEventInput{
			Category: domain.CategoryImpression,
			Surface:  domain.SurfaceHome,
			Position: 1,
		})
		assert.Error(t, err)
	})
}

func TestEngagementUsecase_RecordJourney(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	const (
		userID = int64(7)
		itemX  = int64(10)
		itemY  = int64(11)
		itemZ  = int64(12)
	)

	t.Run("reaction after click is attributed", func(t *testing.T) {
		repo := newMockInteractionRepo()
		repo.seed(i64(userID), i64(itemX), domain.CategoryImpression, domain.SurfaceHome, 1, base)
		repo.seed(i64(userID), i64(itemX), domain.CategoryClick, domain.SurfaceSearch, 3, base.Add(time.Minute))
		uc := newEngagementUsecase(repo)

		it, err := uc.RecordJourney(ctx, userID, itemX, domain.CategoryReaction)
		require.NoError(t, err)
		require.NotNil(t, it)

		assert.Equal(t, domain.CategoryReaction, it.Category())
		assert.Equal(t, domain.SurfaceSearch, it.Surface())
		assert.Equal(t, 3, it.Position())
		assert.Len(t, repo.events, 3, "exactly one new event appended")
	})

	t.Run("impression only produces no event", func(t *testing.T) {
		repo := newMockInteractionRepo()
		repo.seed(i64(userID), i64(itemX), domain.CategoryImpression, domain.SurfaceHome, 1, base)
		uc := newEngagementUsecase(repo)

		it, err := uc.RecordJourney(ctx, userID, itemX, domain.CategoryReaction)
		require.NoError(t, err)
		assert.Nil(t, it)
		assert.Len(t, repo.events, 1)
	})

	t.Run("click on another item produces no event", func(t *testing.T) {
		repo := newMockInteractionRepo()
		repo.seed(i64(userID), i64(itemX), domain.CategoryClick, domain.SurfaceHome, 1, base)
		uc := newEngagementUsecase(repo)

		it, err := uc.RecordJourney(ctx, userID, itemY, domain.CategoryReaction)
		require.NoError(t, err)
		assert.Nil(t, it)
		assert.Len(t, repo.events, 1)
	})

	t.Run("journey lookup is per item, not globally most recent", func(t *testing.T) {
		repo := newMockInteractionRepo()
		repo.seed(i64(userID), i64(itemX), domain.CategoryClick, domain.SurfaceTag, 2, base)
		repo.seed(i64(userID), i64(itemZ), domain.CategoryClick, domain.SurfaceHome, 9, base.Add(time.Hour))
		uc := newEngagementUsecase(repo)

		it, err := uc.RecordJourney(ctx, userID, itemX, domain.CategoryReaction)
		require.NoError(t, err)
		require.NotNil(t, it)
		assert.Equal(t, itemX, *it.ItemID())
		assert.Equal(t, domain.SurfaceTag, it.Surface())
		assert.Equal(t, 2, it.Position())
	})

	t.Run("non-journey category is rejected", func(t *testing.T) {
		repo := newMockInteractionRepo()
		uc := newEngagementUsecase(repo)

		_, err := uc.RecordJourney(ctx, userID, itemX, domain.CategoryClick)
		assert.ErrorIs(t, err, domain.ErrNotJourneyCategory)
	})
}
