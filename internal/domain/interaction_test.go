package domain

import (
	"testing"
	"time"

	"feed-engagement/internal/domain/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInteraction(t *testing.T) {
	tests := []struct {
		name     string
		userID   *int64
		itemID   *int64
		category Category
		surface  Surface
		position int
		wantErr  error
	}{
		{
			name:     "valid identified interaction",
			userID:   i64(1),
			itemID:   i64(10),
			category: CategoryImpression,
			surface:  SurfaceHome,
			position: 1,
		},
		{
			name:     "valid anonymous interaction without item",
			category: CategoryClick,
			surface:  SurfaceSearch,
			position: 12,
		},
		{
			name:     "zero position",
			category: CategoryImpression,
			surface:  SurfaceHome,
			position: 0,
			wantErr:  ErrInvalidPosition,
		},
		{
			name:     "negative position",
			category: CategoryImpression,
			surface:  SurfaceHome,
			position: -3,
			wantErr:  ErrInvalidPosition,
		},
		{
			name:     "unknown category",
			category: Category("view"),
			surface:  SurfaceHome,
			position: 1,
			wantErr:  ErrUnknownCategory,
		},
		{
			name:     "unknown surface",
			category: CategoryComment,
			surface:  Surface("sidebar"),
			position: 1,
			wantErr:  ErrUnknownSurface,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, err := NewInteraction(tt.userID, tt.itemID, tt.category, tt.surface, tt.position)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, it)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.category, it.Category())
			assert.Equal(t, tt.surface, it.Surface())
			assert.Equal(t, tt.position, it.Position())
			assert.Equal(t, tt.userID, it.UserID())
			assert.Equal(t, tt.itemID, it.ItemID())
			assert.False(t, it.CreatedAt().IsZero())
			assert.Zero(t, it.ID())
		})
	}
}

func TestNewInteractionRaisesRecordedEvent(t *testing.T) {
	it, err := NewInteraction(i64(1), i64(10), CategoryClick, SurfaceTag, 2)
	require.NoError(t, err)

	require.Len(t, it.Events(), 1)
	recorded, ok := it.Events()[0].(event.InteractionRecorded)
	require.True(t, ok)
	assert.Equal(t, "interaction.recorded", recorded.EventName())
	assert.Equal(t, "10", recorded.AggregateID())
	assert.Equal(t, "click", recorded.Category)
	assert.Equal(t, "tag", recorded.Surface)
	assert.Equal(t, 2, recorded.Position)

	it.ClearEvents()
	assert.Empty(t, it.Events())
}

func TestReconstructInteractionRaisesNoEvents(t *testing.T) {
	it := ReconstructInteraction(5, i64(1), i64(10), CategoryReaction, SurfaceHome, 1, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, int64(5), it.ID())
	assert.Empty(t, it.Events())
}
