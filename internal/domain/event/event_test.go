package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInteractionRecorded(t *testing.T) {
	userID, itemID := int64(7), int64(10)
	e := NewInteractionRecorded(&userID, &itemID, "click", "home", 3)

	assert.Equal(t, "interaction.recorded", e.EventName())
	assert.Equal(t, "10", e.AggregateID())
	assert.Equal(t, "click", e.Category)
	assert.Equal(t, "home", e.Surface)
	assert.Equal(t, 3, e.Position)
	assert.NotEmpty(t, e.EventID())
	assert.False(t, e.OccurredAt().IsZero())
}

func TestInteractionRecordedWithoutItem(t *testing.T) {
	e := NewInteractionRecorded(nil, nil, "impression", "search", 1)

	assert.Equal(t, "-", e.AggregateID())
	assert.Nil(t, e.UserID)
	assert.Nil(t, e.ItemID)
}

func TestJourneyAttributed(t *testing.T) {
	e := NewJourneyAttributed(7, 10, "reaction", "search", 4)

	assert.Equal(t, "journey.attributed", e.EventName())
	assert.Equal(t, "10", e.AggregateID())
	assert.Equal(t, int64(7), e.UserID)
	assert.Equal(t, "reaction", e.Category)
	assert.Equal(t, "search", e.Surface)
	assert.Equal(t, 4, e.Position)
}

func TestRollupSynced(t *testing.T) {
	e := NewRollupSynced(10, 5, 2, 3.5)

	assert.Equal(t, "rollup.synced", e.EventName())
	assert.Equal(t, "10", e.AggregateID())
	assert.Equal(t, int64(5), e.Impressions)
	assert.Equal(t, int64(2), e.Clicks)
	assert.InDelta(t, 3.5, e.SuccessScore, 1e-9)
}

func TestEventIDsAreUnique(t *testing.T) {
	a := NewRollupSynced(1, 0, 0, 0)
	b := NewRollupSynced(1, 0, 0, 0)
	assert.NotEqual(t, a.EventID(), b.EventID())
}
