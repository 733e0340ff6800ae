package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeJourney(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	const (
		userID = int64(7)
		itemID = int64(10)
	)

	exposure := func(id int64, category Category, surface Surface, position int, at time.Time) *Interaction {
		return ReconstructInteraction(id, i64(userID), i64(itemID), category, surface, position, at)
	}

	t.Run("click followed by reaction continues the journey", func(t *testing.T) {
		prior := []*Interaction{
			exposure(2, CategoryClick, SurfaceSearch, 3, base.Add(time.Minute)),
			exposure(1, CategoryImpression, SurfaceHome, 1, base),
		}

		draft, ok := AttributeJourney(prior, userID, itemID, CategoryReaction)
		require.True(t, ok)
		require.NotNil(t, draft)

		assert.Equal(t, CategoryReaction, draft.Category())
		assert.Equal(t, userID, *draft.UserID())
		assert.Equal(t, itemID, *draft.ItemID())
		// placement metadata comes from the click, not the new interaction
		assert.Equal(t, SurfaceSearch, draft.Surface())
		assert.Equal(t, 3, draft.Position())
	})

	t.Run("impression alone does not open a journey", func(t *testing.T) {
		prior := []*Interaction{
			exposure(1, CategoryImpression, SurfaceHome, 1, base),
		}

		draft, ok := AttributeJourney(prior, userID, itemID, CategoryReaction)
		assert.False(t, ok)
		assert.Nil(t, draft)
	})

	t.Run("no prior events means no journey", func(t *testing.T) {
		draft, ok := AttributeJourney(nil, userID, itemID, CategoryComment)
		assert.False(t, ok)
		assert.Nil(t, draft)
	})

	t.Run("an impression after the click supersedes it", func(t *testing.T) {
		prior := []*Interaction{
			exposure(1, CategoryClick, SurfaceHome, 1, base),
			exposure(2, CategoryImpression, SurfaceHome, 2, base.Add(time.Minute)),
		}

		draft, ok := AttributeJourney(prior, userID, itemID, CategoryReaction)
		assert.False(t, ok)
		assert.Nil(t, draft)
	})

	t.Run("prior reactions and comments are not candidates", func(t *testing.T) {
		prior := []*Interaction{
			exposure(1, CategoryClick, SurfaceTag, 5, base),
			exposure(2, CategoryReaction, SurfaceHome, 1, base.Add(time.Minute)),
			exposure(3, CategoryComment, SurfaceHome, 1, base.Add(2*time.Minute)),
		}

		// the click stays the most recent qualifying event
		draft, ok := AttributeJourney(prior, userID, itemID, CategoryComment)
		require.True(t, ok)
		assert.Equal(t, CategoryComment, draft.Category())
		assert.Equal(t, SurfaceTag, draft.Surface())
		assert.Equal(t, 5, draft.Position())
	})

	t.Run("identical timestamps break ties by the higher id", func(t *testing.T) {
		prior := []*Interaction{
			exposure(1, CategoryClick, SurfaceHome, 1, base),
			exposure(2, CategoryImpression, SurfaceHome, 1, base),
		}

		draft, ok := AttributeJourney(prior, userID, itemID, CategoryReaction)
		assert.False(t, ok, "impression with the higher id wins the tie")
		assert.Nil(t, draft)

		prior = []*Interaction{
			exposure(1, CategoryImpression, SurfaceHome, 1, base),
			exposure(2, CategoryClick, SurfaceSearch, 4, base),
		}

		draft, ok = AttributeJourney(prior, userID, itemID, CategoryReaction)
		require.True(t, ok, "click with the higher id wins the tie")
		assert.Equal(t, SurfaceSearch, draft.Surface())
	})

	t.Run("only journey categories are attributed", func(t *testing.T) {
		prior := []*Interaction{
			exposure(1, CategoryClick, SurfaceHome, 1, base),
		}

		for _, category := range []Category{CategoryImpression, CategoryClick} {
			draft, ok := AttributeJourney(prior, userID, itemID, category)
			assert.False(t, ok)
			assert.Nil(t, draft)
		}
	})

	t.Run("draft raises recorded and attributed events", func(t *testing.T) {
		prior := []*Interaction{
			exposure(1, CategoryClick, SurfaceHome, 2, base),
		}

		draft, ok := AttributeJourney(prior, userID, itemID, CategoryReaction)
		require.True(t, ok)

		names := make([]string, 0, len(draft.Events()))
		for _, e := range draft.Events() {
			names = append(names, e.EventName())
		}
		assert.Equal(t, []string{"interaction.recorded", "journey.attributed"}, names)
	})
}
