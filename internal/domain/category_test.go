package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	for _, c := range Categories {
		got, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
		assert.True(t, got.IsValid())
	}

	for _, raw := range []string{"", "view", "IMPRESSION", "clicks"} {
		_, err := ParseCategory(raw)
		assert.ErrorIs(t, err, ErrUnknownCategory, "raw=%q", raw)
	}
}

func TestCategoryIsJourneyCategory(t *testing.T) {
	assert.False(t, CategoryImpression.IsJourneyCategory())
	assert.False(t, CategoryClick.IsJourneyCategory())
	assert.True(t, CategoryReaction.IsJourneyCategory())
	assert.True(t, CategoryComment.IsJourneyCategory())
}

func TestParseSurface(t *testing.T) {
	for _, s := range Surfaces {
		got, err := ParseSurface(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
		assert.True(t, got.IsValid())
	}

	for _, raw := range []string{"", "feed", "Home", "tags"} {
		_, err := ParseSurface(raw)
		assert.ErrorIs(t, err, ErrUnknownSurface, "raw=%q", raw)
	}
}
