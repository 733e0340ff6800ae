package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testWeights = ScoreWeights{Reaction: 2.0, Comment: 4.0}

func i64(v int64) *int64 { return &v }

// mkInteraction builds a persisted-looking interaction for one item.
func mkInteraction(id int64, userID *int64, itemID int64, category Category, at time.Time) *Interaction {
	return ReconstructInteraction(id, userID, i64(itemID), category, SurfaceHome, 1, at)
}

func TestComputeRollup(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		events []*Interaction
		want   Rollup
	}{
		{
			name:   "empty event set",
			events: nil,
			want:   Rollup{},
		},
		{
			name: "zero impressions means zero score",
			events: []*Interaction{
				mkInteraction(1, i64(1), 10, CategoryClick, base),
				mkInteraction(2, i64(1), 10, CategoryReaction, base.Add(time.Minute)),
			},
			want: Rollup{Clicks: 1, SuccessScore: 0.0},
		},
		{
			name: "one impressing user alone",
			events: []*Interaction{
				mkInteraction(1, i64(1), 10, CategoryImpression, base),
			},
			// D=1, R=0, C=0: (1 + 0 + 0) / 1
			want: Rollup{Impressions: 1, SuccessScore: 1.0},
		},
		{
			name: "one reacting and one impressing user",
			events: []*Interaction{
				mkInteraction(1, i64(1), 10, CategoryImpression, base),
				mkInteraction(2, i64(2), 10, CategoryReaction, base.Add(time.Minute)),
			},
			// D=1, R=1: 1 + ReactionMultiplier
			want: Rollup{Impressions: 1, SuccessScore: 1 + 2.0},
		},
		{
			name: "two impressing users halve the score",
			events: []*Interaction{
				mkInteraction(1, i64(1), 10, CategoryImpression, base),
				mkInteraction(2, i64(2), 10, CategoryImpression, base.Add(time.Second)),
				mkInteraction(3, i64(3), 10, CategoryReaction, base.Add(time.Minute)),
				mkInteraction(4, i64(4), 10, CategoryComment, base.Add(2*time.Minute)),
			},
			// D=2, R=1, C=1: (1 + 2 + 4) / 2
			want: Rollup{Impressions: 2, SuccessScore: (1 + 2.0 + 4.0) / 2.0},
		},
		{
			name: "duplicates raise raw counts but not distinct-user components",
			events: []*Interaction{
				mkInteraction(1, i64(1), 10, CategoryImpression, base),
				mkInteraction(2, i64(1), 10, CategoryImpression, base.Add(time.Second)),
				mkInteraction(3, i64(1), 10, CategoryImpression, base.Add(2*time.Second)),
				mkInteraction(4, i64(1), 10, CategoryClick, base.Add(3*time.Second)),
				mkInteraction(5, i64(1), 10, CategoryClick, base.Add(4*time.Second)),
				mkInteraction(6, i64(2), 10, CategoryReaction, base.Add(time.Minute)),
				mkInteraction(7, i64(2), 10, CategoryReaction, base.Add(2*time.Minute)),
			},
			// D=1 despite three impressions, R=1 despite two reactions
			want: Rollup{Impressions: 3, Clicks: 2, SuccessScore: 1 + 2.0},
		},
		{
			name: "anonymous events count raw but never extend distinct sets",
			events: []*Interaction{
				mkInteraction(1, nil, 10, CategoryImpression, base),
				mkInteraction(2, nil, 10, CategoryClick, base.Add(time.Second)),
				mkInteraction(3, nil, 10, CategoryReaction, base.Add(time.Minute)),
			},
			// no identified impressing user, so D=0 and the score stays 0
			want: Rollup{Impressions: 1, Clicks: 1, SuccessScore: 0.0},
		},
		{
			name: "events without an item are never counted",
			events: []*Interaction{
				ReconstructInteraction(1, i64(1), nil, CategoryImpression, SurfaceHome, 1, base),
				mkInteraction(2, i64(2), 10, CategoryImpression, base),
			},
			want: Rollup{Impressions: 1, SuccessScore: 1.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeRollup(tt.events, testWeights)
			assert.Equal(t, tt.want.Impressions, got.Impressions)
			assert.Equal(t, tt.want.Clicks, got.Clicks)
			assert.InDelta(t, tt.want.SuccessScore, got.SuccessScore, 1e-9)
		})
	}
}

func TestComputeRollupIdempotent(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	events := []*Interaction{
		mkInteraction(1, i64(1), 10, CategoryImpression, base),
		mkInteraction(2, i64(2), 10, CategoryImpression, base.Add(time.Second)),
		mkInteraction(3, i64(1), 10, CategoryClick, base.Add(2*time.Second)),
		mkInteraction(4, i64(3), 10, CategoryComment, base.Add(time.Minute)),
	}

	first := ComputeRollup(events, testWeights)
	second := ComputeRollup(events, testWeights)
	assert.Equal(t, first, second)
}

func TestComputeRollupOrderIndependent(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	events := []*Interaction{
		mkInteraction(1, i64(1), 10, CategoryImpression, base),
		mkInteraction(2, i64(2), 10, CategoryReaction, base.Add(time.Second)),
		mkInteraction(3, i64(3), 10, CategoryClick, base.Add(2*time.Second)),
	}
	reversed := []*Interaction{events[2], events[1], events[0]}

	assert.Equal(t, ComputeRollup(events, testWeights), ComputeRollup(reversed, testWeights))
}

func TestComputeRollupVariedWeights(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	events := []*Interaction{
		mkInteraction(1, i64(1), 10, CategoryImpression, base),
		mkInteraction(2, i64(2), 10, CategoryReaction, base.Add(time.Second)),
		mkInteraction(3, i64(3), 10, CategoryComment, base.Add(2*time.Second)),
	}

	got := ComputeRollup(events, ScoreWeights{Reaction: 10, Comment: 100})
	assert.InDelta(t, 1+10.0+100.0, got.SuccessScore, 1e-9)
}
