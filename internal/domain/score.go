package domain

// ScoreWeights are the per-category multipliers applied to distinct-user
// counts when computing an item's success score. They are injected
// configuration, never read from ambient state, so tests can vary them.
type ScoreWeights struct {
	Reaction float64
	Comment  float64
}

// Rollup is the derived aggregate for one item. It has no identity of its
// own: it must always be reproducible from the item's event log.
type Rollup struct {
	Impressions  int64
	Clicks       int64
	SuccessScore float64
}

// ComputeRollup maps the full event set of one item into its rollup.
//
// Impressions and clicks are raw event counts, repeats included. The success
// score weights distinct users instead: with D the number of distinct users
// that impressed, R that reacted and C that commented, the score is
//
//	(1 + R*w.Reaction + C*w.Comment) / D
//
// when D > 0, and 0.0 otherwise. The leading 1 is counted once per item, not
// per user. Anonymous interactions carry no user id and never extend the
// distinct sets.
//
// The function is pure and order-independent; recomputing on the same event
// set always yields the same triple.
func ComputeRollup(events []*Interaction, w ScoreWeights) Rollup {
	var r Rollup

	impressed := make(map[int64]struct{})
	reacted := make(map[int64]struct{})
	commented := make(map[int64]struct{})

	for _, e := range events {
		if e.ItemID() == nil {
			continue
		}
		switch e.Category() {
		case CategoryImpression:
			r.Impressions++
			markDistinct(impressed, e.UserID())
		case CategoryClick:
			r.Clicks++
		case CategoryReaction:
			markDistinct(reacted, e.UserID())
		case CategoryComment:
			markDistinct(commented, e.UserID())
		}
	}

	if d := len(impressed); d > 0 {
		r.SuccessScore = (1 +
			float64(len(reacted))*w.Reaction +
			float64(len(commented))*w.Comment) / float64(d)
	}
	return r
}

func markDistinct(set map[int64]struct{}, userID *int64) {
	if userID != nil {
		set[*userID] = struct{}{}
	}
}
