package domain

import "feed-engagement/internal/domain/event"

// AttributeJourney decides whether a reaction/comment request by a user on an
// item continues a journey, and if so synthesizes the interaction to append.
//
// The candidate is the single most recent event among the user's prior
// impressions and clicks for the item, ordered by created_at descending with
// the higher event id winning on identical timestamps. Older events are
// irrelevant once superseded. An impression candidate does not open a
// journey; only a click does. The synthesized interaction takes the requested
// category but inherits surface and position verbatim from the candidate
// click, not from the new request.
//
// The function is pure: it never touches storage, and produces at most one
// draft per call. It returns (nil, false) when no journey applies.
func AttributeJourney(prior []*Interaction, userID, itemID int64, category Category) (*Interaction, bool) {
	if !category.IsJourneyCategory() {
		return nil, false
	}

	var candidate *Interaction
	for _, e := range prior {
		if e.Category() != CategoryImpression && e.Category() != CategoryClick {
			continue
		}
		if candidate == nil || moreRecent(e, candidate) {
			candidate = e
		}
	}
	if candidate == nil || candidate.Category() != CategoryClick {
		return nil, false
	}

	draft, err := NewInteraction(&userID, &itemID, category, candidate.Surface(), candidate.Position())
	if err != nil {
		// The candidate came from the validated event log.
		return nil, false
	}
	draft.addEvent(event.NewJourneyAttributed(userID, itemID, category.String(), candidate.Surface().String(), candidate.Position()))
	return draft, true
}

// moreRecent reports whether a supersedes b, breaking created_at ties by the
// higher event id.
func moreRecent(a, b *Interaction) bool {
	if a.CreatedAt().Equal(b.CreatedAt()) {
		return a.ID() > b.ID()
	}
	return a.CreatedAt().After(b.CreatedAt())
}
