package domain

import (
	"time"

	"feed-engagement/internal/domain/event"
)

// Compile-time interface check
var _ AggregateRoot = (*Interaction)(nil)

// Interaction is the aggregate root for a single user-interaction event.
// It is immutable once appended: the event log has no update or delete path,
// corrections happen by appending compensating interactions.
type Interaction struct {
	id        int64
	userID    *int64
	itemID    *int64
	category  Category
	surface   Surface
	position  int
	createdAt time.Time

	events []event.Event
}

// NewInteraction creates a new interaction, validating position, category and
// surface. It raises an InteractionRecorded event.
func NewInteraction(userID, itemID *int64, category Category, surface Surface, position int) (*Interaction, error) {
	if !category.IsValid() {
		return nil, ErrUnknownCategory
	}
	if !surface.IsValid() {
		return nil, ErrUnknownSurface
	}
	if position <= 0 {
		return nil, ErrInvalidPosition
	}

	it := &Interaction{
		userID:    userID,
		itemID:    itemID,
		category:  category,
		surface:   surface,
		position:  position,
		createdAt: time.Now().UTC(),
		events:    make([]event.Event, 0, 1),
	}
	it.addEvent(event.NewInteractionRecorded(userID, itemID, category.String(), surface.String(), position))
	return it, nil
}

// ReconstructInteraction rebuilds an interaction from persistence. It raises
// no events.
func ReconstructInteraction(id int64, userID, itemID *int64, category Category, surface Surface, position int, createdAt time.Time) *Interaction {
	return &Interaction{
		id:        id,
		userID:    userID,
		itemID:    itemID,
		category:  category,
		surface:   surface,
		position:  position,
		createdAt: createdAt,
	}
}

// ID returns the interaction's unique identifier, or 0 before persistence.
func (i *Interaction) ID() int64 {
	return i.id
}

// UserID returns the acting user's id, or nil for anonymous interactions.
func (i *Interaction) UserID() *int64 {
	return i.userID
}

// ItemID returns the content item's id, or nil when the interaction is not
// attributable to any item. Such interactions are stored but never scored.
func (i *Interaction) ItemID() *int64 {
	return i.itemID
}

// Category returns the interaction category.
func (i *Interaction) Category() Category {
	return i.category
}

// Surface returns where the interaction occurred.
func (i *Interaction) Surface() Surface {
	return i.surface
}

// Position returns the item's rank within the surface at interaction time.
func (i *Interaction) Position() int {
	return i.position
}

// CreatedAt returns when the interaction was recorded. It is the only
// ordering key for journey lookups.
func (i *Interaction) CreatedAt() time.Time {
	return i.createdAt
}

// SetID sets the interaction's id. Called by the repository after persistence.
func (i *Interaction) SetID(id int64) {
	i.id = id
}

func (i *Interaction) addEvent(e event.Event) {
	i.events = append(i.events, e)
}

// Events returns all uncommitted domain events.
func (i *Interaction) Events() []event.Event {
	return i.events
}

// ClearEvents clears all domain events after they have been dispatched.
func (i *Interaction) ClearEvents() {
	i.events = nil
}
