package event

import "strconv"

// InteractionRecorded is raised whenever an interaction is appended to the
// event log. The counter synchronizer subscribes to it: when ItemID is set,
// the item's rollup is recomputed.
type InteractionRecorded struct {
	Base
	UserID   *int64 `json:"user_id,omitempty"`
	ItemID   *int64 `json:"item_id,omitempty"`
	Category string `json:"category"`
	Surface  string `json:"surface"`
	Position int    `json:"position"`
}

// NewInteractionRecorded creates a new InteractionRecorded event.
func NewInteractionRecorded(userID, itemID *int64, category, surface string, position int) InteractionRecorded {
	return InteractionRecorded{
		Base:     NewBase(aggregateID(itemID)),
		UserID:   userID,
		ItemID:   itemID,
		Category: category,
		Surface:  surface,
		Position: position,
	}
}

// EventName returns the event name.
func (e InteractionRecorded) EventName() string {
	return "interaction.recorded"
}

// aggregateID renders the item id, or "-" for interactions that are not
// attributable to any item.
func aggregateID(itemID *int64) string {
	if itemID == nil {
		return "-"
	}
	return strconv.FormatInt(*itemID, 10)
}
