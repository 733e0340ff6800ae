package event

import "strconv"

// JourneyAttributed is raised when a reaction/comment request is linked back
// to the click that produced it.
type JourneyAttributed struct {
	Base
	UserID   int64  `json:"user_id"`
	ItemID   int64  `json:"item_id"`
	Category string `json:"category"`
	Surface  string `json:"surface"`
	Position int    `json:"position"`
}

// NewJourneyAttributed creates a new JourneyAttributed event.
func NewJourneyAttributed(userID, itemID int64, category, surface string, position int) JourneyAttributed {
	return JourneyAttributed{
		Base:     NewBase(strconv.FormatInt(itemID, 10)),
		UserID:   userID,
		ItemID:   itemID,
		Category: category,
		Surface:  surface,
		Position: position,
	}
}

// EventName returns the event name.
func (e JourneyAttributed) EventName() string {
	return "journey.attributed"
}
