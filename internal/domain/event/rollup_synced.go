package event

import "strconv"

// RollupSynced is raised after an item's counter triple has been written.
type RollupSynced struct {
	Base
	ItemID       int64   `json:"item_id"`
	Impressions  int64   `json:"impressions"`
	Clicks       int64   `json:"clicks"`
	SuccessScore float64 `json:"success_score"`
}

// NewRollupSynced creates a new RollupSynced event.
func NewRollupSynced(itemID, impressions, clicks int64, successScore float64) RollupSynced {
	return RollupSynced{
		Base:         NewBase(strconv.FormatInt(itemID, 10)),
		ItemID:       itemID,
		Impressions:  impressions,
		Clicks:       clicks,
		SuccessScore: successScore,
	}
}

// EventName returns the event name.
func (e RollupSynced) EventName() string {
	return "rollup.synced"
}
