// Code generated by ent, DO NOT EDIT.

package ent

import (
	"feed-engagement/ent/interactionevent"
	"feed-engagement/ent/item"
	"feed-engagement/ent/outboxmessage"
	"feed-engagement/ent/schema"
	"time"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	interactioneventFields := schema.InteractionEvent{}.Fields()
	_ = interactioneventFields
	// interactioneventDescPosition is the schema descriptor for position field.
	interactioneventDescPosition := interactioneventFields[4].Descriptor()
	// interactionevent.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	interactionevent.PositionValidator = interactioneventDescPosition.Validators[0].(func(int) error)
	// interactioneventDescCreatedAt is the schema descriptor for created_at field.
	interactioneventDescCreatedAt := interactioneventFields[5].Descriptor()
	// interactionevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	interactionevent.DefaultCreatedAt = interactioneventDescCreatedAt.Default.(func() time.Time)
	itemFields := schema.Item{}.Fields()
	_ = itemFields
	// itemDescImpressionsCount is the schema descriptor for impressions_count field.
	itemDescImpressionsCount := itemFields[1].Descriptor()
	// item.DefaultImpressionsCount holds the default value on creation for the impressions_count field.
	item.DefaultImpressionsCount = itemDescImpressionsCount.Default.(int64)
	// item.ImpressionsCountValidator is a validator for the "impressions_count" field. It is called by the builders before save.
	item.ImpressionsCountValidator = itemDescImpressionsCount.Validators[0].(func(int64) error)
	// itemDescClicksCount is the schema descriptor for clicks_count field.
	itemDescClicksCount := itemFields[2].Descriptor()
	// item.DefaultClicksCount holds the default value on creation for the clicks_count field.
	item.DefaultClicksCount = itemDescClicksCount.Default.(int64)
	// item.ClicksCountValidator is a validator for the "clicks_count" field. It is called by the builders before save.
	item.ClicksCountValidator = itemDescClicksCount.Validators[0].(func(int64) error)
	// itemDescSuccessScore is the schema descriptor for success_score field.
	itemDescSuccessScore := itemFields[3].Descriptor()
	// item.DefaultSuccessScore holds the default value on creation for the success_score field.
	item.DefaultSuccessScore = itemDescSuccessScore.Default.(float64)
	// itemDescUpdatedAt is the schema descriptor for updated_at field.
	itemDescUpdatedAt := itemFields[4].Descriptor()
	// item.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	item.DefaultUpdatedAt = itemDescUpdatedAt.Default.(func() time.Time)
	// item.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	item.UpdateDefaultUpdatedAt = itemDescUpdatedAt.UpdateDefault.(func() time.Time)
	outboxmessageFields := schema.OutboxMessage{}.Fields()
	_ = outboxmessageFields
	// outboxmessageDescUUID is the schema descriptor for uuid field.
	outboxmessageDescUUID := outboxmessageFields[0].Descriptor()
	// outboxmessage.UUIDValidator is a validator for the "uuid" field. It is called by the builders before save.
	outboxmessage.UUIDValidator = outboxmessageDescUUID.Validators[0].(func(string) error)
	// outboxmessageDescPayload is the schema descriptor for payload field.
	outboxmessageDescPayload := outboxmessageFields[1].Descriptor()
	// outboxmessage.PayloadValidator is a validator for the "payload" field. It is called by the builders before save.
	outboxmessage.PayloadValidator = outboxmessageDescPayload.Validators[0].(func([]byte) error)
	// outboxmessageDescCreatedAt is the schema descriptor for created_at field.
	outboxmessageDescCreatedAt := outboxmessageFields[3].Descriptor()
	// outboxmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	outboxmessage.DefaultCreatedAt = outboxmessageDescCreatedAt.Default.(func() time.Time)
}
