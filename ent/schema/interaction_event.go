package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InteractionEvent holds the schema definition for the append-only
// interaction event log.
type InteractionEvent struct {
	ent.Schema
}

// Fields of the InteractionEvent.
func (InteractionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("user_id").
			Optional().
			Nillable().
			Comment("Acting user, absent for anonymous interactions"),
		field.Int64("item_id").
			Optional().
			Nillable().
			Comment("Content item, absent when the interaction is not attributable"),
		field.Enum("category").
			Values("impression", "click", "reaction", "comment").
			Comment("Interaction category"),
		field.Enum("surface").
			Values("home", "search", "tag").
			Comment("Product surface where the interaction occurred"),
		field.Int("position").
			Positive().
			Comment("Item rank within the surface at interaction time"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Only ordering key for journey lookups"),
	}
}

// Edges of the InteractionEvent.
func (InteractionEvent) Edges() []ent.Edge {
	return nil
}

// Indexes of the InteractionEvent.
func (InteractionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id", "created_at"),
		index.Fields("user_id", "item_id", "created_at"),
	}
}
