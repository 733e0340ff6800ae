package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Item holds the schema definition for the per-item rollup counters. Item
// identity is owned elsewhere; this table only carries the derived triple,
// keyed by the externally assigned item id.
type Item struct {
	ent.Schema
}

// Fields of the Item.
func (Item) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			Comment("Externally assigned item id"),
		field.Int64("impressions_count").
			Default(0).
			NonNegative().
			Comment("Raw impression event count, repeats included"),
		field.Int64("clicks_count").
			Default(0).
			NonNegative().
			Comment("Raw click event count, repeats included"),
		field.Float("success_score").
			Default(0).
			Comment("Distinct-user-weighted success score"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the rollup was last written"),
	}
}

// Edges of the Item.
func (Item) Edges() []ent.Edge {
	return nil
}
