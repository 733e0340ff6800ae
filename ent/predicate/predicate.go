// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// InteractionEvent is the predicate function for interactionevent builders.
type InteractionEvent func(*sql.Selector)

// Item is the predicate function for item builders.
type Item func(*sql.Selector)

// OutboxMessage is the predicate function for outboxmessage builders.
type OutboxMessage func(*sql.Selector)
