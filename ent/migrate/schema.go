// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// InteractionEventsColumns holds the columns for the "interaction_events" table.
	InteractionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt64, Nullable: true},
		{Name: "item_id", Type: field.TypeInt64, Nullable: true},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"impression", "click", "reaction", "comment"}},
		{Name: "surface", Type: field.TypeEnum, Enums: []string{"home", "search", "tag"}},
		{Name: "position", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
	}
	// InteractionEventsTable holds the schema information for the "interaction_events" table.
	InteractionEventsTable = &schema.Table{
		Name:       "interaction_events",
		Columns:    InteractionEventsColumns,
		PrimaryKey: []*schema.Column{InteractionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "interactionevent_item_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[2], InteractionEventsColumns[6]},
			},
			{
				Name:    "interactionevent_user_id_item_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[1], InteractionEventsColumns[2], InteractionEventsColumns[6]},
			},
		},
	}
	// ItemsColumns holds the columns for the "items" table.
	ItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "impressions_count", Type: field.TypeInt64, Default: 0},
		{Name: "clicks_count", Type: field.TypeInt64, Default: 0},
		{Name: "success_score", Type: field.TypeFloat64, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ItemsTable holds the schema information for the "items" table.
	ItemsTable = &schema.Table{
		Name:       "items",
		Columns:    ItemsColumns,
		PrimaryKey: []*schema.Column{ItemsColumns[0]},
	}
	// OutboxMessagesColumns holds the columns for the "outbox_messages" table.
	OutboxMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "uuid", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "varchar(36)", "sqlite3": "varchar(36)"}},
		{Name: "payload", Type: field.TypeBytes},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// OutboxMessagesTable holds the schema information for the "outbox_messages" table.
	OutboxMessagesTable = &schema.Table{
		Name:       "outbox_messages",
		Columns:    OutboxMessagesColumns,
		PrimaryKey: []*schema.Column{OutboxMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "outboxmessage_created_at",
				Unique:  false,
				Columns: []*schema.Column{OutboxMessagesColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		InteractionEventsTable,
		ItemsTable,
		OutboxMessagesTable,
	}
)

func init() {
}
