// Code generated by ent, DO NOT EDIT.

package interactionevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the interactionevent type in the database.
	Label = "interaction_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldItemID holds the string denoting the item_id field in the database.
	FieldItemID = "item_id"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldSurface holds the string denoting the surface field in the database.
	FieldSurface = "surface"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the interactionevent in the database.
	Table = "interaction_events"
)

// Columns holds all SQL columns for interactionevent fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldItemID,
	FieldCategory,
	FieldSurface,
	FieldPosition,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PositionValidator is a validator for the "position" field. It is called by the builders before save.
	PositionValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Category defines the type for the "category" enum field.
type Category string

// Category values.
const (
	CategoryImpression Category = "impression"
	CategoryClick      Category = "click"
	CategoryReaction   Category = "reaction"
	CategoryComment    Category = "comment"
)

func (c Category) String() string {
	return string(c)
}

// CategoryValidator is a validator for the "category" field enum values. It is called by the builders before save.
func CategoryValidator(c Category) error {
	switch c {
	case CategoryImpression, CategoryClick, CategoryReaction, CategoryComment:
		return nil
	default:
		return fmt.Errorf("interactionevent: invalid enum value for category field: %q", c)
	}
}

// Surface defines the type for the "surface" enum field.
type Surface string

// Surface values.
const (
	SurfaceHome   Surface = "home"
	SurfaceSearch Surface = "search"
	SurfaceTag    Surface = "tag"
)

func (s Surface) String() string {
	return string(s)
}

// SurfaceValidator is a validator for the "surface" field enum values. It is called by the builders before save.
func SurfaceValidator(s Surface) error {
	switch s {
	case SurfaceHome, SurfaceSearch, SurfaceTag:
		return nil
	default:
		return fmt.Errorf("interactionevent: invalid enum value for surface field: %q", s)
	}
}

// OrderOption defines the ordering options for the InteractionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByItemID orders the results by the item_id field.
func ByItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemID, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// BySurface orders the results by the surface field.
func BySurface(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSurface, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
