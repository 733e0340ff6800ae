// Code generated by ent, DO NOT EDIT.

package item

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the item type in the database.
	Label = "item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldImpressionsCount holds the string denoting the impressions_count field in the database.
	FieldImpressionsCount = "impressions_count"
	// FieldClicksCount holds the string denoting the clicks_count field in the database.
	FieldClicksCount = "clicks_count"
	// FieldSuccessScore holds the string denoting the success_score field in the database.
	FieldSuccessScore = "success_score"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the item in the database.
	Table = "items"
)

// Columns holds all SQL columns for item fields.
var Columns = []string{
	FieldID,
	FieldImpressionsCount,
	FieldClicksCount,
	FieldSuccessScore,
	FieldUpdatedAt,
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
	// DefaultImpressionsCount holds the default value on creation for the "impressions_count" field.
	DefaultImpressionsCount int64
	// ImpressionsCountValidator is a validator for the "impressions_count" field. It is called by the builders before save.
	ImpressionsCountValidator func(int64) error
	// DefaultClicksCount holds the default value on creation for the "clicks_count" field.
	DefaultClicksCount int64
	// ClicksCountValidator is a validator for the "clicks_count" field. It is called by the builders before save.
	ClicksCountValidator func(int64) error
	// DefaultSuccessScore holds the default value on creation for the "success_score" field.
	DefaultSuccessScore float64
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Item queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByImpressionsCount orders the results by the impressions_count field.
func ByImpressionsCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImpressionsCount, opts...).ToFunc()
}

// ByClicksCount orders the results by the clicks_count field.
func ByClicksCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClicksCount, opts...).ToFunc()
}

// BySuccessScore orders the results by the success_score field.
func BySuccessScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccessScore, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
