// Code generated by ent, DO NOT EDIT.

package ent

import (
	"feed-engagement/ent/item"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// Item is the model entity for the Item schema.
type Item struct {
	config `json:"-"`
	// ID of the ent.
	// Externally assigned item id
	ID int64 `json:"id,omitempty"`
	// Raw impression event count, repeats included
	ImpressionsCount int64 `json:"impressions_count,omitempty"`
	// Raw click event count, repeats included
	ClicksCount int64 `json:"clicks_count,omitempty"`
	// Distinct-user-weighted success score
	SuccessScore float64 `json:"success_score,omitempty"`
	// When the rollup was last written
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Item) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case item.FieldSuccessScore:
			values[i] = new(sql.NullFloat64)
		case item.FieldID, item.FieldImpressionsCount, item.FieldClicksCount:
			values[i] = new(sql.NullInt64)
		case item.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Item fields.
func (_m *Item) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case item.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case item.FieldImpressionsCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field impressions_count", values[i])
			} else if value.Valid {
				_m.ImpressionsCount = value.Int64
			}
		case item.FieldClicksCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field clicks_count", values[i])
			} else if value.Valid {
				_m.ClicksCount = value.Int64
			}
		case item.FieldSuccessScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field success_score", values[i])
			} else if value.Valid {
				_m.SuccessScore = value.Float64
			}
		case item.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Item.
// This includes values selected through modifiers, order, etc.
func (_m *Item) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Item.
// Note that you need to call Item.Unwrap() before calling this method if this Item
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Item) Update() *ItemUpdateOne {
	return NewItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Item entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Item) Unwrap() *Item {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Item is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Item) String() string {
	var builder strings.Builder
	builder.WriteString("Item(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("impressions_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImpressionsCount))
	builder.WriteString(", ")
	builder.WriteString("clicks_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClicksCount))
	builder.WriteString(", ")
	builder.WriteString("success_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuccessScore))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Items is a parsable slice of Item.
type Items []*Item
