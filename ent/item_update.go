// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"feed-engagement/ent/item"
	"feed-engagement/ent/predicate"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ItemUpdate is the builder for updating Item entities.
type ItemUpdate struct {
	config
	hooks    []Hook
	mutation *ItemMutation
}

// Where appends a list predicates to the ItemUpdate builder.
func (_u *ItemUpdate) Where(ps ...predicate.Item) *ItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetImpressionsCount sets the "impressions_count" field.
func (_u *ItemUpdate) SetImpressionsCount(v int64) *ItemUpdate {
	_u.mutation.ResetImpressionsCount()
	_u.mutation.SetImpressionsCount(v)
	return _u
}

// SetNillableImpressionsCount sets the "impressions_count" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableImpressionsCount(v *int64) *ItemUpdate {
	if v != nil {
		_u.SetImpressionsCount(*v)
	}
	return _u
}

// AddImpressionsCount adds value to the "impressions_count" field.
func (_u *ItemUpdate) AddImpressionsCount(v int64) *ItemUpdate {
	_u.mutation.AddImpressionsCount(v)
	return _u
}

// SetClicksCount sets the "clicks_count" field.
func (_u *ItemUpdate) SetClicksCount(v int64) *ItemUpdate {
	_u.mutation.ResetClicksCount()
	_u.mutation.SetClicksCount(v)
	return _u
}

// SetNillableClicksCount sets the "clicks_count" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableClicksCount(v *int64) *ItemUpdate {
	if v != nil {
		_u.SetClicksCount(*v)
	}
	return _u
}

// AddClicksCount adds value to the "clicks_count" field.
func (_u *ItemUpdate) AddClicksCount(v int64) *ItemUpdate {
	_u.mutation.AddClicksCount(v)
	return _u
}

// SetSuccessScore sets the "success_score" field.
func (_u *ItemUpdate) SetSuccessScore(v float64) *ItemUpdate {
	_u.mutation.ResetSuccessScore()
	_u.mutation.SetSuccessScore(v)
	return _u
}

// SetNillableSuccessScore sets the "success_score" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableSuccessScore(v *float64) *ItemUpdate {
	if v != nil {
		_u.SetSuccessScore(*v)
	}
	return _u
}

// AddSuccessScore adds value to the "success_score" field.
func (_u *ItemUpdate) AddSuccessScore(v float64) *ItemUpdate {
	_u.mutation.AddSuccessScore(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ItemUpdate) SetUpdatedAt(v time.Time) *ItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ItemMutation object of the builder.
func (_u *ItemUpdate) Mutation() *ItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := item.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemUpdate) check() error {
	if v, ok := _u.mutation.ImpressionsCount(); ok {
		if err := item.ImpressionsCountValidator(v); err != nil {
			return &ValidationError{Name: "impressions_count", err: fmt.Errorf(`ent: validator failed for field "Item.impressions_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClicksCount(); ok {
		if err := item.ClicksCountValidator(v); err != nil {
			return &ValidationError{Name: "clicks_count", err: fmt.Errorf(`ent: validator failed for field "Item.clicks_count": %w`, err)}
		}
	}
	return nil
}

func (_u *ItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(item.Table, item.Columns, sqlgraph.NewFieldSpec(item.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ImpressionsCount(); ok {
		_spec.SetField(item.FieldImpressionsCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedImpressionsCount(); ok {
		_spec.AddField(item.FieldImpressionsCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ClicksCount(); ok {
		_spec.SetField(item.FieldClicksCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedClicksCount(); ok {
		_spec.AddField(item.FieldClicksCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SuccessScore(); ok {
		_spec.SetField(item.FieldSuccessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSuccessScore(); ok {
		_spec.AddField(item.FieldSuccessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(item.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{item.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ItemUpdateOne is the builder for updating a single Item entity.
type ItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ItemMutation
}

// SetImpressionsCount sets the "impressions_count" field.
func (_u *ItemUpdateOne) SetImpressionsCount(v int64) *ItemUpdateOne {
	_u.mutation.ResetImpressionsCount()
	_u.mutation.SetImpressionsCount(v)
	return _u
}

// SetNillableImpressionsCount sets the "impressions_count" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableImpressionsCount(v *int64) *ItemUpdateOne {
	if v != nil {
		_u.SetImpressionsCount(*v)
	}
	return _u
}

// AddImpressionsCount adds value to the "impressions_count" field.
func (_u *ItemUpdateOne) AddImpressionsCount(v int64) *ItemUpdateOne {
	_u.mutation.AddImpressionsCount(v)
	return _u
}

// SetClicksCount sets the "clicks_count" field.
func (_u *ItemUpdateOne) SetClicksCount(v int64) *ItemUpdateOne {
	_u.mutation.ResetClicksCount()
	_u.mutation.SetClicksCount(v)
	return _u
}

// SetNillableClicksCount sets the "clicks_count" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableClicksCount(v *int64) *ItemUpdateOne {
	if v != nil {
		_u.SetClicksCount(*v)
	}
	return _u
}

// AddClicksCount adds value to the "clicks_count" field.
func (_u *ItemUpdateOne) AddClicksCount(v int64) *ItemUpdateOne {
	_u.mutation.AddClicksCount(v)
	return _u
}

// SetSuccessScore sets the "success_score" field.
func (_u *ItemUpdateOne) SetSuccessScore(v float64) *ItemUpdateOne {
	_u.mutation.ResetSuccessScore()
	_u.mutation.SetSuccessScore(v)
	return _u
}

// SetNillableSuccessScore sets the "success_score" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableSuccessScore(v *float64) *ItemUpdateOne {
	if v != nil {
		_u.SetSuccessScore(*v)
	}
	return _u
}

// AddSuccessScore adds value to the "success_score" field.
func (_u *ItemUpdateOne) AddSuccessScore(v float64) *ItemUpdateOne {
	_u.mutation.AddSuccessScore(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ItemUpdateOne) SetUpdatedAt(v time.Time) *ItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ItemMutation object of the builder.
func (_u *ItemUpdateOne) Mutation() *ItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the ItemUpdate builder.
func (_u *ItemUpdateOne) Where(ps ...predicate.Item) *ItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ItemUpdateOne) Select(field string, fields ...string) *ItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Item entity.
func (_u *ItemUpdateOne) Save(ctx context.Context) (*Item, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemUpdateOne) SaveX(ctx context.Context) *Item {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := item.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemUpdateOne) check() error {
	if v, ok := _u.mutation.ImpressionsCount(); ok {
		if err := item.ImpressionsCountValidator(v); err != nil {
			return &ValidationError{Name: "impressions_count", err: fmt.Errorf(`ent: validator failed for field "Item.impressions_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClicksCount(); ok {
		if err := item.ClicksCountValidator(v); err != nil {
			return &ValidationError{Name: "clicks_count", err: fmt.Errorf(`ent: validator failed for field "Item.clicks_count": %w`, err)}
		}
	}
	return nil
}

func (_u *ItemUpdateOne) sqlSave(ctx context.Context) (_node *Item, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(item.Table, item.Columns, sqlgraph.NewFieldSpec(item.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Item.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, item.FieldID)
		for _, f := range fields {
			if !item.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != item.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ImpressionsCount(); ok {
		_spec.SetField(item.FieldImpressionsCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedImpressionsCount(); ok {
		_spec.AddField(item.FieldImpressionsCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ClicksCount(); ok {
		_spec.SetField(item.FieldClicksCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedClicksCount(); ok {
		_spec.AddField(item.FieldClicksCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SuccessScore(); ok {
		_spec.SetField(item.FieldSuccessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSuccessScore(); ok {
		_spec.AddField(item.FieldSuccessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(item.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Item{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{item.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
