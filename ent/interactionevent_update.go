// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"feed-engagement/ent/interactionevent"
	"feed-engagement/ent/predicate"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// InteractionEventUpdate is the builder for updating InteractionEvent entities.
type InteractionEventUpdate struct {
	config
	hooks    []Hook
	mutation *InteractionEventMutation
}

// Where appends a list predicates to the InteractionEventUpdate builder.
func (_u *InteractionEventUpdate) Where(ps ...predicate.InteractionEvent) *InteractionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *InteractionEventUpdate) SetUserID(v int64) *InteractionEventUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableUserID(v *int64) *InteractionEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *InteractionEventUpdate) AddUserID(v int64) *InteractionEventUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *InteractionEventUpdate) ClearUserID() *InteractionEventUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *InteractionEventUpdate) SetItemID(v int64) *InteractionEventUpdate {
	_u.mutation.ResetItemID()
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableItemID(v *int64) *InteractionEventUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// AddItemID adds value to the "item_id" field.
func (_u *InteractionEventUpdate) AddItemID(v int64) *InteractionEventUpdate {
	_u.mutation.AddItemID(v)
	return _u
}

// ClearItemID clears the value of the "item_id" field.
func (_u *InteractionEventUpdate) ClearItemID() *InteractionEventUpdate {
	_u.mutation.ClearItemID()
	return _u
}

// SetCategory sets the "category" field.
func (_u *InteractionEventUpdate) SetCategory(v interactionevent.Category) *InteractionEventUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableCategory(v *interactionevent.Category) *InteractionEventUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetSurface sets the "surface" field.
func (_u *InteractionEventUpdate) SetSurface(v interactionevent.Surface) *InteractionEventUpdate {
	_u.mutation.SetSurface(v)
	return _u
}

// SetNillableSurface sets the "surface" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableSurface(v *interactionevent.Surface) *InteractionEventUpdate {
	if v != nil {
		_u.SetSurface(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *InteractionEventUpdate) SetPosition(v int) *InteractionEventUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillablePosition(v *int) *InteractionEventUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *InteractionEventUpdate) AddPosition(v int) *InteractionEventUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// Mutation returns the InteractionEventMutation object of the builder.
func (_u *InteractionEventUpdate) Mutation() *InteractionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InteractionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InteractionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InteractionEventUpdate) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := interactionevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Surface(); ok {
		if err := interactionevent.SurfaceValidator(v); err != nil {
			return &ValidationError{Name: "surface", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.surface": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := interactionevent.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.position": %w`, err)}
		}
	}
	return nil
}

func (_u *InteractionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interactionevent.Table, interactionevent.Columns, sqlgraph.NewFieldSpec(interactionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(interactionevent.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(interactionevent.FieldUserID, field.TypeInt64, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(interactionevent.FieldUserID, field.TypeInt64)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(interactionevent.FieldItemID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedItemID(); ok {
		_spec.AddField(interactionevent.FieldItemID, field.TypeInt64, value)
	}
	if _u.mutation.ItemIDCleared() {
		_spec.ClearField(interactionevent.FieldItemID, field.TypeInt64)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(interactionevent.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Surface(); ok {
		_spec.SetField(interactionevent.FieldSurface, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(interactionevent.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(interactionevent.FieldPosition, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interactionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InteractionEventUpdateOne is the builder for updating a single InteractionEvent entity.
type InteractionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InteractionEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *InteractionEventUpdateOne) SetUserID(v int64) *InteractionEventUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableUserID(v *int64) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *InteractionEventUpdateOne) AddUserID(v int64) *InteractionEventUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *InteractionEventUpdateOne) ClearUserID() *InteractionEventUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *InteractionEventUpdateOne) SetItemID(v int64) *InteractionEventUpdateOne {
	_u.mutation.ResetItemID()
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableItemID(v *int64) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// AddItemID adds value to the "item_id" field.
func (_u *InteractionEventUpdateOne) AddItemID(v int64) *InteractionEventUpdateOne {
	_u.mutation.AddItemID(v)
	return _u
}

// ClearItemID clears the value of the "item_id" field.
func (_u *InteractionEventUpdateOne) ClearItemID() *InteractionEventUpdateOne {
	_u.mutation.ClearItemID()
	return _u
}

// SetCategory sets the "category" field.
func (_u *InteractionEventUpdateOne) SetCategory(v interactionevent.Category) *InteractionEventUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableCategory(v *interactionevent.Category) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetSurface sets the "surface" field.
func (_u *InteractionEventUpdateOne) SetSurface(v interactionevent.Surface) *InteractionEventUpdateOne {
	_u.mutation.SetSurface(v)
	return _u
}

// SetNillableSurface sets the "surface" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableSurface(v *interactionevent.Surface) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetSurface(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *InteractionEventUpdateOne) SetPosition(v int) *InteractionEventUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillablePosition(v *int) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *InteractionEventUpdateOne) AddPosition(v int) *InteractionEventUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// Mutation returns the InteractionEventMutation object of the builder.
func (_u *InteractionEventUpdateOne) Mutation() *InteractionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the InteractionEventUpdate builder.
func (_u *InteractionEventUpdateOne) Where(ps ...predicate.InteractionEvent) *InteractionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InteractionEventUpdateOne) Select(field string, fields ...string) *InteractionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InteractionEvent entity.
func (_u *InteractionEventUpdateOne) Save(ctx context.Context) (*InteractionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionEventUpdateOne) SaveX(ctx context.Context) *InteractionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InteractionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InteractionEventUpdateOne) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := interactionevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Surface(); ok {
		if err := interactionevent.SurfaceValidator(v); err != nil {
			return &ValidationError{Name: "surface", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.surface": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := interactionevent.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.position": %w`, err)}
		}
	}
	return nil
}

func (_u *InteractionEventUpdateOne) sqlSave(ctx context.Context) (_node *InteractionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interactionevent.Table, interactionevent.Columns, sqlgraph.NewFieldSpec(interactionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InteractionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interactionevent.FieldID)
		for _, f := range fields {
			if !interactionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interactionevent.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(interactionevent.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(interactionevent.FieldUserID, field.TypeInt64, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(interactionevent.FieldUserID, field.TypeInt64)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(interactionevent.FieldItemID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedItemID(); ok {
		_spec.AddField(interactionevent.FieldItemID, field.TypeInt64, value)
	}
	if _u.mutation.ItemIDCleared() {
		_spec.ClearField(interactionevent.FieldItemID, field.TypeInt64)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(interactionevent.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Surface(); ok {
		_spec.SetField(interactionevent.FieldSurface, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(interactionevent.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(interactionevent.FieldPosition, field.TypeInt, value)
	}
	_node = &InteractionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interactionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
