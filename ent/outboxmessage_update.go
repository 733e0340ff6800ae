// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"feed-engagement/ent/outboxmessage"
	"feed-engagement/ent/predicate"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// OutboxMessageUpdate is the builder for updating OutboxMessage entities.
type OutboxMessageUpdate struct {
	config
	hooks    []Hook
	mutation *OutboxMessageMutation
}

// Where appends a list predicates to the OutboxMessageUpdate builder.
func (_u *OutboxMessageUpdate) Where(ps ...predicate.OutboxMessage) *OutboxMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUUID sets the "uuid" field.
func (_u *OutboxMessageUpdate) SetUUID(v string) *OutboxMessageUpdate {
	_u.mutation.SetUUID(v)
	return _u
}

// SetNillableUUID sets the "uuid" field if the given value is not nil.
func (_u *OutboxMessageUpdate) SetNillableUUID(v *string) *OutboxMessageUpdate {
	if v != nil {
		_u.SetUUID(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *OutboxMessageUpdate) SetPayload(v []byte) *OutboxMessageUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *OutboxMessageUpdate) SetMetadata(v map[string]string) *OutboxMessageUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *OutboxMessageUpdate) ClearMetadata() *OutboxMessageUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the OutboxMessageMutation object of the builder.
func (_u *OutboxMessageUpdate) Mutation() *OutboxMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OutboxMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OutboxMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OutboxMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OutboxMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OutboxMessageUpdate) check() error {
	if v, ok := _u.mutation.UUID(); ok {
		if err := outboxmessage.UUIDValidator(v); err != nil {
			return &ValidationError{Name: "uuid", err: fmt.Errorf(`ent: validator failed for field "OutboxMessage.uuid": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Payload(); ok {
		if err := outboxmessage.PayloadValidator(v); err != nil {
			return &ValidationError{Name: "payload", err: fmt.Errorf(`ent: validator failed for field "OutboxMessage.payload": %w`, err)}
		}
	}
	return nil
}

func (_u *OutboxMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(outboxmessage.Table, outboxmessage.Columns, sqlgraph.NewFieldSpec(outboxmessage.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UUID(); ok {
		_spec.SetField(outboxmessage.FieldUUID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(outboxmessage.FieldPayload, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(outboxmessage.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(outboxmessage.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outboxmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OutboxMessageUpdateOne is the builder for updating a single OutboxMessage entity.
type OutboxMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OutboxMessageMutation
}

// SetUUID sets the "uuid" field.
func (_u *OutboxMessageUpdateOne) SetUUID(v string) *OutboxMessageUpdateOne {
	_u.mutation.SetUUID(v)
	return _u
}

// SetNillableUUID sets the "uuid" field if the given value is not nil.
func (_u *OutboxMessageUpdateOne) SetNillableUUID(v *string) *OutboxMessageUpdateOne {
	if v != nil {
		_u.SetUUID(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *OutboxMessageUpdateOne) SetPayload(v []byte) *OutboxMessageUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *OutboxMessageUpdateOne) SetMetadata(v map[string]string) *OutboxMessageUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *OutboxMessageUpdateOne) ClearMetadata() *OutboxMessageUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the OutboxMessageMutation object of the builder.
func (_u *OutboxMessageUpdateOne) Mutation() *OutboxMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the OutboxMessageUpdate builder.
func (_u *OutboxMessageUpdateOne) Where(ps ...predicate.OutboxMessage) *OutboxMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OutboxMessageUpdateOne) Select(field string, fields ...string) *OutboxMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OutboxMessage entity.
func (_u *OutboxMessageUpdateOne) Save(ctx context.Context) (*OutboxMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OutboxMessageUpdateOne) SaveX(ctx context.Context) *OutboxMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OutboxMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OutboxMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OutboxMessageUpdateOne) check() error {
	if v, ok := _u.mutation.UUID(); ok {
		if err := outboxmessage.UUIDValidator(v); err != nil {
			return &ValidationError{Name: "uuid", err: fmt.Errorf(`ent: validator failed for field "OutboxMessage.uuid": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Payload(); ok {
		if err := outboxmessage.PayloadValidator(v); err != nil {
			return &ValidationError{Name: "payload", err: fmt.Errorf(`ent: validator failed for field "OutboxMessage.payload": %w`, err)}
		}
	}
	return nil
}

func (_u *OutboxMessageUpdateOne) sqlSave(ctx context.Context) (_node *OutboxMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(outboxmessage.Table, outboxmessage.Columns, sqlgraph.NewFieldSpec(outboxmessage.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OutboxMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, outboxmessage.FieldID)
		for _, f := range fields {
			if !outboxmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != outboxmessage.FieldID {
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
	if value, ok := _u.mutation.UUID(); ok {
		_spec.SetField(outboxmessage.FieldUUID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(outboxmessage.FieldPayload, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(outboxmessage.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(outboxmessage.FieldMetadata, field.TypeJSON)
	}
	_node = &OutboxMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outboxmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
