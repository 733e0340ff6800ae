// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"feed-engagement/ent/item"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ItemCreate is the builder for creating a Item entity.
type ItemCreate struct {
	config
	mutation *ItemMutation
	hooks    []Hook
}

// SetImpressionsCount sets the "impressions_count" field.
func (_c *ItemCreate) SetImpressionsCount(v int64) *ItemCreate {
	_c.mutation.SetImpressionsCount(v)
	return _c
}

// SetNillableImpressionsCount sets the "impressions_count" field if the given value is not nil.
func (_c *ItemCreate) SetNillableImpressionsCount(v *int64) *ItemCreate {
	if v != nil {
		_c.SetImpressionsCount(*v)
	}
	return _c
}

// SetClicksCount sets the "clicks_count" field.
func (_c *ItemCreate) SetClicksCount(v int64) *ItemCreate {
	_c.mutation.SetClicksCount(v)
	return _c
}

// SetNillableClicksCount sets the "clicks_count" field if the given value is not nil.
func (_c *ItemCreate) SetNillableClicksCount(v *int64) *ItemCreate {
	if v != nil {
		_c.SetClicksCount(*v)
	}
	return _c
}

// SetSuccessScore sets the "success_score" field.
func (_c *ItemCreate) SetSuccessScore(v float64) *ItemCreate {
	_c.mutation.SetSuccessScore(v)
	return _c
}

// SetNillableSuccessScore sets the "success_score" field if the given value is not nil.
func (_c *ItemCreate) SetNillableSuccessScore(v *float64) *ItemCreate {
	if v != nil {
		_c.SetSuccessScore(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ItemCreate) SetUpdatedAt(v time.Time) *ItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ItemCreate) SetNillableUpdatedAt(v *time.Time) *ItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ItemCreate) SetID(v int64) *ItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ItemMutation object of the builder.
func (_c *ItemCreate) Mutation() *ItemMutation {
	return _c.mutation
}

// Save creates the Item in the database.
func (_c *ItemCreate) Save(ctx context.Context) (*Item, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ItemCreate) SaveX(ctx context.Context) *Item {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ItemCreate) defaults() {
	if _, ok := _c.mutation.ImpressionsCount(); !ok {
		v := item.DefaultImpressionsCount
		_c.mutation.SetImpressionsCount(v)
	}
	if _, ok := _c.mutation.ClicksCount(); !ok {
		v := item.DefaultClicksCount
		_c.mutation.SetClicksCount(v)
	}
	if _, ok := _c.mutation.SuccessScore(); !ok {
		v := item.DefaultSuccessScore
		_c.mutation.SetSuccessScore(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := item.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ItemCreate) check() error {
	if _, ok := _c.mutation.ImpressionsCount(); !ok {
		return &ValidationError{Name: "impressions_count", err: errors.New(`ent: missing required field "Item.impressions_count"`)}
	}
	if v, ok := _c.mutation.ImpressionsCount(); ok {
		if err := item.ImpressionsCountValidator(v); err != nil {
			return &ValidationError{Name: "impressions_count", err: fmt.Errorf(`ent: validator failed for field "Item.impressions_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ClicksCount(); !ok {
		return &ValidationError{Name: "clicks_count", err: errors.New(`ent: missing required field "Item.clicks_count"`)}
	}
	if v, ok := _c.mutation.ClicksCount(); ok {
		if err := item.ClicksCountValidator(v); err != nil {
			return &ValidationError{Name: "clicks_count", err: fmt.Errorf(`ent: validator failed for field "Item.clicks_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SuccessScore(); !ok {
		return &ValidationError{Name: "success_score", err: errors.New(`ent: missing required field "Item.success_score"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Item.updated_at"`)}
	}
	return nil
}

func (_c *ItemCreate) sqlSave(ctx context.Context) (*Item, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int64(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ItemCreate) createSpec() (*Item, *sqlgraph.CreateSpec) {
	var (
		_node = &Item{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(item.Table, sqlgraph.NewFieldSpec(item.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ImpressionsCount(); ok {
		_spec.SetField(item.FieldImpressionsCount, field.TypeInt64, value)
		_node.ImpressionsCount = value
	}
	if value, ok := _c.mutation.ClicksCount(); ok {
		_spec.SetField(item.FieldClicksCount, field.TypeInt64, value)
		_node.ClicksCount = value
	}
	if value, ok := _c.mutation.SuccessScore(); ok {
		_spec.SetField(item.FieldSuccessScore, field.TypeFloat64, value)
		_node.SuccessScore = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(item.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ItemCreateBulk is the builder for creating many Item entities in bulk.
type ItemCreateBulk struct {
	config
	err      error
	builders []*ItemCreate
}

// Save creates the Item entities in the database.
func (_c *ItemCreateBulk) Save(ctx context.Context) ([]*Item, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Item, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ItemMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int64(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ItemCreateBulk) SaveX(ctx context.Context) []*Item {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
