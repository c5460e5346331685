// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxislabs/praxis/ent/learningpathitem"
)

// LearningPathItemCreate is the builder for creating a LearningPathItem entity.
type LearningPathItemCreate struct {
	config
	mutation *LearningPathItemMutation
	hooks    []Hook
}

// SetPathID sets the "path_id" field.
func (_c *LearningPathItemCreate) SetPathID(v string) *LearningPathItemCreate {
	_c.mutation.SetPathID(v)
	return _c
}

// SetChallengeID sets the "challenge_id" field.
func (_c *LearningPathItemCreate) SetChallengeID(v string) *LearningPathItemCreate {
	_c.mutation.SetChallengeID(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *LearningPathItemCreate) SetPosition(v int) *LearningPathItemCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// Mutation returns the LearningPathItemMutation object of the builder.
func (_c *LearningPathItemCreate) Mutation() *LearningPathItemMutation {
	return _c.mutation
}

// Save creates the LearningPathItem in the database.
func (_c *LearningPathItemCreate) Save(ctx context.Context) (*LearningPathItem, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearningPathItemCreate) SaveX(ctx context.Context) *LearningPathItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningPathItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningPathItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearningPathItemCreate) check() error {
	if _, ok := _c.mutation.PathID(); !ok {
		return &ValidationError{Name: "path_id", err: errors.New(`ent: missing required field "LearningPathItem.path_id"`)}
	}
	if v, ok := _c.mutation.PathID(); ok {
		if err := learningpathitem.PathIDValidator(v); err != nil {
			return &ValidationError{Name: "path_id", err: fmt.Errorf(`ent: validator failed for field "LearningPathItem.path_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChallengeID(); !ok {
		return &ValidationError{Name: "challenge_id", err: errors.New(`ent: missing required field "LearningPathItem.challenge_id"`)}
	}
	if v, ok := _c.mutation.ChallengeID(); ok {
		if err := learningpathitem.ChallengeIDValidator(v); err != nil {
			return &ValidationError{Name: "challenge_id", err: fmt.Errorf(`ent: validator failed for field "LearningPathItem.challenge_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "LearningPathItem.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := learningpathitem.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "LearningPathItem.position": %w`, err)}
		}
	}
	return nil
}

func (_c *LearningPathItemCreate) sqlSave(ctx context.Context) (*LearningPathItem, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LearningPathItemCreate) createSpec() (*LearningPathItem, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningPathItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learningpathitem.Table, sqlgraph.NewFieldSpec(learningpathitem.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PathID(); ok {
		_spec.SetField(learningpathitem.FieldPathID, field.TypeString, value)
		_node.PathID = value
	}
	if value, ok := _c.mutation.ChallengeID(); ok {
		_spec.SetField(learningpathitem.FieldChallengeID, field.TypeString, value)
		_node.ChallengeID = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(learningpathitem.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	return _node, _spec
}

// LearningPathItemCreateBulk is the builder for creating many LearningPathItem entities in bulk.
type LearningPathItemCreateBulk struct {
	config
	err      error
	builders []*LearningPathItemCreate
}

// Save creates the LearningPathItem entities in the database.
func (_c *LearningPathItemCreateBulk) Save(ctx context.Context) ([]*LearningPathItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearningPathItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningPathItemMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
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
func (_c *LearningPathItemCreateBulk) SaveX(ctx context.Context) []*LearningPathItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningPathItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningPathItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
