// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxislabs/praxis/ent/challengeskill"
)

// ChallengeSkillCreate is the builder for creating a ChallengeSkill entity.
type ChallengeSkillCreate struct {
	config
	mutation *ChallengeSkillMutation
	hooks    []Hook
}

// SetChallengeID sets the "challenge_id" field.
func (_c *ChallengeSkillCreate) SetChallengeID(v string) *ChallengeSkillCreate {
	_c.mutation.SetChallengeID(v)
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *ChallengeSkillCreate) SetSkillID(v int) *ChallengeSkillCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetRelevance sets the "relevance" field.
func (_c *ChallengeSkillCreate) SetRelevance(v float64) *ChallengeSkillCreate {
	_c.mutation.SetRelevance(v)
	return _c
}

// Mutation returns the ChallengeSkillMutation object of the builder.
func (_c *ChallengeSkillCreate) Mutation() *ChallengeSkillMutation {
	return _c.mutation
}

// Save creates the ChallengeSkill in the database.
func (_c *ChallengeSkillCreate) Save(ctx context.Context) (*ChallengeSkill, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChallengeSkillCreate) SaveX(ctx context.Context) *ChallengeSkill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChallengeSkillCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChallengeSkillCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChallengeSkillCreate) check() error {
	if _, ok := _c.mutation.ChallengeID(); !ok {
		return &ValidationError{Name: "challenge_id", err: errors.New(`ent: missing required field "ChallengeSkill.challenge_id"`)}
	}
	if v, ok := _c.mutation.ChallengeID(); ok {
		if err := challengeskill.ChallengeIDValidator(v); err != nil {
			return &ValidationError{Name: "challenge_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeSkill.challenge_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "ChallengeSkill.skill_id"`)}
	}
	if _, ok := _c.mutation.Relevance(); !ok {
		return &ValidationError{Name: "relevance", err: errors.New(`ent: missing required field "ChallengeSkill.relevance"`)}
	}
	return nil
}

func (_c *ChallengeSkillCreate) sqlSave(ctx context.Context) (*ChallengeSkill, error) {
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

func (_c *ChallengeSkillCreate) createSpec() (*ChallengeSkill, *sqlgraph.CreateSpec) {
	var (
		_node = &ChallengeSkill{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(challengeskill.Table, sqlgraph.NewFieldSpec(challengeskill.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ChallengeID(); ok {
		_spec.SetField(challengeskill.FieldChallengeID, field.TypeString, value)
		_node.ChallengeID = value
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(challengeskill.FieldSkillID, field.TypeInt, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.Relevance(); ok {
		_spec.SetField(challengeskill.FieldRelevance, field.TypeFloat64, value)
		_node.Relevance = value
	}
	return _node, _spec
}

// ChallengeSkillCreateBulk is the builder for creating many ChallengeSkill entities in bulk.
type ChallengeSkillCreateBulk struct {
	config
	err      error
	builders []*ChallengeSkillCreate
}

// Save creates the ChallengeSkill entities in the database.
func (_c *ChallengeSkillCreateBulk) Save(ctx context.Context) ([]*ChallengeSkill, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChallengeSkill, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChallengeSkillMutation)
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
func (_c *ChallengeSkillCreateBulk) SaveX(ctx context.Context) []*ChallengeSkill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChallengeSkillCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChallengeSkillCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
