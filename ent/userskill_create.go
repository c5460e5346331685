// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxislabs/praxis/ent/userskill"
)

// UserSkillCreate is the builder for creating a UserSkill entity.
type UserSkillCreate struct {
	config
	mutation *UserSkillMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *UserSkillCreate) SetUserID(v string) *UserSkillCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *UserSkillCreate) SetSkillID(v int) *UserSkillCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetProficiency sets the "proficiency" field.
func (_c *UserSkillCreate) SetProficiency(v float64) *UserSkillCreate {
	_c.mutation.SetProficiency(v)
	return _c
}

// SetLastUpdated sets the "last_updated" field.
func (_c *UserSkillCreate) SetLastUpdated(v time.Time) *UserSkillCreate {
	_c.mutation.SetLastUpdated(v)
	return _c
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_c *UserSkillCreate) SetNillableLastUpdated(v *time.Time) *UserSkillCreate {
	if v != nil {
		_c.SetLastUpdated(*v)
	}
	return _c
}

// Mutation returns the UserSkillMutation object of the builder.
func (_c *UserSkillCreate) Mutation() *UserSkillMutation {
	return _c.mutation
}

// Save creates the UserSkill in the database.
func (_c *UserSkillCreate) Save(ctx context.Context) (*UserSkill, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserSkillCreate) SaveX(ctx context.Context) *UserSkill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserSkillCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserSkillCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserSkillCreate) defaults() {
	if _, ok := _c.mutation.LastUpdated(); !ok {
		v := userskill.DefaultLastUpdated()
		_c.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserSkillCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserSkill.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := userskill.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserSkill.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "UserSkill.skill_id"`)}
	}
	if _, ok := _c.mutation.Proficiency(); !ok {
		return &ValidationError{Name: "proficiency", err: errors.New(`ent: missing required field "UserSkill.proficiency"`)}
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "UserSkill.last_updated"`)}
	}
	return nil
}

func (_c *UserSkillCreate) sqlSave(ctx context.Context) (*UserSkill, error) {
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

func (_c *UserSkillCreate) createSpec() (*UserSkill, *sqlgraph.CreateSpec) {
	var (
		_node = &UserSkill{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userskill.Table, sqlgraph.NewFieldSpec(userskill.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(userskill.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(userskill.FieldSkillID, field.TypeInt, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.Proficiency(); ok {
		_spec.SetField(userskill.FieldProficiency, field.TypeFloat64, value)
		_node.Proficiency = value
	}
	if value, ok := _c.mutation.LastUpdated(); ok {
		_spec.SetField(userskill.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = value
	}
	return _node, _spec
}

// UserSkillCreateBulk is the builder for creating many UserSkill entities in bulk.
type UserSkillCreateBulk struct {
	config
	err      error
	builders []*UserSkillCreate
}

// Save creates the UserSkill entities in the database.
func (_c *UserSkillCreateBulk) Save(ctx context.Context) ([]*UserSkill, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserSkill, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserSkillMutation)
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
func (_c *UserSkillCreateBulk) SaveX(ctx context.Context) []*UserSkill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserSkillCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserSkillCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
