// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxislabs/praxis/ent/challenge"
)

// ChallengeCreate is the builder for creating a Challenge entity.
type ChallengeCreate struct {
	config
	mutation *ChallengeMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *ChallengeCreate) SetTitle(v string) *ChallengeCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ChallengeCreate) SetDescription(v string) *ChallengeCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetEnhancedPrompt sets the "enhanced_prompt" field.
func (_c *ChallengeCreate) SetEnhancedPrompt(v string) *ChallengeCreate {
	_c.mutation.SetEnhancedPrompt(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ChallengeCreate) SetDifficulty(v int) *ChallengeCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *ChallengeCreate) SetNillableDifficulty(v *int) *ChallengeCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetLangID sets the "lang_id" field.
func (_c *ChallengeCreate) SetLangID(v int) *ChallengeCreate {
	_c.mutation.SetLangID(v)
	return _c
}

// SetSolution sets the "solution" field.
func (_c *ChallengeCreate) SetSolution(v string) *ChallengeCreate {
	_c.mutation.SetSolution(v)
	return _c
}

// SetNillableSolution sets the "solution" field if the given value is not nil.
func (_c *ChallengeCreate) SetNillableSolution(v *string) *ChallengeCreate {
	if v != nil {
		_c.SetSolution(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChallengeCreate) SetCreatedAt(v time.Time) *ChallengeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChallengeCreate) SetNillableCreatedAt(v *time.Time) *ChallengeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChallengeCreate) SetID(v string) *ChallengeCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ChallengeMutation object of the builder.
func (_c *ChallengeCreate) Mutation() *ChallengeMutation {
	return _c.mutation
}

// Save creates the Challenge in the database.
func (_c *ChallengeCreate) Save(ctx context.Context) (*Challenge, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChallengeCreate) SaveX(ctx context.Context) *Challenge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChallengeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChallengeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChallengeCreate) defaults() {
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := challenge.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := challenge.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChallengeCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Challenge.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := challenge.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Challenge.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Challenge.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := challenge.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Challenge.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EnhancedPrompt(); !ok {
		return &ValidationError{Name: "enhanced_prompt", err: errors.New(`ent: missing required field "Challenge.enhanced_prompt"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Challenge.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := challenge.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Challenge.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LangID(); !ok {
		return &ValidationError{Name: "lang_id", err: errors.New(`ent: missing required field "Challenge.lang_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Challenge.created_at"`)}
	}
	return nil
}

func (_c *ChallengeCreate) sqlSave(ctx context.Context) (*Challenge, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Challenge.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChallengeCreate) createSpec() (*Challenge, *sqlgraph.CreateSpec) {
	var (
		_node = &Challenge{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(challenge.Table, sqlgraph.NewFieldSpec(challenge.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(challenge.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(challenge.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.EnhancedPrompt(); ok {
		_spec.SetField(challenge.FieldEnhancedPrompt, field.TypeString, value)
		_node.EnhancedPrompt = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(challenge.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.LangID(); ok {
		_spec.SetField(challenge.FieldLangID, field.TypeInt, value)
		_node.LangID = value
	}
	if value, ok := _c.mutation.Solution(); ok {
		_spec.SetField(challenge.FieldSolution, field.TypeString, value)
		_node.Solution = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(challenge.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ChallengeCreateBulk is the builder for creating many Challenge entities in bulk.
type ChallengeCreateBulk struct {
	config
	err      error
	builders []*ChallengeCreate
}

// Save creates the Challenge entities in the database.
func (_c *ChallengeCreateBulk) Save(ctx context.Context) ([]*Challenge, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Challenge, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChallengeMutation)
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
func (_c *ChallengeCreateBulk) SaveX(ctx context.Context) []*Challenge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChallengeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChallengeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
