// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxislabs/praxis/ent/learningpath"
)

// LearningPathCreate is the builder for creating a LearningPath entity.
type LearningPathCreate struct {
	config
	mutation *LearningPathMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *LearningPathCreate) SetTitle(v string) *LearningPathCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *LearningPathCreate) SetDescription(v string) *LearningPathCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *LearningPathCreate) SetDifficulty(v int) *LearningPathCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *LearningPathCreate) SetNillableDifficulty(v *int) *LearningPathCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetLangID sets the "lang_id" field.
func (_c *LearningPathCreate) SetLangID(v int) *LearningPathCreate {
	_c.mutation.SetLangID(v)
	return _c
}

// SetOrdering sets the "ordering" field.
func (_c *LearningPathCreate) SetOrdering(v string) *LearningPathCreate {
	_c.mutation.SetOrdering(v)
	return _c
}

// SetNillableOrdering sets the "ordering" field if the given value is not nil.
func (_c *LearningPathCreate) SetNillableOrdering(v *string) *LearningPathCreate {
	if v != nil {
		_c.SetOrdering(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LearningPathCreate) SetCreatedAt(v time.Time) *LearningPathCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LearningPathCreate) SetNillableCreatedAt(v *time.Time) *LearningPathCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LearningPathCreate) SetID(v string) *LearningPathCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LearningPathMutation object of the builder.
func (_c *LearningPathCreate) Mutation() *LearningPathMutation {
	return _c.mutation
}

// Save creates the LearningPath in the database.
func (_c *LearningPathCreate) Save(ctx context.Context) (*LearningPath, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearningPathCreate) SaveX(ctx context.Context) *LearningPath {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningPathCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningPathCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearningPathCreate) defaults() {
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := learningpath.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.Ordering(); !ok {
		v := learningpath.DefaultOrdering
		_c.mutation.SetOrdering(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := learningpath.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearningPathCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "LearningPath.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := learningpath.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "LearningPath.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "LearningPath.description"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "LearningPath.difficulty"`)}
	}
	if _, ok := _c.mutation.LangID(); !ok {
		return &ValidationError{Name: "lang_id", err: errors.New(`ent: missing required field "LearningPath.lang_id"`)}
	}
	if _, ok := _c.mutation.Ordering(); !ok {
		return &ValidationError{Name: "ordering", err: errors.New(`ent: missing required field "LearningPath.ordering"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LearningPath.created_at"`)}
	}
	return nil
}

func (_c *LearningPathCreate) sqlSave(ctx context.Context) (*LearningPath, error) {
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
			return nil, fmt.Errorf("unexpected LearningPath.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LearningPathCreate) createSpec() (*LearningPath, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningPath{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learningpath.Table, sqlgraph.NewFieldSpec(learningpath.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(learningpath.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(learningpath.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(learningpath.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.LangID(); ok {
		_spec.SetField(learningpath.FieldLangID, field.TypeInt, value)
		_node.LangID = value
	}
	if value, ok := _c.mutation.Ordering(); ok {
		_spec.SetField(learningpath.FieldOrdering, field.TypeString, value)
		_node.Ordering = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(learningpath.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// LearningPathCreateBulk is the builder for creating many LearningPath entities in bulk.
type LearningPathCreateBulk struct {
	config
	err      error
	builders []*LearningPathCreate
}

// Save creates the LearningPath entities in the database.
func (_c *LearningPathCreateBulk) Save(ctx context.Context) ([]*LearningPath, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearningPath, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningPathMutation)
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
func (_c *LearningPathCreateBulk) SaveX(ctx context.Context) []*LearningPath {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningPathCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningPathCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
