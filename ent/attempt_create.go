// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxislabs/praxis/ent/attempt"
)

// AttemptCreate is the builder for creating a Attempt entity.
type AttemptCreate struct {
	config
	mutation *AttemptMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *AttemptCreate) SetUserID(v string) *AttemptCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetChallengeID sets the "challenge_id" field.
func (_c *AttemptCreate) SetChallengeID(v string) *AttemptCreate {
	_c.mutation.SetChallengeID(v)
	return _c
}

// SetCode sets the "code" field.
func (_c *AttemptCreate) SetCode(v string) *AttemptCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *AttemptCreate) SetFeedback(v string) *AttemptCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *AttemptCreate) SetScore(v float64) *AttemptCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableScore(v *float64) *AttemptCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetTimeSpent sets the "time_spent" field.
func (_c *AttemptCreate) SetTimeSpent(v int) *AttemptCreate {
	_c.mutation.SetTimeSpent(v)
	return _c
}

// SetNillableTimeSpent sets the "time_spent" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableTimeSpent(v *int) *AttemptCreate {
	if v != nil {
		_c.SetTimeSpent(*v)
	}
	return _c
}

// SetAttemptNumber sets the "attempt_number" field.
func (_c *AttemptCreate) SetAttemptNumber(v int) *AttemptCreate {
	_c.mutation.SetAttemptNumber(v)
	return _c
}

// SetSuccessful sets the "successful" field.
func (_c *AttemptCreate) SetSuccessful(v bool) *AttemptCreate {
	_c.mutation.SetSuccessful(v)
	return _c
}

// SetNillableSuccessful sets the "successful" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableSuccessful(v *bool) *AttemptCreate {
	if v != nil {
		_c.SetSuccessful(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AttemptCreate) SetCreatedAt(v time.Time) *AttemptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableCreatedAt(v *time.Time) *AttemptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AttemptCreate) SetID(v string) *AttemptCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AttemptMutation object of the builder.
func (_c *AttemptCreate) Mutation() *AttemptMutation {
	return _c.mutation
}

// Save creates the Attempt in the database.
func (_c *AttemptCreate) Save(ctx context.Context) (*Attempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptCreate) SaveX(ctx context.Context) *Attempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptCreate) defaults() {
	if _, ok := _c.mutation.TimeSpent(); !ok {
		v := attempt.DefaultTimeSpent
		_c.mutation.SetTimeSpent(v)
	}
	if _, ok := _c.mutation.Successful(); !ok {
		v := attempt.DefaultSuccessful
		_c.mutation.SetSuccessful(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := attempt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Attempt.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := attempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChallengeID(); !ok {
		return &ValidationError{Name: "challenge_id", err: errors.New(`ent: missing required field "Attempt.challenge_id"`)}
	}
	if v, ok := _c.mutation.ChallengeID(); ok {
		if err := attempt.ChallengeIDValidator(v); err != nil {
			return &ValidationError{Name: "challenge_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.challenge_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "Attempt.code"`)}
	}
	if _, ok := _c.mutation.Feedback(); !ok {
		return &ValidationError{Name: "feedback", err: errors.New(`ent: missing required field "Attempt.feedback"`)}
	}
	if _, ok := _c.mutation.TimeSpent(); !ok {
		return &ValidationError{Name: "time_spent", err: errors.New(`ent: missing required field "Attempt.time_spent"`)}
	}
	if _, ok := _c.mutation.AttemptNumber(); !ok {
		return &ValidationError{Name: "attempt_number", err: errors.New(`ent: missing required field "Attempt.attempt_number"`)}
	}
	if v, ok := _c.mutation.AttemptNumber(); ok {
		if err := attempt.AttemptNumberValidator(v); err != nil {
			return &ValidationError{Name: "attempt_number", err: fmt.Errorf(`ent: validator failed for field "Attempt.attempt_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Successful(); !ok {
		return &ValidationError{Name: "successful", err: errors.New(`ent: missing required field "Attempt.successful"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Attempt.created_at"`)}
	}
	return nil
}

func (_c *AttemptCreate) sqlSave(ctx context.Context) (*Attempt, error) {
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
			return nil, fmt.Errorf("unexpected Attempt.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AttemptCreate) createSpec() (*Attempt, *sqlgraph.CreateSpec) {
	var (
		_node = &Attempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attempt.Table, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(attempt.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ChallengeID(); ok {
		_spec.SetField(attempt.FieldChallengeID, field.TypeString, value)
		_node.ChallengeID = value
	}
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(attempt.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(attempt.FieldFeedback, field.TypeString, value)
		_node.Feedback = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(attempt.FieldScore, field.TypeFloat64, value)
		_node.Score = &value
	}
	if value, ok := _c.mutation.TimeSpent(); ok {
		_spec.SetField(attempt.FieldTimeSpent, field.TypeInt, value)
		_node.TimeSpent = value
	}
	if value, ok := _c.mutation.AttemptNumber(); ok {
		_spec.SetField(attempt.FieldAttemptNumber, field.TypeInt, value)
		_node.AttemptNumber = value
	}
	if value, ok := _c.mutation.Successful(); ok {
		_spec.SetField(attempt.FieldSuccessful, field.TypeBool, value)
		_node.Successful = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(attempt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// AttemptCreateBulk is the builder for creating many Attempt entities in bulk.
type AttemptCreateBulk struct {
	config
	err      error
	builders []*AttemptCreate
}

// Save creates the Attempt entities in the database.
func (_c *AttemptCreateBulk) Save(ctx context.Context) ([]*Attempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Attempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptMutation)
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
func (_c *AttemptCreateBulk) SaveX(ctx context.Context) []*Attempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
