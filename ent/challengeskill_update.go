// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxislabs/praxis/ent/challengeskill"
	"github.com/praxislabs/praxis/ent/predicate"
)

// ChallengeSkillUpdate is the builder for updating ChallengeSkill entities.
type ChallengeSkillUpdate struct {
	config
	hooks    []Hook
	mutation *ChallengeSkillMutation
}

// Where appends a list predicates to the ChallengeSkillUpdate builder.
func (_u *ChallengeSkillUpdate) Where(ps ...predicate.ChallengeSkill) *ChallengeSkillUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChallengeID sets the "challenge_id" field.
func (_u *ChallengeSkillUpdate) SetChallengeID(v string) *ChallengeSkillUpdate {
	_u.mutation.SetChallengeID(v)
	return _u
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (_u *ChallengeSkillUpdate) SetNillableChallengeID(v *string) *ChallengeSkillUpdate {
	if v != nil {
		_u.SetChallengeID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *ChallengeSkillUpdate) SetSkillID(v int) *ChallengeSkillUpdate {
	_u.mutation.ResetSkillID()
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *ChallengeSkillUpdate) SetNillableSkillID(v *int) *ChallengeSkillUpdate {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// AddSkillID adds value to the "skill_id" field.
func (_u *ChallengeSkillUpdate) AddSkillID(v int) *ChallengeSkillUpdate {
	_u.mutation.AddSkillID(v)
	return _u
}

// SetRelevance sets the "relevance" field.
func (_u *ChallengeSkillUpdate) SetRelevance(v float64) *ChallengeSkillUpdate {
	_u.mutation.ResetRelevance()
	_u.mutation.SetRelevance(v)
	return _u
}

// SetNillableRelevance sets the "relevance" field if the given value is not nil.
func (_u *ChallengeSkillUpdate) SetNillableRelevance(v *float64) *ChallengeSkillUpdate {
	if v != nil {
		_u.SetRelevance(*v)
	}
	return _u
}

// AddRelevance adds value to the "relevance" field.
func (_u *ChallengeSkillUpdate) AddRelevance(v float64) *ChallengeSkillUpdate {
	_u.mutation.AddRelevance(v)
	return _u
}

// Mutation returns the ChallengeSkillMutation object of the builder.
func (_u *ChallengeSkillUpdate) Mutation() *ChallengeSkillMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChallengeSkillUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChallengeSkillUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChallengeSkillUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChallengeSkillUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChallengeSkillUpdate) check() error {
	if v, ok := _u.mutation.ChallengeID(); ok {
		if err := challengeskill.ChallengeIDValidator(v); err != nil {
			return &ValidationError{Name: "challenge_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeSkill.challenge_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ChallengeSkillUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(challengeskill.Table, challengeskill.Columns, sqlgraph.NewFieldSpec(challengeskill.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChallengeID(); ok {
		_spec.SetField(challengeskill.FieldChallengeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(challengeskill.FieldSkillID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkillID(); ok {
		_spec.AddField(challengeskill.FieldSkillID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Relevance(); ok {
		_spec.SetField(challengeskill.FieldRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevance(); ok {
		_spec.AddField(challengeskill.FieldRelevance, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{challengeskill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChallengeSkillUpdateOne is the builder for updating a single ChallengeSkill entity.
type ChallengeSkillUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChallengeSkillMutation
}

// SetChallengeID sets the "challenge_id" field.
func (_u *ChallengeSkillUpdateOne) SetChallengeID(v string) *ChallengeSkillUpdateOne {
	_u.mutation.SetChallengeID(v)
	return _u
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (_u *ChallengeSkillUpdateOne) SetNillableChallengeID(v *string) *ChallengeSkillUpdateOne {
	if v != nil {
		_u.SetChallengeID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *ChallengeSkillUpdateOne) SetSkillID(v int) *ChallengeSkillUpdateOne {
	_u.mutation.ResetSkillID()
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *ChallengeSkillUpdateOne) SetNillableSkillID(v *int) *ChallengeSkillUpdateOne {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// AddSkillID adds value to the "skill_id" field.
func (_u *ChallengeSkillUpdateOne) AddSkillID(v int) *ChallengeSkillUpdateOne {
	_u.mutation.AddSkillID(v)
	return _u
}

// SetRelevance sets the "relevance" field.
func (_u *ChallengeSkillUpdateOne) SetRelevance(v float64) *ChallengeSkillUpdateOne {
	_u.mutation.ResetRelevance()
	_u.mutation.SetRelevance(v)
	return _u
}

// SetNillableRelevance sets the "relevance" field if the given value is not nil.
func (_u *ChallengeSkillUpdateOne) SetNillableRelevance(v *float64) *ChallengeSkillUpdateOne {
	if v != nil {
		_u.SetRelevance(*v)
	}
	return _u
}

// AddRelevance adds value to the "relevance" field.
func (_u *ChallengeSkillUpdateOne) AddRelevance(v float64) *ChallengeSkillUpdateOne {
	_u.mutation.AddRelevance(v)
	return _u
}

// Mutation returns the ChallengeSkillMutation object of the builder.
func (_u *ChallengeSkillUpdateOne) Mutation() *ChallengeSkillMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChallengeSkillUpdate builder.
func (_u *ChallengeSkillUpdateOne) Where(ps ...predicate.ChallengeSkill) *ChallengeSkillUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChallengeSkillUpdateOne) Select(field string, fields ...string) *ChallengeSkillUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChallengeSkill entity.
func (_u *ChallengeSkillUpdateOne) Save(ctx context.Context) (*ChallengeSkill, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChallengeSkillUpdateOne) SaveX(ctx context.Context) *ChallengeSkill {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChallengeSkillUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChallengeSkillUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChallengeSkillUpdateOne) check() error {
	if v, ok := _u.mutation.ChallengeID(); ok {
		if err := challengeskill.ChallengeIDValidator(v); err != nil {
			return &ValidationError{Name: "challenge_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeSkill.challenge_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ChallengeSkillUpdateOne) sqlSave(ctx context.Context) (_node *ChallengeSkill, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(challengeskill.Table, challengeskill.Columns, sqlgraph.NewFieldSpec(challengeskill.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChallengeSkill.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, challengeskill.FieldID)
		for _, f := range fields {
			if !challengeskill.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != challengeskill.FieldID {
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
	if value, ok := _u.mutation.ChallengeID(); ok {
		_spec.SetField(challengeskill.FieldChallengeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(challengeskill.FieldSkillID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkillID(); ok {
		_spec.AddField(challengeskill.FieldSkillID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Relevance(); ok {
		_spec.SetField(challengeskill.FieldRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevance(); ok {
		_spec.AddField(challengeskill.FieldRelevance, field.TypeFloat64, value)
	}
	_node = &ChallengeSkill{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{challengeskill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
