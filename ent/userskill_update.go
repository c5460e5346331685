// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxislabs/praxis/ent/predicate"
	"github.com/praxislabs/praxis/ent/userskill"
)

// UserSkillUpdate is the builder for updating UserSkill entities.
type UserSkillUpdate struct {
	config
	hooks    []Hook
	mutation *UserSkillMutation
}

// Where appends a list predicates to the UserSkillUpdate builder.
func (_u *UserSkillUpdate) Where(ps ...predicate.UserSkill) *UserSkillUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UserSkillUpdate) SetUserID(v string) *UserSkillUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserSkillUpdate) SetNillableUserID(v *string) *UserSkillUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *UserSkillUpdate) SetSkillID(v int) *UserSkillUpdate {
	_u.mutation.ResetSkillID()
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *UserSkillUpdate) SetNillableSkillID(v *int) *UserSkillUpdate {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// AddSkillID adds value to the "skill_id" field.
func (_u *UserSkillUpdate) AddSkillID(v int) *UserSkillUpdate {
	_u.mutation.AddSkillID(v)
	return _u
}

// SetProficiency sets the "proficiency" field.
func (_u *UserSkillUpdate) SetProficiency(v float64) *UserSkillUpdate {
	_u.mutation.ResetProficiency()
	_u.mutation.SetProficiency(v)
	return _u
}

// SetNillableProficiency sets the "proficiency" field if the given value is not nil.
func (_u *UserSkillUpdate) SetNillableProficiency(v *float64) *UserSkillUpdate {
	if v != nil {
		_u.SetProficiency(*v)
	}
	return _u
}

// AddProficiency adds value to the "proficiency" field.
func (_u *UserSkillUpdate) AddProficiency(v float64) *UserSkillUpdate {
	_u.mutation.AddProficiency(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *UserSkillUpdate) SetLastUpdated(v time.Time) *UserSkillUpdate {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// Mutation returns the UserSkillMutation object of the builder.
func (_u *UserSkillUpdate) Mutation() *UserSkillMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserSkillUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserSkillUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserSkillUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserSkillUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserSkillUpdate) defaults() {
	if _, ok := _u.mutation.LastUpdated(); !ok {
		v := userskill.UpdateDefaultLastUpdated()
		_u.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserSkillUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := userskill.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserSkill.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *UserSkillUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userskill.Table, userskill.Columns, sqlgraph.NewFieldSpec(userskill.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(userskill.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(userskill.FieldSkillID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkillID(); ok {
		_spec.AddField(userskill.FieldSkillID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Proficiency(); ok {
		_spec.SetField(userskill.FieldProficiency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProficiency(); ok {
		_spec.AddField(userskill.FieldProficiency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(userskill.FieldLastUpdated, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userskill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserSkillUpdateOne is the builder for updating a single UserSkill entity.
type UserSkillUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserSkillMutation
}

// SetUserID sets the "user_id" field.
func (_u *UserSkillUpdateOne) SetUserID(v string) *UserSkillUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserSkillUpdateOne) SetNillableUserID(v *string) *UserSkillUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *UserSkillUpdateOne) SetSkillID(v int) *UserSkillUpdateOne {
	_u.mutation.ResetSkillID()
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *UserSkillUpdateOne) SetNillableSkillID(v *int) *UserSkillUpdateOne {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// AddSkillID adds value to the "skill_id" field.
func (_u *UserSkillUpdateOne) AddSkillID(v int) *UserSkillUpdateOne {
	_u.mutation.AddSkillID(v)
	return _u
}

// SetProficiency sets the "proficiency" field.
func (_u *UserSkillUpdateOne) SetProficiency(v float64) *UserSkillUpdateOne {
	_u.mutation.ResetProficiency()
	_u.mutation.SetProficiency(v)
	return _u
}

// SetNillableProficiency sets the "proficiency" field if the given value is not nil.
func (_u *UserSkillUpdateOne) SetNillableProficiency(v *float64) *UserSkillUpdateOne {
	if v != nil {
		_u.SetProficiency(*v)
	}
	return _u
}

// AddProficiency adds value to the "proficiency" field.
func (_u *UserSkillUpdateOne) AddProficiency(v float64) *UserSkillUpdateOne {
	_u.mutation.AddProficiency(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *UserSkillUpdateOne) SetLastUpdated(v time.Time) *UserSkillUpdateOne {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// Mutation returns the UserSkillMutation object of the builder.
func (_u *UserSkillUpdateOne) Mutation() *UserSkillMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserSkillUpdate builder.
func (_u *UserSkillUpdateOne) Where(ps ...predicate.UserSkill) *UserSkillUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserSkillUpdateOne) Select(field string, fields ...string) *UserSkillUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserSkill entity.
func (_u *UserSkillUpdateOne) Save(ctx context.Context) (*UserSkill, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserSkillUpdateOne) SaveX(ctx context.Context) *UserSkill {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserSkillUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserSkillUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserSkillUpdateOne) defaults() {
	if _, ok := _u.mutation.LastUpdated(); !ok {
		v := userskill.UpdateDefaultLastUpdated()
		_u.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserSkillUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := userskill.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserSkill.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *UserSkillUpdateOne) sqlSave(ctx context.Context) (_node *UserSkill, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userskill.Table, userskill.Columns, sqlgraph.NewFieldSpec(userskill.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserSkill.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userskill.FieldID)
		for _, f := range fields {
			if !userskill.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userskill.FieldID {
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
		_spec.SetField(userskill.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(userskill.FieldSkillID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkillID(); ok {
		_spec.AddField(userskill.FieldSkillID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Proficiency(); ok {
		_spec.SetField(userskill.FieldProficiency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProficiency(); ok {
		_spec.AddField(userskill.FieldProficiency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(userskill.FieldLastUpdated, field.TypeTime, value)
	}
	_node = &UserSkill{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userskill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
