// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxislabs/praxis/ent/learningpathitem"
	"github.com/praxislabs/praxis/ent/predicate"
)

// LearningPathItemUpdate is the builder for updating LearningPathItem entities.
type LearningPathItemUpdate struct {
	config
	hooks    []Hook
	mutation *LearningPathItemMutation
}

// Where appends a list predicates to the LearningPathItemUpdate builder.
func (_u *LearningPathItemUpdate) Where(ps ...predicate.LearningPathItem) *LearningPathItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPathID sets the "path_id" field.
func (_u *LearningPathItemUpdate) SetPathID(v string) *LearningPathItemUpdate {
	_u.mutation.SetPathID(v)
	return _u
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (_u *LearningPathItemUpdate) SetNillablePathID(v *string) *LearningPathItemUpdate {
	if v != nil {
		_u.SetPathID(*v)
	}
	return _u
}

// SetChallengeID sets the "challenge_id" field.
func (_u *LearningPathItemUpdate) SetChallengeID(v string) *LearningPathItemUpdate {
	_u.mutation.SetChallengeID(v)
	return _u
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (_u *LearningPathItemUpdate) SetNillableChallengeID(v *string) *LearningPathItemUpdate {
	if v != nil {
		_u.SetChallengeID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *LearningPathItemUpdate) SetPosition(v int) *LearningPathItemUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *LearningPathItemUpdate) SetNillablePosition(v *int) *LearningPathItemUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *LearningPathItemUpdate) AddPosition(v int) *LearningPathItemUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// Mutation returns the LearningPathItemMutation object of the builder.
func (_u *LearningPathItemUpdate) Mutation() *LearningPathItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearningPathItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningPathItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearningPathItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningPathItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningPathItemUpdate) check() error {
	if v, ok := _u.mutation.PathID(); ok {
		if err := learningpathitem.PathIDValidator(v); err != nil {
			return &ValidationError{Name: "path_id", err: fmt.Errorf(`ent: validator failed for field "LearningPathItem.path_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChallengeID(); ok {
		if err := learningpathitem.ChallengeIDValidator(v); err != nil {
			return &ValidationError{Name: "challenge_id", err: fmt.Errorf(`ent: validator failed for field "LearningPathItem.challenge_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := learningpathitem.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "LearningPathItem.position": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningPathItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningpathitem.Table, learningpathitem.Columns, sqlgraph.NewFieldSpec(learningpathitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PathID(); ok {
		_spec.SetField(learningpathitem.FieldPathID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeID(); ok {
		_spec.SetField(learningpathitem.FieldChallengeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(learningpathitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(learningpathitem.FieldPosition, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningpathitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearningPathItemUpdateOne is the builder for updating a single LearningPathItem entity.
type LearningPathItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningPathItemMutation
}

// SetPathID sets the "path_id" field.
func (_u *LearningPathItemUpdateOne) SetPathID(v string) *LearningPathItemUpdateOne {
	_u.mutation.SetPathID(v)
	return _u
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (_u *LearningPathItemUpdateOne) SetNillablePathID(v *string) *LearningPathItemUpdateOne {
	if v != nil {
		_u.SetPathID(*v)
	}
	return _u
}

// SetChallengeID sets the "challenge_id" field.
func (_u *LearningPathItemUpdateOne) SetChallengeID(v string) *LearningPathItemUpdateOne {
	_u.mutation.SetChallengeID(v)
	return _u
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (_u *LearningPathItemUpdateOne) SetNillableChallengeID(v *string) *LearningPathItemUpdateOne {
	if v != nil {
		_u.SetChallengeID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *LearningPathItemUpdateOne) SetPosition(v int) *LearningPathItemUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *LearningPathItemUpdateOne) SetNillablePosition(v *int) *LearningPathItemUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *LearningPathItemUpdateOne) AddPosition(v int) *LearningPathItemUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// Mutation returns the LearningPathItemMutation object of the builder.
func (_u *LearningPathItemUpdateOne) Mutation() *LearningPathItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearningPathItemUpdate builder.
func (_u *LearningPathItemUpdateOne) Where(ps ...predicate.LearningPathItem) *LearningPathItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearningPathItemUpdateOne) Select(field string, fields ...string) *LearningPathItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearningPathItem entity.
func (_u *LearningPathItemUpdateOne) Save(ctx context.Context) (*LearningPathItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningPathItemUpdateOne) SaveX(ctx context.Context) *LearningPathItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearningPathItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningPathItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningPathItemUpdateOne) check() error {
	if v, ok := _u.mutation.PathID(); ok {
		if err := learningpathitem.PathIDValidator(v); err != nil {
			return &ValidationError{Name: "path_id", err: fmt.Errorf(`ent: validator failed for field "LearningPathItem.path_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChallengeID(); ok {
		if err := learningpathitem.ChallengeIDValidator(v); err != nil {
			return &ValidationError{Name: "challenge_id", err: fmt.Errorf(`ent: validator failed for field "LearningPathItem.challenge_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := learningpathitem.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "LearningPathItem.position": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningPathItemUpdateOne) sqlSave(ctx context.Context) (_node *LearningPathItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningpathitem.Table, learningpathitem.Columns, sqlgraph.NewFieldSpec(learningpathitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningPathItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningpathitem.FieldID)
		for _, f := range fields {
			if !learningpathitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningpathitem.FieldID {
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
	if value, ok := _u.mutation.PathID(); ok {
		_spec.SetField(learningpathitem.FieldPathID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeID(); ok {
		_spec.SetField(learningpathitem.FieldChallengeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(learningpathitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(learningpathitem.FieldPosition, field.TypeInt, value)
	}
	_node = &LearningPathItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningpathitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
