// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxislabs/praxis/ent/attempt"
	"github.com/praxislabs/praxis/ent/predicate"
)

// AttemptUpdate is the builder for updating Attempt entities.
type AttemptUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptMutation
}

// Where appends a list predicates to the AttemptUpdate builder.
func (_u *AttemptUpdate) Where(ps ...predicate.Attempt) *AttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AttemptUpdate) SetUserID(v string) *AttemptUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableUserID(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetChallengeID sets the "challenge_id" field.
func (_u *AttemptUpdate) SetChallengeID(v string) *AttemptUpdate {
	_u.mutation.SetChallengeID(v)
	return _u
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableChallengeID(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetChallengeID(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *AttemptUpdate) SetCode(v string) *AttemptUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableCode(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *AttemptUpdate) SetFeedback(v string) *AttemptUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableFeedback(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptUpdate) SetScore(v float64) *AttemptUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableScore(v *float64) *AttemptUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptUpdate) AddScore(v float64) *AttemptUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *AttemptUpdate) ClearScore() *AttemptUpdate {
	_u.mutation.ClearScore()
	return _u
}

// SetTimeSpent sets the "time_spent" field.
func (_u *AttemptUpdate) SetTimeSpent(v int) *AttemptUpdate {
	_u.mutation.ResetTimeSpent()
	_u.mutation.SetTimeSpent(v)
	return _u
}

// SetNillableTimeSpent sets the "time_spent" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableTimeSpent(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetTimeSpent(*v)
	}
	return _u
}

// AddTimeSpent adds value to the "time_spent" field.
func (_u *AttemptUpdate) AddTimeSpent(v int) *AttemptUpdate {
	_u.mutation.AddTimeSpent(v)
	return _u
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *AttemptUpdate) SetAttemptNumber(v int) *AttemptUpdate {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableAttemptNumber(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *AttemptUpdate) AddAttemptNumber(v int) *AttemptUpdate {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// SetSuccessful sets the "successful" field.
func (_u *AttemptUpdate) SetSuccessful(v bool) *AttemptUpdate {
	_u.mutation.SetSuccessful(v)
	return _u
}

// SetNillableSuccessful sets the "successful" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableSuccessful(v *bool) *AttemptUpdate {
	if v != nil {
		_u.SetSuccessful(*v)
	}
	return _u
}

// Mutation returns the AttemptMutation object of the builder.
func (_u *AttemptUpdate) Mutation() *AttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := attempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChallengeID(); ok {
		if err := attempt.ChallengeIDValidator(v); err != nil {
			return &ValidationError{Name: "challenge_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.challenge_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AttemptNumber(); ok {
		if err := attempt.AttemptNumberValidator(v); err != nil {
			return &ValidationError{Name: "attempt_number", err: fmt.Errorf(`ent: validator failed for field "Attempt.attempt_number": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attempt.Table, attempt.Columns, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(attempt.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeID(); ok {
		_spec.SetField(attempt.FieldChallengeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(attempt.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(attempt.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attempt.FieldScore, field.TypeFloat64, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(attempt.FieldScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TimeSpent(); ok {
		_spec.SetField(attempt.FieldTimeSpent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpent(); ok {
		_spec.AddField(attempt.FieldTimeSpent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(attempt.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(attempt.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Successful(); ok {
		_spec.SetField(attempt.FieldSuccessful, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptUpdateOne is the builder for updating a single Attempt entity.
type AttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptMutation
}

// SetUserID sets the "user_id" field.
func (_u *AttemptUpdateOne) SetUserID(v string) *AttemptUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableUserID(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetChallengeID sets the "challenge_id" field.
func (_u *AttemptUpdateOne) SetChallengeID(v string) *AttemptUpdateOne {
	_u.mutation.SetChallengeID(v)
	return _u
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableChallengeID(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetChallengeID(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *AttemptUpdateOne) SetCode(v string) *AttemptUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableCode(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *AttemptUpdateOne) SetFeedback(v string) *AttemptUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableFeedback(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptUpdateOne) SetScore(v float64) *AttemptUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableScore(v *float64) *AttemptUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptUpdateOne) AddScore(v float64) *AttemptUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *AttemptUpdateOne) ClearScore() *AttemptUpdateOne {
	_u.mutation.ClearScore()
	return _u
}

// SetTimeSpent sets the "time_spent" field.
func (_u *AttemptUpdateOne) SetTimeSpent(v int) *AttemptUpdateOne {
	_u.mutation.ResetTimeSpent()
	_u.mutation.SetTimeSpent(v)
	return _u
}

// SetNillableTimeSpent sets the "time_spent" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableTimeSpent(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetTimeSpent(*v)
	}
	return _u
}

// AddTimeSpent adds value to the "time_spent" field.
func (_u *AttemptUpdateOne) AddTimeSpent(v int) *AttemptUpdateOne {
	_u.mutation.AddTimeSpent(v)
	return _u
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *AttemptUpdateOne) SetAttemptNumber(v int) *AttemptUpdateOne {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableAttemptNumber(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *AttemptUpdateOne) AddAttemptNumber(v int) *AttemptUpdateOne {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// SetSuccessful sets the "successful" field.
func (_u *AttemptUpdateOne) SetSuccessful(v bool) *AttemptUpdateOne {
	_u.mutation.SetSuccessful(v)
	return _u
}

// SetNillableSuccessful sets the "successful" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableSuccessful(v *bool) *AttemptUpdateOne {
	if v != nil {
		_u.SetSuccessful(*v)
	}
	return _u
}

// Mutation returns the AttemptMutation object of the builder.
func (_u *AttemptUpdateOne) Mutation() *AttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptUpdate builder.
func (_u *AttemptUpdateOne) Where(ps ...predicate.Attempt) *AttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptUpdateOne) Select(field string, fields ...string) *AttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Attempt entity.
func (_u *AttemptUpdateOne) Save(ctx context.Context) (*Attempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptUpdateOne) SaveX(ctx context.Context) *Attempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := attempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChallengeID(); ok {
		if err := attempt.ChallengeIDValidator(v); err != nil {
			return &ValidationError{Name: "challenge_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.challenge_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AttemptNumber(); ok {
		if err := attempt.AttemptNumberValidator(v); err != nil {
			return &ValidationError{Name: "attempt_number", err: fmt.Errorf(`ent: validator failed for field "Attempt.attempt_number": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptUpdateOne) sqlSave(ctx context.Context) (_node *Attempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attempt.Table, attempt.Columns, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Attempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attempt.FieldID)
		for _, f := range fields {
			if !attempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attempt.FieldID {
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
		_spec.SetField(attempt.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeID(); ok {
		_spec.SetField(attempt.FieldChallengeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(attempt.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(attempt.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attempt.FieldScore, field.TypeFloat64, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(attempt.FieldScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TimeSpent(); ok {
		_spec.SetField(attempt.FieldTimeSpent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpent(); ok {
		_spec.AddField(attempt.FieldTimeSpent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(attempt.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(attempt.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Successful(); ok {
		_spec.SetField(attempt.FieldSuccessful, field.TypeBool, value)
	}
	_node = &Attempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
