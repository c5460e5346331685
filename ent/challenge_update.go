// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxislabs/praxis/ent/challenge"
	"github.com/praxislabs/praxis/ent/predicate"
)

// ChallengeUpdate is the builder for updating Challenge entities.
type ChallengeUpdate struct {
	config
	hooks    []Hook
	mutation *ChallengeMutation
}

// Where appends a list predicates to the ChallengeUpdate builder.
func (_u *ChallengeUpdate) Where(ps ...predicate.Challenge) *ChallengeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ChallengeUpdate) SetTitle(v string) *ChallengeUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ChallengeUpdate) SetNillableTitle(v *string) *ChallengeUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ChallengeUpdate) SetDescription(v string) *ChallengeUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ChallengeUpdate) SetNillableDescription(v *string) *ChallengeUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetEnhancedPrompt sets the "enhanced_prompt" field.
func (_u *ChallengeUpdate) SetEnhancedPrompt(v string) *ChallengeUpdate {
	_u.mutation.SetEnhancedPrompt(v)
	return _u
}

// SetNillableEnhancedPrompt sets the "enhanced_prompt" field if the given value is not nil.
func (_u *ChallengeUpdate) SetNillableEnhancedPrompt(v *string) *ChallengeUpdate {
	if v != nil {
		_u.SetEnhancedPrompt(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ChallengeUpdate) SetDifficulty(v int) *ChallengeUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ChallengeUpdate) SetNillableDifficulty(v *int) *ChallengeUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ChallengeUpdate) AddDifficulty(v int) *ChallengeUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetLangID sets the "lang_id" field.
func (_u *ChallengeUpdate) SetLangID(v int) *ChallengeUpdate {
	_u.mutation.ResetLangID()
	_u.mutation.SetLangID(v)
	return _u
}

// SetNillableLangID sets the "lang_id" field if the given value is not nil.
func (_u *ChallengeUpdate) SetNillableLangID(v *int) *ChallengeUpdate {
	if v != nil {
		_u.SetLangID(*v)
	}
	return _u
}

// AddLangID adds value to the "lang_id" field.
func (_u *ChallengeUpdate) AddLangID(v int) *ChallengeUpdate {
	_u.mutation.AddLangID(v)
	return _u
}

// SetSolution sets the "solution" field.
func (_u *ChallengeUpdate) SetSolution(v string) *ChallengeUpdate {
	_u.mutation.SetSolution(v)
	return _u
}

// SetNillableSolution sets the "solution" field if the given value is not nil.
func (_u *ChallengeUpdate) SetNillableSolution(v *string) *ChallengeUpdate {
	if v != nil {
		_u.SetSolution(*v)
	}
	return _u
}

// ClearSolution clears the value of the "solution" field.
func (_u *ChallengeUpdate) ClearSolution() *ChallengeUpdate {
	_u.mutation.ClearSolution()
	return _u
}

// Mutation returns the ChallengeMutation object of the builder.
func (_u *ChallengeUpdate) Mutation() *ChallengeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChallengeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChallengeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChallengeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChallengeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChallengeUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := challenge.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Challenge.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := challenge.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Challenge.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := challenge.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Challenge.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *ChallengeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(challenge.Table, challenge.Columns, sqlgraph.NewFieldSpec(challenge.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(challenge.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(challenge.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.EnhancedPrompt(); ok {
		_spec.SetField(challenge.FieldEnhancedPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(challenge.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(challenge.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LangID(); ok {
		_spec.SetField(challenge.FieldLangID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLangID(); ok {
		_spec.AddField(challenge.FieldLangID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Solution(); ok {
		_spec.SetField(challenge.FieldSolution, field.TypeString, value)
	}
	if _u.mutation.SolutionCleared() {
		_spec.ClearField(challenge.FieldSolution, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{challenge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChallengeUpdateOne is the builder for updating a single Challenge entity.
type ChallengeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChallengeMutation
}

// SetTitle sets the "title" field.
func (_u *ChallengeUpdateOne) SetTitle(v string) *ChallengeUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ChallengeUpdateOne) SetNillableTitle(v *string) *ChallengeUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ChallengeUpdateOne) SetDescription(v string) *ChallengeUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ChallengeUpdateOne) SetNillableDescription(v *string) *ChallengeUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetEnhancedPrompt sets the "enhanced_prompt" field.
func (_u *ChallengeUpdateOne) SetEnhancedPrompt(v string) *ChallengeUpdateOne {
	_u.mutation.SetEnhancedPrompt(v)
	return _u
}

// SetNillableEnhancedPrompt sets the "enhanced_prompt" field if the given value is not nil.
func (_u *ChallengeUpdateOne) SetNillableEnhancedPrompt(v *string) *ChallengeUpdateOne {
	if v != nil {
		_u.SetEnhancedPrompt(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ChallengeUpdateOne) SetDifficulty(v int) *ChallengeUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ChallengeUpdateOne) SetNillableDifficulty(v *int) *ChallengeUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ChallengeUpdateOne) AddDifficulty(v int) *ChallengeUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetLangID sets the "lang_id" field.
func (_u *ChallengeUpdateOne) SetLangID(v int) *ChallengeUpdateOne {
	_u.mutation.ResetLangID()
	_u.mutation.SetLangID(v)
	return _u
}

// SetNillableLangID sets the "lang_id" field if the given value is not nil.
func (_u *ChallengeUpdateOne) SetNillableLangID(v *int) *ChallengeUpdateOne {
	if v != nil {
		_u.SetLangID(*v)
	}
	return _u
}

// AddLangID adds value to the "lang_id" field.
func (_u *ChallengeUpdateOne) AddLangID(v int) *ChallengeUpdateOne {
	_u.mutation.AddLangID(v)
	return _u
}

// SetSolution sets the "solution" field.
func (_u *ChallengeUpdateOne) SetSolution(v string) *ChallengeUpdateOne {
	_u.mutation.SetSolution(v)
	return _u
}

// SetNillableSolution sets the "solution" field if the given value is not nil.
func (_u *ChallengeUpdateOne) SetNillableSolution(v *string) *ChallengeUpdateOne {
	if v != nil {
		_u.SetSolution(*v)
	}
	return _u
}

// ClearSolution clears the value of the "solution" field.
func (_u *ChallengeUpdateOne) ClearSolution() *ChallengeUpdateOne {
	_u.mutation.ClearSolution()
	return _u
}

// Mutation returns the ChallengeMutation object of the builder.
func (_u *ChallengeUpdateOne) Mutation() *ChallengeMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChallengeUpdate builder.
func (_u *ChallengeUpdateOne) Where(ps ...predicate.Challenge) *ChallengeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChallengeUpdateOne) Select(field string, fields ...string) *ChallengeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Challenge entity.
func (_u *ChallengeUpdateOne) Save(ctx context.Context) (*Challenge, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChallengeUpdateOne) SaveX(ctx context.Context) *Challenge {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChallengeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChallengeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChallengeUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := challenge.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Challenge.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := challenge.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Challenge.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := challenge.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Challenge.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *ChallengeUpdateOne) sqlSave(ctx context.Context) (_node *Challenge, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(challenge.Table, challenge.Columns, sqlgraph.NewFieldSpec(challenge.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Challenge.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, challenge.FieldID)
		for _, f := range fields {
			if !challenge.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != challenge.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(challenge.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(challenge.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.EnhancedPrompt(); ok {
		_spec.SetField(challenge.FieldEnhancedPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(challenge.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(challenge.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LangID(); ok {
		_spec.SetField(challenge.FieldLangID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLangID(); ok {
		_spec.AddField(challenge.FieldLangID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Solution(); ok {
		_spec.SetField(challenge.FieldSolution, field.TypeString, value)
	}
	if _u.mutation.SolutionCleared() {
		_spec.ClearField(challenge.FieldSolution, field.TypeString)
	}
	_node = &Challenge{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{challenge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
