// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxislabs/praxis/ent/learningpath"
	"github.com/praxislabs/praxis/ent/predicate"
)

// LearningPathUpdate is the builder for updating LearningPath entities.
type LearningPathUpdate struct {
	config
	hooks    []Hook
	mutation *LearningPathMutation
}

// Where appends a list predicates to the LearningPathUpdate builder.
func (_u *LearningPathUpdate) Where(ps ...predicate.LearningPath) *LearningPathUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *LearningPathUpdate) SetTitle(v string) *LearningPathUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableTitle(v *string) *LearningPathUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *LearningPathUpdate) SetDescription(v string) *LearningPathUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableDescription(v *string) *LearningPathUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *LearningPathUpdate) SetDifficulty(v int) *LearningPathUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableDifficulty(v *int) *LearningPathUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *LearningPathUpdate) AddDifficulty(v int) *LearningPathUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetLangID sets the "lang_id" field.
func (_u *LearningPathUpdate) SetLangID(v int) *LearningPathUpdate {
	_u.mutation.ResetLangID()
	_u.mutation.SetLangID(v)
	return _u
}

// SetNillableLangID sets the "lang_id" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableLangID(v *int) *LearningPathUpdate {
	if v != nil {
		_u.SetLangID(*v)
	}
	return _u
}

// AddLangID adds value to the "lang_id" field.
func (_u *LearningPathUpdate) AddLangID(v int) *LearningPathUpdate {
	_u.mutation.AddLangID(v)
	return _u
}

// SetOrdering sets the "ordering" field.
func (_u *LearningPathUpdate) SetOrdering(v string) *LearningPathUpdate {
	_u.mutation.SetOrdering(v)
	return _u
}

// SetNillableOrdering sets the "ordering" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableOrdering(v *string) *LearningPathUpdate {
	if v != nil {
		_u.SetOrdering(*v)
	}
	return _u
}

// Mutation returns the LearningPathMutation object of the builder.
func (_u *LearningPathUpdate) Mutation() *LearningPathMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearningPathUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningPathUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearningPathUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningPathUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningPathUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := learningpath.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "LearningPath.title": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningPathUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningpath.Table, learningpath.Columns, sqlgraph.NewFieldSpec(learningpath.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(learningpath.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(learningpath.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(learningpath.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(learningpath.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LangID(); ok {
		_spec.SetField(learningpath.FieldLangID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLangID(); ok {
		_spec.AddField(learningpath.FieldLangID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Ordering(); ok {
		_spec.SetField(learningpath.FieldOrdering, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningpath.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearningPathUpdateOne is the builder for updating a single LearningPath entity.
type LearningPathUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningPathMutation
}

// SetTitle sets the "title" field.
func (_u *LearningPathUpdateOne) SetTitle(v string) *LearningPathUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableTitle(v *string) *LearningPathUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *LearningPathUpdateOne) SetDescription(v string) *LearningPathUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableDescription(v *string) *LearningPathUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *LearningPathUpdateOne) SetDifficulty(v int) *LearningPathUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableDifficulty(v *int) *LearningPathUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *LearningPathUpdateOne) AddDifficulty(v int) *LearningPathUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetLangID sets the "lang_id" field.
func (_u *LearningPathUpdateOne) SetLangID(v int) *LearningPathUpdateOne {
	_u.mutation.ResetLangID()
	_u.mutation.SetLangID(v)
	return _u
}

// SetNillableLangID sets the "lang_id" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableLangID(v *int) *LearningPathUpdateOne {
	if v != nil {
		_u.SetLangID(*v)
	}
	return _u
}

// AddLangID adds value to the "lang_id" field.
func (_u *LearningPathUpdateOne) AddLangID(v int) *LearningPathUpdateOne {
	_u.mutation.AddLangID(v)
	return _u
}

// SetOrdering sets the "ordering" field.
func (_u *LearningPathUpdateOne) SetOrdering(v string) *LearningPathUpdateOne {
	_u.mutation.SetOrdering(v)
	return _u
}

// SetNillableOrdering sets the "ordering" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableOrdering(v *string) *LearningPathUpdateOne {
	if v != nil {
		_u.SetOrdering(*v)
	}
	return _u
}

// Mutation returns the LearningPathMutation object of the builder.
func (_u *LearningPathUpdateOne) Mutation() *LearningPathMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearningPathUpdate builder.
func (_u *LearningPathUpdateOne) Where(ps ...predicate.LearningPath) *LearningPathUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearningPathUpdateOne) Select(field string, fields ...string) *LearningPathUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearningPath entity.
func (_u *LearningPathUpdateOne) Save(ctx context.Context) (*LearningPath, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningPathUpdateOne) SaveX(ctx context.Context) *LearningPath {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearningPathUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningPathUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningPathUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := learningpath.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "LearningPath.title": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningPathUpdateOne) sqlSave(ctx context.Context) (_node *LearningPath, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningpath.Table, learningpath.Columns, sqlgraph.NewFieldSpec(learningpath.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningPath.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningpath.FieldID)
		for _, f := range fields {
			if !learningpath.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningpath.FieldID {
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
		_spec.SetField(learningpath.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(learningpath.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(learningpath.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(learningpath.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LangID(); ok {
		_spec.SetField(learningpath.FieldLangID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLangID(); ok {
		_spec.AddField(learningpath.FieldLangID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Ordering(); ok {
		_spec.SetField(learningpath.FieldOrdering, field.TypeString, value)
	}
	_node = &LearningPath{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningpath.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
