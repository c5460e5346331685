// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxislabs/praxis/ent/challengeskill"
	"github.com/praxislabs/praxis/ent/predicate"
)

// ChallengeSkillDelete is the builder for deleting a ChallengeSkill entity.
type ChallengeSkillDelete struct {
	config
	hooks    []Hook
	mutation *ChallengeSkillMutation
}

// Where appends a list predicates to the ChallengeSkillDelete builder.
func (_d *ChallengeSkillDelete) Where(ps ...predicate.ChallengeSkill) *ChallengeSkillDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ChallengeSkillDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChallengeSkillDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ChallengeSkillDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(challengeskill.Table, sqlgraph.NewFieldSpec(challengeskill.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ChallengeSkillDeleteOne is the builder for deleting a single ChallengeSkill entity.
type ChallengeSkillDeleteOne struct {
	_d *ChallengeSkillDelete
}

// Where appends a list predicates to the ChallengeSkillDelete builder.
func (_d *ChallengeSkillDeleteOne) Where(ps ...predicate.ChallengeSkill) *ChallengeSkillDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ChallengeSkillDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{challengeskill.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChallengeSkillDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
