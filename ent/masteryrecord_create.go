// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutorcore/ent/masteryrecord"
)

// MasteryRecordCreate is the builder for creating a MasteryRecord entity.
type MasteryRecordCreate struct {
	config
	mutation *MasteryRecordMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *MasteryRecordCreate) SetStudentID(v string) *MasteryRecordCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *MasteryRecordCreate) SetConceptID(v string) *MasteryRecordCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetProbability sets the "probability" field.
func (_c *MasteryRecordCreate) SetProbability(v float64) *MasteryRecordCreate {
	_c.mutation.SetProbability(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *MasteryRecordCreate) SetLevel(v string) *MasteryRecordCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetPracticeCount sets the "practice_count" field.
func (_c *MasteryRecordCreate) SetPracticeCount(v int) *MasteryRecordCreate {
	_c.mutation.SetPracticeCount(v)
	return _c
}

// SetNillablePracticeCount sets the "practice_count" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillablePracticeCount(v *int) *MasteryRecordCreate {
	if v != nil {
		_c.SetPracticeCount(*v)
	}
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *MasteryRecordCreate) SetCorrectCount(v int) *MasteryRecordCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableCorrectCount(v *int) *MasteryRecordCreate {
	if v != nil {
		_c.SetCorrectCount(*v)
	}
	return _c
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_c *MasteryRecordCreate) SetLastPracticedAt(v time.Time) *MasteryRecordCreate {
	_c.mutation.SetLastPracticedAt(v)
	return _c
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableLastPracticedAt(v *time.Time) *MasteryRecordCreate {
	if v != nil {
		_c.SetLastPracticedAt(*v)
	}
	return _c
}

// SetNextReviewAt sets the "next_review_at" field.
func (_c *MasteryRecordCreate) SetNextReviewAt(v time.Time) *MasteryRecordCreate {
	_c.mutation.SetNextReviewAt(v)
	return _c
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableNextReviewAt(v *time.Time) *MasteryRecordCreate {
	if v != nil {
		_c.SetNextReviewAt(*v)
	}
	return _c
}

// SetReviewInterval sets the "review_interval" field.
func (_c *MasteryRecordCreate) SetReviewInterval(v int) *MasteryRecordCreate {
	_c.mutation.SetReviewInterval(v)
	return _c
}

// SetNillableReviewInterval sets the "review_interval" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableReviewInterval(v *int) *MasteryRecordCreate {
	if v != nil {
		_c.SetReviewInterval(*v)
	}
	return _c
}

// SetReviewCount sets the "review_count" field.
func (_c *MasteryRecordCreate) SetReviewCount(v int) *MasteryRecordCreate {
	_c.mutation.SetReviewCount(v)
	return _c
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableReviewCount(v *int) *MasteryRecordCreate {
	if v != nil {
		_c.SetReviewCount(*v)
	}
	return _c
}

// SetEasinessFactor sets the "easiness_factor" field.
func (_c *MasteryRecordCreate) SetEasinessFactor(v float64) *MasteryRecordCreate {
	_c.mutation.SetEasinessFactor(v)
	return _c
}

// SetNillableEasinessFactor sets the "easiness_factor" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableEasinessFactor(v *float64) *MasteryRecordCreate {
	if v != nil {
		_c.SetEasinessFactor(*v)
	}
	return _c
}

// SetConsecutiveCorrect sets the "consecutive_correct" field.
func (_c *MasteryRecordCreate) SetConsecutiveCorrect(v int) *MasteryRecordCreate {
	_c.mutation.SetConsecutiveCorrect(v)
	return _c
}

// SetNillableConsecutiveCorrect sets the "consecutive_correct" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableConsecutiveCorrect(v *int) *MasteryRecordCreate {
	if v != nil {
		_c.SetConsecutiveCorrect(*v)
	}
	return _c
}

// SetPersonalBestLatencyMs sets the "personal_best_latency_ms" field.
func (_c *MasteryRecordCreate) SetPersonalBestLatencyMs(v int) *MasteryRecordCreate {
	_c.mutation.SetPersonalBestLatencyMs(v)
	return _c
}

// SetNillablePersonalBestLatencyMs sets the "personal_best_latency_ms" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillablePersonalBestLatencyMs(v *int) *MasteryRecordCreate {
	if v != nil {
		_c.SetPersonalBestLatencyMs(*v)
	}
	return _c
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_c *MasteryRecordCreate) Mutation() *MasteryRecordMutation {
	return _c.mutation
}

// Save creates the MasteryRecord in the database.
func (_c *MasteryRecordCreate) Save(ctx context.Context) (*MasteryRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MasteryRecordCreate) SaveX(ctx context.Context) *MasteryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MasteryRecordCreate) defaults() {
	if _, ok := _c.mutation.PracticeCount(); !ok {
		v := masteryrecord.DefaultPracticeCount
		_c.mutation.SetPracticeCount(v)
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		v := masteryrecord.DefaultCorrectCount
		_c.mutation.SetCorrectCount(v)
	}
	if _, ok := _c.mutation.ReviewInterval(); !ok {
		v := masteryrecord.DefaultReviewInterval
		_c.mutation.SetReviewInterval(v)
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		v := masteryrecord.DefaultReviewCount
		_c.mutation.SetReviewCount(v)
	}
	if _, ok := _c.mutation.EasinessFactor(); !ok {
		v := masteryrecord.DefaultEasinessFactor
		_c.mutation.SetEasinessFactor(v)
	}
	if _, ok := _c.mutation.ConsecutiveCorrect(); !ok {
		v := masteryrecord.DefaultConsecutiveCorrect
		_c.mutation.SetConsecutiveCorrect(v)
	}
	if _, ok := _c.mutation.PersonalBestLatencyMs(); !ok {
		v := masteryrecord.DefaultPersonalBestLatencyMs
		_c.mutation.SetPersonalBestLatencyMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MasteryRecordCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "MasteryRecord.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := masteryrecord.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "MasteryRecord.concept_id"`)}
	}
	if v, ok := _c.mutation.ConceptID(); ok {
		if err := masteryrecord.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.concept_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Probability(); !ok {
		return &ValidationError{Name: "probability", err: errors.New(`ent: missing required field "MasteryRecord.probability"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "MasteryRecord.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := masteryrecord.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PracticeCount(); !ok {
		return &ValidationError{Name: "practice_count", err: errors.New(`ent: missing required field "MasteryRecord.practice_count"`)}
	}
	if v, ok := _c.mutation.PracticeCount(); ok {
		if err := masteryrecord.PracticeCountValidator(v); err != nil {
			return &ValidationError{Name: "practice_count", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.practice_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "MasteryRecord.correct_count"`)}
	}
	if v, ok := _c.mutation.CorrectCount(); ok {
		if err := masteryrecord.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.correct_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReviewInterval(); !ok {
		return &ValidationError{Name: "review_interval", err: errors.New(`ent: missing required field "MasteryRecord.review_interval"`)}
	}
	if v, ok := _c.mutation.ReviewInterval(); ok {
		if err := masteryrecord.ReviewIntervalValidator(v); err != nil {
			return &ValidationError{Name: "review_interval", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.review_interval": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		return &ValidationError{Name: "review_count", err: errors.New(`ent: missing required field "MasteryRecord.review_count"`)}
	}
	if v, ok := _c.mutation.ReviewCount(); ok {
		if err := masteryrecord.ReviewCountValidator(v); err != nil {
			return &ValidationError{Name: "review_count", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.review_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EasinessFactor(); !ok {
		return &ValidationError{Name: "easiness_factor", err: errors.New(`ent: missing required field "MasteryRecord.easiness_factor"`)}
	}
	if _, ok := _c.mutation.ConsecutiveCorrect(); !ok {
		return &ValidationError{Name: "consecutive_correct", err: errors.New(`ent: missing required field "MasteryRecord.consecutive_correct"`)}
	}
	if v, ok := _c.mutation.ConsecutiveCorrect(); ok {
		if err := masteryrecord.ConsecutiveCorrectValidator(v); err != nil {
			return &ValidationError{Name: "consecutive_correct", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.consecutive_correct": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PersonalBestLatencyMs(); !ok {
		return &ValidationError{Name: "personal_best_latency_ms", err: errors.New(`ent: missing required field "MasteryRecord.personal_best_latency_ms"`)}
	}
	if v, ok := _c.mutation.PersonalBestLatencyMs(); ok {
		if err := masteryrecord.PersonalBestLatencyMsValidator(v); err != nil {
			return &ValidationError{Name: "personal_best_latency_ms", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.personal_best_latency_ms": %w`, err)}
		}
	}
	return nil
}

func (_c *MasteryRecordCreate) sqlSave(ctx context.Context) (*MasteryRecord, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MasteryRecordCreate) createSpec() (*MasteryRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &MasteryRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(masteryrecord.Table, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(masteryrecord.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(masteryrecord.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.Probability(); ok {
		_spec.SetField(masteryrecord.FieldProbability, field.TypeFloat64, value)
		_node.Probability = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(masteryrecord.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.PracticeCount(); ok {
		_spec.SetField(masteryrecord.FieldPracticeCount, field.TypeInt, value)
		_node.PracticeCount = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(masteryrecord.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.LastPracticedAt(); ok {
		_spec.SetField(masteryrecord.FieldLastPracticedAt, field.TypeTime, value)
		_node.LastPracticedAt = &value
	}
	if value, ok := _c.mutation.NextReviewAt(); ok {
		_spec.SetField(masteryrecord.FieldNextReviewAt, field.TypeTime, value)
		_node.NextReviewAt = &value
	}
	if value, ok := _c.mutation.ReviewInterval(); ok {
		_spec.SetField(masteryrecord.FieldReviewInterval, field.TypeInt, value)
		_node.ReviewInterval = value
	}
	if value, ok := _c.mutation.ReviewCount(); ok {
		_spec.SetField(masteryrecord.FieldReviewCount, field.TypeInt, value)
		_node.ReviewCount = value
	}
	if value, ok := _c.mutation.EasinessFactor(); ok {
		_spec.SetField(masteryrecord.FieldEasinessFactor, field.TypeFloat64, value)
		_node.EasinessFactor = value
	}
	if value, ok := _c.mutation.ConsecutiveCorrect(); ok {
		_spec.SetField(masteryrecord.FieldConsecutiveCorrect, field.TypeInt, value)
		_node.ConsecutiveCorrect = value
	}
	if value, ok := _c.mutation.PersonalBestLatencyMs(); ok {
		_spec.SetField(masteryrecord.FieldPersonalBestLatencyMs, field.TypeInt, value)
		_node.PersonalBestLatencyMs = value
	}
	return _node, _spec
}

// MasteryRecordCreateBulk is the builder for creating many MasteryRecord entities in bulk.
type MasteryRecordCreateBulk struct {
	config
	err      error
	builders []*MasteryRecordCreate
}

// Save creates the MasteryRecord entities in the database.
func (_c *MasteryRecordCreateBulk) Save(ctx context.Context) ([]*MasteryRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MasteryRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MasteryRecordMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *MasteryRecordCreateBulk) SaveX(ctx context.Context) []*MasteryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
