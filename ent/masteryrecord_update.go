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
	"github.com/abhisek/tutorcore/ent/masteryrecord"
	"github.com/abhisek/tutorcore/ent/predicate"
)

// MasteryRecordUpdate is the builder for updating MasteryRecord entities.
type MasteryRecordUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryRecordMutation
}

// Where appends a list predicates to the MasteryRecordUpdate builder.
func (_u *MasteryRecordUpdate) Where(ps ...predicate.MasteryRecord) *MasteryRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *MasteryRecordUpdate) SetStudentID(v string) *MasteryRecordUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableStudentID(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *MasteryRecordUpdate) SetConceptID(v string) *MasteryRecordUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableConceptID(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetProbability sets the "probability" field.
func (_u *MasteryRecordUpdate) SetProbability(v float64) *MasteryRecordUpdate {
	_u.mutation.ResetProbability()
	_u.mutation.SetProbability(v)
	return _u
}

// SetNillableProbability sets the "probability" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableProbability(v *float64) *MasteryRecordUpdate {
	if v != nil {
		_u.SetProbability(*v)
	}
	return _u
}

// AddProbability adds value to the "probability" field.
func (_u *MasteryRecordUpdate) AddProbability(v float64) *MasteryRecordUpdate {
	_u.mutation.AddProbability(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *MasteryRecordUpdate) SetLevel(v string) *MasteryRecordUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableLevel(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetPracticeCount sets the "practice_count" field.
func (_u *MasteryRecordUpdate) SetPracticeCount(v int) *MasteryRecordUpdate {
	_u.mutation.ResetPracticeCount()
	_u.mutation.SetPracticeCount(v)
	return _u
}

// SetNillablePracticeCount sets the "practice_count" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillablePracticeCount(v *int) *MasteryRecordUpdate {
	if v != nil {
		_u.SetPracticeCount(*v)
	}
	return _u
}

// AddPracticeCount adds value to the "practice_count" field.
func (_u *MasteryRecordUpdate) AddPracticeCount(v int) *MasteryRecordUpdate {
	_u.mutation.AddPracticeCount(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *MasteryRecordUpdate) SetCorrectCount(v int) *MasteryRecordUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableCorrectCount(v *int) *MasteryRecordUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *MasteryRecordUpdate) AddCorrectCount(v int) *MasteryRecordUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_u *MasteryRecordUpdate) SetLastPracticedAt(v time.Time) *MasteryRecordUpdate {
	_u.mutation.SetLastPracticedAt(v)
	return _u
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableLastPracticedAt(v *time.Time) *MasteryRecordUpdate {
	if v != nil {
		_u.SetLastPracticedAt(*v)
	}
	return _u
}

// ClearLastPracticedAt clears the value of the "last_practiced_at" field.
func (_u *MasteryRecordUpdate) ClearLastPracticedAt() *MasteryRecordUpdate {
	_u.mutation.ClearLastPracticedAt()
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *MasteryRecordUpdate) SetNextReviewAt(v time.Time) *MasteryRecordUpdate {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableNextReviewAt(v *time.Time) *MasteryRecordUpdate {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (_u *MasteryRecordUpdate) ClearNextReviewAt() *MasteryRecordUpdate {
	_u.mutation.ClearNextReviewAt()
	return _u
}

// SetReviewInterval sets the "review_interval" field.
func (_u *MasteryRecordUpdate) SetReviewInterval(v int) *MasteryRecordUpdate {
	_u.mutation.ResetReviewInterval()
	_u.mutation.SetReviewInterval(v)
	return _u
}

// SetNillableReviewInterval sets the "review_interval" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableReviewInterval(v *int) *MasteryRecordUpdate {
	if v != nil {
		_u.SetReviewInterval(*v)
	}
	return _u
}

// AddReviewInterval adds value to the "review_interval" field.
func (_u *MasteryRecordUpdate) AddReviewInterval(v int) *MasteryRecordUpdate {
	_u.mutation.AddReviewInterval(v)
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *MasteryRecordUpdate) SetReviewCount(v int) *MasteryRecordUpdate {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableReviewCount(v *int) *MasteryRecordUpdate {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *MasteryRecordUpdate) AddReviewCount(v int) *MasteryRecordUpdate {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetEasinessFactor sets the "easiness_factor" field.
func (_u *MasteryRecordUpdate) SetEasinessFactor(v float64) *MasteryRecordUpdate {
	_u.mutation.ResetEasinessFactor()
	_u.mutation.SetEasinessFactor(v)
	return _u
}

// SetNillableEasinessFactor sets the "easiness_factor" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableEasinessFactor(v *float64) *MasteryRecordUpdate {
	if v != nil {
		_u.SetEasinessFactor(*v)
	}
	return _u
}

// AddEasinessFactor adds value to the "easiness_factor" field.
func (_u *MasteryRecordUpdate) AddEasinessFactor(v float64) *MasteryRecordUpdate {
	_u.mutation.AddEasinessFactor(v)
	return _u
}

// SetConsecutiveCorrect sets the "consecutive_correct" field.
func (_u *MasteryRecordUpdate) SetConsecutiveCorrect(v int) *MasteryRecordUpdate {
	_u.mutation.ResetConsecutiveCorrect()
	_u.mutation.SetConsecutiveCorrect(v)
	return _u
}

// SetNillableConsecutiveCorrect sets the "consecutive_correct" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableConsecutiveCorrect(v *int) *MasteryRecordUpdate {
	if v != nil {
		_u.SetConsecutiveCorrect(*v)
	}
	return _u
}

// AddConsecutiveCorrect adds value to the "consecutive_correct" field.
func (_u *MasteryRecordUpdate) AddConsecutiveCorrect(v int) *MasteryRecordUpdate {
	_u.mutation.AddConsecutiveCorrect(v)
	return _u
}

// SetPersonalBestLatencyMs sets the "personal_best_latency_ms" field.
func (_u *MasteryRecordUpdate) SetPersonalBestLatencyMs(v int) *MasteryRecordUpdate {
	_u.mutation.ResetPersonalBestLatencyMs()
	_u.mutation.SetPersonalBestLatencyMs(v)
	return _u
}

// SetNillablePersonalBestLatencyMs sets the "personal_best_latency_ms" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillablePersonalBestLatencyMs(v *int) *MasteryRecordUpdate {
	if v != nil {
		_u.SetPersonalBestLatencyMs(*v)
	}
	return _u
}

// AddPersonalBestLatencyMs adds value to the "personal_best_latency_ms" field.
func (_u *MasteryRecordUpdate) AddPersonalBestLatencyMs(v int) *MasteryRecordUpdate {
	_u.mutation.AddPersonalBestLatencyMs(v)
	return _u
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_u *MasteryRecordUpdate) Mutation() *MasteryRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryRecordUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := masteryrecord.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := masteryrecord.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := masteryrecord.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PracticeCount(); ok {
		if err := masteryrecord.PracticeCountValidator(v); err != nil {
			return &ValidationError{Name: "practice_count", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.practice_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectCount(); ok {
		if err := masteryrecord.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.correct_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewInterval(); ok {
		if err := masteryrecord.ReviewIntervalValidator(v); err != nil {
			return &ValidationError{Name: "review_interval", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.review_interval": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewCount(); ok {
		if err := masteryrecord.ReviewCountValidator(v); err != nil {
			return &ValidationError{Name: "review_count", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.review_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConsecutiveCorrect(); ok {
		if err := masteryrecord.ConsecutiveCorrectValidator(v); err != nil {
			return &ValidationError{Name: "consecutive_correct", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.consecutive_correct": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PersonalBestLatencyMs(); ok {
		if err := masteryrecord.PersonalBestLatencyMsValidator(v); err != nil {
			return &ValidationError{Name: "personal_best_latency_ms", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.personal_best_latency_ms": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryrecord.Table, masteryrecord.Columns, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(masteryrecord.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(masteryrecord.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Probability(); ok {
		_spec.SetField(masteryrecord.FieldProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProbability(); ok {
		_spec.AddField(masteryrecord.FieldProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(masteryrecord.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.PracticeCount(); ok {
		_spec.SetField(masteryrecord.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPracticeCount(); ok {
		_spec.AddField(masteryrecord.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(masteryrecord.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(masteryrecord.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPracticedAt(); ok {
		_spec.SetField(masteryrecord.FieldLastPracticedAt, field.TypeTime, value)
	}
	if _u.mutation.LastPracticedAtCleared() {
		_spec.ClearField(masteryrecord.FieldLastPracticedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(masteryrecord.FieldNextReviewAt, field.TypeTime, value)
	}
	if _u.mutation.NextReviewAtCleared() {
		_spec.ClearField(masteryrecord.FieldNextReviewAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewInterval(); ok {
		_spec.SetField(masteryrecord.FieldReviewInterval, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewInterval(); ok {
		_spec.AddField(masteryrecord.FieldReviewInterval, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(masteryrecord.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(masteryrecord.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EasinessFactor(); ok {
		_spec.SetField(masteryrecord.FieldEasinessFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEasinessFactor(); ok {
		_spec.AddField(masteryrecord.FieldEasinessFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConsecutiveCorrect(); ok {
		_spec.SetField(masteryrecord.FieldConsecutiveCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveCorrect(); ok {
		_spec.AddField(masteryrecord.FieldConsecutiveCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PersonalBestLatencyMs(); ok {
		_spec.SetField(masteryrecord.FieldPersonalBestLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPersonalBestLatencyMs(); ok {
		_spec.AddField(masteryrecord.FieldPersonalBestLatencyMs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryRecordUpdateOne is the builder for updating a single MasteryRecord entity.
type MasteryRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryRecordMutation
}

// SetStudentID sets the "student_id" field.
func (_u *MasteryRecordUpdateOne) SetStudentID(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableStudentID(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *MasteryRecordUpdateOne) SetConceptID(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableConceptID(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetProbability sets the "probability" field.
func (_u *MasteryRecordUpdateOne) SetProbability(v float64) *MasteryRecordUpdateOne {
	_u.mutation.ResetProbability()
	_u.mutation.SetProbability(v)
	return _u
}

// SetNillableProbability sets the "probability" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableProbability(v *float64) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetProbability(*v)
	}
	return _u
}

// AddProbability adds value to the "probability" field.
func (_u *MasteryRecordUpdateOne) AddProbability(v float64) *MasteryRecordUpdateOne {
	_u.mutation.AddProbability(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *MasteryRecordUpdateOne) SetLevel(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableLevel(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetPracticeCount sets the "practice_count" field.
func (_u *MasteryRecordUpdateOne) SetPracticeCount(v int) *MasteryRecordUpdateOne {
	_u.mutation.ResetPracticeCount()
	_u.mutation.SetPracticeCount(v)
	return _u
}

// SetNillablePracticeCount sets the "practice_count" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillablePracticeCount(v *int) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetPracticeCount(*v)
	}
	return _u
}

// AddPracticeCount adds value to the "practice_count" field.
func (_u *MasteryRecordUpdateOne) AddPracticeCount(v int) *MasteryRecordUpdateOne {
	_u.mutation.AddPracticeCount(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *MasteryRecordUpdateOne) SetCorrectCount(v int) *MasteryRecordUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableCorrectCount(v *int) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *MasteryRecordUpdateOne) AddCorrectCount(v int) *MasteryRecordUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_u *MasteryRecordUpdateOne) SetLastPracticedAt(v time.Time) *MasteryRecordUpdateOne {
	_u.mutation.SetLastPracticedAt(v)
	return _u
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableLastPracticedAt(v *time.Time) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetLastPracticedAt(*v)
	}
	return _u
}

// ClearLastPracticedAt clears the value of the "last_practiced_at" field.
func (_u *MasteryRecordUpdateOne) ClearLastPracticedAt() *MasteryRecordUpdateOne {
	_u.mutation.ClearLastPracticedAt()
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *MasteryRecordUpdateOne) SetNextReviewAt(v time.Time) *MasteryRecordUpdateOne {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableNextReviewAt(v *time.Time) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (_u *MasteryRecordUpdateOne) ClearNextReviewAt() *MasteryRecordUpdateOne {
	_u.mutation.ClearNextReviewAt()
	return _u
}

// SetReviewInterval sets the "review_interval" field.
func (_u *MasteryRecordUpdateOne) SetReviewInterval(v int) *MasteryRecordUpdateOne {
	_u.mutation.ResetReviewInterval()
	_u.mutation.SetReviewInterval(v)
	return _u
}

// SetNillableReviewInterval sets the "review_interval" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableReviewInterval(v *int) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetReviewInterval(*v)
	}
	return _u
}

// AddReviewInterval adds value to the "review_interval" field.
func (_u *MasteryRecordUpdateOne) AddReviewInterval(v int) *MasteryRecordUpdateOne {
	_u.mutation.AddReviewInterval(v)
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *MasteryRecordUpdateOne) SetReviewCount(v int) *MasteryRecordUpdateOne {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableReviewCount(v *int) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *MasteryRecordUpdateOne) AddReviewCount(v int) *MasteryRecordUpdateOne {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetEasinessFactor sets the "easiness_factor" field.
func (_u *MasteryRecordUpdateOne) SetEasinessFactor(v float64) *MasteryRecordUpdateOne {
	_u.mutation.ResetEasinessFactor()
	_u.mutation.SetEasinessFactor(v)
	return _u
}

// SetNillableEasinessFactor sets the "easiness_factor" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableEasinessFactor(v *float64) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetEasinessFactor(*v)
	}
	return _u
}

// AddEasinessFactor adds value to the "easiness_factor" field.
func (_u *MasteryRecordUpdateOne) AddEasinessFactor(v float64) *MasteryRecordUpdateOne {
	_u.mutation.AddEasinessFactor(v)
	return _u
}

// SetConsecutiveCorrect sets the "consecutive_correct" field.
func (_u *MasteryRecordUpdateOne) SetConsecutiveCorrect(v int) *MasteryRecordUpdateOne {
	_u.mutation.ResetConsecutiveCorrect()
	_u.mutation.SetConsecutiveCorrect(v)
	return _u
}

// SetNillableConsecutiveCorrect sets the "consecutive_correct" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableConsecutiveCorrect(v *int) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetConsecutiveCorrect(*v)
	}
	return _u
}

// AddConsecutiveCorrect adds value to the "consecutive_correct" field.
func (_u *MasteryRecordUpdateOne) AddConsecutiveCorrect(v int) *MasteryRecordUpdateOne {
	_u.mutation.AddConsecutiveCorrect(v)
	return _u
}

// SetPersonalBestLatencyMs sets the "personal_best_latency_ms" field.
func (_u *MasteryRecordUpdateOne) SetPersonalBestLatencyMs(v int) *MasteryRecordUpdateOne {
	_u.mutation.ResetPersonalBestLatencyMs()
	_u.mutation.SetPersonalBestLatencyMs(v)
	return _u
}

// SetNillablePersonalBestLatencyMs sets the "personal_best_latency_ms" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillablePersonalBestLatencyMs(v *int) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetPersonalBestLatencyMs(*v)
	}
	return _u
}

// AddPersonalBestLatencyMs adds value to the "personal_best_latency_ms" field.
func (_u *MasteryRecordUpdateOne) AddPersonalBestLatencyMs(v int) *MasteryRecordUpdateOne {
	_u.mutation.AddPersonalBestLatencyMs(v)
	return _u
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_u *MasteryRecordUpdateOne) Mutation() *MasteryRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryRecordUpdate builder.
func (_u *MasteryRecordUpdateOne) Where(ps ...predicate.MasteryRecord) *MasteryRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryRecordUpdateOne) Select(field string, fields ...string) *MasteryRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryRecord entity.
func (_u *MasteryRecordUpdateOne) Save(ctx context.Context) (*MasteryRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryRecordUpdateOne) SaveX(ctx context.Context) *MasteryRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryRecordUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := masteryrecord.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := masteryrecord.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := masteryrecord.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PracticeCount(); ok {
		if err := masteryrecord.PracticeCountValidator(v); err != nil {
			return &ValidationError{Name: "practice_count", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.practice_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectCount(); ok {
		if err := masteryrecord.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.correct_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewInterval(); ok {
		if err := masteryrecord.ReviewIntervalValidator(v); err != nil {
			return &ValidationError{Name: "review_interval", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.review_interval": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewCount(); ok {
		if err := masteryrecord.ReviewCountValidator(v); err != nil {
			return &ValidationError{Name: "review_count", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.review_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConsecutiveCorrect(); ok {
		if err := masteryrecord.ConsecutiveCorrectValidator(v); err != nil {
			return &ValidationError{Name: "consecutive_correct", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.consecutive_correct": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PersonalBestLatencyMs(); ok {
		if err := masteryrecord.PersonalBestLatencyMsValidator(v); err != nil {
			return &ValidationError{Name: "personal_best_latency_ms", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.personal_best_latency_ms": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryRecordUpdateOne) sqlSave(ctx context.Context) (_node *MasteryRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryrecord.Table, masteryrecord.Columns, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteryrecord.FieldID)
		for _, f := range fields {
			if !masteryrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteryrecord.FieldID {
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
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(masteryrecord.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(masteryrecord.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Probability(); ok {
		_spec.SetField(masteryrecord.FieldProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProbability(); ok {
		_spec.AddField(masteryrecord.FieldProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(masteryrecord.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.PracticeCount(); ok {
		_spec.SetField(masteryrecord.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPracticeCount(); ok {
		_spec.AddField(masteryrecord.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(masteryrecord.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(masteryrecord.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPracticedAt(); ok {
		_spec.SetField(masteryrecord.FieldLastPracticedAt, field.TypeTime, value)
	}
	if _u.mutation.LastPracticedAtCleared() {
		_spec.ClearField(masteryrecord.FieldLastPracticedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(masteryrecord.FieldNextReviewAt, field.TypeTime, value)
	}
	if _u.mutation.NextReviewAtCleared() {
		_spec.ClearField(masteryrecord.FieldNextReviewAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewInterval(); ok {
		_spec.SetField(masteryrecord.FieldReviewInterval, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewInterval(); ok {
		_spec.AddField(masteryrecord.FieldReviewInterval, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(masteryrecord.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(masteryrecord.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EasinessFactor(); ok {
		_spec.SetField(masteryrecord.FieldEasinessFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEasinessFactor(); ok {
		_spec.AddField(masteryrecord.FieldEasinessFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConsecutiveCorrect(); ok {
		_spec.SetField(masteryrecord.FieldConsecutiveCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveCorrect(); ok {
		_spec.AddField(masteryrecord.FieldConsecutiveCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PersonalBestLatencyMs(); ok {
		_spec.SetField(masteryrecord.FieldPersonalBestLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPersonalBestLatencyMs(); ok {
		_spec.AddField(masteryrecord.FieldPersonalBestLatencyMs, field.TypeInt, value)
	}
	_node = &MasteryRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
