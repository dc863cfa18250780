// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutorcore/ent/diagnosisevent"
	"github.com/abhisek/tutorcore/ent/predicate"
)

// DiagnosisEventUpdate is the builder for updating DiagnosisEvent entities.
type DiagnosisEventUpdate struct {
	config
	hooks    []Hook
	mutation *DiagnosisEventMutation
}

// Where appends a list predicates to the DiagnosisEventUpdate builder.
func (_u *DiagnosisEventUpdate) Where(ps ...predicate.DiagnosisEvent) *DiagnosisEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSearchID sets the "search_id" field.
func (_u *DiagnosisEventUpdate) SetSearchID(v string) *DiagnosisEventUpdate {
	_u.mutation.SetSearchID(v)
	return _u
}

// SetNillableSearchID sets the "search_id" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableSearchID(v *string) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetSearchID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *DiagnosisEventUpdate) SetStudentID(v string) *DiagnosisEventUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableStudentID(v *string) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetGoalID sets the "goal_id" field.
func (_u *DiagnosisEventUpdate) SetGoalID(v string) *DiagnosisEventUpdate {
	_u.mutation.SetGoalID(v)
	return _u
}

// SetNillableGoalID sets the "goal_id" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableGoalID(v *string) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetGoalID(*v)
	}
	return _u
}

// ClearGoalID clears the value of the "goal_id" field.
func (_u *DiagnosisEventUpdate) ClearGoalID() *DiagnosisEventUpdate {
	_u.mutation.ClearGoalID()
	return _u
}

// SetFrontierConcept sets the "frontier_concept" field.
func (_u *DiagnosisEventUpdate) SetFrontierConcept(v string) *DiagnosisEventUpdate {
	_u.mutation.SetFrontierConcept(v)
	return _u
}

// SetNillableFrontierConcept sets the "frontier_concept" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableFrontierConcept(v *string) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetFrontierConcept(*v)
	}
	return _u
}

// SetGradeEstimate sets the "grade_estimate" field.
func (_u *DiagnosisEventUpdate) SetGradeEstimate(v int) *DiagnosisEventUpdate {
	_u.mutation.ResetGradeEstimate()
	_u.mutation.SetGradeEstimate(v)
	return _u
}

// SetNillableGradeEstimate sets the "grade_estimate" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableGradeEstimate(v *int) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetGradeEstimate(*v)
	}
	return _u
}

// AddGradeEstimate adds value to the "grade_estimate" field.
func (_u *DiagnosisEventUpdate) AddGradeEstimate(v int) *DiagnosisEventUpdate {
	_u.mutation.AddGradeEstimate(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DiagnosisEventUpdate) SetConfidence(v float64) *DiagnosisEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableConfidence(v *float64) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DiagnosisEventUpdate) AddConfidence(v float64) *DiagnosisEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetQuestionsAsked sets the "questions_asked" field.
func (_u *DiagnosisEventUpdate) SetQuestionsAsked(v int) *DiagnosisEventUpdate {
	_u.mutation.ResetQuestionsAsked()
	_u.mutation.SetQuestionsAsked(v)
	return _u
}

// SetNillableQuestionsAsked sets the "questions_asked" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableQuestionsAsked(v *int) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetQuestionsAsked(*v)
	}
	return _u
}

// AddQuestionsAsked adds value to the "questions_asked" field.
func (_u *DiagnosisEventUpdate) AddQuestionsAsked(v int) *DiagnosisEventUpdate {
	_u.mutation.AddQuestionsAsked(v)
	return _u
}

// SetMasteredCount sets the "mastered_count" field.
func (_u *DiagnosisEventUpdate) SetMasteredCount(v int) *DiagnosisEventUpdate {
	_u.mutation.ResetMasteredCount()
	_u.mutation.SetMasteredCount(v)
	return _u
}

// SetNillableMasteredCount sets the "mastered_count" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableMasteredCount(v *int) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetMasteredCount(*v)
	}
	return _u
}

// AddMasteredCount adds value to the "mastered_count" field.
func (_u *DiagnosisEventUpdate) AddMasteredCount(v int) *DiagnosisEventUpdate {
	_u.mutation.AddMasteredCount(v)
	return _u
}

// SetGapCount sets the "gap_count" field.
func (_u *DiagnosisEventUpdate) SetGapCount(v int) *DiagnosisEventUpdate {
	_u.mutation.ResetGapCount()
	_u.mutation.SetGapCount(v)
	return _u
}

// SetNillableGapCount sets the "gap_count" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableGapCount(v *int) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetGapCount(*v)
	}
	return _u
}

// AddGapCount adds value to the "gap_count" field.
func (_u *DiagnosisEventUpdate) AddGapCount(v int) *DiagnosisEventUpdate {
	_u.mutation.AddGapCount(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *DiagnosisEventUpdate) SetSummary(v string) *DiagnosisEventUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableSummary(v *string) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *DiagnosisEventUpdate) ClearSummary() *DiagnosisEventUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// Mutation returns the DiagnosisEventMutation object of the builder.
func (_u *DiagnosisEventUpdate) Mutation() *DiagnosisEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DiagnosisEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagnosisEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DiagnosisEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagnosisEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagnosisEventUpdate) check() error {
	if v, ok := _u.mutation.SearchID(); ok {
		if err := diagnosisevent.SearchIDValidator(v); err != nil {
			return &ValidationError{Name: "search_id", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.search_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentID(); ok {
		if err := diagnosisevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FrontierConcept(); ok {
		if err := diagnosisevent.FrontierConceptValidator(v); err != nil {
			return &ValidationError{Name: "frontier_concept", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.frontier_concept": %w`, err)}
		}
	}
	return nil
}

func (_u *DiagnosisEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagnosisevent.Table, diagnosisevent.Columns, sqlgraph.NewFieldSpec(diagnosisevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SearchID(); ok {
		_spec.SetField(diagnosisevent.FieldSearchID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(diagnosisevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GoalID(); ok {
		_spec.SetField(diagnosisevent.FieldGoalID, field.TypeString, value)
	}
	if _u.mutation.GoalIDCleared() {
		_spec.ClearField(diagnosisevent.FieldGoalID, field.TypeString)
	}
	if value, ok := _u.mutation.FrontierConcept(); ok {
		_spec.SetField(diagnosisevent.FieldFrontierConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.GradeEstimate(); ok {
		_spec.SetField(diagnosisevent.FieldGradeEstimate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGradeEstimate(); ok {
		_spec.AddField(diagnosisevent.FieldGradeEstimate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(diagnosisevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(diagnosisevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QuestionsAsked(); ok {
		_spec.SetField(diagnosisevent.FieldQuestionsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAsked(); ok {
		_spec.AddField(diagnosisevent.FieldQuestionsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteredCount(); ok {
		_spec.SetField(diagnosisevent.FieldMasteredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteredCount(); ok {
		_spec.AddField(diagnosisevent.FieldMasteredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GapCount(); ok {
		_spec.SetField(diagnosisevent.FieldGapCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGapCount(); ok {
		_spec.AddField(diagnosisevent.FieldGapCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(diagnosisevent.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(diagnosisevent.FieldSummary, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagnosisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DiagnosisEventUpdateOne is the builder for updating a single DiagnosisEvent entity.
type DiagnosisEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DiagnosisEventMutation
}

// SetSearchID sets the "search_id" field.
func (_u *DiagnosisEventUpdateOne) SetSearchID(v string) *DiagnosisEventUpdateOne {
	_u.mutation.SetSearchID(v)
	return _u
}

// SetNillableSearchID sets the "search_id" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableSearchID(v *string) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetSearchID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *DiagnosisEventUpdateOne) SetStudentID(v string) *DiagnosisEventUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableStudentID(v *string) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetGoalID sets the "goal_id" field.
func (_u *DiagnosisEventUpdateOne) SetGoalID(v string) *DiagnosisEventUpdateOne {
	_u.mutation.SetGoalID(v)
	return _u
}

// SetNillableGoalID sets the "goal_id" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableGoalID(v *string) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetGoalID(*v)
	}
	return _u
}

// ClearGoalID clears the value of the "goal_id" field.
func (_u *DiagnosisEventUpdateOne) ClearGoalID() *DiagnosisEventUpdateOne {
	_u.mutation.ClearGoalID()
	return _u
}

// SetFrontierConcept sets the "frontier_concept" field.
func (_u *DiagnosisEventUpdateOne) SetFrontierConcept(v string) *DiagnosisEventUpdateOne {
	_u.mutation.SetFrontierConcept(v)
	return _u
}

// SetNillableFrontierConcept sets the "frontier_concept" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableFrontierConcept(v *string) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetFrontierConcept(*v)
	}
	return _u
}

// SetGradeEstimate sets the "grade_estimate" field.
func (_u *DiagnosisEventUpdateOne) SetGradeEstimate(v int) *DiagnosisEventUpdateOne {
	_u.mutation.ResetGradeEstimate()
	_u.mutation.SetGradeEstimate(v)
	return _u
}

// SetNillableGradeEstimate sets the "grade_estimate" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableGradeEstimate(v *int) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetGradeEstimate(*v)
	}
	return _u
}

// AddGradeEstimate adds value to the "grade_estimate" field.
func (_u *DiagnosisEventUpdateOne) AddGradeEstimate(v int) *DiagnosisEventUpdateOne {
	_u.mutation.AddGradeEstimate(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DiagnosisEventUpdateOne) SetConfidence(v float64) *DiagnosisEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableConfidence(v *float64) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DiagnosisEventUpdateOne) AddConfidence(v float64) *DiagnosisEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetQuestionsAsked sets the "questions_asked" field.
func (_u *DiagnosisEventUpdateOne) SetQuestionsAsked(v int) *DiagnosisEventUpdateOne {
	_u.mutation.ResetQuestionsAsked()
	_u.mutation.SetQuestionsAsked(v)
	return _u
}

// SetNillableQuestionsAsked sets the "questions_asked" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableQuestionsAsked(v *int) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetQuestionsAsked(*v)
	}
	return _u
}

// AddQuestionsAsked adds value to the "questions_asked" field.
func (_u *DiagnosisEventUpdateOne) AddQuestionsAsked(v int) *DiagnosisEventUpdateOne {
	_u.mutation.AddQuestionsAsked(v)
	return _u
}

// SetMasteredCount sets the "mastered_count" field.
func (_u *DiagnosisEventUpdateOne) SetMasteredCount(v int) *DiagnosisEventUpdateOne {
	_u.mutation.ResetMasteredCount()
	_u.mutation.SetMasteredCount(v)
	return _u
}

// SetNillableMasteredCount sets the "mastered_count" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableMasteredCount(v *int) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetMasteredCount(*v)
	}
	return _u
}

// AddMasteredCount adds value to the "mastered_count" field.
func (_u *DiagnosisEventUpdateOne) AddMasteredCount(v int) *DiagnosisEventUpdateOne {
	_u.mutation.AddMasteredCount(v)
	return _u
}

// SetGapCount sets the "gap_count" field.
func (_u *DiagnosisEventUpdateOne) SetGapCount(v int) *DiagnosisEventUpdateOne {
	_u.mutation.ResetGapCount()
	_u.mutation.SetGapCount(v)
	return _u
}

// SetNillableGapCount sets the "gap_count" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableGapCount(v *int) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetGapCount(*v)
	}
	return _u
}

// AddGapCount adds value to the "gap_count" field.
func (_u *DiagnosisEventUpdateOne) AddGapCount(v int) *DiagnosisEventUpdateOne {
	_u.mutation.AddGapCount(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *DiagnosisEventUpdateOne) SetSummary(v string) *DiagnosisEventUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableSummary(v *string) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *DiagnosisEventUpdateOne) ClearSummary() *DiagnosisEventUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// Mutation returns the DiagnosisEventMutation object of the builder.
func (_u *DiagnosisEventUpdateOne) Mutation() *DiagnosisEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the DiagnosisEventUpdate builder.
func (_u *DiagnosisEventUpdateOne) Where(ps ...predicate.DiagnosisEvent) *DiagnosisEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DiagnosisEventUpdateOne) Select(field string, fields ...string) *DiagnosisEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DiagnosisEvent entity.
func (_u *DiagnosisEventUpdateOne) Save(ctx context.Context) (*DiagnosisEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagnosisEventUpdateOne) SaveX(ctx context.Context) *DiagnosisEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DiagnosisEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagnosisEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagnosisEventUpdateOne) check() error {
	if v, ok := _u.mutation.SearchID(); ok {
		if err := diagnosisevent.SearchIDValidator(v); err != nil {
			return &ValidationError{Name: "search_id", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.search_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentID(); ok {
		if err := diagnosisevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FrontierConcept(); ok {
		if err := diagnosisevent.FrontierConceptValidator(v); err != nil {
			return &ValidationError{Name: "frontier_concept", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.frontier_concept": %w`, err)}
		}
	}
	return nil
}

func (_u *DiagnosisEventUpdateOne) sqlSave(ctx context.Context) (_node *DiagnosisEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagnosisevent.Table, diagnosisevent.Columns, sqlgraph.NewFieldSpec(diagnosisevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DiagnosisEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, diagnosisevent.FieldID)
		for _, f := range fields {
			if !diagnosisevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != diagnosisevent.FieldID {
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
	if value, ok := _u.mutation.SearchID(); ok {
		_spec.SetField(diagnosisevent.FieldSearchID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(diagnosisevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GoalID(); ok {
		_spec.SetField(diagnosisevent.FieldGoalID, field.TypeString, value)
	}
	if _u.mutation.GoalIDCleared() {
		_spec.ClearField(diagnosisevent.FieldGoalID, field.TypeString)
	}
	if value, ok := _u.mutation.FrontierConcept(); ok {
		_spec.SetField(diagnosisevent.FieldFrontierConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.GradeEstimate(); ok {
		_spec.SetField(diagnosisevent.FieldGradeEstimate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGradeEstimate(); ok {
		_spec.AddField(diagnosisevent.FieldGradeEstimate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(diagnosisevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(diagnosisevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QuestionsAsked(); ok {
		_spec.SetField(diagnosisevent.FieldQuestionsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAsked(); ok {
		_spec.AddField(diagnosisevent.FieldQuestionsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteredCount(); ok {
		_spec.SetField(diagnosisevent.FieldMasteredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteredCount(); ok {
		_spec.AddField(diagnosisevent.FieldMasteredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GapCount(); ok {
		_spec.SetField(diagnosisevent.FieldGapCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGapCount(); ok {
		_spec.AddField(diagnosisevent.FieldGapCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(diagnosisevent.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(diagnosisevent.FieldSummary, field.TypeString)
	}
	_node = &DiagnosisEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagnosisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
