// Code generated by ent, DO NOT EDIT.

package diagnosisevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the diagnosisevent type in the database.
	Label = "diagnosis_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSearchID holds the string denoting the search_id field in the database.
	FieldSearchID = "search_id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldGoalID holds the string denoting the goal_id field in the database.
	FieldGoalID = "goal_id"
	// FieldFrontierConcept holds the string denoting the frontier_concept field in the database.
	FieldFrontierConcept = "frontier_concept"
	// FieldGradeEstimate holds the string denoting the grade_estimate field in the database.
	FieldGradeEstimate = "grade_estimate"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldQuestionsAsked holds the string denoting the questions_asked field in the database.
	FieldQuestionsAsked = "questions_asked"
	// FieldMasteredCount holds the string denoting the mastered_count field in the database.
	FieldMasteredCount = "mastered_count"
	// FieldGapCount holds the string denoting the gap_count field in the database.
	FieldGapCount = "gap_count"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// Table holds the table name of the diagnosisevent in the database.
	Table = "diagnosis_events"
)

// Columns holds all SQL columns for diagnosisevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSearchID,
	FieldStudentID,
	FieldGoalID,
	FieldFrontierConcept,
	FieldGradeEstimate,
	FieldConfidence,
	FieldQuestionsAsked,
	FieldMasteredCount,
	FieldGapCount,
	FieldSummary,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SearchIDValidator is a validator for the "search_id" field. It is called by the builders before save.
	SearchIDValidator func(string) error
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// DefaultGoalID holds the default value on creation for the "goal_id" field.
	DefaultGoalID string
	// FrontierConceptValidator is a validator for the "frontier_concept" field. It is called by the builders before save.
	FrontierConceptValidator func(string) error
	// DefaultSummary holds the default value on creation for the "summary" field.
	DefaultSummary string
)

// OrderOption defines the ordering options for the DiagnosisEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySearchID orders the results by the search_id field.
func BySearchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSearchID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByGoalID orders the results by the goal_id field.
func ByGoalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoalID, opts...).ToFunc()
}

// ByFrontierConcept orders the results by the frontier_concept field.
func ByFrontierConcept(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFrontierConcept, opts...).ToFunc()
}

// ByGradeEstimate orders the results by the grade_estimate field.
func ByGradeEstimate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGradeEstimate, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByQuestionsAsked orders the results by the questions_asked field.
func ByQuestionsAsked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsAsked, opts...).ToFunc()
}

// ByMasteredCount orders the results by the mastered_count field.
func ByMasteredCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteredCount, opts...).ToFunc()
}

// ByGapCount orders the results by the gap_count field.
func ByGapCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGapCount, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}
