// Code generated by ent, DO NOT EDIT.

package masteryrecord

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the masteryrecord type in the database.
	Label = "mastery_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldConceptID holds the string denoting the concept_id field in the database.
	FieldConceptID = "concept_id"
	// FieldProbability holds the string denoting the probability field in the database.
	FieldProbability = "probability"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldPracticeCount holds the string denoting the practice_count field in the database.
	FieldPracticeCount = "practice_count"
	// FieldCorrectCount holds the string denoting the correct_count field in the database.
	FieldCorrectCount = "correct_count"
	// FieldLastPracticedAt holds the string denoting the last_practiced_at field in the database.
	FieldLastPracticedAt = "last_practiced_at"
	// FieldNextReviewAt holds the string denoting the next_review_at field in the database.
	FieldNextReviewAt = "next_review_at"
	// FieldReviewInterval holds the string denoting the review_interval field in the database.
	FieldReviewInterval = "review_interval"
	// FieldReviewCount holds the string denoting the review_count field in the database.
	FieldReviewCount = "review_count"
	// FieldEasinessFactor holds the string denoting the easiness_factor field in the database.
	FieldEasinessFactor = "easiness_factor"
	// FieldConsecutiveCorrect holds the string denoting the consecutive_correct field in the database.
	FieldConsecutiveCorrect = "consecutive_correct"
	// FieldPersonalBestLatencyMs holds the string denoting the personal_best_latency_ms field in the database.
	FieldPersonalBestLatencyMs = "personal_best_latency_ms"
	// Table holds the table name of the masteryrecord in the database.
	Table = "mastery_records"
)

// Columns holds all SQL columns for masteryrecord fields.
var Columns = []string{
	FieldID,
	FieldStudentID,
	FieldConceptID,
	FieldProbability,
	FieldLevel,
	FieldPracticeCount,
	FieldCorrectCount,
	FieldLastPracticedAt,
	FieldNextReviewAt,
	FieldReviewInterval,
	FieldReviewCount,
	FieldEasinessFactor,
	FieldConsecutiveCorrect,
	FieldPersonalBestLatencyMs,
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
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	ConceptIDValidator func(string) error
	// LevelValidator is a validator for the "level" field. It is called by the builders before save.
	LevelValidator func(string) error
	// DefaultPracticeCount holds the default value on creation for the "practice_count" field.
	DefaultPracticeCount int
	// PracticeCountValidator is a validator for the "practice_count" field. It is called by the builders before save.
	PracticeCountValidator func(int) error
	// DefaultCorrectCount holds the default value on creation for the "correct_count" field.
	DefaultCorrectCount int
	// CorrectCountValidator is a validator for the "correct_count" field. It is called by the builders before save.
	CorrectCountValidator func(int) error
	// DefaultReviewInterval holds the default value on creation for the "review_interval" field.
	DefaultReviewInterval int
	// ReviewIntervalValidator is a validator for the "review_interval" field. It is called by the builders before save.
	ReviewIntervalValidator func(int) error
	// DefaultReviewCount holds the default value on creation for the "review_count" field.
	DefaultReviewCount int
	// ReviewCountValidator is a validator for the "review_count" field. It is called by the builders before save.
	ReviewCountValidator func(int) error
	// DefaultEasinessFactor holds the default value on creation for the "easiness_factor" field.
	DefaultEasinessFactor float64
	// DefaultConsecutiveCorrect holds the default value on creation for the "consecutive_correct" field.
	DefaultConsecutiveCorrect int
	// ConsecutiveCorrectValidator is a validator for the "consecutive_correct" field. It is called by the builders before save.
	ConsecutiveCorrectValidator func(int) error
	// DefaultPersonalBestLatencyMs holds the default value on creation for the "personal_best_latency_ms" field.
	DefaultPersonalBestLatencyMs int
	// PersonalBestLatencyMsValidator is a validator for the "personal_best_latency_ms" field. It is called by the builders before save.
	PersonalBestLatencyMsValidator func(int) error
)

// OrderOption defines the ordering options for the MasteryRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByConceptID orders the results by the concept_id field.
func ByConceptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptID, opts...).ToFunc()
}

// ByProbability orders the results by the probability field.
func ByProbability(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProbability, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByPracticeCount orders the results by the practice_count field.
func ByPracticeCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPracticeCount, opts...).ToFunc()
}

// ByCorrectCount orders the results by the correct_count field.
func ByCorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectCount, opts...).ToFunc()
}

// ByLastPracticedAt orders the results by the last_practiced_at field.
func ByLastPracticedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPracticedAt, opts...).ToFunc()
}

// ByNextReviewAt orders the results by the next_review_at field.
func ByNextReviewAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReviewAt, opts...).ToFunc()
}

// ByReviewInterval orders the results by the review_interval field.
func ByReviewInterval(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewInterval, opts...).ToFunc()
}

// ByReviewCount orders the results by the review_count field.
func ByReviewCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewCount, opts...).ToFunc()
}

// ByEasinessFactor orders the results by the easiness_factor field.
func ByEasinessFactor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEasinessFactor, opts...).ToFunc()
}

// ByConsecutiveCorrect orders the results by the consecutive_correct field.
func ByConsecutiveCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsecutiveCorrect, opts...).ToFunc()
}

// ByPersonalBestLatencyMs orders the results by the personal_best_latency_ms field.
func ByPersonalBestLatencyMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPersonalBestLatencyMs, opts...).ToFunc()
}
