// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/tutorcore/ent/diagnosisevent"
	"github.com/abhisek/tutorcore/ent/masteryevent"
	"github.com/abhisek/tutorcore/ent/masteryrecord"
	"github.com/abhisek/tutorcore/ent/schema"
	"github.com/abhisek/tutorcore/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	diagnosiseventMixin := schema.DiagnosisEvent{}.Mixin()
	diagnosiseventMixinFields0 := diagnosiseventMixin[0].Fields()
	_ = diagnosiseventMixinFields0
	diagnosiseventFields := schema.DiagnosisEvent{}.Fields()
	_ = diagnosiseventFields
	// diagnosiseventDescTimestamp is the schema descriptor for timestamp field.
	diagnosiseventDescTimestamp := diagnosiseventMixinFields0[1].Descriptor()
	// diagnosisevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	diagnosisevent.DefaultTimestamp = diagnosiseventDescTimestamp.Default.(func() time.Time)
	// diagnosiseventDescSearchID is the schema descriptor for search_id field.
	diagnosiseventDescSearchID := diagnosiseventFields[0].Descriptor()
	// diagnosisevent.SearchIDValidator is a validator for the "search_id" field. It is called by the builders before save.
	diagnosisevent.SearchIDValidator = diagnosiseventDescSearchID.Validators[0].(func(string) error)
	// diagnosiseventDescStudentID is the schema descriptor for student_id field.
	diagnosiseventDescStudentID := diagnosiseventFields[1].Descriptor()
	// diagnosisevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	diagnosisevent.StudentIDValidator = diagnosiseventDescStudentID.Validators[0].(func(string) error)
	// diagnosiseventDescGoalID is the schema descriptor for goal_id field.
	diagnosiseventDescGoalID := diagnosiseventFields[2].Descriptor()
	// diagnosisevent.DefaultGoalID holds the default value on creation for the goal_id field.
	diagnosisevent.DefaultGoalID = diagnosiseventDescGoalID.Default.(string)
	// diagnosiseventDescFrontierConcept is the schema descriptor for frontier_concept field.
	diagnosiseventDescFrontierConcept := diagnosiseventFields[3].Descriptor()
	// diagnosisevent.FrontierConceptValidator is a validator for the "frontier_concept" field. It is called by the builders before save.
	diagnosisevent.FrontierConceptValidator = diagnosiseventDescFrontierConcept.Validators[0].(func(string) error)
	// diagnosiseventDescSummary is the schema descriptor for summary field.
	diagnosiseventDescSummary := diagnosiseventFields[9].Descriptor()
	// diagnosisevent.DefaultSummary holds the default value on creation for the summary field.
	diagnosisevent.DefaultSummary = diagnosiseventDescSummary.Default.(string)
	masteryeventMixin := schema.MasteryEvent{}.Mixin()
	masteryeventMixinFields0 := masteryeventMixin[0].Fields()
	_ = masteryeventMixinFields0
	masteryeventFields := schema.MasteryEvent{}.Fields()
	_ = masteryeventFields
	// masteryeventDescTimestamp is the schema descriptor for timestamp field.
	masteryeventDescTimestamp := masteryeventMixinFields0[1].Descriptor()
	// masteryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	masteryevent.DefaultTimestamp = masteryeventDescTimestamp.Default.(func() time.Time)
	// masteryeventDescStudentID is the schema descriptor for student_id field.
	masteryeventDescStudentID := masteryeventFields[0].Descriptor()
	// masteryevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	masteryevent.StudentIDValidator = masteryeventDescStudentID.Validators[0].(func(string) error)
	// masteryeventDescConceptID is the schema descriptor for concept_id field.
	masteryeventDescConceptID := masteryeventFields[1].Descriptor()
	// masteryevent.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	masteryevent.ConceptIDValidator = masteryeventDescConceptID.Validators[0].(func(string) error)
	// masteryeventDescFromLevel is the schema descriptor for from_level field.
	masteryeventDescFromLevel := masteryeventFields[2].Descriptor()
	// masteryevent.FromLevelValidator is a validator for the "from_level" field. It is called by the builders before save.
	masteryevent.FromLevelValidator = masteryeventDescFromLevel.Validators[0].(func(string) error)
	// masteryeventDescToLevel is the schema descriptor for to_level field.
	masteryeventDescToLevel := masteryeventFields[3].Descriptor()
	// masteryevent.ToLevelValidator is a validator for the "to_level" field. It is called by the builders before save.
	masteryevent.ToLevelValidator = masteryeventDescToLevel.Validators[0].(func(string) error)
	// masteryeventDescTrigger is the schema descriptor for trigger field.
	masteryeventDescTrigger := masteryeventFields[4].Descriptor()
	// masteryevent.TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	masteryevent.TriggerValidator = masteryeventDescTrigger.Validators[0].(func(string) error)
	masteryrecordFields := schema.MasteryRecord{}.Fields()
	_ = masteryrecordFields
	// masteryrecordDescStudentID is the schema descriptor for student_id field.
	masteryrecordDescStudentID := masteryrecordFields[0].Descriptor()
	// masteryrecord.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	masteryrecord.StudentIDValidator = masteryrecordDescStudentID.Validators[0].(func(string) error)
	// masteryrecordDescConceptID is the schema descriptor for concept_id field.
	masteryrecordDescConceptID := masteryrecordFields[1].Descriptor()
	// masteryrecord.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	masteryrecord.ConceptIDValidator = masteryrecordDescConceptID.Validators[0].(func(string) error)
	// masteryrecordDescLevel is the schema descriptor for level field.
	masteryrecordDescLevel := masteryrecordFields[3].Descriptor()
	// masteryrecord.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	masteryrecord.LevelValidator = masteryrecordDescLevel.Validators[0].(func(string) error)
	// masteryrecordDescPracticeCount is the schema descriptor for practice_count field.
	masteryrecordDescPracticeCount := masteryrecordFields[4].Descriptor()
	// masteryrecord.DefaultPracticeCount holds the default value on creation for the practice_count field.
	masteryrecord.DefaultPracticeCount = masteryrecordDescPracticeCount.Default.(int)
	// masteryrecord.PracticeCountValidator is a validator for the "practice_count" field. It is called by the builders before save.
	masteryrecord.PracticeCountValidator = masteryrecordDescPracticeCount.Validators[0].(func(int) error)
	// masteryrecordDescCorrectCount is the schema descriptor for correct_count field.
	masteryrecordDescCorrectCount := masteryrecordFields[5].Descriptor()
	// masteryrecord.DefaultCorrectCount holds the default value on creation for the correct_count field.
	masteryrecord.DefaultCorrectCount = masteryrecordDescCorrectCount.Default.(int)
	// masteryrecord.CorrectCountValidator is a validator for the "correct_count" field. It is called by the builders before save.
	masteryrecord.CorrectCountValidator = masteryrecordDescCorrectCount.Validators[0].(func(int) error)
	// masteryrecordDescReviewInterval is the schema descriptor for review_interval field.
	masteryrecordDescReviewInterval := masteryrecordFields[8].Descriptor()
	// masteryrecord.DefaultReviewInterval holds the default value on creation for the review_interval field.
	masteryrecord.DefaultReviewInterval = masteryrecordDescReviewInterval.Default.(int)
	// masteryrecord.ReviewIntervalValidator is a validator for the "review_interval" field. It is called by the builders before save.
	masteryrecord.ReviewIntervalValidator = masteryrecordDescReviewInterval.Validators[0].(func(int) error)
	// masteryrecordDescReviewCount is the schema descriptor for review_count field.
	masteryrecordDescReviewCount := masteryrecordFields[9].Descriptor()
	// masteryrecord.DefaultReviewCount holds the default value on creation for the review_count field.
	masteryrecord.DefaultReviewCount = masteryrecordDescReviewCount.Default.(int)
	// masteryrecord.ReviewCountValidator is a validator for the "review_count" field. It is called by the builders before save.
	masteryrecord.ReviewCountValidator = masteryrecordDescReviewCount.Validators[0].(func(int) error)
	// masteryrecordDescEasinessFactor is the schema descriptor for easiness_factor field.
	masteryrecordDescEasinessFactor := masteryrecordFields[10].Descriptor()
	// masteryrecord.DefaultEasinessFactor holds the default value on creation for the easiness_factor field.
	masteryrecord.DefaultEasinessFactor = masteryrecordDescEasinessFactor.Default.(float64)
	// masteryrecordDescConsecutiveCorrect is the schema descriptor for consecutive_correct field.
	masteryrecordDescConsecutiveCorrect := masteryrecordFields[11].Descriptor()
	// masteryrecord.DefaultConsecutiveCorrect holds the default value on creation for the consecutive_correct field.
	masteryrecord.DefaultConsecutiveCorrect = masteryrecordDescConsecutiveCorrect.Default.(int)
	// masteryrecord.ConsecutiveCorrectValidator is a validator for the "consecutive_correct" field. It is called by the builders before save.
	masteryrecord.ConsecutiveCorrectValidator = masteryrecordDescConsecutiveCorrect.Validators[0].(func(int) error)
	// masteryrecordDescPersonalBestLatencyMs is the schema descriptor for personal_best_latency_ms field.
	masteryrecordDescPersonalBestLatencyMs := masteryrecordFields[12].Descriptor()
	// masteryrecord.DefaultPersonalBestLatencyMs holds the default value on creation for the personal_best_latency_ms field.
	masteryrecord.DefaultPersonalBestLatencyMs = masteryrecordDescPersonalBestLatencyMs.Default.(int)
	// masteryrecord.PersonalBestLatencyMsValidator is a validator for the "personal_best_latency_ms" field. It is called by the builders before save.
	masteryrecord.PersonalBestLatencyMsValidator = masteryrecordDescPersonalBestLatencyMs.Validators[0].(func(int) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
