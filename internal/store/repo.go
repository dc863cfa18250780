package store

import (
	"context"
	"encoding/json"
	"time"
)

// MasteryRecordData is the persisted shape of one (student, concept)
// mastery record. The store keeps its own data types so the domain
// packages stay free of persistence concerns.
type MasteryRecordData struct {
	StudentID             string
	ConceptID             string
	Probability           float64
	Level                 string
	PracticeCount         int
	CorrectCount          int
	LastPracticedAt       *time.Time
	NextReviewAt          *time.Time
	ReviewInterval        int
	ReviewCount           int
	EasinessFactor        float64
	ConsecutiveCorrect    int
	PersonalBestLatencyMs int
}

// MasteryRepo is the persistence interface for mastery records. Get
// returns nil (no error) when the pair has never been observed. Put
// upserts on the unique (student, concept) pair.
type MasteryRepo interface {
	Get(ctx context.Context, studentID, conceptID string) (*MasteryRecordData, error)
	Put(ctx context.Context, rec *MasteryRecordData) error

	// ListByStudent returns all records for a student, ordered by concept ID.
	ListByStudent(ctx context.Context, studentID string) ([]*MasteryRecordData, error)
}

// MasteryEventData captures a mastery level transition.
type MasteryEventData struct {
	StudentID   string
	ConceptID   string
	FromLevel   string
	ToLevel     string
	Trigger     string // practice, placement-seed, review
	Probability float64
}

// DiagnosisEventData captures a completed diagnostic placement.
type DiagnosisEventData struct {
	SearchID        string
	StudentID       string
	GoalID          string
	FrontierConcept string
	GradeEstimate   int
	Confidence      float64
	QuestionsAsked  int
	MasteredCount   int
	GapCount        int
	Summary         string
}

// EventRepo provides append access to domain events.
type EventRepo interface {
	AppendMasteryEvent(ctx context.Context, data MasteryEventData) error
	AppendDiagnosisEvent(ctx context.Context, data DiagnosisEventData) error
}

// SnapshotData captures serialized learner state at a point in time.
// PendingSearch holds a serialized in-flight diagnostic so a placement can
// resume across processes.
type SnapshotData struct {
	Version       int             `json:"version"`
	PendingSearch json.RawMessage `json:"pending_search,omitempty"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
