package store

import (
	"context"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"mastery_records", "mastery_events", "diagnosis_events", "snapshots"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestMasteryRepo_GetMissingReturnsNil(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()

	rec, err := repo.Get(context.Background(), "stu-1", "never-seen")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec != nil {
		t.Errorf("expected nil for unseen pair, got %+v", rec)
	}
}

func TestMasteryRepo_PutGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	practiced := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	review := practiced.AddDate(0, 0, 7)
	in := &MasteryRecordData{
		StudentID:             "stu-1",
		ConceptID:             "mult-facts-10",
		Probability:           0.72,
		Level:                 "proficient",
		PracticeCount:         9,
		CorrectCount:          7,
		LastPracticedAt:       &practiced,
		NextReviewAt:          &review,
		ReviewInterval:        7,
		ReviewCount:           3,
		EasinessFactor:        2.3,
		ConsecutiveCorrect:    4,
		PersonalBestLatencyMs: 850,
	}
	if err := repo.Put(ctx, in); err != nil {
		t.Fatalf("put: %v", err)
	}

	out, err := repo.Get(ctx, "stu-1", "mult-facts-10")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out == nil {
		t.Fatal("expected record after put")
	}
	if out.Probability != 0.72 || out.Level != "proficient" {
		t.Errorf("round trip lost mastery state: %+v", out)
	}
	if out.ReviewInterval != 7 || out.ReviewCount != 3 || out.EasinessFactor != 2.3 {
		t.Errorf("round trip lost schedule state: %+v", out)
	}
	if out.LastPracticedAt == nil || !out.LastPracticedAt.Equal(practiced) {
		t.Errorf("last practiced = %v, want %v", out.LastPracticedAt, practiced)
	}
	if out.NextReviewAt == nil || !out.NextReviewAt.Equal(review) {
		t.Errorf("next review = %v, want %v", out.NextReviewAt, review)
	}
}

func TestMasteryRepo_PutUpserts(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	rec := &MasteryRecordData{
		StudentID:      "stu-1",
		ConceptID:      "add-within-20",
		Probability:    0.3,
		Level:          "developing",
		ReviewInterval: 1,
		EasinessFactor: 2.5,
	}
	if err := repo.Put(ctx, rec); err != nil {
		t.Fatalf("first put: %v", err)
	}

	rec.Probability = 0.91
	rec.Level = "mastered"
	rec.PracticeCount = 12
	if err := repo.Put(ctx, rec); err != nil {
		t.Fatalf("second put: %v", err)
	}

	out, err := repo.Get(ctx, "stu-1", "add-within-20")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out.Probability != 0.91 || out.Level != "mastered" || out.PracticeCount != 12 {
		t.Errorf("upsert did not overwrite: %+v", out)
	}

	count, err := s.Client().MasteryRecord.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("upsert created %d rows, want 1", count)
	}
}

func TestMasteryRepo_ListByStudent(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	for _, pair := range []struct{ student, concept string }{
		{"stu-1", "sub-within-20"},
		{"stu-1", "add-within-20"},
		{"stu-2", "add-within-20"},
	} {
		err := repo.Put(ctx, &MasteryRecordData{
			StudentID:      pair.student,
			ConceptID:      pair.concept,
			Probability:    0.3,
			Level:          "developing",
			ReviewInterval: 1,
			EasinessFactor: 2.5,
		})
		if err != nil {
			t.Fatalf("put %s/%s: %v", pair.student, pair.concept, err)
		}
	}

	recs, err := repo.ListByStudent(ctx, "stu-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("list returned %d records, want 2", len(recs))
	}
	// Ordered by concept ID.
	if recs[0].ConceptID != "add-within-20" || recs[1].ConceptID != "sub-within-20" {
		t.Errorf("order = [%s, %s]", recs[0].ConceptID, recs[1].ConceptID)
	}
}

func TestEventRepo_AppendsWithGlobalSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendMasteryEvent(ctx, MasteryEventData{
		StudentID:   "stu-1",
		ConceptID:   "fractions-unit",
		FromLevel:   "developing",
		ToLevel:     "proficient",
		Trigger:     "practice",
		Probability: 0.76,
	})
	if err != nil {
		t.Fatalf("append mastery event: %v", err)
	}

	err = repo.AppendDiagnosisEvent(ctx, DiagnosisEventData{
		SearchID:        "search-1",
		StudentID:       "stu-1",
		FrontierConcept: "equivalent-fractions",
		GradeEstimate:   4,
		Confidence:      0.82,
		QuestionsAsked:  5,
		MasteredCount:   3,
		GapCount:        1,
		Summary:         "placed at grade 4",
	})
	if err != nil {
		t.Fatalf("append diagnosis event: %v", err)
	}

	me, err := s.Client().MasteryEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query mastery event: %v", err)
	}
	de, err := s.Client().DiagnosisEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query diagnosis event: %v", err)
	}

	// One counter across both tables: sequences must differ and order
	// must match append order.
	if me.Sequence >= de.Sequence {
		t.Errorf("sequence order: mastery=%d diagnosis=%d", me.Sequence, de.Sequence)
	}
	if me.Trigger != "practice" || me.ToLevel != "proficient" {
		t.Errorf("mastery event = %+v", me)
	}
	if de.FrontierConcept != "equivalent-fractions" || de.QuestionsAsked != 5 {
		t.Errorf("diagnosis event = %+v", de)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq != int64(i+1) {
			t.Errorf("seq[%d] = %d, want %d", i, seq, i+1)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version:       1,
			PendingSearch: []byte(`{"id":"search-1","status":"in_progress"}`),
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if len(snap.Data.PendingSearch) == 0 {
		t.Error("pending search payload lost in round trip")
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 || snap.Data.Version != 3 {
		t.Errorf("latest = seq %d version %d, want 3/3", snap.Sequence, snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}
