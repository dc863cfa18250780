package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/tutorcore/internal/concepts"
	"github.com/abhisek/tutorcore/internal/mastery"
	"github.com/abhisek/tutorcore/internal/placement"
	"github.com/abhisek/tutorcore/internal/store"
)

// fakeMasteryRepo is an in-memory MasteryRepo keyed by (student, concept).
type fakeMasteryRepo struct {
	records map[string]*store.MasteryRecordData
}

func newFakeMasteryRepo() *fakeMasteryRepo {
	return &fakeMasteryRepo{records: make(map[string]*store.MasteryRecordData)}
}

func (f *fakeMasteryRepo) key(studentID, conceptID string) string {
	return studentID + "/" + conceptID
}

func (f *fakeMasteryRepo) Get(_ context.Context, studentID, conceptID string) (*store.MasteryRecordData, error) {
	rec, ok := f.records[f.key(studentID, conceptID)]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeMasteryRepo) Put(_ context.Context, rec *store.MasteryRecordData) error {
	cp := *rec
	f.records[f.key(rec.StudentID, rec.ConceptID)] = &cp
	return nil
}

func (f *fakeMasteryRepo) ListByStudent(_ context.Context, studentID string) ([]*store.MasteryRecordData, error) {
	var out []*store.MasteryRecordData
	for _, rec := range f.records {
		if rec.StudentID == studentID {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeEventRepo records appended events in order.
type fakeEventRepo struct {
	masteryEvents   []store.MasteryEventData
	diagnosisEvents []store.DiagnosisEventData
}

func (f *fakeEventRepo) AppendMasteryEvent(_ context.Context, data store.MasteryEventData) error {
	f.masteryEvents = append(f.masteryEvents, data)
	return nil
}

func (f *fakeEventRepo) AppendDiagnosisEvent(_ context.Context, data store.DiagnosisEventData) error {
	f.diagnosisEvents = append(f.diagnosisEvents, data)
	return nil
}

var engineNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *fakeMasteryRepo, *fakeEventRepo) {
	t.Helper()
	repo := newFakeMasteryRepo()
	events := &fakeEventRepo{}
	svc, err := New(concepts.NewSeedCatalog(), repo, events, FixedClock{T: engineNow})
	require.NoError(t, err)
	return svc, repo, events
}

// runDiagnostic answers every probe with the oracle until the search
// completes.
func runDiagnostic(t *testing.T, svc *Service, search *placement.Search, oracle func(concepts.ConceptNode) bool) *placement.Search {
	t.Helper()
	for {
		node, ok := svc.NextDiagnosticProbe(search)
		if !ok {
			break
		}
		next, err := svc.RecordDiagnosticAnswer(search, node.Code, oracle(node))
		require.NoError(t, err)
		search = next
		if search.Status == placement.StatusComplete {
			break
		}
	}
	require.Equal(t, placement.StatusComplete, search.Status)
	return search
}

func TestPlaceStudent_GradeInformedStart(t *testing.T) {
	svc, _, _ := newTestService(t)

	search, err := svc.PlaceStudent("stu-1", 4, "")
	require.NoError(t, err)

	node, ok := svc.NextDiagnosticProbe(search)
	require.True(t, ok)
	assert.Equal(t, 4, node.GradeRank, "first probe should sit at the student's grade")
}

func TestPlaceStudent_GoalMidpointStart(t *testing.T) {
	svc, _, _ := newTestService(t)

	search, err := svc.PlaceStudent("stu-1", 4, "fractions-foundations")
	require.NoError(t, err)
	require.Equal(t, "fractions-foundations", search.GoalID)

	idx, ok := search.SelectNext()
	require.True(t, ok)
	assert.Equal(t, search.Space().Len()/2, idx)
}

func TestPlaceStudent_ConfigurationErrors(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.PlaceStudent("", 3, "")
	assert.Error(t, err, "empty student id")

	var notFound *concepts.GoalNotFoundError
	_, err = svc.PlaceStudent("stu-1", 3, "no-such-goal")
	assert.True(t, errors.As(err, &notFound), "err = %v", err)
}

func TestFinalizePlacement_SeedsMasteryAndAppendsEvents(t *testing.T) {
	svc, repo, events := newTestService(t)

	search, err := svc.PlaceStudent("stu-1", 3, "")
	require.NoError(t, err)
	search = runDiagnostic(t, svc, search, func(n concepts.ConceptNode) bool {
		return n.GradeRank <= 3
	})

	res, err := svc.FinalizePlacement(context.Background(), search)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.GreaterOrEqual(t, res.Confidence, 0.5)
	assert.LessOrEqual(t, res.Confidence, 0.99)

	// Every probed concept now has a mastery record with the right seed.
	for _, asked := range search.Asked {
		rec, err := repo.Get(context.Background(), "stu-1", asked.Code)
		require.NoError(t, err)
		require.NotNil(t, rec, "no record seeded for %s", asked.Code)
		if asked.Correct {
			assert.Equal(t, 0.9, rec.Probability)
		} else {
			assert.Equal(t, 0.15, rec.Probability)
		}
	}

	require.Len(t, events.diagnosisEvents, 1)
	ev := events.diagnosisEvents[0]
	assert.Equal(t, res.SearchID, ev.SearchID)
	assert.Equal(t, res.QuestionsAsked, ev.QuestionsAsked)
	assert.Len(t, events.masteryEvents, len(search.Asked))
}

func TestFinalizePlacement_DoesNotClobberExistingRecords(t *testing.T) {
	svc, repo, _ := newTestService(t)

	// Existing history for a concept the diagnostic may probe.
	require.NoError(t, repo.Put(context.Background(), &store.MasteryRecordData{
		StudentID:      "stu-1",
		ConceptID:      "round-to-10-100",
		Probability:    0.42,
		Level:          string(mastery.LevelDeveloping),
		PracticeCount:  7,
		ReviewInterval: 1,
		EasinessFactor: 2.5,
	}))

	search, err := svc.PlaceStudent("stu-1", 3, "")
	require.NoError(t, err)
	search = runDiagnostic(t, svc, search, func(concepts.ConceptNode) bool { return true })

	_, err = svc.FinalizePlacement(context.Background(), search)
	require.NoError(t, err)

	rec, err := repo.Get(context.Background(), "stu-1", "round-to-10-100")
	require.NoError(t, err)
	assert.Equal(t, 0.42, rec.Probability, "placement must not rewrite history")
	assert.Equal(t, 7, rec.PracticeCount)
}

func TestFinalizePlacement_GoalModeEmitsSkillMap(t *testing.T) {
	svc, _, _ := newTestService(t)

	search, err := svc.PlaceStudent("stu-1", 4, "fractions-foundations")
	require.NoError(t, err)
	search = runDiagnostic(t, svc, search, func(n concepts.ConceptNode) bool {
		return n.GradeRank <= 4
	})

	res, err := svc.FinalizePlacement(context.Background(), search)
	require.NoError(t, err)
	require.NotNil(t, res.SkillMap)
	assert.Equal(t, search.Space().Len(), len(res.SkillMap))
}

func TestRecordPracticeAnswer_UpdatesAndPersists(t *testing.T) {
	svc, repo, events := newTestService(t)
	ctx := context.Background()

	rec, err := svc.RecordPracticeAnswer(ctx, "stu-1", "add-within-20", true)
	require.NoError(t, err)
	assert.Equal(t, 1, rec.PracticeCount)
	assert.Greater(t, rec.Probability, mastery.PriorKnown)
	assert.Equal(t, engineNow, rec.LastPracticedAt)

	stored, err := repo.Get(ctx, "stu-1", "add-within-20")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, rec.Probability, stored.Probability)

	// First correct answer crosses from developing to proficient-or-above,
	// so a mastery event must have been appended.
	require.NotEmpty(t, events.masteryEvents)
	assert.Equal(t, "practice", events.masteryEvents[0].Trigger)
}

func TestRecordPracticeAnswer_UnknownConcept(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.RecordPracticeAnswer(context.Background(), "stu-1", "astral-projection", true)
	assert.True(t, errors.Is(err, ErrUnknownConcept), "err = %v", err)
}

func TestRecordPracticeAnswer_ConvergesToMastered(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	var rec mastery.Record
	var err error
	for i := 0; i < 10; i++ {
		rec, err = svc.RecordPracticeAnswer(ctx, "stu-1", "mult-facts-10", true)
		require.NoError(t, err)
	}
	assert.Equal(t, mastery.LevelMastered, rec.Level)
	assert.True(t, rec.ShouldAdvance())
}

func TestScheduleReview_ProgressionPersists(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	want := []int{1, 3, 7, 16, 40, 100}
	for i, expected := range want {
		up, err := svc.ScheduleReview(ctx, "stu-1", "fractions-unit", true)
		require.NoError(t, err)
		assert.Equal(t, expected, up.Interval, "review %d", i+1)
	}

	stored, err := repo.Get(ctx, "stu-1", "fractions-unit")
	require.NoError(t, err)
	assert.Equal(t, 100, stored.ReviewInterval)
	assert.Equal(t, 6, stored.ReviewCount)
	require.NotNil(t, stored.NextReviewAt)
	assert.Equal(t, engineNow.AddDate(0, 0, 100), *stored.NextReviewAt)
}

func TestScheduleReview_MissResets(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := svc.ScheduleReview(ctx, "stu-1", "fractions-unit", true)
		require.NoError(t, err)
	}
	up, err := svc.ScheduleReview(ctx, "stu-1", "fractions-unit", false)
	require.NoError(t, err)
	assert.Equal(t, 1, up.Interval)
	assert.InDelta(t, 2.3, up.EasinessFactor, 1e-9)
}

func TestCheckFlatline_Passthrough(t *testing.T) {
	svc, _, _ := newTestService(t)

	flat := make([]int, 0, 20)
	for i := 0; i < 10; i++ {
		flat = append(flat, 900, 1100)
	}
	res := svc.CheckFlatline(flat)
	assert.True(t, res.IsFlatline)

	res = svc.CheckFlatline(flat[:19])
	assert.False(t, res.IsFlatline)
}
