package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/tutorcore/internal/concepts"
	"github.com/abhisek/tutorcore/internal/mastery"
	"github.com/abhisek/tutorcore/internal/placement"
	"github.com/abhisek/tutorcore/internal/spacedrep"
	"github.com/abhisek/tutorcore/internal/store"
)

// ErrUnknownConcept indicates a practice answer for a concept the catalog
// has never heard of. Recording it would corrupt mastery history, so it
// fails loudly.
var ErrUnknownConcept = errors.New("engine: unknown concept")

// Service is the engine facade: it wires the pure placement, mastery, and
// scheduling engines to the catalog and the store. The engines themselves
// stay pure; Service owns the load-compute-store cycle. Callers must
// serialize calls per (student, concept) key; different students or
// concepts need no coordination.
type Service struct {
	catalog      concepts.Catalog
	masteryRepo  store.MasteryRepo
	eventRepo    store.EventRepo
	clock        Clock
	defaultSpace *concepts.Space
}

// New creates a Service. eventRepo may be nil (no event logging); a nil
// clock means the system clock.
func New(catalog concepts.Catalog, masteryRepo store.MasteryRepo, eventRepo store.EventRepo, clock Clock) (*Service, error) {
	if clock == nil {
		clock = SystemClock{}
	}
	space, err := concepts.DefaultSpace(catalog)
	if err != nil {
		return nil, fmt.Errorf("build default concept space: %w", err)
	}
	return &Service{
		catalog:      catalog,
		masteryRepo:  masteryRepo,
		eventRepo:    eventRepo,
		clock:        clock,
		defaultSpace: space,
	}, nil
}

// PlaceStudent starts a diagnostic placement. With a goal ID the search
// runs over the goal's concepts from the middle of that space; otherwise it
// runs over the default curriculum from the first concept at the student's
// grade. Configuration problems (unknown goal, empty goal) fail fast with
// no partial state.
func (s *Service) PlaceStudent(studentID string, gradeLevel int, goalID string) (*placement.Search, error) {
	if studentID == "" {
		return nil, fmt.Errorf("engine: empty student id")
	}

	var (
		space *concepts.Space
		start int
		err   error
	)
	if goalID != "" {
		space, err = concepts.GoalSpace(s.catalog, goalID)
		if err != nil {
			return nil, err
		}
		start = space.Len() / 2
	} else {
		space = s.defaultSpace
		start = space.FirstIndexAtGrade(gradeLevel)
	}

	return placement.NewSearch(uuid.NewString(), studentID, space, start, gradeLevel, goalID), nil
}

// NextDiagnosticProbe returns the next concept to probe, or false when the
// search is finished (cap reached, bounds crossed, or space exhausted).
func (s *Service) NextDiagnosticProbe(search *placement.Search) (concepts.ConceptNode, bool) {
	idx, ok := search.SelectNext()
	if !ok {
		return concepts.ConceptNode{}, false
	}
	return search.Space().At(idx), true
}

// RecordDiagnosticAnswer records one probe response and returns the next
// search state. The prior state is left untouched.
func (s *Service) RecordDiagnosticAnswer(search *placement.Search, code string, correct bool) (*placement.Search, error) {
	return search.Answer(code, correct)
}

// FinalizePlacement synthesizes the placement result from a terminal
// search, seeds mastery records from the confirmed evidence, and appends a
// diagnosis event. In goal-aware mode the result carries a full skill map
// informed by previously persisted probabilities.
func (s *Service) FinalizePlacement(ctx context.Context, search *placement.Search) (*placement.Result, error) {
	var prior map[string]float64
	if search.GoalID != "" {
		var err error
		prior, err = s.priorProbabilities(ctx, search)
		if err != nil {
			return nil, err
		}
	}

	res, err := placement.Finalize(search, prior)
	if err != nil {
		return nil, err
	}

	if err := s.seedMasteryFromPlacement(ctx, search); err != nil {
		return nil, err
	}

	if s.eventRepo != nil {
		err := s.eventRepo.AppendDiagnosisEvent(ctx, store.DiagnosisEventData{
			SearchID:        res.SearchID,
			StudentID:       res.StudentID,
			GoalID:          res.GoalID,
			FrontierConcept: res.FrontierConcept.Code,
			GradeEstimate:   res.GradeEstimate,
			Confidence:      res.Confidence,
			QuestionsAsked:  res.QuestionsAsked,
			MasteredCount:   len(res.MasteredConcepts),
			GapCount:        len(res.GapConcepts),
			Summary:         res.Summary,
		})
		if err != nil {
			return nil, fmt.Errorf("append diagnosis event: %w", err)
		}
	}
	return res, nil
}

func (s *Service) priorProbabilities(ctx context.Context, search *placement.Search) (map[string]float64, error) {
	prior := make(map[string]float64)
	space := search.Space()
	for i := 0; i < space.Len(); i++ {
		code := space.At(i).Code
		rec, err := s.masteryRepo.Get(ctx, search.StudentID, code)
		if err != nil {
			return nil, fmt.Errorf("load prior for %q: %w", code, err)
		}
		if rec != nil {
			prior[code] = rec.Probability
		}
	}
	return prior, nil
}

// Placement seed probabilities. A correct probe is strong direct evidence;
// an incorrect one pins the concept near the bottom band.
const (
	seedKnownProbability   = 0.9
	seedUnknownProbability = 0.15
)

// seedMasteryFromPlacement creates mastery records for every directly
// probed concept that has no record yet. Existing records are never
// clobbered: placement seeds initial state, it does not rewrite history.
func (s *Service) seedMasteryFromPlacement(ctx context.Context, search *placement.Search) error {
	now := s.clock.Now()
	for _, asked := range search.Asked {
		existing, err := s.masteryRepo.Get(ctx, search.StudentID, asked.Code)
		if err != nil {
			return fmt.Errorf("load mastery for %q: %w", asked.Code, err)
		}
		if existing != nil {
			continue
		}

		rec := mastery.NewRecord(search.StudentID, asked.Code)
		if asked.Correct {
			rec.Probability = seedKnownProbability
		} else {
			rec.Probability = seedUnknownProbability
		}
		rec.Level = mastery.LevelFor(rec.Probability)
		rec.LastPracticedAt = now

		if err := s.masteryRepo.Put(ctx, recordToData(rec)); err != nil {
			return fmt.Errorf("seed mastery for %q: %w", asked.Code, err)
		}
		if s.eventRepo != nil {
			err := s.eventRepo.AppendMasteryEvent(ctx, store.MasteryEventData{
				StudentID:   rec.StudentID,
				ConceptID:   rec.ConceptID,
				FromLevel:   string(mastery.LevelFor(mastery.PriorKnown)),
				ToLevel:     string(rec.Level),
				Trigger:     "placement-seed",
				Probability: rec.Probability,
			})
			if err != nil {
				return fmt.Errorf("append mastery event: %w", err)
			}
		}
	}
	return nil
}

// RecordPracticeAnswer applies one practice response through the Bayesian
// tracker and persists the updated record. A level transition appends a
// mastery event.
func (s *Service) RecordPracticeAnswer(ctx context.Context, studentID, conceptCode string, correct bool) (mastery.Record, error) {
	if _, ok := s.defaultSpace.IndexOf(conceptCode); !ok {
		return mastery.Record{}, fmt.Errorf("%w: %q", ErrUnknownConcept, conceptCode)
	}

	rec, err := s.loadRecord(ctx, studentID, conceptCode)
	if err != nil {
		return mastery.Record{}, err
	}

	updated := mastery.Update(rec, correct, s.clock.Now())
	if err := s.masteryRepo.Put(ctx, recordToData(updated)); err != nil {
		return mastery.Record{}, fmt.Errorf("store mastery record: %w", err)
	}

	if s.eventRepo != nil && updated.Level != rec.Level {
		err := s.eventRepo.AppendMasteryEvent(ctx, store.MasteryEventData{
			StudentID:   studentID,
			ConceptID:   conceptCode,
			FromLevel:   string(rec.Level),
			ToLevel:     string(updated.Level),
			Trigger:     "practice",
			Probability: updated.Probability,
		})
		if err != nil {
			return mastery.Record{}, fmt.Errorf("append mastery event: %w", err)
		}
	}
	return updated, nil
}

// ScheduleReview applies one review outcome through the spaced repetition
// scheduler and persists the updated record. Used once active teaching has
// ended; the scheduler's interval supersedes the coarse practice seeds.
func (s *Service) ScheduleReview(ctx context.Context, studentID, conceptCode string, correct bool) (spacedrep.ScheduleUpdate, error) {
	if _, ok := s.defaultSpace.IndexOf(conceptCode); !ok {
		return spacedrep.ScheduleUpdate{}, fmt.Errorf("%w: %q", ErrUnknownConcept, conceptCode)
	}

	rec, err := s.loadRecord(ctx, studentID, conceptCode)
	if err != nil {
		return spacedrep.ScheduleUpdate{}, err
	}

	now := s.clock.Now()
	update := spacedrep.ScheduleNext(spacedrep.ReviewState{
		ReviewCount:    rec.ReviewCount,
		Interval:       rec.ReviewInterval,
		EasinessFactor: rec.EasinessFactor,
	}, correct, now)

	rec.ReviewCount = update.ReviewCount
	rec.ReviewInterval = update.Interval
	rec.EasinessFactor = update.EasinessFactor
	rec.NextReviewAt = update.NextReviewAt
	if err := s.masteryRepo.Put(ctx, recordToData(rec)); err != nil {
		return spacedrep.ScheduleUpdate{}, fmt.Errorf("store mastery record: %w", err)
	}
	return update, nil
}

// CheckFlatline runs the latency plateau detector over a latency window.
// Pure passthrough; nothing is persisted.
func (s *Service) CheckFlatline(latenciesMs []int) mastery.FlatlineResult {
	return mastery.CheckFlatline(latenciesMs)
}

// GetMastery returns the persisted record for a pair, or a fresh record at
// the prior if none exists.
func (s *Service) GetMastery(ctx context.Context, studentID, conceptCode string) (mastery.Record, error) {
	return s.loadRecord(ctx, studentID, conceptCode)
}

func (s *Service) loadRecord(ctx context.Context, studentID, conceptCode string) (mastery.Record, error) {
	data, err := s.masteryRepo.Get(ctx, studentID, conceptCode)
	if err != nil {
		return mastery.Record{}, fmt.Errorf("load mastery record: %w", err)
	}
	if data == nil {
		return mastery.NewRecord(studentID, conceptCode), nil
	}
	return dataToRecord(data), nil
}

func recordToData(r mastery.Record) *store.MasteryRecordData {
	data := &store.MasteryRecordData{
		StudentID:             r.StudentID,
		ConceptID:             r.ConceptID,
		Probability:           r.Probability,
		Level:                 string(r.Level),
		PracticeCount:         r.PracticeCount,
		CorrectCount:          r.CorrectCount,
		ReviewInterval:        r.ReviewInterval,
		ReviewCount:           r.ReviewCount,
		EasinessFactor:        r.EasinessFactor,
		ConsecutiveCorrect:    r.ConsecutiveCorrect,
		PersonalBestLatencyMs: r.PersonalBestLatencyMs,
	}
	if !r.LastPracticedAt.IsZero() {
		t := r.LastPracticedAt
		data.LastPracticedAt = &t
	}
	if !r.NextReviewAt.IsZero() {
		t := r.NextReviewAt
		data.NextReviewAt = &t
	}
	return data
}

func dataToRecord(d *store.MasteryRecordData) mastery.Record {
	r := mastery.Record{
		StudentID:             d.StudentID,
		ConceptID:             d.ConceptID,
		Probability:           d.Probability,
		Level:                 mastery.Level(d.Level),
		PracticeCount:         d.PracticeCount,
		CorrectCount:          d.CorrectCount,
		ReviewInterval:        d.ReviewInterval,
		ReviewCount:           d.ReviewCount,
		EasinessFactor:        d.EasinessFactor,
		ConsecutiveCorrect:    d.ConsecutiveCorrect,
		PersonalBestLatencyMs: d.PersonalBestLatencyMs,
	}
	if d.LastPracticedAt != nil {
		r.LastPracticedAt = *d.LastPracticedAt
	}
	if d.NextReviewAt != nil {
		r.NextReviewAt = *d.NextReviewAt
	}
	return r
}
