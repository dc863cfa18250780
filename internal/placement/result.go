package placement

import (
	"fmt"
	"sort"

	"github.com/abhisek/tutorcore/internal/concepts"
)

// Result is the synthesized outcome of a terminal diagnostic search.
// All fields derive purely from the search state and (in goal-aware mode)
// previously persisted probabilities; there is no hidden randomness.
type Result struct {
	SearchID  string
	StudentID string
	GoalID    string

	FrontierConcept concepts.ConceptNode
	FrontierIndex   int
	GradeEstimate   int
	Confidence      float64

	MasteredConcepts []string
	GapConcepts      []string

	RecommendedStart concepts.ConceptNode
	QuestionsAsked   int
	Summary          string

	// SkillMap is populated only in goal-aware mode (GoalID non-empty).
	SkillMap []SkillMapEntry
	// EstimatedHours is the summed hours-to-learn across the skill map.
	EstimatedHours float64
}

// Finalize converts a terminal search into a Result. prior maps concept
// codes to previously persisted knowledge probabilities and is only
// consulted for the goal-aware skill map; nil is fine.
func Finalize(s *Search, prior map[string]float64) (*Result, error) {
	if s.Status != StatusComplete {
		return nil, fmt.Errorf("placement: finalize called on %s search %s", s.Status, s.ID)
	}
	space := s.space
	n := space.Len()

	// Frontier: one past the highest confirmed-known concept, clamped to
	// the top of the space. Nothing confirmed known places at the bottom.
	frontierIndex := 0
	if highest, ok := s.highestKnownIndex(); ok {
		frontierIndex = highest + 1
		if frontierIndex > n-1 {
			frontierIndex = n - 1
		}
	}
	frontier := space.At(frontierIndex)

	confidence := confidenceFor(s, n)

	mastered := codesByIndex(space, s.ConfirmedKnown, func(int) bool { return true })
	gaps := codesByIndex(space, s.ConfirmedUnknown, func(i int) bool { return i < frontierIndex })

	res := &Result{
		SearchID:         s.ID,
		StudentID:        s.StudentID,
		GoalID:           s.GoalID,
		FrontierConcept:  frontier,
		FrontierIndex:    frontierIndex,
		GradeEstimate:    frontier.GradeRank,
		Confidence:       confidence,
		MasteredConcepts: mastered,
		GapConcepts:      gaps,
		RecommendedStart: frontier,
		QuestionsAsked:   len(s.Asked),
	}
	res.Summary = fmt.Sprintf(
		"Placed at %q (grade %d) after %d questions: %d confirmed known, %d gaps, confidence %.2f",
		frontier.Title, frontier.GradeRank, res.QuestionsAsked,
		len(mastered), len(gaps), confidence,
	)

	if s.GoalID != "" {
		res.SkillMap = buildSkillMap(s, frontierIndex, prior)
		for _, e := range res.SkillMap {
			res.EstimatedHours += e.EstimatedHours
		}
	}
	return res, nil
}

// confidenceFor blends how far the bounds narrowed with how many questions
// were spent. Floors at 0.5, caps at 0.99.
func confidenceFor(s *Search, n int) float64 {
	width := float64(s.High - s.Low + 1)
	if width < 0 {
		width = 0
	}
	narrowing := 1 - width/float64(n)
	effort := float64(len(s.Asked)) / float64(s.QuestionCap())

	c := 0.5 + 0.3*narrowing + 0.2*effort
	if c > 0.99 {
		c = 0.99
	}
	return c
}

func (s *Search) highestKnownIndex() (int, bool) {
	highest, found := -1, false
	for code := range s.ConfirmedKnown {
		if i, ok := s.space.IndexOf(code); ok && i > highest {
			highest, found = i, true
		}
	}
	return highest, found
}

// codesByIndex filters a confirmed set by index and returns the codes in
// space order.
func codesByIndex(space *concepts.Space, set map[string]bool, keep func(int) bool) []string {
	var indices []int
	for code := range set {
		if i, ok := space.IndexOf(code); ok && keep(i) {
			indices = append(indices, i)
		}
	}
	sort.Ints(indices)
	codes := make([]string, len(indices))
	for i, idx := range indices {
		codes[i] = space.At(idx).Code
	}
	return codes
}
