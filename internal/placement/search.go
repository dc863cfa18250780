package placement

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/abhisek/tutorcore/internal/concepts"
)

// MaxQuestions caps how many probes a single diagnostic may ask.
const MaxQuestions = 20

// Sentinel errors for diagnostic answer recording.
// Use errors.Is to check: errors.Is(err, placement.ErrDuplicateAnswer)
var (
	ErrSearchComplete  = errors.New("placement: search already complete")
	ErrUnknownConcept  = errors.New("placement: concept not in search space")
	ErrDuplicateAnswer = errors.New("placement: concept already answered")
	ErrIndexOutOfRange = errors.New("placement: index out of range")
)

// Status is the lifecycle state of a diagnostic search.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusComplete   Status = "complete"
)

// AskedResponse is one observed (concept, correct) pair, in ask order.
type AskedResponse struct {
	Code    string `json:"code"`
	Correct bool   `json:"correct"`
}

// Search is the full state of one diagnostic placement session: a bounded
// binary search for the student's knowledge frontier over an ordered
// concept space. It is a small serializable value; answers produce a new
// Search rather than mutating the old one, so a pending diagnostic can be
// persisted between requests with no session affinity.
//
// This is frontier-finding, not classic sorted search: bounds move only
// from direct per-question evidence, never from aggregate re-derivation,
// which tolerates noisy "sortedness" in the concept ordering.
type Search struct {
	ID         string `json:"id"`
	StudentID  string `json:"student_id"`
	GoalID     string `json:"goal_id,omitempty"`
	GradeLevel int    `json:"grade_level"`

	// StartIndex is the grade- or goal-informed first probe. It applies
	// only while nothing has been asked; afterwards plain bisection of
	// [Low, High] resumes.
	StartIndex int `json:"start_index"`

	Low  int `json:"low"`
	High int `json:"high"`

	Asked            []AskedResponse `json:"asked"`
	ConfirmedKnown   map[string]bool `json:"confirmed_known"`
	ConfirmedUnknown map[string]bool `json:"confirmed_unknown"`

	Status Status `json:"status"`

	space *concepts.Space
}

// NewSearch starts a diagnostic over the given space. startIndex is clamped
// into the space.
func NewSearch(id, studentID string, space *concepts.Space, startIndex, gradeLevel int, goalID string) *Search {
	if startIndex < 0 {
		startIndex = 0
	}
	if startIndex > space.Len()-1 {
		startIndex = space.Len() - 1
	}
	return &Search{
		ID:               id,
		StudentID:        studentID,
		GoalID:           goalID,
		GradeLevel:       gradeLevel,
		StartIndex:       startIndex,
		Low:              0,
		High:             space.Len() - 1,
		ConfirmedKnown:   make(map[string]bool),
		ConfirmedUnknown: make(map[string]bool),
		Status:           StatusInProgress,
		space:            space,
	}
}

// Space returns the concept space the search runs over.
func (s *Search) Space() *concepts.Space {
	return s.space
}

// AttachSpace rebinds a space to a search restored from persistence. The
// space must be rebuilt from the same catalog ordering the search began
// with.
func (s *Search) AttachSpace(space *concepts.Space) {
	s.space = space
}

// QuestionCap returns the most probes this search may ask:
// min(MaxQuestions, space size).
func (s *Search) QuestionCap() int {
	if n := s.space.Len(); n < MaxQuestions {
		return n
	}
	return MaxQuestions
}

// SelectNext picks the next probe index. The second return is false when
// the search should stop: cap reached, bounds crossed, or no unasked index
// remains inside the bounds (an exhausted search space is a normal terminal
// condition, not an error).
func (s *Search) SelectNext() (int, bool) {
	if s.Status == StatusComplete || len(s.Asked) >= s.QuestionCap() || s.Low > s.High {
		return 0, false
	}

	mid := (s.Low + s.High) / 2
	if len(s.Asked) == 0 && s.StartIndex >= s.Low && s.StartIndex <= s.High {
		mid = s.StartIndex
	}

	if !s.alreadyAsked(mid) {
		return mid, true
	}

	// The midpoint was already probed (re-entrant search after a resume or
	// an out-of-band answer). Scan outward with an expanding offset,
	// alternating above and below, until an unasked index inside the bounds
	// turns up. The offset cannot exceed High-Low, so the loop terminates.
	for offset := 1; ; offset++ {
		up := mid + offset
		down := mid - offset
		upIn := up <= s.High
		downIn := down >= s.Low
		if !upIn && !downIn {
			return 0, false
		}
		if upIn && !s.alreadyAsked(up) {
			return up, true
		}
		if downIn && !s.alreadyAsked(down) {
			return down, true
		}
	}
}

// Answer records the response for a concept code and returns the next
// search state. Unknown codes and duplicate answers fail loudly; a silent
// default here would corrupt the placement evidence.
func (s *Search) Answer(code string, correct bool) (*Search, error) {
	index, ok := s.space.IndexOf(code)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownConcept, code)
	}
	return s.AnswerIndex(index, correct)
}

// AnswerIndex records the response for a concept index and returns the next
// search state.
func (s *Search) AnswerIndex(index int, correct bool) (*Search, error) {
	if s.Status == StatusComplete {
		return nil, ErrSearchComplete
	}
	if index < 0 || index >= s.space.Len() {
		return nil, fmt.Errorf("%w: %d (space size %d)", ErrIndexOutOfRange, index, s.space.Len())
	}
	if s.alreadyAsked(index) {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateAnswer, s.space.At(index).Code)
	}

	next := s.clone()
	code := s.space.At(index).Code
	next.Asked = append(next.Asked, AskedResponse{Code: code, Correct: correct})

	if correct {
		next.ConfirmedKnown[code] = true
		if index+1 > next.Low {
			next.Low = index + 1
		}
	} else {
		next.ConfirmedUnknown[code] = true
		if index-1 < next.High {
			next.High = index - 1
		}
	}

	if len(next.Asked) >= next.QuestionCap() || next.Low > next.High {
		next.Status = StatusComplete
	}
	return next, nil
}

func (s *Search) alreadyAsked(index int) bool {
	code := s.space.At(index).Code
	for _, a := range s.Asked {
		if a.Code == code {
			return true
		}
	}
	return false
}

func (s *Search) clone() *Search {
	next := *s
	next.Asked = slices.Clone(s.Asked)
	next.ConfirmedKnown = maps.Clone(s.ConfirmedKnown)
	next.ConfirmedUnknown = maps.Clone(s.ConfirmedUnknown)
	return &next
}
