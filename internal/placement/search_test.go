package placement

import (
	"errors"
	"fmt"
	"testing"

	"github.com/abhisek/tutorcore/internal/concepts"
)

// testSpace builds an n-concept space with ascending (grade, difficulty).
func testSpace(t *testing.T, n int) *concepts.Space {
	t.Helper()
	nodes := make([]concepts.ConceptNode, n)
	for i := 0; i < n; i++ {
		nodes[i] = concepts.ConceptNode{
			Code:       fmt.Sprintf("c%02d", i),
			GradeRank:  i/5 + 1,
			Difficulty: i%5 + 1,
			Title:      fmt.Sprintf("Concept %d", i),
			Domain:     concepts.DomainAddSub,
		}
	}
	space, err := concepts.NewSpace(nodes)
	if err != nil {
		t.Fatalf("build space: %v", err)
	}
	return space
}

func newTestSearch(t *testing.T, n, start int) *Search {
	t.Helper()
	return NewSearch("search-1", "student-1", testSpace(t, n), start, 3, "")
}

func TestSelectNext_StartsAtSeededIndex(t *testing.T) {
	s := newTestSearch(t, 20, 10)
	idx, ok := s.SelectNext()
	if !ok {
		t.Fatal("expected a probe")
	}
	if idx != 10 {
		t.Errorf("first probe = %d, want 10", idx)
	}
}

func TestSelectNext_BisectsAfterFirstProbe(t *testing.T) {
	s := newTestSearch(t, 20, 10)
	s, err := s.AnswerIndex(10, true)
	if err != nil {
		t.Fatal(err)
	}
	idx, ok := s.SelectNext()
	if !ok {
		t.Fatal("expected a probe")
	}
	if idx != 15 { // (11+19)/2
		t.Errorf("second probe = %d, want 15", idx)
	}
}

func TestSelectNext_ExpandingOffsetSkipsAskedMid(t *testing.T) {
	// A search resumed from a stale snapshot can carry asked responses the
	// bounds don't reflect yet; the midpoint may then land on an
	// already-probed index and selection must scan outward.
	s := newTestSearch(t, 10, 4)
	s.Asked = []AskedResponse{{Code: "c04", Correct: true}, {Code: "c05", Correct: true}}
	s.ConfirmedKnown = map[string]bool{"c04": true, "c05": true}

	// Bounds are still [0,9], so mid = 4 (asked). Offset 1 tries 5 (asked)
	// then 3 (unasked).
	idx, ok := s.SelectNext()
	if !ok || idx != 3 {
		t.Fatalf("probe = %d,%v, want 3,true", idx, ok)
	}
}

func TestSelectNext_ExhaustedSpaceIsNotAnError(t *testing.T) {
	s := newTestSearch(t, 3, 1)
	s.Asked = []AskedResponse{
		{Code: "c00", Correct: true},
		{Code: "c01", Correct: true},
		{Code: "c02", Correct: false},
	}
	// Every index inside [0,2] was already probed: the outward scan
	// exhausts both directions and reports no probe, not an error.
	if idx, ok := s.SelectNext(); ok {
		t.Errorf("exhausted space returned probe %d", idx)
	}
}

func TestSelectNext_CompleteSearchReturnsNoProbe(t *testing.T) {
	s := newTestSearch(t, 3, 1)
	var err error
	s, err = s.AnswerIndex(1, true) // Low=2
	if err != nil {
		t.Fatal(err)
	}
	s, err = s.AnswerIndex(2, false) // High=1, crossed -> complete
	if err != nil {
		t.Fatal(err)
	}
	if s.Status != StatusComplete {
		t.Fatalf("status = %s, want complete", s.Status)
	}
	if _, ok := s.SelectNext(); ok {
		t.Error("complete search returned a probe")
	}
}

func TestAnswer_ErrorCases(t *testing.T) {
	s := newTestSearch(t, 10, 5)

	if _, err := s.Answer("nope", true); !errors.Is(err, ErrUnknownConcept) {
		t.Errorf("unknown code: err = %v, want ErrUnknownConcept", err)
	}
	if _, err := s.AnswerIndex(-1, true); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("index -1: err = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := s.AnswerIndex(10, true); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("index 10: err = %v, want ErrIndexOutOfRange", err)
	}

	s2, err := s.AnswerIndex(5, true)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s2.AnswerIndex(5, false); !errors.Is(err, ErrDuplicateAnswer) {
		t.Errorf("duplicate: err = %v, want ErrDuplicateAnswer", err)
	}
}

func TestAnswer_DoesNotMutatePriorState(t *testing.T) {
	s := newTestSearch(t, 10, 5)
	s2, err := s.AnswerIndex(5, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Asked) != 0 || len(s.ConfirmedKnown) != 0 {
		t.Error("answering mutated the prior state")
	}
	if len(s2.Asked) != 1 || !s2.ConfirmedKnown["c05"] {
		t.Error("answer not reflected in the new state")
	}
}

// driveSearch answers every probe with the given oracle until completion,
// returning the terminal state and the probe count.
func driveSearch(t *testing.T, s *Search, oracle func(idx int) bool) (*Search, int) {
	t.Helper()
	asked := 0
	for {
		idx, ok := s.SelectNext()
		if !ok {
			break
		}
		next, err := s.AnswerIndex(idx, oracle(idx))
		if err != nil {
			t.Fatalf("answer index %d: %v", idx, err)
		}
		s = next
		asked++
		if s.Status == StatusComplete {
			break
		}
	}
	return s, asked
}

func TestSearch_TerminatesWithinCap(t *testing.T) {
	oracles := map[string]func(int) bool{
		"all-correct":   func(int) bool { return true },
		"all-incorrect": func(int) bool { return false },
		"frontier-at-7": func(i int) bool { return i < 7 },
		"alternating":   func(i int) bool { return i%2 == 0 },
	}
	for _, n := range []int{1, 2, 5, 20, 50} {
		cap := n
		if cap > MaxQuestions {
			cap = MaxQuestions
		}
		for name, oracle := range oracles {
			s := NewSearch("s", "stu", testSpace(t, n), n/2, 3, "")
			s, asked := driveSearch(t, s, oracle)
			if s.Status != StatusComplete {
				t.Errorf("n=%d %s: search did not complete", n, name)
			}
			if asked > cap {
				t.Errorf("n=%d %s: asked %d questions, cap %d", n, name, asked, cap)
			}
		}
	}
}

func TestSearch_NoDuplicateProbes(t *testing.T) {
	s := NewSearch("s", "stu", testSpace(t, 30), 15, 3, "")
	s, _ = driveSearch(t, s, func(i int) bool { return i%3 != 0 })

	seen := make(map[string]bool)
	for _, a := range s.Asked {
		if seen[a.Code] {
			t.Fatalf("concept %q probed twice", a.Code)
		}
		seen[a.Code] = true
	}
}

func TestSearch_ConfirmedSetsDisjoint(t *testing.T) {
	s := NewSearch("s", "stu", testSpace(t, 25), 12, 3, "")
	s, _ = driveSearch(t, s, func(i int) bool { return i < 13 })
	for code := range s.ConfirmedKnown {
		if s.ConfirmedUnknown[code] {
			t.Errorf("%q appears in both confirmed sets", code)
		}
	}
}

func TestSearch_BoundsInvariantAtTermination(t *testing.T) {
	for _, oracle := range []func(int) bool{
		func(int) bool { return true },
		func(int) bool { return false },
		func(i int) bool { return i < 9 },
	} {
		s := NewSearch("s", "stu", testSpace(t, 20), 10, 3, "")
		s, _ = driveSearch(t, s, oracle)
		if s.Low > s.High+1 {
			t.Errorf("terminal bounds Low=%d High=%d violate Low <= High+1", s.Low, s.High)
		}
	}
}

func TestSearch_EndToEndFixture(t *testing.T) {
	s := newTestSearch(t, 20, 10)

	steps := []struct {
		index   int
		correct bool
	}{
		{10, true},
		{15, true},
		{17, false},
		{16, false},
	}
	for _, step := range steps {
		idx, ok := s.SelectNext()
		if !ok {
			t.Fatalf("search stopped early before index %d", step.index)
		}
		if idx != step.index {
			t.Fatalf("probe = %d, want %d", idx, step.index)
		}
		var err error
		s, err = s.AnswerIndex(idx, step.correct)
		if err != nil {
			t.Fatal(err)
		}
	}

	if s.Low != 16 || s.High != 15 {
		t.Errorf("bounds = [%d,%d], want crossed [16,15]", s.Low, s.High)
	}
	if s.Status != StatusComplete {
		t.Errorf("status = %s, want complete", s.Status)
	}

	res, err := Finalize(s, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.FrontierIndex != 16 {
		t.Errorf("frontier index = %d, want 16", res.FrontierIndex)
	}
	// Both confirmed-unknown concepts sit at or above the frontier, so
	// neither is a gap.
	if len(res.GapConcepts) != 0 {
		t.Errorf("gaps = %v, want none", res.GapConcepts)
	}
	if got := []string{"c10", "c15"}; len(res.MasteredConcepts) != 2 ||
		res.MasteredConcepts[0] != got[0] || res.MasteredConcepts[1] != got[1] {
		t.Errorf("mastered = %v, want %v", res.MasteredConcepts, got)
	}
}
