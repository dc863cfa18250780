package placement

import (
	"strings"
	"testing"
)

func completedSearch(t *testing.T, n, start int, oracle func(int) bool) *Search {
	t.Helper()
	s := NewSearch("search-1", "student-1", testSpace(t, n), start, 3, "")
	s, _ = driveSearch(t, s, oracle)
	if s.Status != StatusComplete {
		t.Fatal("search did not complete")
	}
	return s
}

func TestFinalize_RequiresTerminalState(t *testing.T) {
	s := newTestSearch(t, 20, 10)
	if _, err := Finalize(s, nil); err == nil {
		t.Error("finalize accepted an in-progress search")
	}
}

func TestFinalize_NothingKnownPlacesAtBottom(t *testing.T) {
	s := completedSearch(t, 20, 10, func(int) bool { return false })
	res, err := Finalize(s, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.FrontierIndex != 0 {
		t.Errorf("frontier = %d, want 0", res.FrontierIndex)
	}
	if len(res.MasteredConcepts) != 0 {
		t.Errorf("mastered = %v, want none", res.MasteredConcepts)
	}
	if len(res.GapConcepts) != 0 {
		t.Errorf("gaps = %v, want none below frontier 0", res.GapConcepts)
	}
}

func TestFinalize_EverythingKnownClampsToTop(t *testing.T) {
	s := completedSearch(t, 20, 10, func(int) bool { return true })
	res, err := Finalize(s, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.FrontierIndex != 19 {
		t.Errorf("frontier = %d, want 19 (clamped)", res.FrontierIndex)
	}
}

func TestFinalize_ConfidenceBounds(t *testing.T) {
	oracles := []func(int) bool{
		func(int) bool { return true },
		func(int) bool { return false },
		func(i int) bool { return i < 7 },
		func(i int) bool { return i%2 == 0 },
	}
	for _, n := range []int{1, 5, 20, 40} {
		for _, oracle := range oracles {
			s := completedSearch(t, n, n/2, oracle)
			res, err := Finalize(s, nil)
			if err != nil {
				t.Fatal(err)
			}
			if res.Confidence < 0.5 || res.Confidence > 0.99 {
				t.Errorf("n=%d: confidence %v outside [0.5, 0.99]", n, res.Confidence)
			}
		}
	}
}

func TestFinalize_GapsStrictlyBelowFrontier(t *testing.T) {
	// Frontier at 9: everything below is known except index 6, which the
	// student misses when probed.
	s := completedSearch(t, 20, 10, func(i int) bool { return i < 9 && i != 6 })
	res, err := Finalize(s, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, code := range res.GapConcepts {
		idx, _ := s.Space().IndexOf(code)
		if idx >= res.FrontierIndex {
			t.Errorf("gap %q at index %d is not below frontier %d", code, idx, res.FrontierIndex)
		}
	}
}

func TestFinalize_SummaryAndRecommendation(t *testing.T) {
	s := completedSearch(t, 20, 10, func(i int) bool { return i < 9 })
	res, err := Finalize(s, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.RecommendedStart != res.FrontierConcept {
		t.Error("recommended start should be the frontier concept")
	}
	if res.GradeEstimate != res.FrontierConcept.GradeRank {
		t.Errorf("grade estimate = %d, want %d", res.GradeEstimate, res.FrontierConcept.GradeRank)
	}
	if !strings.Contains(res.Summary, res.FrontierConcept.Title) {
		t.Errorf("summary %q does not mention the frontier concept", res.Summary)
	}
	if res.SkillMap != nil {
		t.Error("default mode should not emit a skill map")
	}
}

func TestFinalize_Deterministic(t *testing.T) {
	s := completedSearch(t, 20, 10, func(i int) bool { return i < 12 })
	a, err := Finalize(s, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Finalize(s, nil)
	if err != nil {
		t.Fatal(err)
	}
	if a.FrontierIndex != b.FrontierIndex || a.Confidence != b.Confidence ||
		len(a.MasteredConcepts) != len(b.MasteredConcepts) {
		t.Error("finalize is not deterministic over the same terminal state")
	}
}
