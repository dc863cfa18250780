package placement

import (
	"testing"
)

func goalSearch(t *testing.T, n, start int, oracle func(int) bool) *Search {
	t.Helper()
	s := NewSearch("search-1", "student-1", testSpace(t, n), start, 3, "fractions-foundations")
	s, _ = driveSearch(t, s, oracle)
	if s.Status != StatusComplete {
		t.Fatal("search did not complete")
	}
	return s
}

func TestEstimatedHoursFor_Monotonic(t *testing.T) {
	prev := 0.0
	for d := 1; d <= 10; d++ {
		h := EstimatedHoursFor(d)
		if h < prev {
			t.Errorf("hours(%d) = %v below hours(%d) = %v", d, h, d-1, prev)
		}
		prev = h
	}
	if EstimatedHoursFor(0) != EstimatedHoursFor(1) {
		t.Error("difficulty below range should clamp to 1")
	}
	if EstimatedHoursFor(11) != EstimatedHoursFor(10) {
		t.Error("difficulty above range should clamp to 10")
	}
}

func TestSkillMap_CoversEveryConceptOnce(t *testing.T) {
	s := goalSearch(t, 12, 6, func(i int) bool { return i < 7 })
	res, err := Finalize(s, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.SkillMap) != 12 {
		t.Fatalf("skill map has %d entries, want 12", len(res.SkillMap))
	}
	for i, e := range res.SkillMap {
		if e.Index != i {
			t.Errorf("entry %d carries index %d", i, e.Index)
		}
	}
}

func TestSkillMap_Tags(t *testing.T) {
	s := goalSearch(t, 12, 6, func(i int) bool { return i < 7 })
	res, err := Finalize(s, nil)
	if err != nil {
		t.Fatal(err)
	}

	for _, e := range res.SkillMap {
		code := e.Concept.Code
		switch {
		case s.ConfirmedKnown[code]:
			if e.Tag != TagMastered || !e.Tested {
				t.Errorf("%s: tag = %s tested = %v, want mastered/tested", code, e.Tag, e.Tested)
			}
			if e.EstimatedHours != 0 {
				t.Errorf("%s: mastered concept has hours %v", code, e.EstimatedHours)
			}
		case s.ConfirmedUnknown[code]:
			if e.Tag != TagUnmastered || !e.Tested {
				t.Errorf("%s: tag = %s tested = %v, want unmastered/tested", code, e.Tag, e.Tested)
			}
			if e.EstimatedHours <= 0 {
				t.Errorf("%s: unmastered concept has no hours", code)
			}
		case e.Index == res.FrontierIndex:
			if e.Tag != TagFrontier {
				t.Errorf("%s: tag = %s, want frontier", code, e.Tag)
			}
		case e.Index < res.FrontierIndex:
			if e.Tag != TagLikelyMastered {
				t.Errorf("%s below frontier: tag = %s", code, e.Tag)
			}
			if e.EstimatedHours != 0 {
				t.Errorf("%s: likely-mastered concept has hours %v", code, e.EstimatedHours)
			}
		default:
			if e.Tag != TagLikelyUnmastered {
				t.Errorf("%s above frontier: tag = %s", code, e.Tag)
			}
		}
	}
}

func TestSkillMap_PriorRecordsOverrideInference(t *testing.T) {
	s := goalSearch(t, 12, 6, func(i int) bool { return i < 7 })
	res, err := Finalize(s, nil)
	if err != nil {
		t.Fatal(err)
	}

	// Pick one untested concept below the frontier and one above.
	var below, above string
	for _, e := range res.SkillMap {
		if e.Tested || e.Index == res.FrontierIndex {
			continue
		}
		if e.Index < res.FrontierIndex && below == "" {
			below = e.Concept.Code
		}
		if e.Index > res.FrontierIndex && above == "" {
			above = e.Concept.Code
		}
	}
	if below == "" || above == "" {
		t.Skip("fixture produced no untested concepts on both sides")
	}

	prior := map[string]float64{
		below: 0.2,  // weak history contradicts "likely mastered"
		above: 0.95, // strong history contradicts "likely unmastered"
	}
	res, err = Finalize(s, prior)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range res.SkillMap {
		switch e.Concept.Code {
		case below:
			if e.Tag != TagLikelyUnmastered {
				t.Errorf("weak prior below frontier: tag = %s", e.Tag)
			}
		case above:
			if e.Tag != TagLikelyMastered {
				t.Errorf("strong prior above frontier: tag = %s", e.Tag)
			}
			if e.EstimatedHours != 0 {
				t.Errorf("likely-mastered by prior still carries hours %v", e.EstimatedHours)
			}
		}
	}
}

func TestSkillMap_EstimatedHoursSum(t *testing.T) {
	s := goalSearch(t, 12, 6, func(i int) bool { return i < 7 })
	res, err := Finalize(s, nil)
	if err != nil {
		t.Fatal(err)
	}
	sum := 0.0
	for _, e := range res.SkillMap {
		sum += e.EstimatedHours
	}
	if res.EstimatedHours != sum {
		t.Errorf("EstimatedHours = %v, want sum %v", res.EstimatedHours, sum)
	}
}
