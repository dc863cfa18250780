package mastery

import (
	"math"
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestUpdate_AlwaysInRangeNeverNaN(t *testing.T) {
	for _, correct := range []bool{true, false} {
		for p := 0.0; p <= 1.0001; p += 0.01 {
			r := NewRecord("s1", "add-within-20")
			r.Probability = math.Min(p, 1.0)
			got := Update(r, correct, testNow)
			if math.IsNaN(got.Probability) {
				t.Fatalf("p=%.2f correct=%v: NaN probability", p, correct)
			}
			if got.Probability < 0 || got.Probability > 1 {
				t.Fatalf("p=%.2f correct=%v: probability %v out of [0,1]", p, correct, got.Probability)
			}
		}
	}
}

func TestUpdate_Monotonicity(t *testing.T) {
	for p := 0.05; p < 1.0; p += 0.05 {
		r := NewRecord("s1", "add-within-20")
		r.Probability = p
		up := Update(r, true, testNow)
		down := Update(r, false, testNow)
		if up.Probability <= down.Probability {
			t.Errorf("p=%.2f: correct update %v not above incorrect %v",
				p, up.Probability, down.Probability)
		}
	}
}

func TestUpdate_ConvergenceFromPrior(t *testing.T) {
	r := NewRecord("s1", "add-within-20")
	for i := 0; i < 10; i++ {
		r = Update(r, true, testNow)
	}
	if r.Probability <= 0.9 {
		t.Errorf("ten correct from prior: probability = %v, want > 0.9", r.Probability)
	}
	if r.Level != LevelMastered {
		t.Errorf("ten correct from prior: level = %s, want %s", r.Level, LevelMastered)
	}
}

func TestUpdate_FloorResistance(t *testing.T) {
	r := NewRecord("s1", "add-within-20")
	r.Probability = 0.5
	for i := 0; i < 10; i++ {
		r = Update(r, false, testNow)
		if r.Probability < 0 {
			t.Fatalf("incorrect streak drove probability below 0: %v", r.Probability)
		}
	}
}

func TestUpdate_Counts(t *testing.T) {
	r := NewRecord("s1", "add-within-20")
	r = Update(r, true, testNow)
	r = Update(r, false, testNow)
	r = Update(r, true, testNow)

	if r.PracticeCount != 3 {
		t.Errorf("practice count = %d, want 3", r.PracticeCount)
	}
	if r.CorrectCount != 2 {
		t.Errorf("correct count = %d, want 2", r.CorrectCount)
	}
	if r.CorrectCount > r.PracticeCount {
		t.Error("correct count exceeds practice count")
	}
	if r.ConsecutiveCorrect != 1 {
		t.Errorf("consecutive correct = %d, want 1", r.ConsecutiveCorrect)
	}
}

func TestUpdate_BoundaryProbabilities(t *testing.T) {
	for _, p := range []float64{0, 1} {
		for _, correct := range []bool{true, false} {
			r := NewRecord("s1", "add-within-20")
			r.Probability = p
			got := Update(r, correct, testNow)
			if math.IsNaN(got.Probability) {
				t.Errorf("p=%v correct=%v: NaN", p, correct)
			}
		}
	}
}

func TestLevelFor_Bands(t *testing.T) {
	tests := []struct {
		p    float64
		want Level
	}{
		{0.0, LevelNovice},
		{0.29, LevelNovice},
		{0.3, LevelDeveloping},
		{0.49, LevelDeveloping},
		{0.5, LevelProficient},
		{0.69, LevelProficient},
		{0.7, LevelAdvanced},
		{0.89, LevelAdvanced},
		{0.9, LevelMastered},
		{1.0, LevelMastered},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.p); got != tt.want {
			t.Errorf("LevelFor(%v) = %s, want %s", tt.p, got, tt.want)
		}
	}
}

func TestUpdate_ReviewSeedHorizon(t *testing.T) {
	tests := []struct {
		p        float64
		wantDays int
	}{
		{0.2, 1},
		{0.6, 3},
		{0.8, 7},
		{0.95, 21},
	}
	for _, tt := range tests {
		if got := seedReviewDays(tt.p); got != tt.wantDays {
			t.Errorf("seedReviewDays(%v) = %d, want %d", tt.p, got, tt.wantDays)
		}
	}

	r := NewRecord("s1", "add-within-20")
	r = Update(r, true, testNow)
	if r.LastPracticedAt != testNow {
		t.Errorf("last practiced = %v, want %v", r.LastPracticedAt, testNow)
	}
	wantNext := testNow.AddDate(0, 0, seedReviewDays(r.Probability))
	if !r.NextReviewAt.Equal(wantNext) {
		t.Errorf("next review = %v, want %v", r.NextReviewAt, wantNext)
	}
}

func TestShouldAdvance(t *testing.T) {
	r := NewRecord("s1", "add-within-20")
	r.Probability = 0.89
	if r.ShouldAdvance() {
		t.Error("0.89 should not advance")
	}
	r.Probability = 0.9
	if !r.ShouldAdvance() {
		t.Error("0.9 should advance")
	}
}

func TestShouldReview(t *testing.T) {
	r := NewRecord("s1", "add-within-20")
	r.Probability = 0.6
	r.LastPracticedAt = testNow.AddDate(0, 0, -4)
	if !r.ShouldReview(testNow) {
		t.Error("stale weak concept should need review")
	}

	r.LastPracticedAt = testNow.AddDate(0, 0, -2)
	if r.ShouldReview(testNow) {
		t.Error("recently practiced concept should not need review")
	}

	r.LastPracticedAt = testNow.AddDate(0, 0, -10)
	r.Probability = 0.8
	if r.ShouldReview(testNow) {
		t.Error("strong concept should not need review")
	}

	fresh := NewRecord("s1", "add-within-20")
	if fresh.ShouldReview(testNow) {
		t.Error("never-practiced concept should not need review")
	}
}

func TestObserveLatency(t *testing.T) {
	r := NewRecord("s1", "add-within-20")
	r = ObserveLatency(r, 4200)
	if r.PersonalBestLatencyMs != 4200 {
		t.Errorf("best = %d, want 4200", r.PersonalBestLatencyMs)
	}
	r = ObserveLatency(r, 5000)
	if r.PersonalBestLatencyMs != 4200 {
		t.Errorf("slower latency replaced best: %d", r.PersonalBestLatencyMs)
	}
	r = ObserveLatency(r, 3100)
	if r.PersonalBestLatencyMs != 3100 {
		t.Errorf("best = %d, want 3100", r.PersonalBestLatencyMs)
	}
	r = ObserveLatency(r, 0)
	if r.PersonalBestLatencyMs != 3100 {
		t.Errorf("zero latency changed best: %d", r.PersonalBestLatencyMs)
	}
}
