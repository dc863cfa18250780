package spacedrep

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestFixedIntervals_Values(t *testing.T) {
	expected := []int{1, 3, 7, 16}
	if len(FixedIntervals) != len(expected) {
		t.Fatalf("expected %d fixed intervals, got %d", len(expected), len(FixedIntervals))
	}
	for i, v := range expected {
		if FixedIntervals[i] != v {
			t.Errorf("FixedIntervals[%d] = %d, want %d", i, FixedIntervals[i], v)
		}
	}
}

func TestScheduleNext_CorrectProgression(t *testing.T) {
	st := ReviewState{EasinessFactor: DefaultEasiness}
	want := []int{1, 3, 7, 16, 40, 100}

	for i, expected := range want {
		up := ScheduleNext(st, true, testNow)
		if up.Interval != expected {
			t.Fatalf("review %d: interval = %d, want %d", i+1, up.Interval, expected)
		}
		if up.ReviewCount != i+1 {
			t.Errorf("review %d: count = %d", i+1, up.ReviewCount)
		}
		if up.EasinessFactor != DefaultEasiness {
			t.Errorf("review %d: correct review changed easiness to %v", i+1, up.EasinessFactor)
		}
		st = ReviewState{
			ReviewCount:    up.ReviewCount,
			Interval:       up.Interval,
			EasinessFactor: up.EasinessFactor,
		}
	}
}

func TestScheduleNext_IncorrectResetsInterval(t *testing.T) {
	tests := []ReviewState{
		{ReviewCount: 2, Interval: 7, EasinessFactor: 2.5},
		{ReviewCount: 6, Interval: 100, EasinessFactor: 2.5},
		{ReviewCount: 1, Interval: 1, EasinessFactor: 1.3},
	}
	for _, st := range tests {
		up := ScheduleNext(st, false, testNow)
		if up.Interval != 1 {
			t.Errorf("interval after miss = %d, want 1 (prior %d)", up.Interval, st.Interval)
		}
		if up.ReviewCount != st.ReviewCount+1 {
			t.Errorf("miss did not advance review count: %d", up.ReviewCount)
		}
	}
}

func TestScheduleNext_EasinessFloor(t *testing.T) {
	st := ReviewState{EasinessFactor: DefaultEasiness}
	for i := 0; i < 20; i++ {
		up := ScheduleNext(st, false, testNow)
		if up.EasinessFactor < MinEasiness {
			t.Fatalf("review %d: easiness %v below floor", i+1, up.EasinessFactor)
		}
		st = ReviewState{
			ReviewCount:    up.ReviewCount,
			Interval:       up.Interval,
			EasinessFactor: up.EasinessFactor,
		}
	}
	if st.EasinessFactor != MinEasiness {
		t.Errorf("repeated misses converged to %v, want floor %v", st.EasinessFactor, MinEasiness)
	}
}

func TestScheduleNext_EasinessClampedOnRead(t *testing.T) {
	// Out-of-band values (bad import, hand-edited row) clamp before use.
	up := ScheduleNext(ReviewState{ReviewCount: 4, Interval: 16, EasinessFactor: 9.0}, true, testNow)
	if up.EasinessFactor != MaxEasiness {
		t.Errorf("easiness = %v, want clamped %v", up.EasinessFactor, MaxEasiness)
	}
	if up.Interval != 40 { // 16 * 2.5
		t.Errorf("interval = %d, want 40", up.Interval)
	}

	up = ScheduleNext(ReviewState{ReviewCount: 4, Interval: 10, EasinessFactor: 0.4}, true, testNow)
	if up.EasinessFactor != MinEasiness {
		t.Errorf("easiness = %v, want clamped %v", up.EasinessFactor, MinEasiness)
	}
	if up.Interval != 13 { // round(10 * 1.3)
		t.Errorf("interval = %d, want 13", up.Interval)
	}
}

func TestScheduleNext_IntervalAlwaysPositive(t *testing.T) {
	states := []ReviewState{
		{},
		{ReviewCount: 10, Interval: 0, EasinessFactor: 1.3},
		{ReviewCount: 5, Interval: 1, EasinessFactor: 1.3},
	}
	for _, st := range states {
		for _, correct := range []bool{true, false} {
			up := ScheduleNext(st, correct, testNow)
			if up.Interval < 1 {
				t.Errorf("state %+v correct=%v: interval %d < 1", st, correct, up.Interval)
			}
		}
	}
}

func TestScheduleNext_NextReviewAt(t *testing.T) {
	up := ScheduleNext(ReviewState{ReviewCount: 1, Interval: 1, EasinessFactor: 2.5}, true, testNow)
	want := testNow.AddDate(0, 0, 3)
	if !up.NextReviewAt.Equal(want) {
		t.Errorf("next review = %v, want %v", up.NextReviewAt, want)
	}
}

func TestIsDueAndOverdue(t *testing.T) {
	due := testNow.AddDate(0, 0, -2)
	if !IsDue(due, testNow) {
		t.Error("past date should be due")
	}
	if IsDue(testNow.AddDate(0, 0, 1), testNow) {
		t.Error("future date should not be due")
	}
	if got := OverdueDays(due, testNow); got != 2 {
		t.Errorf("overdue days = %v, want 2", got)
	}
	if got := OverdueDays(testNow.AddDate(0, 0, 3), testNow); got != 0 {
		t.Errorf("overdue days for future date = %v, want 0", got)
	}
}
