package spacedrep

import (
	"math"
	"time"
)

// FixedIntervals defines the interval in days for the first reviews after a
// concept is mastered. Beyond these the easiness factor takes over.
var FixedIntervals = []int{1, 3, 7, 16}

const (
	// MinEasiness is the floor of the easiness factor.
	MinEasiness = 1.3
	// MaxEasiness is the ceiling of the easiness factor.
	MaxEasiness = 2.5
	// DefaultEasiness is the easiness factor for a fresh concept.
	DefaultEasiness = 2.5
	// EasinessPenalty is subtracted from the easiness factor on a miss.
	EasinessPenalty = 0.2
)

// ReviewState is the scheduling input for one concept: how many reviews
// have happened, the last interval, and the current easiness factor.
type ReviewState struct {
	ReviewCount    int     `json:"review_count"`
	Interval       int     `json:"interval"` // days
	EasinessFactor float64 `json:"easiness_factor"`
}

// ScheduleUpdate is the scheduling output after one review.
type ScheduleUpdate struct {
	Interval       int       `json:"interval"` // days, always >= 1
	ReviewCount    int       `json:"review_count"`
	EasinessFactor float64   `json:"easiness_factor"`
	NextReviewAt   time.Time `json:"next_review_at"`
}

// ScheduleNext computes the next review from one outcome. Correct reviews
// walk the fixed steps and then grow by the easiness factor; a miss resets
// the interval to one day and dents the easiness factor. The review count
// advances either way. now is never mutated; the next due date is
// now plus the computed interval.
func ScheduleNext(st ReviewState, correct bool, now time.Time) ScheduleUpdate {
	ef := clampEasiness(st.EasinessFactor)
	count := st.ReviewCount + 1

	var interval int
	if correct {
		if count <= len(FixedIntervals) {
			interval = FixedIntervals[count-1]
		} else {
			interval = int(math.Round(float64(st.Interval) * ef))
		}
		if interval < 1 {
			interval = 1
		}
	} else {
		interval = 1
		ef = clampEasiness(ef - EasinessPenalty)
	}

	return ScheduleUpdate{
		Interval:       interval,
		ReviewCount:    count,
		EasinessFactor: ef,
		NextReviewAt:   now.AddDate(0, 0, interval),
	}
}

// clampEasiness bounds the easiness factor, treating the zero value of a
// fresh state as the default.
func clampEasiness(ef float64) float64 {
	if ef == 0 {
		return DefaultEasiness
	}
	if ef < MinEasiness {
		return MinEasiness
	}
	if ef > MaxEasiness {
		return MaxEasiness
	}
	return ef
}

// IsDue reports whether a review is due at or past the given time.
func IsDue(nextReviewAt, now time.Time) bool {
	return !now.Before(nextReviewAt)
}

// OverdueDays returns how many days past due a review is. Zero if not due.
func OverdueDays(nextReviewAt, now time.Time) float64 {
	if now.Before(nextReviewAt) {
		return 0
	}
	return now.Sub(nextReviewAt).Hours() / 24.0
}
