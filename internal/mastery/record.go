package mastery

import "time"

// Bayesian knowledge tracing parameters. Fixed for all students and
// concepts; the model has deliberately few knobs.
const (
	// PLearn is the probability of learning the concept on any attempt.
	PLearn = 0.3
	// PGuess is the probability of answering correctly without knowing.
	PGuess = 0.2
	// PSlip is the probability of answering incorrectly despite knowing.
	PSlip = 0.1
	// PriorKnown is the starting knowledge probability for a fresh record.
	PriorKnown = 0.3
)

// Level is the discrete mastery band derived from the knowledge probability.
type Level string

const (
	LevelNovice     Level = "novice"     // p < 0.3
	LevelDeveloping Level = "developing" // p < 0.5
	LevelProficient Level = "proficient" // p < 0.7
	LevelAdvanced   Level = "advanced"   // p < 0.9
	LevelMastered   Level = "mastered"   // p >= 0.9
)

// LevelFor returns the level band for a knowledge probability.
func LevelFor(p float64) Level {
	switch {
	case p < 0.3:
		return LevelNovice
	case p < 0.5:
		return LevelDeveloping
	case p < 0.7:
		return LevelProficient
	case p < 0.9:
		return LevelAdvanced
	default:
		return LevelMastered
	}
}

// Record holds all mastery state for one (student, concept) pair. Created on
// the first observed response, updated on every subsequent one, never
// deleted. Updates are value-in, value-out: the caller owns the
// load-compute-store cycle and must serialize it per key.
type Record struct {
	StudentID             string
	ConceptID             string
	Probability           float64
	Level                 Level
	PracticeCount         int
	CorrectCount          int
	LastPracticedAt       time.Time
	NextReviewAt          time.Time
	ReviewInterval        int // days, >= 1
	ReviewCount           int
	EasinessFactor        float64
	ConsecutiveCorrect    int
	PersonalBestLatencyMs int // 0 = no latency observed yet
}

// NewRecord returns a fresh record at the prior knowledge probability.
func NewRecord(studentID, conceptID string) Record {
	return Record{
		StudentID:      studentID,
		ConceptID:      conceptID,
		Probability:    PriorKnown,
		Level:          LevelFor(PriorKnown),
		ReviewInterval: 1,
		EasinessFactor: 2.5,
	}
}

// Update applies one observed response and returns the updated record.
// Two steps: a Bayesian posterior given the observation, then a learning
// step toward 1 by PLearn. A zero posterior denominator leaves the
// probability unchanged rather than producing NaN.
func Update(r Record, correct bool, now time.Time) Record {
	p := clamp01(r.Probability)

	var posterior float64
	if correct {
		denom := p*(1-PSlip) + (1-p)*PGuess
		if denom == 0 {
			posterior = p
		} else {
			posterior = p * (1 - PSlip) / denom
		}
	} else {
		denom := p*PSlip + (1-p)*(1-PGuess)
		if denom == 0 {
			posterior = p
		} else {
			posterior = p * PSlip / denom
		}
	}

	newP := clamp01(posterior + (1-posterior)*PLearn)

	r.Probability = newP
	r.Level = LevelFor(newP)
	r.PracticeCount++
	if correct {
		r.CorrectCount++
		r.ConsecutiveCorrect++
	} else {
		r.ConsecutiveCorrect = 0
	}
	r.LastPracticedAt = now
	r.NextReviewAt = now.AddDate(0, 0, seedReviewDays(newP))
	return r
}

// seedReviewDays is the coarse review horizon used while a concept is still
// being actively taught. Once it is mastered the spaced repetition
// scheduler takes over.
func seedReviewDays(p float64) int {
	switch {
	case p < 0.5:
		return 1
	case p < 0.7:
		return 3
	case p < 0.9:
		return 7
	default:
		return 21
	}
}

// ShouldAdvance reports whether the student is ready to move past this
// concept.
func (r Record) ShouldAdvance() bool {
	return r.Probability >= 0.9
}

// ShouldReview reports whether the concept has gone stale: more than three
// days since practice while the probability is still below proficient-plus.
func (r Record) ShouldReview(now time.Time) bool {
	if r.LastPracticedAt.IsZero() {
		return false
	}
	days := now.Sub(r.LastPracticedAt).Hours() / 24.0
	return days > 3 && r.Probability < 0.7
}

// ObserveLatency records a response latency, keeping the personal best.
// Zero and negative latencies are ignored.
func ObserveLatency(r Record, latencyMs int) Record {
	if latencyMs <= 0 {
		return r
	}
	if r.PersonalBestLatencyMs == 0 || latencyMs < r.PersonalBestLatencyMs {
		r.PersonalBestLatencyMs = latencyMs
	}
	return r
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
