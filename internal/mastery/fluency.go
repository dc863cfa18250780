package mastery

import "math"

const (
	// FlatlineWindow is the number of recent latencies required before a
	// plateau can be declared.
	FlatlineWindow = 20

	// FlatlineCoVThreshold is the coefficient-of-variation cutoff below
	// which response speed is considered flat.
	FlatlineCoVThreshold = 0.15

	// FixedTargetStreak is the consecutive-correct count for the
	// fixed-target completion rule.
	FixedTargetStreak = 10

	// FixedTargetAccuracy is the minimum recent accuracy for the
	// fixed-target completion rule.
	FixedTargetAccuracy = 0.9
)

// FlatlineResult reports the outcome of a latency plateau check.
type FlatlineResult struct {
	IsFlatline             bool
	CoefficientOfVariation float64
	Samples                int
}

// CheckFlatline computes the coefficient of variation (population std-dev
// over mean) of the last FlatlineWindow latencies. Fewer samples means
// insufficient data, not a plateau. Latencies are milliseconds.
func CheckFlatline(latenciesMs []int) FlatlineResult {
	if len(latenciesMs) > FlatlineWindow {
		latenciesMs = latenciesMs[len(latenciesMs)-FlatlineWindow:]
	}
	n := len(latenciesMs)
	if n < FlatlineWindow {
		return FlatlineResult{Samples: n}
	}

	sum := 0.0
	for _, l := range latenciesMs {
		sum += float64(l)
	}
	mean := sum / float64(n)
	if mean <= 0 {
		return FlatlineResult{Samples: n}
	}

	varSum := 0.0
	for _, l := range latenciesMs {
		d := float64(l) - mean
		varSum += d * d
	}
	stddev := math.Sqrt(varSum / float64(n))

	cov := stddev / mean
	return FlatlineResult{
		IsFlatline:             cov < FlatlineCoVThreshold,
		CoefficientOfVariation: cov,
		Samples:                n,
	}
}

// FixedTargetMet reports whether the fixed-target completion rule holds:
// a run of consecutive correct answers at or under the benchmark latency,
// with recent accuracy at or above the threshold.
func FixedTargetMet(consecutiveAtBenchmark int, recentAccuracy float64) bool {
	return consecutiveAtBenchmark >= FixedTargetStreak &&
		recentAccuracy >= FixedTargetAccuracy
}

// DrillComplete reports whether a fluency drill is finished. Either the
// fixed-target rule or a latency flatline independently completes it.
func DrillComplete(flat FlatlineResult, consecutiveAtBenchmark int, recentAccuracy float64) bool {
	return flat.IsFlatline || FixedTargetMet(consecutiveAtBenchmark, recentAccuracy)
}
