package mastery

import (
	"math"
	"testing"
)

// latencyPair builds 20 latencies split evenly around mean with the given
// spread, producing a population CoV of exactly spread/mean.
func latencyPair(mean, spread int) []int {
	out := make([]int, 0, FlatlineWindow)
	for i := 0; i < FlatlineWindow/2; i++ {
		out = append(out, mean-spread, mean+spread)
	}
	return out
}

func TestCheckFlatline_LowVariance(t *testing.T) {
	res := CheckFlatline(latencyPair(1000, 100)) // CoV = 0.10
	if !res.IsFlatline {
		t.Error("CoV 0.10 should be a flatline")
	}
	if math.Abs(res.CoefficientOfVariation-0.10) > 1e-9 {
		t.Errorf("CoV = %v, want 0.10", res.CoefficientOfVariation)
	}
}

func TestCheckFlatline_HighVariance(t *testing.T) {
	res := CheckFlatline(latencyPair(1000, 200)) // CoV = 0.20
	if res.IsFlatline {
		t.Error("CoV 0.20 should not be a flatline")
	}
	if math.Abs(res.CoefficientOfVariation-0.20) > 1e-9 {
		t.Errorf("CoV = %v, want 0.20", res.CoefficientOfVariation)
	}
}

func TestCheckFlatline_ThresholdIsExclusive(t *testing.T) {
	res := CheckFlatline(latencyPair(1000, 150)) // CoV exactly at threshold
	if res.IsFlatline {
		t.Error("CoV exactly 0.15 should not be a flatline")
	}
}

func TestCheckFlatline_InsufficientData(t *testing.T) {
	nineteen := latencyPair(1000, 0)[:FlatlineWindow-1]
	res := CheckFlatline(nineteen)
	if res.IsFlatline {
		t.Error("19 samples is insufficient data, not a plateau")
	}
	if res.Samples != 19 {
		t.Errorf("samples = %d, want 19", res.Samples)
	}
}

func TestCheckFlatline_UsesLastWindow(t *testing.T) {
	// Noisy history followed by 20 perfectly flat samples: only the last
	// window counts.
	latencies := append([]int{100, 9000, 50, 7000}, latencyPair(1000, 0)...)
	res := CheckFlatline(latencies)
	if !res.IsFlatline {
		t.Error("flat tail window should be a flatline despite noisy history")
	}
	if res.CoefficientOfVariation != 0 {
		t.Errorf("CoV = %v, want 0", res.CoefficientOfVariation)
	}
}

func TestFixedTargetMet(t *testing.T) {
	tests := []struct {
		streak   int
		accuracy float64
		want     bool
	}{
		{10, 0.9, true},
		{10, 0.95, true},
		{9, 0.95, false},
		{10, 0.89, false},
		{15, 1.0, true},
	}
	for _, tt := range tests {
		if got := FixedTargetMet(tt.streak, tt.accuracy); got != tt.want {
			t.Errorf("FixedTargetMet(%d, %v) = %v, want %v", tt.streak, tt.accuracy, got, tt.want)
		}
	}
}

func TestDrillComplete_EitherCondition(t *testing.T) {
	flat := CheckFlatline(latencyPair(1000, 100))
	noisy := CheckFlatline(latencyPair(1000, 300))

	if !DrillComplete(flat, 0, 0) {
		t.Error("flatline alone should complete the drill")
	}
	if !DrillComplete(noisy, 10, 0.95) {
		t.Error("fixed target alone should complete the drill")
	}
	if DrillComplete(noisy, 5, 0.95) {
		t.Error("neither condition met; drill should continue")
	}
}
