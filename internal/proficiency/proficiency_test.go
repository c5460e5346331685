package proficiency

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestInitial(t *testing.T) {
	tests := []struct {
		name      string
		score     float64
		relevance float64
		want      float64
	}{
		{"full score full relevance", 1.0, 1.0, 1.0},
		{"zero score", 0.0, 0.9, 0.0},
		{"zero relevance", 0.9, 0.0, 0.0},
		{"partial", 0.9, 0.8, 0.72},
		{"neutral default score", 0.5, 0.6, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Initial(tt.score, tt.relevance)
			if !almostEqual(got, tt.want) {
				t.Errorf("Initial(%v, %v) = %v, want %v", tt.score, tt.relevance, got, tt.want)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name      string
		old       float64
		score     float64
		relevance float64
		want      float64
	}{
		{"documented example", 0.4, 0.9, 0.8, 0.496},
		{"no change at steady state zero", 0, 0, 1.0, 0},
		{"perfect run converges upward", 0.5, 1.0, 1.0, 0.65},
		{"failed attempt decays", 0.8, 0.0, 1.0, 0.56},
		{"irrelevant skill weight", 0.8, 1.0, 0.0, 0.56},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Update(tt.old, tt.score, tt.relevance)
			if !almostEqual(got, tt.want) {
				t.Errorf("Update(%v, %v, %v) = %v, want %v", tt.old, tt.score, tt.relevance, got, tt.want)
			}
		})
	}
}

func TestUpdateHistoryDominates(t *testing.T) {
	// One outlier attempt moves the estimate by at most RecentWeight.
	old := 0.9
	got := Update(old, 0.0, 1.0)
	if got < old*HistoryWeight {
		t.Errorf("update dropped below history share: %v", got)
	}
	if math.Abs(old-got) > RecentWeight {
		t.Errorf("single attempt moved estimate by %v, more than %v", math.Abs(old-got), RecentWeight)
	}
}

func TestWeightsSumToOne(t *testing.T) {
	if !almostEqual(HistoryWeight+RecentWeight, 1.0) {
		t.Fatalf("weights sum to %v, want 1.0", HistoryWeight+RecentWeight)
	}
}
