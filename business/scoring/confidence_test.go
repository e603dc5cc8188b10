package scoring

import (
	"math"
	"testing"
)

func TestEstimateConfidenceBase(t *testing.T) {
	cfg := DefaultChurnConfig()

	got := estimateConfidence(0, cfg)
	if math.Abs(got-0.40) > 1e-9 {
		t.Fatalf("expected base confidence 0.40 for zero history, got %v", got)
	}
}

func TestEstimateConfidenceGrowsWithHistory(t *testing.T) {
	cfg := DefaultChurnConfig()

	prev := estimateConfidence(0, cfg)
	for count := int64(1); count <= 20; count++ {
		got := estimateConfidence(count, cfg)
		if got < prev {
			t.Fatalf("confidence decreased at count %d: %v < %v", count, got, prev)
		}
		prev = got
	}
}

func TestEstimateConfidenceSaturates(t *testing.T) {
	cfg := DefaultChurnConfig()

	if got := estimateConfidence(1000, cfg); math.Abs(got-0.85) > 1e-9 {
		t.Fatalf("expected saturation at 0.85, got %v", got)
	}
}

func TestEstimateConfidenceNegativeCount(t *testing.T) {
	cfg := DefaultChurnConfig()

	if got := estimateConfidence(-5, cfg); math.Abs(got-0.40) > 1e-9 {
		t.Fatalf("negative counts should behave like zero, got %v", got)
	}
}
