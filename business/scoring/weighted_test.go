package scoring

import "testing"

func TestAggregateScoreWeightedAverage(t *testing.T) {
	features := map[string]float64{
		"a": 100,
		"b": 0,
	}
	weights := map[string]float64{
		"a": 0.5,
		"b": 0.5,
	}

	got := aggregateScore(features, weights)
	if got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
}

func TestAggregateScoreNormalizesWeights(t *testing.T) {
	features := map[string]float64{
		"a": 80,
		"b": 40,
	}

	// same ratios, different absolute scale
	small := map[string]float64{"a": 0.3, "b": 0.1}
	big := map[string]float64{"a": 3, "b": 1}

	if aggregateScore(features, small) != aggregateScore(features, big) {
		t.Fatalf("weight scale should not change the score")
	}
}

func TestAggregateScoreClampsFeatureValues(t *testing.T) {
	features := map[string]float64{
		"a": 500,
		"b": -200,
	}
	weights := map[string]float64{
		"a": 0.5,
		"b": 0.5,
	}

	got := aggregateScore(features, weights)
	if got != 50 {
		t.Fatalf("expected out-of-range features clamped to 100/0, got %d", got)
	}
}

func TestAggregateScoreBounds(t *testing.T) {
	weights := map[string]float64{"a": 1}

	for _, v := range []float64{-1e9, -1, 0, 50, 100, 1e9} {
		got := aggregateScore(map[string]float64{"a": v}, weights)
		if got < 0 || got > 100 {
			t.Fatalf("score %d out of [0,100] for feature value %v", got, v)
		}
	}
}

func TestAggregateScoreIgnoresUnweightedFeatures(t *testing.T) {
	features := map[string]float64{
		"a":       100,
		"unknown": 0,
	}
	weights := map[string]float64{"a": 1}

	if got := aggregateScore(features, weights); got != 100 {
		t.Fatalf("unweighted feature should not dilute the score, got %d", got)
	}
}

func TestAggregateScoreNoWeights(t *testing.T) {
	if got := aggregateScore(map[string]float64{"a": 100}, nil); got != 0 {
		t.Fatalf("expected 0 with no weights, got %d", got)
	}
}

func TestAggregateScoreMonotoneInSingleFeature(t *testing.T) {
	cfg := DefaultChurnConfig()

	prev := -1
	for inactivity := 0.0; inactivity <= 100.0; inactivity += 5.0 {
		features := map[string]float64{
			FeatureInactivity:      inactivity,
			FeaturePaymentFailures: 33,
			FeatureSupportTickets:  20,
			FeatureAdoption:        40,
			FeatureContractAge:     30,
		}
		got := aggregateScore(features, cfg.Weights)
		if got < prev {
			t.Fatalf("score decreased when inactivity rose to %v: %d < %d", inactivity, got, prev)
		}
		prev = got
	}
}

func TestAggregateScoreDeterministic(t *testing.T) {
	cfg := DefaultChurnConfig()
	features := map[string]float64{
		FeatureInactivity:      73,
		FeaturePaymentFailures: 33,
		FeatureSupportTickets:  20,
		FeatureAdoption:        60,
		FeatureContractAge:     30,
	}

	first := aggregateScore(features, cfg.Weights)
	for i := 0; i < 50; i++ {
		if got := aggregateScore(features, cfg.Weights); got != first {
			t.Fatalf("run %d returned %d, first run returned %d", i, got, first)
		}
	}
}
