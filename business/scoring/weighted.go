package scoring

import "math"

// aggregateScore combines normalized features into a single bounded score:
// sum(feature_i * weight_i) / sum(weight_i) over the features that carry a
// positive weight. Dividing by the weight sum normalizes weight maps that do
// not sum to 1.0. The result is clamped to [0,100] unconditionally; the math
// only guarantees the range when weights are non-negative and features are
// pre-clamped, and the clamp holds even when a caller violates that.
func aggregateScore(features map[string]float64, weights map[string]float64) int {
	totalWeight := 0.0
	weightedSum := 0.0

	for name, value := range features {
		weight, ok := weights[name]
		if !ok || weight <= 0 {
			continue
		}
		totalWeight += weight
		weightedSum += clamp(value, 0, 100) * weight
	}

	if totalWeight <= 0 {
		return 0
	}

	score := int(math.Round(weightedSum / totalWeight))

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return score
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
