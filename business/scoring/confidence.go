package scoring

// estimateConfidence maps the number of prior observations for a subject to a
// confidence value in [0,1]. More history means more confidence, saturating at
// cfg.ConfidenceMax. A subject with zero history still gets the base value.
// Confidence never feeds back into the score.
func estimateConfidence(sampleCount int64, cfg Config) float64 {
	if sampleCount < 0 {
		sampleCount = 0
	}

	confidence := cfg.ConfidenceBase + float64(sampleCount)*cfg.ConfidenceStep
	if confidence > cfg.ConfidenceMax {
		confidence = cfg.ConfidenceMax
	}
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	return confidence
}
