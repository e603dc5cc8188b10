package scoring

import (
	"encoding/json"

	"tenantpulse/domain"
)

// Read-path decoding is tolerant: a malformed stored document degrades to an
// empty list rather than failing the whole listing.

func decodeFactors(raw []byte) []domain.ContributingFactor {
	if len(raw) == 0 {
		return []domain.ContributingFactor{}
	}

	var factors []domain.ContributingFactor
	if err := json.Unmarshal(raw, &factors); err != nil || factors == nil {
		return []domain.ContributingFactor{}
	}
	return factors
}

func decodeActions(raw []byte) []domain.RecommendedAction {
	if len(raw) == 0 {
		return []domain.RecommendedAction{}
	}

	var actions []domain.RecommendedAction
	if err := json.Unmarshal(raw, &actions); err != nil || actions == nil {
		return []domain.RecommendedAction{}
	}
	return actions
}
