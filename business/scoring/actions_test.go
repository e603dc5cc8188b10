package scoring

import (
	"testing"

	"tenantpulse/domain"
)

func actionNames(actions []domain.RecommendedAction) []string {
	names := make([]string, 0, len(actions))
	for _, a := range actions {
		names = append(names, a.Action)
	}
	return names
}

func hasAction(actions []domain.RecommendedAction, name string) bool {
	for _, a := range actions {
		if a.Action == name {
			return true
		}
	}
	return false
}

func TestRecommendActionsCritical(t *testing.T) {
	actions := recommendActions(domain.RiskCritical, nil)

	for _, want := range []string{"executive_outreach", "retention_offer", "csm_call", "usage_review"} {
		if !hasAction(actions, want) {
			t.Errorf("critical playbook missing %s, got %v", want, actionNames(actions))
		}
	}
}

func TestRecommendActionsHigh(t *testing.T) {
	actions := recommendActions(domain.RiskHigh, nil)

	if !hasAction(actions, "csm_call") || !hasAction(actions, "usage_review") {
		t.Fatalf("high playbook incomplete: %v", actionNames(actions))
	}
	if hasAction(actions, "executive_outreach") {
		t.Fatalf("high level should not include executive outreach")
	}
}

func TestRecommendActionsLow(t *testing.T) {
	actions := recommendActions(domain.RiskLow, nil)

	if len(actions) != 1 || actions[0].Action != "monitor" {
		t.Fatalf("low level should only monitor, got %v", actionNames(actions))
	}
}

func TestRecommendActionsTopFactorFollowUp(t *testing.T) {
	factors := []domain.ContributingFactor{
		{Factor: FeatureInactivity, Score: 95},
		{Factor: FeaturePaymentFailures, Score: 10},
	}

	actions := recommendActions(domain.RiskHigh, factors)
	if !hasAction(actions, "address_inactivity") {
		t.Fatalf("expected targeted follow-up for dominant factor, got %v", actionNames(actions))
	}
}

func TestRecommendActionsNoFollowUpForModestFactors(t *testing.T) {
	factors := []domain.ContributingFactor{
		{Factor: FeatureInactivity, Score: 55},
	}

	actions := recommendActions(domain.RiskMedium, factors)
	if hasAction(actions, "address_inactivity") {
		t.Fatalf("factor at 55 should not trigger a follow-up")
	}
}
