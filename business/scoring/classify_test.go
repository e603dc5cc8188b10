package scoring

import (
	"testing"

	"tenantpulse/domain"
)

func TestClassifyRiskLevelBoundaries(t *testing.T) {
	cfg := DefaultChurnConfig()

	cases := []struct {
		score int
		want  string
	}{
		{0, domain.RiskLow},
		{29, domain.RiskLow},
		{30, domain.RiskMedium},
		{59, domain.RiskMedium},
		{60, domain.RiskHigh},
		{84, domain.RiskHigh},
		{85, domain.RiskCritical},
		{100, domain.RiskCritical},
	}

	for _, tc := range cases {
		if got := classifyRiskLevel(tc.score, cfg); got != tc.want {
			t.Errorf("score %d: expected %s, got %s", tc.score, tc.want, got)
		}
	}
}

func TestClassifyQualificationBoundaries(t *testing.T) {
	cfg := DefaultLeadConfig()

	cases := []struct {
		score int
		want  string
	}{
		{0, domain.QualificationCold},
		{24, domain.QualificationCold},
		{25, domain.QualificationWarm},
		{30, domain.QualificationWarm},
		{49, domain.QualificationWarm},
		{50, domain.QualificationHot},
		{60, domain.QualificationHot},
		{74, domain.QualificationHot},
		{75, domain.QualificationSalesReady},
		{85, domain.QualificationSalesReady},
		{100, domain.QualificationSalesReady},
	}

	for _, tc := range cases {
		if got := classifyQualification(tc.score, cfg); got != tc.want {
			t.Errorf("score %d: expected %s, got %s", tc.score, tc.want, got)
		}
	}
}

func TestClassifyMissingThresholdsFallsBack(t *testing.T) {
	cfg := Config{Thresholds: map[string]int{}}

	if got := classifyRiskLevel(99, cfg); got != domain.RiskLow {
		t.Fatalf("expected fallback to low, got %s", got)
	}
}
