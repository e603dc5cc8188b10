package scoring

import "tenantpulse/domain"

// severity orders, most severe first; classification walks them and takes the
// first threshold the score reaches, so a score exactly at a boundary always
// lands in the higher-severity bucket.
var (
	churnSeverityOrder = []string{domain.RiskCritical, domain.RiskHigh, domain.RiskMedium}
	leadTierOrder      = []string{domain.QualificationSalesReady, domain.QualificationHot, domain.QualificationWarm}
)

func classifyScore(score int, thresholds map[string]int, order []string, fallback string) string {
	for _, label := range order {
		min, ok := thresholds[label]
		if ok && score >= min {
			return label
		}
	}
	return fallback
}

func classifyRiskLevel(score int, cfg Config) string {
	return classifyScore(score, cfg.Thresholds, churnSeverityOrder, domain.RiskLow)
}

func classifyQualification(score int, cfg Config) string {
	return classifyScore(score, cfg.Thresholds, leadTierOrder, domain.QualificationCold)
}
