package scoring

import "tenantpulse/domain"

// topFactorActionMin is the factor score above which a dedicated follow-up
// action is attached for the worst contributing factor.
const topFactorActionMin = 60.0

// recommendActions maps a risk level and its contributing factors to the
// playbook the retention team should run. Order matters: the list is rendered
// to humans top-down.
func recommendActions(riskLevel string, factors []domain.ContributingFactor) []domain.RecommendedAction {
	actions := make([]domain.RecommendedAction, 0, 4)

	switch riskLevel {
	case domain.RiskCritical:
		actions = append(actions,
			domain.RecommendedAction{
				Action:      "executive_outreach",
				Priority:    "urgent",
				Description: "Schedule an executive call with the tenant's decision maker",
			},
			domain.RecommendedAction{
				Action:      "retention_offer",
				Priority:    "urgent",
				Description: "Prepare a retention discount or plan adjustment",
			},
		)
	case domain.RiskHigh:
		actions = append(actions,
			domain.RecommendedAction{
				Action:      "csm_call",
				Priority:    "high",
				Description: "Have the customer success manager reach out this week",
			},
			domain.RecommendedAction{
				Action:      "usage_review",
				Priority:    "high",
				Description: "Review the tenant's product usage and share findings",
			},
		)
	case domain.RiskMedium:
		actions = append(actions,
			domain.RecommendedAction{
				Action:      "engagement_campaign",
				Priority:    "medium",
				Description: "Enroll the tenant in the re-engagement email sequence",
			},
			domain.RecommendedAction{
				Action:      "feature_highlight",
				Priority:    "medium",
				Description: "Send targeted tips for unused product features",
			},
		)
	default:
		actions = append(actions, domain.RecommendedAction{
			Action:      "monitor",
			Priority:    "low",
			Description: "No intervention needed, keep monitoring",
		})
	}

	// Critical tenants also get the high-risk playbook.
	if riskLevel == domain.RiskCritical {
		actions = append(actions,
			domain.RecommendedAction{
				Action:      "csm_call",
				Priority:    "high",
				Description: "Have the customer success manager reach out this week",
			},
			domain.RecommendedAction{
				Action:      "usage_review",
				Priority:    "high",
				Description: "Review the tenant's product usage and share findings",
			},
		)
	}

	if top, ok := topFactor(factors); ok && top.Score > topFactorActionMin {
		actions = append(actions, domain.RecommendedAction{
			Action:      "address_" + top.Factor,
			Priority:    "high",
			Description: "Targeted follow-up on the dominant risk driver: " + top.Factor,
		})
	}

	return actions
}

func topFactor(factors []domain.ContributingFactor) (domain.ContributingFactor, bool) {
	if len(factors) == 0 {
		return domain.ContributingFactor{}, false
	}

	top := factors[0]
	for _, f := range factors[1:] {
		if f.Score > top.Score {
			top = f
		}
	}
	return top, true
}
