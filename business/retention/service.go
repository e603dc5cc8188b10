package retention

import (
	"context"
	"fmt"

	"tenantpulse/domain"
	"tenantpulse/pkg/logger"
)

// EmailSender delivers a single alert email. The notification repository
// implements this against the transactional mailer.
type EmailSender interface {
	SendEmail(ctx context.Context, toEmail, toName, subject, body string) error
}

// Service notifies the retention team when a tenant's churn prediction comes
// back high or critical. It implements scoring.RetentionNotifier.
type Service struct {
	sender    EmailSender
	teamEmail string
	teamName  string
}

func NewService(sender EmailSender, teamEmail, teamName string) *Service {
	return &Service{
		sender:    sender,
		teamEmail: teamEmail,
		teamName:  teamName,
	}
}

// TriggerResponse sends the alert. Levels below high are ignored so callers
// do not have to pre-filter.
func (s *Service) TriggerResponse(ctx context.Context, tenantID uint, tenantName string, riskScore int, riskLevel string) error {
	if riskLevel != domain.RiskHigh && riskLevel != domain.RiskCritical {
		return nil
	}

	subject := fmt.Sprintf("[%s] Churn risk alert: %s", riskLevel, tenantName)
	body := fmt.Sprintf(
		"Tenant %q (id %d) scored %d on the latest churn prediction, risk level %s.\n"+
			"Review the recommended actions in the retention dashboard.",
		tenantName, tenantID, riskScore, riskLevel,
	)

	if err := s.sender.SendEmail(ctx, s.teamEmail, s.teamName, subject, body); err != nil {
		return fmt.Errorf("send retention alert for tenant %d: %w", tenantID, err)
	}

	logger.Info("Retention alert sent", "tenant_id", tenantID, "risk_level", riskLevel, "risk_score", riskScore)

	return nil
}
