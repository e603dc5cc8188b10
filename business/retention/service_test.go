package retention

import (
	"context"
	"errors"
	"testing"

	"tenantpulse/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	toEmail string
	subject string
	body    string
	calls   int
	err     error
}

func (f *fakeSender) SendEmail(ctx context.Context, toEmail, toName, subject, body string) error {
	f.calls++
	f.toEmail = toEmail
	f.subject = subject
	f.body = body
	return f.err
}

func TestTriggerResponseSendsAlert(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(sender, "cs@example.com", "Customer Success")

	err := svc.TriggerResponse(context.Background(), 42, "Acme", 88, domain.RiskCritical)
	require.NoError(t, err)

	assert.Equal(t, 1, sender.calls)
	assert.Equal(t, "cs@example.com", sender.toEmail)
	assert.Contains(t, sender.subject, "critical")
	assert.Contains(t, sender.subject, "Acme")
	assert.Contains(t, sender.body, "88")
}

func TestTriggerResponseIgnoresLowerLevels(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(sender, "cs@example.com", "Customer Success")

	for _, level := range []string{domain.RiskLow, domain.RiskMedium} {
		err := svc.TriggerResponse(context.Background(), 42, "Acme", 40, level)
		require.NoError(t, err)
	}

	assert.Equal(t, 0, sender.calls)
}

func TestTriggerResponsePropagatesSendError(t *testing.T) {
	sender := &fakeSender{err: errors.New("mailer down")}
	svc := NewService(sender, "cs@example.com", "Customer Success")

	err := svc.TriggerResponse(context.Background(), 42, "Acme", 70, domain.RiskHigh)
	assert.Error(t, err)
}
