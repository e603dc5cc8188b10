package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pobyzaarif/goshortcute"

	"tenantpulse/pkg/logger"
)

type MailerConfig struct {
	MailerBaseURL           string
	MailerBasicAuthUsername string
	MailerBasicAuthPassword string
	MailerSenderEmail       string
	MailerSenderName        string
}

// MailerRepository delivers alert emails through the transactional mail
// provider's v3.1 send API.
type MailerRepository struct {
	mailerConfig MailerConfig
	client       *http.Client
}

func NewMailerRepository(cfg MailerConfig) *MailerRepository {
	return &MailerRepository{
		mailerConfig: cfg,
		client:       &http.Client{Timeout: 5 * time.Second},
	}
}

type payloadSendEmail struct {
	Messages []message `json:"Messages"`
}

type party struct {
	Email string `json:"Email"`
	Name  string `json:"Name"`
}

type message struct {
	From     party   `json:"From"`
	To       []party `json:"To"`
	Subject  string  `json:"Subject"`
	TextPart string  `json:"TextPart"`
	HTMLPart string  `json:"HTMLPart"`
}

func (r *MailerRepository) SendEmail(ctx context.Context, toEmail, toName, subject, body string) error {
	url := r.mailerConfig.MailerBaseURL + "/v3.1/send"

	payload := payloadSendEmail{
		Messages: []message{
			{
				From: party{
					Email: r.mailerConfig.MailerSenderEmail,
					Name:  r.mailerConfig.MailerSenderName,
				},
				To: []party{
					{Email: toEmail, Name: toName},
				},
				Subject:  subject,
				TextPart: body,
				HTMLPart: body,
			},
		},
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal json payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payloadBytes))
	if err != nil {
		return err
	}

	buildBasicAuth := goshortcute.StringtoBase64Encode(r.mailerConfig.MailerBasicAuthUsername + ":" + r.mailerConfig.MailerBasicAuthPassword)
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Authorization", "Basic "+buildBasicAuth)

	res, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 200 && res.StatusCode <= 299 {
		return nil
	}

	bodyBytes, _ := io.ReadAll(res.Body)
	logger.Warn("Mailer returned non-success response", "status", res.StatusCode, "body", string(bodyBytes))

	return fmt.Errorf("mailer service return negative response %v", res.StatusCode)
}
