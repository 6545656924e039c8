package sendgrid

import (
	"context"
	"fmt"
	"strings"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/config"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendPath = "/v3/mail/send"

// EmailService delivers transactional mail such as abandoned-cart reminders.
type EmailService interface {
	Send(ctx context.Context, req *models.EmailNotificationRequest) error
}

// StatusError is returned when the API answers with a 4xx or 5xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("sendgrid rejected message: status %d: %s", e.StatusCode, e.Body)
}

type emailService struct {
	client *sendgrid.Client
	from   *mail.Email
}

// NewEmailService builds a v3 mail client. cfg.Host overrides the API origin.
func NewEmailService(cfg config.SendGrid) EmailService {
	client := sendgrid.NewSendClient(cfg.APIKey)
	if cfg.Host != "" {
		client.Request.BaseURL = strings.TrimSuffix(cfg.Host, "/") + sendPath
	}

	return &emailService{client: client, from: mail.NewEmail(cfg.FromName, cfg.FromEmail)}
}

// Send delivers one message. Empty content parts are left out, text before html.
func (e *emailService) Send(ctx context.Context, req *models.EmailNotificationRequest) error {
	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail("", req.To))
	p.Subject = req.Subject

	msg := mail.NewV3Mail().SetFrom(e.from).AddPersonalizations(p)

	for _, part := range []struct{ kind, body string }{
		{"text/plain", req.Content},
		{"text/html", req.HTMLContent},
	} {
		if part.body != "" {
			msg.AddContent(mail.NewContent(part.kind, part.body))
		}
	}

	resp, err := e.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("sendgrid request to %s failed: %w", req.To, err)
	}

	if resp.StatusCode >= 400 {
		return &StatusError{StatusCode: resp.StatusCode, Body: resp.Body}
	}

	return nil
}
