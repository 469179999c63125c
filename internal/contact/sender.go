package contact

import (
	"context"
	"fmt"

	"github.com/ankitraj/portfolio/internal/notify"
	"github.com/ankitraj/portfolio/pkg/logging"
)

// Sender delivers a validated submission to one outbound channel.
// Implementations are chosen once at startup and shared across requests.
type Sender interface {
	Send(ctx context.Context, sub Submission) error
	// Channel names the outbound channel for logs and metrics.
	Channel() string
	// Acknowledgement is the success message returned to the submitter.
	Acknowledgement() string
}

// ProviderEmailSender renders a transactional email and hands it to an
// email provider. Provider failures are returned as *DispatchError and
// never retried.
type ProviderEmailSender struct {
	email     notify.EmailSender
	channel   string
	recipient string
	site      Site
	logger    *logging.Logger
}

// ProviderConfig configures a ProviderEmailSender.
type ProviderConfig struct {
	// Channel is the provider name, e.g. "ses" or "sendgrid".
	Channel   string
	Recipient string
	Site      Site
}

// NewProviderEmailSender wraps an email transport.
func NewProviderEmailSender(email notify.EmailSender, cfg ProviderConfig, logger *logging.Logger) *ProviderEmailSender {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Channel == "" {
		cfg.Channel = "email"
	}
	return &ProviderEmailSender{
		email:     email,
		channel:   cfg.Channel,
		recipient: cfg.Recipient,
		site:      cfg.Site,
		logger:    logger,
	}
}

// Send renders and sends the notification email.
func (s *ProviderEmailSender) Send(ctx context.Context, sub Submission) error {
	if s.email == nil {
		return &DispatchError{Channel: s.channel, Err: fmt.Errorf("contact: email transport not configured")}
	}
	rendered, err := RenderEmail(sub, s.site)
	if err != nil {
		return &DispatchError{Channel: s.channel, Err: err}
	}

	err = s.email.Send(ctx, notify.EmailMessage{
		To:      s.recipient,
		ReplyTo: sub.Email,
		Subject: rendered.Subject,
		Body:    rendered.Text,
		HTML:    rendered.HTML,
	})
	if err != nil {
		return &DispatchError{Channel: s.channel, Err: err}
	}

	s.logger.Info("contact form email sent", "channel", s.channel, "name", sub.Name, "email", sub.Email)
	return nil
}

func (s *ProviderEmailSender) Channel() string { return s.channel }

func (s *ProviderEmailSender) Acknowledgement() string { return "Message sent successfully!" }

// LogOnlySender writes submissions to the log. Used outside serverless
// deployments; it never fails and makes no network calls.
type LogOnlySender struct {
	logger *logging.Logger
}

// NewLogOnlySender creates a sender that only logs.
func NewLogOnlySender(logger *logging.Logger) *LogOnlySender {
	if logger == nil {
		logger = logging.Default()
	}
	return &LogOnlySender{logger: logger}
}

// Send logs the submission.
func (s *LogOnlySender) Send(_ context.Context, sub Submission) error {
	s.logger.Info("contact form submission (local dev)",
		"name", sub.Name,
		"email", sub.Email,
		"message", sub.Message,
	)
	return nil
}

func (s *LogOnlySender) Channel() string { return "log" }

func (s *LogOnlySender) Acknowledgement() string { return "Message received (local dev mode)" }

var (
	_ Sender = (*ProviderEmailSender)(nil)
	_ Sender = (*LogOnlySender)(nil)
)
