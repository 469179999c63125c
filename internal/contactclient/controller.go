package contactclient

import (
	"context"
	"time"

	"github.com/ankitraj/portfolio/internal/contact"
	"github.com/ankitraj/portfolio/pkg/logging"
)

// NotificationTTL is how long a notification stays on screen.
const NotificationTTL = 5 * time.Second

// Kind styles a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Notification is a transient message shown to the user.
type Notification struct {
	Kind         Kind
	Message      string
	DismissAfter time.Duration
}

// Notifier displays notifications. Each one is independent.
type Notifier interface {
	Notify(n Notification)
}

// Navigator opens a URL on the user's behalf (the mailto fallback).
type Navigator interface {
	Navigate(url string) error
}

// Outcome is the result of one Submit call.
type Outcome int

const (
	// OutcomeRejected means local validation failed; nothing was sent.
	OutcomeRejected Outcome = iota
	// OutcomeSent means the API accepted the submission.
	OutcomeSent
	// OutcomeFallback means the API failed and the mailto link was opened.
	OutcomeFallback
)

// Result describes what Submit did.
type Result struct {
	Outcome   Outcome
	MailtoURL string
	Err       error
}

// Controller holds the page state needed by the contact form: the API
// client, the notification surface and the fallback navigator.
type Controller struct {
	client    *Client
	notifier  Notifier
	navigator Navigator
	recipient string
	logger    *logging.Logger
}

// NewController creates the contact form controller.
func NewController(client *Client, notifier Notifier, navigator Navigator, recipient string, logger *logging.Logger) *Controller {
	if logger == nil {
		logger = logging.Default()
	}
	return &Controller{
		client:    client,
		notifier:  notifier,
		navigator: navigator,
		recipient: recipient,
		logger:    logger,
	}
}

// Submit validates and sends sub, falling back to mailto on any failure
// after validation.
func (c *Controller) Submit(ctx context.Context, sub contact.Submission) Result {
	if sub.Name == "" || sub.Email == "" || sub.Message == "" {
		c.notify(KindError, "Please fill in all fields.")
		return Result{Outcome: OutcomeRejected, Err: contact.ErrMissingFields}
	}
	if !contact.ValidEmail(sub.Email) {
		c.notify(KindError, "Please enter a valid email address.")
		return Result{Outcome: OutcomeRejected, Err: contact.ErrInvalidEmail}
	}

	if _, err := c.client.Send(ctx, sub); err != nil {
		c.logger.Warn("contact form error", "error", err)
		link := MailtoURL(c.recipient, sub)
		c.notify(KindInfo, "Opening email client as backup...")
		if c.navigator != nil {
			if navErr := c.navigator.Navigate(link); navErr != nil {
				c.logger.Error("failed to open mail client", "error", navErr)
			}
		}
		return Result{Outcome: OutcomeFallback, MailtoURL: link, Err: err}
	}

	c.notify(KindSuccess, "Message sent successfully! I'll get back to you soon.")
	return Result{Outcome: OutcomeSent}
}

func (c *Controller) notify(kind Kind, msg string) {
	if c.notifier == nil {
		return
	}
	c.notifier.Notify(Notification{Kind: kind, Message: msg, DismissAfter: NotificationTTL})
}
