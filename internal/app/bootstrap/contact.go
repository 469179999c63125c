package bootstrap

import (
	"context"
	"fmt"

	"github.com/ankitraj/portfolio/internal/config"
	"github.com/ankitraj/portfolio/internal/contact"
	"github.com/ankitraj/portfolio/internal/notify"
	"github.com/ankitraj/portfolio/pkg/logging"
)

// SESClientFunc creates the SES client. Replaced in tests.
type SESClientFunc func(ctx context.Context, cfg *config.Config) (notify.SESAPI, error)

// ResolveEmailProvider applies the dispatch policy: an explicit
// EMAIL_PROVIDER wins, otherwise serverless deployments send through SES
// and everything else only logs.
func ResolveEmailProvider(cfg *config.Config) (string, error) {
	switch cfg.EmailProvider {
	case config.ProviderSES, config.ProviderSendGrid, config.ProviderLog:
		return cfg.EmailProvider, nil
	case config.ProviderAuto, "":
		if cfg.Serverless() {
			return config.ProviderSES, nil
		}
		return config.ProviderLog, nil
	default:
		return "", fmt.Errorf("bootstrap: unknown EMAIL_PROVIDER %q", cfg.EmailProvider)
	}
}

// BuildContactSender selects the contact dispatch strategy once at startup.
func BuildContactSender(ctx context.Context, cfg *config.Config, logger *logging.Logger, newSES SESClientFunc) (contact.Sender, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if newSES == nil {
		newSES = NewSESClient
	}

	provider, err := ResolveEmailProvider(cfg)
	if err != nil {
		return nil, err
	}

	providerCfg := contact.ProviderConfig{
		Channel:   provider,
		Recipient: cfg.ContactRecipient,
		Site:      contact.Site{Name: cfg.SiteName, URL: cfg.SiteURL},
	}

	switch provider {
	case config.ProviderSES:
		client, err := newSES(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: ses client: %w", err)
		}
		transport := notify.NewSESSender(client, notify.SESConfig{
			FromEmail: cfg.ContactFromEmail,
			FromName:  cfg.ContactFromName,
		}, logger)
		logger.Info("contact dispatch via SES", "region", cfg.AWSRegion, "recipient", cfg.ContactRecipient)
		return contact.NewProviderEmailSender(transport, providerCfg, logger), nil

	case config.ProviderSendGrid:
		transport := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.ContactFromEmail,
			FromName:  cfg.ContactFromName,
		}, logger)
		if transport == nil {
			return nil, fmt.Errorf("bootstrap: EMAIL_PROVIDER=sendgrid requires SENDGRID_API_KEY")
		}
		logger.Info("contact dispatch via SendGrid", "recipient", cfg.ContactRecipient)
		return contact.NewProviderEmailSender(transport, providerCfg, logger), nil

	default:
		logger.Info("contact dispatch via log only")
		return contact.NewLogOnlySender(logger), nil
	}
}
