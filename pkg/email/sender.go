package email

import (
	"fmt"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/domain"
)

// Provider names accepted in MAIL_PROVIDER
const (
	ProviderSMTP    = "smtp"
	ProviderResend  = "resend"
	ProviderEmailJS = "emailjs"
	ProviderNoop    = "noop"
)

// NewSender builds the transport selected by cfg.MailProvider.
func NewSender(cfg *config.Config) (domain.MessageSender, error) {
	switch cfg.MailProvider {
	case ProviderSMTP, "":
		return NewSMTPSender(SMTPConfig{
			Host:      cfg.SMTPHost,
			Port:      cfg.SMTPPort,
			Username:  cfg.SMTPUsername,
			Password:  cfg.SMTPPassword,
			FromEmail: cfg.SMTPFromEmail,
			ToEmail:   cfg.ContactEmailTo,
		}), nil
	case ProviderResend:
		return NewResendSender(cfg.ResendAPIKey, cfg.ResendFromEmail, cfg.ContactEmailTo), nil
	case ProviderEmailJS:
		return NewEmailJSSender(EmailJSConfig{
			Endpoint:   cfg.EmailJSEndpoint,
			ServiceID:  cfg.EmailJSServiceID,
			TemplateID: cfg.EmailJSTemplateID,
			PublicKey:  cfg.EmailJSPublicKey,
			PrivateKey: cfg.EmailJSPrivateKey,
		}, nil), nil
	case ProviderNoop:
		return NewNoopSender(), nil
	default:
		return nil, fmt.Errorf("unknown MAIL_PROVIDER %q", cfg.MailProvider)
	}
}
