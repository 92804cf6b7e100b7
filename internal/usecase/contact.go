package usecase

import (
	"context"
	"time"

	"go-portfolio-backend/internal/domain"

	"github.com/google/uuid"
)

type contactUsecase struct {
	cfg        ContactControllerConfig
	recordSpam bool
}

// ContactOption tweaks the one-shot contact usecase
type ContactOption func(*contactUsecase)

// WithSpamRecording stores honeypot hits in the inbox as spam
func WithSpamRecording(enabled bool) ContactOption {
	return func(uc *contactUsecase) { uc.recordSpam = enabled }
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(cfg ContactControllerConfig, opts ...ContactOption) (domain.ContactUsecase, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	uc := &contactUsecase{cfg: cfg.withDefaults()}
	for _, opt := range opts {
		opt(uc)
	}
	return uc, nil
}

// SendContactMessage runs one complete submission cycle for a stateless client.
// It returns *domain.ValidationError, domain.ErrTransportUnavailable or an error
// wrapping domain.ErrDeliveryFailed when the message was not delivered.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) (domain.SubmissionStatus, error) {
	if domain.TrimForm(req.Website) != "" {
		return uc.trapSpam(ctx, req), nil
	}

	c := newContactController(uc.cfg)
	defer c.Close()

	if err := c.SetFields(req.Fields()); err != nil {
		return c.Status(), err
	}
	return c.submit(ctx)
}

// trapSpam answers a honeypot hit exactly like a delivered message, without delivering it.
func (uc *contactUsecase) trapSpam(ctx context.Context, req *domain.ContactRequest) domain.SubmissionStatus {
	meta := requestMetaFrom(ctx)
	p := req.Fields().Payload()

	uc.cfg.Logger.Warn("Contact honeypot triggered",
		"request_id", meta.RequestID,
		"remote_ip", meta.RemoteIP,
	)
	uc.cfg.Events.LogContactSpamBlocked(ctx, p.SenderEmail, meta.RemoteIP, meta.RequestID)

	if uc.recordSpam {
		storeMessage(ctx, uc.cfg.Inbox, uc.cfg.Logger, &domain.ContactMessage{
			ID:          uuid.NewString(),
			SenderName:  p.SenderName,
			SenderEmail: p.SenderEmail,
			Message:     p.MessageBody,
			Status:      domain.ContactMessageSpam,
			RemoteIP:    meta.RemoteIP,
			UserAgent:   meta.UserAgent,
			CreatedAt:   time.Now().UTC(),
		})
	}
	return domain.SuccessStatus(domain.MsgSubmitSuccess)
}
