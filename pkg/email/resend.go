package email

import (
	"context"
	"fmt"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/logger"

	"github.com/resend/resend-go/v2"
)

// ResendSender sends contact messages via the Resend API.
type ResendSender struct {
	client     *resend.Client
	configured bool
	from       string
	to         string
}

// NewResendSender creates a sender with the given API key, verified from address and inbox.
func NewResendSender(apiKey, from, to string) *ResendSender {
	return &ResendSender{
		client:     resend.NewClient(apiKey),
		configured: apiKey != "" && from != "" && to != "",
		from:       from,
		to:         to,
	}
}

func (s *ResendSender) Name() string { return ProviderResend }

func (s *ResendSender) IsConfigured() bool { return s.configured }

// SendMessage sends a single notification via Resend.
func (s *ResendSender) SendMessage(ctx context.Context, p domain.MessagePayload) (domain.SendReceipt, error) {
	if !s.configured {
		return domain.SendReceipt{}, domain.ErrTransportUnavailable
	}

	html, err := RenderHTML(p)
	if err != nil {
		return domain.SendReceipt{}, err
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{s.to},
		Subject: Subject(p),
		Html:    html,
		Text:    RenderText(p),
		ReplyTo: p.SenderEmail,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return domain.SendReceipt{}, fmt.Errorf("resend send failed: %w", err)
	}

	logger.Log.Info("resend_sent", "message_id", sent.Id)
	return domain.SendReceipt{
		Provider:  ProviderResend,
		MessageID: sent.Id,
		SentAt:    time.Now(),
	}, nil
}
