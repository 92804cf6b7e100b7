package email

import (
	"context"
	"fmt"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/security"
)

// NoopSender logs messages instead of delivering them. For development and tests.
type NoopSender struct{}

func NewNoopSender() *NoopSender {
	return &NoopSender{}
}

func (s *NoopSender) Name() string { return ProviderNoop }

func (s *NoopSender) IsConfigured() bool { return true }

// SendMessage logs the payload but does not deliver it.
func (s *NoopSender) SendMessage(_ context.Context, p domain.MessagePayload) (domain.SendReceipt, error) {
	logger.Log.Info("noop_email_send", "from", security.MaskEmail(p.SenderEmail), "length", len(p.MessageBody))
	now := time.Now()
	return domain.SendReceipt{
		Provider:  ProviderNoop,
		MessageID: fmt.Sprintf("noop-%d", now.UnixNano()),
		SentAt:    now,
	}, nil
}
