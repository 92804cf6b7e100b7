package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/security"

	"github.com/google/uuid"
)

// DefaultSubmitTimeout bounds a transport call when no timeout is configured.
const DefaultSubmitTimeout = 15 * time.Second

// ContactControllerConfig is shared by every controller built from it.
type ContactControllerConfig struct {
	Sender        domain.MessageSender
	FallbackEmail string
	Timeout       time.Duration
	// Optional collaborators
	Inbox  domain.ContactMessageRepository
	Events *security.EventLogger
	Logger *slog.Logger
}

func (cfg ContactControllerConfig) validate() error {
	if cfg.Sender == nil {
		return errors.New("contact controller: sender is required")
	}
	if cfg.FallbackEmail == "" {
		return errors.New("contact controller: fallback email is required")
	}
	return nil
}

func (cfg ContactControllerConfig) withDefaults() ContactControllerConfig {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultSubmitTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Log
	}
	return cfg
}

// ContactController owns one contact form: its fields, its submission status and
// at most one in-flight delivery. It is safe for concurrent use.
type ContactController struct {
	cfg ContactControllerConfig

	mu       sync.Mutex
	fields   domain.FormFields
	status   domain.SubmissionStatus
	closed   bool
	cancelFn context.CancelFunc
}

// NewContactController validates cfg and returns a controller in the Idle state.
func NewContactController(cfg ContactControllerConfig) (*ContactController, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return newContactController(cfg.withDefaults()), nil
}

func newContactController(cfg ContactControllerConfig) *ContactController {
	return &ContactController{cfg: cfg, status: domain.IdleStatus()}
}

// Snapshot returns a copy of the fields and status for rendering.
func (c *ContactController) Snapshot() domain.FormSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.FormSnapshot{Fields: c.fields, Status: c.status}
}

// Status returns the current submission status.
func (c *ContactController) Status() domain.SubmissionStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// UpdateField replaces one field. A displayed validation or delivery error is
// cleared so it does not linger while the visitor corrects the input.
func (c *ContactController) UpdateField(field domain.FieldName, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return domain.ErrControllerClosed
	}
	switch field {
	case domain.NameField:
		c.fields.Name = value
	case domain.EmailField:
		c.fields.Email = value
	case domain.MessageField:
		c.fields.Message = value
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownField, field)
	}
	if c.status.State == domain.StateError {
		c.status = domain.IdleStatus()
	}
	return nil
}

// SetFields replaces all fields at once, with the same error-clearing rule as UpdateField.
func (c *ContactController) SetFields(f domain.FormFields) error {
	for _, u := range []struct {
		field domain.FieldName
		value string
	}{
		{domain.NameField, f.Name},
		{domain.EmailField, f.Email},
		{domain.MessageField, f.Message},
	} {
		if err := c.UpdateField(u.field, u.value); err != nil {
			return err
		}
	}
	return nil
}

// Reset returns a finished form to Idle ("send another message").
// It does nothing while a submission is in flight.
func (c *ContactController) Reset() domain.SubmissionStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed && c.status.State != domain.StateSubmitting {
		c.status = domain.IdleStatus()
	}
	return c.status
}

// Close releases the form. An in-flight delivery is cancelled and its result,
// if it still arrives, is not applied.
func (c *ContactController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.cancelFn != nil {
		c.cancelFn()
		c.cancelFn = nil
	}
}

// Submit validates the current fields and, if they pass, delivers them.
// A call made while another submission is in flight (or after Close) is a no-op
// and returns the current status. Transport failures never escape as errors;
// they become the Error status.
func (c *ContactController) Submit(ctx context.Context) domain.SubmissionStatus {
	status, _ := c.submit(ctx)
	return status
}

// submit is Submit plus the classified cause, for callers that map outcomes
// onto transport-level responses.
func (c *ContactController) submit(ctx context.Context) (domain.SubmissionStatus, error) {
	meta := requestMetaFrom(ctx)

	c.mu.Lock()
	if c.closed {
		status := c.status
		c.mu.Unlock()
		return status, domain.ErrControllerClosed
	}
	if c.status.State == domain.StateSubmitting {
		status := c.status
		c.mu.Unlock()
		return status, nil
	}

	fields := c.fields
	if verr := domain.Validate(fields); verr != nil {
		c.status = domain.ErrorStatus(verr.Message)
		status := c.status
		c.mu.Unlock()
		c.cfg.Events.LogContactValidationFailed(ctx, meta.RemoteIP, meta.RequestID, string(verr.Kind))
		return status, verr
	}

	sendCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	c.cancelFn = cancel
	c.status = domain.SubmittingStatus()
	c.mu.Unlock()

	payload := fields.Payload()
	receipt, sendErr := c.cfg.Sender.SendMessage(sendCtx, payload)
	cancel()

	c.mu.Lock()
	c.cancelFn = nil
	discarded := c.closed
	if !discarded {
		if sendErr == nil {
			c.status = domain.SuccessStatus(domain.MsgSubmitSuccess)
			c.fields = domain.FormFields{}
		} else {
			c.status = domain.ErrorStatus(domain.DeliveryFailedMessage(c.cfg.FallbackEmail))
		}
	}
	status := c.status
	c.mu.Unlock()

	c.recordOutcome(ctx, meta, payload, receipt, sendErr)

	if discarded {
		c.cfg.Events.LogContactResultDiscarded(ctx, meta.RequestID, sendErr == nil)
		return status, domain.ErrControllerClosed
	}
	if sendErr != nil {
		if errors.Is(sendErr, domain.ErrTransportUnavailable) {
			return status, sendErr
		}
		return status, fmt.Errorf("%w: %w", domain.ErrDeliveryFailed, sendErr)
	}
	return status, nil
}

// recordOutcome logs the delivery result and stores it in the inbox.
func (c *ContactController) recordOutcome(ctx context.Context, meta domain.RequestMeta, p domain.MessagePayload, receipt domain.SendReceipt, sendErr error) {
	provider := c.cfg.Sender.Name()
	msg := &domain.ContactMessage{
		ID:                uuid.NewString(),
		SenderName:        p.SenderName,
		SenderEmail:       p.SenderEmail,
		Message:           p.MessageBody,
		Status:            domain.ContactMessageDelivered,
		Provider:          provider,
		ProviderMessageID: receipt.MessageID,
		RemoteIP:          meta.RemoteIP,
		UserAgent:         meta.UserAgent,
		CreatedAt:         time.Now().UTC(),
	}

	if sendErr != nil {
		msg.Status = domain.ContactMessageFailed
		msg.Error = sendErr.Error()
		c.cfg.Logger.Error("Contact message delivery failed",
			"provider", provider,
			"request_id", meta.RequestID,
			"error", sendErr,
		)
		c.cfg.Events.LogContactDeliveryFailed(ctx, p.SenderEmail, meta.RemoteIP, meta.RequestID, provider, sendErr)
	} else {
		c.cfg.Logger.Info("Contact message delivered",
			"provider", provider,
			"request_id", meta.RequestID,
			"message_id", receipt.MessageID,
		)
		c.cfg.Events.LogContactDelivered(ctx, p.SenderEmail, meta.RemoteIP, meta.RequestID, provider)
	}

	storeMessage(ctx, c.cfg.Inbox, c.cfg.Logger, msg)
}

// storeMessage writes to the inbox with its own deadline so a cancelled request
// still leaves a record behind.
func storeMessage(ctx context.Context, inbox domain.ContactMessageRepository, log *slog.Logger, msg *domain.ContactMessage) {
	if inbox == nil {
		return
	}
	storeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := inbox.Create(storeCtx, msg); err != nil {
		log.Error("Failed to store contact message", "id", msg.ID, "error", err)
	}
}

// requestMetaFrom reads caller details placed on the context by the HTTP layer.
func requestMetaFrom(ctx context.Context) domain.RequestMeta {
	var meta domain.RequestMeta
	meta.RequestID, _ = ctx.Value(domain.KeyRequestID).(string)
	meta.RemoteIP, _ = ctx.Value(domain.KeyRemoteIP).(string)
	meta.UserAgent, _ = ctx.Value(domain.KeyUserAgent).(string)
	return meta
}

// WithRequestMeta stores caller details for requestMetaFrom.
func WithRequestMeta(ctx context.Context, meta domain.RequestMeta) context.Context {
	ctx = context.WithValue(ctx, domain.KeyRequestID, meta.RequestID)
	ctx = context.WithValue(ctx, domain.KeyRemoteIP, meta.RemoteIP)
	return context.WithValue(ctx, domain.KeyUserAgent, meta.UserAgent)
}
