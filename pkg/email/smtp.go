package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"go-portfolio-backend/internal/domain"

	"github.com/google/uuid"
)

// SMTPSender delivers contact messages through an SMTP relay (Brevo by default).
type SMTPSender struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	toEmail   string
	dialer    *net.Dialer
}

// SMTPConfig holds the relay credentials
type SMTPConfig struct {
	Host      string
	Port      string
	Username  string
	Password  string
	FromEmail string // verified sender; falls back to Username
	ToEmail   string
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	from := cfg.FromEmail
	if from == "" {
		from = cfg.Username
	}
	return &SMTPSender{
		host:      cfg.Host,
		port:      cfg.Port,
		username:  cfg.Username,
		password:  cfg.Password,
		fromEmail: from,
		toEmail:   cfg.ToEmail,
		dialer:    &net.Dialer{Timeout: 10 * time.Second},
	}
}

func (s *SMTPSender) Name() string { return ProviderSMTP }

// IsConfigured checks if the sender has valid SMTP configuration
func (s *SMTPSender) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != "" && s.toEmail != ""
}

// SendMessage relays one message. The context deadline bounds the whole SMTP dialogue.
func (s *SMTPSender) SendMessage(ctx context.Context, p domain.MessagePayload) (domain.SendReceipt, error) {
	if !s.IsConfigured() {
		return domain.SendReceipt{}, domain.ErrTransportUnavailable
	}

	html, err := RenderHTML(p)
	if err != nil {
		return domain.SendReceipt{}, err
	}
	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), s.host)
	msg := s.buildMessage(p, html, messageID, time.Now())

	conn, err := s.dialer.DialContext(ctx, "tcp", net.JoinHostPort(s.host, s.port))
	if err != nil {
		return domain.SendReceipt{}, fmt.Errorf("failed to connect to smtp relay: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	// Unblock the dialogue if the caller gives up before the deadline
	stop := context.AfterFunc(ctx, func() { _ = conn.SetDeadline(time.Now()) })
	defer stop()

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return domain.SendReceipt{}, fmt.Errorf("failed to start smtp session: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: s.host, MinVersion: tls.VersionTLS12}); err != nil {
			return domain.SendReceipt{}, fmt.Errorf("smtp starttls failed: %w", err)
		}
	}
	if ok, _ := client.Extension("AUTH"); ok {
		if err := client.Auth(smtp.PlainAuth("", s.username, s.password, s.host)); err != nil {
			return domain.SendReceipt{}, fmt.Errorf("smtp auth failed: %w", err)
		}
	}
	if err := client.Mail(s.fromEmail); err != nil {
		return domain.SendReceipt{}, fmt.Errorf("smtp MAIL FROM rejected: %w", err)
	}
	if err := client.Rcpt(s.toEmail); err != nil {
		return domain.SendReceipt{}, fmt.Errorf("smtp RCPT TO rejected: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return domain.SendReceipt{}, fmt.Errorf("smtp DATA rejected: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return domain.SendReceipt{}, fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return domain.SendReceipt{}, fmt.Errorf("smtp relay refused message: %w", err)
	}
	_ = client.Quit()

	return domain.SendReceipt{
		Provider:  ProviderSMTP,
		MessageID: messageID,
		SentAt:    time.Now(),
	}, nil
}

// buildMessage constructs the MIME message
func (s *SMTPSender) buildMessage(p domain.MessagePayload, html, messageID string, now time.Time) []byte {
	return []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Reply-To: %s\r\n"+
			"Subject: %s\r\n"+
			"Date: %s\r\n"+
			"Message-ID: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		s.toEmail,
		headerSafe(p.SenderEmail),
		Subject(p),
		now.Format(time.RFC1123Z),
		messageID,
		html,
	))
}
