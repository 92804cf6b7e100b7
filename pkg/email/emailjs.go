package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go-portfolio-backend/internal/domain"
)

// EmailJSConfig holds the EmailJS account identifiers
type EmailJSConfig struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	PublicKey  string
	PrivateKey string // optional; required when the account enforces it for API calls
}

// EmailJSSender posts messages to the EmailJS REST API, which renders them
// through a template stored in the EmailJS dashboard.
type EmailJSSender struct {
	cfg        EmailJSConfig
	httpClient *http.Client
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

func NewEmailJSSender(cfg EmailJSConfig, httpClient *http.Client) *EmailJSSender {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &EmailJSSender{cfg: cfg, httpClient: httpClient}
}

func (s *EmailJSSender) Name() string { return ProviderEmailJS }

func (s *EmailJSSender) IsConfigured() bool {
	return s.cfg.Endpoint != "" && s.cfg.ServiceID != "" && s.cfg.TemplateID != "" && s.cfg.PublicKey != ""
}

// SendMessage calls the send endpoint. Any non-2xx response is a failure.
func (s *EmailJSSender) SendMessage(ctx context.Context, p domain.MessagePayload) (domain.SendReceipt, error) {
	if !s.IsConfigured() {
		return domain.SendReceipt{}, domain.ErrTransportUnavailable
	}

	body, err := json.Marshal(emailJSRequest{
		ServiceID:   s.cfg.ServiceID,
		TemplateID:  s.cfg.TemplateID,
		UserID:      s.cfg.PublicKey,
		AccessToken: s.cfg.PrivateKey,
		TemplateParams: map[string]string{
			"from_name":  p.SenderName,
			"from_email": p.SenderEmail,
			"message":    p.MessageBody,
		},
	})
	if err != nil {
		return domain.SendReceipt{}, fmt.Errorf("failed to encode emailjs request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.SendReceipt{}, fmt.Errorf("failed to build emailjs request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return domain.SendReceipt{}, fmt.Errorf("emailjs request failed: %w", err)
	}
	defer resp.Body.Close()

	// EmailJS answers with a short plain-text body ("OK" or the reason)
	text, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.SendReceipt{}, fmt.Errorf("emailjs rejected message: status %d: %s", resp.StatusCode, strings.TrimSpace(string(text)))
	}

	return domain.SendReceipt{
		Provider: ProviderEmailJS,
		SentAt:   time.Now(),
	}, nil
}
