package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"go-portfolio-backend/config"
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/repository/sqlite"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/auth"
	"go-portfolio-backend/pkg/database"
	"go-portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	adminSecret = "0123456789abcdef0123456789abcdef"
	fallback    = "owner@example.com"
)

type stubSender struct {
	mu   sync.Mutex
	err  error
	sent []domain.MessagePayload
}

func (s *stubSender) SendMessage(_ context.Context, p domain.MessagePayload) (domain.SendReceipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return domain.SendReceipt{}, s.err
	}
	s.sent = append(s.sent, p)
	return domain.SendReceipt{Provider: "stub", MessageID: "stub-1", SentAt: time.Now()}, nil
}

func (s *stubSender) Name() string       { return "stub" }
func (s *stubSender) IsConfigured() bool { return true }

func (s *stubSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Error     json.RawMessage `json:"error"`
	RequestID string          `json:"request_id"`
}

type testServer struct {
	router *gin.Engine
	sender *stubSender
	inbox  *sqlite.ContactMessageRepo
}

func newTestServer(t *testing.T, mutate func(*config.Config)) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Environment:               "development",
		FrontendURL:               "http://localhost:3000",
		ContactFallbackEmail:      fallback,
		RateLimitWindowSeconds:    60,
		RateLimitContactThreshold: 100,
		RateLimitGlobalThreshold:  1000,
		AdminJWTSecret:            adminSecret,
		ContactRecordSpam:         true,
	}
	if mutate != nil {
		mutate(cfg)
	}

	db, err := database.NewSQLiteConnection(context.Background(), filepath.Join(t.TempDir(), "inbox.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	inbox := sqlite.NewContactMessageRepository(db)
	require.NoError(t, inbox.Migrate(context.Background()))

	sender := &stubSender{}
	ccfg := usecase.ContactControllerConfig{
		Sender:        sender,
		FallbackEmail: cfg.ContactFallbackEmail,
		Timeout:       time.Second,
		Inbox:         inbox,
		Logger:        logger.Discard(),
	}
	contactUC, err := usecase.NewContactUsecase(ccfg, usecase.WithSpamRecording(cfg.ContactRecordSpam))
	require.NoError(t, err)
	sessions, err := usecase.NewContactSessions(ccfg)
	require.NoError(t, err)
	t.Cleanup(sessions.CloseAll)
	profileUC, err := usecase.NewProfileUsecase(filepath.Join("..", "..", "..", "..", "configs", "profile.yaml"))
	require.NoError(t, err)

	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:  contactUC,
		SessionsUC: sessions,
		InboxUC:    usecase.NewInboxUsecase(inbox),
		ProfileUC:  profileUC,
		Config:     cfg,
	})
	return &testServer{router: router, sender: sender, inbox: inbox}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func validRequest() map[string]string {
	return map[string]string{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"message": "Hello, I'd like to work with you.",
	}
}

func TestSubmitContact(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s := newTestServer(t, nil)
		w, env := s.do(t, http.MethodPost, "/v1/contact", validRequest())

		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.Success)
		assert.Equal(t, domain.MsgSubmitSuccess, env.Message)
		assert.NotEmpty(t, env.RequestID)

		var status domain.SubmissionStatus
		require.NoError(t, json.Unmarshal(env.Data, &status))
		assert.Equal(t, domain.StateSuccess, status.State)
		assert.Equal(t, 1, s.sender.count())

		n, err := s.inbox.Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("validation error", func(t *testing.T) {
		s := newTestServer(t, nil)
		req := validRequest()
		req["message"] = "too short"
		w, env := s.do(t, http.MethodPost, "/v1/contact", req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, env.Success)
		assert.Equal(t, domain.MsgMessageTooShort, env.Message)

		var status domain.SubmissionStatus
		require.NoError(t, json.Unmarshal(env.Data, &status))
		assert.Equal(t, domain.ErrorStatus(domain.MsgMessageTooShort), status)

		var verr domain.ValidationError
		require.NoError(t, json.Unmarshal(env.Error, &verr))
		assert.Equal(t, domain.MessageTooShort, verr.Kind)
		assert.Zero(t, s.sender.count())
	})

	t.Run("header injection rejected by binding", func(t *testing.T) {
		s := newTestServer(t, nil)
		req := validRequest()
		req["name"] = "Jane\r\nBcc: victim@example.com"
		w, env := s.do(t, http.MethodPost, "/v1/contact", req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid request", env.Message)
		assert.Zero(t, s.sender.count())
	})

	t.Run("control characters rejected by binding", func(t *testing.T) {
		s := newTestServer(t, nil)
		req := validRequest()
		req["message"] = "Hello there\x1b[2J, friend."
		w, _ := s.do(t, http.MethodPost, "/v1/contact", req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, s.sender.count())
	})

	t.Run("delivery failure", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.sender.err = errors.New("provider down")
		w, env := s.do(t, http.MethodPost, "/v1/contact", validRequest())

		require.Equal(t, http.StatusBadGateway, w.Code)
		var status domain.SubmissionStatus
		require.NoError(t, json.Unmarshal(env.Data, &status))
		assert.Equal(t, domain.ErrorStatus(domain.DeliveryFailedMessage(fallback)), status)
		assert.NotContains(t, w.Body.String(), "provider down")
	})

	t.Run("transport not configured", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.sender.err = domain.ErrTransportUnavailable
		w, _ := s.do(t, http.MethodPost, "/v1/contact", validRequest())
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("honeypot", func(t *testing.T) {
		s := newTestServer(t, nil)
		req := validRequest()
		req["website"] = "http://spam.example"
		w, env := s.do(t, http.MethodPost, "/v1/contact", req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.Success)
		assert.Zero(t, s.sender.count())

		items, err := s.inbox.List(context.Background(), 10, 0)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, domain.ContactMessageSpam, items[0].Status)
	})

	t.Run("rate limited", func(t *testing.T) {
		s := newTestServer(t, func(cfg *config.Config) { cfg.RateLimitContactThreshold = 1 })
		w, _ := s.do(t, http.MethodPost, "/v1/contact", validRequest())
		require.Equal(t, http.StatusOK, w.Code)

		w, env := s.do(t, http.MethodPost, "/v1/contact", validRequest())
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.False(t, env.Success)
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
	})
}

func TestContactSessions(t *testing.T) {
	s := newTestServer(t, nil)

	w, env := s.do(t, http.MethodPost, "/v1/contact/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var snap domain.FormSnapshot
	require.NoError(t, json.Unmarshal(env.Data, &snap))
	require.NotEmpty(t, snap.ID)
	base := "/v1/contact/sessions/" + snap.ID

	// Submitting the empty form shows the first rule
	w, env = s.do(t, http.MethodPost, base+"/submit", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &snap))
	assert.Equal(t, domain.ErrorStatus(domain.MsgMissingName), snap.Status)

	for field, value := range validRequest() {
		w, env = s.do(t, http.MethodPatch, base, map[string]string{"field": field, "value": value})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}
	require.NoError(t, json.Unmarshal(env.Data, &snap))
	assert.Equal(t, domain.IdleStatus(), snap.Status, "editing cleared the error")

	w, env = s.do(t, http.MethodPost, base+"/submit", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &snap))
	assert.Equal(t, domain.StateSuccess, snap.Status.State)
	assert.Equal(t, domain.FormFields{}, snap.Fields)

	w, env = s.do(t, http.MethodPost, base+"/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &snap))
	assert.Equal(t, domain.IdleStatus(), snap.Status)

	w, _ = s.do(t, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, _ = s.do(t, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContactSessionsBadField(t *testing.T) {
	s := newTestServer(t, nil)
	_, env := s.do(t, http.MethodPost, "/v1/contact/sessions", nil)
	var snap domain.FormSnapshot
	require.NoError(t, json.Unmarshal(env.Data, &snap))

	w, _ := s.do(t, http.MethodPatch, "/v1/contact/sessions/"+snap.ID, map[string]string{"field": "subject", "value": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(t, http.MethodPatch, "/v1/contact/sessions/missing", map[string]string{"field": "name", "value": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContactSessionsFieldRules(t *testing.T) {
	s := newTestServer(t, nil)
	_, env := s.do(t, http.MethodPost, "/v1/contact/sessions", nil)
	var snap domain.FormSnapshot
	require.NoError(t, json.Unmarshal(env.Data, &snap))
	path := "/v1/contact/sessions/" + snap.ID

	for _, field := range []string{"name", "email"} {
		w, env := s.do(t, http.MethodPatch, path, map[string]string{"field": field, "value": "Jane\r\nBcc: victim@example.com"})
		assert.Equal(t, http.StatusBadRequest, w.Code, field)
		assert.Contains(t, string(env.Error), "must not contain line breaks", field)
	}

	w, _ := s.do(t, http.MethodPatch, path, map[string]string{"field": "name", "value": "Jane\x07"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = s.do(t, http.MethodPatch, path, map[string]string{"field": "message", "value": "line one\nline two"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &snap))
	assert.Equal(t, "line one\nline two", snap.Fields.Message)
	assert.Empty(t, snap.Fields.Name, "rejected edits are not applied")
}

func TestAdminContactMessages(t *testing.T) {
	s := newTestServer(t, nil)
	s.do(t, http.MethodPost, "/v1/contact", validRequest())

	w, _ := s.do(t, http.MethodGet, "/v1/admin/contact-messages", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := auth.IssueAdminToken(adminSecret, "owner", time.Hour)
	require.NoError(t, err)
	w, env := s.do(t, http.MethodGet, "/v1/admin/contact-messages?limit=5", nil, "Authorization", "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)

	var list domain.ContactMessageList
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, 5, list.Limit)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "jane@example.com", list.Items[0].SenderEmail)

	w, _ = s.do(t, http.MethodGet, "/v1/admin/contact-messages?limit=abc", nil, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfileAndHealth(t *testing.T) {
	s := newTestServer(t, nil)

	w, env := s.do(t, http.MethodGet, "/v1/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var profile domain.SiteProfile
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.NotEmpty(t, profile.Profile.Name)

	w, env = s.do(t, http.MethodGet, "/v1/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
}
