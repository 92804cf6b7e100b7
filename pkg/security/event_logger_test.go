package security_test

import (
	"context"
	"errors"
	"testing"

	"go-portfolio-backend/pkg/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@example.com", security.MaskEmail("jane@example.com"))
	assert.Equal(t, "***@example.com", security.MaskEmail("j@example.com"))
	assert.Equal(t, "***", security.MaskEmail("ab"))
	assert.Len(t, security.MaskEmail("not-an-email"), 16)
}

func TestEventLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	el := security.NewEventLoggerWithZap(zap.New(core), "portfolio", "test")

	el.LogContactDeliveryFailed(context.Background(), "jane@example.com", "10.0.0.1", "req-1", "smtp", errors.New("dial tcp: timeout"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, string(security.EventContactDeliveryFailed), entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "j***@example.com", fields["subject_value"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Contains(t, fields["details"], "dial tcp: timeout")
}

func TestEventLoggerNilSafe(t *testing.T) {
	var el *security.EventLogger
	assert.NotPanics(t, func() {
		el.LogContactSpamBlocked(context.Background(), "bot@spam.example", "1.2.3.4", "")
		_ = el.Sync()
	})
}

func TestGetSeverity(t *testing.T) {
	assert.Equal(t, security.SeverityINFO, security.GetSeverity(security.EventContactDelivered))
	assert.Equal(t, security.SeverityHIGH, security.GetSeverity(security.EventUnauthorizedAccess))
	assert.Equal(t, security.SeverityWARN, security.GetSeverity("something_new"))
}
