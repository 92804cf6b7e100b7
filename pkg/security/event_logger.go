package security

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of contact/security event
type EventType string

const (
	EventContactDelivered       EventType = "contact_delivered"
	EventContactDeliveryFailed  EventType = "contact_delivery_failed"
	EventContactValidation      EventType = "contact_validation_failed"
	EventContactSpamBlocked     EventType = "contact_spam_blocked"
	EventContactResultDiscarded EventType = "contact_result_discarded"
	EventRateLimitTriggered     EventType = "rate_limit_triggered"
	EventUnauthorizedAccess     EventType = "unauthorized_access"
)

// Severity is derived from EventType, never from input
type Severity string

const (
	SeverityINFO Severity = "INFO"
	SeverityWARN Severity = "WARN"
	SeverityHIGH Severity = "HIGH"
)

var eventSeverity = map[EventType]Severity{
	EventContactDelivered:       SeverityINFO,
	EventContactResultDiscarded: SeverityINFO,
	EventContactValidation:      SeverityINFO,
	EventContactDeliveryFailed:  SeverityWARN,
	EventContactSpamBlocked:     SeverityWARN,
	EventRateLimitTriggered:     SeverityWARN,
	EventUnauthorizedAccess:     SeverityHIGH,
}

// GetSeverity returns the severity for an event type, WARN when unmapped
func GetSeverity(eventType EventType) Severity {
	if severity, ok := eventSeverity[eventType]; ok {
		return severity
	}
	return SeverityWARN
}

// Event represents one structured event
type Event struct {
	Timestamp    time.Time              `json:"timestamp"`
	Service      string                 `json:"service"`
	Environment  string                 `json:"env"`
	Severity     Severity               `json:"severity"`
	Event        EventType              `json:"event"`
	SubjectType  string                 `json:"subject_type,omitempty"`  // "email", "ip"
	SubjectValue string                 `json:"subject_value,omitempty"` // masked
	IP           string                 `json:"ip,omitempty"`
	RequestID    string                 `json:"request_id,omitempty"`
	Details      map[string]interface{} `json:"details,omitempty"`
}

// EventLogger writes contact and abuse events through zap.
// A nil *EventLogger is valid and drops everything.
type EventLogger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

// NewEventLogger builds a production zap logger writing JSON to stdout
func NewEventLogger(serviceName, environment string) *EventLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		logger, _ = zap.NewProduction()
	}
	return NewEventLoggerWithZap(logger, serviceName, environment)
}

// NewEventLoggerWithZap wraps an existing zap logger (tests use zaptest/observer or zap.NewNop)
func NewEventLoggerWithZap(logger *zap.Logger, serviceName, environment string) *EventLogger {
	return &EventLogger{zapLogger: logger, serviceName: serviceName, environment: environment}
}

// Log logs an event
func (el *EventLogger) Log(ctx context.Context, event Event) {
	if el == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	event.Service = el.serviceName
	event.Environment = el.environment
	event.Severity = GetSeverity(event.Event)

	level := zapcore.InfoLevel
	switch event.Severity {
	case SeverityWARN:
		level = zapcore.WarnLevel
	case SeverityHIGH:
		level = zapcore.ErrorLevel
	}

	fields := []zap.Field{
		zap.String("service", event.Service),
		zap.String("env", event.Environment),
		zap.String("event", string(event.Event)),
		zap.String("severity", string(event.Severity)),
	}
	if event.SubjectType != "" {
		fields = append(fields, zap.String("subject_type", event.SubjectType))
	}
	if event.SubjectValue != "" {
		fields = append(fields, zap.String("subject_value", event.SubjectValue))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		detailsJSON, _ := json.Marshal(event.Details)
		fields = append(fields, zap.String("details", string(detailsJSON)))
	}

	el.zapLogger.Log(level, string(event.Event), fields...)
}

// LogContactDelivered logs an accepted message
func (el *EventLogger) LogContactDelivered(ctx context.Context, senderEmail, ip, requestID, provider string) {
	el.Log(ctx, Event{
		Event:        EventContactDelivered,
		SubjectType:  "email",
		SubjectValue: MaskEmail(senderEmail),
		IP:           ip,
		RequestID:    requestID,
		Details:      map[string]interface{}{"provider": provider},
	})
}

// LogContactDeliveryFailed logs a transport failure. The cause stays server-side.
func (el *EventLogger) LogContactDeliveryFailed(ctx context.Context, senderEmail, ip, requestID, provider string, cause error) {
	details := map[string]interface{}{"provider": provider}
	if cause != nil {
		details["error"] = cause.Error()
	}
	el.Log(ctx, Event{
		Event:        EventContactDeliveryFailed,
		SubjectType:  "email",
		SubjectValue: MaskEmail(senderEmail),
		IP:           ip,
		RequestID:    requestID,
		Details:      details,
	})
}

// LogContactValidationFailed logs which rule rejected a submission
func (el *EventLogger) LogContactValidationFailed(ctx context.Context, ip, requestID, kind string) {
	el.Log(ctx, Event{
		Event:     EventContactValidation,
		IP:        ip,
		RequestID: requestID,
		Details:   map[string]interface{}{"kind": kind},
	})
}

// LogContactSpamBlocked logs a honeypot hit
func (el *EventLogger) LogContactSpamBlocked(ctx context.Context, senderEmail, ip, requestID string) {
	el.Log(ctx, Event{
		Event:        EventContactSpamBlocked,
		SubjectType:  "email",
		SubjectValue: MaskEmail(senderEmail),
		IP:           ip,
		RequestID:    requestID,
	})
}

// LogContactResultDiscarded logs a transport result that arrived after the form was closed
func (el *EventLogger) LogContactResultDiscarded(ctx context.Context, requestID string, delivered bool) {
	el.Log(ctx, Event{
		Event:     EventContactResultDiscarded,
		RequestID: requestID,
		Details:   map[string]interface{}{"delivered": delivered},
	})
}

// LogRateLimitTriggered logs when rate limiting is triggered
func (el *EventLogger) LogRateLimitTriggered(ctx context.Context, ip, requestID, endpoint string) {
	el.Log(ctx, Event{
		Event:        EventRateLimitTriggered,
		SubjectType:  "ip",
		SubjectValue: ip,
		IP:           ip,
		RequestID:    requestID,
		Details:      map[string]interface{}{"endpoint": endpoint},
	})
}

// LogUnauthorizedAccess logs a rejected admin request
func (el *EventLogger) LogUnauthorizedAccess(ctx context.Context, ip, requestID, endpoint, reason string) {
	el.Log(ctx, Event{
		Event:     EventUnauthorizedAccess,
		IP:        ip,
		RequestID: requestID,
		Details:   map[string]interface{}{"endpoint": endpoint, "reason": reason},
	})
}

// Sync flushes any buffered log entries
func (el *EventLogger) Sync() error {
	if el == nil {
		return nil
	}
	return el.zapLogger.Sync()
}

// MaskEmail masks an email for logging (e.g., "j***@example.com")
func MaskEmail(email string) string {
	if len(email) < 3 {
		return "***"
	}
	atIndex := -1
	for i, c := range email {
		if c == '@' {
			atIndex = i
			break
		}
	}
	if atIndex == -1 {
		return HashValue(email)
	}
	if atIndex <= 1 {
		return "***" + email[atIndex:]
	}
	return string(email[0]) + "***" + email[atIndex:]
}

// HashValue creates a SHA256 hash of a value (for logging without PII)
func HashValue(value string) string {
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8])
}
