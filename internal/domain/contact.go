package domain

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// MinMessageLength is the shortest accepted message, counted in runes after trimming.
const MinMessageLength = 10

// Status messages shown to the visitor
const (
	MsgMissingName        = "Please enter your name"
	MsgMissingEmail       = "Please enter your email"
	MsgInvalidEmailFormat = "Please enter a valid email address"
	MsgMissingMessage     = "Please enter a message"
	MsgMessageTooShort    = "Message must be at least 10 characters"
	MsgSubmitSuccess      = "Thanks for reaching out! I'll get back to you soon."
)

// Whitespace here is the browser's notion of it: ASCII space and controls,
// every Unicode space separator and the byte order mark.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

func isFormSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Z, r)
}

// TrimForm strips leading and trailing whitespace the way the contact form does.
func TrimForm(s string) string {
	return strings.TrimFunc(s, isFormSpace)
}

var (
	ErrUnknownField         = errors.New("unknown form field")
	ErrControllerClosed     = errors.New("contact form is closed")
	ErrTransportUnavailable = errors.New("message transport is not configured")
	ErrDeliveryFailed       = errors.New("message delivery failed")
	ErrSessionNotFound      = errors.New("contact session not found")
	ErrTooManySessions      = errors.New("too many open contact sessions")
)

// FieldName identifies one of the editable form fields.
type FieldName string

const (
	NameField    FieldName = "name"
	EmailField   FieldName = "email"
	MessageField FieldName = "message"
)

// ParseFieldName accepts exactly "name", "email" or "message".
func ParseFieldName(s string) (FieldName, error) {
	switch f := FieldName(s); f {
	case NameField, EmailField, MessageField:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// FormFields is the raw, untrimmed state of the contact form.
type FormFields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Payload normalizes the fields into what the transport receives.
func (f FormFields) Payload() MessagePayload {
	return MessagePayload{
		SenderName:  TrimForm(f.Name),
		SenderEmail: TrimForm(f.Email),
		MessageBody: TrimForm(f.Message),
	}
}

// ValidationKind enumerates the client-side validation failures.
type ValidationKind string

const (
	MissingName        ValidationKind = "missing_name"
	MissingEmail       ValidationKind = "missing_email"
	InvalidEmailFormat ValidationKind = "invalid_email_format"
	MissingMessage     ValidationKind = "missing_message"
	MessageTooShort    ValidationKind = "message_too_short"
)

var validationMessages = map[ValidationKind]string{
	MissingName:        MsgMissingName,
	MissingEmail:       MsgMissingEmail,
	InvalidEmailFormat: MsgInvalidEmailFormat,
	MissingMessage:     MsgMissingMessage,
	MessageTooShort:    MsgMessageTooShort,
}

// ValidationError is the first rule a FormFields snapshot broke.
type ValidationError struct {
	Kind    ValidationKind `json:"kind"`
	Message string         `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(kind ValidationKind) *ValidationError {
	return &ValidationError{Kind: kind, Message: validationMessages[kind]}
}

// IsValidationError reports whether err carries a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Validate returns the first failing rule in a fixed order, or nil.
// The email pattern is matched against the raw value, so surrounding
// whitespace makes an address invalid.
func Validate(f FormFields) *ValidationError {
	if TrimForm(f.Name) == "" {
		return newValidationError(MissingName)
	}
	if TrimForm(f.Email) == "" {
		return newValidationError(MissingEmail)
	}
	if !IsValidEmail(f.Email) {
		return newValidationError(InvalidEmailFormat)
	}
	msg := TrimForm(f.Message)
	if msg == "" {
		return newValidationError(MissingMessage)
	}
	if utf8.RuneCountInString(msg) < MinMessageLength {
		return newValidationError(MessageTooShort)
	}
	return nil
}

// IsValidEmail checks the loose local@domain.tld shape the contact form accepts.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// SubmissionState is one variant of the submission state machine.
type SubmissionState string

const (
	StateIdle       SubmissionState = "idle"
	StateSubmitting SubmissionState = "submitting"
	StateSuccess    SubmissionState = "success"
	StateError      SubmissionState = "error"
)

// SubmissionStatus is the single externally observable outcome of the form.
type SubmissionStatus struct {
	State   SubmissionState `json:"state"`
	Message string          `json:"message,omitempty"`
}

func IdleStatus() SubmissionStatus       { return SubmissionStatus{State: StateIdle} }
func SubmittingStatus() SubmissionStatus { return SubmissionStatus{State: StateSubmitting} }

func SuccessStatus(msg string) SubmissionStatus {
	return SubmissionStatus{State: StateSuccess, Message: msg}
}

func ErrorStatus(msg string) SubmissionStatus {
	return SubmissionStatus{State: StateError, Message: msg}
}

// DeliveryFailedMessage is the visitor-facing text for any transport failure.
func DeliveryFailedMessage(fallbackEmail string) string {
	return "Something went wrong. Please try again or email me directly at " + fallbackEmail
}

// FormSnapshot is what the presentation layer renders.
type FormSnapshot struct {
	ID     string           `json:"id,omitempty"`
	Fields FormFields       `json:"fields"`
	Status SubmissionStatus `json:"status"`
}

// MessagePayload is the normalized message handed to a transport.
type MessagePayload struct {
	SenderName  string `json:"sender_name"`
	SenderEmail string `json:"sender_email"`
	MessageBody string `json:"message_body"`
}

// SendReceipt describes an accepted message.
type SendReceipt struct {
	Provider  string    `json:"provider"`
	MessageID string    `json:"message_id,omitempty"`
	SentAt    time.Time `json:"sent_at"`
}

// MessageSender delivers contact messages through an external provider.
type MessageSender interface {
	SendMessage(ctx context.Context, payload MessagePayload) (SendReceipt, error)
	// Name identifies the provider in logs and the inbox.
	Name() string
	IsConfigured() bool
}

// ContactRequest represents a one-shot contact form submission
type ContactRequest struct {
	Name    string `json:"name" binding:"max=100,single_line,no_control"`
	Email   string `json:"email" binding:"max=254,single_line,no_control"`
	Message string `json:"message" binding:"max=5000,no_control"`
	// Website is a honeypot: humans never see it, bots fill it in.
	Website string `json:"website,omitempty" binding:"max=200"`
}

// Fields drops the honeypot.
func (r *ContactRequest) Fields() FormFields {
	return FormFields{Name: r.Name, Email: r.Email, Message: r.Message}
}

// UpdateFieldRequest edits one field of a contact session. Name and email
// values must also be a single line; the handler checks that per field.
type UpdateFieldRequest struct {
	Field string `json:"field" binding:"required,oneof=name email message"`
	Value string `json:"value" binding:"max=5000,no_control"`
}

// ContactUsecase defines the interface for one-shot contact form submissions
type ContactUsecase interface {
	// SendContactMessage validates and delivers a message. The returned status is
	// always populated; the error classifies non-success outcomes.
	SendContactMessage(ctx context.Context, req *ContactRequest) (SubmissionStatus, error)
}

// ContactSessionUsecase drives server-held contact forms, one per visitor.
type ContactSessionUsecase interface {
	Create() (FormSnapshot, error)
	Snapshot(id string) (FormSnapshot, error)
	UpdateField(id string, field FieldName, value string) (FormSnapshot, error)
	Submit(ctx context.Context, id string) (FormSnapshot, error)
	Reset(id string) (FormSnapshot, error)
	Close(id string) error
}
