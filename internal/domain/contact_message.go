package domain

import (
	"context"
	"time"
)

// Inbox status constants
const (
	ContactMessageDelivered = "delivered"
	ContactMessageFailed    = "failed"
	ContactMessageSpam      = "spam"
)

// ContactMessage is an inbox record of one submission attempt that reached the transport
// (or was caught by the honeypot).
type ContactMessage struct {
	ID                string    `json:"id"`
	SenderName        string    `json:"sender_name"`
	SenderEmail       string    `json:"sender_email"`
	Message           string    `json:"message"`
	Status            string    `json:"status"` // delivered | failed | spam
	Provider          string    `json:"provider"`
	ProviderMessageID string    `json:"provider_message_id,omitempty"`
	Error             string    `json:"error,omitempty"`
	RemoteIP          string    `json:"remote_ip,omitempty"`
	UserAgent         string    `json:"user_agent,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// ContactMessageList is a page of inbox records
type ContactMessageList struct {
	Items  []ContactMessage `json:"items"`
	Total  int              `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

// ContactMessageRepository persists inbox records
type ContactMessageRepository interface {
	Create(ctx context.Context, msg *ContactMessage) error
	List(ctx context.Context, limit, offset int) ([]ContactMessage, error)
	Count(ctx context.Context) (int, error)
}

// InboxUsecase lets the site owner read recorded submissions
type InboxUsecase interface {
	ListMessages(ctx context.Context, limit, offset int) (*ContactMessageList, error)
}
