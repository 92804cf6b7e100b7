package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go-portfolio-backend/internal/domain"
)

const contactMessagesSchema = `
CREATE TABLE IF NOT EXISTS contact_messages (
	id                  TEXT PRIMARY KEY,
	sender_name         TEXT NOT NULL,
	sender_email        TEXT NOT NULL,
	message             TEXT NOT NULL,
	status              TEXT NOT NULL,
	provider            TEXT NOT NULL DEFAULT '',
	provider_message_id TEXT NOT NULL DEFAULT '',
	error               TEXT NOT NULL DEFAULT '',
	remote_ip           TEXT NOT NULL DEFAULT '',
	user_agent          TEXT NOT NULL DEFAULT '',
	created_at          TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_contact_messages_created_at ON contact_messages (created_at);
`

// Timestamps are stored as fixed-width UTC text so they sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// ContactMessageRepo stores the contact inbox
type ContactMessageRepo struct {
	db *sql.DB
}

func NewContactMessageRepository(db *sql.DB) *ContactMessageRepo {
	return &ContactMessageRepo{db: db}
}

var _ domain.ContactMessageRepository = (*ContactMessageRepo)(nil)

// Migrate creates the inbox table if it does not exist
func (r *ContactMessageRepo) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, contactMessagesSchema); err != nil {
		return fmt.Errorf("migrate contact_messages: %w", err)
	}
	return nil
}

func (r *ContactMessageRepo) Create(ctx context.Context, msg *domain.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (
			id, sender_name, sender_email, message, status, provider,
			provider_message_id, error, remote_ip, user_agent, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		msg.ID, msg.SenderName, msg.SenderEmail, msg.Message, msg.Status, msg.Provider,
		msg.ProviderMessageID, msg.Error, msg.RemoteIP, msg.UserAgent,
		msg.CreatedAt.UTC().Format(timeLayout),
	)
	return err
}

// List returns a page of messages, newest first
func (r *ContactMessageRepo) List(ctx context.Context, limit, offset int) ([]domain.ContactMessage, error) {
	query := `
		SELECT id, sender_name, sender_email, message, status, provider,
		       provider_message_id, error, remote_ip, user_agent, created_at
		FROM contact_messages
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.ContactMessage
	for rows.Next() {
		var m domain.ContactMessage
		var createdAt string
		if err := rows.Scan(
			&m.ID, &m.SenderName, &m.SenderEmail, &m.Message, &m.Status, &m.Provider,
			&m.ProviderMessageID, &m.Error, &m.RemoteIP, &m.UserAgent, &createdAt,
		); err != nil {
			return nil, err
		}
		if m.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
			return nil, fmt.Errorf("contact message %s: bad created_at %q: %w", m.ID, createdAt, err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *ContactMessageRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&n)
	return n, err
}
