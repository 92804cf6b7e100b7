package postgres

import (
	"context"
	"fmt"

	"go-portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

const contactMessagesSchema = `
CREATE TABLE IF NOT EXISTS contact_messages (
	id                  UUID PRIMARY KEY,
	sender_name         TEXT NOT NULL,
	sender_email        TEXT NOT NULL,
	message             TEXT NOT NULL,
	status              TEXT NOT NULL,
	provider            TEXT NOT NULL DEFAULT '',
	provider_message_id TEXT NOT NULL DEFAULT '',
	error               TEXT NOT NULL DEFAULT '',
	remote_ip           TEXT NOT NULL DEFAULT '',
	user_agent          TEXT NOT NULL DEFAULT '',
	created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_contact_messages_created_at ON contact_messages (created_at DESC);
`

// ContactMessageRepo stores the contact inbox
type ContactMessageRepo struct {
	db *pgxpool.Pool
}

func NewContactMessageRepository(db *pgxpool.Pool) *ContactMessageRepo {
	return &ContactMessageRepo{db: db}
}

var _ domain.ContactMessageRepository = (*ContactMessageRepo)(nil)

// Migrate creates the inbox table if it does not exist
func (r *ContactMessageRepo) Migrate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, contactMessagesSchema); err != nil {
		return fmt.Errorf("migrate contact_messages: %w", err)
	}
	return nil
}

func (r *ContactMessageRepo) Create(ctx context.Context, msg *domain.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (
			id, sender_name, sender_email, message, status, provider,
			provider_message_id, error, remote_ip, user_agent, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(ctx, query,
		msg.ID, msg.SenderName, msg.SenderEmail, msg.Message, msg.Status, msg.Provider,
		msg.ProviderMessageID, msg.Error, msg.RemoteIP, msg.UserAgent, msg.CreatedAt,
	)
	return err
}

// List returns a page of messages, newest first
func (r *ContactMessageRepo) List(ctx context.Context, limit, offset int) ([]domain.ContactMessage, error) {
	query := `
		SELECT id::text, sender_name, sender_email, message, status, provider,
		       provider_message_id, error, remote_ip, user_agent, created_at
		FROM contact_messages
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.ContactMessage
	for rows.Next() {
		var m domain.ContactMessage
		if err := rows.Scan(
			&m.ID, &m.SenderName, &m.SenderEmail, &m.Message, &m.Status, &m.Provider,
			&m.ProviderMessageID, &m.Error, &m.RemoteIP, &m.UserAgent, &m.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *ContactMessageRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&n)
	return n, err
}
