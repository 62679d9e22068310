package storage

import (
	"context"

	"ravintola-sinet/menu-svc/internal/domain"
)

func (r *PostgresRepository) CreateMessage(ctx context.Context, msg *domain.ContactMessage) error {
	return r.DB.QueryRowContext(ctx,
		"INSERT INTO contact_messages (name, email, message) VALUES ($1, $2, $3) RETURNING id, created_at",
		msg.Name, msg.Email, msg.Message,
	).Scan(&msg.ID, &msg.CreatedAt)
}

func (r *PostgresRepository) ListMessages(ctx context.Context, limit int) ([]domain.ContactMessage, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, email, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []domain.ContactMessage{}
	for rows.Next() {
		var m domain.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
