package message

import (
	"context"
	"database/sql"

	"github.com/Saadasw/book-renter/model"

	"github.com/google/uuid"
)

type Repo interface {
	Insert(ctx context.Context, m *model.Message) error
	ListForUser(ctx context.Context, userID string) ([]model.Message, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Insert(ctx context.Context, m *model.Message) error {
	m.ID = uuid.NewString()
	const q = `
		INSERT INTO messages (id, sender_id, receiver_id, content, read)
		VALUES ($1,$2,$3,$4,FALSE)
		RETURNING created_at`
	return r.db.QueryRowContext(ctx, q, m.ID, m.SenderID, m.ReceiverID, m.Content).Scan(&m.CreatedAt)
}

func (r *repo) ListForUser(ctx context.Context, userID string) ([]model.Message, error) {
	const q = `
		SELECT id, sender_id, receiver_id, content, read, created_at
		FROM messages
		WHERE sender_id = $1 OR receiver_id = $1
		ORDER BY created_at ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.Read, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
