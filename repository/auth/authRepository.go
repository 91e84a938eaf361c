package auth

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Saadasw/book-renter/model"

	"github.com/google/uuid"
)

type Repo interface {
	Create(ctx context.Context, u *model.User) error
	ByEmail(ctx context.Context, email string) (*model.User, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

// Create inserts the user plus their default visibility row in one tx.
func (r *repo) Create(ctx context.Context, u *model.User) (err error) {
	u.ID = uuid.NewString()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO users(id, name, email, password_hash, is_admin)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING created_at`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.IsAdmin,
	).Scan(&u.CreatedAt)
	if err != nil {
		return err
	}

	// Name visible by default, everything else opt-in.
	if _, err = tx.ExecContext(ctx, `
		INSERT INTO profile_visibility(user_id, visible_name, visible_email, visible_contact, visible_address, visible_location)
		VALUES ($1, TRUE, FALSE, FALSE, FALSE, FALSE)`,
		u.ID,
	); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *repo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := r.db.QueryRowContext(ctx, `
        SELECT id, name, email, password_hash, is_admin, report_count, created_at
        FROM users
        WHERE lower(email) = lower($1)`,
		email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.ReportCount, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}
