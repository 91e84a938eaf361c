// repository/user/repo.go
package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Saadasw/book-renter/model"
)

type Repo interface {
	ByID(ctx context.Context, id string) (*model.User, error)
	UpdateLocation(ctx context.Context, userID string, loc *model.Location) error
	UpdateContactNumber(ctx context.Context, userID, contactNumber string) error
	Visibility(ctx context.Context, userID string) (*model.Visibility, error)
	UpdateVisibility(ctx context.Context, v *model.Visibility) error

	// DeleteCascade removes the user and everything that references them:
	// owned books (with images and requests), requests they made, messages
	// and reports in either direction, and the visibility row.
	DeleteCascade(ctx context.Context, userID string) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) ByID(ctx context.Context, id string) (*model.User, error) {
	const q = `
		SELECT id, name, email, password_hash, is_admin,
		       address, contact_number, latitude, longitude, location_address,
		       report_count, created_at
		FROM users
		WHERE id = $1`
	u := &model.User{}
	var lat, lng sql.NullFloat64
	var locAddr sql.NullString
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsAdmin,
		&u.Address, &u.ContactNumber, &lat, &lng, &locAddr,
		&u.ReportCount, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if lat.Valid && lng.Valid {
		u.Location = &model.Location{Latitude: lat.Float64, Longitude: lng.Float64, Address: locAddr.String}
	}
	return u, nil
}

func (r *repo) UpdateLocation(ctx context.Context, userID string, loc *model.Location) error {
	const q = `
		UPDATE users
		SET latitude = $2, longitude = $3, location_address = $4
		WHERE id = $1`
	var lat, lng any
	var addr any
	if loc != nil {
		lat, lng, addr = loc.Latitude, loc.Longitude, loc.Address
	}
	res, err := r.db.ExecContext(ctx, q, userID, lat, lng, addr)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repo) UpdateContactNumber(ctx context.Context, userID, contactNumber string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET contact_number = $2 WHERE id = $1`,
		userID, contactNumber)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repo) Visibility(ctx context.Context, userID string) (*model.Visibility, error) {
	const q = `
		SELECT user_id, visible_name, visible_email, visible_contact, visible_address, visible_location
		FROM profile_visibility
		WHERE user_id = $1`
	v := &model.Visibility{}
	err := r.db.QueryRowContext(ctx, q, userID).Scan(
		&v.UserID, &v.VisibleName, &v.VisibleEmail, &v.VisibleContact, &v.VisibleAddress, &v.VisibleLocation,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return v, nil
}

func (r *repo) UpdateVisibility(ctx context.Context, v *model.Visibility) error {
	const q = `
		UPDATE profile_visibility
		SET visible_name = $2, visible_email = $3, visible_contact = $4,
		    visible_address = $5, visible_location = $6
		WHERE user_id = $1`
	res, err := r.db.ExecContext(ctx, q,
		v.UserID, v.VisibleName, v.VisibleEmail, v.VisibleContact, v.VisibleAddress, v.VisibleLocation)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repo) DeleteCascade(ctx context.Context, userID string) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	steps := []string{
		`DELETE FROM book_images WHERE book_id IN (SELECT id FROM books WHERE owner_id = $1)`,
		`DELETE FROM rent_requests WHERE book_id IN (SELECT id FROM books WHERE owner_id = $1)`,
		`DELETE FROM books WHERE owner_id = $1`,
		`DELETE FROM rent_requests WHERE requester_id = $1 OR owner_id = $1`,
		`DELETE FROM messages WHERE sender_id = $1 OR receiver_id = $1`,
		`DELETE FROM user_reports WHERE reporter_id = $1 OR reported_user_id = $1`,
		`DELETE FROM profile_visibility WHERE user_id = $1`,
	}
	for _, q := range steps {
		if _, err = tx.ExecContext(ctx, q, userID); err != nil {
			return err
		}
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = sql.ErrNoRows
		return err
	}

	return tx.Commit()
}
