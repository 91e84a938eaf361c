// repository/rent/repo.go
package rent

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Saadasw/book-renter/model"

	"github.com/google/uuid"
)

type Repo interface {
	GetBook(ctx context.Context, bookID string) (*model.Book, error)

	InsertRequest(ctx context.Context, req *model.RentRequest) error
	GetRequest(ctx context.Context, requestID string) (*model.RentRequest, error)

	// AcceptRequest flips the request to accepted and the book to rented in
	// one tx. Other pending requests for the book are left untouched.
	AcceptRequest(ctx context.Context, requestID, bookID, renterID string) error

	RejectRequest(ctx context.Context, requestID string) error
	CompletePayment(ctx context.Context, requestID string) error

	ListForUser(ctx context.Context, userID string) ([]model.RentRequest, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) GetBook(ctx context.Context, bookID string) (*model.Book, error) {
	const q = `
		SELECT id, title, author, owner_id, listing_type, status, rental_price, sale_price, image_url, rented_to, created_at
		FROM books
		WHERE id = $1`
	b := &model.Book{}
	err := r.db.QueryRowContext(ctx, q, bookID).Scan(
		&b.ID, &b.Title, &b.Author, &b.OwnerID, &b.ListingType, &b.Status,
		&b.RentalPrice, &b.SalePrice, &b.ImageURL, &b.RentedTo, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

func (r *repo) InsertRequest(ctx context.Context, req *model.RentRequest) error {
	req.ID = uuid.NewString()
	const q = `
		INSERT INTO rent_requests (id, book_id, requester_id, owner_id, status, delivery_address, payment_status)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING request_date`
	return r.db.QueryRowContext(ctx, q,
		req.ID, req.BookID, req.RequesterID, req.OwnerID, req.Status, req.DeliveryAddress, req.PaymentStatus,
	).Scan(&req.RequestDate)
}

func (r *repo) GetRequest(ctx context.Context, requestID string) (*model.RentRequest, error) {
	const q = `
		SELECT id, book_id, requester_id, owner_id, status, request_date, delivery_address, payment_status
		FROM rent_requests
		WHERE id = $1`
	req := &model.RentRequest{}
	err := r.db.QueryRowContext(ctx, q, requestID).Scan(
		&req.ID, &req.BookID, &req.RequesterID, &req.OwnerID,
		&req.Status, &req.RequestDate, &req.DeliveryAddress, &req.PaymentStatus,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return req, nil
}

func (r *repo) AcceptRequest(ctx context.Context, requestID, bookID, renterID string) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const qReq = `
		UPDATE rent_requests
		SET status = 'accepted'
		WHERE id = $1 AND status = 'pending'`
	res, err := tx.ExecContext(ctx, qReq, requestID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = sql.ErrNoRows
		return err
	}

	const qBook = `
		UPDATE books
		SET status = 'rented', rented_to = $2
		WHERE id = $1 AND status = 'available'`
	res, err = tx.ExecContext(ctx, qBook, bookID, renterID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = sql.ErrNoRows
		return err
	}

	return tx.Commit()
}

func (r *repo) RejectRequest(ctx context.Context, requestID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE rent_requests
		SET status = 'rejected'
		WHERE id = $1 AND status = 'pending'`, requestID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repo) CompletePayment(ctx context.Context, requestID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE rent_requests
		SET payment_status = 'completed'
		WHERE id = $1`, requestID)
	return err
}

func (r *repo) ListForUser(ctx context.Context, userID string) ([]model.RentRequest, error) {
	const q = `
		SELECT id, book_id, requester_id, owner_id, status, request_date, delivery_address, payment_status
		FROM rent_requests
		WHERE requester_id = $1 OR owner_id = $1
		ORDER BY request_date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RentRequest
	for rows.Next() {
		var req model.RentRequest
		if err := rows.Scan(
			&req.ID, &req.BookID, &req.RequesterID, &req.OwnerID,
			&req.Status, &req.RequestDate, &req.DeliveryAddress, &req.PaymentStatus,
		); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}
