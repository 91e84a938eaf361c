package book

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Saadasw/book-renter/model"

	"github.com/google/uuid"
)

type Repo interface {
	Create(ctx context.Context, b *model.Book) error
	ByID(ctx context.Context, id string) (*model.Book, error)
	List(ctx context.Context) ([]model.Book, error)
	ByOwner(ctx context.Context, ownerID string) ([]model.Book, error)

	// DeleteCascade removes the book plus its images and rent requests.
	DeleteCascade(ctx context.Context, bookID string) error

	AddImage(ctx context.Context, img *model.BookImage) error
	Images(ctx context.Context, bookID string) ([]model.BookImage, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

const bookCols = `id, title, author, owner_id, listing_type, status, rental_price, sale_price, image_url, rented_to, created_at`

func (r *repo) Create(ctx context.Context, b *model.Book) error {
	b.ID = uuid.NewString()
	const q = `
		INSERT INTO books (id, title, author, owner_id, listing_type, status, rental_price, sale_price, image_url)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING created_at`
	return r.db.QueryRowContext(ctx, q,
		b.ID, b.Title, b.Author, b.OwnerID, b.ListingType, b.Status, b.RentalPrice, b.SalePrice, b.ImageURL,
	).Scan(&b.CreatedAt)
}

func scanBook(row interface{ Scan(...any) error }) (*model.Book, error) {
	b := &model.Book{}
	err := row.Scan(
		&b.ID, &b.Title, &b.Author, &b.OwnerID, &b.ListingType, &b.Status,
		&b.RentalPrice, &b.SalePrice, &b.ImageURL, &b.RentedTo, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *repo) ByID(ctx context.Context, id string) (*model.Book, error) {
	b, err := scanBook(r.db.QueryRowContext(ctx,
		`SELECT `+bookCols+` FROM books WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

// List returns every book in insertion order; search filtering happens in the
// service layer and relies on this order being stable.
func (r *repo) List(ctx context.Context) ([]model.Book, error) {
	const q = `SELECT ` + bookCols + ` FROM books ORDER BY created_at ASC, id ASC`
	return r.listQuery(ctx, q)
}

func (r *repo) ByOwner(ctx context.Context, ownerID string) ([]model.Book, error) {
	const q = `SELECT ` + bookCols + ` FROM books WHERE owner_id = $1 ORDER BY created_at ASC, id ASC`
	return r.listQuery(ctx, q, ownerID)
}

func (r *repo) listQuery(ctx context.Context, q string, args ...any) ([]model.Book, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

func (r *repo) DeleteCascade(ctx context.Context, bookID string) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM book_images WHERE book_id = $1`, bookID); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM rent_requests WHERE book_id = $1`, bookID); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, bookID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = sql.ErrNoRows
		return err
	}

	return tx.Commit()
}

func (r *repo) AddImage(ctx context.Context, img *model.BookImage) error {
	img.ID = uuid.NewString()
	const q = `
		INSERT INTO book_images (id, book_id, image_url)
		VALUES ($1,$2,$3)
		RETURNING uploaded_at`
	return r.db.QueryRowContext(ctx, q, img.ID, img.BookID, img.ImageURL).Scan(&img.UploadedAt)
}

func (r *repo) Images(ctx context.Context, bookID string) ([]model.BookImage, error) {
	const q = `
		SELECT id, book_id, image_url, uploaded_at
		FROM book_images
		WHERE book_id = $1
		ORDER BY uploaded_at ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, q, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.BookImage
	for rows.Next() {
		var img model.BookImage
		if err := rows.Scan(&img.ID, &img.BookID, &img.ImageURL, &img.UploadedAt); err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}
