package booksvc

import (
	"context"
	"strings"

	"github.com/Saadasw/book-renter/model"
	bookrepo "github.com/Saadasw/book-renter/repository/book"
	"github.com/Saadasw/book-renter/service/authz"
	"github.com/Saadasw/book-renter/util/apperr"
)

type Repo = bookrepo.Repo

// Users is the slice of the user repository this service needs to resolve an
// actor or a book owner.
type Users interface {
	ByID(ctx context.Context, id string) (*model.User, error)
}

// CreateInput carries the listing fields; prices are validated against the
// listing type.
type CreateInput struct {
	Title       string
	Author      string
	ListingType model.ListingType
	RentalPrice *float64
	SalePrice   *float64
	ImageURL    *string
}

// SearchFilter composes as a conjunction, applied in order: text query,
// status, listing type, rental price ceiling.
type SearchFilter struct {
	Query          string
	Status         model.BookStatus
	ListingType    model.ListingType
	MaxRentalPrice *float64
}

type Service interface {
	Create(ctx context.Context, ownerID string, in CreateInput) (*model.Book, error)
	List(ctx context.Context) ([]model.Book, error)
	Detail(ctx context.Context, id string) (*model.Book, []model.BookImage, error)
	ByOwner(ctx context.Context, ownerID string) ([]model.Book, error)
	Search(ctx context.Context, f SearchFilter) ([]model.Book, error)
	Delete(ctx context.Context, actorID, bookID string) error
	AddImage(ctx context.Context, actorID, bookID, imageURL string) (*model.BookImage, error)
	Images(ctx context.Context, bookID string) ([]model.BookImage, error)
}

type service struct {
	r     Repo
	users Users
}

func New(r Repo, users Users) Service { return &service{r: r, users: users} }

func validateListing(in CreateInput) error {
	switch in.ListingType {
	case model.ListingRent, model.ListingSale, model.ListingBoth:
	default:
		return apperr.NewValidation("listing type must be rent, sale or both")
	}
	if in.ListingType == model.ListingRent || in.ListingType == model.ListingBoth {
		if in.RentalPrice == nil || *in.RentalPrice <= 0 {
			return apperr.NewValidation("a rental price greater than zero is required for rent listings")
		}
	}
	if in.ListingType == model.ListingSale || in.ListingType == model.ListingBoth {
		if in.SalePrice == nil || *in.SalePrice <= 0 {
			return apperr.NewValidation("a sale price greater than zero is required for sale listings")
		}
	}
	return nil
}

func (s *service) Create(ctx context.Context, ownerID string, in CreateInput) (*model.Book, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Author) == "" {
		return nil, apperr.NewValidation("title and author are required")
	}
	if err := validateListing(in); err != nil {
		return nil, err
	}

	b := &model.Book{
		Title:       strings.TrimSpace(in.Title),
		Author:      strings.TrimSpace(in.Author),
		OwnerID:     ownerID,
		ListingType: in.ListingType,
		Status:      model.BookAvailable,
		RentalPrice: in.RentalPrice,
		SalePrice:   in.SalePrice,
		ImageURL:    in.ImageURL,
	}
	if err := s.r.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) List(ctx context.Context) ([]model.Book, error) { return s.r.List(ctx) }

func (s *service) Detail(ctx context.Context, id string) (*model.Book, []model.BookImage, error) {
	b, err := s.r.ByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if b == nil {
		return nil, nil, apperr.NewNotFound("book not found")
	}
	imgs, err := s.r.Images(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return b, imgs, nil
}

func (s *service) ByOwner(ctx context.Context, ownerID string) ([]model.Book, error) {
	return s.r.ByOwner(ctx, ownerID)
}

// Search filters the full listing in memory. The store returns books in
// insertion order and every filter preserves it.
func (s *service) Search(ctx context.Context, f SearchFilter) ([]model.Book, error) {
	books, err := s.r.List(ctx)
	if err != nil {
		return nil, err
	}

	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		books = keep(books, func(b model.Book) bool {
			return strings.Contains(strings.ToLower(b.Title), q) ||
				strings.Contains(strings.ToLower(b.Author), q)
		})
	}
	if f.Status != "" {
		books = keep(books, func(b model.Book) bool { return b.Status == f.Status })
	}
	if f.ListingType != "" {
		books = keep(books, func(b model.Book) bool {
			if b.ListingType == f.ListingType {
				return true
			}
			// A "both" listing satisfies either a rent or a sale filter.
			return b.ListingType == model.ListingBoth &&
				(f.ListingType == model.ListingRent || f.ListingType == model.ListingSale)
		})
	}
	if f.MaxRentalPrice != nil {
		books = keep(books, func(b model.Book) bool {
			// Books without a rental price always pass the ceiling.
			return b.RentalPrice == nil || *b.RentalPrice <= *f.MaxRentalPrice
		})
	}
	return books, nil
}

func keep(in []model.Book, pred func(model.Book) bool) []model.Book {
	out := in[:0:0]
	for _, b := range in {
		if pred(b) {
			out = append(out, b)
		}
	}
	return out
}

func (s *service) Delete(ctx context.Context, actorID, bookID string) error {
	actor, err := s.users.ByID(ctx, actorID)
	if err != nil {
		return err
	}
	if actor == nil {
		return apperr.NewNotFound("user not found")
	}
	b, err := s.r.ByID(ctx, bookID)
	if err != nil {
		return err
	}
	if b == nil {
		return apperr.NewNotFound("book not found")
	}
	if err := authz.CanDeleteBook(actor, b); err != nil {
		return err
	}
	return s.r.DeleteCascade(ctx, bookID)
}

func (s *service) AddImage(ctx context.Context, actorID, bookID, imageURL string) (*model.BookImage, error) {
	if strings.TrimSpace(imageURL) == "" {
		return nil, apperr.NewValidation("image url is required")
	}
	actor, err := s.users.ByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, apperr.NewNotFound("user not found")
	}
	b, err := s.r.ByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, apperr.NewNotFound("book not found")
	}
	if err := authz.CanAddBookImage(actor, b); err != nil {
		return nil, err
	}

	img := &model.BookImage{BookID: bookID, ImageURL: imageURL}
	if err := s.r.AddImage(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *service) Images(ctx context.Context, bookID string) ([]model.BookImage, error) {
	b, err := s.r.ByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, apperr.NewNotFound("book not found")
	}
	return s.r.Images(ctx, bookID)
}
