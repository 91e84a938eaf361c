// model/book.go
package model

import "time"

type ListingType string

const (
	ListingRent ListingType = "rent"
	ListingSale ListingType = "sale"
	ListingBoth ListingType = "both"
)

type BookStatus string

const (
	BookAvailable BookStatus = "available"
	BookRented    BookStatus = "rented"
	BookSold      BookStatus = "sold"
)

// Book is a listing. Status only ever moves available->rented (accepted rent
// request) or available->sold; there is no transition back.
type Book struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Author      string      `json:"author"`
	OwnerID     string      `json:"owner_id"`
	ListingType ListingType `json:"listing_type"`
	Status      BookStatus  `json:"status"`
	RentalPrice *float64    `json:"rental_price,omitempty"`
	SalePrice   *float64    `json:"sale_price,omitempty"`
	ImageURL    *string     `json:"image_url,omitempty"`
	RentedTo    *string     `json:"rented_to,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// IsRented is derived from Status; the status column is the source of truth.
func (b *Book) IsRented() bool { return b.Status == BookRented }

type BookImage struct {
	ID         string    `json:"id"`
	BookID     string    `json:"book_id"`
	ImageURL   string    `json:"image_url"`
	UploadedAt time.Time `json:"uploaded_at"`
}
