package book

import "github.com/Saadasw/book-renter/model"

type CreateBookReq struct {
	Title       string   `json:"title" validate:"required"`
	Author      string   `json:"author" validate:"required"`
	ListingType string   `json:"listing_type" validate:"required,oneof=rent sale both"`
	RentalPrice *float64 `json:"rental_price,omitempty"`
	SalePrice   *float64 `json:"sale_price,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
}

type AddImageReq struct {
	ImageURL string `json:"image_url" validate:"required,url"`
}

// bookResp keeps the is_rented field of the old API shape; it is derived from
// status, never stored.
type bookResp struct {
	model.Book
	IsRented bool `json:"is_rented"`
}

func toResp(b model.Book) bookResp {
	return bookResp{Book: b, IsRented: b.IsRented()}
}

func toRespList(books []model.Book) []bookResp {
	out := make([]bookResp, 0, len(books))
	for _, b := range books {
		out = append(out, toResp(b))
	}
	return out
}
