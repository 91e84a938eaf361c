// model/rent.go
package model

import "time"

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestRejected RequestStatus = "rejected"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

// RentRequest ties a requester to a book. OwnerID is copied from the book at
// creation time so the row stays meaningful if the book is later deleted.
type RentRequest struct {
	ID              string        `json:"id"`
	BookID          string        `json:"book_id"`
	RequesterID     string        `json:"requester_id"`
	OwnerID         string        `json:"owner_id"`
	Status          RequestStatus `json:"status"`
	RequestDate     time.Time     `json:"request_date"`
	DeliveryAddress *string       `json:"delivery_address,omitempty"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
}
