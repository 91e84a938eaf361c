// Package rent implements the rental lifecycle: request, accept, reject,
// complete payment. Book status and request status move together through
// AcceptRequest; there is no transition back out of rented.
package rent

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Saadasw/book-renter/model"
	rentrepo "github.com/Saadasw/book-renter/repository/rent"
	"github.com/Saadasw/book-renter/util/apperr"
)

type Repo = rentrepo.Repo

type Service interface {
	// Request creates a pending rent request for an available book.
	Request(ctx context.Context, bookID, requesterID string, deliveryAddress *string) (*model.RentRequest, error)

	// Accept marks the request accepted and the book rented. Other pending
	// requests for the same book stay pending; the owner resolves them by
	// hand. Accepting a second request for a rented book fails.
	Accept(ctx context.Context, actorID, requestID string) error

	Reject(ctx context.Context, actorID, requestID string) error

	// CompletePayment is requester-only and idempotent.
	CompletePayment(ctx context.Context, actorID, requestID string) error

	ForUser(ctx context.Context, userID string) ([]model.RentRequest, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Request(ctx context.Context, bookID, requesterID string, deliveryAddress *string) (*model.RentRequest, error) {
	book, err := s.r.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, apperr.NewNotFound("book not found")
	}
	if book.Status != model.BookAvailable {
		return nil, apperr.NewInvalidState("this book is not available")
	}
	if book.OwnerID == requesterID {
		return nil, apperr.NewInvalidState("you cannot request your own book")
	}

	req := &model.RentRequest{
		BookID:          bookID,
		RequesterID:     requesterID,
		OwnerID:         book.OwnerID,
		Status:          model.RequestPending,
		DeliveryAddress: deliveryAddress,
		PaymentStatus:   model.PaymentPending,
	}
	if err := s.r.InsertRequest(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *service) Accept(ctx context.Context, actorID, requestID string) error {
	req, err := s.r.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if req == nil {
		return apperr.NewNotFound("rent request not found")
	}
	if req.OwnerID != actorID {
		return apperr.NewUnauthorized("only the book owner can accept a rent request")
	}
	if req.Status != model.RequestPending {
		return apperr.NewInvalidState("rent request is already " + string(req.Status))
	}

	book, err := s.r.GetBook(ctx, req.BookID)
	if err != nil {
		return err
	}
	if book == nil {
		return apperr.NewNotFound("book not found")
	}
	if book.Status != model.BookAvailable {
		return apperr.NewInvalidState("this book is no longer available")
	}

	if err := s.r.AcceptRequest(ctx, requestID, req.BookID, req.RequesterID); err != nil {
		// The guarded UPDATEs hit zero rows when someone else resolved the
		// request or took the book between the checks above and the tx.
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NewInvalidState("rent request or book state changed, try again")
		}
		return err
	}
	return nil
}

func (s *service) Reject(ctx context.Context, actorID, requestID string) error {
	req, err := s.r.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if req == nil {
		return apperr.NewNotFound("rent request not found")
	}
	if req.OwnerID != actorID {
		return apperr.NewUnauthorized("only the book owner can reject a rent request")
	}
	if req.Status != model.RequestPending {
		return apperr.NewInvalidState("rent request is already " + string(req.Status))
	}
	// The book is untouched: rejection never changes availability.
	if err := s.r.RejectRequest(ctx, requestID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NewInvalidState("rent request state changed, try again")
		}
		return err
	}
	return nil
}

func (s *service) CompletePayment(ctx context.Context, actorID, requestID string) error {
	req, err := s.r.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if req == nil {
		return apperr.NewNotFound("rent request not found")
	}
	if req.RequesterID != actorID {
		return apperr.NewUnauthorized("only the requester can complete payment")
	}
	if req.PaymentStatus == model.PaymentCompleted {
		// Second call is a no-op success.
		return nil
	}
	if req.Status != model.RequestAccepted {
		return apperr.NewInvalidState("payment is only possible on an accepted request")
	}
	return s.r.CompletePayment(ctx, requestID)
}

func (s *service) ForUser(ctx context.Context, userID string) ([]model.RentRequest, error) {
	return s.r.ListForUser(ctx, userID)
}
