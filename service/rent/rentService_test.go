// service/rent/rent_service_test.go
package rent_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Saadasw/book-renter/model"
	rentsvc "github.com/Saadasw/book-renter/service/rent"
	"github.com/Saadasw/book-renter/util/apperr"
)

type repoMock struct {
	getBookFn         func(ctx context.Context, bookID string) (*model.Book, error)
	insertRequestFn   func(ctx context.Context, req *model.RentRequest) error
	getRequestFn      func(ctx context.Context, requestID string) (*model.RentRequest, error)
	acceptRequestFn   func(ctx context.Context, requestID, bookID, renterID string) error
	rejectRequestFn   func(ctx context.Context, requestID string) error
	completePaymentFn func(ctx context.Context, requestID string) error
	listForUserFn     func(ctx context.Context, userID string) ([]model.RentRequest, error)
}

func (m *repoMock) GetBook(ctx context.Context, bookID string) (*model.Book, error) {
	return m.getBookFn(ctx, bookID)
}
func (m *repoMock) InsertRequest(ctx context.Context, req *model.RentRequest) error {
	return m.insertRequestFn(ctx, req)
}
func (m *repoMock) GetRequest(ctx context.Context, requestID string) (*model.RentRequest, error) {
	return m.getRequestFn(ctx, requestID)
}
func (m *repoMock) AcceptRequest(ctx context.Context, requestID, bookID, renterID string) error {
	return m.acceptRequestFn(ctx, requestID, bookID, renterID)
}
func (m *repoMock) RejectRequest(ctx context.Context, requestID string) error {
	return m.rejectRequestFn(ctx, requestID)
}
func (m *repoMock) CompletePayment(ctx context.Context, requestID string) error {
	return m.completePaymentFn(ctx, requestID)
}
func (m *repoMock) ListForUser(ctx context.Context, userID string) ([]model.RentRequest, error) {
	return m.listForUserFn(ctx, userID)
}

func availableBook(id, owner string) *model.Book {
	price := 20.0
	return &model.Book{
		ID:          id,
		Title:       "Clean Code",
		Author:      "Robert Martin",
		OwnerID:     owner,
		ListingType: model.ListingRent,
		Status:      model.BookAvailable,
		RentalPrice: &price,
	}
}

func TestRequest_CreatesPendingRequest(t *testing.T) {
	var inserted *model.RentRequest
	m := &repoMock{
		getBookFn: func(ctx context.Context, bookID string) (*model.Book, error) {
			return availableBook("b1", "u1"), nil
		},
		insertRequestFn: func(ctx context.Context, req *model.RentRequest) error {
			req.ID = "r1"
			inserted = req
			return nil
		},
	}
	s := rentsvc.New(m)

	req, err := s.Request(context.Background(), "b1", "u2", nil)
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if inserted == nil {
		t.Fatal("expected InsertRequest call")
	}
	if req.Status != model.RequestPending {
		t.Fatalf("status = %s; want pending", req.Status)
	}
	if req.PaymentStatus != model.PaymentPending {
		t.Fatalf("payment = %s; want pending", req.PaymentStatus)
	}
	if req.OwnerID != "u1" {
		t.Fatalf("ownerID = %s; want u1 (copied from book)", req.OwnerID)
	}
	if req.RequesterID != "u2" || req.BookID != "b1" {
		t.Fatalf("got requester=%s book=%s", req.RequesterID, req.BookID)
	}
}

func TestRequest_BookNotFound(t *testing.T) {
	m := &repoMock{
		getBookFn: func(ctx context.Context, bookID string) (*model.Book, error) { return nil, nil },
	}
	s := rentsvc.New(m)

	_, err := s.Request(context.Background(), "missing", "u2", nil)
	if apperr.KindOf(err) != apperr.NotFound {
		t.Fatalf("kind = %q; want NotFound", apperr.KindOf(err))
	}
}

func TestRequest_BookUnavailable(t *testing.T) {
	m := &repoMock{
		getBookFn: func(ctx context.Context, bookID string) (*model.Book, error) {
			b := availableBook("b1", "u1")
			b.Status = model.BookRented
			return b, nil
		},
	}
	s := rentsvc.New(m)

	_, err := s.Request(context.Background(), "b1", "u2", nil)
	if apperr.KindOf(err) != apperr.InvalidState {
		t.Fatalf("kind = %q; want InvalidState", apperr.KindOf(err))
	}
}

func TestRequest_OwnBook(t *testing.T) {
	m := &repoMock{
		getBookFn: func(ctx context.Context, bookID string) (*model.Book, error) {
			return availableBook("b1", "u1"), nil
		},
	}
	s := rentsvc.New(m)

	if _, err := s.Request(context.Background(), "b1", "u1", nil); apperr.KindOf(err) != apperr.InvalidState {
		t.Fatalf("kind = %q; want InvalidState", apperr.KindOf(err))
	}
}

func pendingRequest(id, bookID, requester, owner string) *model.RentRequest {
	return &model.RentRequest{
		ID:            id,
		BookID:        bookID,
		RequesterID:   requester,
		OwnerID:       owner,
		Status:        model.RequestPending,
		PaymentStatus: model.PaymentPending,
	}
}

func TestAccept_MarksBookRented(t *testing.T) {
	var gotRequestID, gotBookID, gotRenter string
	m := &repoMock{
		getRequestFn: func(ctx context.Context, requestID string) (*model.RentRequest, error) {
			return pendingRequest("r1", "b1", "u2", "u1"), nil
		},
		getBookFn: func(ctx context.Context, bookID string) (*model.Book, error) {
			return availableBook("b1", "u1"), nil
		},
		acceptRequestFn: func(ctx context.Context, requestID, bookID, renterID string) error {
			gotRequestID, gotBookID, gotRenter = requestID, bookID, renterID
			return nil
		},
	}
	s := rentsvc.New(m)

	if err := s.Accept(context.Background(), "u1", "r1"); err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if gotRequestID != "r1" || gotBookID != "b1" || gotRenter != "u2" {
		t.Fatalf("AcceptRequest(%s,%s,%s); want (r1,b1,u2)", gotRequestID, gotBookID, gotRenter)
	}
}

func TestAccept_NotOwner(t *testing.T) {
	m := &repoMock{
		getRequestFn: func(ctx context.Context, requestID string) (*model.RentRequest, error) {
			return pendingRequest("r1", "b1", "u2", "u1"), nil
		},
	}
	s := rentsvc.New(m)

	if err := s.Accept(context.Background(), "u3", "r1"); apperr.KindOf(err) != apperr.Unauthorized {
		t.Fatalf("kind = %q; want Unauthorized", apperr.KindOf(err))
	}
}

// Accepting one of several pending requests for a book must not touch the
// others; the owner resolves them manually.
func TestAccept_LeavesSiblingRequestsPending(t *testing.T) {
	rejected := 0
	m := &repoMock{
		getRequestFn: func(ctx context.Context, requestID string) (*model.RentRequest, error) {
			return pendingRequest(requestID, "b1", "u2", "u1"), nil
		},
		getBookFn: func(ctx context.Context, bookID string) (*model.Book, error) {
			return availableBook("b1", "u1"), nil
		},
		acceptRequestFn: func(ctx context.Context, requestID, bookID, renterID string) error { return nil },
		rejectRequestFn: func(ctx context.Context, requestID string) error {
			rejected++
			return nil
		},
	}
	s := rentsvc.New(m)

	if err := s.Accept(context.Background(), "u1", "r1"); err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if rejected != 0 {
		t.Fatalf("sibling requests were rejected %d times; want 0", rejected)
	}
}

// A concurrent acceptance can slip in between the service's checks and the
// guarded UPDATEs; the zero-row result surfaces as a state conflict, not an
// internal error.
func TestAccept_LostRaceIsStateConflict(t *testing.T) {
	m := &repoMock{
		getRequestFn: func(ctx context.Context, requestID string) (*model.RentRequest, error) {
			return pendingRequest("r1", "b1", "u2", "u1"), nil
		},
		getBookFn: func(ctx context.Context, bookID string) (*model.Book, error) {
			return availableBook("b1", "u1"), nil
		},
		acceptRequestFn: func(ctx context.Context, requestID, bookID, renterID string) error {
			return sql.ErrNoRows
		},
	}
	s := rentsvc.New(m)

	if err := s.Accept(context.Background(), "u1", "r1"); apperr.KindOf(err) != apperr.InvalidState {
		t.Fatalf("kind = %q; want InvalidState", apperr.KindOf(err))
	}
}

func TestReject_LostRaceIsStateConflict(t *testing.T) {
	m := &repoMock{
		getRequestFn: func(ctx context.Context, requestID string) (*model.RentRequest, error) {
			return pendingRequest("r1", "b1", "u2", "u1"), nil
		},
		rejectRequestFn: func(ctx context.Context, requestID string) error {
			return sql.ErrNoRows
		},
	}
	s := rentsvc.New(m)

	if err := s.Reject(context.Background(), "u1", "r1"); apperr.KindOf(err) != apperr.InvalidState {
		t.Fatalf("kind = %q; want InvalidState", apperr.KindOf(err))
	}
}

func TestAccept_BookNoLongerAvailable(t *testing.T) {
	m := &repoMock{
		getRequestFn: func(ctx context.Context, requestID string) (*model.RentRequest, error) {
			return pendingRequest("r2", "b1", "u3", "u1"), nil
		},
		getBookFn: func(ctx context.Context, bookID string) (*model.Book, error) {
			b := availableBook("b1", "u1")
			b.Status = model.BookRented
			return b, nil
		},
	}
	s := rentsvc.New(m)

	if err := s.Accept(context.Background(), "u1", "r2"); apperr.KindOf(err) != apperr.InvalidState {
		t.Fatalf("kind = %q; want InvalidState", apperr.KindOf(err))
	}
}

// Request followed by reject leaves the book alone: only RejectRequest runs.
func TestReject_DoesNotTouchBook(t *testing.T) {
	accepted := 0
	m := &repoMock{
		getRequestFn: func(ctx context.Context, requestID string) (*model.RentRequest, error) {
			return pendingRequest("r1", "b1", "u2", "u1"), nil
		},
		rejectRequestFn: func(ctx context.Context, requestID string) error { return nil },
		acceptRequestFn: func(ctx context.Context, requestID, bookID, renterID string) error {
			accepted++
			return nil
		},
	}
	s := rentsvc.New(m)

	if err := s.Reject(context.Background(), "u1", "r1"); err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if accepted != 0 {
		t.Fatal("reject must not mutate the book")
	}
}

func TestCompletePayment_RequesterOnly(t *testing.T) {
	req := pendingRequest("r1", "b1", "u2", "u1")
	req.Status = model.RequestAccepted
	m := &repoMock{
		getRequestFn: func(ctx context.Context, requestID string) (*model.RentRequest, error) {
			return req, nil
		},
	}
	s := rentsvc.New(m)

	if err := s.CompletePayment(context.Background(), "u1", "r1"); apperr.KindOf(err) != apperr.Unauthorized {
		t.Fatalf("kind = %q; want Unauthorized", apperr.KindOf(err))
	}
}

func TestCompletePayment_RequiresAccepted(t *testing.T) {
	m := &repoMock{
		getRequestFn: func(ctx context.Context, requestID string) (*model.RentRequest, error) {
			return pendingRequest("r1", "b1", "u2", "u1"), nil
		},
	}
	s := rentsvc.New(m)

	if err := s.CompletePayment(context.Background(), "u2", "r1"); apperr.KindOf(err) != apperr.InvalidState {
		t.Fatalf("kind = %q; want InvalidState", apperr.KindOf(err))
	}
}

func TestCompletePayment_Idempotent(t *testing.T) {
	req := pendingRequest("r1", "b1", "u2", "u1")
	req.Status = model.RequestAccepted
	calls := 0
	m := &repoMock{
		getRequestFn: func(ctx context.Context, requestID string) (*model.RentRequest, error) {
			return req, nil
		},
		completePaymentFn: func(ctx context.Context, requestID string) error {
			calls++
			req.PaymentStatus = model.PaymentCompleted
			return nil
		},
	}
	s := rentsvc.New(m)

	if err := s.CompletePayment(context.Background(), "u2", "r1"); err != nil {
		t.Fatalf("first CompletePayment: %v", err)
	}
	if err := s.CompletePayment(context.Background(), "u2", "r1"); err != nil {
		t.Fatalf("second CompletePayment: %v", err)
	}
	if calls != 1 {
		t.Fatalf("repo CompletePayment called %d times; want 1", calls)
	}
	if req.PaymentStatus != model.PaymentCompleted {
		t.Fatalf("payment = %s; want completed", req.PaymentStatus)
	}
}
