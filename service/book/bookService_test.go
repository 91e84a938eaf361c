// service/book/book_service_test.go
package booksvc_test

import (
	"context"
	"testing"

	"github.com/Saadasw/book-renter/model"
	booksvc "github.com/Saadasw/book-renter/service/book"
	"github.com/Saadasw/book-renter/util/apperr"
)

type repoMock struct {
	createFn        func(ctx context.Context, b *model.Book) error
	byIDFn          func(ctx context.Context, id string) (*model.Book, error)
	listFn          func(ctx context.Context) ([]model.Book, error)
	byOwnerFn       func(ctx context.Context, ownerID string) ([]model.Book, error)
	deleteCascadeFn func(ctx context.Context, bookID string) error
	addImageFn      func(ctx context.Context, img *model.BookImage) error
	imagesFn        func(ctx context.Context, bookID string) ([]model.BookImage, error)
}

func (m *repoMock) Create(ctx context.Context, b *model.Book) error { return m.createFn(ctx, b) }
func (m *repoMock) ByID(ctx context.Context, id string) (*model.Book, error) {
	return m.byIDFn(ctx, id)
}
func (m *repoMock) List(ctx context.Context) ([]model.Book, error) { return m.listFn(ctx) }
func (m *repoMock) ByOwner(ctx context.Context, ownerID string) ([]model.Book, error) {
	return m.byOwnerFn(ctx, ownerID)
}
func (m *repoMock) DeleteCascade(ctx context.Context, bookID string) error {
	return m.deleteCascadeFn(ctx, bookID)
}
func (m *repoMock) AddImage(ctx context.Context, img *model.BookImage) error {
	return m.addImageFn(ctx, img)
}
func (m *repoMock) Images(ctx context.Context, bookID string) ([]model.BookImage, error) {
	return m.imagesFn(ctx, bookID)
}

type usersMock struct {
	byIDFn func(ctx context.Context, id string) (*model.User, error)
}

func (m *usersMock) ByID(ctx context.Context, id string) (*model.User, error) {
	return m.byIDFn(ctx, id)
}

func fp(v float64) *float64 { return &v }

func TestCreate_Validation(t *testing.T) {
	s := booksvc.New(&repoMock{}, &usersMock{})
	ctx := context.Background()

	cases := []struct {
		name string
		in   booksvc.CreateInput
	}{
		{"empty title", booksvc.CreateInput{Author: "a", ListingType: model.ListingRent, RentalPrice: fp(5)}},
		{"empty author", booksvc.CreateInput{Title: "t", ListingType: model.ListingRent, RentalPrice: fp(5)}},
		{"bad listing type", booksvc.CreateInput{Title: "t", Author: "a", ListingType: "lease"}},
		{"rent without rental price", booksvc.CreateInput{Title: "t", Author: "a", ListingType: model.ListingRent}},
		{"sale without sale price", booksvc.CreateInput{Title: "t", Author: "a", ListingType: model.ListingSale}},
		{"both missing sale price", booksvc.CreateInput{Title: "t", Author: "a", ListingType: model.ListingBoth, RentalPrice: fp(5)}},
		{"zero rental price", booksvc.CreateInput{Title: "t", Author: "a", ListingType: model.ListingRent, RentalPrice: fp(0)}},
	}
	for _, tc := range cases {
		if _, err := s.Create(ctx, "u1", tc.in); apperr.KindOf(err) != apperr.Validation {
			t.Errorf("%s: kind = %q; want Validation", tc.name, apperr.KindOf(err))
		}
	}
}

func TestCreate_NewBookIsAvailable(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, b *model.Book) error {
			b.ID = "b1"
			return nil
		},
	}
	s := booksvc.New(m, &usersMock{})

	b, err := s.Create(context.Background(), "u1", booksvc.CreateInput{
		Title:       "  Clean Code ",
		Author:      "Robert Martin",
		ListingType: model.ListingRent,
		RentalPrice: fp(20),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if b.Status != model.BookAvailable {
		t.Fatalf("status = %s; want available", b.Status)
	}
	if b.Title != "Clean Code" {
		t.Fatalf("title = %q; want trimmed", b.Title)
	}
	if b.OwnerID != "u1" {
		t.Fatalf("ownerID = %s; want u1", b.OwnerID)
	}
}

func catalog() []model.Book {
	return []model.Book{
		{ID: "b1", Title: "Clean Code", Author: "Robert Martin", Status: model.BookAvailable, ListingType: model.ListingRent, RentalPrice: fp(20)},
		{ID: "b2", Title: "The Go Programming Language", Author: "Donovan", Status: model.BookRented, ListingType: model.ListingRent, RentalPrice: fp(15)},
		{ID: "b3", Title: "SICP", Author: "Abelson", Status: model.BookAvailable, ListingType: model.ListingSale, SalePrice: fp(40)},
		{ID: "b4", Title: "Refactoring", Author: "Martin Fowler", Status: model.BookAvailable, ListingType: model.ListingBoth, RentalPrice: fp(10), SalePrice: fp(30)},
	}
}

func searchService() booksvc.Service {
	m := &repoMock{
		listFn: func(ctx context.Context) ([]model.Book, error) { return catalog(), nil },
	}
	return booksvc.New(m, &usersMock{})
}

func ids(books []model.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.ID
	}
	return out
}

func assertIDs(t *testing.T, got []model.Book, want ...string) {
	t.Helper()
	g := ids(got)
	if len(g) != len(want) {
		t.Fatalf("got %v; want %v", g, want)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("got %v; want %v", g, want)
		}
	}
}

func TestSearch_EmptyFilterReturnsAllInOrder(t *testing.T) {
	got, err := searchService().Search(context.Background(), booksvc.SearchFilter{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	assertIDs(t, got, "b1", "b2", "b3", "b4")
}

func TestSearch_QueryIsCaseInsensitiveOnTitleAndAuthor(t *testing.T) {
	ctx := context.Background()
	s := searchService()

	got, err := s.Search(ctx, booksvc.SearchFilter{Query: "clean"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	assertIDs(t, got, "b1")

	// "martin" matches an author on b1 and b4.
	got, err = s.Search(ctx, booksvc.SearchFilter{Query: "MARTIN"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	assertIDs(t, got, "b1", "b4")
}

func TestSearch_StatusFilter(t *testing.T) {
	got, err := searchService().Search(context.Background(), booksvc.SearchFilter{Status: model.BookAvailable})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	assertIDs(t, got, "b1", "b3", "b4")
}

func TestSearch_BothListingSatisfiesRentAndSaleFilters(t *testing.T) {
	ctx := context.Background()
	s := searchService()

	got, err := s.Search(ctx, booksvc.SearchFilter{ListingType: model.ListingRent})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	assertIDs(t, got, "b1", "b2", "b4")

	got, err = s.Search(ctx, booksvc.SearchFilter{ListingType: model.ListingSale})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	assertIDs(t, got, "b3", "b4")
}

func TestSearch_PriceCeilingPassesBooksWithoutRentalPrice(t *testing.T) {
	got, err := searchService().Search(context.Background(), booksvc.SearchFilter{MaxRentalPrice: fp(15)})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	// b1 is over the ceiling; b3 has no rental price and passes.
	assertIDs(t, got, "b2", "b3", "b4")
}

func TestSearch_FiltersCompose(t *testing.T) {
	got, err := searchService().Search(context.Background(), booksvc.SearchFilter{
		Status:         model.BookAvailable,
		ListingType:    model.ListingRent,
		MaxRentalPrice: fp(15),
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	assertIDs(t, got, "b4")
}

func deleteFixture(actor *model.User, book *model.Book, deleted *int) booksvc.Service {
	m := &repoMock{
		byIDFn: func(ctx context.Context, id string) (*model.Book, error) { return book, nil },
		deleteCascadeFn: func(ctx context.Context, bookID string) error {
			*deleted++
			return nil
		},
	}
	u := &usersMock{
		byIDFn: func(ctx context.Context, id string) (*model.User, error) { return actor, nil },
	}
	return booksvc.New(m, u)
}

func TestDelete_NonOwnerIsUnauthorized(t *testing.T) {
	deleted := 0
	s := deleteFixture(
		&model.User{ID: "u2"},
		&model.Book{ID: "b1", OwnerID: "u1", Status: model.BookAvailable},
		&deleted,
	)
	if err := s.Delete(context.Background(), "u2", "b1"); apperr.KindOf(err) != apperr.Unauthorized {
		t.Fatalf("kind = %q; want Unauthorized", apperr.KindOf(err))
	}
	if deleted != 0 {
		t.Fatal("book must not be deleted")
	}
}

func TestDelete_OwnerCannotDeleteRentedBook(t *testing.T) {
	deleted := 0
	s := deleteFixture(
		&model.User{ID: "u1"},
		&model.Book{ID: "b1", OwnerID: "u1", Status: model.BookRented},
		&deleted,
	)
	if err := s.Delete(context.Background(), "u1", "b1"); apperr.KindOf(err) != apperr.InvalidState {
		t.Fatalf("kind = %q; want InvalidState", apperr.KindOf(err))
	}
	if deleted != 0 {
		t.Fatal("book must not be deleted")
	}
}

func TestDelete_AdminDeletesAnyStatus(t *testing.T) {
	deleted := 0
	s := deleteFixture(
		&model.User{ID: "admin", IsAdmin: true},
		&model.Book{ID: "b1", OwnerID: "u1", Status: model.BookRented},
		&deleted,
	)
	if err := s.Delete(context.Background(), "admin", "b1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("DeleteCascade called %d times; want 1", deleted)
	}
}

func TestDelete_OwnerDeletesAvailableBook(t *testing.T) {
	deleted := 0
	s := deleteFixture(
		&model.User{ID: "u1"},
		&model.Book{ID: "b1", OwnerID: "u1", Status: model.BookAvailable},
		&deleted,
	)
	if err := s.Delete(context.Background(), "u1", "b1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("DeleteCascade called %d times; want 1", deleted)
	}
}

func TestAddImage_OwnerOnly(t *testing.T) {
	m := &repoMock{
		byIDFn: func(ctx context.Context, id string) (*model.Book, error) {
			return &model.Book{ID: "b1", OwnerID: "u1"}, nil
		},
	}
	u := &usersMock{
		byIDFn: func(ctx context.Context, id string) (*model.User, error) {
			return &model.User{ID: id}, nil
		},
	}
	s := booksvc.New(m, u)

	if _, err := s.AddImage(context.Background(), "u2", "b1", "https://img/x.png"); apperr.KindOf(err) != apperr.Unauthorized {
		t.Fatalf("kind = %q; want Unauthorized", apperr.KindOf(err))
	}
}

func TestDetail_MissingBookIsNotFound(t *testing.T) {
	m := &repoMock{
		byIDFn: func(ctx context.Context, id string) (*model.Book, error) { return nil, nil },
	}
	s := booksvc.New(m, &usersMock{})

	if _, _, err := s.Detail(context.Background(), "missing"); apperr.KindOf(err) != apperr.NotFound {
		t.Fatalf("kind = %q; want NotFound", apperr.KindOf(err))
	}
}
