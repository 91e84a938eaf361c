// Package admin covers the admin-only destructive operations: deleting any
// user (with its full cascade) and deleting any book regardless of status.
package adminsvc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Saadasw/book-renter/model"
	"github.com/Saadasw/book-renter/service/authz"
	"github.com/Saadasw/book-renter/util/apperr"
)

type Users interface {
	ByID(ctx context.Context, id string) (*model.User, error)
	DeleteCascade(ctx context.Context, userID string) error
}

type Books interface {
	ByID(ctx context.Context, id string) (*model.Book, error)
	DeleteCascade(ctx context.Context, bookID string) error
}

type Service interface {
	DeleteUser(ctx context.Context, actorID, userID string) error
	DeleteBook(ctx context.Context, actorID, bookID string) error
}

type service struct {
	users Users
	books Books
}

func New(users Users, books Books) Service { return &service{users: users, books: books} }

func (s *service) DeleteUser(ctx context.Context, actorID, userID string) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	if actorID == userID {
		return apperr.NewInvalidState("admins cannot delete their own account")
	}
	if err := s.users.DeleteCascade(ctx, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NewNotFound("user not found")
		}
		return err
	}
	return nil
}

// DeleteBook ignores book status: the admin path is status-independent.
func (s *service) DeleteBook(ctx context.Context, actorID, bookID string) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	b, err := s.books.ByID(ctx, bookID)
	if err != nil {
		return err
	}
	if b == nil {
		return apperr.NewNotFound("book not found")
	}
	return s.books.DeleteCascade(ctx, bookID)
}

func (s *service) requireAdmin(ctx context.Context, actorID string) error {
	actor, err := s.users.ByID(ctx, actorID)
	if err != nil {
		return err
	}
	if actor == nil {
		return apperr.NewNotFound("user not found")
	}
	return authz.AdminOnly(actor)
}
