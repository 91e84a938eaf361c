// Package authz holds every authorization predicate in one place so the
// owner/admin rules cannot drift between operations. All functions are pure:
// they look at the actor and the target and return nil or a coded error.
package authz

import (
	"github.com/Saadasw/book-renter/model"
	"github.com/Saadasw/book-renter/util/apperr"
)

// CanDeleteBook allows the owner while the book is still available, and
// admins regardless of status.
func CanDeleteBook(actor *model.User, b *model.Book) error {
	if actor.IsAdmin {
		return nil
	}
	if actor.ID != b.OwnerID {
		return apperr.NewUnauthorized("you can only delete your own books")
	}
	if b.Status != model.BookAvailable {
		return apperr.NewInvalidState("cannot delete a book that is currently " + string(b.Status))
	}
	return nil
}

func CanAddBookImage(actor *model.User, b *model.Book) error {
	if actor.ID != b.OwnerID {
		return apperr.NewUnauthorized("you can only add images to your own books")
	}
	return nil
}

// CanUpdateProfile covers location and contact number updates: self or admin.
func CanUpdateProfile(actor *model.User, targetUserID string) error {
	if actor.ID == targetUserID || actor.IsAdmin {
		return nil
	}
	return apperr.NewUnauthorized("you can only update your own profile")
}

func CanSendMessageAs(actor *model.User, senderID string) error {
	if actor.ID != senderID {
		return apperr.NewUnauthorized("you can only send messages as yourself")
	}
	return nil
}

func CanSubmitReportAs(actor *model.User, reporterID string) error {
	if actor.ID != reporterID {
		return apperr.NewUnauthorized("you can only submit reports as yourself")
	}
	return nil
}

func AdminOnly(actor *model.User) error {
	if !actor.IsAdmin {
		return apperr.NewUnauthorized("admin access required")
	}
	return nil
}
