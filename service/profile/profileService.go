// Package profile exposes user profiles: the owner's full view, field-level
// visibility settings, and the projected public view other users get.
package profile

import (
	"context"

	"github.com/Saadasw/book-renter/model"
	userrepo "github.com/Saadasw/book-renter/repository/user"
	"github.com/Saadasw/book-renter/service/authz"
	"github.com/Saadasw/book-renter/util/apperr"
)

type Repo = userrepo.Repo

type Service interface {
	Get(ctx context.Context, userID string) (*model.User, error)
	Public(ctx context.Context, userID string) (*model.PublicProfile, error)
	Visibility(ctx context.Context, userID string) (*model.Visibility, error)
	UpdateLocation(ctx context.Context, actorID, userID string, loc *model.Location) error
	UpdateContactNumber(ctx context.Context, actorID, userID, contactNumber string) error
	UpdateVisibility(ctx context.Context, actorID string, v model.Visibility) error
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Get(ctx context.Context, userID string) (*model.User, error) {
	u, err := s.r.ByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NewNotFound("user not found")
	}
	return u, nil
}

// Public projects the profile through its visibility flags. ID is always
// present; latitude and longitude travel together behind visible_location.
func (s *service) Public(ctx context.Context, userID string) (*model.PublicProfile, error) {
	u, err := s.r.ByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NewNotFound("user not found")
	}
	v, err := s.r.Visibility(ctx, userID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		// No row means nothing was ever opted in.
		v = &model.Visibility{UserID: userID}
	}
	return Project(u, v), nil
}

// Project is the pure projection; exported so tests can drive it directly.
func Project(u *model.User, v *model.Visibility) *model.PublicProfile {
	p := &model.PublicProfile{ID: u.ID}
	if v.VisibleName {
		name := u.Name
		p.Name = &name
	}
	if v.VisibleEmail {
		email := u.Email
		p.Email = &email
	}
	if v.VisibleContact && u.ContactNumber != nil {
		contact := *u.ContactNumber
		p.ContactNumber = &contact
	}
	if v.VisibleAddress && u.Address != nil {
		addr := *u.Address
		p.Address = &addr
	}
	if v.VisibleLocation && u.Location != nil {
		loc := *u.Location
		p.Location = &loc
	}
	return p
}

func (s *service) Visibility(ctx context.Context, userID string) (*model.Visibility, error) {
	v, err := s.r.Visibility(ctx, userID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, apperr.NewNotFound("visibility settings not found")
	}
	return v, nil
}

func (s *service) UpdateLocation(ctx context.Context, actorID, userID string, loc *model.Location) error {
	actor, err := s.r.ByID(ctx, actorID)
	if err != nil {
		return err
	}
	if actor == nil {
		return apperr.NewNotFound("user not found")
	}
	if err := authz.CanUpdateProfile(actor, userID); err != nil {
		return err
	}
	return s.r.UpdateLocation(ctx, userID, loc)
}

func (s *service) UpdateContactNumber(ctx context.Context, actorID, userID, contactNumber string) error {
	actor, err := s.r.ByID(ctx, actorID)
	if err != nil {
		return err
	}
	if actor == nil {
		return apperr.NewNotFound("user not found")
	}
	if err := authz.CanUpdateProfile(actor, userID); err != nil {
		return err
	}
	return s.r.UpdateContactNumber(ctx, userID, contactNumber)
}

// UpdateVisibility is self-only: visibility is not something admins edit on a
// user's behalf.
func (s *service) UpdateVisibility(ctx context.Context, actorID string, v model.Visibility) error {
	if v.UserID != actorID {
		return apperr.NewUnauthorized("you can only change your own visibility settings")
	}
	return s.r.UpdateVisibility(ctx, &v)
}
