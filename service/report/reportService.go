package reportsvc

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Saadasw/book-renter/model"
	reportrepo "github.com/Saadasw/book-renter/repository/report"
	"github.com/Saadasw/book-renter/service/authz"
	"github.com/Saadasw/book-renter/util/apperr"
)

type Repo = reportrepo.Repo

type Users interface {
	ByID(ctx context.Context, id string) (*model.User, error)
}

type Service interface {
	// Submit files a report; the reported user's report_count is bumped by
	// the repository in the same tx.
	Submit(ctx context.Context, actorID, reporterID, reportedUserID, reason string) (*model.UserReport, error)

	// List and Review are admin-only.
	List(ctx context.Context, actorID string) ([]model.UserReport, error)
	Review(ctx context.Context, actorID, reportID string, status model.ReportStatus) error
}

type service struct {
	r     Repo
	users Users
}

func New(r Repo, users Users) Service { return &service{r: r, users: users} }

func (s *service) Submit(ctx context.Context, actorID, reporterID, reportedUserID, reason string) (*model.UserReport, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, apperr.NewValidation("a reason is required")
	}
	actor, err := s.users.ByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, apperr.NewNotFound("user not found")
	}
	if err := authz.CanSubmitReportAs(actor, reporterID); err != nil {
		return nil, err
	}
	reported, err := s.users.ByID(ctx, reportedUserID)
	if err != nil {
		return nil, err
	}
	if reported == nil {
		return nil, apperr.NewNotFound("reported user not found")
	}

	rep := &model.UserReport{
		ReporterID:     reporterID,
		ReportedUserID: reportedUserID,
		Reason:         reason,
	}
	if err := s.r.Insert(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

func (s *service) List(ctx context.Context, actorID string) ([]model.UserReport, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	return s.r.List(ctx)
}

func (s *service) Review(ctx context.Context, actorID, reportID string, status model.ReportStatus) error {
	if status != model.ReportReviewed && status != model.ReportDismissed {
		return apperr.NewValidation("status must be reviewed or dismissed")
	}
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	if err := s.r.UpdateStatus(ctx, reportID, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NewNotFound("report not found")
		}
		return err
	}
	return nil
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
