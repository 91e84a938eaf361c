package report

import (
	"context"
	"database/sql"

	"github.com/Saadasw/book-renter/model"

	"github.com/google/uuid"
)

type Repo interface {
	// Insert stores the report and bumps the reported user's report_count in
	// the same tx.
	Insert(ctx context.Context, rep *model.UserReport) error

	List(ctx context.Context) ([]model.UserReport, error)
	UpdateStatus(ctx context.Context, reportID string, status model.ReportStatus) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Insert(ctx context.Context, rep *model.UserReport) (err error) {
	rep.ID = uuid.NewString()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const q = `
		INSERT INTO user_reports (id, reporter_id, reported_user_id, reason, status)
		VALUES ($1,$2,$3,$4,'pending')
		RETURNING created_at`
	if err = tx.QueryRowContext(ctx, q, rep.ID, rep.ReporterID, rep.ReportedUserID, rep.Reason).Scan(&rep.CreatedAt); err != nil {
		return err
	}
	rep.Status = model.ReportPending

	const bump = `
		UPDATE users
		SET report_count = report_count + 1
		WHERE id = $1`
	if _, err = tx.ExecContext(ctx, bump, rep.ReportedUserID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *repo) List(ctx context.Context) ([]model.UserReport, error) {
	const q = `
		SELECT id, reporter_id, reported_user_id, reason, status, created_at
		FROM user_reports
		ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.UserReport
	for rows.Next() {
		var rep model.UserReport
		if err := rows.Scan(&rep.ID, &rep.ReporterID, &rep.ReportedUserID, &rep.Reason, &rep.Status, &rep.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

func (r *repo) UpdateStatus(ctx context.Context, reportID string, status model.ReportStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE user_reports
		SET status = $2
		WHERE id = $1`, reportID, status)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
