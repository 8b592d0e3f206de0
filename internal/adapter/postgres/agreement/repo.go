// Package agreement implements the Agreement repository using PostgreSQL.
//
// Every mutating statement is a version-conditioned compare-and-swap:
// `WHERE id = $1 AND version = $2 ... SET version = version + 1`. A write
// that matches no row is reported as domain.ErrConflict when the agreement
// exists (concurrent writer won) or domain.ErrNotFound when it does not.
package agreement

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tandemlab/tandem-backend/internal/adapter/postgres"
	"github.com/tandemlab/tandem-backend/internal/domain"
)

// Repo provides agreement persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new agreement repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const agreementColumns = `id, couple_id, source_suggestion_id, source_session_id,
       title, description, underlying_need, type, frequency, status,
       responsible_user_id, requires_mutual_approval, approved_by_a, approved_by_b,
       success_streak, check_in_frequency_days, next_check_in_at, last_check_in_at,
       experiment_end_date, paused_reason, themes, version, created_at, updated_at`

func scanAgreement(row pgx.Row) (*domain.Agreement, error) {
	var a domain.Agreement
	err := row.Scan(
		&a.ID, &a.CoupleID, &a.SourceSuggestionID, &a.SourceSessionID,
		&a.Title, &a.Description, &a.UnderlyingNeed, &a.Type, &a.Frequency, &a.Status,
		&a.ResponsibleUserID, &a.RequiresMutualApproval, &a.ApprovedBy.UserA, &a.ApprovedBy.UserB,
		&a.SuccessStreak, &a.CheckInFrequencyDays, &a.NextCheckInAt, &a.LastCheckInAt,
		&a.ExperimentEndDate, &a.PausedReason, &a.Themes, &a.Version, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

const createSQL = `
INSERT INTO agreements (couple_id, source_suggestion_id, source_session_id,
    title, description, underlying_need, type, frequency, status,
    responsible_user_id, requires_mutual_approval, approved_by_a, approved_by_b,
    check_in_frequency_days, next_check_in_at, experiment_end_date, themes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
RETURNING ` + agreementColumns

// Create persists a new agreement and returns the stored row.
func (r *Repo) Create(ctx context.Context, a *domain.Agreement) (*domain.Agreement, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	themes := a.Themes
	if themes == nil {
		themes = []string{}
	}

	row := q.QueryRow(ctx, createSQL,
		a.CoupleID, a.SourceSuggestionID, a.SourceSessionID,
		a.Title, a.Description, a.UnderlyingNeed, a.Type, a.Frequency, a.Status,
		a.ResponsibleUserID, a.RequiresMutualApproval, a.ApprovedBy.UserA, a.ApprovedBy.UserB,
		a.CheckInFrequencyDays, a.NextCheckInAt, a.ExperimentEndDate, themes,
	)

	created, err := scanAgreement(row)
	if err != nil {
		return nil, postgres.MapError(err, "agreement", a.ID)
	}
	return created, nil
}

const getByIDSQL = `SELECT ` + agreementColumns + ` FROM agreements WHERE id = $1`

// GetByID returns an agreement by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Agreement, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanAgreement(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "agreement", id)
	}
	return a, nil
}

const listByCoupleStatusSQL = `
SELECT ` + agreementColumns + `
FROM agreements
WHERE couple_id = $1 AND status = ANY($2::text[])
ORDER BY created_at DESC`

// ListByCoupleStatuses returns the couple's agreements in any of the given
// statuses, newest first.
func (r *Repo) ListByCoupleStatuses(ctx context.Context, coupleID uuid.UUID, statuses []domain.AgreementStatus) ([]*domain.Agreement, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ss := make([]string, len(statuses))
	for i, s := range statuses {
		ss[i] = string(s)
	}

	rows, err := q.Query(ctx, listByCoupleStatusSQL, coupleID, ss)
	if err != nil {
		return nil, postgres.MapError(err, "agreement", coupleID)
	}
	defer rows.Close()

	return collect(rows, coupleID)
}

const listAwaitingApprovalSQL = `
SELECT ` + agreementColumns + `
FROM agreements
WHERE couple_id = $1 AND status = 'pending_approval' AND %s = false
ORDER BY created_at DESC`

// ListAwaitingApprovalBy returns the couple's pending_approval agreements
// not yet approved by the member at the given slot.
func (r *Repo) ListAwaitingApprovalBy(ctx context.Context, coupleID uuid.UUID, slot domain.CoupleSlot) ([]*domain.Agreement, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	col := "approved_by_a"
	if slot == domain.SlotUserB {
		col = "approved_by_b"
	}

	rows, err := q.Query(ctx, fmt.Sprintf(listAwaitingApprovalSQL, col), coupleID)
	if err != nil {
		return nil, postgres.MapError(err, "agreement", coupleID)
	}
	defer rows.Close()

	return collect(rows, coupleID)
}

const updateApprovalSQL = `
UPDATE agreements
SET approved_by_a = $3, approved_by_b = $4, status = $5,
    version = version + 1, updated_at = now()
WHERE id = $1 AND version = $2
RETURNING ` + agreementColumns

// UpdateApproval writes the approval set and status, conditioned on version.
func (r *Repo) UpdateApproval(ctx context.Context, id uuid.UUID, version int64, approved domain.ApprovalSet, status domain.AgreementStatus) (*domain.Agreement, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanAgreement(q.QueryRow(ctx, updateApprovalSQL, id, version, approved.UserA, approved.UserB, status))
	if err != nil {
		return nil, r.casError(ctx, err, id)
	}
	return a, nil
}

const setPausedSQL = `
UPDATE agreements
SET status = 'paused', paused_reason = $3, version = version + 1, updated_at = now()
WHERE id = $1 AND version = $2
RETURNING ` + agreementColumns

// SetPaused pauses the agreement, storing the optional reason.
func (r *Repo) SetPaused(ctx context.Context, id uuid.UUID, version int64, reason *string) (*domain.Agreement, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanAgreement(q.QueryRow(ctx, setPausedSQL, id, version, reason))
	if err != nil {
		return nil, r.casError(ctx, err, id)
	}
	return a, nil
}

const setActiveSQL = `
UPDATE agreements
SET status = 'active', paused_reason = NULL, next_check_in_at = $3,
    version = version + 1, updated_at = now()
WHERE id = $1 AND version = $2
RETURNING ` + agreementColumns

// SetActive resumes the agreement, clearing the pause reason and
// rescheduling the next check-in.
func (r *Repo) SetActive(ctx context.Context, id uuid.UUID, version int64, nextCheckInAt time.Time) (*domain.Agreement, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanAgreement(q.QueryRow(ctx, setActiveSQL, id, version, nextCheckInAt))
	if err != nil {
		return nil, r.casError(ctx, err, id)
	}
	return a, nil
}

const setStatusSQL = `
UPDATE agreements
SET status = $3, version = version + 1, updated_at = now()
WHERE id = $1 AND version = $2
RETURNING ` + agreementColumns

// SetStatus writes a bare status transition (achieve, archive).
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, version int64, status domain.AgreementStatus) (*domain.Agreement, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanAgreement(q.QueryRow(ctx, setStatusSQL, id, version, status))
	if err != nil {
		return nil, r.casError(ctx, err, id)
	}
	return a, nil
}

const updateCheckInStateSQL = `
UPDATE agreements
SET success_streak = $3, last_check_in_at = $4, next_check_in_at = $5,
    version = version + 1, updated_at = now()
WHERE id = $1 AND version = $2
RETURNING ` + agreementColumns

// UpdateCheckInState writes the streak and check-in schedule after a check-in.
func (r *Repo) UpdateCheckInState(ctx context.Context, id uuid.UUID, version int64, streak int, lastCheckInAt, nextCheckInAt time.Time) (*domain.Agreement, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanAgreement(q.QueryRow(ctx, updateCheckInStateSQL, id, version, streak, lastCheckInAt, nextCheckInAt))
	if err != nil {
		return nil, r.casError(ctx, err, id)
	}
	return a, nil
}

// UpdateFields applies the patch, conditioned on version. The SET list is
// built dynamically so untouched columns keep their values.
func (r *Repo) UpdateFields(ctx context.Context, id uuid.UUID, version int64, patch domain.AgreementPatch) (*domain.Agreement, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := sq.Update("agreements").
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "version": version}).
		Suffix("RETURNING " + agreementColumns).
		PlaceholderFormat(sq.Dollar)

	if patch.Title != nil {
		b = b.Set("title", *patch.Title)
	}
	if patch.Description != nil {
		b = b.Set("description", *patch.Description)
	}
	if patch.UnderlyingNeed != nil {
		b = b.Set("underlying_need", *patch.UnderlyingNeed)
	}
	if patch.Type != nil {
		b = b.Set("type", *patch.Type)
	}
	if patch.Frequency != nil {
		b = b.Set("frequency", *patch.Frequency)
	}
	if patch.CheckInFrequencyDays != nil {
		b = b.Set("check_in_frequency_days", *patch.CheckInFrequencyDays)
	}
	if patch.Themes != nil {
		b = b.Set("themes", patch.Themes)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	a, err := scanAgreement(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, r.casError(ctx, err, id)
	}
	return a, nil
}

const dissolveByCoupleSQL = `
UPDATE agreements
SET status = 'dissolved_with_couple', version = version + 1, updated_at = now()
WHERE couple_id = $1 AND status NOT IN ('archived', 'dissolved_with_couple')`

// DissolveByCouple transitions every non-terminal agreement of the couple to
// dissolved_with_couple. Returns the number of agreements affected.
func (r *Repo) DissolveByCouple(ctx context.Context, coupleID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, dissolveByCoupleSQL, coupleID)
	if err != nil {
		return 0, postgres.MapError(err, "agreement", coupleID)
	}
	return tag.RowsAffected(), nil
}

// casError distinguishes a failed compare-and-swap from a missing row.
func (r *Repo) casError(ctx context.Context, err error, id uuid.UUID) error {
	if !errors.Is(err, pgx.ErrNoRows) {
		return postgres.MapError(err, "agreement", id)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	var exists bool
	if checkErr := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM agreements WHERE id = $1)`, id).Scan(&exists); checkErr != nil {
		return postgres.MapError(checkErr, "agreement", id)
	}
	if exists {
		return fmt.Errorf("agreement %s: %w", id, domain.ErrConflict)
	}
	return fmt.Errorf("agreement %s: %w", id, domain.ErrNotFound)
}

func collect(rows pgx.Rows, coupleID uuid.UUID) ([]*domain.Agreement, error) {
	var out []*domain.Agreement
	for rows.Next() {
		a, err := scanAgreement(rows)
		if err != nil {
			return nil, postgres.MapError(err, "agreement", coupleID)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "agreement", coupleID)
	}
	return out, nil
}
