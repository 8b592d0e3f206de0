// Package suggestion implements the AgreementSuggestion repository using
// PostgreSQL.
package suggestion

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tandemlab/tandem-backend/internal/adapter/postgres"
	"github.com/tandemlab/tandem-backend/internal/domain"
)

// Repo provides suggestion persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new suggestion repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const suggestionColumns = `id, couple_id, session_id, title, underlying_need,
       responsible, status, agreement_id, created_at, updated_at`

func scanSuggestion(row pgx.Row) (*domain.AgreementSuggestion, error) {
	var s domain.AgreementSuggestion
	err := row.Scan(&s.ID, &s.CoupleID, &s.SessionID, &s.Title, &s.UnderlyingNeed,
		&s.Responsible, &s.Status, &s.AgreementID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

const createSQL = `
INSERT INTO agreement_suggestions (couple_id, session_id, title, underlying_need, responsible, status)
VALUES ($1, $2, $3, $4, $5, 'pending')
RETURNING ` + suggestionColumns

// Create persists a new pending suggestion.
func (r *Repo) Create(ctx context.Context, s *domain.AgreementSuggestion) (*domain.AgreementSuggestion, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanSuggestion(q.QueryRow(ctx, createSQL,
		s.CoupleID, s.SessionID, s.Title, s.UnderlyingNeed, s.Responsible))
	if err != nil {
		return nil, postgres.MapError(err, "suggestion", s.ID)
	}
	return created, nil
}

const getByIDSQL = `SELECT ` + suggestionColumns + ` FROM agreement_suggestions WHERE id = $1`

// GetByID returns a suggestion by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AgreementSuggestion, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSuggestion(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "suggestion", id)
	}
	return s, nil
}

const listPendingSQL = `
SELECT ` + suggestionColumns + `
FROM agreement_suggestions
WHERE couple_id = $1 AND status = 'pending' AND ($2::uuid IS NULL OR session_id = $2)
ORDER BY created_at DESC`

// ListPending returns the couple's pending suggestions, optionally filtered
// by source session.
func (r *Repo) ListPending(ctx context.Context, coupleID uuid.UUID, sessionID *uuid.UUID) ([]*domain.AgreementSuggestion, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listPendingSQL, coupleID, sessionID)
	if err != nil {
		return nil, postgres.MapError(err, "suggestion", coupleID)
	}
	defer rows.Close()

	var out []*domain.AgreementSuggestion
	for rows.Next() {
		s, err := scanSuggestion(rows)
		if err != nil {
			return nil, postgres.MapError(err, "suggestion", coupleID)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "suggestion", coupleID)
	}
	return out, nil
}

const markDismissedSQL = `
UPDATE agreement_suggestions
SET status = 'dismissed', updated_at = now()
WHERE id = $1 AND status = 'pending'`

// MarkDismissed dismisses a pending suggestion. Returns false when no
// pending row matched (already dismissed or accepted); the caller decides
// whether that is a no-op or an error.
func (r *Repo) MarkDismissed(ctx context.Context, id uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, markDismissedSQL, id)
	if err != nil {
		return false, postgres.MapError(err, "suggestion", id)
	}
	return tag.RowsAffected() > 0, nil
}

const markAcceptedSQL = `
UPDATE agreement_suggestions
SET status = 'accepted', agreement_id = $2, updated_at = now()
WHERE id = $1 AND status = 'pending'
RETURNING ` + suggestionColumns

// MarkAccepted marks a pending suggestion accepted with a back-reference to
// the created agreement. A non-pending suggestion yields ErrConflict.
func (r *Repo) MarkAccepted(ctx context.Context, id, agreementID uuid.UUID) (*domain.AgreementSuggestion, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSuggestion(q.QueryRow(ctx, markAcceptedSQL, id, agreementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, postgres.MapError(domain.ErrConflict, "suggestion", id)
		}
		return nil, postgres.MapError(err, "suggestion", id)
	}
	return s, nil
}
