// Package couple implements the Couple repository using PostgreSQL.
// Membership is created by the partner-linking flow; this repository only
// reads it and writes status/dissolution fields.
package couple

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tandemlab/tandem-backend/internal/adapter/postgres"
	"github.com/tandemlab/tandem-backend/internal/domain"
)

// Repo provides couple persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new couple repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const coupleColumns = `id, user_a, user_b, status, dissolved_by, dissolved_at, created_at, updated_at`

func scanCouple(row pgx.Row) (*domain.Couple, error) {
	var c domain.Couple
	err := row.Scan(&c.ID, &c.UserA, &c.UserB, &c.Status, &c.DissolvedBy, &c.DissolvedAt, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

const getByIDSQL = `SELECT ` + coupleColumns + ` FROM couples WHERE id = $1`

// GetByID returns a couple by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Couple, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCouple(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "couple", id)
	}
	return c, nil
}

const getByUserIDSQL = `
SELECT ` + coupleColumns + `
FROM couples
WHERE (user_a = $1 OR user_b = $1) AND status <> 'dissolved'
ORDER BY created_at DESC
LIMIT 1`

// GetByUserID returns the user's current (not dissolved) couple. Membership
// columns are authoritative: a member mid-dissolution is still found here
// even after their profile linkage was cleared.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Couple, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCouple(q.QueryRow(ctx, getByUserIDSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, "couple", userID)
	}
	return c, nil
}

const getPendingDissolutionSQL = `
SELECT ` + coupleColumns + `
FROM couples
WHERE (user_a = $1 OR user_b = $1) AND status = 'pending_dissolution'
ORDER BY created_at DESC
LIMIT 1`

// GetPendingDissolutionByUserID returns the user's couple currently in
// pending_dissolution, if any.
func (r *Repo) GetPendingDissolutionByUserID(ctx context.Context, userID uuid.UUID) (*domain.Couple, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCouple(q.QueryRow(ctx, getPendingDissolutionSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, "couple", userID)
	}
	return c, nil
}

const markPendingDissolutionSQL = `
UPDATE couples
SET status = 'pending_dissolution', dissolved_by = $2, dissolved_at = $3, updated_at = now()
WHERE id = $1 AND status = 'active'
RETURNING ` + coupleColumns

// MarkPendingDissolution moves an active couple into pending_dissolution,
// recording who initiated and when. Fails with ErrConflict if the couple is
// no longer active.
func (r *Repo) MarkPendingDissolution(ctx context.Context, id, initiatedBy uuid.UUID, at time.Time) (*domain.Couple, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCouple(q.QueryRow(ctx, markPendingDissolutionSQL, id, initiatedBy, at))
	if err != nil {
		return nil, r.statusCASError(ctx, err, id)
	}
	return c, nil
}

const markDissolvedSQL = `
UPDATE couples
SET status = 'dissolved', updated_at = now()
WHERE id = $1 AND status = 'pending_dissolution'
RETURNING ` + coupleColumns

// MarkDissolved finalizes a pending dissolution.
func (r *Repo) MarkDissolved(ctx context.Context, id uuid.UUID) (*domain.Couple, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCouple(q.QueryRow(ctx, markDissolvedSQL, id))
	if err != nil {
		return nil, r.statusCASError(ctx, err, id)
	}
	return c, nil
}

const reactivateSQL = `
UPDATE couples
SET status = 'active', dissolved_by = NULL, dissolved_at = NULL, updated_at = now()
WHERE id = $1 AND status = 'pending_dissolution'
RETURNING ` + coupleColumns

// Reactivate cancels a pending dissolution, clearing its metadata.
func (r *Repo) Reactivate(ctx context.Context, id uuid.UUID) (*domain.Couple, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCouple(q.QueryRow(ctx, reactivateSQL, id))
	if err != nil {
		return nil, r.statusCASError(ctx, err, id)
	}
	return c, nil
}

// statusCASError maps a no-row update to conflict (row exists, wrong status)
// or not-found.
func (r *Repo) statusCASError(ctx context.Context, err error, id uuid.UUID) error {
	if !errors.Is(err, pgx.ErrNoRows) {
		return postgres.MapError(err, "couple", id)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	var exists bool
	if checkErr := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM couples WHERE id = $1)`, id).Scan(&exists); checkErr != nil {
		return postgres.MapError(checkErr, "couple", id)
	}
	if exists {
		return postgres.MapError(domain.ErrConflict, "couple", id)
	}
	return postgres.MapError(domain.ErrNotFound, "couple", id)
}
