// Package user implements the User repository using PostgreSQL. Only the
// couple/partner linkage is written here; account data belongs to the
// identity service.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tandemlab/tandem-backend/internal/adapter/postgres"
	"github.com/tandemlab/tandem-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const clearLinkSQL = `
UPDATE users SET couple_id = NULL, partner_id = NULL, updated_at = now()
WHERE id = $1`

// ClearCoupleLink removes the user's couple/partner linkage.
func (r *Repo) ClearCoupleLink(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, clearLinkSQL, id)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

const setLinkSQL = `
UPDATE users SET couple_id = $2, partner_id = $3, updated_at = now()
WHERE id = $1`

// SetCoupleLink restores the user's couple/partner linkage.
func (r *Repo) SetCoupleLink(ctx context.Context, id, coupleID, partnerID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setLinkSQL, id, coupleID, partnerID)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
