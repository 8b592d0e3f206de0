// Package invite implements the partner invite-code repository using
// PostgreSQL. Codes are issued by the linking flow; dissolution revokes
// whatever is still pending.
package invite

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tandemlab/tandem-backend/internal/adapter/postgres"
)

// Repo provides invite-code persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new invite-code repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const revokePendingSQL = `
UPDATE invite_codes
SET status = 'revoked'
WHERE user_id = ANY($1::uuid[]) AND status = 'pending'`

// RevokePendingByUsers revokes every pending invite code belonging to the
// given users. Returns the number of codes revoked.
func (r *Repo) RevokePendingByUsers(ctx context.Context, userIDs []uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, revokePendingSQL, userIDs)
	if err != nil {
		return 0, postgres.MapError(err, "invite_code", uuid.Nil)
	}
	return tag.RowsAffected(), nil
}
