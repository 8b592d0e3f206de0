// Package checkin implements the AgreementCheckin repository using
// PostgreSQL. The table is append-only: inserts and reads, no updates.
package checkin

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tandemlab/tandem-backend/internal/adapter/postgres"
	"github.com/tandemlab/tandem-backend/internal/domain"
)

// Repo provides check-in persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new check-in repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const checkinColumns = `id, agreement_id, status, what_worked, what_was_hard,
       partner_feedback, adjustment_suggested, next_check_in_at, checked_in_by, created_at`

func scanCheckin(row pgx.Row) (*domain.AgreementCheckin, error) {
	var c domain.AgreementCheckin
	err := row.Scan(&c.ID, &c.AgreementID, &c.Status, &c.WhatWorked, &c.WhatWasHard,
		&c.PartnerFeedback, &c.AdjustmentSuggested, &c.NextCheckInAt, &c.CheckedInBy, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

const createSQL = `
INSERT INTO agreement_checkins (agreement_id, status, what_worked, what_was_hard,
    partner_feedback, adjustment_suggested, next_check_in_at, checked_in_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + checkinColumns

// Create appends a new immutable check-in record.
func (r *Repo) Create(ctx context.Context, c *domain.AgreementCheckin) (*domain.AgreementCheckin, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanCheckin(q.QueryRow(ctx, createSQL,
		c.AgreementID, c.Status, c.WhatWorked, c.WhatWasHard,
		c.PartnerFeedback, c.AdjustmentSuggested, c.NextCheckInAt, c.CheckedInBy))
	if err != nil {
		return nil, postgres.MapError(err, "checkin", c.AgreementID)
	}
	return created, nil
}

const listByAgreementSQL = `
SELECT ` + checkinColumns + `
FROM agreement_checkins
WHERE agreement_id = $1
ORDER BY created_at DESC
LIMIT $2`

// ListByAgreement returns the agreement's check-ins, newest first.
func (r *Repo) ListByAgreement(ctx context.Context, agreementID uuid.UUID, limit int) ([]*domain.AgreementCheckin, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByAgreementSQL, agreementID, limit)
	if err != nil {
		return nil, postgres.MapError(err, "checkin", agreementID)
	}
	defer rows.Close()

	var out []*domain.AgreementCheckin
	for rows.Next() {
		c, err := scanCheckin(rows)
		if err != nil {
			return nil, postgres.MapError(err, "checkin", agreementID)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "checkin", agreementID)
	}
	return out, nil
}
