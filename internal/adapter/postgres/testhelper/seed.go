package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tandemlab/tandem-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an unlinked user. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:          uuid.New(),
		DisplayName: "Test User " + suffix,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, display_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4)`,
		user.ID, user.DisplayName, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedCouple creates two users and an active couple, and sets each user's
// couple/partner linkage. Returns the couple with both members populated.
func SeedCouple(t *testing.T, pool *pgxpool.Pool) (domain.Couple, domain.User, domain.User) {
	t.Helper()
	ctx := context.Background()

	userA := SeedUser(t, pool)
	userB := SeedUser(t, pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	couple := domain.Couple{
		ID:        uuid.New(),
		UserA:     userA.ID,
		UserB:     userB.ID,
		Status:    domain.CoupleStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO couples (id, user_a, user_b, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		couple.ID, couple.UserA, couple.UserB, string(couple.Status), couple.CreatedAt, couple.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCouple insert couple: %v", err)
	}

	link := func(userID, partnerID uuid.UUID) {
		_, err := pool.Exec(ctx,
			`UPDATE users SET couple_id = $2, partner_id = $3, updated_at = $4 WHERE id = $1`,
			userID, couple.ID, partnerID, now,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedCouple link user %s: %v", userID, err)
		}
	}
	link(userA.ID, userB.ID)
	link(userB.ID, userA.ID)

	userA.CoupleID = &couple.ID
	userA.PartnerID = &userB.ID
	userB.CoupleID = &couple.ID
	userB.PartnerID = &userA.ID

	return couple, userA, userB
}
