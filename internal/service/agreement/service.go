package agreement

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tandemlab/tandem-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type agreementRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Agreement, error)
	UpdateApproval(ctx context.Context, id uuid.UUID, version int64, approved domain.ApprovalSet, status domain.AgreementStatus) (*domain.Agreement, error)
	SetPaused(ctx context.Context, id uuid.UUID, version int64, reason *string) (*domain.Agreement, error)
	SetActive(ctx context.Context, id uuid.UUID, version int64, nextCheckInAt time.Time) (*domain.Agreement, error)
	SetStatus(ctx context.Context, id uuid.UUID, version int64, status domain.AgreementStatus) (*domain.Agreement, error)
	UpdateFields(ctx context.Context, id uuid.UUID, version int64, patch domain.AgreementPatch) (*domain.Agreement, error)
}

type coupleRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Couple, error)
}

type metricsRecorder interface {
	RecordApproval(outcome string)
	RecordApproveRetry()
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the agreement approval and lifecycle business logic.
type Service struct {
	agreements agreementRepo
	couples    coupleRepo
	metrics    metricsRecorder
	log        *slog.Logger

	defaultCheckInDays int
	approveMaxRetries  int
	now                func() time.Time
}

// NewService creates a new Agreement service.
func NewService(log *slog.Logger, agreements agreementRepo, couples coupleRepo, metrics metricsRecorder, defaultCheckInDays, approveMaxRetries int) *Service {
	return &Service{
		agreements:         agreements,
		couples:            couples,
		metrics:            metrics,
		log:                log.With("service", "agreement"),
		defaultCheckInDays: defaultCheckInDays,
		approveMaxRetries:  approveMaxRetries,
		now:                time.Now,
	}
}

// loadForMember fetches the agreement and its couple and verifies that
// userID is one of the couple's two members.
func (s *Service) loadForMember(ctx context.Context, userID, agreementID uuid.UUID) (*domain.Agreement, *domain.Couple, error) {
	a, err := s.agreements.GetByID(ctx, agreementID)
	if err != nil {
		return nil, nil, fmt.Errorf("get agreement: %w", err)
	}

	c, err := s.couples.GetByID(ctx, a.CoupleID)
	if err != nil {
		return nil, nil, fmt.Errorf("get couple: %w", err)
	}

	if !c.IsMember(userID) {
		return nil, nil, fmt.Errorf("user %s is not a member of couple %s: %w", userID, c.ID, domain.ErrForbidden)
	}
	return a, c, nil
}
