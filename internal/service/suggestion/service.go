package suggestion

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tandemlab/tandem-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type suggestionRepo interface {
	Create(ctx context.Context, s *domain.AgreementSuggestion) (*domain.AgreementSuggestion, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AgreementSuggestion, error)
	ListPending(ctx context.Context, coupleID uuid.UUID, sessionID *uuid.UUID) ([]*domain.AgreementSuggestion, error)
	MarkDismissed(ctx context.Context, id uuid.UUID) (bool, error)
	MarkAccepted(ctx context.Context, id, agreementID uuid.UUID) (*domain.AgreementSuggestion, error)
}

type agreementRepo interface {
	Create(ctx context.Context, a *domain.Agreement) (*domain.Agreement, error)
	ListAwaitingApprovalBy(ctx context.Context, coupleID uuid.UUID, slot domain.CoupleSlot) ([]*domain.Agreement, error)
}

type coupleRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Couple, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements suggestion intake: creation, listing, dismissal and
// the accept flow that turns a suggestion into an agreement.
type Service struct {
	suggestions suggestionRepo
	agreements  agreementRepo
	couples     coupleRepo
	tx          txManager
	log         *slog.Logger

	defaultCheckInDays    int
	experimentCheckInDays int
	now                   func() time.Time
}

// NewService creates a new Suggestion service.
func NewService(log *slog.Logger, suggestions suggestionRepo, agreements agreementRepo, couples coupleRepo, tx txManager, defaultCheckInDays, experimentCheckInDays int) *Service {
	return &Service{
		suggestions:           suggestions,
		agreements:            agreements,
		couples:               couples,
		tx:                    tx,
		log:                   log.With("service", "suggestion"),
		defaultCheckInDays:    defaultCheckInDays,
		experimentCheckInDays: experimentCheckInDays,
		now:                   time.Now,
	}
}
