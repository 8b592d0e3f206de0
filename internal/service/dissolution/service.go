package dissolution

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

type coupleRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Couple, error)
	GetPendingDissolutionByUserID(ctx context.Context, userID uuid.UUID) (*domain.Couple, error)
	MarkPendingDissolution(ctx context.Context, id, initiatedBy uuid.UUID, at time.Time) (*domain.Couple, error)
	MarkDissolved(ctx context.Context, id uuid.UUID) (*domain.Couple, error)
	Reactivate(ctx context.Context, id uuid.UUID) (*domain.Couple, error)
}

type userRepo interface {
	ClearCoupleLink(ctx context.Context, id uuid.UUID) error
	SetCoupleLink(ctx context.Context, id, coupleID, partnerID uuid.UUID) error
}

type agreementRepo interface {
	ListByCoupleStatuses(ctx context.Context, coupleID uuid.UUID, statuses []domain.AgreementStatus) ([]*domain.Agreement, error)
	DissolveByCouple(ctx context.Context, coupleID uuid.UUID) (int64, error)
}

type inviteRepo interface {
	RevokePendingByUsers(ctx context.Context, userIDs []uuid.UUID) (int64, error)
}

// learningsExtractor distills per-user insights before a couple's data is
// detached. External, best-effort: failures are logged, never fatal.
type learningsExtractor interface {
	ExtractLearnings(ctx context.Context, userID, coupleID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type metricsRecorder interface {
	RecordDissolutionStep(step string)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the couple dissolution workflow.
type Service struct {
	couples    coupleRepo
	users      userRepo
	agreements agreementRepo
	invites    inviteRepo
	insights   learningsExtractor
	tx         txManager
	metrics    metricsRecorder
	log        *slog.Logger

	now func() time.Time
}

// NewService creates a new Dissolution service.
func NewService(log *slog.Logger, couples coupleRepo, users userRepo, agreements agreementRepo, invites inviteRepo, insights learningsExtractor, tx txManager, metrics metricsRecorder) *Service {
	return &Service{
		couples:    couples,
		users:      users,
		agreements: agreements,
		invites:    invites,
		insights:   insights,
		tx:         tx,
		metrics:    metrics,
		log:        log.With("service", "dissolution"),
		now:        time.Now,
	}
}

// extractLearnings runs the external extraction and swallows failures.
func (s *Service) extractLearnings(ctx context.Context, userID, coupleID uuid.UUID) {
	if err := s.insights.ExtractLearnings(ctx, userID, coupleID); err != nil {
		cerr := domain.NewCollaboratorError("learnings-extraction", err)
		s.log.Warn("learnings extraction failed", "user_id", userID, "couple_id", coupleID, "error", cerr)
	}
}
