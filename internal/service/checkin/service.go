package checkin

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

type agreementRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Agreement, error)
	UpdateCheckInState(ctx context.Context, id uuid.UUID, version int64, streak int, lastCheckInAt, nextCheckInAt time.Time) (*domain.Agreement, error)
}

type checkinRepo interface {
	Create(ctx context.Context, c *domain.AgreementCheckin) (*domain.AgreementCheckin, error)
	ListByAgreement(ctx context.Context, agreementID uuid.UUID, limit int) ([]*domain.AgreementCheckin, error)
}

type coupleRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Couple, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type metricsRecorder interface {
	RecordCheckin(status string)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements check-in recording and streak bookkeeping.
type Service struct {
	agreements agreementRepo
	checkins   checkinRepo
	couples    coupleRepo
	tx         txManager
	metrics    metricsRecorder
	log        *slog.Logger

	defaultCheckInDays int
	now                func() time.Time
}

// NewService creates a new CheckIn service.
func NewService(log *slog.Logger, agreements agreementRepo, checkins checkinRepo, couples coupleRepo, tx txManager, metrics metricsRecorder, defaultCheckInDays int) *Service {
	return &Service{
		agreements:         agreements,
		checkins:           checkins,
		couples:            couples,
		tx:                 tx,
		metrics:            metrics,
		log:                log.With("service", "checkin"),
		defaultCheckInDays: defaultCheckInDays,
		now:                time.Now,
	}
}
