package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/tandemlab/tandem-backend/internal/domain"
	"github.com/tandemlab/tandem-backend/internal/service/agreement"
)

// agreementService defines the minimal interface needed by AgreementHandler.
type agreementService interface {
	Approve(ctx context.Context, input agreement.ApproveInput) (*agreement.ApproveResult, error)
	Pause(ctx context.Context, input agreement.PauseInput) (*domain.Agreement, error)
	Resume(ctx context.Context, input agreement.ResumeInput) (*domain.Agreement, error)
	Achieve(ctx context.Context, input agreement.AchieveInput) (*domain.Agreement, error)
	Archive(ctx context.Context, input agreement.ArchiveInput) (*domain.Agreement, error)
	Update(ctx context.Context, input agreement.UpdateInput) (*domain.Agreement, error)
}

// AgreementHandler serves agreement lifecycle REST endpoints.
type AgreementHandler struct {
	svc agreementService
	log *slog.Logger
}

// NewAgreementHandler creates an AgreementHandler.
func NewAgreementHandler(svc agreementService, logger *slog.Logger) *AgreementHandler {
	return &AgreementHandler{svc: svc, log: logger.With("handler", "agreement")}
}

type pauseRequest struct {
	Reason *string `json:"reason,omitempty"`
}

type updateAgreementRequest struct {
	Title                *string  `json:"title,omitempty"`
	Description          *string  `json:"description,omitempty"`
	UnderlyingNeed       *string  `json:"underlyingNeed,omitempty"`
	Type                 *string  `json:"type,omitempty"`
	Frequency            *string  `json:"frequency,omitempty"`
	CheckInFrequencyDays *int     `json:"checkInFrequencyDays,omitempty"`
	Themes               []string `json:"themes,omitempty"`
}

type approveResponse struct {
	Agreement   agreementResponse `json:"agreement"`
	ApprovedBy  []string          `json:"approvedBy"`
	AllApproved bool              `json:"allApproved"`
	Message     string            `json:"message"`
}

// Approve handles POST /v1/agreements/{id}/approve.
func (h *AgreementHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid agreement id")
		return
	}

	result, err := h.svc.Approve(r.Context(), agreement.ApproveInput{AgreementID: id})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	approvedBy := make([]string, 0, len(result.ApprovedBy))
	for _, u := range result.ApprovedBy {
		approvedBy = append(approvedBy, u.String())
	}

	writeJSON(w, http.StatusOK, approveResponse{
		Agreement:   toAgreementResponse(result.Agreement),
		ApprovedBy:  approvedBy,
		AllApproved: result.AllApproved,
		Message:     result.Message,
	})
}

// Pause handles POST /v1/agreements/{id}/pause.
func (h *AgreementHandler) Pause(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid agreement id")
		return
	}

	// The body is optional; pause without a reason is fine.
	var req pauseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Pause(r.Context(), agreement.PauseInput{AgreementID: id, Reason: req.Reason})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAgreementResponse(updated))
}

// Resume handles POST /v1/agreements/{id}/resume.
func (h *AgreementHandler) Resume(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(ctx context.Context, id uuid.UUID) (*domain.Agreement, error) {
		return h.svc.Resume(ctx, agreement.ResumeInput{AgreementID: id})
	})
}

// Achieve handles POST /v1/agreements/{id}/achieve.
func (h *AgreementHandler) Achieve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(ctx context.Context, id uuid.UUID) (*domain.Agreement, error) {
		return h.svc.Achieve(ctx, agreement.AchieveInput{AgreementID: id})
	})
}

// Archive handles POST /v1/agreements/{id}/archive.
func (h *AgreementHandler) Archive(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(ctx context.Context, id uuid.UUID) (*domain.Agreement, error) {
		return h.svc.Archive(ctx, agreement.ArchiveInput{AgreementID: id})
	})
}

// Update handles PATCH /v1/agreements/{id}.
func (h *AgreementHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid agreement id")
		return
	}

	var req updateAgreementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), agreement.UpdateInput{
		AgreementID:          id,
		Title:                req.Title,
		Description:          req.Description,
		UnderlyingNeed:       req.UnderlyingNeed,
		Type:                 enumPtr[domain.AgreementType](req.Type),
		Frequency:            enumPtr[domain.AgreementFrequency](req.Frequency),
		CheckInFrequencyDays: req.CheckInFrequencyDays,
		Themes:               req.Themes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAgreementResponse(updated))
}

func (h *AgreementHandler) transition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id uuid.UUID) (*domain.Agreement, error)) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid agreement id")
		return
	}

	updated, err := op(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAgreementResponse(updated))
}
