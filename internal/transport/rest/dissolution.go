package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/tandemlab/tandem-backend/internal/domain"
	"github.com/tandemlab/tandem-backend/internal/service/dissolution"
)

// dissolutionService defines the minimal interface needed by DissolutionHandler.
type dissolutionService interface {
	Initiate(ctx context.Context, input dissolution.InitiateInput) (*dissolution.InitiateResult, error)
	Confirm(ctx context.Context, input dissolution.ConfirmInput) (*dissolution.ConfirmResult, error)
	Cancel(ctx context.Context) (*domain.Couple, error)
	Status(ctx context.Context) (*dissolution.StatusResult, error)
}

// DissolutionHandler serves couple dissolution REST endpoints.
type DissolutionHandler struct {
	svc dissolutionService
	log *slog.Logger
}

// NewDissolutionHandler creates a DissolutionHandler.
func NewDissolutionHandler(svc dissolutionService, logger *slog.Logger) *DissolutionHandler {
	return &DissolutionHandler{svc: svc, log: logger.With("handler", "dissolution")}
}

type dissolutionRequest struct {
	KeepLearnings bool `json:"keepLearnings,omitempty"`
}

type confirmDissolutionResponse struct {
	Couple             coupleResponse `json:"couple"`
	AgreementsAffected int64          `json:"agreementsAffected"`
}

type agreementSummaryResponse struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	UnderlyingNeed *string `json:"underlyingNeed,omitempty"`
}

type dissolutionStatusResponse struct {
	PendingDissolution bool                       `json:"pendingDissolution"`
	Couple             *coupleResponse            `json:"couple,omitempty"`
	InitiatedBy        *string                    `json:"initiatedBy,omitempty"`
	Agreements         []agreementSummaryResponse `json:"agreements,omitempty"`
}

// Initiate handles POST /v1/couple/dissolution.
func (h *DissolutionHandler) Initiate(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeBody(w, r)
	if !ok {
		return
	}

	result, err := h.svc.Initiate(r.Context(), dissolution.InitiateInput{KeepLearnings: req.KeepLearnings})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCoupleResponse(result.Couple))
}

// Confirm handles POST /v1/couple/dissolution/confirm.
func (h *DissolutionHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeBody(w, r)
	if !ok {
		return
	}

	result, err := h.svc.Confirm(r.Context(), dissolution.ConfirmInput{KeepLearnings: req.KeepLearnings})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, confirmDissolutionResponse{
		Couple:             toCoupleResponse(result.Couple),
		AgreementsAffected: result.AgreementsAffected,
	})
}

// Cancel handles POST /v1/couple/dissolution/cancel.
func (h *DissolutionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Cancel(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCoupleResponse(c))
}

// Status handles GET /v1/couple/dissolution.
func (h *DissolutionHandler) Status(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Status(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := dissolutionStatusResponse{PendingDissolution: result.Pending}
	if result.Pending {
		c := toCoupleResponse(result.Couple)
		resp.Couple = &c
		resp.InitiatedBy = uuidString(result.InitiatedBy)
		resp.Agreements = make([]agreementSummaryResponse, 0, len(result.Agreements))
		for _, a := range result.Agreements {
			resp.Agreements = append(resp.Agreements, agreementSummaryResponse{
				ID:             a.ID.String(),
				Title:          a.Title,
				UnderlyingNeed: a.UnderlyingNeed,
			})
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// decodeBody parses the optional keepLearnings body. An empty body is valid.
func (h *DissolutionHandler) decodeBody(w http.ResponseWriter, r *http.Request) (dissolutionRequest, bool) {
	var req dissolutionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return req, false
	}
	return req, true
}
