package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/tandemlab/tandem-backend/internal/domain"
	"github.com/tandemlab/tandem-backend/internal/service/checkin"
)

// checkinService defines the minimal interface needed by CheckinHandler.
type checkinService interface {
	Record(ctx context.Context, input checkin.RecordInput) (*checkin.RecordResult, error)
	List(ctx context.Context, input checkin.ListInput) ([]*domain.AgreementCheckin, error)
}

// CheckinHandler serves check-in REST endpoints.
type CheckinHandler struct {
	svc checkinService
	log *slog.Logger
}

// NewCheckinHandler creates a CheckinHandler.
func NewCheckinHandler(svc checkinService, logger *slog.Logger) *CheckinHandler {
	return &CheckinHandler{svc: svc, log: logger.With("handler", "checkin")}
}

type recordCheckinRequest struct {
	Status              string  `json:"status"`
	WhatWorked          *string `json:"whatWorked,omitempty"`
	WhatWasHard         *string `json:"whatWasHard,omitempty"`
	PartnerFeedback     *string `json:"partnerFeedback,omitempty"`
	AdjustmentSuggested bool    `json:"adjustmentSuggested,omitempty"`
	OverrideNextDays    *int    `json:"overrideNextDays,omitempty"`
}

type recordCheckinResponse struct {
	Checkin   checkinResponse   `json:"checkin"`
	Agreement agreementResponse `json:"agreement"`
	Message   string            `json:"message"`
}

// Record handles POST /v1/agreements/{id}/checkins.
func (h *CheckinHandler) Record(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid agreement id")
		return
	}

	var req recordCheckinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Record(r.Context(), checkin.RecordInput{
		AgreementID:         id,
		Status:              domain.CheckinStatus(req.Status),
		WhatWorked:          req.WhatWorked,
		WhatWasHard:         req.WhatWasHard,
		PartnerFeedback:     req.PartnerFeedback,
		AdjustmentSuggested: req.AdjustmentSuggested,
		OverrideNextDays:    req.OverrideNextDays,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, recordCheckinResponse{
		Checkin:   toCheckinResponse(result.Checkin),
		Agreement: toAgreementResponse(result.Agreement),
		Message:   result.Message,
	})
}

// List handles GET /v1/agreements/{id}/checkins?limit=….
func (h *CheckinHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid agreement id")
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	checkins, err := h.svc.List(r.Context(), checkin.ListInput{AgreementID: id, Limit: limit})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]checkinResponse, 0, len(checkins))
	for _, c := range checkins {
		resp = append(resp, toCheckinResponse(c))
	}

	writeJSON(w, http.StatusOK, resp)
}
