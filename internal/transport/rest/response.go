package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/tandemlab/tandem-backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// handleError maps domain sentinel errors onto HTTP status codes. Anything
// unmapped is a 500 and gets logged with the full error chain.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict, please retry")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// pathID parses the {id} path value of the matched route.
func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	return id, err == nil
}

type agreementResponse struct {
	ID                     string     `json:"id"`
	CoupleID               string     `json:"coupleId"`
	SourceSuggestionID     *string    `json:"sourceSuggestionId,omitempty"`
	Title                  string     `json:"title"`
	Description            *string    `json:"description,omitempty"`
	UnderlyingNeed         *string    `json:"underlyingNeed,omitempty"`
	Type                   string     `json:"type"`
	Frequency              string     `json:"frequency"`
	Status                 string     `json:"status"`
	ResponsibleUserID      *string    `json:"responsibleUserId,omitempty"`
	RequiresMutualApproval bool       `json:"requiresMutualApproval"`
	SuccessStreak          int        `json:"successStreak"`
	CheckInFrequencyDays   int        `json:"checkInFrequencyDays"`
	NextCheckInAt          *time.Time `json:"nextCheckInAt,omitempty"`
	LastCheckInAt          *time.Time `json:"lastCheckInAt,omitempty"`
	ExperimentEndDate      *time.Time `json:"experimentEndDate,omitempty"`
	PausedReason           *string    `json:"pausedReason,omitempty"`
	Themes                 []string   `json:"themes,omitempty"`
	CreatedAt              time.Time  `json:"createdAt"`
	UpdatedAt              time.Time  `json:"updatedAt"`
}

func toAgreementResponse(a *domain.Agreement) agreementResponse {
	return agreementResponse{
		ID:                     a.ID.String(),
		CoupleID:               a.CoupleID.String(),
		SourceSuggestionID:     uuidString(a.SourceSuggestionID),
		Title:                  a.Title,
		Description:            a.Description,
		UnderlyingNeed:         a.UnderlyingNeed,
		Type:                   string(a.Type),
		Frequency:              string(a.Frequency),
		Status:                 string(a.Status),
		ResponsibleUserID:      uuidString(a.ResponsibleUserID),
		RequiresMutualApproval: a.RequiresMutualApproval,
		SuccessStreak:          a.SuccessStreak,
		CheckInFrequencyDays:   a.CheckInFrequencyDays,
		NextCheckInAt:          a.NextCheckInAt,
		LastCheckInAt:          a.LastCheckInAt,
		ExperimentEndDate:      a.ExperimentEndDate,
		PausedReason:           a.PausedReason,
		Themes:                 a.Themes,
		CreatedAt:              a.CreatedAt,
		UpdatedAt:              a.UpdatedAt,
	}
}

type suggestionResponse struct {
	ID             string    `json:"id"`
	CoupleID       string    `json:"coupleId"`
	SessionID      *string   `json:"sessionId,omitempty"`
	Title          string    `json:"title"`
	UnderlyingNeed *string   `json:"underlyingNeed,omitempty"`
	Responsible    string    `json:"responsible"`
	Status         string    `json:"status"`
	AgreementID    *string   `json:"agreementId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toSuggestionResponse(s *domain.AgreementSuggestion) suggestionResponse {
	return suggestionResponse{
		ID:             s.ID.String(),
		CoupleID:       s.CoupleID.String(),
		SessionID:      uuidString(s.SessionID),
		Title:          s.Title,
		UnderlyingNeed: s.UnderlyingNeed,
		Responsible:    string(s.Responsible),
		Status:         string(s.Status),
		AgreementID:    uuidString(s.AgreementID),
		CreatedAt:      s.CreatedAt,
	}
}

type checkinResponse struct {
	ID                  string    `json:"id"`
	AgreementID         string    `json:"agreementId"`
	Status              string    `json:"status"`
	WhatWorked          *string   `json:"whatWorked,omitempty"`
	WhatWasHard         *string   `json:"whatWasHard,omitempty"`
	PartnerFeedback     *string   `json:"partnerFeedback,omitempty"`
	AdjustmentSuggested bool      `json:"adjustmentSuggested"`
	NextCheckInAt       time.Time `json:"nextCheckInAt"`
	CheckedInBy         string    `json:"checkedInBy"`
	CreatedAt           time.Time `json:"createdAt"`
}

func toCheckinResponse(c *domain.AgreementCheckin) checkinResponse {
	return checkinResponse{
		ID:                  c.ID.String(),
		AgreementID:         c.AgreementID.String(),
		Status:              string(c.Status),
		WhatWorked:          c.WhatWorked,
		WhatWasHard:         c.WhatWasHard,
		PartnerFeedback:     c.PartnerFeedback,
		AdjustmentSuggested: c.AdjustmentSuggested,
		NextCheckInAt:       c.NextCheckInAt,
		CheckedInBy:         c.CheckedInBy.String(),
		CreatedAt:           c.CreatedAt,
	}
}

type coupleResponse struct {
	ID          string     `json:"id"`
	Status      string     `json:"status"`
	DissolvedBy *string    `json:"dissolvedBy,omitempty"`
	DissolvedAt *time.Time `json:"dissolvedAt,omitempty"`
}

func toCoupleResponse(c *domain.Couple) coupleResponse {
	return coupleResponse{
		ID:          c.ID.String(),
		Status:      string(c.Status),
		DissolvedBy: uuidString(c.DissolvedBy),
		DissolvedAt: c.DissolvedAt,
	}
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
