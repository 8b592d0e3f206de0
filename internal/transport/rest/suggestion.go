package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/tandemlab/tandem-backend/internal/domain"
	"github.com/tandemlab/tandem-backend/internal/service/suggestion"
)

// suggestionService defines the minimal interface needed by SuggestionHandler.
type suggestionService interface {
	Create(ctx context.Context, input suggestion.CreateInput) (*domain.AgreementSuggestion, error)
	List(ctx context.Context, input suggestion.ListInput) (*suggestion.ListResult, error)
	Dismiss(ctx context.Context, input suggestion.DismissInput) (*domain.AgreementSuggestion, error)
	Accept(ctx context.Context, input suggestion.AcceptInput) (*suggestion.AcceptResult, error)
}

// SuggestionHandler serves suggestion REST endpoints.
type SuggestionHandler struct {
	svc suggestionService
	log *slog.Logger
}

// NewSuggestionHandler creates a SuggestionHandler.
func NewSuggestionHandler(svc suggestionService, logger *slog.Logger) *SuggestionHandler {
	return &SuggestionHandler{svc: svc, log: logger.With("handler", "suggestion")}
}

type createSuggestionRequest struct {
	CoupleID       string  `json:"coupleId"`
	SessionID      *string `json:"sessionId,omitempty"`
	Title          string  `json:"title"`
	UnderlyingNeed *string `json:"underlyingNeed,omitempty"`
	Responsible    string  `json:"responsible,omitempty"`
}

type acceptSuggestionRequest struct {
	Title                *string `json:"title,omitempty"`
	UnderlyingNeed       *string `json:"underlyingNeed,omitempty"`
	Responsible          *string `json:"responsible,omitempty"`
	Type                 *string `json:"type,omitempty"`
	Frequency            *string `json:"frequency,omitempty"`
	CheckInFrequencyDays *int    `json:"checkInFrequencyDays,omitempty"`
}

type listSuggestionsResponse struct {
	Suggestions      []suggestionResponse `json:"suggestions"`
	AwaitingApproval []agreementResponse  `json:"awaitingApproval"`
	Total            int                  `json:"total"`
}

type acceptSuggestionResponse struct {
	Agreement              agreementResponse  `json:"agreement"`
	Suggestion             suggestionResponse `json:"suggestion"`
	PartnerApprovalPending bool               `json:"partnerApprovalPending"`
}

// Create handles POST /v1/suggestions.
func (h *SuggestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	coupleID, err := uuid.Parse(req.CoupleID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid coupleId")
		return
	}
	sessionID, ok := parseOptionalUUID(req.SessionID)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid sessionId")
		return
	}

	created, err := h.svc.Create(r.Context(), suggestion.CreateInput{
		CoupleID:       coupleID,
		SessionID:      sessionID,
		Title:          req.Title,
		UnderlyingNeed: req.UnderlyingNeed,
		Responsible:    domain.ResponsibleParty(req.Responsible),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSuggestionResponse(created))
}

// List handles GET /v1/suggestions?coupleId=…&sessionId=…&userId=….
func (h *SuggestionHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	coupleID, err := uuid.Parse(q.Get("coupleId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid coupleId")
		return
	}
	sessionID, ok := parseOptionalUUID(optionalQuery(q.Get("sessionId")))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid sessionId")
		return
	}
	userID, ok := parseOptionalUUID(optionalQuery(q.Get("userId")))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid userId")
		return
	}

	result, err := h.svc.List(r.Context(), suggestion.ListInput{
		CoupleID:  coupleID,
		SessionID: sessionID,
		UserID:    userID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := listSuggestionsResponse{
		Suggestions:      make([]suggestionResponse, 0, len(result.Suggestions)),
		AwaitingApproval: make([]agreementResponse, 0, len(result.AwaitingApproval)),
		Total:            result.Total,
	}
	for _, s := range result.Suggestions {
		resp.Suggestions = append(resp.Suggestions, toSuggestionResponse(s))
	}
	for _, a := range result.AwaitingApproval {
		resp.AwaitingApproval = append(resp.AwaitingApproval, toAgreementResponse(a))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Dismiss handles POST /v1/suggestions/{id}/dismiss.
func (h *SuggestionHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid suggestion id")
		return
	}

	dismissed, err := h.svc.Dismiss(r.Context(), suggestion.DismissInput{SuggestionID: id})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSuggestionResponse(dismissed))
}

// Accept handles POST /v1/suggestions/{id}/accept.
func (h *SuggestionHandler) Accept(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid suggestion id")
		return
	}

	var req acceptSuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Accept(r.Context(), suggestion.AcceptInput{
		SuggestionID:         id,
		Title:                req.Title,
		UnderlyingNeed:       req.UnderlyingNeed,
		Responsible:          enumPtr[domain.ResponsibleParty](req.Responsible),
		Type:                 enumPtr[domain.AgreementType](req.Type),
		Frequency:            enumPtr[domain.AgreementFrequency](req.Frequency),
		CheckInFrequencyDays: req.CheckInFrequencyDays,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, acceptSuggestionResponse{
		Agreement:              toAgreementResponse(result.Agreement),
		Suggestion:             toSuggestionResponse(result.Suggestion),
		PartnerApprovalPending: result.PartnerApprovalPending,
	})
}

func parseOptionalUUID(s *string) (*uuid.UUID, bool) {
	if s == nil {
		return nil, true
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, false
	}
	return &id, true
}

func optionalQuery(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func enumPtr[T ~string](s *string) *T {
	if s == nil {
		return nil
	}
	v := T(*s)
	return &v
}
