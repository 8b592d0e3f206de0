package rest

import (
	"log/slog"
	"net/http"

	"github.com/tandemlab/tandem-backend/internal/metrics"
	"github.com/tandemlab/tandem-backend/internal/transport/middleware"
)

// RouterDeps bundles everything the HTTP router needs.
type RouterDeps struct {
	Suggestions *SuggestionHandler
	Agreements  *AgreementHandler
	Checkins    *CheckinHandler
	Dissolution *DissolutionHandler
	Health      *HealthHandler

	Auth    middleware.Middleware
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// NewRouter builds the HTTP routing table. Every business route runs behind
// RequestID, Logger, Recovery, per-route Metrics and Auth; probes and the
// metrics endpoint stay outside the chain.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	route := func(pattern, name string, h http.HandlerFunc) {
		mux.Handle(pattern, middleware.Chain(
			middleware.Metrics(deps.Metrics, name),
			deps.Auth,
		)(h))
	}

	route("POST /v1/suggestions", "create_suggestion", deps.Suggestions.Create)
	route("GET /v1/suggestions", "list_suggestions", deps.Suggestions.List)
	route("POST /v1/suggestions/{id}/dismiss", "dismiss_suggestion", deps.Suggestions.Dismiss)
	route("POST /v1/suggestions/{id}/accept", "accept_suggestion", deps.Suggestions.Accept)

	route("POST /v1/agreements/{id}/approve", "approve_agreement", deps.Agreements.Approve)
	route("POST /v1/agreements/{id}/pause", "pause_agreement", deps.Agreements.Pause)
	route("POST /v1/agreements/{id}/resume", "resume_agreement", deps.Agreements.Resume)
	route("POST /v1/agreements/{id}/achieve", "achieve_agreement", deps.Agreements.Achieve)
	route("POST /v1/agreements/{id}/archive", "archive_agreement", deps.Agreements.Archive)
	route("PATCH /v1/agreements/{id}", "update_agreement", deps.Agreements.Update)

	route("POST /v1/agreements/{id}/checkins", "record_checkin", deps.Checkins.Record)
	route("GET /v1/agreements/{id}/checkins", "list_checkins", deps.Checkins.List)

	route("POST /v1/couple/dissolution", "initiate_dissolution", deps.Dissolution.Initiate)
	route("POST /v1/couple/dissolution/confirm", "confirm_dissolution", deps.Dissolution.Confirm)
	route("POST /v1/couple/dissolution/cancel", "cancel_dissolution", deps.Dissolution.Cancel)
	route("GET /v1/couple/dissolution", "dissolution_status", deps.Dissolution.Status)

	mux.HandleFunc("GET /health", deps.Health.Health)
	mux.HandleFunc("GET /ready", deps.Health.Ready)
	mux.HandleFunc("GET /live", deps.Health.Live)
	mux.Handle("GET /metrics", deps.Metrics.Handler())

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(deps.Logger),
		middleware.Recovery(deps.Logger),
	)(mux)
}
