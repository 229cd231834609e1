package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"donation-ledger/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds a CampaignUseCase to execute business logic, a logger
// for structured logging and the sender authentication. Routes are
// registered on a chi.Router for convenient method handling.
type Handler struct {
	svc    port.CampaignUseCase
	logger *slog.Logger
	auth   *SenderAuth
	router chi.Router
}

// NewHandler creates a handler with all routes configured. Creating,
// closing and opening a campaign require an authenticated sender; the
// view endpoint is public and donate identifies nobody, matching the
// ledger's rule that donors are not tracked.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger, auth *SenderAuth) *Handler {
	h := &Handler{svc: svc, logger: logger, auth: auth}
	r := chi.NewRouter()

	r.Route("/api/v1/campaigns", func(r chi.Router) {
		r.Get("/{id}", h.handleView)
		r.Post("/{id}/donate", h.handleDonate)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)
			r.Post("/", h.handleCreate)
			r.Post("/{id}/close", h.handleClose)
			r.Post("/{id}/open", h.handleOpen)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
