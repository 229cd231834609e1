package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"donation-ledger/internal/core/port"
)

// createRequest is the instantiation input: the location allow-list and
// the deadline in milliseconds since epoch, mirroring the chain wire
// format for timestamps.
type createRequest struct {
	DonationLocations []string `json:"donation_locations"`
	EndTime           int64    `json:"end_time"`
}

type createResponse struct {
	ID                string   `json:"id"`
	Owner             string   `json:"owner"`
	DonationLocations []string `json:"donation_locations"`
	EndTime           int64    `json:"end_time"`
}

// handleCreate instantiates a new campaign. The request body is decoded
// into a createRequest and the authenticated sender becomes the owner.
// Parsing errors produce HTTP 400, internal errors HTTP 500. On success
// it returns HTTP 201 with the new campaign's id.
func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	sender, ok := senderFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	params := port.InitParams{
		DonationLocations: req.DonationLocations,
		EndTime:           time.UnixMilli(req.EndTime).UTC(),
	}
	c, err := h.svc.CreateCampaign(r.Context(), sender, params)
	if err != nil {
		h.writeError(w, "create campaign error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	resp := createResponse{
		ID:                c.ID.String(),
		Owner:             c.Owner,
		DonationLocations: c.AllowedLocations,
		EndTime:           c.Deadline.UnixMilli(),
	}
	if err = json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// viewResponse is the read-only projection of a campaign: donor count,
// phase, deadline in milliseconds since epoch and the held balance.
type viewResponse struct {
	DonorCount uint32 `json:"donor_count"`
	Phase      string `json:"phase"`
	Deadline   int64  `json:"deadline"`
	Balance    int64  `json:"balance"`
}

// handleView returns the campaign view. It is public: no authentication
// and no preconditions. Unknown ids result in HTTP 404.
func (h *Handler) handleView(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	view, err := h.svc.View(r.Context(), id)
	if err != nil {
		h.writeError(w, "view error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	resp := viewResponse{
		DonorCount: view.DonorCount,
		Phase:      string(view.Phase),
		Deadline:   view.Deadline.UnixMilli(),
		Balance:    view.Balance,
	}
	if err = json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
