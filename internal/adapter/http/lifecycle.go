package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type closeResponse struct {
	Swept int64 `json:"swept"`
}

// handleClose closes a campaign and sweeps its balance to the owner.
// Only the owner passes; other senders get HTTP 403, a campaign that is
// already closed gets HTTP 409. On success it returns the swept amount.
func (h *Handler) handleClose(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	sender, ok := senderFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	swept, err := h.svc.CloseCampaign(r.Context(), id, sender)
	if err != nil {
		h.writeError(w, "close error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(closeResponse{Swept: swept}); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// handleOpen reopens a closed campaign. The same owner and phase guards
// apply as for close; there is no transfer. On success it returns HTTP
// 204 No Content.
func (h *Handler) handleOpen(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	sender, ok := senderFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	if err := h.svc.OpenCampaign(r.Context(), id, sender); err != nil {
		h.writeError(w, "open error", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
