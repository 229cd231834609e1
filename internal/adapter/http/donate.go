package httpadapter

import (
	"encoding/json"
	"net/http"

	"donation-ledger/internal/core/port"
)

// donateRequest carries one donate invocation: the claimed location and
// the attached amount in integer units.
type donateRequest struct {
	Location string `json:"location"`
	Amount   int64  `json:"amount"`
}

// handleDonate processes a donation against a campaign. The body is
// decoded into a donateRequest; a malformed body produces HTTP 400. The
// state machine's own rejections map to distinct statuses so callers
// can tell "too late", "closed" and "bad location" apart. On success it
// returns HTTP 202 with no body.
func (h *Handler) handleDonate(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	var req donateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	don := port.Donation{Location: req.Location, Amount: req.Amount}
	if err := h.svc.Donate(r.Context(), id, don); err != nil {
		h.writeError(w, "donate error", err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
