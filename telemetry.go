package server

import (
	"encoding/json"
	"net/http"

	"drift-and-burn/server/logging"
)

type diagnosticsResponse struct {
	Tick     uint64            `json:"tick"`
	Viewers  int               `json:"viewers"`
	Ships    int               `json:"ships"`
	Turrets  int               `json:"turrets"`
	Shots    int               `json:"shots"`
	Counters map[string]uint64 `json:"counters,omitempty"`
	Logging  *loggingStats     `json:"logging,omitempty"`
}

type loggingStats struct {
	EventsTotal  uint64 `json:"eventsTotal"`
	DroppedTotal uint64 `json:"droppedTotal"`
}

// Diagnostics samples the hub state for operators.
func (h *Hub) Diagnostics(router *logging.Router) diagnosticsResponse {
	h.mu.Lock()
	resp := diagnosticsResponse{
		Tick:    h.world.Tick(),
		Viewers: len(h.viewers),
		Ships:   len(h.world.ships),
		Turrets: len(h.world.turrets),
		Shots:   len(h.world.shots),
	}
	h.mu.Unlock()

	if h.counters != nil {
		resp.Counters = h.counters.Snapshot()
	}
	if router != nil {
		stats := router.Stats()
		resp.Logging = &loggingStats{
			EventsTotal:  stats.EventsTotal,
			DroppedTotal: stats.DroppedTotal,
		}
	}
	return resp
}

// HandleDiagnostics implements GET /diagnostics.
func (h *Hub) HandleDiagnostics(router *logging.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(h.Diagnostics(router)); err != nil {
			h.logger.Printf("failed to encode diagnostics: %v", err)
		}
	}
}
