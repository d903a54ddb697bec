package api

import (
	"net/http"
	"strconv"

	"github.com/MikeSquared-Agency/Wheel/internal/options"
	"github.com/MikeSquared-Agency/Wheel/internal/session"
	"github.com/MikeSquared-Agency/Wheel/internal/simulate"
	"github.com/MikeSquared-Agency/Wheel/internal/wheel"
)

const defaultSimulationRuns = 10000

type AdminHandler struct {
	options  *options.Service
	sessions *session.Store
	src      wheel.Source
}

func NewAdminHandler(svc *options.Service, sessions *session.Store) *AdminHandler {
	return &AdminHandler{options: svc, sessions: sessions, src: wheel.GlobalSource}
}

type StatsResponse struct {
	Options     int `json:"options"`
	TotalWeight int `json:"total_weight"`
	Sessions    int `json:"sessions"`
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	list := h.options.List()
	writeJSON(w, http.StatusOK, StatsResponse{
		Options:     len(list),
		TotalWeight: wheel.TotalWeight(list),
		Sessions:    h.sessions.Count(),
	})
}

// Simulate spins the current list ?n= times without touching any session.
func (h *AdminHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	n := defaultSimulationRuns
	if v := r.URL.Query().Get("n"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid n")
			return
		}
		n = parsed
	}

	rep, err := simulate.Run(h.src, h.options.List(), n, nil)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}
