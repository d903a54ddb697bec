package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/MikeSquared-Agency/Wheel/internal/session"
	"github.com/MikeSquared-Agency/Wheel/internal/wheel"
)

type SessionHandler struct {
	sessions *session.Store
	password string
	logger   *slog.Logger
}

func NewSessionHandler(sessions *session.Store, adminPassword string, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{sessions: sessions, password: adminPassword, logger: logger}
}

type SessionView struct {
	Authenticated bool        `json:"authenticated"`
	Spinning      bool        `json:"spinning"`
	Result        *wheel.Pick `json:"result,omitempty"`
	SpinAngle     float64     `json:"spin_angle"`
}

func newSessionView(st session.State, now time.Time) SessionView {
	return SessionView{
		Authenticated: st.Authenticated,
		Spinning:      st.Spinning(now),
		Result:        st.Result,
		SpinAngle:     st.SpinAngle,
	}
}

func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	st, _ := h.sessions.Get(sessionID(r))
	writeJSON(w, http.StatusOK, newSessionView(st, time.Now()))
}

func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	st, err := h.sessions.Update(sessionID(r), func(st session.State) (session.State, error) {
		return session.Login(st, req.Password, h.password, time.Now())
	})
	if err != nil {
		h.logger.Warn("admin login failed", "error", err)
		writeErr(w, err)
		return
	}
	h.logger.Info("admin logged in")
	writeJSON(w, http.StatusOK, newSessionView(st, time.Now()))
}

func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	st, _ := h.sessions.Update(sessionID(r), func(st session.State) (session.State, error) {
		return session.Logout(st, time.Now()), nil
	})
	writeJSON(w, http.StatusOK, newSessionView(st, time.Now()))
}
