package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MikeSquared-Agency/Wheel/internal/hermes"
	"github.com/MikeSquared-Agency/Wheel/internal/metrics"
	"github.com/MikeSquared-Agency/Wheel/internal/options"
	"github.com/MikeSquared-Agency/Wheel/internal/session"
	"github.com/MikeSquared-Agency/Wheel/internal/wheel"
)

const writeWait = 5 * time.Second

type SpinHandler struct {
	options    *options.Service
	sessions   *session.Store
	hermes     hermes.Client
	src        wheel.Source
	anim       wheel.Animation
	frameDelay time.Duration
	style      wheel.Style
	upgrader   websocket.Upgrader
	logger     *slog.Logger
}

func NewSpinHandler(svc *options.Service, sessions *session.Store, h hermes.Client, anim wheel.Animation, frameDelay time.Duration, style wheel.Style, logger *slog.Logger) *SpinHandler {
	return &SpinHandler{
		options:    svc,
		sessions:   sessions,
		hermes:     h,
		src:        wheel.GlobalSource,
		anim:       anim,
		frameDelay: frameDelay,
		style:      style,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		logger: logger,
	}
}

type SpinResponse struct {
	Winner       wheel.Pick `json:"winner"`
	Target       float64    `json:"target"`
	FrameDelayMs int64      `json:"frame_delay_ms"`
	Frames       []float64  `json:"frames"`
	SVG          string     `json:"svg"`
}

// start draws a winner for the request's session. The options snapshot is
// returned so the caller renders exactly the list the winner was drawn from.
func (h *SpinHandler) start(r *http.Request) ([]wheel.Option, wheel.Schedule, error) {
	list := h.options.List()
	var sched wheel.Schedule
	_, err := h.sessions.Update(sessionID(r), func(st session.State) (session.State, error) {
		next, s, err := session.StartSpin(st, list, h.src, h.anim, h.frameDelay, time.Now())
		sched = s
		return next, err
	})
	if err != nil {
		metrics.Spins.WithLabelValues("rejected").Inc()
		return nil, wheel.Schedule{}, err
	}

	metrics.Spins.WithLabelValues("started").Inc()
	hermes.Emit(h.hermes, h.logger, hermes.SubjectSpinStarted, hermes.SpinStartedEvent{
		SessionID: sessionID(r),
		Options:   len(list),
		Frames:    len(sched.Frames),
		Timestamp: time.Now().UTC(),
	})
	return list, sched, nil
}

func (h *SpinHandler) complete(r *http.Request, sched wheel.Schedule) {
	metrics.Spins.WithLabelValues("completed").Inc()
	metrics.Wins.WithLabelValues(strconv.Itoa(sched.Winner.Index)).Inc()
	hermes.Emit(h.hermes, h.logger, hermes.SubjectSpinCompleted, hermes.SpinCompletedEvent{
		SessionID: sessionID(r),
		Index:     sched.Winner.Index,
		Name:      sched.Winner.Name,
		Target:    sched.Target,
		Timestamp: time.Now().UTC(),
	})
	h.logger.Info("spin completed", "winner", sched.Winner.Name, "index", sched.Winner.Index)
}

// Spin returns the whole animation at once for clients that pace it
// themselves.
func (h *SpinHandler) Spin(w http.ResponseWriter, r *http.Request) {
	list, sched, err := h.start(r)
	if err != nil {
		writeErr(w, err)
		return
	}

	rotations := make([]float64, len(sched.Frames))
	for i, f := range sched.Frames {
		rotations[i] = f.Rotation
	}
	final := sched.Final()
	h.complete(r, sched)

	writeJSON(w, http.StatusOK, SpinResponse{
		Winner:       sched.Winner,
		Target:       sched.Target,
		FrameDelayMs: h.frameDelay.Milliseconds(),
		Frames:       rotations,
		SVG:          wheel.Render(list, final.Rotation, final.Highlight, h.style).SVG(),
	})
}

type streamMessage struct {
	Type      string      `json:"type"`
	Index     int         `json:"index,omitempty"`
	Rotation  float64     `json:"rotation"`
	Highlight *int        `json:"highlight,omitempty"`
	Winner    *wheel.Pick `json:"winner,omitempty"`
	SVG       string      `json:"svg,omitempty"`
	Error     string      `json:"error,omitempty"`
}

// Stream upgrades to a WebSocket and plays the spin frame by frame at the
// configured delay. Closing the socket cancels the animation; the drawn
// result stays on the session.
func (h *SpinHandler) Stream(w http.ResponseWriter, r *http.Request) {
	// Upgrade only sends the headers it is given
	var hdr http.Header
	if cookies := w.Header().Values("Set-Cookie"); len(cookies) > 0 {
		hdr = http.Header{"Set-Cookie": cookies}
	}
	conn, err := h.upgrader.Upgrade(w, r, hdr)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// the read side only exists to notice the client going away
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	list, sched, err := h.start(r)
	if err != nil {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		_ = conn.WriteJSON(streamMessage{Type: "error", Error: err.Error()})
		closeSocket(conn, websocket.CloseNormalClosure, "")
		return
	}

	ticker := time.NewTicker(max(h.frameDelay, time.Millisecond))
	defer ticker.Stop()

	for i, f := range sched.Frames {
		if i > 0 {
			select {
			case <-ctx.Done():
				h.cancelled(r, i)
				return
			case <-ticker.C:
			}
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(streamMessage{Type: "frame", Index: f.Index, Rotation: f.Rotation, Highlight: f.Highlight}); err != nil {
			h.cancelled(r, i)
			return
		}
	}

	final := sched.Final()
	winner := sched.Winner
	h.finish(r)
	h.complete(r, sched)

	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = conn.WriteJSON(streamMessage{
		Type:      "result",
		Rotation:  final.Rotation,
		Highlight: final.Highlight,
		Winner:    &winner,
		SVG:       wheel.Render(list, final.Rotation, final.Highlight, h.style).SVG(),
	})
	closeSocket(conn, websocket.CloseNormalClosure, "spin complete")
}

func (h *SpinHandler) finish(r *http.Request) {
	_, _ = h.sessions.Update(sessionID(r), func(st session.State) (session.State, error) {
		return session.FinishSpin(st, time.Now()), nil
	})
}

func (h *SpinHandler) cancelled(r *http.Request, frame int) {
	h.finish(r)
	metrics.Spins.WithLabelValues("cancelled").Inc()
	hermes.Emit(h.hermes, h.logger, hermes.SubjectSpinCancelled, hermes.SpinCancelledEvent{
		SessionID: sessionID(r),
		Frame:     frame,
		Reason:    "client disconnected",
		Timestamp: time.Now().UTC(),
	})
	h.logger.Info("spin cancelled", "frame", frame)
}

// Reset clears the last result ("spin again").
func (h *SpinHandler) Reset(w http.ResponseWriter, r *http.Request) {
	st, err := h.sessions.Update(sessionID(r), func(st session.State) (session.State, error) {
		return session.ClearResult(st, time.Now()), nil
	})
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionView(st, time.Now()))
}

func closeSocket(conn *websocket.Conn, code int, text string) {
	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, text), time.Now().Add(time.Second))
}
