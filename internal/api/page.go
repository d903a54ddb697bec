package api

import (
	_ "embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/MikeSquared-Agency/Wheel/internal/options"
	"github.com/MikeSquared-Agency/Wheel/internal/session"
	"github.com/MikeSquared-Agency/Wheel/internal/wheel"
)

//go:embed templates/index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

type PageHandler struct {
	options  *options.Service
	sessions *session.Store
	style    wheel.Style
	logger   *slog.Logger
}

func NewPageHandler(svc *options.Service, sessions *session.Store, style wheel.Style, logger *slog.Logger) *PageHandler {
	return &PageHandler{options: svc, sessions: sessions, style: style, logger: logger}
}

type pageData struct {
	SVG           template.HTML
	Center        float64
	Empty         bool
	Options       []OptionView
	Result        *wheel.Pick
	Spinning      bool
	Authenticated bool
}

// Index serves the wheel at the session's last resting angle, with the
// winner highlighted while a result is showing.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	st, _ := h.sessions.Get(sessionID(r))
	list := h.options.List()

	var highlight *int
	rotation := 0.0
	if st.Result != nil && st.Result.Index < len(list) {
		idx := st.Result.Index
		highlight = &idx
		rotation = st.SpinAngle
	}
	wh := wheel.Render(list, rotation, highlight, h.style)

	data := pageData{
		// labels are escaped by the SVG encoder
		SVG:           template.HTML(wh.SVG()),
		Center:        wh.Center().X,
		Empty:         wh.Empty(),
		Options:       newOptionsResponse(list).Options,
		Result:        st.Result,
		Spinning:      st.Spinning(time.Now()),
		Authenticated: st.Authenticated,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		h.logger.Error("render index", "error", err)
	}
}
