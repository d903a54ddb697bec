package api

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/MikeSquared-Agency/Wheel/internal/options"
	"github.com/MikeSquared-Agency/Wheel/internal/wheel"
)

type WheelHandler struct {
	options *options.Service
	style   wheel.Style
}

func NewWheelHandler(svc *options.Service, style wheel.Style) *WheelHandler {
	return &WheelHandler{options: svc, style: style}
}

// renderParams reads ?rotation= and ?highlight= from the query.
func renderParams(r *http.Request) (float64, *int, error) {
	q := r.URL.Query()
	var rotation float64
	if v := q.Get("rotation"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, nil, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, nil, errors.New("rotation must be finite")
		}
		rotation = f
	}
	var highlight *int
	if v := q.Get("highlight"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, nil, err
		}
		highlight = &n
	}
	return rotation, highlight, nil
}

func (h *WheelHandler) Geometry(w http.ResponseWriter, r *http.Request) {
	rotation, highlight, err := renderParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rotation or highlight")
		return
	}
	writeJSON(w, http.StatusOK, wheel.Render(h.options.List(), rotation, highlight, h.style))
}

func (h *WheelHandler) SVG(w http.ResponseWriter, r *http.Request) {
	rotation, highlight, err := renderParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rotation or highlight")
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	wheel.Render(h.options.List(), rotation, highlight, h.style).WriteSVG(w)
}
