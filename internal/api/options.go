package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MikeSquared-Agency/Wheel/internal/options"
	"github.com/MikeSquared-Agency/Wheel/internal/wheel"
)

type OptionsHandler struct {
	options *options.Service
}

func NewOptionsHandler(svc *options.Service) *OptionsHandler {
	return &OptionsHandler{options: svc}
}

type OptionView struct {
	Index   int     `json:"index"`
	Name    string  `json:"name"`
	Weight  int     `json:"weight"`
	Percent float64 `json:"percent"`
}

type OptionsResponse struct {
	Options     []OptionView `json:"options"`
	TotalWeight int          `json:"total_weight"`
}

func newOptionsResponse(list []wheel.Option) OptionsResponse {
	dist := wheel.Distribution(list)
	views := make([]OptionView, len(list))
	for i, o := range list {
		views[i] = OptionView{Index: i, Name: o.Name, Weight: o.Weight, Percent: dist[i] * 100}
	}
	return OptionsResponse{Options: views, TotalWeight: wheel.TotalWeight(list)}
}

func (h *OptionsHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newOptionsResponse(h.options.List()))
}

func (h *OptionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in options.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	list, err := h.options.Add(r.Context(), in)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newOptionsResponse(list))
}

func (h *OptionsHandler) Update(w http.ResponseWriter, r *http.Request) {
	index, ok := indexParam(w, r)
	if !ok {
		return
	}
	var in options.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	list, err := h.options.Update(r.Context(), index, in)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newOptionsResponse(list))
}

func (h *OptionsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	index, ok := indexParam(w, r)
	if !ok {
		return
	}
	list, err := h.options.Delete(r.Context(), index)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newOptionsResponse(list))
}

func (h *OptionsHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var in []options.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	list, err := h.options.Replace(r.Context(), in)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newOptionsResponse(list))
}

func indexParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid option index")
		return 0, false
	}
	return index, true
}
