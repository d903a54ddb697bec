package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MikeSquared-Agency/Wheel/internal/options"
	"github.com/MikeSquared-Agency/Wheel/internal/session"
	"github.com/MikeSquared-Agency/Wheel/internal/simulate"
	"github.com/MikeSquared-Agency/Wheel/internal/wheel"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, wheel.ErrNoOptions),
		errors.Is(err, session.ErrSpinInProgress):
		return http.StatusConflict
	case errors.Is(err, options.ErrInvalidOption),
		errors.Is(err, simulate.ErrBadRuns),
		errors.Is(err, wheel.ErrWinnerOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, options.ErrIndexOutOfRange):
		return http.StatusNotFound
	case errors.Is(err, session.ErrBadPassword):
		return http.StatusUnauthorized
	case errors.Is(err, session.ErrLoginDisabled):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func writeErr(w http.ResponseWriter, err error) {
	msg := err.Error()
	if errors.Is(err, wheel.ErrNoOptions) {
		msg = "nothing to spin: " + msg
	}
	writeError(w, statusFor(err), msg)
}
