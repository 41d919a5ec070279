package handlers

import (
	"net/http"
)

// HealthHandler reports liveness and whether the calculation engine initialized.
type HealthHandler struct {
	InitErr error
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodGet) {
		return
	}

	if h.InitErr != nil {
		writeJSON(w, r, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
			"error":  h.InitErr.Error(),
		})
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// Unavailable answers every request with 503 and the initialization error.
// It stands in for calculation routes when the engine failed to start.
func Unavailable(initErr error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusServiceUnavailable, initErr.Error())
	}
}
