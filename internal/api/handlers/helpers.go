package handlers

import (
	"encoding/json"
	"net/http"
	"planet-positions-service/internal/locale"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("encode failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

func allowOnly(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	return false
}

// Language selection: ?lang= first, then Accept-Language.
func namesFor(r *http.Request, fallback language.Tag) *locale.Names {
	tag := locale.Resolve(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"), fallback)
	return locale.For(tag)
}
