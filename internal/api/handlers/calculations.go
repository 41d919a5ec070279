package handlers

import (
	"net/http"
	"planet-positions-service/internal/api/dto"
	"planet-positions-service/internal/ports"
	"strconv"

	"go.uber.org/zap"
)

const (
	defaultCalculationsLimit = 20
	maxCalculationsLimit     = 100
)

// CalculationsHandler exposes the calculation log.
type CalculationsHandler struct {
	Log ports.CalculationLog
}

func (h *CalculationsHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodGet) {
		return
	}

	limit := defaultCalculationsLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxCalculationsLimit {
			writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	if h.Log == nil {
		writeJSON(w, r, http.StatusOK, dto.ListCalculationsResponse{Calculations: []dto.CalculationResponse{}})
		return
	}

	entries, err := h.Log.Recent(r.Context(), limit)
	if err != nil {
		zap.L().Error("list calculations failed", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListCalculationsResponse{
		Calculations: make([]dto.CalculationResponse, 0, len(entries)),
	}
	for _, e := range entries {
		res.Calculations = append(res.Calculations, dto.CalculationResponse{
			ID:           e.ID,
			City:         e.City,
			LocalTime:    e.LocalTime,
			UTCTime:      e.UTCTime,
			JulianDay:    e.JulianDay,
			SunLongitude: e.SunLongitude,
			CreatedAt:    e.CreatedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
