package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"planet-positions-service/internal/api/dto"
	"planet-positions-service/internal/domain"
	"planet-positions-service/internal/locale"
	"planet-positions-service/internal/platform/metrics"
	"planet-positions-service/internal/ports"
	"planet-positions-service/internal/services"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

const utcISOLayout = "2006-01-02T15:04:05.000Z07:00"

type PositionsHandler struct {
	Calc        *services.Calculator
	Log         ports.CalculationLog
	Metrics     *metrics.Collector
	DefaultLang language.Tag
	Now         func() time.Time
}

// Positions validates the date, time and city selector, computes the
// results for every requested city and records them in the calculation log.
func (h *PositionsHandler) Positions(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()
	query := dto.PositionsQuery{
		Date: q.Get("date"),
		Time: q.Get("time"),
		City: q.Get("city"),
		Lang: q.Get("lang"),
	}

	local, err := query.Moment()
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	results, err := h.Calc.CalculateBatch(r.Context(), local, query.City)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownCity):
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("unknown city %q", query.City))
		default:
			zap.L().Error("calculate positions failed", zap.Error(err))
			writeError(w, r, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	if err := services.RecordCalculations(r.Context(), h.Log, results, now()); err != nil {
		// The log is auxiliary; the caller still gets the computed result.
		zap.L().Warn("record calculations failed", zap.Error(err))
	}

	names := namesFor(r, h.DefaultLang)
	res := dto.PositionsResponse{
		Lang:    names.Tag.String(),
		Results: make([]dto.CityResultResponse, 0, len(results)),
	}
	for _, cr := range results {
		if h.Metrics != nil {
			h.Metrics.Calculations.WithLabelValues(cr.City.Key).Inc()
		}
		res.Results = append(res.Results, toCityResultResponse(cr, names))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func toCityResultResponse(cr *domain.CityResult, names *locale.Names) dto.CityResultResponse {
	planets := make([]dto.PlanetResponse, 0, len(cr.Planets))
	for _, p := range cr.Planets {
		planets = append(planets, dto.PlanetResponse{
			Planet:       p.Planet.Key(),
			Name:         names.Planet(p.Planet),
			Symbol:       p.Symbol,
			Sign:         p.Placement.Sign.Key(),
			SignName:     names.Sign(p.Placement.Sign),
			Degrees:      p.Placement.DisplayDegrees,
			FullPosition: fmt.Sprintf("%.2f", p.Longitude),
			Speed:        fmt.Sprintf("%.3f", p.Speed),
		})
	}

	out := dto.CityResultResponse{
		City:           cr.City.Key,
		CityName:       names.City(cr.City.Key),
		UTCOffsetHours: cr.City.UTCOffsetHours,
		LocalTime:      cr.LocalTime.Format(names.TimeLayout),
		UTCTime:        cr.UTCTime.UTC().Format(utcISOLayout),
		JulianDay:      cr.JulianDay,
		Planets:        planets,
	}
	// Polar day and night have no sunrise or sunset.
	if !cr.Sunrise.IsZero() && !cr.Sunset.IsZero() {
		rise, set := cr.Sunrise.UTC(), cr.Sunset.UTC()
		out.Sunrise, out.Sunset = &rise, &set
	}
	return out
}
