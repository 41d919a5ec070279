package api

import (
	"net/http"
	"planet-positions-service/internal/api/handlers"
	"planet-positions-service/internal/domain"
	"planet-positions-service/internal/platform/metrics"
	"planet-positions-service/internal/ports"
	"planet-positions-service/internal/services"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Deps are the collaborators the HTTP layer needs.
// When Calc is nil the calculation routes answer 503 with InitErr.
type Deps struct {
	Calc        *services.Calculator
	InitErr     error
	Log         ports.CalculationLog
	Metrics     *metrics.Collector
	Logger      *zap.Logger
	DefaultLang language.Tag
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Calc == nil && d.InitErr == nil {
		d.InitErr = domain.ErrEngineUnavailable
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(observe(d.Logger, d.Metrics))
	r.Use(middleware.Timeout(30 * time.Second))

	health := &handlers.HealthHandler{InitErr: d.InitErr}
	r.Get("/health", health.Health)
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())
	}

	if d.Calc == nil {
		unavailable := handlers.Unavailable(d.InitErr)
		for _, p := range []string{"/positions", "/cities", "/tables", "/calculations"} {
			r.HandleFunc(p, unavailable)
		}
		return r
	}

	positions := &handlers.PositionsHandler{
		Calc:        d.Calc,
		Log:         d.Log,
		Metrics:     d.Metrics,
		DefaultLang: d.DefaultLang,
	}
	tables := &handlers.TablesHandler{Cities: d.Calc, DefaultLang: d.DefaultLang}
	calcs := &handlers.CalculationsHandler{Log: d.Log}

	r.Get("/positions", positions.Positions)
	r.Get("/cities", tables.ListCities)
	r.Get("/tables", tables.Tables)
	r.Get("/calculations", calcs.List)

	return r
}
