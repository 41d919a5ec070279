package handlers

import (
	"net/http"
	"planet-positions-service/internal/api/dto"
	"planet-positions-service/internal/domain"

	"golang.org/x/text/language"
)

type cityLister interface {
	ListCities() []domain.CityProfile
}

// TablesHandler exposes the static configuration tables.
type TablesHandler struct {
	Cities      cityLister
	DefaultLang language.Tag
}

func (h *TablesHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodGet) {
		return
	}

	names := namesFor(r, h.DefaultLang)
	cities := h.Cities.ListCities()

	res := dto.ListCitiesResponse{Cities: make([]dto.CityResponse, 0, len(cities))}
	for _, c := range cities {
		res.Cities = append(res.Cities, dto.CityResponse{
			Key:            c.Key,
			Name:           names.City(c.Key),
			UTCOffsetHours: c.UTCOffsetHours,
			Lat:            c.Location.Lat,
			Lon:            c.Location.Lon,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *TablesHandler) Tables(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodGet) {
		return
	}

	names := namesFor(r, h.DefaultLang)
	res := dto.TablesResponse{
		Lang:    names.Tag.String(),
		Signs:   make([]dto.SignResponse, 0, domain.SignCount),
		Planets: make([]dto.PlanetInfoResponse, 0, domain.PlanetCount),
	}
	for _, s := range domain.Signs() {
		res.Signs = append(res.Signs, dto.SignResponse{Key: s.Key(), Name: names.Sign(s)})
	}
	for _, p := range domain.Planets() {
		res.Planets = append(res.Planets, dto.PlanetInfoResponse{
			Key:    p.Key(),
			Name:   names.Planet(p),
			Symbol: p.Symbol(),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
