package services

import "planet-positions-service/internal/domain"

// PlanetPositions returns the longitude of every body for the given Julian day,
// in domain.Planets() order, so the slice can be indexed by PlanetID.
//
// Only the Sun is computed. Every other body is placed at a fixed angular
// offset from it with a nominal speed; these are illustrative values that do
// not track real planetary motion.
func PlanetPositions(jd float64) []domain.PlanetPosition {
	sun := SolarLongitude(jd)

	out := make([]domain.PlanetPosition, 0, domain.PlanetCount)
	for _, p := range domain.Planets() {
		off := p.Offset()
		out = append(out, domain.PlanetPosition{
			Planet:    p,
			Longitude: NormalizeDegrees(sun + off.OffsetDegrees),
			Speed:     off.DailySpeed,
		})
	}
	return out
}
