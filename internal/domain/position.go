package domain

import "time"

// Ecliptic longitude of one body, normalized to [0,360), with its nominal daily speed.
type PlanetPosition struct {
	Planet    PlanetID
	Longitude float64
	Speed     float64
}

// Per-planet line of a city result.
type PlanetReport struct {
	Planet    PlanetID
	Symbol    string
	Placement ZodiacPlacement
	Longitude float64
	Speed     float64
}

// Represents the full calculation for a single city at one moment.
// It is immutable output data, recomputed per request.
type CityResult struct {
	City      CityProfile
	LocalTime time.Time
	UTCTime   time.Time
	JulianDay float64
	Sunrise   time.Time
	Sunset    time.Time
	Planets   []PlanetReport
}

// Planet returns the report for p, or false if the result does not carry it.
func (r *CityResult) Planet(p PlanetID) (PlanetReport, bool) {
	for _, pr := range r.Planets {
		if pr.Planet == p {
			return pr, true
		}
	}
	return PlanetReport{}, false
}
