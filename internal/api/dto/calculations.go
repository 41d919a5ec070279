package dto

import "time"

type CalculationResponse struct {
	ID           string    `json:"id"`
	City         string    `json:"city"`
	LocalTime    time.Time `json:"local_time"`
	UTCTime      time.Time `json:"utc_time"`
	JulianDay    float64   `json:"julian_day"`
	SunLongitude float64   `json:"sun_longitude"`
	CreatedAt    time.Time `json:"created_at"`
}

type ListCalculationsResponse struct {
	Calculations []CalculationResponse `json:"calculations"`
}
