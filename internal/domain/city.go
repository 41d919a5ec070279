package domain

import "time"

// AllCities is the selector that requests every configured city.
const AllCities = "all"

// Static profile of a supported city.
// Key is the stable identifier; the display name comes from the locale catalog.
type CityProfile struct {
	Key            string
	UTCOffsetHours int
	Location       Coordinates
}

// Zone returns a fixed time zone carrying the city's UTC offset.
func (c CityProfile) Zone() *time.Location {
	return time.FixedZone(c.Key, c.UTCOffsetHours*3600)
}

// ToUTC interprets the wall-clock fields of local in the city's offset
// and returns the corresponding UTC instant.
func (c CityProfile) ToUTC(local time.Time) time.Time {
	wall := time.Date(
		local.Year(), local.Month(), local.Day(),
		local.Hour(), local.Minute(), local.Second(), local.Nanosecond(),
		time.UTC,
	)
	return wall.Add(-time.Duration(c.UTCOffsetHours) * time.Hour)
}
