package services

import "time"

// J2000 is the Julian day of 2000-01-01 12:00 UTC.
const J2000 = 2451545.0

const daysPerJulianCentury = 36525.0

// ToJulianDay converts a UTC instant to a Julian day.
//
// The integer part follows the Fliegel–Van Flandern Gregorian day-number
// formula; the time of day is added as (hour-12)/24 so that whole days
// start at noon. Any proleptic Gregorian date is accepted.
func ToJulianDay(utc time.Time) float64 {
	utc = utc.UTC()
	year, month, day := utc.Date()

	hour := float64(utc.Hour()) +
		float64(utc.Minute())/60 +
		(float64(utc.Second())+float64(utc.Nanosecond())/1e9)/3600

	a := floorDiv(14-int(month), 12)
	y := year + 4800 - a
	m := int(month) + 12*a - 3

	jdn := day + floorDiv(153*m+2, 5) + 365*y +
		floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) - 32045

	return float64(jdn) + (hour-12)/24
}

// JulianCenturies returns the number of Julian centuries since J2000.0.
func JulianCenturies(jd float64) float64 {
	return (jd - J2000) / daysPerJulianCentury
}

// Integer division rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
