package services

import "math"

const fullCircle = 360.0

// SolarLongitude returns the Sun's true ecliptic longitude in degrees, in [0,360).
//
// This is the low-precision series (mean anomaly, three-term equation of
// center, mean longitude polynomial). It is accurate to roughly an arc
// minute near the present epoch and ignores nutation and aberration.
func SolarLongitude(jd float64) float64 {
	t := JulianCenturies(jd)

	m := NormalizeDegrees(357.52911 + 35999.05029*t - 0.0001537*t*t)
	mr := m * math.Pi / 180

	c := (1.914602-0.004817*t-0.000014*t*t)*math.Sin(mr) +
		(0.019993-0.000101*t)*math.Sin(2*mr) +
		0.000289*math.Sin(3*mr)

	return NormalizeDegrees(meanSolarLongitude(t) + c)
}

func meanSolarLongitude(t float64) float64 {
	return 280.46646 + 36000.76983*t + 0.0003032*t*t
}

// NormalizeDegrees maps any angle into [0,360).
func NormalizeDegrees(x float64) float64 {
	n := math.Mod(x, fullCircle)
	if n < 0 {
		n += fullCircle
	}
	// -tiny + 360 rounds to exactly 360.
	if n >= fullCircle {
		n = 0
	}
	return n
}
