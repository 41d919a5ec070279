package services

import (
	"math"
	"planet-positions-service/internal/domain"
)

// DegreesToZodiac splits an ecliptic longitude into a sign and the degrees within it.
func DegreesToZodiac(degrees float64) domain.ZodiacPlacement {
	d := NormalizeDegrees(degrees)

	idx := int(math.Floor(d / domain.SignDegrees))
	if idx >= domain.SignCount {
		idx = domain.SignCount - 1
	}
	rem := math.Mod(d, domain.SignDegrees)

	return domain.ZodiacPlacement{
		Sign:           domain.Sign(idx),
		Degrees:        rem,
		DisplayDegrees: roundWithinSign(rem),
	}
}

// Round to two decimals without spilling into the next sign.
func roundWithinSign(rem float64) float64 {
	r := math.Round(rem*100) / 100
	if r >= domain.SignDegrees {
		r = math.Floor(rem*100) / 100
	}
	return r
}
