package services

import (
	"fmt"
	"planet-positions-service/internal/domain"
)

// ValidateTables checks the static planet and zodiac tables.
// A failure here means the process cannot serve any calculation.
func ValidateTables() error {
	planets := domain.Planets()
	if len(planets) != domain.PlanetCount {
		return fmt.Errorf("validate tables: expected %d planets, got %d", domain.PlanetCount, len(planets))
	}

	seen := make(map[string]struct{}, len(planets))
	for _, p := range planets {
		if p.Key() == "" || p.Symbol() == "" {
			return fmt.Errorf("validate tables: planet %d has no key or symbol", int(p))
		}
		if _, dup := seen[p.Key()]; dup {
			return fmt.Errorf("validate tables: duplicate planet key %q", p.Key())
		}
		seen[p.Key()] = struct{}{}

		off := p.Offset()
		if off.OffsetDegrees < 0 || off.OffsetDegrees >= fullCircle {
			return fmt.Errorf("validate tables: planet %q offset %v out of range", p.Key(), off.OffsetDegrees)
		}
		if off.DailySpeed <= 0 {
			return fmt.Errorf("validate tables: planet %q speed must be positive", p.Key())
		}
	}

	if got := domain.Planets()[0]; got != domain.Sun || domain.Sun.Offset().OffsetDegrees != 0 {
		return fmt.Errorf("validate tables: table must start with the Sun at offset 0, got %q", got.Key())
	}

	signs := domain.Signs()
	if len(signs) != domain.SignCount || domain.SignCount*domain.SignDegrees != fullCircle {
		return fmt.Errorf("validate tables: zodiac must have %d signs covering 360 degrees", domain.SignCount)
	}
	for _, s := range signs {
		if s.Key() == "" {
			return fmt.Errorf("validate tables: sign %d has no key", int(s))
		}
	}

	return nil
}
