// Package locale holds display strings for planets, signs and cities,
// kept apart from their stable identifiers.
package locale

import (
	"planet-positions-service/internal/domain"

	"golang.org/x/text/language"
)

var supported = []language.Tag{language.Russian, language.English}

var matcher = language.NewMatcher(supported)

// Names is the display catalog for a single language.
type Names struct {
	Tag        language.Tag
	TimeLayout string
	planets    [domain.PlanetCount]string
	signs      [domain.SignCount]string
	cities     map[string]string
}

var russian = &Names{
	Tag:        language.Russian,
	TimeLayout: "02.01.2006, 15:04:05",
	planets: [domain.PlanetCount]string{
		"Солнце", "Луна", "Меркурий", "Венера", "Марс",
		"Юпитер", "Сатурн", "Уран", "Нептун", "Плутон",
	},
	signs: [domain.SignCount]string{
		"Овен", "Телец", "Близнецы", "Рак", "Лев", "Дева",
		"Весы", "Скорпион", "Стрелец", "Козерог", "Водолей", "Рыбы",
	},
	cities: map[string]string{
		"moscow":           "Москва",
		"ivanovo":          "Иваново",
		"lipetsk":          "Липецк",
		"saint-petersburg": "Санкт-Петербург",
	},
}

var english = &Names{
	Tag:        language.English,
	TimeLayout: "1/2/2006, 15:04:05",
	planets: [domain.PlanetCount]string{
		"Sun", "Moon", "Mercury", "Venus", "Mars",
		"Jupiter", "Saturn", "Uranus", "Neptune", "Pluto",
	},
	signs: [domain.SignCount]string{
		"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
		"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
	},
	cities: map[string]string{
		"moscow":           "Moscow",
		"ivanovo":          "Ivanovo",
		"lipetsk":          "Lipetsk",
		"saint-petersburg": "Saint Petersburg",
	},
}

// For returns the catalog for tag, falling back to Russian.
func For(tag language.Tag) *Names {
	if tag == language.English {
		return english
	}
	return russian
}

// Resolve picks a supported language from an explicit choice (for example a
// query parameter) and an Accept-Language header, in that order of preference.
func Resolve(explicit, acceptLanguage string, fallback language.Tag) language.Tag {
	var prefs []language.Tag
	if explicit != "" {
		if t, err := language.Parse(explicit); err == nil {
			prefs = append(prefs, t)
		}
	}
	if acceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil {
			prefs = append(prefs, tags...)
		}
	}
	if len(prefs) == 0 {
		return fallback
	}

	_, idx, conf := matcher.Match(prefs...)
	if conf == language.No {
		return fallback
	}
	return supported[idx]
}

// Parse returns the supported tag for s, or fallback when s is not supported.
func Parse(s string, fallback language.Tag) language.Tag {
	return Resolve(s, "", fallback)
}

func (n *Names) Planet(p domain.PlanetID) string {
	if !p.Valid() {
		return ""
	}
	return n.planets[p]
}

func (n *Names) Sign(s domain.Sign) string {
	if !s.Valid() {
		return ""
	}
	return n.signs[s]
}

// City returns the display name for a city key; unknown keys display as-is.
func (n *Names) City(key string) string {
	if name, ok := n.cities[key]; ok {
		return name
	}
	return key
}
