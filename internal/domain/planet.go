package domain

// Stable identifier of a body in the position table.
// Display names are resolved separately by the locale catalog.
type PlanetID int

const (
	Sun PlanetID = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
)

// PlanetCount is the number of bodies reported per calculation.
const PlanetCount = 10

// Fixed angular distance from the Sun and nominal daily motion of a body.
// These are demonstration constants, not derived from any ephemeris.
type PlanetOffset struct {
	OffsetDegrees float64
	DailySpeed    float64
}

type planetInfo struct {
	key    string
	symbol string
	offset PlanetOffset
}

var planetTable = [PlanetCount]planetInfo{
	Sun:     {key: "sun", symbol: "☉", offset: PlanetOffset{OffsetDegrees: 0, DailySpeed: 1.0}},
	Moon:    {key: "moon", symbol: "☽", offset: PlanetOffset{OffsetDegrees: 13.2, DailySpeed: 13.2}},
	Mercury: {key: "mercury", symbol: "☿", offset: PlanetOffset{OffsetDegrees: 18.7, DailySpeed: 1.6}},
	Venus:   {key: "venus", symbol: "♀", offset: PlanetOffset{OffsetDegrees: 32.4, DailySpeed: 1.2}},
	Mars:    {key: "mars", symbol: "♂", offset: PlanetOffset{OffsetDegrees: 145.3, DailySpeed: 0.5}},
	Jupiter: {key: "jupiter", symbol: "♃", offset: PlanetOffset{OffsetDegrees: 245.8, DailySpeed: 0.08}},
	Saturn:  {key: "saturn", symbol: "♄", offset: PlanetOffset{OffsetDegrees: 295.2, DailySpeed: 0.03}},
	Uranus:  {key: "uranus", symbol: "♅", offset: PlanetOffset{OffsetDegrees: 35.7, DailySpeed: 0.01}},
	Neptune: {key: "neptune", symbol: "♆", offset: PlanetOffset{OffsetDegrees: 325.9, DailySpeed: 0.006}},
	Pluto:   {key: "pluto", symbol: "♇", offset: PlanetOffset{OffsetDegrees: 265.4, DailySpeed: 0.004}},
}

// Planets returns every body in reporting order (Sun first, Pluto last).
func Planets() []PlanetID {
	out := make([]PlanetID, 0, PlanetCount)
	for p := Sun; p <= Pluto; p++ {
		out = append(out, p)
	}
	return out
}

func (p PlanetID) Valid() bool { return p >= Sun && p <= Pluto }

// Key is the stable, language-neutral identifier used in API payloads.
func (p PlanetID) Key() string {
	if !p.Valid() {
		return ""
	}
	return planetTable[p].key
}

// Symbol is the astronomical glyph for the body.
func (p PlanetID) Symbol() string {
	if !p.Valid() {
		return ""
	}
	return planetTable[p].symbol
}

func (p PlanetID) Offset() PlanetOffset {
	if !p.Valid() {
		return PlanetOffset{}
	}
	return planetTable[p].offset
}

func (p PlanetID) String() string { return p.Key() }
