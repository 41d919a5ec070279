package domain

// One of the twelve 30-degree sectors of ecliptic longitude, starting at Aries.
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

const (
	SignCount   = 12
	SignDegrees = 30.0
)

var signKeys = [SignCount]string{
	"aries", "taurus", "gemini", "cancer", "leo", "virgo",
	"libra", "scorpio", "sagittarius", "capricorn", "aquarius", "pisces",
}

// Signs returns the zodiac in ecliptic order.
func Signs() []Sign {
	out := make([]Sign, 0, SignCount)
	for s := Aries; s <= Pisces; s++ {
		out = append(out, s)
	}
	return out
}

func (s Sign) Valid() bool { return s >= Aries && s <= Pisces }

func (s Sign) Key() string {
	if !s.Valid() {
		return ""
	}
	return signKeys[s]
}

func (s Sign) String() string { return s.Key() }

// Placement of a longitude within the zodiac.
// Degrees is the exact remainder in [0,30); DisplayDegrees is rounded
// to two decimals for presentation and never reaches 30.
type ZodiacPlacement struct {
	Sign           Sign
	Degrees        float64
	DisplayDegrees float64
}
