package domain

import (
	"testing"
	"time"
)

func TestCityProfileToUTC(t *testing.T) {
	moscow := CityProfile{Key: "moscow", UTCOffsetHours: 3}

	// The location of the input is ignored; only wall-clock fields count.
	for _, loc := range []*time.Location{time.UTC, time.FixedZone("X", -5*3600)} {
		local := time.Date(2024, 3, 20, 12, 0, 0, 0, loc)

		got := moscow.ToUTC(local)
		want := time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC)
		if !got.Equal(want) || got.Location() != time.UTC {
			t.Fatalf("ToUTC(%v) = %v, want %v", local, got, want)
		}
	}
}

func TestCityProfileToUTCCrossesMidnight(t *testing.T) {
	moscow := CityProfile{Key: "moscow", UTCOffsetHours: 3}

	got := moscow.ToUTC(time.Date(2024, 1, 1, 1, 30, 0, 0, time.UTC))
	want := time.Date(2023, 12, 31, 22, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("ToUTC = %v, want %v", got, want)
	}
}

func TestCityProfileZone(t *testing.T) {
	c := CityProfile{Key: "moscow", UTCOffsetHours: 3}

	at := time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC).In(c.Zone())
	if at.Hour() != 12 {
		t.Fatalf("hour in zone = %d, want 12", at.Hour())
	}
}

func TestPlanetTable(t *testing.T) {
	planets := Planets()
	if len(planets) != PlanetCount || planets[0] != Sun || planets[PlanetCount-1] != Pluto {
		t.Fatalf("unexpected planet order: %v", planets)
	}

	symbols := "☉☽☿♀♂♃♄♅♆♇"
	var got string
	for _, p := range planets {
		got += p.Symbol()
	}
	if got != symbols {
		t.Fatalf("symbols = %q, want %q", got, symbols)
	}

	if PlanetID(42).Key() != "" || PlanetID(-1).Symbol() != "" {
		t.Fatal("out-of-range planet should have no key or symbol")
	}
}

func TestSignTable(t *testing.T) {
	signs := Signs()
	if len(signs) != SignCount || signs[0].Key() != "aries" || signs[SignCount-1].Key() != "pisces" {
		t.Fatalf("unexpected sign order: %v", signs)
	}
	if Sign(12).Valid() {
		t.Fatal("sign 12 must be invalid")
	}
}

func TestCityResultPlanet(t *testing.T) {
	r := &CityResult{Planets: []PlanetReport{{Planet: Mars, Longitude: 145.3}}}

	if p, ok := r.Planet(Mars); !ok || p.Longitude != 145.3 {
		t.Fatalf("Planet(Mars) = %+v, %v", p, ok)
	}
	if _, ok := r.Planet(Venus); ok {
		t.Fatal("Planet(Venus) should be missing")
	}
}
