package services

import (
	"math"
	"testing"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/julian"
)

func TestToJulianDayReferenceInstants(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want float64
	}{
		{"J2000 epoch", time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), 2451545.0},
		{"midnight before J2000", time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC), 2451543.5},
		{"unix epoch", time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), 2440587.5},
		{"2024 equinox scenario", time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC), 2460389.875},
		{"gregorian reform", time.Date(1582, 10, 15, 12, 0, 0, 0, time.UTC), 2299161.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToJulianDay(tt.at); got != tt.want {
				t.Fatalf("ToJulianDay(%v) = %.6f, want %.6f", tt.at, got, tt.want)
			}
		})
	}
}

func TestToJulianDayIgnoresLocation(t *testing.T) {
	utc := time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC)
	msk := utc.In(time.FixedZone("MSK", 3*3600))

	if a, b := ToJulianDay(utc), ToJulianDay(msk); a != b {
		t.Fatalf("same instant gave %.6f and %.6f", a, b)
	}
}

func TestToJulianDayMatchesMeeus(t *testing.T) {
	dates := []time.Time{
		time.Date(1600, 2, 29, 6, 0, 0, 0, time.UTC),
		time.Date(1900, 3, 1, 18, 30, 0, 0, time.UTC),
		time.Date(1987, 6, 19, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC),
		time.Date(2100, 7, 4, 3, 15, 0, 0, time.UTC),
	}

	for _, d := range dates {
		dayFrac := float64(d.Day()) + (float64(d.Hour())+float64(d.Minute())/60)/24
		want := julian.CalendarGregorianToJD(d.Year(), int(d.Month()), dayFrac)
		if got := ToJulianDay(d); math.Abs(got-want) > 1e-6 {
			t.Errorf("ToJulianDay(%v) = %.8f, meeus = %.8f", d, got, want)
		}
	}
}

func TestToJulianDayMatchesUnixTime(t *testing.T) {
	const unixEpochJD = 2440587.5
	start := time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC)

	for d := start; d.Year() < 2060; d = d.Add(97*24*time.Hour + 7*time.Hour + 13*time.Minute) {
		want := float64(d.Unix())/86400 + unixEpochJD
		if got := ToJulianDay(d); math.Abs(got-want) > 1e-8 {
			t.Fatalf("ToJulianDay(%v) = %.8f, want %.8f", d, got, want)
		}
	}
}

func TestToJulianDayContinuousBeforeEpochYear(t *testing.T) {
	// Year -4800 is where the shifted year crosses zero.
	d := time.Date(-4802, 1, 1, 12, 0, 0, 0, time.UTC)
	prev := ToJulianDay(d)
	for i := 0; i < 3*366; i++ {
		d = d.AddDate(0, 0, 1)
		cur := ToJulianDay(d)
		if cur-prev != 1 {
			t.Fatalf("day step at %v = %v, want 1", d, cur-prev)
		}
		prev = cur
	}
}

func TestJulianCenturies(t *testing.T) {
	if got := JulianCenturies(J2000); got != 0 {
		t.Fatalf("JulianCenturies(J2000) = %v, want 0", got)
	}
	if got := JulianCenturies(J2000 + 36525); got != 1 {
		t.Fatalf("JulianCenturies(J2000+36525) = %v, want 1", got)
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{7, 2, 3},
		{-7, 2, -4},
		{-8, 2, -4},
		{0, 5, 0},
		{-1, 12, -1},
		{13, 12, 1},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
