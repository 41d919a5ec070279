package services

import (
	"context"
	"errors"
	"planet-positions-service/internal/domain"
	"planet-positions-service/internal/ports"
	"testing"
	"time"
)

type recordingLog struct {
	entries []ports.CalculationEntry
	err     error
}

func (l *recordingLog) Record(_ context.Context, e ports.CalculationEntry) error {
	if l.err != nil {
		return l.err
	}
	l.entries = append(l.entries, e)
	return nil
}

func (l *recordingLog) Recent(context.Context, int) ([]ports.CalculationEntry, error) {
	return l.entries, nil
}

func TestRecordCalculations(t *testing.T) {
	calc := newTestCalculator(t)
	results, err := calc.CalculateBatch(context.Background(), time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC), domain.AllCities)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}

	log := &recordingLog{}
	now := time.Date(2024, 3, 20, 9, 0, 5, 0, time.UTC)
	if err := RecordCalculations(context.Background(), log, results, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(log.entries) != len(results) {
		t.Fatalf("recorded %d entries, want %d", len(log.entries), len(results))
	}
	seen := map[string]bool{}
	for i, e := range log.entries {
		if e.City != results[i].City.Key {
			t.Errorf("entry %d city = %q, want %q", i, e.City, results[i].City.Key)
		}
		if e.ID == "" || seen[e.ID] {
			t.Errorf("entry %d has empty or duplicate id %q", i, e.ID)
		}
		seen[e.ID] = true
		sun, _ := results[i].Planet(domain.Sun)
		if e.SunLongitude != sun.Longitude || e.JulianDay != results[i].JulianDay {
			t.Errorf("entry %d does not match its result", i)
		}
		if !e.CreatedAt.Equal(now) {
			t.Errorf("entry %d CreatedAt = %v, want %v", i, e.CreatedAt, now)
		}
	}
}

func TestRecordCalculationsErrors(t *testing.T) {
	if err := RecordCalculations(context.Background(), nil, nil, time.Now()); err != nil {
		t.Fatalf("nil log should be a no-op, got %v", err)
	}

	calc := newTestCalculator(t)
	r, err := calc.CalculateForCity(time.Now(), "moscow")
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}

	boom := errors.New("disk full")
	err = RecordCalculations(context.Background(), &recordingLog{err: boom}, []*domain.CityResult{r}, time.Now())
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want wrapped %v", err, boom)
	}
}
