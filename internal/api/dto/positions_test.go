package dto

import (
	"errors"
	"planet-positions-service/internal/domain"
	"testing"
	"time"
)

func TestPositionsQueryMoment(t *testing.T) {
	q := PositionsQuery{Date: "2024-03-20", Time: " 12:00 ", City: "moscow"}

	got, err := q.Moment()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Moment() = %v, want %v", got, want)
	}
}

func TestPositionsQueryRejectsBadInput(t *testing.T) {
	tests := map[string]PositionsQuery{
		"missing date": {Time: "12:00", City: "moscow"},
		"missing time": {Date: "2024-03-20", City: "moscow"},
		"missing city": {Date: "2024-03-20", Time: "12:00"},
		"bad date":     {Date: "20.03.2024", Time: "12:00", City: "moscow"},
		"bad month":    {Date: "2024-13-01", Time: "12:00", City: "moscow"},
		"bad time":     {Date: "2024-03-20", Time: "25:00", City: "moscow"},
		"seconds":      {Date: "2024-03-20", Time: "12:00:00", City: "moscow"},
	}

	for name, q := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := q.Moment()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, domain.ErrInvalidMoment) {
				t.Fatalf("error %v does not wrap ErrInvalidMoment", err)
			}
		})
	}
}
