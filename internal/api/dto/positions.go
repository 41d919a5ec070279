package dto

import (
	"errors"
	"fmt"
	"planet-positions-service/internal/domain"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Query parameters of GET /positions.
type PositionsQuery struct {
	Date string `validate:"required,datetime=2006-01-02"`
	Time string `validate:"required,datetime=15:04"`
	City string `validate:"required,max=64"`
	Lang string `validate:"omitempty,max=35"`
}

// Moment validates the query and returns its wall-clock date and time.
// The returned time carries UTC as a placeholder location; callers
// reinterpret the fields in the selected city's offset.
func (q PositionsQuery) Moment() (time.Time, error) {
	q.Date = strings.TrimSpace(q.Date)
	q.Time = strings.TrimSpace(q.Time)
	q.City = strings.TrimSpace(q.City)

	if err := validate.Struct(q); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return time.Time{}, fmt.Errorf("%w: %s", domain.ErrInvalidMoment, describe(verrs[0]))
		}
		return time.Time{}, fmt.Errorf("%w: %v", domain.ErrInvalidMoment, err)
	}

	t, err := time.ParseInLocation("2006-01-02 15:04", q.Date+" "+q.Time, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", domain.ErrInvalidMoment, err)
	}
	return t, nil
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "datetime":
		return fmt.Sprintf("%s must match %s", field, layoutHint(fe.Param()))
	case "max":
		return fmt.Sprintf("%s is too long", field)
	}
	return fmt.Sprintf("%s is invalid", field)
}

func layoutHint(layout string) string {
	switch layout {
	case "2006-01-02":
		return "YYYY-MM-DD"
	case "15:04":
		return "HH:MM"
	}
	return layout
}

type PlanetResponse struct {
	Planet       string  `json:"planet"`
	Name         string  `json:"name"`
	Symbol       string  `json:"symbol"`
	Sign         string  `json:"sign"`
	SignName     string  `json:"sign_name"`
	Degrees      float64 `json:"degrees"`
	FullPosition string  `json:"full_position"`
	Speed        string  `json:"speed"`
}

type CityResultResponse struct {
	City           string           `json:"city"`
	CityName       string           `json:"city_name"`
	UTCOffsetHours int              `json:"utc_offset_hours"`
	LocalTime      string           `json:"local_time"`
	UTCTime        string           `json:"utc_time"`
	JulianDay      float64          `json:"julian_day"`
	Sunrise        *time.Time       `json:"sunrise,omitempty"`
	Sunset         *time.Time       `json:"sunset,omitempty"`
	Planets        []PlanetResponse `json:"planets"`
}

type PositionsResponse struct {
	Lang    string               `json:"lang"`
	Results []CityResultResponse `json:"results"`
}
