package domain

import "errors"

var (
	// ErrUnknownCity is returned when a city key is absent from the directory.
	ErrUnknownCity = errors.New("unknown city")

	// ErrInvalidMoment is returned for missing or malformed date/time input.
	ErrInvalidMoment = errors.New("invalid date or time")

	// ErrEngineUnavailable marks a failed calculator initialization.
	// It is not recoverable per request.
	ErrEngineUnavailable = errors.New("calculation engine unavailable")
)
