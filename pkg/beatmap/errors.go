package beatmap

import "errors"

var (
	// ErrInvalidData is returned when an aligned string does not hold valid UTF-8.
	ErrInvalidData = errors.New("invalid data")

	// ErrSizeMismatch is returned when a DifficultyList's stored size does not
	// match the number of records it holds.
	ErrSizeMismatch = errors.New("difficulty list size does not match array length")

	// ErrMissingField is returned when a structured document lacks a field.
	ErrMissingField = errors.New("missing field")
)
