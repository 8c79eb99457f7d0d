package decoder

import "errors"

var (
	// ErrInvalidJSON is returned when response body is not valid JSON document.
	ErrInvalidJSON = errors.New("response is not valid JSON")
	// ErrNoData is returned when response has no top-level data key.
	ErrNoData = errors.New("response has no data")
	// ErrMissingKey is returned when response misses required key other than top-level data.
	ErrMissingKey = errors.New("response misses required key")
)
