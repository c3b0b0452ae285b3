package services

import "errors"

var (
	// ErrInvalidRange is returned when query bounds fail 0 <= min <= max.
	ErrInvalidRange = errors.New("invalid price range: bounds must satisfy 0 <= min <= max")
	// ErrNotIndexed is returned when a range query is issued before BuildIndex.
	ErrNotIndexed = errors.New("price index not built: call BuildIndex before querying")

	errNegative = errors.New("value must be non-negative")
	errBadYear  = errors.New("year out of range")
)
