package search

import (
	"errors"
	"fmt"
)

var (
	// ErrBackendUnavailable marks count/fetch failures that the caller may
	// retry; the engine itself never retries, reads are cheap to reissue.
	ErrBackendUnavailable = errors.New("backend unavailable")

	ErrInvalidPageRequest = errors.New("page number and page size must be positive")

	ErrInvalidCoordinate = errors.New("latitude, longitude and a positive radius are required together")
)

type InvalidRangeError struct {
	Min float64
	Max float64
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range: min %v exceeds max %v", e.Min, e.Max)
}

type InvalidLocationError struct {
	Tier   Tier
	ID     int64
	Reason string
}

func (e *InvalidLocationError) Error() string {
	if e.ID > 0 {
		return fmt.Sprintf("invalid location: %s %d %s", e.Tier, e.ID, e.Reason)
	}
	return fmt.Sprintf("invalid location: %s %s", e.Tier, e.Reason)
}
