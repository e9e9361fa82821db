package service

import (
	"errors"

	"gramhaat-backend/internal/search"
	"gramhaat-backend/pkg/errcode"
)

// searchError translates engine errors into the response codes the API
// speaks. Anything the engine does not classify keeps the caller's
// fallback code.
func searchError(err error, fallback *errcode.Error) *errcode.Error {
	var (
		locationErr *search.InvalidLocationError
		rangeErr    *search.InvalidRangeError
	)
	switch {
	case errors.As(err, &locationErr):
		return errcode.InvalidLocation.WithDetails(locationErr.Error())
	case errors.As(err, &rangeErr):
		return errcode.InvalidRange.WithDetails(rangeErr.Error())
	case errors.Is(err, search.ErrInvalidPageRequest):
		return errcode.InvalidPageRequest
	case errors.Is(err, search.ErrInvalidCoordinate):
		return errcode.InvalidCoordinate
	case errors.Is(err, search.ErrBackendUnavailable):
		return errcode.BackendUnavailable
	}
	return fallback
}
