package errcode

import (
	"net/http"
	"testing"
)

func TestStatusCode(t *testing.T) {
	for _, tc := range []struct {
		err  *Error
		want int
	}{
		{Success, http.StatusOK},
		{ServerError, http.StatusInternalServerError},
		{InvalidParams, http.StatusBadRequest},
		{InvalidLocation, http.StatusBadRequest},
		{InvalidRange, http.StatusBadRequest},
		{InvalidPageRequest, http.StatusBadRequest},
		{InvalidCoordinate, http.StatusBadRequest},
		{NotFound, http.StatusNotFound},
		{TooManyRequests, http.StatusTooManyRequests},
		{BackendUnavailable, http.StatusServiceUnavailable},
		{GetPostsFailed, http.StatusInternalServerError},
	} {
		if got := tc.err.StatusCode(); got != tc.want {
			t.Errorf("StatusCode() for code %d = %d, want %d", tc.err.Code(), got, tc.want)
		}
	}
}

func TestWithDetailsKeepsOriginal(t *testing.T) {
	detailed := InvalidRange.WithDetails("min_value must not exceed max_value")
	if len(InvalidRange.Details()) != 0 {
		t.Errorf("WithDetails mutated the registered error: %v", InvalidRange.Details())
	}
	if len(detailed.Details()) != 1 {
		t.Errorf("detailed error carries %d details, want 1", len(detailed.Details()))
	}
	if detailed.Code() != InvalidRange.Code() {
		t.Errorf("detailed error changed code to %d", detailed.Code())
	}
}
