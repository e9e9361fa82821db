package search

import (
	"testing"
)

func TestPageRequestWindow(t *testing.T) {
	for _, tc := range []struct {
		page, size    int
		offset, limit int
		wantErr       bool
	}{
		{1, 20, 0, 20, false},
		{3, 20, 40, 20, false},
		{2, 7, 7, 7, false},
		{0, 20, 0, 0, true},
		{1, 0, 0, 0, true},
		{-1, -5, 0, 0, true},
	} {
		offset, limit, err := PageRequest{Page: tc.page, Size: tc.size}.Window()
		if tc.wantErr {
			if err != ErrInvalidPageRequest {
				t.Errorf("window(%d, %d) err = %v, want ErrInvalidPageRequest", tc.page, tc.size, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("window(%d, %d): %v", tc.page, tc.size, err)
			continue
		}
		if offset != tc.offset || limit != tc.limit {
			t.Errorf("window(%d, %d) = (%d, %d), want (%d, %d)", tc.page, tc.size, offset, limit, tc.offset, tc.limit)
		}
	}
}

func TestTotalPages(t *testing.T) {
	for _, tc := range []struct {
		total int64
		size  int
		want  int64
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{45, 20, 3},
		{45, 0, 0},
	} {
		if got := TotalPages(tc.total, tc.size); got != tc.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.size, got, tc.want)
		}
	}
}
