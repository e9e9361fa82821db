package search

import (
	"fmt"

	"gorm.io/gorm"
)

type PageRequest struct {
	Page int
	Size int
}

func (p PageRequest) Window() (offset, limit int, err error) {
	if p.Page < 1 || p.Size < 1 {
		return 0, 0, ErrInvalidPageRequest
	}
	return (p.Page - 1) * p.Size, p.Size, nil
}

type PageResult struct {
	Page       int
	PageSize   int
	TotalRows  int64
	TotalPages int64
}

func TotalPages(totalRows int64, pageSize int) int64 {
	if totalRows <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalRows + int64(pageSize) - 1) / int64(pageSize)
}

// Execute runs the two-step count/fetch protocol: a count with the bare
// predicate, then an ordered, windowed fetch with the same predicate.
// The two reads share no snapshot; under concurrent writes TotalRows and
// the fetched page may disagree by a small margin, which is accepted on
// the discovery surface and self-corrects on the next page fetch.
func Execute(tx *gorm.DB, pred *PredicateSet, page PageRequest, dest interface{}) (*PageResult, error) {
	offset, limit, err := page.Window()
	if err != nil {
		return nil, err
	}

	var total int64
	if err := pred.Apply(tx.Session(&gorm.Session{})).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("%w: count: %v", ErrBackendUnavailable, err)
	}

	res := &PageResult{
		Page:       page.Page,
		PageSize:   page.Size,
		TotalRows:  total,
		TotalPages: TotalPages(total, page.Size),
	}
	if total == 0 {
		return res, nil
	}

	if err := pred.ApplyOrdered(tx.Session(&gorm.Session{})).Offset(offset).Limit(limit).Find(dest).Error; err != nil {
		return nil, fmt.Errorf("%w: fetch: %v", ErrBackendUnavailable, err)
	}
	return res, nil
}

// FetchCandidates runs a single ordered, bounded fetch without a count.
// Radius searches use it to pull the facet-narrowed candidate set that the
// geo filter then classifies in memory.
func FetchCandidates(tx *gorm.DB, pred *PredicateSet, limit int, dest interface{}) error {
	if err := pred.ApplyOrdered(tx.Session(&gorm.Session{})).Limit(limit).Find(dest).Error; err != nil {
		return fmt.Errorf("%w: fetch candidates: %v", ErrBackendUnavailable, err)
	}
	return nil
}
