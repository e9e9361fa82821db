package service

import (
	"fmt"
	"strings"

	"gramhaat-backend/internal/conf"
	"gramhaat-backend/internal/search"
	"gramhaat-backend/pkg/errcode"
)

// ItemFilterReq is the shared faceted filter of every discovery surface.
// Pointer fields distinguish "facet absent" from a zero id, so an unset
// facet never turns into a wildcard match.
type ItemFilterReq struct {
	CategoryID    *int64   `json:"category_id" form:"category_id"`
	SubCategoryID *int64   `json:"sub_category_id" form:"sub_category_id"`
	DistrictID    *int64   `json:"district_id" form:"district_id"`
	TalukaID      *int64   `json:"taluka_id" form:"taluka_id"`
	VillageID     *int64   `json:"village_id" form:"village_id"`
	Search        string   `json:"search" form:"search"`
	MinValue      *float64 `json:"min_value" form:"min_value"`
	MaxValue      *float64 `json:"max_value" form:"max_value"`
	FeaturedOnly  bool     `json:"featured_only" form:"featured_only"`
	SortBy        string   `json:"sort_by" form:"sort_by"`
}

type ItemNearbyReq struct {
	ItemFilterReq
	Latitude  float64 `json:"latitude" form:"latitude" binding:"required"`
	Longitude float64 `json:"longitude" form:"longitude" binding:"required"`
	RadiusKm  float64 `json:"radius_km" form:"radius_km" binding:"required"`
}

func (r *ItemFilterReq) toCriteria() *search.FilterCriteria {
	return &search.FilterCriteria{
		CategoryID:    r.CategoryID,
		SubCategoryID: r.SubCategoryID,
		DistrictID:    r.DistrictID,
		TalukaID:      r.TalukaID,
		VillageID:     r.VillageID,
		SearchTerm:    strings.TrimSpace(r.Search),
		MinValue:      r.MinValue,
		MaxValue:      r.MaxValue,
		FeaturedOnly:  r.FeaturedOnly,
		SortBy:        search.SortKey(strings.ToUpper(strings.TrimSpace(r.SortBy))),
	}
}

func (r *ItemNearbyReq) toNearbyCriteria() *search.NearbyFilterCriteria {
	return &search.NearbyFilterCriteria{
		FilterCriteria: *r.ItemFilterReq.toCriteria(),
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		RadiusKm:       r.RadiusKm,
	}
}

// checkRadius enforces the configured radius ceiling before the store is
// asked for candidates.
func checkRadius(radiusKm float64) *errcode.Error {
	if max := conf.AppSetting.MaxNearbyRadiusKm; max > 0 && radiusKm > max {
		return errcode.InvalidRange.WithDetails(fmt.Sprintf("radius_km must not exceed %.0f", max))
	}
	return nil
}

// validateLocationChain rejects inconsistent District/Taluka/Village
// chains before any discovery query runs.
func validateLocationChain(criteria *search.FilterCriteria) *errcode.Error {
	validator := search.NewChainValidator(ds)
	if _, err := validator.ValidateChain(criteria.DistrictID, criteria.TalukaID, criteria.VillageID); err != nil {
		return searchError(err, errcode.InvalidLocation)
	}
	return nil
}
